package appointment

import "errors"

var ErrUnknownAction = errors.New("unknown action")

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Action string

const (
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

func NewAction(s string) (Action, error) {
	a := Action(s)
	switch a {
	case ActionStart, ActionComplete, ActionCancel:
		return a, nil
	default:
		return "", ErrUnknownAction
	}
}

// transitions is the authoritative lifecycle table. Completed and cancelled
// are terminal and intentionally absent.
var transitions = map[Status]map[Action]Status{
	StatusScheduled: {
		ActionStart:  StatusInProgress,
		ActionCancel: StatusCancelled,
	},
	StatusInProgress: {
		ActionComplete: StatusCompleted,
		ActionCancel:   StatusCancelled,
	},
}

// Next returns the status reached by applying action, or false when the
// transition is not legal from s.
func (s Status) Next(action Action) (Status, bool) {
	next, ok := transitions[s][action]
	return next, ok
}

func (s Status) CanApply(action Action) bool {
	_, ok := s.Next(action)
	return ok
}
