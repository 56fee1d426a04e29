package queries

import (
	"context"

	"motorcare/internal/infra"
	"motorcare/internal/pkg/errs"
	"motorcare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrAppointmentAccess   = errs.New("appointment access denied")
)

// ListOptions narrows and reorders list results. Upcoming keeps only
// non-terminal appointments and flips the sort to soonest-first; the default
// is newest-scheduled-first.
type ListOptions struct {
	Upcoming bool
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AppointmentView, error)
	ListForUser(ctx context.Context, clientID uuid.UUID, opts ListOptions) ([]*AppointmentListItem, error)
	ListForMechanic(ctx context.Context, mechanicID uuid.UUID, opts ListOptions) ([]*AppointmentListItem, error)
	ListAdmin(ctx context.Context, opts ListOptions) ([]*AppointmentListItem, error)
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByClient(ctx context.Context, clientID uuid.UUID, opts ListOptions) ([]*AppointmentListItem, error)
	FindByMechanic(ctx context.Context, mechanicID uuid.UUID, opts ListOptions) ([]*AppointmentListItem, error)
	FindAll(ctx context.Context, opts ListOptions) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
}

func NewAppointmentQueries(readStore AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{readStore: readStore}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	if !canSee(actor, view) {
		// Do not leak existence to unrelated callers.
		return nil, ErrAppointmentNotFound
	}

	return view, nil
}

func (q *appointmentQueriesImpl) ListForUser(ctx context.Context, clientID uuid.UUID, opts ListOptions) ([]*AppointmentListItem, error) {
	return q.readStore.FindByClient(ctx, clientID, opts)
}

func (q *appointmentQueriesImpl) ListForMechanic(ctx context.Context, mechanicID uuid.UUID, opts ListOptions) ([]*AppointmentListItem, error) {
	return q.readStore.FindByMechanic(ctx, mechanicID, opts)
}

func (q *appointmentQueriesImpl) ListAdmin(ctx context.Context, opts ListOptions) ([]*AppointmentListItem, error) {
	return q.readStore.FindAll(ctx, opts)
}

func canSee(actor shared.Actor, view *AppointmentView) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.IsMechanic() && view.MechanicID == actor.ID {
		return true
	}
	return view.ClientID == actor.ID
}
