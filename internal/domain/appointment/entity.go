package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPastSchedule       = errors.New("scheduled time must be in the future")
	ErrOfferingDisabled   = errors.New("mechanic does not offer this service")
	ErrMissingService     = errors.New("either a service or a service type is required")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrCompletionRequired = errors.New("completion requires a completion payload")
)

type Appointment struct {
	id                    uuid.UUID
	clientID              uuid.UUID
	vehicleVIN            string
	mechanicID            uuid.UUID
	serviceID             *uuid.UUID
	serviceType           string
	scheduledAt           time.Time
	estimatedCompletionAt *time.Time
	actualCompletionAt    *time.Time
	status                Status
	snapshot              Snapshot
	description           string
	notes                 string
	createdAt             time.Time
	updatedAt             time.Time
}

func Reconstruct(
	id, clientID uuid.UUID,
	vehicleVIN string,
	mechanicID uuid.UUID,
	serviceID *uuid.UUID,
	serviceType string,
	scheduledAt time.Time,
	estimatedCompletionAt, actualCompletionAt *time.Time,
	status Status,
	snapshot Snapshot,
	description, notes string,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:                    id,
		clientID:              clientID,
		vehicleVIN:            vehicleVIN,
		mechanicID:            mechanicID,
		serviceID:             serviceID,
		serviceType:           serviceType,
		scheduledAt:           scheduledAt,
		estimatedCompletionAt: estimatedCompletionAt,
		actualCompletionAt:    actualCompletionAt,
		status:                status,
		snapshot:              snapshot,
		description:           description,
		notes:                 notes,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

// Transition applies the lifecycle action. For ActionComplete the actual
// completion time is stamped with now; every other action leaves it nil.
func (a *Appointment) Transition(action Action, now time.Time) error {
	next, ok := a.status.Next(action)
	if !ok {
		return ErrIllegalTransition
	}

	a.status = next
	if next == StatusCompleted {
		completedAt := now
		a.actualCompletionAt = &completedAt
	}
	return nil
}

func (a *Appointment) IsTerminal() bool {
	return a.status.IsTerminal()
}

// AssignedTo reports whether the given mechanic drives this appointment.
func (a *Appointment) AssignedTo(mechanicID uuid.UUID) bool {
	return a.mechanicID == mechanicID
}

func (a *Appointment) OwnedBy(clientID uuid.UUID) bool {
	return a.clientID == clientID
}

// ServiceLabel is the display name recorded into service history: the
// snapshotted catalog name when a service was selected, the free-text type
// otherwise.
func (a *Appointment) ServiceLabel() string {
	return a.serviceType
}

func (a *Appointment) ID() uuid.UUID                     { return a.id }
func (a *Appointment) ClientID() uuid.UUID               { return a.clientID }
func (a *Appointment) VehicleVIN() string                { return a.vehicleVIN }
func (a *Appointment) MechanicID() uuid.UUID             { return a.mechanicID }
func (a *Appointment) ServiceID() *uuid.UUID             { return a.serviceID }
func (a *Appointment) ServiceType() string               { return a.serviceType }
func (a *Appointment) ScheduledAt() time.Time            { return a.scheduledAt }
func (a *Appointment) EstimatedCompletionAt() *time.Time { return a.estimatedCompletionAt }
func (a *Appointment) ActualCompletionAt() *time.Time    { return a.actualCompletionAt }
func (a *Appointment) Status() Status                    { return a.status }
func (a *Appointment) Price() float64                    { return a.snapshot.Price }
func (a *Appointment) DurationMin() int32                { return a.snapshot.DurationMin }
func (a *Appointment) Description() string               { return a.description }
func (a *Appointment) Notes() string                     { return a.notes }
func (a *Appointment) CreatedAt() time.Time              { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time              { return a.updatedAt }
