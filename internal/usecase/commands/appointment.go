package commands

import (
	"context"
	"errors"
	"time"

	"motorcare/internal/domain/appointment"
	"motorcare/internal/domain/servicelog"
	"motorcare/internal/infra"
	"motorcare/internal/pkg/clock"
	"motorcare/internal/pkg/errs"
	"motorcare/internal/usecase/queries"
	"motorcare/internal/usecase/readmodel"
	"motorcare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidReference        = errs.New("vehicle, mechanic or service could not be resolved")
	ErrOfferingUnavailable     = errs.New("mechanic does not offer this service or it is disabled")
	ErrInvalidSchedule         = errs.New("scheduled time must be in the future")
	ErrInvalidTransition       = errs.New("status transition not allowed")
	ErrInvalidCompletionData   = errs.New("invalid completion data")
	ErrConcurrentModification  = errs.New("appointment was modified concurrently")
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrActorNotAllowed         = errs.New("actor not allowed to perform this action")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateAppointmentInput struct {
	ClientID              *uuid.UUID
	VehicleVIN            string
	MechanicID            uuid.UUID
	ServiceID             *uuid.UUID
	ServiceType           string
	ScheduledAt           time.Time
	EstimatedCompletionAt *time.Time
	Description           string
	Notes                 string
	PriceOverride         *float64
	DurationOverride      *int32
}

// TransitionInput carries the lifecycle action plus, for completion, the
// payload feeding the service-history record.
type TransitionInput struct {
	Action     appointment.Action
	Completion *servicelog.RecordInput
}

type AppointmentCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateAppointmentInput) (*queries.AppointmentView, error)
	Transition(ctx context.Context, actor shared.Actor, id uuid.UUID, in TransitionInput) (*queries.AppointmentView, error)
}

type appointmentCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.AppointmentReadStore
	factory   *appointment.Factory
	notifier  Notifier
	clock     clock.Clock
}

func NewAppointmentCommands(
	uow shared.UnitOfWork,
	readStore queries.AppointmentReadStore,
	factory *appointment.Factory,
	notifier Notifier,
	clock clock.Clock,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:       uow,
		readStore: readStore,
		factory:   factory,
		notifier:  notifier,
		clock:     clock,
	}
}

func (c *appointmentCommandsImpl) Create(ctx context.Context, actor shared.Actor, in CreateAppointmentInput) (*queries.AppointmentView, error) {
	reads := c.uow.Reads()

	// Only privileged actors may schedule on behalf of another client.
	clientID := actor.ID
	if in.ClientID != nil && (actor.IsAdmin() || actor.IsMechanic()) {
		clientID = *in.ClientID
	}

	vehicle, err := c.resolveVehicle(ctx, reads, in.VehicleVIN, clientID, actor)
	if err != nil {
		return nil, err
	}

	mechanic, err := c.resolveMechanic(ctx, reads, in.MechanicID)
	if err != nil {
		return nil, err
	}

	var offering *appointment.OfferingSpec
	if in.ServiceID != nil {
		offering, err = c.resolveOffering(ctx, reads, in.MechanicID, *in.ServiceID)
		if err != nil {
			return nil, err
		}
	}

	// Price and duration overrides are an admin facility. Anyone else books
	// at the offering snapshot.
	var priceOverride *float64
	var durationOverride *int32
	if actor.IsAdmin() {
		priceOverride = in.PriceOverride
		durationOverride = in.DurationOverride
	}

	appt, err := c.factory.Schedule(vehicle, mechanic, offering, appointment.ScheduleInput{
		ClientID:              clientID,
		ScheduledAt:           in.ScheduledAt,
		EstimatedCompletionAt: in.EstimatedCompletionAt,
		ServiceType:           in.ServiceType,
		Description:           in.Description,
		Notes:                 in.Notes,
		PriceOverride:         priceOverride,
		DurationOverride:      durationOverride,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrPastSchedule):
			return nil, errs.Mark(err, ErrInvalidSchedule)
		case errors.Is(err, appointment.ErrOfferingDisabled):
			return nil, errs.Mark(err, ErrOfferingUnavailable)
		default:
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Appointments().Create(ctx, appt)
		return createErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.notifier.AppointmentCreated(ctx, appt.ID(), appt.ClientID(), appt.MechanicID())

	view, err := c.readStore.FindByID(ctx, appt.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *appointmentCommandsImpl) Transition(ctx context.Context, actor shared.Actor, id uuid.UUID, in TransitionInput) (*queries.AppointmentView, error) {
	reads := c.uow.Reads()

	rm, err := reads.AppointmentByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAppointmentNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := authorizeTransition(actor, rm, in.Action); err != nil {
		return nil, err
	}

	current := appointment.Status(rm.Status)
	next, ok := current.Next(in.Action)
	if !ok {
		return nil, ErrInvalidTransition
	}

	if in.Action == appointment.ActionComplete {
		if err := c.complete(ctx, rm, in.Completion); err != nil {
			return nil, err
		}
	} else {
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Appointments().UpdateStatus(ctx, id, current, next, nil, nil)
		})
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, errs.Mark(err, ErrConcurrentModification)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	c.notifier.StatusChanged(ctx, id, current, next)

	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// complete runs the completion transaction: the status CAS, the history
// record with its parts rows, and the forward-only vehicle mileage update
// commit together or not at all.
func (c *appointmentCommandsImpl) complete(ctx context.Context, rm *readmodel.AppointmentRM, payload *servicelog.RecordInput) error {
	if payload == nil {
		return errs.Mark(appointment.ErrCompletionRequired, ErrInvalidCompletionData)
	}

	reads := c.uow.Reads()

	vehicle, err := reads.VehicleByVIN(ctx, rm.VehicleVIN)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrInvalidReference)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	performedBy := ""
	if mechanic, mechErr := reads.MechanicByID(ctx, rm.MechanicID); mechErr == nil {
		performedBy = appointment.MechanicSpec{
			ID:        mechanic.ID,
			FirstName: mechanic.FirstName,
			LastName:  mechanic.LastName,
		}.FullName()
	}

	completedAt := c.clock.Now()

	record, err := servicelog.NewRecord(
		rm.VehicleVIN,
		rm.ID,
		rm.ServiceID,
		rm.ServiceType,
		rm.Price,
		performedBy,
		completedAt,
		vehicle.Mileage,
		*payload,
	)
	if err != nil {
		return errs.Mark(err, ErrInvalidCompletionData)
	}

	var completionNotes *string
	if payload.Notes != "" {
		completionNotes = &payload.Notes
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if casErr := tx.Appointments().UpdateStatus(ctx, rm.ID, appointment.StatusInProgress, appointment.StatusCompleted, &completedAt, completionNotes); casErr != nil {
			return casErr
		}
		if _, recErr := tx.ServiceLog().CreateRecord(ctx, record); recErr != nil {
			return recErr
		}
		return tx.Vehicles().AdvanceMileage(ctx, rm.VehicleVIN, record.Mileage())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrConcurrentModification)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (c *appointmentCommandsImpl) resolveVehicle(ctx context.Context, reads shared.CommandReads, vin string, clientID uuid.UUID, actor shared.Actor) (appointment.VehicleSpec, error) {
	vehicle, err := reads.VehicleByVIN(ctx, vin)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return appointment.VehicleSpec{}, errs.Mark(err, ErrInvalidReference)
		}
		return appointment.VehicleSpec{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Clients may only book work on their own vehicles.
	if vehicle.OwnerID != clientID && !actor.IsAdmin() && !actor.IsMechanic() {
		return appointment.VehicleSpec{}, ErrInvalidReference
	}

	return appointment.VehicleSpec{
		VIN:     vehicle.VIN,
		OwnerID: vehicle.OwnerID,
		Mileage: vehicle.Mileage,
	}, nil
}

func (c *appointmentCommandsImpl) resolveMechanic(ctx context.Context, reads shared.CommandReads, mechanicID uuid.UUID) (appointment.MechanicSpec, error) {
	mechanic, err := reads.MechanicByID(ctx, mechanicID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return appointment.MechanicSpec{}, errs.Mark(err, ErrInvalidReference)
		}
		return appointment.MechanicSpec{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return appointment.MechanicSpec{
		ID:        mechanic.ID,
		FirstName: mechanic.FirstName,
		LastName:  mechanic.LastName,
	}, nil
}

func (c *appointmentCommandsImpl) resolveOffering(ctx context.Context, reads shared.CommandReads, mechanicID, serviceID uuid.UUID) (*appointment.OfferingSpec, error) {
	offering, err := reads.OfferingFor(ctx, mechanicID, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOfferingUnavailable)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &appointment.OfferingSpec{
		ServiceID:   offering.ServiceID,
		ServiceName: offering.ServiceName,
		Category:    offering.Category,
		Enabled:     offering.Enabled,
		Price:       offering.Price,
		DurationMin: offering.DurationMin,
	}, nil
}

func authorizeTransition(actor shared.Actor, rm *readmodel.AppointmentRM, action appointment.Action) error {
	if actor.IsAdmin() {
		return nil
	}

	switch action {
	case appointment.ActionStart, appointment.ActionComplete:
		// Only the assigned mechanic drives the work itself.
		if actor.IsMechanic() && rm.MechanicID == actor.ID {
			return nil
		}
	case appointment.ActionCancel:
		if rm.ClientID == actor.ID {
			return nil
		}
		if actor.IsMechanic() && rm.MechanicID == actor.ID {
			return nil
		}
	}

	return ErrActorNotAllowed
}
