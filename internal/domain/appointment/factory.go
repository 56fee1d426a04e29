package appointment

import (
	"strings"
	"time"

	"motorcare/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// ScheduleInput carries the caller-supplied fields for a new appointment.
// Price/duration overrides exist for the privileged (admin) path; when nil
// the offering snapshot wins.
type ScheduleInput struct {
	ClientID              uuid.UUID
	ScheduledAt           time.Time
	EstimatedCompletionAt *time.Time
	ServiceType           string
	Description           string
	Notes                 string
	PriceOverride         *float64
	DurationOverride      *int32
}

// Schedule creates a new appointment in the scheduled state. The offering is
// optional: a free-text service type skips the catalog entirely and carries
// no snapshot. With an offering, the mechanic must currently have it enabled,
// and its price/duration are copied so later catalog edits never touch this
// appointment.
func (f *Factory) Schedule(
	vehicle VehicleSpec,
	mechanic MechanicSpec,
	offering *OfferingSpec,
	in ScheduleInput,
) (*Appointment, error) {
	if !in.ScheduledAt.After(f.Clock.Now()) {
		return nil, ErrPastSchedule
	}

	serviceType := strings.TrimSpace(in.ServiceType)
	if offering == nil && serviceType == "" {
		return nil, ErrMissingService
	}

	var (
		serviceID *uuid.UUID
		snapshot  Snapshot
		err       error
	)
	if offering != nil {
		if !offering.Enabled {
			return nil, ErrOfferingDisabled
		}
		id := offering.ServiceID
		serviceID = &id
		if serviceType == "" {
			serviceType = offering.ServiceName
		}
		snapshot, err = NewSnapshot(offering.Price, offering.DurationMin)
		if err != nil {
			return nil, err
		}
	}

	if in.PriceOverride != nil || in.DurationOverride != nil {
		price := snapshot.Price
		duration := snapshot.DurationMin
		if in.PriceOverride != nil {
			price = *in.PriceOverride
		}
		if in.DurationOverride != nil {
			duration = *in.DurationOverride
		}
		snapshot, err = NewSnapshot(price, duration)
		if err != nil {
			return nil, err
		}
	}

	return &Appointment{
		id:                    uuid.New(),
		clientID:              in.ClientID,
		vehicleVIN:            vehicle.VIN,
		mechanicID:            mechanic.ID,
		serviceID:             serviceID,
		serviceType:           serviceType,
		scheduledAt:           in.ScheduledAt,
		estimatedCompletionAt: in.EstimatedCompletionAt,
		status:                StatusScheduled,
		snapshot:              snapshot,
		description:           in.Description,
		notes:                 in.Notes,
	}, nil
}
