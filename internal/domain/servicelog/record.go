package servicelog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingMileage    = errors.New("completion mileage is required")
	ErrMileageRegression = errors.New("mileage is below the vehicle's last recorded value")
)

// Record is the service-history fact produced exactly once by the completion
// transaction. It is immutable after creation.
type Record struct {
	id            uuid.UUID
	vehicleVIN    string
	appointmentID uuid.UUID
	serviceID     *uuid.UUID
	serviceType   string
	mileage       int32
	serviceDate   time.Time
	performedBy   string
	cost          float64
	notes         string
	parts         []PartUsage
}

// RecordInput is the completion payload supplied by the mechanic.
type RecordInput struct {
	Mileage      *int32
	Notes        string
	CostOverride *float64
	Parts        []PartUsageInput
}

// NewRecord validates the completion payload against the appointment snapshot
// and the vehicle's last known mileage. Odometer readings are forward-only:
// a reading below lastMileage is rejected, never clamped.
func NewRecord(
	vehicleVIN string,
	appointmentID uuid.UUID,
	serviceID *uuid.UUID,
	serviceType string,
	priceSnapshot float64,
	performedBy string,
	completedAt time.Time,
	lastMileage int32,
	in RecordInput,
) (*Record, error) {
	if in.Mileage == nil {
		return nil, ErrMissingMileage
	}
	if *in.Mileage < lastMileage {
		return nil, ErrMileageRegression
	}

	cost := priceSnapshot
	if in.CostOverride != nil {
		cost = *in.CostOverride
	}

	parts := make([]PartUsage, 0, len(in.Parts))
	for _, p := range in.Parts {
		part, err := NewPartUsage(p)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return &Record{
		id:            uuid.New(),
		vehicleVIN:    vehicleVIN,
		appointmentID: appointmentID,
		serviceID:     serviceID,
		serviceType:   serviceType,
		mileage:       *in.Mileage,
		serviceDate:   completedAt,
		performedBy:   performedBy,
		cost:          cost,
		notes:         in.Notes,
		parts:         parts,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	vehicleVIN string,
	appointmentID uuid.UUID,
	serviceID *uuid.UUID,
	serviceType string,
	mileage int32,
	serviceDate time.Time,
	performedBy string,
	cost float64,
	notes string,
	parts []PartUsage,
) *Record {
	return &Record{
		id:            id,
		vehicleVIN:    vehicleVIN,
		appointmentID: appointmentID,
		serviceID:     serviceID,
		serviceType:   serviceType,
		mileage:       mileage,
		serviceDate:   serviceDate,
		performedBy:   performedBy,
		cost:          cost,
		notes:         notes,
		parts:         parts,
	}
}

// PartsTotal sums unitPrice*quantity across all parts entries.
func (r *Record) PartsTotal() float64 {
	var total float64
	for _, p := range r.parts {
		total += p.Total()
	}
	return total
}

func (r *Record) ID() uuid.UUID            { return r.id }
func (r *Record) VehicleVIN() string       { return r.vehicleVIN }
func (r *Record) AppointmentID() uuid.UUID { return r.appointmentID }
func (r *Record) ServiceID() *uuid.UUID    { return r.serviceID }
func (r *Record) ServiceType() string      { return r.serviceType }
func (r *Record) Mileage() int32           { return r.mileage }
func (r *Record) ServiceDate() time.Time   { return r.serviceDate }
func (r *Record) PerformedBy() string      { return r.performedBy }
func (r *Record) Cost() float64            { return r.cost }
func (r *Record) Notes() string            { return r.notes }
func (r *Record) Parts() []PartUsage       { return r.parts }
