package appointment

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNegativeDuration = errors.New("duration cannot be negative")
)

// OfferingSpec is a point-in-time snapshot of a mechanic's service offering.
// Appointments never join live against the catalog after creation; price and
// duration are copied from this snapshot at scheduling time.
type OfferingSpec struct {
	ServiceID   uuid.UUID
	ServiceName string
	Category    string
	Enabled     bool
	Price       float64
	DurationMin int32
}

// MechanicSpec identifies the mechanic an appointment is assigned to.
type MechanicSpec struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

func (m MechanicSpec) FullName() string {
	switch {
	case m.FirstName == "":
		return m.LastName
	case m.LastName == "":
		return m.FirstName
	default:
		return m.FirstName + " " + m.LastName
	}
}

// VehicleSpec is the resolved vehicle reference at scheduling time.
type VehicleSpec struct {
	VIN     string
	OwnerID uuid.UUID
	Mileage int32
}

// Snapshot holds the price/duration copied into the appointment so later
// catalog edits do not retroactively alter it.
type Snapshot struct {
	Price       float64
	DurationMin int32
}

func NewSnapshot(price float64, durationMin int32) (Snapshot, error) {
	if price < 0 {
		return Snapshot{}, ErrNegativePrice
	}
	if durationMin < 0 {
		return Snapshot{}, ErrNegativeDuration
	}
	return Snapshot{Price: price, DurationMin: durationMin}, nil
}
