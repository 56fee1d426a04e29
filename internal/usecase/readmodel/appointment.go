package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// Command-side snapshots. These are minimal row images used by the write
// path; display enrichment lives in the queries package.

type AppointmentRM struct {
	ID                    uuid.UUID
	ClientID              uuid.UUID
	VehicleVIN            string
	MechanicID            uuid.UUID
	ServiceID             *uuid.UUID
	ServiceType           string
	ScheduledAt           time.Time
	EstimatedCompletionAt *time.Time
	ActualCompletionAt    *time.Time
	Status                string
	Price                 float64
	DurationMin           int32
	Description           string
	Notes                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type VehicleRM struct {
	VIN     string
	OwnerID uuid.UUID
	Make    string
	Model   string
	Year    int32
	Mileage int32
}

type MechanicRM struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	Specialization string
	IsActive       bool
}

// OfferingRM is a point-in-time snapshot of a (mechanic, service) pairing.
type OfferingRM struct {
	MechanicID  uuid.UUID
	ServiceID   uuid.UUID
	ServiceName string
	Category    string
	Enabled     bool
	Price       float64
	DurationMin int32
}
