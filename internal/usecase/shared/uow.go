package shared

import (
	"context"
	"time"

	"motorcare/internal/domain/appointment"
	"motorcare/internal/domain/servicelog"
	"motorcare/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// UnitOfWork brackets multi-row writes in a single database transaction. The
// completion transaction (status CAS + history record + parts + mileage) is
// the only caller that truly needs it; single-row writes ride the same path
// for uniformity.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads exposes command-side reads outside any transaction.
	Reads() CommandReads
}

// Tx is the set of repositories bound to one open transaction.
type Tx interface {
	Appointments() AppointmentRepository
	ServiceLog() ServiceLogRepository
	Vehicles() VehicleRepository
	Users() UserRepository
	Reads() CommandReads
}

// CommandReads resolves references for the write path. Reference data
// (vehicles, mechanics, offerings) is owned externally and read-only here.
type CommandReads interface {
	AppointmentByID(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error)
	VehicleByVIN(ctx context.Context, vin string) (*readmodel.VehicleRM, error)
	MechanicByID(ctx context.Context, id uuid.UUID) (*readmodel.MechanicRM, error)
	OfferingFor(ctx context.Context, mechanicID, serviceID uuid.UUID) (*readmodel.OfferingRM, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *appointment.Appointment) (uuid.UUID, error)
	// UpdateStatus is a compare-and-swap on the stored status: the write only
	// lands when the row still holds expected. A lost race surfaces as a
	// KindConflict repository error.
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next appointment.Status, completedAt *time.Time, notes *string) error
}

type ServiceLogRepository interface {
	// CreateRecord persists the history record together with its parts rows.
	CreateRecord(ctx context.Context, rec *servicelog.Record) (uuid.UUID, error)
}

type VehicleRepository interface {
	// AdvanceMileage is forward-only: the update is conditioned on the stored
	// mileage not exceeding the new value, and a concurrent advance past it
	// surfaces as KindConflict.
	AdvanceMileage(ctx context.Context, vin string, mileage int32) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
