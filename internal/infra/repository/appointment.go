package repository

import (
	"context"
	"time"

	"motorcare/internal/domain/appointment"
	"motorcare/internal/infra"
	"motorcare/internal/infra/db"
	"motorcare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertAppointmentSQL = `
INSERT INTO appointments (
    id, client_id, vehicle_vin, mechanic_id, service_id, service_type,
    scheduled_time, estimated_completion_time, status, price, duration_minutes,
    description, notes
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

const updateAppointmentStatusSQL = `
UPDATE appointments
SET status = $3,
    actual_completion_time = COALESCE($4, actual_completion_time),
    notes = COALESCE($5, notes),
    updated_at = now()
WHERE id = $1 AND status = $2`

type AppointmentRepository struct {
	db db.DBTX
}

func NewAppointmentRepository(dbtx db.DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: dbtx}
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertAppointmentSQL,
		appt.ID(),
		appt.ClientID(),
		appt.VehicleVIN(),
		appt.MechanicID(),
		pgconv.UUIDPtrToPgtype(appt.ServiceID()),
		appt.ServiceType(),
		appt.ScheduledAt(),
		pgconv.TimePtrToPgtype(appt.EstimatedCompletionAt()),
		string(appt.Status()),
		appt.Price(),
		appt.DurationMin(),
		appt.Description(),
		appt.Notes(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}

	return id, nil
}

// UpdateStatus only writes when the stored status still equals expected. Zero
// rows affected means another writer got there first.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next appointment.Status, completedAt *time.Time, notes *string) error {
	tag, err := r.db.Exec(ctx, updateAppointmentStatusSQL,
		id,
		string(expected),
		string(next),
		pgconv.TimePtrToPgtype(completedAt),
		pgconv.StringPtrToPgtype(notes),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment status changed concurrently", nil, infra.KindConflict)
	}

	return nil
}
