package readstore

import (
	"context"

	"motorcare/internal/infra"
	"motorcare/internal/infra/db"
	"motorcare/internal/pkg/pgconv"
	"motorcare/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const appointmentRMSQL = `
SELECT id, client_id, vehicle_vin, mechanic_id, service_id, service_type,
       scheduled_time, estimated_completion_time, actual_completion_time,
       status, price, duration_minutes, description, notes, created_at, updated_at
FROM appointments
WHERE id = $1`

const vehicleRMSQL = `
SELECT vin, owner_id, make, model, year, mileage
FROM vehicles
WHERE vin = $1`

const mechanicRMSQL = `
SELECT id, first_name, last_name, specialization, is_active
FROM mechanics
WHERE id = $1`

const offeringRMSQL = `
SELECT ms.mechanic_id, s.id, s.name, s.category, (ms.is_enabled AND s.is_active),
       s.price, s.duration_minutes
FROM mechanic_services ms
JOIN services s ON s.id = ms.service_id
WHERE ms.mechanic_id = $1 AND ms.service_id = $2`

// CommandReadStore resolves reference rows for the write path. It returns
// plain row images; entitlement and state checks belong to the usecase layer.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(dbtx db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: dbtx}
}

func (r *CommandReadStore) AppointmentByID(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error) {
	var (
		rm                   readmodel.AppointmentRM
		serviceID            pgtype.UUID
		estimatedCompletion  pgtype.Timestamptz
		actualCompletion     pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, appointmentRMSQL, id).Scan(
		&rm.ID, &rm.ClientID, &rm.VehicleVIN, &rm.MechanicID, &serviceID, &rm.ServiceType,
		&rm.ScheduledAt, &estimatedCompletion, &actualCompletion,
		&rm.Status, &rm.Price, &rm.DurationMin, &rm.Description, &rm.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}

	rm.ServiceID = pgconv.UUIDPtrFromPgtype(serviceID)
	rm.EstimatedCompletionAt = pgconv.TimePtrFromPgtype(estimatedCompletion)
	rm.ActualCompletionAt = pgconv.TimePtrFromPgtype(actualCompletion)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &rm, nil
}

func (r *CommandReadStore) VehicleByVIN(ctx context.Context, vin string) (*readmodel.VehicleRM, error) {
	var rm readmodel.VehicleRM
	err := r.db.QueryRow(ctx, vehicleRMSQL, vin).Scan(
		&rm.VIN, &rm.OwnerID, &rm.Make, &rm.Model, &rm.Year, &rm.Mileage,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}

	return &rm, nil
}

func (r *CommandReadStore) MechanicByID(ctx context.Context, id uuid.UUID) (*readmodel.MechanicRM, error) {
	var rm readmodel.MechanicRM
	err := r.db.QueryRow(ctx, mechanicRMSQL, id).Scan(
		&rm.ID, &rm.FirstName, &rm.LastName, &rm.Specialization, &rm.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("mechanic not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find mechanic", err)
	}

	return &rm, nil
}

func (r *CommandReadStore) OfferingFor(ctx context.Context, mechanicID, serviceID uuid.UUID) (*readmodel.OfferingRM, error) {
	var rm readmodel.OfferingRM
	err := r.db.QueryRow(ctx, offeringRMSQL, mechanicID, serviceID).Scan(
		&rm.MechanicID, &rm.ServiceID, &rm.ServiceName, &rm.Category, &rm.Enabled,
		&rm.Price, &rm.DurationMin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offering", err)
	}

	return &rm, nil
}
