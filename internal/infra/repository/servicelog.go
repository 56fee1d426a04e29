package repository

import (
	"context"

	"motorcare/internal/domain/servicelog"
	"motorcare/internal/infra"
	"motorcare/internal/infra/db"
	"motorcare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertServiceRecordSQL = `
INSERT INTO service_records (
    id, vehicle_vin, appointment_id, service_id, service_type,
    mileage, service_date, performed_by, cost, notes
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

const insertServiceRecordPartSQL = `
INSERT INTO service_record_parts (
    id, record_id, name, part_number, unit_price, quantity, purchased_by, notes
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type ServiceLogRepository struct {
	db db.DBTX
}

func NewServiceLogRepository(dbtx db.DBTX) *ServiceLogRepository {
	return &ServiceLogRepository{db: dbtx}
}

// CreateRecord persists the history record and its parts rows. Callers run
// this inside a transaction so the record never lands without its parts.
func (r *ServiceLogRepository) CreateRecord(ctx context.Context, rec *servicelog.Record) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertServiceRecordSQL,
		rec.ID(),
		rec.VehicleVIN(),
		rec.AppointmentID(),
		pgconv.UUIDPtrToPgtype(rec.ServiceID()),
		rec.ServiceType(),
		rec.Mileage(),
		rec.ServiceDate(),
		rec.PerformedBy(),
		rec.Cost(),
		rec.Notes(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service record", err)
	}

	for _, part := range rec.Parts() {
		_, err := r.db.Exec(ctx, insertServiceRecordPartSQL,
			uuid.New(),
			id,
			part.Name(),
			pgconv.StringPtrToPgtype(part.PartNumber()),
			part.UnitPrice(),
			part.Quantity(),
			string(part.PurchasedBy()),
			part.Notes(),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create service record part", err)
		}
	}

	return id, nil
}
