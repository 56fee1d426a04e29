package repository

import (
	"context"

	"motorcare/internal/infra"
	"motorcare/internal/infra/db"
)

const advanceVehicleMileageSQL = `
UPDATE vehicles
SET mileage = $2, updated_at = now()
WHERE vin = $1 AND mileage <= $2`

type VehicleRepository struct {
	db db.DBTX
}

func NewVehicleRepository(dbtx db.DBTX) *VehicleRepository {
	return &VehicleRepository{db: dbtx}
}

// AdvanceMileage moves the odometer forward only. A concurrent advance past
// the new value leaves zero rows matched and surfaces as a conflict.
func (r *VehicleRepository) AdvanceMileage(ctx context.Context, vin string, mileage int32) error {
	tag, err := r.db.Exec(ctx, advanceVehicleMileageSQL, vin, mileage)
	if err != nil {
		return infra.WrapRepoErr("failed to advance vehicle mileage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle mileage advanced concurrently", nil, infra.KindConflict)
	}

	return nil
}
