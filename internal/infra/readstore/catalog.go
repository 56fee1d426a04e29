package readstore

import (
	"context"

	"motorcare/internal/infra"
	"motorcare/internal/infra/db"
	"motorcare/internal/usecase/queries"

	"github.com/google/uuid"
)

const mechanicExistsSQL = `
SELECT EXISTS (SELECT 1 FROM mechanics WHERE id = $1 AND is_active)`

const enabledOfferingsSQL = `
SELECT s.id, s.name, s.category, s.price, s.duration_minutes
FROM mechanic_services ms
JOIN services s ON s.id = ms.service_id
WHERE ms.mechanic_id = $1 AND ms.is_enabled AND s.is_active
ORDER BY s.category, s.name`

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

func (r *CatalogReadStore) MechanicExists(ctx context.Context, mechanicID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, mechanicExistsSQL, mechanicID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check mechanic existence", err)
	}

	return exists, nil
}

func (r *CatalogReadStore) FindEnabledOfferings(ctx context.Context, mechanicID uuid.UUID) ([]queries.OfferingRow, error) {
	rows, err := r.db.Query(ctx, enabledOfferingsSQL, mechanicID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list mechanic offerings", err)
	}
	defer rows.Close()

	var offerings []queries.OfferingRow
	for rows.Next() {
		var row queries.OfferingRow
		if err := rows.Scan(&row.ServiceID, &row.Name, &row.Category, &row.Price, &row.DurationMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offering row", err)
		}
		offerings = append(offerings, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offering rows", err)
	}

	return offerings, nil
}
