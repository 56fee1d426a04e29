package queries

import (
	"context"
	"sort"

	"motorcare/internal/infra"
	"motorcare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMechanicNotFound = errs.New("mechanic not found")

// CatalogQueries serves the mechanic-first selection flow: service choice is
// always scoped to the chosen mechanic's enabled offerings, so re-picking the
// mechanic starts the selection over.
type CatalogQueries interface {
	MechanicOfferings(ctx context.Context, mechanicID uuid.UUID) ([]ServiceCategoryView, error)
}

type CatalogReadStore interface {
	MechanicExists(ctx context.Context, mechanicID uuid.UUID) (bool, error)
	FindEnabledOfferings(ctx context.Context, mechanicID uuid.UUID) ([]OfferingRow, error)
}

// OfferingRow is the read-store row for one enabled offering.
type OfferingRow struct {
	ServiceID   uuid.UUID
	Name        string
	Category    string
	Price       float64
	DurationMin int32
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) MechanicOfferings(ctx context.Context, mechanicID uuid.UUID) ([]ServiceCategoryView, error) {
	exists, err := q.readStore.MechanicExists(ctx, mechanicID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMechanicNotFound
		}
		return nil, err
	}
	if !exists {
		return nil, ErrMechanicNotFound
	}

	rows, err := q.readStore.FindEnabledOfferings(ctx, mechanicID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]ServiceOfferingView)
	for _, row := range rows {
		grouped[row.Category] = append(grouped[row.Category], ServiceOfferingView{
			ServiceID:   row.ServiceID,
			Name:        row.Name,
			Price:       row.Price,
			DurationMin: row.DurationMin,
		})
	}

	categories := make([]ServiceCategoryView, 0, len(grouped))
	for category, services := range grouped {
		sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
		categories = append(categories, ServiceCategoryView{
			Category: category,
			Services: services,
		})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Category < categories[j].Category })

	return categories, nil
}
