package response

import (
	"motorcare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceOfferingResponse struct {
	ServiceID   uuid.UUID `json:"service_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	DurationMin int32     `json:"duration_minutes"`
}

type ServiceCategoryResponse struct {
	Category string                    `json:"category"`
	Services []ServiceOfferingResponse `json:"services"`
}

func FromServiceCategories(categories []queries.ServiceCategoryView) []ServiceCategoryResponse {
	result := make([]ServiceCategoryResponse, len(categories))
	for i, cat := range categories {
		services := make([]ServiceOfferingResponse, len(cat.Services))
		for j, svc := range cat.Services {
			services[j] = ServiceOfferingResponse{
				ServiceID:   svc.ServiceID,
				Name:        svc.Name,
				Price:       svc.Price,
				DurationMin: svc.DurationMin,
			}
		}
		result[i] = ServiceCategoryResponse{
			Category: cat.Category,
			Services: services,
		}
	}
	return result
}
