package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side). ServiceName/ServicePrice/
// ServiceDurationMin are resolved at read time from the live catalog and are
// display-only; completion math always uses the snapshot columns.

type AppointmentView struct {
	ID                    uuid.UUID  `json:"id"`
	ClientID              uuid.UUID  `json:"client_id"`
	VehicleVIN            string     `json:"vehicle_vin"`
	MechanicID            uuid.UUID  `json:"mechanic_id"`
	MechanicName          string     `json:"mechanic_name"`
	ServiceID             *uuid.UUID `json:"service_id,omitempty"`
	ServiceType           string     `json:"service_type"`
	ServiceName           *string    `json:"service_name,omitempty"`
	ServicePrice          *float64   `json:"service_price,omitempty"`
	ServiceDurationMin    *int32     `json:"service_duration_min,omitempty"`
	ScheduledAt           time.Time  `json:"scheduled_at"`
	EstimatedCompletionAt *time.Time `json:"estimated_completion_at,omitempty"`
	ActualCompletionAt    *time.Time `json:"actual_completion_at,omitempty"`
	Status                string     `json:"status"`
	Price                 float64    `json:"price"`
	DurationMin           int32      `json:"duration_min"`
	Description           string     `json:"description"`
	Notes                 string     `json:"notes"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type AppointmentListItem struct {
	ID           uuid.UUID `json:"id"`
	VehicleVIN   string    `json:"vehicle_vin"`
	MechanicName string    `json:"mechanic_name"`
	ServiceType  string    `json:"service_type"`
	ServiceName  *string   `json:"service_name,omitempty"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	DurationMin  int32     `json:"duration_min"`
}

// ServiceOfferingView is one enabled offering of a mechanic.
type ServiceOfferingView struct {
	ServiceID   uuid.UUID `json:"service_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	DurationMin int32     `json:"duration_min"`
}

// ServiceCategoryView groups a mechanic's enabled offerings by category.
type ServiceCategoryView struct {
	Category string                `json:"category"`
	Services []ServiceOfferingView `json:"services"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
