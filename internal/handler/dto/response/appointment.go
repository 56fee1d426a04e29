package response

import (
	"time"

	"motorcare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
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
	ScheduledAt           time.Time  `json:"scheduled_time"`
	EstimatedCompletionAt *time.Time `json:"estimated_completion_time,omitempty"`
	ActualCompletionAt    *time.Time `json:"actual_completion_time,omitempty"`
	Status                string     `json:"status"`
	Price                 float64    `json:"price"`
	DurationMin           int32      `json:"duration_minutes"`
	Description           string     `json:"description"`
	Notes                 string     `json:"notes"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type AppointmentListResponse struct {
	ID           uuid.UUID `json:"id"`
	VehicleVIN   string    `json:"vehicle_vin"`
	MechanicName string    `json:"mechanic_name"`
	ServiceType  string    `json:"service_type"`
	ServiceName  *string   `json:"service_name,omitempty"`
	ScheduledAt  time.Time `json:"scheduled_time"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	DurationMin  int32     `json:"duration_minutes"`
}

func FromAppointmentView(view *queries.AppointmentView) *AppointmentResponse {
	var resp AppointmentResponse
	// Field names line up one-to-one with the view.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromAppointmentListItems(items []*queries.AppointmentListItem) []*AppointmentListResponse {
	result := make([]*AppointmentListResponse, len(items))
	for i, item := range items {
		var resp AppointmentListResponse
		_ = copier.Copy(&resp, item)
		result[i] = &resp
	}
	return result
}
