package request

import (
	"strings"
	"time"

	"motorcare/internal/domain/appointment"
	"motorcare/internal/domain/servicelog"
	"motorcare/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ClientID            *uuid.UUID `json:"client_id,omitempty"`
	VehicleVIN          string     `json:"vehicle_vin" binding:"required"`
	MechanicID          uuid.UUID  `json:"mechanic_id" binding:"required"`
	ServiceID           *uuid.UUID `json:"service_id,omitempty"`
	ServiceType         string     `json:"service_type,omitempty"`
	ScheduledTime       time.Time  `json:"scheduled_time" binding:"required"`
	EstimatedCompletion *time.Time `json:"estimated_completion_time,omitempty"`
	Description         string     `json:"description,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	PriceOverride       *float64   `json:"price_override,omitempty"`
	DurationOverrideMin *int32     `json:"duration_override_minutes,omitempty"`
}

func (r CreateAppointmentRequest) ToInput() commands.CreateAppointmentInput {
	return commands.CreateAppointmentInput{
		ClientID:              r.ClientID,
		VehicleVIN:            strings.TrimSpace(r.VehicleVIN),
		MechanicID:            r.MechanicID,
		ServiceID:             r.ServiceID,
		ServiceType:           strings.TrimSpace(r.ServiceType),
		ScheduledAt:           r.ScheduledTime,
		EstimatedCompletionAt: r.EstimatedCompletion,
		Description:           strings.TrimSpace(r.Description),
		Notes:                 strings.TrimSpace(r.Notes),
		PriceOverride:         r.PriceOverride,
		DurationOverride:      r.DurationOverrideMin,
	}
}

type PartUsageRequest struct {
	Name        string  `json:"name" binding:"required"`
	PartNumber  *string `json:"part_number,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    *int32  `json:"quantity,omitempty"`
	PurchasedBy string  `json:"purchased_by,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

type CompletionRequest struct {
	Mileage      *int32             `json:"mileage" binding:"required"`
	Notes        string             `json:"notes,omitempty"`
	CostOverride *float64           `json:"cost_override,omitempty"`
	Parts        []PartUsageRequest `json:"parts,omitempty"`
}

// TransitionRequest drives one lifecycle action. Completion is required for
// the complete action and ignored for the rest.
type TransitionRequest struct {
	Action     string             `json:"action" binding:"required,oneof=start complete cancel"`
	Completion *CompletionRequest `json:"completion,omitempty"`
}

func (r TransitionRequest) ToInput() (commands.TransitionInput, error) {
	action, err := appointment.NewAction(r.Action)
	if err != nil {
		return commands.TransitionInput{}, err
	}

	in := commands.TransitionInput{Action: action}
	if r.Completion != nil {
		parts := make([]servicelog.PartUsageInput, 0, len(r.Completion.Parts))
		for _, p := range r.Completion.Parts {
			parts = append(parts, servicelog.PartUsageInput{
				Name:        strings.TrimSpace(p.Name),
				PartNumber:  p.PartNumber,
				UnitPrice:   p.UnitPrice,
				Quantity:    p.Quantity,
				PurchasedBy: p.PurchasedBy,
				Notes:       strings.TrimSpace(p.Notes),
			})
		}
		in.Completion = &servicelog.RecordInput{
			Mileage:      r.Completion.Mileage,
			Notes:        strings.TrimSpace(r.Completion.Notes),
			CostOverride: r.Completion.CostOverride,
			Parts:        parts,
		}
	}

	return in, nil
}
