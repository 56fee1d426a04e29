//go:build unit || e2e

package builder

import (
	"time"

	"motorcare/internal/domain/appointment"
	reqdto "motorcare/internal/handler/dto/request"
	"motorcare/internal/pkg/clock"
	"motorcare/internal/usecase/queries"
	"motorcare/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// AppointmentBuilder assembles consistent appointment fixtures across the
// domain, request DTO and read-model representations.
type AppointmentBuilder struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	VehicleVIN  string
	MechanicID  uuid.UUID
	ServiceID   uuid.UUID
	ServiceName string
	Category    string
	Enabled     bool
	Price       float64
	DurationMin int32
	Mileage     int32
	Now         time.Time
	ScheduledAt time.Time
	Status      string
	Description string
	Notes       string
	WithCatalog bool
	ServiceType string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		VehicleVIN:  "1HGBH41JXMN109186",
		MechanicID:  uuid.New(),
		ServiceID:   uuid.New(),
		ServiceName: "Oil Change",
		Category:    "maintenance",
		Enabled:     true,
		Price:       49.99,
		DurationMin: 45,
		Mileage:     42000,
		Now:         now,
		ScheduledAt: now.Add(48 * time.Hour),
		Status:      "scheduled",
		Description: "Regular maintenance",
		WithCatalog: true,
		ServiceType: "",
	}
}

func (b *AppointmentBuilder) WithScheduledAt(t time.Time) *AppointmentBuilder {
	b.ScheduledAt = t
	return b
}

func (b *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	b.Status = status
	return b
}

func (b *AppointmentBuilder) WithDisabledOffering() *AppointmentBuilder {
	b.Enabled = false
	return b
}

// WithFreeTextService drops the catalog offering and books by service type.
func (b *AppointmentBuilder) WithFreeTextService(serviceType string) *AppointmentBuilder {
	b.WithCatalog = false
	b.ServiceType = serviceType
	return b
}

func (b *AppointmentBuilder) VehicleSpec() appointment.VehicleSpec {
	return appointment.VehicleSpec{
		VIN:     b.VehicleVIN,
		OwnerID: b.ClientID,
		Mileage: b.Mileage,
	}
}

func (b *AppointmentBuilder) MechanicSpec() appointment.MechanicSpec {
	return appointment.MechanicSpec{
		ID:        b.MechanicID,
		FirstName: "Jo",
		LastName:  "Wrench",
	}
}

func (b *AppointmentBuilder) OfferingSpec() *appointment.OfferingSpec {
	if !b.WithCatalog {
		return nil
	}
	return &appointment.OfferingSpec{
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		Category:    b.Category,
		Enabled:     b.Enabled,
		Price:       b.Price,
		DurationMin: b.DurationMin,
	}
}

func (b *AppointmentBuilder) ScheduleInput() appointment.ScheduleInput {
	return appointment.ScheduleInput{
		ClientID:    b.ClientID,
		ScheduledAt: b.ScheduledAt,
		ServiceType: b.ServiceType,
		Description: b.Description,
		Notes:       b.Notes,
	}
}

func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	factory := appointment.NewFactory(clock.NewMockClock(b.Now))
	return factory.Schedule(b.VehicleSpec(), b.MechanicSpec(), b.OfferingSpec(), b.ScheduleInput())
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	req := reqdto.CreateAppointmentRequest{
		VehicleVIN:    b.VehicleVIN,
		MechanicID:    b.MechanicID,
		ScheduledTime: b.ScheduledAt,
		Description:   b.Description,
	}
	if b.WithCatalog {
		id := b.ServiceID
		req.ServiceID = &id
	} else {
		req.ServiceType = b.ServiceType
	}
	return req
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	serviceType := b.ServiceType
	view := &queries.AppointmentView{
		ID:           b.ID,
		ClientID:     b.ClientID,
		VehicleVIN:   b.VehicleVIN,
		MechanicID:   b.MechanicID,
		MechanicName: "Jo Wrench",
		ServiceType:  serviceType,
		ScheduledAt:  b.ScheduledAt,
		Status:       b.Status,
		Price:        b.Price,
		DurationMin:  b.DurationMin,
		Description:  b.Description,
		Notes:        b.Notes,
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
	if b.WithCatalog {
		id := b.ServiceID
		name := b.ServiceName
		price := b.Price
		duration := b.DurationMin
		view.ServiceID = &id
		view.ServiceType = b.ServiceName
		view.ServiceName = &name
		view.ServicePrice = &price
		view.ServiceDurationMin = &duration
	}
	return view
}

func (b *AppointmentBuilder) BuildRM() *readmodel.AppointmentRM {
	rm := &readmodel.AppointmentRM{
		ID:          b.ID,
		ClientID:    b.ClientID,
		VehicleVIN:  b.VehicleVIN,
		MechanicID:  b.MechanicID,
		ServiceType: b.ServiceType,
		ScheduledAt: b.ScheduledAt,
		Status:      b.Status,
		Price:       b.Price,
		DurationMin: b.DurationMin,
		Description: b.Description,
		Notes:       b.Notes,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
	if b.WithCatalog {
		id := b.ServiceID
		rm.ServiceID = &id
		rm.ServiceType = b.ServiceName
	}
	return rm
}

func (b *AppointmentBuilder) VehicleRM() *readmodel.VehicleRM {
	return &readmodel.VehicleRM{
		VIN:     b.VehicleVIN,
		OwnerID: b.ClientID,
		Make:    "Toyota",
		Model:   "Corolla",
		Year:    2020,
		Mileage: b.Mileage,
	}
}

func (b *AppointmentBuilder) MechanicRM() *readmodel.MechanicRM {
	return &readmodel.MechanicRM{
		ID:        b.MechanicID,
		FirstName: "Jo",
		LastName:  "Wrench",
		IsActive:  true,
	}
}

func (b *AppointmentBuilder) OfferingRM() *readmodel.OfferingRM {
	return &readmodel.OfferingRM{
		MechanicID:  b.MechanicID,
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		Category:    b.Category,
		Enabled:     b.Enabled,
		Price:       b.Price,
		DurationMin: b.DurationMin,
	}
}
