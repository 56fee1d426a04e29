//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"motorcare/internal/domain/appointment"
	"motorcare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type factoryCase struct {
	name   string
	mutate func(*builder.AppointmentBuilder)
	errIs  error
}

func runFactoryCases(t *testing.T, cases []factoryCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewAppointmentBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestFactorySchedule(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewAppointmentBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, appointment.StatusScheduled, actual.Status())
		assert.Equal(t, b.ClientID, actual.ClientID())
		assert.Equal(t, b.VehicleVIN, actual.VehicleVIN())
		assert.Equal(t, b.MechanicID, actual.MechanicID())
		require.NotNil(t, actual.ServiceID())
		assert.Equal(t, b.ServiceID, *actual.ServiceID())
		assert.Equal(t, "Oil Change", actual.ServiceType(), "catalog name fills the empty service type")
		assert.InDelta(t, 49.99, actual.Price(), 0.001)
		assert.Equal(t, int32(45), actual.DurationMin())
		assert.Nil(t, actual.ActualCompletionAt())
	})

	t.Run("schedule validation", func(t *testing.T) {
		runFactoryCases(t, []factoryCase{
			{
				name: "one second into the future is enough",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithScheduledAt(b.Now.Add(time.Second))
				},
			},
			{
				name: "exactly now is rejected",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithScheduledAt(b.Now)
				},
				errIs: appointment.ErrPastSchedule,
			},
			{
				name: "past time is rejected",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithScheduledAt(b.Now.Add(-time.Hour))
				},
				errIs: appointment.ErrPastSchedule,
			},
		})
	})

	t.Run("offering validation", func(t *testing.T) {
		runFactoryCases(t, []factoryCase{
			{
				name: "disabled offering is rejected",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithDisabledOffering()
				},
				errIs: appointment.ErrOfferingDisabled,
			},
			{
				name: "free-text service type needs no offering",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithFreeTextService("custom exhaust work")
				},
			},
			{
				name: "neither offering nor service type",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithFreeTextService("")
				},
				errIs: appointment.ErrMissingService,
			},
			{
				name: "whitespace service type counts as empty",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithFreeTextService("   ")
				},
				errIs: appointment.ErrMissingService,
			},
		})
	})

	t.Run("free-text booking carries no snapshot", func(t *testing.T) {
		b := builder.NewAppointmentBuilder()
		b.WithFreeTextService("custom exhaust work")

		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Nil(t, actual.ServiceID())
		assert.Equal(t, "custom exhaust work", actual.ServiceType())
		assert.Zero(t, actual.Price())
		assert.Zero(t, actual.DurationMin())
	})

	t.Run("overrides replace the snapshot", func(t *testing.T) {
		b := builder.NewAppointmentBuilder()
		price := 15.0
		duration := int32(20)
		in := b.ScheduleInput()
		in.PriceOverride = &price
		in.DurationOverride = &duration

		factory := appointment.NewFactory(fixedClock{b.Now})
		actual, err := factory.Schedule(b.VehicleSpec(), b.MechanicSpec(), b.OfferingSpec(), in)
		require.NoError(t, err)

		assert.InDelta(t, 15.0, actual.Price(), 0.001)
		assert.Equal(t, int32(20), actual.DurationMin())
	})

	t.Run("negative override is rejected", func(t *testing.T) {
		b := builder.NewAppointmentBuilder()
		price := -1.0
		in := b.ScheduleInput()
		in.PriceOverride = &price

		factory := appointment.NewFactory(fixedClock{b.Now})
		_, err := factory.Schedule(b.VehicleSpec(), b.MechanicSpec(), b.OfferingSpec(), in)
		require.Error(t, err)
	})
}

func TestAppointmentTransition(t *testing.T) {
	now := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)

	t.Run("completion stamps the actual completion time", func(t *testing.T) {
		appt, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, appt.Transition(appointment.ActionStart, now))
		assert.Equal(t, appointment.StatusInProgress, appt.Status())
		assert.Nil(t, appt.ActualCompletionAt())

		require.NoError(t, appt.Transition(appointment.ActionComplete, now))
		assert.Equal(t, appointment.StatusCompleted, appt.Status())
		require.NotNil(t, appt.ActualCompletionAt())
		assert.Equal(t, now, *appt.ActualCompletionAt())
		assert.True(t, appt.IsTerminal())
	})

	t.Run("illegal transitions are rejected without side effects", func(t *testing.T) {
		appt, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)

		err = appt.Transition(appointment.ActionComplete, now)
		require.ErrorIs(t, err, appointment.ErrIllegalTransition)
		assert.Equal(t, appointment.StatusScheduled, appt.Status())
		assert.Nil(t, appt.ActualCompletionAt())
	})

	t.Run("cancelled stays clean of completion time", func(t *testing.T) {
		appt, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, appt.Transition(appointment.ActionCancel, now))
		assert.Equal(t, appointment.StatusCancelled, appt.Status())
		assert.Nil(t, appt.ActualCompletionAt())
	})
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time { return c.at }
