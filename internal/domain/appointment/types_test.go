//go:build unit

package appointment_test

import (
	"testing"

	"motorcare/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from     appointment.Status
		action   appointment.Action
		wantNext appointment.Status
		wantOK   bool
	}{
		{
			name:     "scheduled to in-progress on start",
			from:     appointment.StatusScheduled,
			action:   appointment.ActionStart,
			wantNext: appointment.StatusInProgress,
			wantOK:   true,
		},
		{
			name:     "scheduled to cancelled on cancel",
			from:     appointment.StatusScheduled,
			action:   appointment.ActionCancel,
			wantNext: appointment.StatusCancelled,
			wantOK:   true,
		},
		{
			name:   "scheduled cannot complete directly",
			from:   appointment.StatusScheduled,
			action: appointment.ActionComplete,
			wantOK: false,
		},
		{
			name:     "in-progress to completed on complete",
			from:     appointment.StatusInProgress,
			action:   appointment.ActionComplete,
			wantNext: appointment.StatusCompleted,
			wantOK:   true,
		},
		{
			name:     "in-progress to cancelled on cancel",
			from:     appointment.StatusInProgress,
			action:   appointment.ActionCancel,
			wantNext: appointment.StatusCancelled,
			wantOK:   true,
		},
		{
			name:   "in-progress cannot start again",
			from:   appointment.StatusInProgress,
			action: appointment.ActionStart,
			wantOK: false,
		},
		{
			name:   "completed is terminal for start",
			from:   appointment.StatusCompleted,
			action: appointment.ActionStart,
			wantOK: false,
		},
		{
			name:   "completed is terminal for complete",
			from:   appointment.StatusCompleted,
			action: appointment.ActionComplete,
			wantOK: false,
		},
		{
			name:   "completed is terminal for cancel",
			from:   appointment.StatusCompleted,
			action: appointment.ActionCancel,
			wantOK: false,
		},
		{
			name:   "cancelled is terminal for start",
			from:   appointment.StatusCancelled,
			action: appointment.ActionStart,
			wantOK: false,
		},
		{
			name:   "cancelled is terminal for complete",
			from:   appointment.StatusCancelled,
			action: appointment.ActionComplete,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.from.Next(tt.action)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOK, tt.from.CanApply(tt.action))
			if tt.wantOK {
				assert.Equal(t, tt.wantNext, next)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, appointment.StatusScheduled.IsTerminal())
	assert.False(t, appointment.StatusInProgress.IsTerminal())
	assert.True(t, appointment.StatusCompleted.IsTerminal())
	assert.True(t, appointment.StatusCancelled.IsTerminal())
}

func TestStatusValidity(t *testing.T) {
	for _, s := range []appointment.Status{
		appointment.StatusScheduled,
		appointment.StatusInProgress,
		appointment.StatusCompleted,
		appointment.StatusCancelled,
	} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, appointment.Status("pending").IsValid())
}

func TestNewAction(t *testing.T) {
	for _, raw := range []string{"start", "complete", "cancel"} {
		action, err := appointment.NewAction(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(action))
	}

	_, err := appointment.NewAction("pause")
	require.ErrorIs(t, err, appointment.ErrUnknownAction)

	_, err = appointment.NewAction("")
	require.ErrorIs(t, err, appointment.ErrUnknownAction)
}
