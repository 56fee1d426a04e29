package commands

import (
	"context"

	"motorcare/internal/domain/appointment"

	"github.com/google/uuid"
)

// Notifier is the notification/chat side-channel. It observes lifecycle
// events but never participates in workflow correctness: implementations
// must swallow their own failures, and callers invoke it only after the
// authoritative write has committed.
type Notifier interface {
	AppointmentCreated(ctx context.Context, appointmentID, clientID, mechanicID uuid.UUID)
	StatusChanged(ctx context.Context, appointmentID uuid.UUID, oldStatus, newStatus appointment.Status)
}
