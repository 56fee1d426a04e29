package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"motorcare/internal/domain/appointment"
	"motorcare/internal/infra/db"
	"motorcare/internal/usecase/commands"

	"github.com/google/uuid"
)

const insertNotificationSQL = `
INSERT INTO notifications (id, topic, payload, status)
VALUES ($1, $2, $3, 'queued')`

const enqueueTimeout = 5 * time.Second

// PostgresNotifier queues notification rows for out-of-band delivery. The
// insert runs detached from the request on its own timeout context, so a
// client disconnect after commit cannot cancel it, and all failures are
// logged and swallowed so a broken side-channel never affects an
// already-committed appointment write.
type PostgresNotifier struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPostgresNotifier(dbtx db.DBTX, logger *slog.Logger) commands.Notifier {
	return &PostgresNotifier{db: dbtx, logger: logger}
}

func (n *PostgresNotifier) AppointmentCreated(_ context.Context, appointmentID, clientID, mechanicID uuid.UUID) {
	n.enqueue("appointment.created", map[string]any{
		"appointment_id": appointmentID,
		"client_id":      clientID,
		"mechanic_id":    mechanicID,
	})
}

func (n *PostgresNotifier) StatusChanged(_ context.Context, appointmentID uuid.UUID, oldStatus, newStatus appointment.Status) {
	n.enqueue("appointment.status_changed", map[string]any{
		"appointment_id": appointmentID,
		"old_status":     string(oldStatus),
		"new_status":     string(newStatus),
	})
}

func (n *PostgresNotifier) enqueue(topic string, payload map[string]any) {
	body, err := json.Marshal(payload)
	if err != nil {
		n.logger.Warn("failed to marshal notification payload", "topic", topic, "error", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
		defer cancel()

		if _, err := n.db.Exec(ctx, insertNotificationSQL, uuid.New(), topic, body); err != nil {
			n.logger.Warn("failed to enqueue notification", "topic", topic, "error", err)
		}
	}()
}
