package readstore

import (
	"context"

	"motorcare/internal/infra"
	"motorcare/internal/infra/db"
	"motorcare/internal/pkg/pgconv"
	"motorcare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Snapshot columns (price, duration_minutes) are returned as stored; the
// joined services columns reflect the live catalog and may drift from the
// snapshot after catalog edits. Both are surfaced so clients can show
// "current price" next to "your price".
const appointmentViewSQL = `
SELECT a.id, a.client_id, a.vehicle_vin, a.mechanic_id,
       m.first_name, m.last_name,
       a.service_id, a.service_type,
       s.name AS service_name, s.price AS service_price, s.duration_minutes AS service_duration_minutes,
       a.scheduled_time, a.estimated_completion_time, a.actual_completion_time,
       a.status, a.price, a.duration_minutes, a.description, a.notes,
       a.created_at, a.updated_at
FROM appointments a
JOIN mechanics m ON m.id = a.mechanic_id
LEFT JOIN services s ON s.id = a.service_id`

const appointmentListSQL = `
SELECT a.id, a.vehicle_vin,
       m.first_name, m.last_name,
       a.service_type, s.name AS service_name,
       a.scheduled_time, a.status, a.price, a.duration_minutes
FROM appointments a
JOIN mechanics m ON m.id = a.mechanic_id
LEFT JOIN services s ON s.id = a.service_id`

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx, appointmentViewSQL+` WHERE a.id = $1`, id)

	var (
		view                 queries.AppointmentView
		firstName, lastName  string
		serviceID            pgtype.UUID
		serviceName          pgtype.Text
		servicePrice         pgtype.Numeric
		serviceDuration      pgtype.Int4
		estimatedCompletion  pgtype.Timestamptz
		actualCompletion     pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ClientID, &view.VehicleVIN, &view.MechanicID,
		&firstName, &lastName,
		&serviceID, &view.ServiceType,
		&serviceName, &servicePrice, &serviceDuration,
		&view.ScheduledAt, &estimatedCompletion, &actualCompletion,
		&view.Status, &view.Price, &view.DurationMin, &view.Description, &view.Notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	view.MechanicName = firstName + " " + lastName
	view.ServiceID = pgconv.UUIDPtrFromPgtype(serviceID)
	view.ServiceName = pgconv.StringPtrFromPgtype(serviceName)
	view.ServiceDurationMin = pgconv.Int32PtrFromPgtype(serviceDuration)
	view.EstimatedCompletionAt = pgconv.TimePtrFromPgtype(estimatedCompletion)
	view.ActualCompletionAt = pgconv.TimePtrFromPgtype(actualCompletion)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	view.ServicePrice, err = pgconv.Float64PtrFromNumeric(servicePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid service price", err)
	}

	return &view, nil
}

func (r *AppointmentReadStore) FindByClient(ctx context.Context, clientID uuid.UUID, opts queries.ListOptions) ([]*queries.AppointmentListItem, error) {
	sql := appointmentListSQL + ` WHERE a.client_id = $1` + listTail(opts)
	return r.list(ctx, sql, clientID)
}

func (r *AppointmentReadStore) FindByMechanic(ctx context.Context, mechanicID uuid.UUID, opts queries.ListOptions) ([]*queries.AppointmentListItem, error) {
	sql := appointmentListSQL + ` WHERE a.mechanic_id = $1` + listTail(opts)
	return r.list(ctx, sql, mechanicID)
}

func (r *AppointmentReadStore) FindAll(ctx context.Context, opts queries.ListOptions) ([]*queries.AppointmentListItem, error) {
	sql := appointmentListSQL
	if opts.Upcoming {
		sql += ` WHERE a.status NOT IN ('completed', 'cancelled') ORDER BY a.scheduled_time ASC`
	} else {
		sql += ` ORDER BY a.scheduled_time DESC`
	}
	return r.list(ctx, sql)
}

// listTail appends the status filter and sort for scoped lists. Upcoming
// shows what is still ahead, soonest first; the default is a history view,
// newest first.
func listTail(opts queries.ListOptions) string {
	if opts.Upcoming {
		return ` AND a.status NOT IN ('completed', 'cancelled') ORDER BY a.scheduled_time ASC`
	}
	return ` ORDER BY a.scheduled_time DESC`
}

func (r *AppointmentReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var items []*queries.AppointmentListItem
	for rows.Next() {
		var (
			it                  queries.AppointmentListItem
			serviceName         pgtype.Text
			firstName, lastName string
		)
		err := rows.Scan(
			&it.ID, &it.VehicleVIN,
			&firstName, &lastName,
			&it.ServiceType, &serviceName,
			&it.ScheduledAt, &it.Status, &it.Price, &it.DurationMin,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		it.MechanicName = firstName + " " + lastName
		it.ServiceName = pgconv.StringPtrFromPgtype(serviceName)
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}

	return items, nil
}
