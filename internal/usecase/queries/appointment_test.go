//go:build unit

package queries_test

import (
	"context"
	"testing"

	"motorcare/internal/domain/user"
	"motorcare/internal/usecase/queries"
	"motorcare/internal/usecase/shared"
	"motorcare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentReadStore struct {
	view *queries.AppointmentView
	err  error
}

func (f *fakeAppointmentReadStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.AppointmentView, error) {
	return f.view, f.err
}

func (f *fakeAppointmentReadStore) FindByClient(_ context.Context, _ uuid.UUID, _ queries.ListOptions) ([]*queries.AppointmentListItem, error) {
	return nil, f.err
}

func (f *fakeAppointmentReadStore) FindByMechanic(_ context.Context, _ uuid.UUID, _ queries.ListOptions) ([]*queries.AppointmentListItem, error) {
	return nil, f.err
}

func (f *fakeAppointmentReadStore) FindAll(_ context.Context, _ queries.ListOptions) ([]*queries.AppointmentListItem, error) {
	return nil, f.err
}

func TestGetByIDVisibility(t *testing.T) {
	b := builder.NewAppointmentBuilder()
	view := b.BuildView()
	store := &fakeAppointmentReadStore{view: view}
	q := queries.NewAppointmentQueries(store)

	tests := []struct {
		name    string
		actor   shared.Actor
		wantErr error
	}{
		{
			name:  "owning client sees it",
			actor: shared.Actor{ID: b.ClientID, Role: user.RoleClient},
		},
		{
			name:  "assigned mechanic sees it",
			actor: shared.Actor{ID: b.MechanicID, Role: user.RoleMechanic},
		},
		{
			name:  "any admin sees it",
			actor: shared.Actor{ID: uuid.New(), Role: user.RoleAdmin},
		},
		{
			name:    "unrelated client gets not-found, not forbidden",
			actor:   shared.Actor{ID: uuid.New(), Role: user.RoleClient},
			wantErr: queries.ErrAppointmentNotFound,
		},
		{
			name:    "unassigned mechanic gets not-found",
			actor:   shared.Actor{ID: uuid.New(), Role: user.RoleMechanic},
			wantErr: queries.ErrAppointmentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.GetByID(context.Background(), tt.actor, b.ID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, view, got)
		})
	}
}
