package repository

import (
	"context"

	"motorcare/internal/infra"
	"motorcare/internal/infra/db"

	"github.com/google/uuid"
)

const updateLastLoginSQL = `
UPDATE users
SET last_login = now(), updated_at = now()
WHERE id = $1`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, updateLastLoginSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}

	return nil
}
