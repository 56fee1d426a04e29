package commands

import (
	"context"
	"log/slog"

	"motorcare/internal/domain/user"
	"motorcare/internal/infra"
	"motorcare/internal/pkg/errs"
	"motorcare/internal/pkg/jwt"
	"motorcare/internal/pkg/password"
	"motorcare/internal/usecase/queries"
	"motorcare/internal/usecase/shared"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrAccountInactive      = errs.New("account inactive")
)

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	jwtSvc    *jwt.Service
	logger    *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtSvc *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		jwtSvc:    jwtSvc,
		logger:    logger,
	}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, hash, err := c.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same failure for unknown email and bad password.
			return nil, ErrAuthenticationFailed
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !view.IsActive {
		return nil, ErrAccountInactive
	}

	if err := password.ComparePassword(hash, plainPassword); err != nil {
		return nil, ErrAuthenticationFailed
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := c.jwtSvc.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	// Best effort: a failed timestamp update must not block the login.
	if err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID)
	}); err != nil {
		c.logger.Warn("failed to update last login", "user_id", view.ID, "error", err)
	}

	return &LoginResult{Token: token, User: view}, nil
}
