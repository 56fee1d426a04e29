package components

import (
	"motorcare/internal/infra/notify"
	"motorcare/internal/infra/readstore"
	"motorcare/internal/infra/uow"
	"motorcare/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Constructors already return the usecase-facing interfaces.
		uow.NewPostgresUoW,
		notify.NewPostgresNotifier,
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
