package bootstrap

import (
	"motorcare/internal/handler/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func() prometheus.Registerer { return prometheus.DefaultRegisterer },
		middleware.NewHTTPMetrics,
	),
)
