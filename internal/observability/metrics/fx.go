package metrics

import (
	"github.com/managekarlo/backoffice/internal/config"
	"go.uber.org/fx"
)

func newConfig(appCfg config.Config) Config {
	return Config{
		Enabled:          appCfg.Metrics.Enabled,
		ExporterEndpoint: appCfg.Metrics.Endpoint,
		ExporterProtocol: appCfg.Metrics.Exporter,
		ServiceName:      appCfg.AppName,
	}
}

var Module = fx.Module("observability.metrics",
	fx.Provide(newConfig),
	fx.Provide(NewProvider),
	fx.Provide(New),
	fx.Provide(NewHTTPMetrics),
)
