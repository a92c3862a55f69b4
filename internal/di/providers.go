package di

import (
	"RendaFixa/internal/domain/repository"
	"RendaFixa/internal/handler/api"
	icache "RendaFixa/internal/service/cache"
	"RendaFixa/internal/service/sgs"
	"RendaFixa/internal/usecase"
	"RendaFixa/pkg/config"
	xhttp "RendaFixa/pkg/http"
	xlogger "RendaFixa/pkg/logger"
	"RendaFixa/pkg/metrics"
	"RendaFixa/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	return xlogger.New(&xlogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideSeriesSource creates the SGS upstream client.
func ProvideSeriesSource(cfg *config.Config, m repository.Metrics) repository.SeriesSource {
	return sgs.New(cfg.SGS.BaseURL, cfg.SGS.Timeout, m)
}

// ProvideAggregator creates the indicator aggregation use case.
func ProvideAggregator(source repository.SeriesSource, cfg *config.Config, m repository.Metrics, l *xlogger.Logger) *usecase.IndicatorAggregator {
	return usecase.NewIndicatorAggregator(source, cfg, m, l)
}

// ProvideIndicatorCache creates the TTL cache in front of the aggregator.
func ProvideIndicatorCache(agg *usecase.IndicatorAggregator, cfg *config.Config, m repository.Metrics, l *xlogger.Logger) repository.IndicatorProvider {
	return icache.New(agg.Refresh, cfg.Cache.TTL, m, l)
}

// ProvideProjectionEngine creates the projection use case.
func ProvideProjectionEngine() *usecase.ProjectionEngine {
	return usecase.NewProjectionEngine()
}

// ProvideHandler creates the Echo HTTP handler.
func ProvideHandler(l *xlogger.Logger, provider repository.IndicatorProvider, engine *usecase.ProjectionEngine) xhttp.Handler {
	return api.NewIndicatorsEchoHandler(l, provider, engine)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *xlogger.Logger, handler xhttp.Handler, provider repository.IndicatorProvider) *server.App {
	return server.New(cfg, l, handler, provider)
}
