package repository

import (
	"context"

	"RendaFixa/internal/domain/models"
)

// SeriesSource fetches one SGS time series over a trailing window ending today.
// Implementations perform a single bounded request and never retry.
type SeriesSource interface {
	Fetch(ctx context.Context, seriesCode, lookbackDays int) ([]models.SeriesObservation, error)
}

// IndicatorProvider serves the current indicator bundle. The stale flag is true
// when the bundle comes from an expired cache entry after a failed refresh.
type IndicatorProvider interface {
	Get(ctx context.Context) (models.IndicatorBundle, bool, error)
	Invalidate()
}

// Metrics abstracts the metrics recorder used across services.
type Metrics interface {
	RecordFetch(series string, ok bool)
	RecordCacheEvent(event string)
	RecordAnnualRate(indicator string, rate float64)
	RecordRefreshDuration(seconds float64)
}
