package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"RendaFixa/internal/domain/models"
	"RendaFixa/internal/domain/repository"
	"RendaFixa/internal/rates"
	"RendaFixa/pkg/config"
	xlogger "RendaFixa/pkg/logger"
)

// IndicatorAggregator fetches all tracked SGS series concurrently and builds
// the indicator bundle. A refresh is all-or-nothing: any failed or unusable
// series fails the whole refresh and nothing partial is produced.
type IndicatorAggregator struct {
	source  repository.SeriesSource
	cfg     *config.Config
	metrics repository.Metrics
	logger  *xlogger.Logger
}

func NewIndicatorAggregator(source repository.SeriesSource, cfg *config.Config, metrics repository.Metrics, logger *xlogger.Logger) *IndicatorAggregator {
	return &IndicatorAggregator{source: source, cfg: cfg, metrics: metrics, logger: logger}
}

// Refresh fetches the four series in parallel and assembles a complete bundle.
func (a *IndicatorAggregator) Refresh(ctx context.Context) (models.IndicatorBundle, error) {
	start := time.Now()

	series := a.cfg.SGS.Series
	var (
		wg        sync.WaitGroup
		policy    []models.SeriesObservation
		interbank []models.SeriesObservation
		savings   []models.SeriesObservation
		price     []models.SeriesObservation
		errs      [4]error
	)

	fetch := func(dst *[]models.SeriesObservation, errSlot *error, sc config.SeriesConfig) {
		defer wg.Done()
		obs, err := a.source.Fetch(ctx, sc.Code, sc.LookbackDays)
		if err != nil {
			*errSlot = err
			return
		}
		if len(obs) == 0 {
			*errSlot = &models.SourceUnavailableError{Series: sc.Code, Err: errors.New("empty series")}
			return
		}
		*dst = obs
	}

	wg.Add(4)
	go fetch(&policy, &errs[0], series.PolicyRate)
	go fetch(&interbank, &errs[1], series.InterbankRate)
	go fetch(&savings, &errs[2], series.SavingsYield)
	go fetch(&price, &errs[3], series.PriceIndex)
	wg.Wait()

	if err := errors.Join(errs[0], errs[1], errs[2], errs[3]); err != nil {
		if a.logger != nil {
			a.logger.Error("indicator refresh failed", xlogger.Error(err))
		}
		return models.IndicatorBundle{}, &models.AggregationError{Err: err}
	}

	accumulated, err := rates.AccumulateTwelveMonths(price)
	if err != nil {
		return models.IndicatorBundle{}, &models.AggregationError{
			Err: fmt.Errorf("series %d: %w", series.PriceIndex.Code, err),
		}
	}

	dailyRate := latest(interbank).Value
	monthlyRate := latest(savings).Value
	priceVariation := latest(price).Value

	bundle := models.IndicatorBundle{
		PolicyRate: models.IndicatorRecord{
			Name:       "Selic",
			AnnualRate: rates.Round2(latest(policy).Value),
			AsOf:       asOf(policy),
			Source:     sourceLabel(series.PolicyRate.Code),
		},
		InterbankRate: models.IndicatorRecord{
			Name:       "CDI",
			AnnualRate: rates.Round2(rates.AnnualFromDaily(dailyRate)),
			DailyRate:  &dailyRate,
			AsOf:       asOf(interbank),
			Source:     sourceLabel(series.InterbankRate.Code),
		},
		SavingsYield: models.IndicatorRecord{
			Name:        "Poupança",
			AnnualRate:  rates.Round2(rates.AnnualFromMonthly(monthlyRate)),
			MonthlyRate: &monthlyRate,
			AsOf:        asOf(savings),
			Source:      sourceLabel(series.SavingsYield.Code),
		},
		PriceIndex: models.IndicatorRecord{
			Name:        "IPCA",
			AnnualRate:  rates.Round2(accumulated),
			MonthlyRate: &priceVariation,
			AsOf:        asOf(price),
			Source:      sourceLabel(series.PriceIndex.Code),
		},
	}

	if a.metrics != nil {
		a.metrics.RecordAnnualRate(string(models.IndicatorPolicyRate), bundle.PolicyRate.AnnualRate)
		a.metrics.RecordAnnualRate(string(models.IndicatorInterbankRate), bundle.InterbankRate.AnnualRate)
		a.metrics.RecordAnnualRate(string(models.IndicatorSavingsYield), bundle.SavingsYield.AnnualRate)
		a.metrics.RecordAnnualRate(string(models.IndicatorPriceIndex), bundle.PriceIndex.AnnualRate)
		a.metrics.RecordRefreshDuration(time.Since(start).Seconds())
	}
	if a.logger != nil {
		a.logger.Info("indicators refreshed",
			xlogger.Float64("policy_rate", bundle.PolicyRate.AnnualRate),
			xlogger.Float64("interbank_rate", bundle.InterbankRate.AnnualRate),
			xlogger.Float64("savings_yield", bundle.SavingsYield.AnnualRate),
			xlogger.Float64("price_index", bundle.PriceIndex.AnnualRate),
			xlogger.Duration("took", time.Since(start)),
		)
	}

	return bundle, nil
}

// latest returns the newest observation; series arrive ascending by date.
func latest(obs []models.SeriesObservation) models.SeriesObservation {
	return obs[len(obs)-1]
}

func asOf(obs []models.SeriesObservation) string {
	return latest(obs).Date.Format("2006-01-02")
}

func sourceLabel(code int) string {
	return fmt.Sprintf("BCB/SGS %d", code)
}
