package usecase

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"RendaFixa/internal/domain/models"
	"RendaFixa/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPolicyCode    = 1178
	testInterbankCode = 12
	testSavingsCode   = 195
	testPriceCode     = 433
)

// fakeSource serves canned observations per series code and counts fetches.
type fakeSource struct {
	mu      sync.Mutex
	data    map[int][]models.SeriesObservation
	errs    map[int]error
	fetches map[int]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		data:    make(map[int][]models.SeriesObservation),
		errs:    make(map[int]error),
		fetches: make(map[int]int),
	}
}

func (f *fakeSource) Fetch(_ context.Context, code, _ int) ([]models.SeriesObservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches[code]++
	if err := f.errs[code]; err != nil {
		return nil, err
	}
	return f.data[code], nil
}

func dailySeries(values ...float64) []models.SeriesObservation {
	obs := make([]models.SeriesObservation, 0, len(values))
	base := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	for i, v := range values {
		obs = append(obs, models.SeriesObservation{Date: base.AddDate(0, 0, i), Value: v})
	}
	return obs
}

func monthlySeries(n int, v float64) []models.SeriesObservation {
	obs := make([]models.SeriesObservation, 0, n)
	base := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		obs = append(obs, models.SeriesObservation{Date: base.AddDate(0, i, 0), Value: v})
	}
	return obs
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SGS.Series.PolicyRate = config.SeriesConfig{Code: testPolicyCode, LookbackDays: 30}
	cfg.SGS.Series.InterbankRate = config.SeriesConfig{Code: testInterbankCode, LookbackDays: 30}
	cfg.SGS.Series.SavingsYield = config.SeriesConfig{Code: testSavingsCode, LookbackDays: 60}
	cfg.SGS.Series.PriceIndex = config.SeriesConfig{Code: testPriceCode, LookbackDays: 400}
	return cfg
}

func healthySource() *fakeSource {
	src := newFakeSource()
	src.data[testPolicyCode] = dailySeries(14.75, 15.0)
	src.data[testInterbankCode] = dailySeries(0.052531, 0.054266)
	src.data[testSavingsCode] = monthlySeries(2, 0.6721)
	src.data[testPriceCode] = monthlySeries(13, 0.4)
	return src
}

func TestRefreshBuildsCompleteBundle(t *testing.T) {
	src := healthySource()
	agg := NewIndicatorAggregator(src, testConfig(), nil, nil)

	bundle, err := agg.Refresh(context.Background())
	require.NoError(t, err)

	// Policy rate passes through the latest observation unchanged.
	assert.Equal(t, 15.0, bundle.PolicyRate.AnnualRate)
	assert.Equal(t, "Selic", bundle.PolicyRate.Name)
	assert.Equal(t, "BCB/SGS 1178", bundle.PolicyRate.Source)
	assert.Equal(t, "2025-06-03", bundle.PolicyRate.AsOf)
	assert.Nil(t, bundle.PolicyRate.DailyRate)

	// Interbank annualizes the latest daily observation over 252 business days.
	wantCDI := (math.Pow(1+0.054266/100, 252) - 1) * 100
	assert.InDelta(t, wantCDI, bundle.InterbankRate.AnnualRate, 0.005)
	require.NotNil(t, bundle.InterbankRate.DailyRate)
	assert.Equal(t, 0.054266, *bundle.InterbankRate.DailyRate)

	// Savings annualizes the latest monthly observation over 12 months.
	wantSavings := (math.Pow(1+0.6721/100, 12) - 1) * 100
	assert.InDelta(t, wantSavings, bundle.SavingsYield.AnnualRate, 0.005)

	// Price index compounds the trailing 12 monthly variations.
	wantIPCA := (math.Pow(1+0.4/100, 12) - 1) * 100
	assert.InDelta(t, wantIPCA, bundle.PriceIndex.AnnualRate, 0.005)
	require.NotNil(t, bundle.PriceIndex.MonthlyRate)
	assert.Equal(t, 0.4, *bundle.PriceIndex.MonthlyRate)

	// One fetch per tracked series.
	for _, code := range []int{testPolicyCode, testInterbankCode, testSavingsCode, testPriceCode} {
		assert.Equal(t, 1, src.fetches[code], "series %d", code)
	}
}

func TestRefreshRoundsToTwoDecimals(t *testing.T) {
	src := healthySource()
	agg := NewIndicatorAggregator(src, testConfig(), nil, nil)

	bundle, err := agg.Refresh(context.Background())
	require.NoError(t, err)

	for _, rate := range []float64{
		bundle.PolicyRate.AnnualRate,
		bundle.InterbankRate.AnnualRate,
		bundle.SavingsYield.AnnualRate,
		bundle.PriceIndex.AnnualRate,
	} {
		assert.InDelta(t, rate, math.Round(rate*100)/100, 1e-9)
	}
}

func TestRefreshFailsWhenAnySeriesFails(t *testing.T) {
	src := healthySource()
	src.errs[testInterbankCode] = &models.SourceUnavailableError{
		Series: testInterbankCode, Err: errors.New("timeout"),
	}
	agg := NewIndicatorAggregator(src, testConfig(), nil, nil)

	_, err := agg.Refresh(context.Background())
	require.Error(t, err)

	var aggErr *models.AggregationError
	assert.ErrorAs(t, err, &aggErr)
	var srcErr *models.SourceUnavailableError
	assert.ErrorAs(t, err, &srcErr)
	assert.Equal(t, testInterbankCode, srcErr.Series)

	// All four series must still have been attempted.
	for _, code := range []int{testPolicyCode, testInterbankCode, testSavingsCode, testPriceCode} {
		assert.Equal(t, 1, src.fetches[code], "series %d", code)
	}
}

func TestRefreshFailsOnEmptySeries(t *testing.T) {
	src := healthySource()
	src.data[testSavingsCode] = nil
	agg := NewIndicatorAggregator(src, testConfig(), nil, nil)

	_, err := agg.Refresh(context.Background())
	var aggErr *models.AggregationError
	assert.ErrorAs(t, err, &aggErr)
}

func TestRefreshFailsOnShortPriceIndex(t *testing.T) {
	src := healthySource()
	src.data[testPriceCode] = monthlySeries(11, 0.4)
	agg := NewIndicatorAggregator(src, testConfig(), nil, nil)

	_, err := agg.Refresh(context.Background())
	var aggErr *models.AggregationError
	assert.ErrorAs(t, err, &aggErr)
	assert.ErrorIs(t, err, models.ErrInsufficientData)
}
