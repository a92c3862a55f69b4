package rates

import (
	"math"
	"testing"
	"time"

	"RendaFixa/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlyObs(values ...float64) []models.SeriesObservation {
	obs := make([]models.SeriesObservation, 0, len(values))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, v := range values {
		obs = append(obs, models.SeriesObservation{Date: base.AddDate(0, i, 0), Value: v})
	}
	return obs
}

func repeatMonthly(v float64, n int) []models.SeriesObservation {
	values := make([]float64, n)
	for i := range values {
		values[i] = v
	}
	return monthlyObs(values...)
}

func TestAnnualFromDaily(t *testing.T) {
	for _, daily := range []float64{0, 0.01, 0.045281, 0.1, 1} {
		want := (math.Pow(1+daily/100, 252) - 1) * 100
		assert.InDelta(t, want, AnnualFromDaily(daily), 1e-9)
	}
}

func TestAnnualFromMonthly(t *testing.T) {
	for _, monthly := range []float64{0, 0.5, 0.6721, 1, 2} {
		want := (math.Pow(1+monthly/100, 12) - 1) * 100
		assert.InDelta(t, want, AnnualFromMonthly(monthly), 1e-9)
	}

	// A flat 1% per month compounds to ~12.68% per year.
	assert.InDelta(t, 12.68, Round2(AnnualFromMonthly(1)), 0.005)
}

func TestAccumulateTwelveMonths(t *testing.T) {
	// Twelve equal variations must match direct compounding.
	acc, err := AccumulateTwelveMonths(repeatMonthly(0.5, 12))
	require.NoError(t, err)
	assert.InDelta(t, (math.Pow(1.005, 12)-1)*100, acc, 1e-9)
}

func TestAccumulateTwelveMonthsUsesLastTwelve(t *testing.T) {
	// A huge leading value outside the window must not affect the result.
	obs := append(monthlyObs(50), repeatMonthly(0.3, 12)...)
	acc, err := AccumulateTwelveMonths(obs)
	require.NoError(t, err)
	assert.InDelta(t, (math.Pow(1.003, 12)-1)*100, acc, 1e-9)
}

func TestAccumulateInsufficientData(t *testing.T) {
	_, err := AccumulateTwelveMonths(repeatMonthly(0.5, 11))
	assert.ErrorIs(t, err, models.ErrInsufficientData)

	_, err = AccumulateTwelveMonths(nil)
	assert.ErrorIs(t, err, models.ErrInsufficientData)

	// Exactly twelve is sufficient.
	_, err = AccumulateTwelveMonths(repeatMonthly(0.5, 12))
	assert.NoError(t, err)
}

func TestCompoundIsAssociative(t *testing.T) {
	a, b, c := 0.42, 0.31, 0.87

	stepwise := Compound(Compound(Compound(0, a), b), c)

	acc, err := AccumulateTwelveMonths(monthlyObs(
		0, 0, 0, 0, 0, 0, 0, 0, 0, a, b, c,
	))
	require.NoError(t, err)
	assert.InDelta(t, stepwise, acc, 1e-9)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 13.43, Round2(13.425000001))
	assert.Equal(t, 0.0, Round2(0.0049))
	assert.Equal(t, -1.24, Round2(-1.2351))
}
