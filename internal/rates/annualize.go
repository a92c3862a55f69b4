// Package rates holds the pure annualization math applied to raw SGS
// observations. All functions are deterministic and do no I/O; rounding to two
// decimals happens only at record boundaries, never while chaining.
package rates

import (
	"math"

	"RendaFixa/internal/domain/models"
)

// BusinessDaysPerYear is the standard business-day count used to annualize
// daily rates.
const BusinessDaysPerYear = 252

// monthsPerAccumulation is the window of the trailing price-index compounding.
const monthsPerAccumulation = 12

// AnnualFromDaily converts a daily percentage rate to its annual equivalent by
// compounding over the business days of one year.
func AnnualFromDaily(daily float64) float64 {
	return (math.Pow(1+daily/100, BusinessDaysPerYear) - 1) * 100
}

// AnnualFromMonthly converts a monthly percentage rate to its annual
// equivalent by compounding over twelve months.
func AnnualFromMonthly(monthly float64) float64 {
	return (math.Pow(1+monthly/100, 12) - 1) * 100
}

// AccumulateTwelveMonths compounds the last twelve monthly variations (most
// recent last) into a trailing 12-month percentage. Fewer than twelve
// observations is ErrInsufficientData.
func AccumulateTwelveMonths(obs []models.SeriesObservation) (float64, error) {
	if len(obs) < monthsPerAccumulation {
		return 0, models.ErrInsufficientData
	}

	acc := 0.0
	for _, o := range obs[len(obs)-monthsPerAccumulation:] {
		acc = Compound(acc, o.Value)
	}
	return acc, nil
}

// Compound chains one more percentage variation onto an accumulated one.
func Compound(acc, variation float64) float64 {
	return ((1 + acc/100) * (1 + variation/100) - 1) * 100
}

// Round2 rounds to two decimal places. Applied only where a value crosses into
// an IndicatorRecord or a ProjectionPoint.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
