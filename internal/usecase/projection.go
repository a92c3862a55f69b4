package usecase

import (
	"math"

	"RendaFixa/internal/domain/models"
	"RendaFixa/internal/rates"
)

// ProjectionEngine computes month-by-month compound-growth trajectories. It is
// stateless and every call is independent; each month's value depends only on
// the month index, never on a previous point.
type ProjectionEngine struct{}

func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{}
}

// Project returns one point per month from 0 to horizonMonths inclusive.
// The monthly rate is the annual percentage divided by twelve, not its
// geometric monthly equivalent.
func (e *ProjectionEngine) Project(initialBalance, monthlyContribution, annualRatePercent float64, horizonMonths int) []models.ProjectionPoint {
	if horizonMonths < 0 {
		return nil
	}

	monthlyRate := (annualRatePercent / 100) / 12

	points := make([]models.ProjectionPoint, 0, horizonMonths+1)
	for m := 0; m <= horizonMonths; m++ {
		invested := initialBalance + monthlyContribution*float64(m)

		growthFactor := math.Pow(1+monthlyRate, float64(m))
		total := initialBalance * growthFactor
		if m > 0 {
			// Future value of an ordinary annuity; degenerates to the plain
			// sum of contributions when the rate is zero.
			if monthlyRate != 0 {
				total += monthlyContribution * ((growthFactor - 1) / monthlyRate)
			} else {
				total += monthlyContribution * float64(m)
			}
		}

		points = append(points, models.ProjectionPoint{
			Month:      m,
			Invested:   rates.Round2(invested),
			TotalValue: rates.Round2(total),
			Gain:       rates.Round2(total - invested),
		})
	}

	return points
}
