package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectBaseline(t *testing.T) {
	engine := NewProjectionEngine()

	points := engine.Project(1000, 100, 12, 12)
	require.Len(t, points, 13)

	first := points[0]
	assert.Equal(t, 0, first.Month)
	assert.Equal(t, 1000.0, first.Invested)
	assert.Equal(t, 1000.0, first.TotalValue)
	assert.Equal(t, 0.0, first.Gain)

	last := points[12]
	assert.Equal(t, 12, last.Month)
	assert.Equal(t, 2200.0, last.Invested)
	assert.Greater(t, last.TotalValue, last.Invested)

	for _, p := range points {
		assert.InDelta(t, p.TotalValue-p.Invested, p.Gain, 1e-9, "month %d", p.Month)
	}
}

func TestProjectZeroRate(t *testing.T) {
	engine := NewProjectionEngine()

	points := engine.Project(500, 50, 0, 24)
	require.Len(t, points, 25)

	for _, p := range points {
		assert.Equal(t, p.Invested, p.TotalValue, "month %d", p.Month)
		assert.Equal(t, 0.0, p.Gain, "month %d", p.Month)
	}
}

func TestProjectZeroHorizon(t *testing.T) {
	engine := NewProjectionEngine()

	points := engine.Project(1000, 100, 12, 0)
	require.Len(t, points, 1)
	assert.Equal(t, 0, points[0].Month)
	assert.Equal(t, 1000.0, points[0].TotalValue)
}

func TestProjectNoInitialBalance(t *testing.T) {
	engine := NewProjectionEngine()

	points := engine.Project(0, 100, 12, 2)
	require.Len(t, points, 3)

	// Month 1: one contribution, annuity term equals the contribution itself.
	assert.Equal(t, 100.0, points[1].Invested)
	assert.Equal(t, 100.0, points[1].TotalValue)

	// Month 2: 100*(1.01) + 100 = 201.
	assert.Equal(t, 200.0, points[2].Invested)
	assert.Equal(t, 201.0, points[2].TotalValue)
	assert.Equal(t, 1.0, points[2].Gain)
}

func TestProjectNegativeHorizon(t *testing.T) {
	engine := NewProjectionEngine()
	assert.Nil(t, engine.Project(1000, 100, 12, -1))
}

func TestProjectDeterministic(t *testing.T) {
	engine := NewProjectionEngine()

	a := engine.Project(1234.56, 78.9, 10.5, 36)
	b := engine.Project(1234.56, 78.9, 10.5, 36)
	assert.Equal(t, a, b)
}
