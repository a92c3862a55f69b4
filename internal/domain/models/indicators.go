package models

import "time"

// IndicatorKey identifies one tracked market indicator.
type IndicatorKey string

const (
	IndicatorPolicyRate    IndicatorKey = "policy-rate"
	IndicatorInterbankRate IndicatorKey = "interbank-rate"
	IndicatorSavingsYield  IndicatorKey = "savings-yield"
	IndicatorPriceIndex    IndicatorKey = "price-index"
)

// SeriesObservation is one dated value of an SGS time series, ascending by date.
type SeriesObservation struct {
	Date  time.Time
	Value float64
}

// IndicatorRecord is the annualized view of one indicator. AnnualRate is rounded
// to 2 decimals; DailyRate/MonthlyRate carry the raw base observation when the
// series is not already annual.
type IndicatorRecord struct {
	Name        string   `json:"name"`
	AnnualRate  float64  `json:"annual_rate"`
	DailyRate   *float64 `json:"daily_rate,omitempty"`
	MonthlyRate *float64 `json:"monthly_rate,omitempty"`
	AsOf        string   `json:"as_of"`
	Source      string   `json:"source"`
}

// IndicatorBundle holds all four tracked indicators. A bundle is only ever
// constructed complete; there is no partial form.
type IndicatorBundle struct {
	PolicyRate    IndicatorRecord `json:"policy-rate"`
	InterbankRate IndicatorRecord `json:"interbank-rate"`
	SavingsYield  IndicatorRecord `json:"savings-yield"`
	PriceIndex    IndicatorRecord `json:"price-index"`
}

// ProjectionPoint is one month of a simulated investment trajectory.
type ProjectionPoint struct {
	Month      int     `json:"month"`
	Invested   float64 `json:"invested"`
	TotalValue float64 `json:"total_value"`
	Gain       float64 `json:"gain"`
}
