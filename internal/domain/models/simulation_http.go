package models

// Requests and responses for the simulation HTTP endpoints. Fields are pointers
// so that a missing field is distinguishable from a legitimate zero.

type SimulationRequest struct {
	InitialBalance      *float64 `json:"initialBalance" validate:"required,gte=0"`
	MonthlyContribution *float64 `json:"monthlyContribution" validate:"required,gte=0"`
	AnnualRatePercent   *float64 `json:"annualRatePercent" validate:"required"`
	HorizonMonths       *int     `json:"horizonMonths" validate:"required,gte=0,lte=1200"`
}

type CalculateResponse struct {
	Evolution []ProjectionPoint `json:"evolution"`
}

// CompareResponse keys each trajectory by the rate that produced it. "user" is
// the caller-supplied rate; the rest come from the current indicator bundle.
type CompareResponse struct {
	User          []ProjectionPoint `json:"user"`
	PolicyRate    []ProjectionPoint `json:"policy-rate"`
	InterbankRate []ProjectionPoint `json:"interbank-rate"`
	SavingsYield  []ProjectionPoint `json:"savings-yield"`
}
