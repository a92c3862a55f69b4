package models

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is returned when fewer than twelve monthly observations
// are available for the price-index accumulation.
var ErrInsufficientData = errors.New("insufficient data: twelve monthly observations required")

// SourceUnavailableError reports a failed or unusable upstream series fetch.
type SourceUnavailableError struct {
	Series int
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("sgs series %d unavailable: %v", e.Series, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// AggregationError wraps the cause(s) of a failed indicator refresh.
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("indicator aggregation failed: %v", e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
