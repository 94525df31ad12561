package service

import "fmt"

// AggregationError wraps a failure of the mandatory fetch stage of an
// aggregation cycle. The cache is left untouched when it occurs.
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("history aggregation: %v", e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
