package services

// DataError reports malformed or insufficient input while building the
// engine's matrices. Build errors abort initialization; the engine is
// never left partially constructed.
type DataError struct {
	Reason string
}

func (e *DataError) Error() string {
	return "data error: " + e.Reason
}

// ComputationError reports an internal numeric invariant violation,
// such as a dimension mismatch between a query vector and the feature
// matrix. It is fatal to the request, not the process.
type ComputationError struct {
	Reason string
}

func (e *ComputationError) Error() string {
	return "computation error: " + e.Reason
}
