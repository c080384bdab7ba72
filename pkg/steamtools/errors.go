package steamtools

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrClientClosed indicates the shared client handle was torn down
	ErrClientClosed = errors.New("steam client handle closed")

	// ErrInvalidItemID indicates a zero or otherwise unusable item id
	ErrInvalidItemID = errors.New("invalid workshop item id")

	// ErrQuerySubmission indicates the SDK rejected the query at submission time
	ErrQuerySubmission = errors.New("query submission failed")

	// ErrTransport indicates the SDK reported a failure asynchronously
	ErrTransport = errors.New("query transport failed")

	// ErrEmptyResult indicates the SDK succeeded but returned no record
	ErrEmptyResult = errors.New("query returned no record")

	// ErrQueryTimeout indicates the bounded wait for a completion callback expired
	ErrQueryTimeout = errors.New("query timed out")

	// ErrMalformedPayload indicates an inbound event payload is not a valid item id
	ErrMalformedPayload = errors.New("malformed event payload")
)

// QueryError represents an error in a workshop item query operation
type QueryError struct {
	ItemID uint64
	Op     string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("workshop query %s failed for item %d: %v", e.Op, e.ItemID, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
