package interfaces

import (
	"errors"
	"fmt"
)

// Sentinel errors shared between repositories and use cases. Repositories
// translate storage-level conditional failures into these values so use cases
// never inspect DynamoDB error types directly.

var (
	// ErrInventoryExhausted: a conditional quantity decrement failed because
	// the tracked stock could not cover the reservation.
	ErrInventoryExhausted = errors.New("product quantity exhausted")

	// ErrOrderAlreadyPaid: a conditional payment-state write was rejected
	// because the order's paid latch is already set.
	ErrOrderAlreadyPaid = errors.New("order already paid")
)

// GatewayError is returned by payment-gateway adapters on non-success HTTP
// responses, carrying the gateway's own message when it sent one.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("payment gateway error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("payment gateway error (status %d)", e.StatusCode)
}
