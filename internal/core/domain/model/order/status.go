package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Cancelled
//
// Cancelled is a final state. Status is a value object that validates
// state transitions and provides string representations for persistence
// and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	// Orders in this status hold reserved stock and may be cancelled.
	Created

	// Cancelled indicates the order has been cancelled, either by the
	// customer or by the stale-order job. This is a final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Created" or "Cancelled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCancel checks if the status allows cancellation without performing
// the transition.
//
// Valid statuses for cancellation:
//   - Created
//
// Invalid statuses for cancellation:
//   - Cancelled (already cancelled, a final state)
//   - Unknown (invalid status)
//
// Returns:
//   - nil if cancellation is allowed from the current status
//   - error with details if cancellation is not allowed
func (s Status) ValidateCancel() error {
	if s != Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//
// Invalid transitions:
//   - Cancelled -> Cancelled (already a final state)
//   - Unknown -> Cancelled (invalid initial state)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.Cancel() to enforce state transitions.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
