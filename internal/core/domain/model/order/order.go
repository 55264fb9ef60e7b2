package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyCancelled is returned by Cancel when the order is already in
	// the Cancelled state. Callers use it to distinguish a repeat cancellation
	// from an invalid transition.
	ErrOrderAlreadyCancelled = errors.New("order is already cancelled")
)

// Order represents a customer order in the storefront. It is the aggregate root
// that owns its line items and manages the order lifecycle from creation to
// cancellation.
//
// Order follows these invariants:
//   - Must reference a valid customer
//   - Must contain at least one line item
//   - The identifier is assigned by the database on first insert and is
//     positive once persisted (zero only on a not-yet-persisted order)
//   - Status transitions follow defined business rules
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the database-assigned identifier (0 until the first insert)
	id int64

	// customerID references the ordering customer
	customerID int64

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp in UTC
	createdAt time.Time

	// details are the line items owned by this order
	details []Detail

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. Use it for orders that
// have not been persisted yet: the identifier stays zero until the repository
// inserts the aggregate and assigns the database id.
//
// Parameters:
//   - customerID: Identifier of the ordering customer (must be positive)
//   - details: Line items (must contain at least one valid Detail)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	detail, _ := order.NewDetail(1, 3, 1990)
//	o, err := order.NewOrder(42, []order.Detail{detail})
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor ensures the order is created with Created status and a UTC
// creation timestamp.
func NewOrder(customerID int64, details []Detail) (*Order, error) {
	order := &Order{
		status:        Created,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setDetails(details),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// requires the database-assigned identifier and the persisted status and
// timestamp, and validates all of them.
//
// Returns:
//   - *Order: The restored order if all validations pass
//   - error: Validation error if any persisted value is invalid
func RestoreOrder(id int64, customerID int64, status Status, createdAt time.Time, details []Detail) (*Order, error) {
	order := &Order{isConstructed: true}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStatus(status),
		order.setCreatedAt(createdAt),
		order.setDetails(details),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their database-assigned identifiers.
// Orders are considered equal if both are persisted and share the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order's database-assigned identifier, or 0 when the order
// has not been persisted yet.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's creation timestamp in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Details returns a copy of the order's line items. Mutating the returned
// slice does not affect the aggregate.
func (o *Order) Details() []Detail {
	return slices.Clone(o.details)
}

// Total returns the order total in minor currency units: the sum of all line
// item subtotals.
func (o *Order) Total() int64 {
	var total int64
	for _, detail := range o.details {
		total += detail.Subtotal()
	}
	return total
}

// AssignID sets the database-assigned identifier after the first insert.
// It may be called exactly once, by the repository that persisted the order.
//
// Returns:
//   - nil on success
//   - error if the id is not positive or an id is already assigned
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("id %d is already assigned", o.id))
	}
	return o.setID(id)
}

// Cancel marks the order as cancelled.
//
// This method enforces the following business rules:
//   - The order must be in Created status
//   - Cancelled is a final state with no further transitions
//
// Returns:
//   - nil on successful cancellation
//   - ErrOrderAlreadyCancelled if the order is already cancelled
//   - error if the status transition is not allowed for another reason
//
// Example:
//
//	err := o.Cancel()
//	if errors.Is(err, order.ErrOrderAlreadyCancelled) {
//	    // Repeat cancellation, report a conflict
//	}
//
// Releasing the reserved stock back to inventory is the caller's
// responsibility; the aggregate only manages its own state.
func (o *Order) Cancel() error {
	if o.status == Cancelled {
		return ErrOrderAlreadyCancelled
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's database-assigned identifier.
func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId is invalid",
			fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

// setStatus validates and sets the order's status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
// This is a private method used only during restoration.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}

// setDetails validates and sets the order's line items. The slice is copied
// so later mutation by the caller cannot corrupt the aggregate.
// This is a private method used only during construction.
func (o *Order) setDetails(details []Detail) error {
	if len(details) == 0 {
		return errs.NewValueIsRequiredError("details")
	}

	for _, detail := range details {
		if err := detail.Validate(); err != nil {
			return err
		}
	}

	o.details = slices.Clone(details)
	return nil
}
