package commands

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an existing order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the order with the given id.
// Returns an error if the id is not positive.
func NewCancelOrderCommand(orderID int64) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to cancel.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *CancelOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}
