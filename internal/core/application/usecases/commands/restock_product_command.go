package commands

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRestockProductCommandIsNotConstructed = errors.New(
	"RestockProductCommand must be created via NewRestockProductCommand constructor",
)

// RestockProductCommand represents a request to add stock to a product.
type RestockProductCommand struct { //nolint:recvcheck //using for validation
	productID int64
	quantity  int

	guard guard.ConstructorGuard
}

// NewRestockProductCommand creates a command to add quantity units to the
// product's stock. Returns an error if the product id or quantity is not
// positive.
func NewRestockProductCommand(productID int64, quantity int) (RestockProductCommand, error) {
	restockCommand := RestockProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restockCommand.setProductID(productID),
		restockCommand.setQuantity(quantity),
	); err != nil {
		return RestockProductCommand{}, err
	}

	return restockCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRestockProductCommandIsNotConstructed if validation fails.
func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

// ProductID returns the id of the product to restock.
func (c RestockProductCommand) ProductID() int64 {
	return c.productID
}

// Quantity returns the number of units to add.
func (c RestockProductCommand) Quantity() int {
	return c.quantity
}

func (c *RestockProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId is invalid",
			fmt.Errorf("%d is not greater than 0", productID))
	}

	c.productID = productID
	return nil
}

func (c *RestockProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
