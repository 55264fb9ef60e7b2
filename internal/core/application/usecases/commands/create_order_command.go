package commands

import (
	"errors"
	"fmt"
	"slices"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItem is one requested line of a new order: which product, how many
// units, and the unit price agreed at order time.
type OrderItem struct {
	ProductID int64
	Quantity  int
	UnitPrice int64
}

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the ordering customer and the requested items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(42, []OrderItem{
//	    {ProductID: 1, Quantity: 3, UnitPrice: 1990},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	created, _ := res.Value()
//	fmt.Printf("Order %d created, total %d", created.ID, created.Total)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	items      []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer id is positive, that at least one item is
// requested, and that every item carries a positive product id and quantity
// and a non-negative unit price. Returns an error if any validation fails.
func NewCreateOrderCommand(customerID int64, items []OrderItem) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the id of the ordering customer.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// Items returns a copy of the requested order lines.
func (c CreateOrderCommand) Items() []OrderItem {
	return slices.Clone(c.items)
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId is invalid",
			fmt.Errorf("%d is not greater than 0", customerID))
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var errItems []error
	for i, item := range items {
		if item.ProductID <= 0 {
			errItems = append(errItems, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].productId is invalid", i),
				fmt.Errorf("%d is not greater than 0", item.ProductID)))
		}
		if item.Quantity <= 0 {
			errItems = append(errItems, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity is invalid", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity)))
		}
		if item.UnitPrice < 0 {
			errItems = append(errItems, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].unitPrice is invalid", i),
				fmt.Errorf("%d is less than 0", item.UnitPrice)))
		}
	}
	if err := errors.Join(errItems...); err != nil {
		return err
	}

	c.items = slices.Clone(items)
	return nil
}
