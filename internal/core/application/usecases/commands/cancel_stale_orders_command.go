package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand represents a request to cancel every order that
// has been waiting in created status since before the given cutoff.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Time

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel orders created
// before olderThan. Returns an error if the cutoff is the zero time.
func NewCancelStaleOrdersCommand(olderThan time.Time) (CancelStaleOrdersCommand, error) {
	staleCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setOlderThan(olderThan); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStaleOrdersCommandIsNotConstructed if validation fails.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the staleness cutoff.
func (c CancelStaleOrdersCommand) OlderThan() time.Time {
	return c.olderThan
}

func (c *CancelStaleOrdersCommand) setOlderThan(olderThan time.Time) error {
	if olderThan.IsZero() {
		return errs.NewValueIsRequiredError("olderThan")
	}

	c.olderThan = olderThan.UTC()
	return nil
}
