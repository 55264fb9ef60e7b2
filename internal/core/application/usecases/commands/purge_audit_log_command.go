package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrPurgeAuditLogCommandIsNotConstructed = errors.New(
	"PurgeAuditLogCommand must be created via NewPurgeAuditLogCommand constructor",
)

// PurgeAuditLogCommand represents a request to delete audit entries that
// fell out of the retention window.
type PurgeAuditLogCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Time

	guard guard.ConstructorGuard
}

// NewPurgeAuditLogCommand creates a command to delete audit entries recorded
// before olderThan. Returns an error if the cutoff is the zero time.
func NewPurgeAuditLogCommand(olderThan time.Time) (PurgeAuditLogCommand, error) {
	purgeCommand := PurgeAuditLogCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := purgeCommand.setOlderThan(olderThan); err != nil {
		return PurgeAuditLogCommand{}, err
	}

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeAuditLogCommandIsNotConstructed if validation fails.
func (c PurgeAuditLogCommand) Validate() error {
	return c.guard.Validate(ErrPurgeAuditLogCommandIsNotConstructed)
}

// OlderThan returns the retention cutoff.
func (c PurgeAuditLogCommand) OlderThan() time.Time {
	return c.olderThan
}

func (c *PurgeAuditLogCommand) setOlderThan(olderThan time.Time) error {
	if olderThan.IsZero() {
		return errs.NewValueIsRequiredError("olderThan")
	}

	c.olderThan = olderThan.UTC()
	return nil
}
