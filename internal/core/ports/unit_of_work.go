package ports

import (
	"context"
	"errors"

	"storefront/internal/pkg/result"
)

// ErrNestedTransaction is returned by Execute when the call chain is already
// inside a transactional scope. Nesting is rejected rather than silently
// reusing the outer transaction, so accidental scope composition fails fast.
var ErrNestedTransaction = errors.New("transactional scope is already active on this call chain")

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. A single Execute
// call owns the whole transaction lifecycle; client code never begins,
// commits, or rolls back explicitly.
//
// Execute runs fn inside a database transaction and settles it from fn's
// outcome:
//   - fn returns a failure Result: the transaction is rolled back and the
//     failure Result is returned as-is with a nil error. Business failures
//     are values, never Go errors.
//   - fn returns a non-nil error (a technical failure): the transaction is
//     rolled back and the error is propagated unchanged.
//   - fn panics: the transaction is rolled back and the original panic value
//     is re-raised after cleanup.
//   - fn returns a success Result: the transaction is committed; a commit
//     failure is returned as a Go error.
//
// The context passed to fn carries a scope marker; calling Execute again on
// that call chain fails with ErrNestedTransaction.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) (result.Result, error)) (result.Result, error)

	// OrderRepository returns an OrderRepository bound to this unit of work.
	// Inside Execute the repository operates on the active transaction.
	OrderRepository() OrderRepository

	// InventoryRepository returns an InventoryRepository bound to this unit of work.
	InventoryRepository() InventoryRepository

	// AuditLogRepository returns an AuditLogRepository bound to this unit of work.
	AuditLogRepository() AuditLogRepository
}

// Transactional is the minimal transaction-running surface needed by
// ExecuteWithResult. UnitOfWork satisfies it.
type Transactional interface {
	Execute(ctx context.Context, fn func(ctx context.Context) (result.Result, error)) (result.Result, error)
}

// ExecuteWithResult adapts a value-bearing callback onto Execute. Methods
// cannot be generic, so this lives as a package-level helper.
//
// The typed result travels outside the transactional callback: a failure
// inside fn rolls the transaction back and comes out as the same failure
// ValueResult; success (Value or Empty) commits and hands the payload back
// unchanged. Technical errors return a zero ValueResult, which reads as a
// failure.
func ExecuteWithResult[T any](
	ctx context.Context,
	tx Transactional,
	fn func(ctx context.Context) (result.ValueResult[T], error),
) (result.ValueResult[T], error) {
	var value result.ValueResult[T]

	_, err := tx.Execute(ctx, func(txCtx context.Context) (result.Result, error) {
		var fnErr error
		value, fnErr = fn(txCtx)
		if fnErr != nil {
			return result.Result{}, fnErr
		}
		// A zero ValueResult is a failure with no error attached; settle on
		// the state so it still rolls back.
		if value.IsFailure() {
			return result.Fail(value.Err()), nil
		}
		return result.Success(), nil
	})
	if err != nil {
		return result.ValueResult[T]{}, err
	}

	return value, nil
}
