// Package persistence provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work owns one database session and settles a whole
// business operation from the Result its callback returns: business failures
// roll back without becoming Go errors, technical failures roll back and
// propagate, success commits.
//
// Key properties:
//   - One Execute call owns the complete transaction lifecycle
//   - Repositories bound to the unit of work observe the ambient transaction
//     automatically through the shared Session
//   - Nested transactional scopes are rejected deterministically
//   - A panic in the callback rolls back and re-raises after cleanup
//   - Rollback failures during cleanup are logged, never thrown
//
// Usage:
//
//	uow := factory.Create()
//	res, err := uow.Execute(ctx, func(txCtx context.Context) (result.Result, error) {
//	    if err := uow.OrderRepository().Add(txCtx, order); err != nil {
//	        return result.Result{}, err // technical failure, rolls back
//	    }
//	    if order.Total() == 0 {
//	        return result.Fail(result.Conflict("empty order")), nil // business failure, rolls back
//	    }
//	    return result.Success(), nil // commits
//	})
//
// Value-bearing operations wrap Execute via ports.ExecuteWithResult.
package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/adapters/out/persistence/auditrepo"
	"storefront/internal/adapters/out/persistence/inventoryrepo"
	"storefront/internal/adapters/out/persistence/orderrepo"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/result"

	"gorm.io/gorm"
)

var (
	_ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)
	_ ports.UnitOfWork        = (*GormUnitOfWork)(nil)
)

// txContextKey marks a call chain as being inside a transactional scope. The
// key type is unexported, so the marker cannot be forged or read outside this
// package, and it dies with the context scope instead of living in a global.
type txContextKey struct{}

// markTransaction returns a child context carrying the in-transaction marker.
func markTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, txContextKey{}, true)
}

// inTransaction reports whether the call chain already runs inside Execute.
func inTransaction(ctx context.Context) bool {
	active, ok := ctx.Value(txContextKey{}).(bool)
	return ok && active
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each Create call produces a fresh unit of work with its own
// Session, so concurrent operations never share transaction state.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The connection is shared; transaction state is not.
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:     db,
		logger: logger.With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork with a fresh session.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		session: NewSession(f.db),
		logger:  f.logger,
	}
}

// GormUnitOfWork implements ports.UnitOfWork over a GORM session. See the
// package documentation for the Execute contract.
type GormUnitOfWork struct {
	session *Session
	logger  *slog.Logger
}

// Execute runs fn inside a database transaction.
//
// The call proceeds through a fixed sequence: reject a nested scope, ensure
// the connection is usable, begin, expose the transaction through the
// session, invoke fn exactly once with a marked context, then settle from
// fn's outcome. A failure Result or a non-nil error rolls back; success
// commits; a panic rolls back and re-raises. Cleanup always runs through one
// deferred block that rolls back anything uncommitted and clears the
// session's transaction slot, so a completed call leaves the unit of work
// ready for the next one.
func (uow *GormUnitOfWork) Execute(
	ctx context.Context,
	fn func(ctx context.Context) (result.Result, error),
) (result.Result, error) {
	if inTransaction(ctx) {
		return result.Result{}, ports.ErrNestedTransaction
	}
	if uow.session.InTransaction() {
		return result.Result{}, ports.ErrNestedTransaction
	}

	if err := uow.session.ensureConnection(ctx); err != nil {
		return result.Result{}, err
	}

	tx := uow.session.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return result.Result{}, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	uow.session.setTx(tx)

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback().Error; rbErr != nil {
				uow.logger.ErrorContext(ctx, "transaction rollback failed", "error", rbErr)
			}
		}
		uow.session.clearTx()
	}()

	res, err := fn(markTransaction(ctx))
	if err != nil {
		return result.Result{}, err
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result.Result{}, ctxErr
	}

	if res.IsFailure() {
		return res, nil
	}

	if err := tx.Commit().Error; err != nil {
		return result.Result{}, fmt.Errorf("commit transaction: %w", err)
	}
	committed = true

	return res, nil
}

// OrderRepository returns an order repository bound to this unit of work's
// session. Inside Execute it operates on the active transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.session)
}

// InventoryRepository returns an inventory repository bound to this unit of
// work's session.
func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(uow.session)
}

// AuditLogRepository returns an audit journal repository bound to this unit
// of work's session.
func (uow *GormUnitOfWork) AuditLogRepository() ports.AuditLogRepository {
	return auditrepo.NewGormAuditLogRepository(uow.session)
}
