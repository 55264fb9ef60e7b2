// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler runs its work inside exactly one transactional scope obtained
// from a unit of work factory; repositories joined to that scope share one
// database transaction.
package commands

import (
	"context"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/result"
)

// Unit of Work interfaces provide transactional scopes for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// Transactor runs a callback inside a single transactional scope.
	// A failure Result or a returned error rolls the scope back; only a
	// success Result commits.
	Transactor interface {
		Execute(ctx context.Context, fn func(ctx context.Context) (result.Result, error)) (result.Result, error)
	}

	// OrderRepoFactory provides access to the order repository bound to a scope.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryRepoFactory provides access to the inventory repository bound to a scope.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// AuditRepoFactory provides access to the audit log repository bound to a scope.
	AuditRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// OrderUoW spans every aggregate an order workflow touches. Order
	// workflows reserve or release inventory and journal the change, so
	// all three repositories join the same scope.
	OrderUoW interface {
		Transactor
		OrderRepoFactory
		InventoryRepoFactory
		AuditRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InventoryUoW spans inventory adjustments and their audit entries.
	InventoryUoW interface {
		Transactor
		InventoryRepoFactory
		AuditRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// AuditUoW spans maintenance of the audit journal alone.
	AuditUoW interface {
		Transactor
		AuditRepoFactory
	}

	// AuditUoWFactory creates new audit unit of work instances.
	AuditUoWFactory interface {
		Create() AuditUoW
	}
)
