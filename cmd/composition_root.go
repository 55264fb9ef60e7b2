package cmd

import (
	"log/slog"

	"storefront/internal/adapters/out/persistence"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory persistence.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *persistence.NewGormUnitOfWorkFactory(gormDB, logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockProductCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeAuditLogCommandHandler() commands.PurgeAuditLogCommandHandler {
	var f commands.AuditUoWFactory = FuncAuditUoWFactory(func() commands.AuditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeAuditLogCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderAuditTrailQueryHandler() queries.GetOrderAuditTrailQueryHandler {
	return queries.NewGetOrderAuditTrailQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncAuditUoWFactory func() commands.AuditUoW

func (f FuncAuditUoWFactory) Create() commands.AuditUoW {
	return f()
}
