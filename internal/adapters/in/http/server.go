package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	restockProductHandler commands.RestockProductCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getInventoryHandler       queries.GetInventoryQueryHandler
	getOrderAuditTrailHandler queries.GetOrderAuditTrailQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	restockProductHandler commands.RestockProductCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getInventoryHandler queries.GetInventoryQueryHandler,
	getOrderAuditTrailHandler queries.GetOrderAuditTrailQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		restockProductHandler:     restockProductHandler,
		getOrderHandler:           getOrderHandler,
		getInventoryHandler:       getInventoryHandler,
		getOrderAuditTrailHandler: getOrderAuditTrailHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
//
//	@Summary	Place a new order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		servers.NewOrder	true	"Order to place"
//	@Success	201		{object}	servers.CreatedOrder
//	@Failure	400		{object}	servers.ValidationError
//	@Failure	404		{object}	servers.Error
//	@Security	ApiKeyAuth
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&newOrder); err != nil {
		return validationFailed(ctx, fieldErrorsFromValidator(err))
	}

	items := make([]commands.OrderItem, len(newOrder.Items))
	for i, item := range newOrder.Items {
		items[i] = commands.OrderItem{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.CustomerId, items)
	if err != nil {
		return validationFailed(ctx, fieldErrors(err))
	}

	res, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to place order")
	}

	return writeValue(ctx, res, http.StatusCreated, func(created commands.CreatedOrder) any {
		return servers.CreatedOrder{
			Id:     created.ID,
			Status: created.Status,
			Total:  created.Total,
		}
	})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order.
//
//	@Summary	Get an order with its details
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		int	true	"Order identifier"
//	@Success	200		{object}	servers.Order
//	@Failure	404		{object}	servers.Error
//	@Security	ApiKeyAuth
//	@Router		/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context, orderId int64) error {
	query, err := queries.NewGetOrderQuery(orderId)
	if err != nil {
		return validationFailed(ctx, fieldErrors(err))
	}

	res, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order")
	}

	return writeValue(ctx, res, http.StatusOK, orderPayload)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - cancels an order.
//
//	@Summary	Cancel an order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	int	true	"Order identifier"
//	@Success	204
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Security	ApiKeyAuth
//	@Router		/orders/{orderId}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context, orderId int64) error {
	cmd, err := commands.NewCancelOrderCommand(orderId)
	if err != nil {
		return validationFailed(ctx, fieldErrors(err))
	}

	res, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to cancel order")
	}

	return writeResult(ctx, res, http.StatusNoContent)
}

// GetOrderAuditTrail handles GET /api/v1/orders/:orderId/audit - retrieves
// the audit journal of one order, oldest entry first.
//
//	@Summary	Get the audit trail of an order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	int	true	"Order identifier"
//	@Success	200	{array}	servers.AuditEntry
//	@Success	204
//	@Failure	403	{object}	servers.Error
//	@Failure	404	{object}	servers.Error
//	@Security	ApiKeyAuth
//	@Router		/orders/{orderId}/audit [get]
func (s *Server) GetOrderAuditTrail(ctx echo.Context, orderId int64) error {
	query, err := queries.NewGetOrderAuditTrailQuery(orderId)
	if err != nil {
		return validationFailed(ctx, fieldErrors(err))
	}

	res, err := s.getOrderAuditTrailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve audit trail")
	}

	return writeValue(ctx, res, http.StatusOK, auditTrailPayload)
}

// GetInventory handles GET /api/v1/inventory/:productId - retrieves stock.
//
//	@Summary	Get current stock for a product
//	@Tags		inventory
//	@Produce	json
//	@Param		productId	path		int	true	"Product identifier"
//	@Success	200			{object}	servers.Inventory
//	@Failure	404			{object}	servers.Error
//	@Security	ApiKeyAuth
//	@Router		/inventory/{productId} [get]
func (s *Server) GetInventory(ctx echo.Context, productId int64) error {
	query, err := queries.NewGetInventoryQuery(productId)
	if err != nil {
		return validationFailed(ctx, fieldErrors(err))
	}

	res, err := s.getInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve inventory")
	}

	return writeValue(ctx, res, http.StatusOK, func(inv queries.InventoryResponse) any {
		return servers.Inventory{ProductId: inv.ProductID, Stock: inv.Stock}
	})
}

// RestockProduct handles PUT /api/v1/inventory/:productId/stock - adds stock.
//
//	@Summary	Restock a product
//	@Tags		inventory
//	@Accept		json
//	@Produce	json
//	@Param		productId	path		int						true	"Product identifier"
//	@Param		restock		body		servers.RestockRequest	true	"Units to add"
//	@Success	200			{object}	servers.Inventory
//	@Failure	400			{object}	servers.ValidationError
//	@Failure	403			{object}	servers.Error
//	@Security	ApiKeyAuth
//	@Router		/inventory/{productId}/stock [put]
func (s *Server) RestockProduct(ctx echo.Context, productId int64) error {
	var restock servers.RestockRequest
	if err := ctx.Bind(&restock); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&restock); err != nil {
		return validationFailed(ctx, fieldErrorsFromValidator(err))
	}

	cmd, err := commands.NewRestockProductCommand(productId, restock.Quantity)
	if err != nil {
		return validationFailed(ctx, fieldErrors(err))
	}

	res, err := s.restockProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to restock product")
	}

	return writeValue(ctx, res, http.StatusOK, func(view commands.InventoryView) any {
		return servers.Inventory{ProductId: view.ProductID, Stock: view.Stock}
	})
}

// orderPayload maps the order read model to its transport shape.
func orderPayload(order queries.OrderResponse) any {
	details := make([]servers.OrderDetail, len(order.Details))
	for i, detail := range order.Details {
		details[i] = servers.OrderDetail{
			ProductId: detail.ProductID,
			Quantity:  detail.Quantity,
			UnitPrice: detail.UnitPrice,
			Subtotal:  detail.Subtotal,
		}
	}

	return servers.Order{
		Id:         order.ID,
		CustomerId: order.CustomerID,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
		Details:    details,
		Total:      order.Total,
	}
}

// auditTrailPayload maps audit journal lines to their transport shape.
func auditTrailPayload(trail []queries.AuditEntryResponse) any {
	entries := make([]servers.AuditEntry, len(trail))
	for i, entry := range trail {
		entries[i] = servers.AuditEntry{
			Id:         entry.ID,
			Action:     entry.Action,
			Details:    entry.Details,
			OccurredAt: entry.OccurredAt,
		}
	}
	return entries
}
