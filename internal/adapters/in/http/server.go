// Package http exposes the order lifecycle over a REST API. Handlers bind
// and parse the request, delegate to a command or query handler, and map the
// returned error onto an HTTP status. No business rules live here.
package http

import (
	"net/http"
	"strconv"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the application layer.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	updateStatusHandler   commands.UpdateOrderStatusCommandHandler
	recordPaymentHandler  commands.RecordPaymentCommandHandler
	removePaymentHandler  commands.RemovePaymentCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	archiveOrderHandler   commands.ArchiveCompletedOrderCommandHandler
	revertArchivedHandler commands.RevertArchivedOrderCommandHandler

	// Query handlers
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getArchivedOrdersHandler queries.GetArchivedOrdersQueryHandler
	getMenuItemsHandler      queries.GetMenuItemsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	removePaymentHandler commands.RemovePaymentCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	archiveOrderHandler commands.ArchiveCompletedOrderCommandHandler,
	revertArchivedHandler commands.RevertArchivedOrderCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getArchivedOrdersHandler queries.GetArchivedOrdersQueryHandler,
	getMenuItemsHandler queries.GetMenuItemsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		recordPaymentHandler:     recordPaymentHandler,
		removePaymentHandler:     removePaymentHandler,
		cancelOrderHandler:       cancelOrderHandler,
		archiveOrderHandler:      archiveOrderHandler,
		revertArchivedHandler:    revertArchivedHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getArchivedOrdersHandler: getArchivedOrdersHandler,
		getMenuItemsHandler:      getMenuItemsHandler,
	}
}

// RegisterRoutes mounts all routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetActiveOrders)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/payments", s.RecordPayment)
	v1.DELETE("/orders/:id/payments/:paymentId", s.RemovePayment)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/archive", s.ArchiveOrder)

	v1.GET("/history", s.GetArchivedOrders)
	v1.POST("/history/:id/revert", s.RevertArchivedOrder)

	v1.GET("/menu", s.GetMenuItems)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderType, err := order.ParseOrderType(req.OrderType)
	if err != nil {
		return writeError(ctx, err)
	}

	tableID, err := optionalUUID(req.TableID)
	if err != nil {
		return badRequest(ctx, "invalid tableId")
	}
	createdBy, err := optionalUUID(req.CreatedBy)
	if err != nil {
		return badRequest(ctx, "invalid createdBy")
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return badRequest(ctx, "invalid menuItemId")
		}
		lines = append(lines, commands.OrderLine{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		req.CustomerName,
		req.CustomerPhone,
		orderType,
		tableID,
		order.NewDeliveryAddress(req.Address.Address, req.Address.Landmark, req.Address.Building, req.Address.Unit),
		req.DeliveryCharge,
		req.SpecialNotes,
		createdBy,
		lines,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	code, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{Code: code.String()})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status. A transition to
// completed archives the order as part of the same request.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}
	actor, err := optionalUUID(req.Actor)
	if err != nil {
		return badRequest(ctx, "invalid actor")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/:id/payments. Negative amounts
// are accepted as corrections.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	method, err := order.ParsePaymentMethod(req.Method)
	if err != nil {
		return writeError(ctx, err)
	}
	editedBy, err := optionalUUID(req.EditedBy)
	if err != nil {
		return badRequest(ctx, "invalid editedBy")
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, method, req.Amount, req.TransactionID, editedBy)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemovePayment handles DELETE /api/v1/orders/:id/payments/:paymentId.
func (s *Server) RemovePayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	paymentID, err := kernel.UUIDFromString(ctx.Param("paymentId"))
	if err != nil {
		return badRequest(ctx, "invalid payment id")
	}

	cmd, err := commands.NewRemovePaymentCommand(orderID, paymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cancelledBy, err := optionalUUID(req.CancelledBy)
	if err != nil {
		return badRequest(ctx, "invalid cancelledBy")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, cancelledBy, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ArchiveOrder handles POST /api/v1/orders/:id/archive. It moves an already
// completed order that is still in the live table into the history.
func (s *Server) ArchiveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ArchiveOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actor, err := optionalUUID(req.Actor)
	if err != nil {
		return badRequest(ctx, "invalid actor")
	}

	cmd, err := commands.NewArchiveCompletedOrderCommand(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.archiveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RevertArchivedOrder handles POST /api/v1/history/:id/revert.
func (s *Server) RevertArchivedOrder(ctx echo.Context) error {
	archivedID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order history id")
	}

	var req RevertOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.ParseStatus(req.TargetStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRevertArchivedOrderCommand(archivedID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	restoredID, err := s.revertArchivedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RevertOrderResponse{OrderID: restoredID.String()})
}

// GetActiveOrders handles GET /api/v1/orders with optional status and type
// query parameters.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	status := order.UnknownStatus
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = parsed
	}

	orderType := order.UnknownType
	if raw := ctx.QueryParam("type"); raw != "" {
		parsed, err := order.ParseOrderType(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		orderType = parsed
	}

	query, err := queries.NewGetActiveOrdersQuery(status, orderType)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrderItem, len(rows))
	for i, row := range rows {
		response[i] = ActiveOrderItem{
			ID:             row.ID.String(),
			Code:           row.Code,
			CustomerName:   row.CustomerName,
			CustomerPhone:  row.CustomerPhone,
			OrderType:      row.OrderType,
			Status:         row.Status,
			PaymentStatus:  row.PaymentStatus,
			TotalAmount:    row.TotalAmount,
			DeliveryCharge: row.DeliveryCharge,
			ItemCount:      row.ItemCount,
			SpecialNotes:   row.SpecialNotes,
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetArchivedOrders handles GET /api/v1/history with optional status, from,
// to, limit, and offset query parameters. Timestamps accept RFC 3339 or a
// plain date.
func (s *Server) GetArchivedOrders(ctx echo.Context) error {
	status := order.UnknownStatus
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = parsed
	}

	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "invalid from timestamp")
	}
	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "invalid to timestamp")
	}

	limit, err := parseIntParam(ctx.QueryParam("limit"))
	if err != nil {
		return badRequest(ctx, "invalid limit")
	}
	offset, err := parseIntParam(ctx.QueryParam("offset"))
	if err != nil {
		return badRequest(ctx, "invalid offset")
	}

	query, err := queries.NewGetArchivedOrdersQuery(status, from, to, limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getArchivedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ArchivedOrderItem, len(rows))
	for i, row := range rows {
		response[i] = ArchivedOrderItem{
			ID:                 row.ID.String(),
			Code:               row.Code,
			CustomerName:       row.CustomerName,
			OrderType:          row.OrderType,
			Status:             row.Status,
			TotalAmount:        row.TotalAmount,
			DeliveryCharge:     row.DeliveryCharge,
			ItemCount:          row.ItemCount,
			CancellationReason: row.CancellationReason,
			CreatedAt:          row.CreatedAt,
			ArchivedAt:         row.ArchivedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItems handles GET /api/v1/menu with optional category and available
// query parameters.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	availableOnly := false
	if raw := ctx.QueryParam("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(ctx, "invalid available flag")
		}
		availableOnly = parsed
	}

	query := queries.NewGetMenuItemsQuery(ctx.QueryParam("category"), availableOnly)

	rows, err := s.getMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuListItem, len(rows))
	for i, row := range rows {
		response[i] = MenuListItem{
			ID:             row.ID.String(),
			Name:           row.Name,
			Category:       row.Category,
			Price:          row.Price,
			Available:      row.Available,
			DemandTier:     row.DemandTier,
			OrderCount:     row.OrderCount,
			LastTierUpdate: row.LastTierUpdate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
