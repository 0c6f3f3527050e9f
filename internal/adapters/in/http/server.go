// Package http exposes the order operations over a REST API.
// It coordinates between HTTP handlers and application use cases; all business
// rules live in the command and query handlers.
package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the order service.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	changeStatusHandler       commands.ChangeOrderStatusCommandHandler
	bulkChangeStatusHandler   commands.BulkChangeOrderStatusCommandHandler
	restartProgressionHandler commands.RestartProgressionCommandHandler

	// Query handlers
	getOrderStatusHandler      queries.GetOrderStatusQueryHandler
	getOrdersByStatusHandler   queries.GetOrdersByStatusQueryHandler
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getOrderByIDHandler        queries.GetOrderByIDQueryHandler
	getCurrentOrderHandler     queries.GetCurrentOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	bulkChangeStatusHandler commands.BulkChangeOrderStatusCommandHandler,
	restartProgressionHandler commands.RestartProgressionCommandHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getCurrentOrderHandler queries.GetCurrentOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		changeStatusHandler:        changeStatusHandler,
		bulkChangeStatusHandler:    bulkChangeStatusHandler,
		restartProgressionHandler:  restartProgressionHandler,
		getOrderStatusHandler:      getOrderStatusHandler,
		getOrdersByStatusHandler:   getOrdersByStatusHandler,
		getOrdersByCustomerHandler: getOrdersByCustomerHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getOrderByIDHandler:        getOrderByIDHandler,
		getCurrentOrderHandler:     getCurrentOrderHandler,
	}
}

// RegisterRoutes attaches all order endpoints under /api/v1.
// Static segments are registered alongside :id routes; echo resolves
// /orders/status/... before /orders/:id, so the two cannot collide.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetAllOrders)
	v1.GET("/orders/:id", s.GetOrderByID)
	v1.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	v1.GET("/orders/:id/status", s.GetOrderStatus)
	v1.POST("/orders/:id/auto-update", s.RestartProgression)
	v1.PATCH("/orders/status/bulk", s.BulkChangeOrderStatus)
	v1.GET("/orders/status/:status", s.GetOrdersByStatus)
	v1.POST("/orders/mine", s.GetOrdersByCustomer)
	v1.POST("/orders/current", s.GetCurrentOrder)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return badRequest(ctx, "Invalid address id: "+err.Error())
	}

	itemIDs, err := parseUUIDs(req.ItemIDs)
	if err != nil {
		return badRequest(ctx, "Invalid item id: "+err.Error())
	}

	addonIDs, err := parseUUIDs(req.AddonIDs)
	if err != nil {
		return badRequest(ctx, "Invalid addon id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, addressID, itemIDs, addonIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - applies a manual
// status transition.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// BulkChangeOrderStatus handles PATCH /api/v1/orders/status/bulk - overrides
// the status of a batch of orders.
func (s *Server) BulkChangeOrderStatus(ctx echo.Context) error {
	var req BulkChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs, err := parseUUIDs(req.OrderIDs)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewBulkChangeOrderStatusCommand(orderIDs, req.Status, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	modified, err := s.bulkChangeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BulkChangeStatusResponse{ModifiedCount: modified})
}

// RestartProgression handles POST /api/v1/orders/:id/auto-update - re-accepts
// an order and restarts its automatic progression.
func (s *Server) RestartProgression(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRestartProgressionCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.restartProgressionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// GetOrderStatus handles GET /api/v1/orders/:id/status - returns the order's
// lifecycle position.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID:    result.OrderID.String(),
		Status:     result.Status,
		StatusName: result.StatusName,
		Timestamps: result.Timestamps,
	})
}

// GetOrdersByStatus handles GET /api/v1/orders/status/:status - lists orders
// in one status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	var statusOrdinal int
	if err := echo.PathParamsBinder(ctx).Int("status", &statusOrdinal).BindError(); err != nil {
		return badRequest(ctx, "Invalid status value")
	}

	query, err := queries.NewGetOrdersByStatusQuery(statusOrdinal)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderListEntry, 0, len(result))
	for _, row := range result {
		customer := customerSummaryToResponse(row.Customer)
		address := addressSummaryToResponse(row.Address)
		response = append(response, OrderListEntry{
			OrderID:    row.OrderID.String(),
			Status:     row.Status,
			StatusName: row.StatusName,
			CreatedAt:  row.CreatedAt,
			Customer:   &customer,
			Address:    &address,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByCustomer handles POST /api/v1/orders/mine - lists one customer's
// order history.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	var req CustomerOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	query, err := queries.NewGetOrdersByCustomerQuery(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderListEntry, 0, len(result))
	for _, row := range result {
		address := addressSummaryToResponse(row.Address)
		response = append(response, OrderListEntry{
			OrderID:    row.OrderID.String(),
			Status:     row.Status,
			StatusName: row.StatusName,
			CreatedAt:  row.CreatedAt,
			Address:    &address,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllOrders handles GET /api/v1/orders - lists every order.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	result, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderListEntry, 0, len(result))
	for _, row := range result {
		customer := customerSummaryToResponse(row.Customer)
		response = append(response, OrderListEntry{
			OrderID:    row.OrderID.String(),
			Status:     row.Status,
			StatusName: row.StatusName,
			CreatedAt:  row.CreatedAt,
			Customer:   &customer,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:id - returns one order in full detail.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailToResponse(result))
}

// GetCurrentOrder handles POST /api/v1/orders/current - returns a customer's
// latest order looked up by phone number.
func (s *Server) GetCurrentOrder(ctx echo.Context) error {
	var req CurrentOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewGetCurrentOrderQuery(req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getCurrentOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	if !result.Found {
		return ctx.JSON(http.StatusOK, CurrentOrderResponse{Found: false})
	}

	detail := orderDetailToResponse(result.Order)
	return ctx.JSON(http.StatusOK, CurrentOrderResponse{Found: true, Order: &detail})
}

func parseUUIDs(values []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(values))
	for _, v := range values {
		id, err := kernel.UUIDFromString(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors to HTTP status codes: missing objects to
// 404, rejected input to 400, everything else to 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidReference),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
