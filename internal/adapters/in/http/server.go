// Package http exposes the order lifecycle and billing engine over a REST
// API. It coordinates between HTTP handlers and application use cases,
// translating request bodies into commands and domain errors into status
// codes.
package http

import (
	"errors"
	"net/http"

	"hydrohub/internal/core/application/usecases/commands"
	"hydrohub/internal/core/application/usecases/queries"
	"hydrohub/internal/core/domain/model/cart"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/core/domain/services"
	"hydrohub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the REST API for order lifecycle and billing operations.
type Server struct {
	createOrderHandler    commands.CreateOrderCommandHandler
	assignOrderHandler    commands.AssignOrderCommandHandler
	markShippedHandler    commands.MarkOrderShippedCommandHandler
	updateDeliveryHandler commands.UpdateShippedDeliveryCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler
	reconcileHandler      commands.ReconcileCompletedOrderCommandHandler
	parkCartHandler       commands.ParkCartCommandHandler
	restoreParkedHandler  commands.RestoreParkedOrderCommandHandler
	discardParkedHandler  commands.DiscardParkedOrderCommandHandler

	ordersByStatusHandler queries.GetOrdersByStatusQueryHandler
	allOrdersHandler      queries.GetAllOrdersQueryHandler
	parkedOrdersHandler   queries.GetParkedOrdersQueryHandler

	pricing services.PricingCalculator
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	markShippedHandler commands.MarkOrderShippedCommandHandler,
	updateDeliveryHandler commands.UpdateShippedDeliveryCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	reconcileHandler commands.ReconcileCompletedOrderCommandHandler,
	parkCartHandler commands.ParkCartCommandHandler,
	restoreParkedHandler commands.RestoreParkedOrderCommandHandler,
	discardParkedHandler commands.DiscardParkedOrderCommandHandler,
	ordersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	allOrdersHandler queries.GetAllOrdersQueryHandler,
	parkedOrdersHandler queries.GetParkedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		assignOrderHandler:    assignOrderHandler,
		markShippedHandler:    markShippedHandler,
		updateDeliveryHandler: updateDeliveryHandler,
		completeOrderHandler:  completeOrderHandler,
		reconcileHandler:      reconcileHandler,
		parkCartHandler:       parkCartHandler,
		restoreParkedHandler:  restoreParkedHandler,
		discardParkedHandler:  discardParkedHandler,
		ordersByStatusHandler: ordersByStatusHandler,
		allOrdersHandler:      allOrdersHandler,
		parkedOrdersHandler:   parkedOrdersHandler,
		pricing:               services.NewPricingCalculator(),
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.POST("/orders/:orderID/assign", s.AssignOrder)
	api.POST("/orders/:orderID/ship", s.MarkOrderShipped)
	api.PUT("/orders/:orderID/delivery", s.UpdateShippedDelivery)
	api.POST("/orders/:orderID/complete", s.CompleteOrder)
	api.POST("/orders/:orderID/reconcile", s.ReconcileOrder)

	api.POST("/carts/park", s.ParkCart)
	api.GET("/carts/parked", s.ListParkedOrders)
	api.POST("/carts/parked/:parkedOrderID/restore", s.RestoreParkedOrder)
	api.DELETE("/carts/parked/:parkedOrderID", s.DiscardParkedOrder)

	api.POST("/pricing/quote", s.QuotePricing)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	shoppingCart, err := toCart(request.Items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	discount, err := toDiscount(request.Discount)
	if err != nil {
		return s.respondError(ctx, err)
	}

	customerID, err := toCustomerID(request.CustomerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		shoppingCart,
		customerID,
		kernel.NewMoney(request.OtherCharges),
		discount,
		request.TaxPercent,
		request.Requirements,
		request.MergeIntoBalance,
		false,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// ListOrders handles GET /api/v1/orders. An optional status query parameter
// narrows the listing to one lifecycle status.
func (s *Server) ListOrders(ctx echo.Context) error {
	requestCtx := ctx.Request().Context()

	rawStatus := ctx.QueryParam("status")
	if rawStatus == "" {
		rows, err := s.allOrdersHandler.Handle(requestCtx, queries.NewGetAllOrdersQuery())
		if err != nil {
			return s.respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, s.toSummaries(rows))
	}

	status, err := order.StatusFromString(rawStatus)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	rows, err := s.ordersByStatusHandler.Handle(requestCtx, query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.toSummaries(rows))
}

// AssignOrder handles POST /api/v1/orders/:orderID/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := s.pathUUID(ctx, "orderID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request AssignOrderRequest
	if err = s.bind(ctx, &request); err != nil {
		return err
	}

	staffID, err := kernel.UUIDFromString(request.StaffID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, staffID, request.Requirements, request.Note)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderShipped handles POST /api/v1/orders/:orderID/ship.
func (s *Server) MarkOrderShipped(ctx echo.Context) error {
	orderID, err := s.pathUUID(ctx, "orderID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderShippedCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.markShippedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShippedDelivery handles PUT /api/v1/orders/:orderID/delivery.
func (s *Server) UpdateShippedDelivery(ctx echo.Context) error {
	orderID, err := s.pathUUID(ctx, "orderID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request UpdateDeliveryRequest
	if err = s.bind(ctx, &request); err != nil {
		return err
	}

	items := make([]order.LineItem, 0, len(request.Items))
	for _, item := range request.Items {
		lineItem, itemErr := order.NewLineItem(
			item.ProductID, item.Name, kernel.NewMoney(item.UnitPrice), item.Quantity,
		)
		if itemErr != nil {
			return s.respondError(ctx, itemErr)
		}
		items = append(items, lineItem)
	}

	bottleReturn, err := order.NewBottleReturn(
		request.BottleReturn.Ordered,
		request.BottleReturn.Received,
		kernel.NewMoney(request.BottleReturn.Collectable),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShippedDeliveryCommand(orderID, items, bottleReturn)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderID/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := s.pathUUID(ctx, "orderID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request CompleteOrderRequest
	if err = s.bind(ctx, &request); err != nil {
		return err
	}

	action, err := order.ReconcileActionFromString(request.ReconcileAction)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, request.Method, kernel.NewMoney(request.Received), action)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReconcileOrder handles POST /api/v1/orders/:orderID/reconcile. The
// operation is idempotent: reconciling an already-settled order succeeds
// without touching the ledger.
func (s *Server) ReconcileOrder(ctx echo.Context) error {
	orderID, err := s.pathUUID(ctx, "orderID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewReconcileCompletedOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.reconcileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ParkCart handles POST /api/v1/carts/park.
func (s *Server) ParkCart(ctx echo.Context) error {
	var request ParkCartRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	shoppingCart, err := toCart(request.Items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	customerID, err := toCustomerID(request.CustomerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	parkedOrderID := kernel.NewUUID()
	cmd, err := commands.NewParkCartCommand(parkedOrderID, shoppingCart, customerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.parkCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": parkedOrderID.String()})
}

// ListParkedOrders handles GET /api/v1/carts/parked.
func (s *Server) ListParkedOrders(ctx echo.Context) error {
	rows, err := s.parkedOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetParkedOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]ParkedOrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, toParkedSummary(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// RestoreParkedOrder handles POST /api/v1/carts/parked/:parkedOrderID/restore.
// The snapshot is consumed: a second restore of the same id yields 404.
func (s *Server) RestoreParkedOrder(ctx echo.Context) error {
	parkedOrderID, err := s.pathUUID(ctx, "parkedOrderID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRestoreParkedOrderCommand(parkedOrderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	parked, err := s.restoreParkedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRestoredCart(parked))
}

// DiscardParkedOrder handles DELETE /api/v1/carts/parked/:parkedOrderID.
func (s *Server) DiscardParkedOrder(ctx echo.Context) error {
	parkedOrderID, err := s.pathUUID(ctx, "parkedOrderID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDiscardParkedOrderCommand(parkedOrderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.discardParkedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// QuotePricing handles POST /api/v1/pricing/quote. Pricing is pure
// calculation; nothing is persisted.
func (s *Server) QuotePricing(ctx echo.Context) error {
	var request QuoteRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	shoppingCart, err := toCart(request.Items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	discount, err := toDiscount(request.Discount)
	if err != nil {
		return s.respondError(ctx, err)
	}

	quote, err := s.pricing.Calculate(
		shoppingCart.Items(),
		kernel.NewMoney(request.OtherCharges),
		discount,
		request.TaxPercent,
		kernel.NewMoney(request.Received),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toQuoteResponse(quote))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func (s *Server) bind(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := ctx.Validate(request); err != nil {
		var httpErr *echo.HTTPError
		message := "Validation failed"
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: message,
		})
	}

	return nil
}

func (s *Server) pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func (s *Server) toSummaries(rows []queries.GetOrdersByStatusQueryResponse) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, toOrderSummary(row))
	}
	return response
}

// respondError maps domain and application errors to HTTP status codes.
func (s *Server) respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrStaffNotFound):
		code = http.StatusNotFound

	case errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderIsTerminal):
		code = http.StatusConflict

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed),
		errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, order.ErrNoLineItems),
		errors.Is(err, commands.ErrNoCustomerSelected),
		errors.Is(err, commands.ErrPaymentMethodIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
