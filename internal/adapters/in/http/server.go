package http

import (
	"net/http"
	"strconv"
	"time"

	"orderintake/internal/core/application/usecases/commands"
	"orderintake/internal/core/application/usecases/queries"
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerVendorHandler commands.RegisterVendorCommandHandler
	submitOrderHandler    commands.SubmitOrderCommandHandler

	// Query handlers
	getAllVendorsHandler   queries.GetAllVendorsQueryHandler
	getVendorHandler       queries.GetVendorQueryHandler
	getOrderStatusHandler  queries.GetOrderStatusQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerVendorHandler commands.RegisterVendorCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	getAllVendorsHandler queries.GetAllVendorsQueryHandler,
	getVendorHandler queries.GetVendorQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
) *Server {
	return &Server{
		registerVendorHandler:  registerVendorHandler,
		submitOrderHandler:     submitOrderHandler,
		getAllVendorsHandler:   getAllVendorsHandler,
		getVendorHandler:       getVendorHandler,
		getOrderStatusHandler:  getOrderStatusHandler,
		listOrdersHandler:      listOrdersHandler,
		getOrderSummaryHandler: getOrderSummaryHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
// The rate limiter guards only order submission.
func (s *Server) RegisterRoutes(e *echo.Echo, submissionLimiter echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	vendors := e.Group("/vendors")
	vendors.POST("/", s.RegisterVendor)
	vendors.GET("/", s.GetVendors)
	vendors.GET("/:vendor_id", s.GetVendor)

	orders := e.Group("/orders")
	orders.POST("/", s.SubmitOrder, submissionLimiter)
	orders.GET("/:vendor_id", s.ListOrders)
	orders.GET("/status/:order_id", s.GetOrderStatus)
	orders.GET("/summary/:vendor_id", s.GetOrderSummary)
}

// Health reports service liveness.
//
//	@Summary		Health check
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterVendor handles POST /vendors/ - registers a new vendor.
//
//	@Summary		Register a vendor
//	@Tags			vendors
//	@Accept			json
//	@Produce		json
//	@Param			vendor	body		RegisterVendorRequest	true	"Vendor to register"
//	@Success		201		{object}	VendorResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/vendors/ [post]
func (s *Server) RegisterVendor(ctx echo.Context) error {
	var request RegisterVendorRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterVendorCommand(kernel.NewUUID(), request.Name, request.Email)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	registered, err := s.registerVendorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, VendorResponse{
		ID:        registered.ID().String(),
		Name:      registered.Name(),
		Email:     registered.Email(),
		CreatedAt: registered.CreatedAt(),
	})
}

// GetVendors handles GET /vendors/ - retrieves all vendors.
//
//	@Summary		List vendors
//	@Tags			vendors
//	@Produce		json
//	@Success		200	{array}	VendorResponse
//	@Router			/vendors/ [get]
func (s *Server) GetVendors(ctx echo.Context) error {
	query := queries.NewGetAllVendorsQuery()

	vendors, err := s.getAllVendorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		response = append(response, toVendorResponse(v))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVendor handles GET /vendors/:vendor_id - retrieves a single vendor.
//
//	@Summary		Get a vendor
//	@Tags			vendors
//	@Produce		json
//	@Param			vendor_id	path		string	true	"Vendor ID"
//	@Success		200			{object}	VendorResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/vendors/{vendor_id} [get]
func (s *Server) GetVendor(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("vendor_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid vendor id")
	}

	query, err := queries.NewGetVendorQuery(vendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	v, err := s.getVendorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVendorResponse(*v))
}

// SubmitOrder handles POST /orders/ - accepts a new order for fulfillment.
//
//	@Summary		Submit an order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		SubmitOrderRequest	true	"Order to submit"
//	@Success		200		{object}	SubmittedOrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		429		{object}	ErrorResponse
//	@Router			/orders/ [post]
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var request SubmitOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := s.buildSubmitOrderCommand(request)
	if err != nil {
		return respondError(ctx, err)
	}

	submitted, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	vendorQuery, err := queries.NewGetVendorQuery(submitted.VendorID())
	if err != nil {
		return respondError(ctx, err)
	}
	v, err := s.getVendorHandler.Handle(ctx.Request().Context(), vendorQuery)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSubmittedOrderResponse(submitted, *v))
}

// GetOrderStatus handles GET /orders/status/:order_id - looks up order status.
//
//	@Summary		Get order status
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		string	true	"Caller-supplied order ID"
//	@Success		200			{object}	OrderStatusResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/orders/status/{order_id} [get]
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	query, err := queries.NewGetOrderStatusQuery(ctx.Param("order_id"))
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID:   status.OrderID,
		Status:    status.Status,
		UpdatedAt: status.UpdatedAt,
	})
}

// ListOrders handles GET /orders/:vendor_id - lists a vendor's orders with
// optional date and priority filters plus pagination.
//
//	@Summary		List a vendor's orders
//	@Tags			orders
//	@Produce		json
//	@Param			vendor_id	path		string	true	"Vendor ID"
//	@Param			start_date	query		string	false	"Earliest creation date (YYYY-MM-DD)"
//	@Param			end_date	query		string	false	"Latest creation date (YYYY-MM-DD)"
//	@Param			priority	query		string	false	"Priority filter"	Enums(LOW, MEDIUM, HIGH)
//	@Param			page		query		int		false	"Page number"
//	@Param			size		query		int		false	"Page size"
//	@Success		200			{array}		OrderResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/orders/{vendor_id} [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("vendor_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid vendor id")
	}

	filter, err := parseListOrdersFilter(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	size, _ := strconv.Atoi(ctx.QueryParam("size"))

	query, err := queries.NewListOrdersQuery(vendorID, filter, page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderSummary handles GET /orders/summary/:vendor_id - aggregates a
// vendor's order book.
//
//	@Summary		Summarize a vendor's orders
//	@Tags			orders
//	@Produce		json
//	@Param			vendor_id	path		string	true	"Vendor ID"
//	@Success		200			{object}	OrderSummaryResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/orders/summary/{vendor_id} [get]
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("vendor_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid vendor id")
	}

	query, err := queries.NewGetOrderSummaryQuery(vendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderSummaryResponse{
		TotalOrders:         summary.TotalOrders,
		TotalItems:          summary.TotalItems,
		TotalPriorityOrders: summary.TotalPriorityOrders,
	})
}

// buildSubmitOrderCommand turns a validated request body into domain values
// and the submission command.
func (s *Server) buildSubmitOrderCommand(request SubmitOrderRequest) (commands.SubmitOrderCommand, error) {
	vendorID, err := kernel.UUIDFromString(request.VendorID)
	if err != nil {
		return commands.SubmitOrderCommand{}, err
	}

	priority, err := order.ParsePriority(request.Priority)
	if err != nil {
		return commands.SubmitOrderCommand{}, err
	}

	address, err := order.NewAddress(request.Address, request.City, request.State, request.PostalCode)
	if err != nil {
		return commands.SubmitOrderCommand{}, err
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, line := range request.Items {
		item, itemErr := order.NewItem(kernel.NewUUID(), line.ItemName, line.Quantity)
		if itemErr != nil {
			return commands.SubmitOrderCommand{}, itemErr
		}
		items = append(items, item)
	}

	return commands.NewSubmitOrderCommand(request.OrderID, vendorID, priority, address, items)
}

// parseListOrdersFilter reads the optional listing query parameters. Dates are
// date-only; the end date is widened to the end of that day.
func parseListOrdersFilter(ctx echo.Context) (queries.ListOrdersFilter, error) {
	var filter queries.ListOrdersFilter

	if raw := ctx.QueryParam("start_date"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, errs.NewValueIsInvalidErrorWithCause("start_date", err)
		}
		filter.StartDate = &start
	}

	if raw := ctx.QueryParam("end_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, errs.NewValueIsInvalidErrorWithCause("end_date", err)
		}
		end := parsed.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}

	if raw := ctx.QueryParam("priority"); raw != "" {
		priority, err := order.ParsePriority(raw)
		if err != nil {
			return filter, err
		}
		filter.Priority = &priority
	}

	return filter, nil
}
