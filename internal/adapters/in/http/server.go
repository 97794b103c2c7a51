// Package http is the inbound HTTP adapter: echo routing, bearer-token
// authentication, and translation between the JSON contract and the
// application's commands and queries.
package http

import (
	"log/slog"
	"net/http"

	"shipadmin/internal/core/application/usecases/commands"
	"shipadmin/internal/core/application/usecases/queries"
	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createGovernorateHandler commands.CreateGovernorateCommandHandler
	updateGovernorateHandler commands.UpdateGovernorateCommandHandler
	toggleGovernorateHandler commands.ToggleGovernorateCommandHandler
	deleteGovernorateHandler commands.DeleteGovernorateCommandHandler
	createCityHandler        commands.CreateCityCommandHandler
	updateCityHandler        commands.UpdateCityCommandHandler
	toggleCityHandler        commands.ToggleCityCommandHandler
	deleteCityHandler        commands.DeleteCityCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	listGovernoratesHandler queries.ListGovernoratesQueryHandler
	listCitiesHandler       queries.ListCitiesQueryHandler
	listOrdersHandler       queries.ListOrdersQueryHandler
	searchOrdersHandler     queries.SearchOrdersQueryHandler

	logger      *slog.Logger
	debugErrors bool
}

// Handlers bundles the use-case handlers the server dispatches to.
type Handlers struct {
	CreateGovernorate commands.CreateGovernorateCommandHandler
	UpdateGovernorate commands.UpdateGovernorateCommandHandler
	ToggleGovernorate commands.ToggleGovernorateCommandHandler
	DeleteGovernorate commands.DeleteGovernorateCommandHandler
	CreateCity        commands.CreateCityCommandHandler
	UpdateCity        commands.UpdateCityCommandHandler
	ToggleCity        commands.ToggleCityCommandHandler
	DeleteCity        commands.DeleteCityCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler

	ListGovernorates queries.ListGovernoratesQueryHandler
	ListCities       queries.ListCitiesQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	SearchOrders     queries.SearchOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers. debugErrors exposes raw internal error text in 500 responses
// and must stay off outside local development.
func NewServer(handlers Handlers, logger *slog.Logger, debugErrors bool) *Server {
	return &Server{
		createGovernorateHandler: handlers.CreateGovernorate,
		updateGovernorateHandler: handlers.UpdateGovernorate,
		toggleGovernorateHandler: handlers.ToggleGovernorate,
		deleteGovernorateHandler: handlers.DeleteGovernorate,
		createCityHandler:        handlers.CreateCity,
		updateCityHandler:        handlers.UpdateCity,
		toggleCityHandler:        handlers.ToggleCity,
		deleteCityHandler:        handlers.DeleteCity,
		createOrderHandler:       handlers.CreateOrder,
		updateOrderStatusHandler: handlers.UpdateOrderStatus,
		deleteOrderHandler:       handlers.DeleteOrder,
		listGovernoratesHandler:  handlers.ListGovernorates,
		listCitiesHandler:        handlers.ListCities,
		listOrdersHandler:        handlers.ListOrders,
		searchOrdersHandler:      handlers.SearchOrders,
		logger:                   logger.With("component", "http"),
		debugErrors:              debugErrors,
	}
}

// RegisterRoutes mounts all API routes on the echo instance. Everything
// except the health probe sits behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api", auth)

	governorates := api.Group("/locations/governorates")
	governorates.POST("", s.CreateGovernorate)
	governorates.GET("", s.ListGovernorates)
	governorates.PUT("/:id", s.UpdateGovernorate)
	governorates.PATCH("/:id/toggle-status", s.ToggleGovernorate)
	governorates.DELETE("/:id", s.DeleteGovernorate)
	governorates.GET("/:govId/cities", s.ListCitiesOfGovernorate)

	cities := api.Group("/locations/cities")
	cities.POST("", s.CreateCity)
	cities.GET("", s.ListCities)
	cities.PUT("/:id", s.UpdateCity)
	cities.PATCH("/:id/toggle-status", s.ToggleCity)
	cities.DELETE("/:id", s.DeleteCity)

	orders := api.Group("/orders")
	orders.POST("/add", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/search", s.SearchOrders)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)
	orders.DELETE("/:id", s.DeleteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type governorateRequest struct {
	GovName string `json:"govName"`
	GovCode string `json:"govCode"`
}

type cityRequest struct {
	CityName      string   `json:"cityName"`
	GovernorateID string   `json:"governorateId"`
	ShippingCost  *float64 `json:"shippingCost"`
}

type orderProductRequest struct {
	ProductName string   `json:"productName"`
	Quantity    *int     `json:"quantity"`
	Weight      *float64 `json:"weight"`
}

type orderRequest struct {
	OrderType         string                `json:"orderType"`
	CustomerName      string                `json:"customerName"`
	CustomerPhone1    string                `json:"customerPhone1"`
	CustomerPhone2    string                `json:"customerPhone2"`
	CustomerEmail     string                `json:"customerEmail"`
	Governorate       string                `json:"governorate"`
	City              string                `json:"city"`
	Street            string                `json:"street"`
	Village           string                `json:"village"`
	IsVillageDelivery bool                  `json:"isVillageDelivery"`
	ShippingType      string                `json:"shippingType"`
	PaymentType       string                `json:"paymentType"`
	Branch            string                `json:"branch"`
	OrderCost         *float64              `json:"orderCost"`
	TotalWeight       *float64              `json:"totalWeight"`
	Products          []orderProductRequest `json:"products"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// CreateGovernorate handles POST /api/locations/governorates.
func (s *Server) CreateGovernorate(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	var request governorateRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	cmd, err := commands.NewCreateGovernorateCommand(request.GovName, request.GovCode, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	governorate, err := s.createGovernorateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, success(toGovernorateJSON(governorate)))
}

// ListGovernorates handles GET /api/locations/governorates.
func (s *Server) ListGovernorates(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	query, err := queries.NewListGovernoratesQuery(caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	governorates, err := s.listGovernoratesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]governorateJSON, 0, len(governorates))
	for _, governorate := range governorates {
		response = append(response, toGovernorateResponseJSON(governorate))
	}

	return ctx.JSON(http.StatusOK, successList(len(response), response))
}

// UpdateGovernorate handles PUT /api/locations/governorates/:id.
func (s *Server) UpdateGovernorate(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var request governorateRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	cmd, err := commands.NewUpdateGovernorateCommand(id, request.GovName, request.GovCode, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	governorate, err := s.updateGovernorateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, success(toGovernorateJSON(governorate)))
}

// ToggleGovernorate handles PATCH /api/locations/governorates/:id/toggle-status.
func (s *Server) ToggleGovernorate(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewToggleGovernorateCommand(id, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	governorate, err := s.toggleGovernorateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, success(toGovernorateJSON(governorate)))
}

// DeleteGovernorate handles DELETE /api/locations/governorates/:id.
func (s *Server) DeleteGovernorate(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewDeleteGovernorateCommand(id, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.deleteGovernorateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successMessage("governorate deleted"))
}

// CreateCity handles POST /api/locations/cities.
func (s *Server) CreateCity(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	var request cityRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	governorateID, err := kernel.UUIDFromString(request.GovernorateID)
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsRequiredErrorWithCause("governorateId", err))
	}

	cmd, err := commands.NewCreateCityCommand(request.CityName, governorateID, request.ShippingCost, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.createCityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, success(toCityJSON(result)))
}

// ListCities handles GET /api/locations/cities.
func (s *Server) ListCities(ctx echo.Context) error {
	return s.listCities(ctx, nil)
}

// ListCitiesOfGovernorate handles GET /api/locations/governorates/:govId/cities.
func (s *Server) ListCitiesOfGovernorate(ctx echo.Context) error {
	governorateID, err := kernel.UUIDFromString(ctx.Param("govId"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("govId", err))
	}
	return s.listCities(ctx, &governorateID)
}

func (s *Server) listCities(ctx echo.Context, governorateID *kernel.UUID) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	query, err := queries.NewListCitiesQuery(governorateID, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cities, err := s.listCitiesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]cityJSON, 0, len(cities))
	for _, city := range cities {
		response = append(response, toCityResponseJSON(city))
	}

	return ctx.JSON(http.StatusOK, successList(len(response), response))
}

// UpdateCity handles PUT /api/locations/cities/:id.
func (s *Server) UpdateCity(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var request cityRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	governorateID, err := kernel.UUIDFromString(request.GovernorateID)
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsRequiredErrorWithCause("governorateId", err))
	}

	cmd, err := commands.NewUpdateCityCommand(id, request.CityName, governorateID, request.ShippingCost, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.updateCityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, success(toCityJSON(result)))
}

// ToggleCity handles PATCH /api/locations/cities/:id/toggle-status.
func (s *Server) ToggleCity(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewToggleCityCommand(id, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.toggleCityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, success(toCityJSON(result)))
}

// DeleteCity handles DELETE /api/locations/cities/:id.
func (s *Server) DeleteCity(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewDeleteCityCommand(id, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.deleteCityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successMessage("city deleted"))
}

// CreateOrder handles POST /api/orders/add.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	var request orderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	products := make([]commands.ProductInput, 0, len(request.Products))
	for _, product := range request.Products {
		products = append(products, commands.ProductInput{
			ProductName: product.ProductName,
			Quantity:    product.Quantity,
			Weight:      product.Weight,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderInput{
		OrderType:         request.OrderType,
		CustomerName:      request.CustomerName,
		CustomerPhone1:    request.CustomerPhone1,
		CustomerPhone2:    request.CustomerPhone2,
		CustomerEmail:     request.CustomerEmail,
		Governorate:       request.Governorate,
		City:              request.City,
		Street:            request.Street,
		Village:           request.Village,
		IsVillageDelivery: request.IsVillageDelivery,
		ShippingType:      request.ShippingType,
		PaymentType:       request.PaymentType,
		Branch:            request.Branch,
		OrderCost:         request.OrderCost,
		TotalWeight:       request.TotalWeight,
		Products:          products,
	}, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, success(toOrderJSON(aggregate)))
}

// ListOrders handles GET /api/orders. Query params: status (enum value or
// "all"), q (substring over name, primary phone, email).
func (s *Server) ListOrders(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	query, err := queries.NewListOrdersQuery(
		ctx.QueryParam("status"), ctx.QueryParam("q"), caller,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]orderJSON, 0, len(orders))
	for _, row := range orders {
		response = append(response, toOrderResponseJSON(row))
	}

	return ctx.JSON(http.StatusOK, successList(len(response), map[string]any{"orders": response}))
}

// SearchOrders handles GET /api/orders/search. Query param: q (required).
func (s *Server) SearchOrders(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	query, err := queries.NewSearchOrdersQuery(ctx.QueryParam("q"), caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]orderJSON, 0, len(orders))
	for _, row := range orders {
		response = append(response, toOrderResponseJSON(row))
	}

	return ctx.JSON(http.StatusOK, successList(len(response), map[string]any{"orders": response}))
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var request statusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, request.Status, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	aggregate, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, success(toOrderJSON(aggregate)))
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "missing caller"})
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewDeleteOrderCommand(id, caller)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successMessage("order deleted"))
}
