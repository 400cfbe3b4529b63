package inventory

import (
	"net/http"
	"smeraldo/infras/otel"
	"smeraldo/internal/domains/inventory/model"
	"smeraldo/internal/domains/inventory/model/dto"
	"smeraldo/internal/domains/inventory/service"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/validator"
	"smeraldo/transport/http/middleware"
	"smeraldo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Inventory
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Inventory, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Authenticate)
		routerGroup.Use(handler.middleware.RequireRole(constant.RoleReception, constant.RoleManager))

		routerGroup.Get("/", handler.GetItems)
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/low-stock", handler.GetLowStockItems)
		routerGroup.Post("/movements", handler.MoveStock)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
		routerGroup.Get("/{id}/movements", handler.GetMovements)
	})
}

// CreateItem adds an item to the inventory.
// @Summary Create an inventory item
// @Description Create an item with name, category, stock level, threshold and unit.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Message "Inventory item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateItem(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inventory item")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Inventory item created successfully")

	response.WithMessage(writer, http.StatusCreated, "Inventory item created successfully")
}

// GetItems retrieves all inventory items.
// @Summary Get all inventory items
// @Description Retrieve items with optional category and name filters, ordered by category then name.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Param name query string false "Filter by name (substring)"
// @Success 200 {object} dto.GetItemsResponse "List of inventory items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [get]
// @Security BearerAuth
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	category := r.URL.Query().Get(model.FieldCategory)
	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	items, err := handler.service.GetAllItems(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetLowStockItems retrieves items at or below their threshold.
// @Summary Get low stock items
// @Description Retrieve items whose current stock has reached the restock threshold.
// @Tags Inventory
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetItemsResponse "List of low stock items"
// @Failure 500 {object} response.Error
// @Router /v1/inventory/low-stock [get]
// @Security BearerAuth
func (handler *Handler) GetLowStockItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLowStockItems")
	defer scope.End()

	items, err := handler.service.LowStockItems(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get low stock items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Low stock items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetItemByID retrieves an inventory item by its ID.
// @Summary Get an inventory item by ID
// @Description Retrieve an inventory item by its unique identifier.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse "Inventory item details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.GetItem(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateItem updates an inventory item's descriptive fields.
// @Summary Update an inventory item
// @Description Update name, category, threshold or unit. Stock changes only through movements.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Message "Inventory item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateItem(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inventory item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory item updated successfully")

	response.WithMessage(w, http.StatusOK, "Inventory item updated successfully")
}

// DeleteItem removes an inventory item.
// @Summary Delete an inventory item
// @Description Delete an inventory item by its unique identifier.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Message "Inventory item deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteItem(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inventory item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory item deleted successfully")

	response.WithMessage(w, http.StatusOK, "Inventory item deleted successfully")
}

// MoveStock records a stock movement.
// @Summary Record a stock movement
// @Description Record a stock_in or stock_out and apply it to the item's stock atomically.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.MoveStockRequest true "Move Stock Request"
// @Success 201 {object} response.Message "Stock movement recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/movements [post]
// @Security BearerAuth
func (handler *Handler) MoveStock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MoveStock")
	defer scope.End()

	req := dto.MoveStockRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Move(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record stock movement")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock movement recorded successfully")

	response.WithMessage(w, http.StatusCreated, "Stock movement recorded successfully")
}

// GetMovements retrieves the movement history of an item.
// @Summary Get stock movements for an item
// @Description Retrieve an item's stock movements, newest first.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetMovementsResponse "Stock movement history"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id}/movements [get]
// @Security BearerAuth
func (handler *Handler) GetMovements(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMovements")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	movements, err := handler.service.Movements(ctx, id, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock movements")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock movements retrieved successfully")

	response.WithJSON(w, http.StatusOK, movements)
}
