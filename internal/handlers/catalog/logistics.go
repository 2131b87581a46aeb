package catalog

import (
	"net/http"

	"caravan/internal/domains/catalog/model"
	"caravan/internal/domains/catalog/model/dto"
	"caravan/shared/constant"
	gDto "caravan/shared/dto"
	"caravan/shared/validator"
	"caravan/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// CreateTransportation registers a new transportation option.
// @Summary Create a new transportation
// @Description Register a transportation option with its seasonal daily rates.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateTransportationRequest true "Create Transportation Request"
// @Success 201 {object} response.Message "Transportation created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/transportations [post]
// @Security BearerAuth
func (handler *Handler) CreateTransportation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTransportation")
	defer scope.End()

	req := dto.CreateTransportationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateTransportation(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create transportation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transportation created successfully")

	response.WithMessage(w, http.StatusCreated, "Transportation created successfully")
}

// GetTransportations retrieves all transportation options based on query parameters.
// @Summary Get all transportations
// @Description Retrieve transportation options with optional filtering and pagination.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param type query string false "Filter by type"
// @Success 200 {object} response.Data[dto.GetTransportationsResponse] "List of transportations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/transportations [get]
// @Security BearerAuth
func (handler *Handler) GetTransportations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransportations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if name := r.URL.Query().Get(model.FieldTransportationName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTransportationName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TransportationTableName,
		})
	}

	if transportType := r.URL.Query().Get(model.FieldTransportationType); transportType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTransportationType,
			Operator: gDto.FilterOperatorEq,
			Value:    transportType,
			Table:    model.TransportationTableName,
		})
	}

	transportations, err := handler.service.GetTransportations(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transportations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transportations retrieved successfully")

	response.WithJSON(w, http.StatusOK, transportations)
}

// UpdateTransportation updates an existing transportation by its ID.
// @Summary Update a transportation by ID
// @Description Update transportation details by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Transportation ID"
// @Param request body dto.UpdateTransportationRequest true "Update Transportation Request"
// @Success 200 {object} response.Message "Transportation updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/transportations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTransportation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTransportation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTransportationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateTransportation(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update transportation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transportation updated successfully")

	response.WithMessage(w, http.StatusOK, "Transportation updated successfully")
}

// DeleteTransportation removes a transportation option from the catalog.
// @Summary Delete a transportation by ID
// @Description Delete a transportation by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Transportation ID"
// @Success 200 {object} response.Message "Transportation deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/transportations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTransportation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTransportation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteTransportation(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete transportation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transportation deleted successfully")

	response.WithMessage(w, http.StatusOK, "Transportation deleted successfully")
}

// CreateMeal registers a new meal option.
// @Summary Create a new meal
// @Description Register a meal option with its per person price.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateMealRequest true "Create Meal Request"
// @Success 201 {object} response.Message "Meal created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/meals [post]
// @Security BearerAuth
func (handler *Handler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMeal")
	defer scope.End()

	req := dto.CreateMealRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateMeal(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create meal")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meal created successfully")

	response.WithMessage(w, http.StatusCreated, "Meal created successfully")
}

// GetMeals retrieves all meal options based on query parameters.
// @Summary Get all meals
// @Description Retrieve meal options with optional filtering and pagination.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetMealsResponse] "List of meals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/meals [get]
// @Security BearerAuth
func (handler *Handler) GetMeals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMeals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if name := r.URL.Query().Get(model.FieldMealName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldMealName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.MealTableName,
		})
	}

	meals, err := handler.service.GetMeals(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get meals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meals retrieved successfully")

	response.WithJSON(w, http.StatusOK, meals)
}

// UpdateMeal updates an existing meal by its ID.
// @Summary Update a meal by ID
// @Description Update meal details by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Param request body dto.UpdateMealRequest true "Update Meal Request"
// @Success 200 {object} response.Message "Meal updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/meals/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMeal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMealRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateMeal(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update meal")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meal updated successfully")

	response.WithMessage(w, http.StatusOK, "Meal updated successfully")
}

// DeleteMeal removes a meal option from the catalog.
// @Summary Delete a meal by ID
// @Description Delete a meal by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} response.Message "Meal deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/meals/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMeal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteMeal(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete meal")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meal deleted successfully")

	response.WithMessage(w, http.StatusOK, "Meal deleted successfully")
}
