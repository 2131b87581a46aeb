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

// CreateActivity registers a new activity with its options.
// @Summary Create a new activity
// @Description Register an activity together with its priced options.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateActivityRequest true "Create Activity Request"
// @Success 201 {object} response.Message "Activity created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/activities [post]
// @Security BearerAuth
func (handler *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateActivity")
	defer scope.End()

	req := dto.CreateActivityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateActivity(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create activity")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Activity created successfully")

	response.WithMessage(w, http.StatusCreated, "Activity created successfully")
}

// GetActivities retrieves all activities based on query parameters.
// @Summary Get all activities
// @Description Retrieve activities with optional filtering and pagination.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetActivitiesResponse] "List of activities"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/activities [get]
// @Security BearerAuth
func (handler *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if name := r.URL.Query().Get(model.FieldActivityName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActivityName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.ActivityTableName,
		})
	}

	activities, err := handler.service.GetActivities(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get activities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Activities retrieved successfully")

	response.WithJSON(w, http.StatusOK, activities)
}

// GetActivityByID retrieves an activity with its options.
// @Summary Get an activity by ID
// @Description Retrieve an activity by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} response.Data[model.Activity] "Activity details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/activities/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetActivityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivityByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	activity, err := handler.service.GetActivity(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get activity by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Activity retrieved successfully")

	response.WithJSON(w, http.StatusOK, activity)
}

// UpdateActivity updates an existing activity by its ID.
// @Summary Update an activity by ID
// @Description Update activity details by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body dto.UpdateActivityRequest true "Update Activity Request"
// @Success 200 {object} response.Message "Activity updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/activities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateActivity")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateActivityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateActivity(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update activity")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Activity updated successfully")

	response.WithMessage(w, http.StatusOK, "Activity updated successfully")
}

// DeleteActivity removes an activity from the catalog.
// @Summary Delete an activity by ID
// @Description Delete an activity by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} response.Message "Activity deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/activities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteActivity")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteActivity(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete activity")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Activity deleted successfully")

	response.WithMessage(w, http.StatusOK, "Activity deleted successfully")
}
