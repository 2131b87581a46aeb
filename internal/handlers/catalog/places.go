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

// CreateSightseeing registers a new sightseeing spot.
// @Summary Create a new sightseeing spot
// @Description Register a sightseeing spot with its area and reachable transport modes.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateSightseeingRequest true "Create Sightseeing Request"
// @Success 201 {object} response.Message "Sightseeing spot created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/sightseeings [post]
// @Security BearerAuth
func (handler *Handler) CreateSightseeing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSightseeing")
	defer scope.End()

	req := dto.CreateSightseeingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateSightseeing(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create sightseeing spot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sightseeing spot created successfully")

	response.WithMessage(w, http.StatusCreated, "Sightseeing spot created successfully")
}

// GetSightseeings retrieves all sightseeing spots based on query parameters.
// @Summary Get all sightseeing spots
// @Description Retrieve sightseeing spots with optional filtering and pagination.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param area query string false "Filter by area"
// @Success 200 {object} response.Data[dto.GetSightseeingsResponse] "List of sightseeing spots"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/sightseeings [get]
// @Security BearerAuth
func (handler *Handler) GetSightseeings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSightseeings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if name := r.URL.Query().Get(model.FieldSightseeingName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSightseeingName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.SightseeingTableName,
		})
	}

	if area := r.URL.Query().Get(model.FieldSightseeingArea); area != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSightseeingArea,
			Operator: gDto.FilterOperatorLike,
			Value:    area,
			Table:    model.SightseeingTableName,
		})
	}

	sightseeings, err := handler.service.GetSightseeings(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sightseeing spots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sightseeing spots retrieved successfully")

	response.WithJSON(w, http.StatusOK, sightseeings)
}

// GetSightseeingByID retrieves a sightseeing spot with its entry tickets.
// @Summary Get a sightseeing spot by ID
// @Description Retrieve a sightseeing spot by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Sightseeing ID"
// @Success 200 {object} response.Data[model.Sightseeing] "Sightseeing details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/sightseeings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSightseeingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSightseeingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	sightseeing, err := handler.service.GetSightseeing(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sightseeing spot by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sightseeing spot retrieved successfully")

	response.WithJSON(w, http.StatusOK, sightseeing)
}

// UpdateSightseeing updates an existing sightseeing spot by its ID.
// @Summary Update a sightseeing spot by ID
// @Description Update sightseeing details by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Sightseeing ID"
// @Param request body dto.UpdateSightseeingRequest true "Update Sightseeing Request"
// @Success 200 {object} response.Message "Sightseeing spot updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/sightseeings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSightseeing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSightseeing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSightseeingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateSightseeing(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update sightseeing spot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sightseeing spot updated successfully")

	response.WithMessage(w, http.StatusOK, "Sightseeing spot updated successfully")
}

// DeleteSightseeing removes a sightseeing spot from the catalog.
// @Summary Delete a sightseeing spot by ID
// @Description Delete a sightseeing spot by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Sightseeing ID"
// @Success 200 {object} response.Message "Sightseeing spot deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/sightseeings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSightseeing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSightseeing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteSightseeing(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete sightseeing spot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sightseeing spot deleted successfully")

	response.WithMessage(w, http.StatusOK, "Sightseeing spot deleted successfully")
}

// CreateEntryTicket registers a new entry ticket for a sightseeing spot.
// @Summary Create a new entry ticket
// @Description Register an entry ticket with adult and child prices.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateEntryTicketRequest true "Create Entry Ticket Request"
// @Success 201 {object} response.Message "Entry ticket created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/entry-tickets [post]
// @Security BearerAuth
func (handler *Handler) CreateEntryTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEntryTicket")
	defer scope.End()

	req := dto.CreateEntryTicketRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateEntryTicket(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create entry ticket")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Entry ticket created successfully")

	response.WithMessage(w, http.StatusCreated, "Entry ticket created successfully")
}

// GetEntryTickets retrieves all entry tickets based on query parameters.
// @Summary Get all entry tickets
// @Description Retrieve entry tickets with optional filtering and pagination.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param sightseeing_id query string false "Filter by sightseeing ID"
// @Success 200 {object} response.Data[dto.GetEntryTicketsResponse] "List of entry tickets"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/entry-tickets [get]
// @Security BearerAuth
func (handler *Handler) GetEntryTickets(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntryTickets")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if sightseeingID := r.URL.Query().Get(model.FieldEntryTicketSightseeingID); sightseeingID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEntryTicketSightseeingID,
			Operator: gDto.FilterOperatorEq,
			Value:    sightseeingID,
			Table:    model.EntryTicketTableName,
		})
	}

	tickets, err := handler.service.GetEntryTickets(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get entry tickets")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Entry tickets retrieved successfully")

	response.WithJSON(w, http.StatusOK, tickets)
}

// UpdateEntryTicket updates an existing entry ticket by its ID.
// @Summary Update an entry ticket by ID
// @Description Update entry ticket details by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Entry Ticket ID"
// @Param request body dto.UpdateEntryTicketRequest true "Update Entry Ticket Request"
// @Success 200 {object} response.Message "Entry ticket updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/entry-tickets/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEntryTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEntryTicket")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEntryTicketRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateEntryTicket(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update entry ticket")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Entry ticket updated successfully")

	response.WithMessage(w, http.StatusOK, "Entry ticket updated successfully")
}

// DeleteEntryTicket removes an entry ticket from the catalog.
// @Summary Delete an entry ticket by ID
// @Description Delete an entry ticket by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Entry Ticket ID"
// @Success 200 {object} response.Message "Entry ticket deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/entry-tickets/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEntryTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEntryTicket")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteEntryTicket(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete entry ticket")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Entry ticket deleted successfully")

	response.WithMessage(w, http.StatusOK, "Entry ticket deleted successfully")
}
