package client

import (
	"net/http"

	"caravan/infras/otel"
	"caravan/internal/domains/client/model"
	"caravan/internal/domains/client/model/dto"
	"caravan/internal/domains/client/service"
	"caravan/shared/constant"
	gDto "caravan/shared/dto"
	"caravan/shared/validator"
	"caravan/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Client
	otel    otel.Otel
}

func New(service service.Client, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clients", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClient)
		routerGroup.Get("/", handler.GetClients)
		routerGroup.Get("/{id}", handler.GetClientByID)
		routerGroup.Patch("/{id}", handler.UpdateClient)
		routerGroup.Post("/{id}/follow-ups", handler.RecordFollowUp)
		routerGroup.Get("/{id}/follow-ups", handler.GetFollowUps)
	})
}

// CreateClient registers a new client enquiry.
// @Summary Create a new client
// @Description Register a client enquiry with trip dates or a flexible month.
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Create Client Request"
// @Success 201 {object} response.Data[dto.ClientResponse] "Client created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [post]
// @Security BearerAuth
func (handler *Handler) CreateClient(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClient")
	defer scope.End()

	req := dto.CreateClientRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create client")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Client created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetClients retrieves all clients based on query parameters.
// @Summary Get all clients
// @Description Retrieve clients with optional filtering and pagination.
// @Tags Client
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param follow_up_status query string false "Filter by follow-up status"
// @Success 200 {object} response.Data[dto.GetClientsResponse] "List of clients"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [get]
// @Security BearerAuth
func (handler *Handler) GetClients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if name := r.URL.Query().Get(model.FieldName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldFollowUpStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFollowUpStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	clients, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clients")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Clients retrieved successfully")

	response.WithJSON(w, http.StatusOK, clients)
}

// GetClientByID retrieves a client together with its legal next pipeline stages.
// @Summary Get a client by ID
// @Description Retrieve a client by its unique identifier.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.Data[dto.ClientResponse] "Client details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	client, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client retrieved successfully")

	response.WithJSON(w, http.StatusOK, client)
}

// UpdateClient updates an existing client by its ID.
// @Summary Update a client by ID
// @Description Update client details; new trip dates re-derive the trip length.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body dto.UpdateClientRequest true "Update Client Request"
// @Success 200 {object} response.Message "Client updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateClientRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update client")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client updated successfully")

	response.WithMessage(w, http.StatusOK, "Client updated successfully")
}

// RecordFollowUp moves a client to the next pipeline stage.
// @Summary Record a follow-up
// @Description Append a follow-up record and advance the client's pipeline status.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body dto.RecordFollowUpRequest true "Record Follow-Up Request"
// @Success 201 {object} response.Message "Follow-up recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id}/follow-ups [post]
// @Security BearerAuth
func (handler *Handler) RecordFollowUp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordFollowUp")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RecordFollowUpRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RecordFollowUp(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record follow-up")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Follow-up recorded successfully")

	response.WithMessage(w, http.StatusCreated, "Follow-up recorded successfully")
}

// GetFollowUps retrieves the full follow-up history of a client.
// @Summary Get follow-up history
// @Description Retrieve a client's follow-up records in chronological order.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.Data[dto.GetFollowUpsResponse] "Follow-up records"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id}/follow-ups [get]
// @Security BearerAuth
func (handler *Handler) GetFollowUps(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFollowUps")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	records, err := handler.service.GetFollowUps(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get follow-up records")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Follow-up records retrieved successfully")

	response.WithJSON(w, http.StatusOK, records)
}
