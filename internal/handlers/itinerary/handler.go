package itinerary

import (
	"net/http"
	"strconv"

	"caravan/infras/otel"
	"caravan/internal/domains/itinerary/model/dto"
	"caravan/internal/domains/itinerary/service"
	"caravan/shared/constant"
	"caravan/shared/failure"
	"caravan/shared/validator"
	"caravan/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Itinerary
	otel    otel.Otel
}

func New(service service.Itinerary, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clients/{client_id}/itinerary", func(routerGroup chi.Router) {
		routerGroup.Post("/quote", handler.Quote)
		routerGroup.Post("/versions", handler.SaveVersion)
		routerGroup.Get("/versions", handler.GetVersions)
		routerGroup.Get("/versions/{version}", handler.GetVersion)
		routerGroup.Get("/latest", handler.GetLatest)
		routerGroup.Get("/changelog", handler.GetChangeLog)
		routerGroup.Get("/availability/{day}", handler.Availability)
	})
}

// Quote prices day plans without persisting a version.
// @Summary Price day plans
// @Description Compute the base cost and final price for the given day plans.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Quote computed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{client_id}/itinerary/quote [post]
// @Security BearerAuth
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	clientID := chi.URLParam(r, constant.RequestParamClientID)

	req := dto.QuoteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Quote(ctx, req, clientID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute quote")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quote computed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SaveVersion persists the next immutable itinerary version.
// @Summary Save an itinerary version
// @Description Persist the next version; concurrent writers past the same base version get a conflict.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param request body dto.SaveVersionRequest true "Save Version Request"
// @Success 201 {object} response.Data[dto.ItineraryResponse] "Version saved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{client_id}/itinerary/versions [post]
// @Security BearerAuth
func (handler *Handler) SaveVersion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveVersion")
	defer scope.End()

	clientID := chi.URLParam(r, constant.RequestParamClientID)

	req := dto.SaveVersionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SaveVersion(ctx, req, clientID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save itinerary version")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Itinerary version saved successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetVersions lists every stored version of a client's itinerary.
// @Summary List itinerary versions
// @Description Retrieve all stored versions in ascending order.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} response.Data[dto.GetVersionsResponse] "Stored versions"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{client_id}/itinerary/versions [get]
// @Security BearerAuth
func (handler *Handler) GetVersions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVersions")
	defer scope.End()

	clientID := chi.URLParam(r, constant.RequestParamClientID)

	res, err := handler.service.GetVersions(ctx, clientID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get itinerary versions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Itinerary versions retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetVersion retrieves one stored version with a live staleness verdict.
// @Summary Get an itinerary version
// @Description Retrieve a specific version; the response carries a fresh repricing.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param version path int true "Version number"
// @Success 200 {object} response.Data[dto.ItineraryResponse] "Itinerary version"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{client_id}/itinerary/versions/{version} [get]
// @Security BearerAuth
func (handler *Handler) GetVersion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVersion")
	defer scope.End()

	clientID := chi.URLParam(r, constant.RequestParamClientID)

	version, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamVersion))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("version must be a number"))

		return
	}

	res, err := handler.service.GetVersion(ctx, clientID, version)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get itinerary version")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Itinerary version retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetLatest retrieves the current version with a live staleness verdict.
// @Summary Get the latest itinerary
// @Description Retrieve the current version; stale totals are flagged and repriced.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} response.Data[dto.ItineraryResponse] "Latest itinerary"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{client_id}/itinerary/latest [get]
// @Security BearerAuth
func (handler *Handler) GetLatest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLatest")
	defer scope.End()

	clientID := chi.URLParam(r, constant.RequestParamClientID)

	res, err := handler.service.GetLatest(ctx, clientID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get latest itinerary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Latest itinerary retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetChangeLog retrieves the audit trail of the client's itinerary.
// @Summary Get the itinerary change log
// @Description Retrieve the append-only change log of the current itinerary.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} response.Data[dto.GetChangeLogResponse] "Change log entries"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{client_id}/itinerary/changelog [get]
// @Security BearerAuth
func (handler *Handler) GetChangeLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChangeLog")
	defer scope.End()

	clientID := chi.URLParam(r, constant.RequestParamClientID)

	res, err := handler.service.GetChangeLog(ctx, clientID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get itinerary change log")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Itinerary change log retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Availability answers what remains selectable for one day.
// @Summary Get day availability
// @Description List the sightseeing spots, tickets and exclusions still available for a day.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param day path int true "Day number (1-based)"
// @Success 200 {object} response.Data[planner.Availability] "Availability for the day"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{client_id}/itinerary/availability/{day} [get]
// @Security BearerAuth
func (handler *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Availability")
	defer scope.End()

	clientID := chi.URLParam(r, constant.RequestParamClientID)

	day, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamDay))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("day must be a number"))

		return
	}

	res, err := handler.service.Availability(ctx, clientID, day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get day availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Day availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
