package catalog

import (
	"caravan/infras/otel"
	"caravan/internal/domains/catalog/service"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalog", func(routerGroup chi.Router) {
		routerGroup.Route("/hotels", func(r chi.Router) {
			r.Post("/", handler.CreateHotel)
			r.Get("/", handler.GetHotels)
			r.Get("/{id}", handler.GetHotelByID)
			r.Patch("/{id}", handler.UpdateHotel)
			r.Delete("/{id}", handler.DeleteHotel)
		})

		routerGroup.Route("/room-types", func(r chi.Router) {
			r.Post("/", handler.CreateRoomType)
			r.Get("/", handler.GetRoomTypes)
			r.Patch("/{id}", handler.UpdateRoomType)
			r.Delete("/{id}", handler.DeleteRoomType)
		})

		routerGroup.Route("/transportations", func(r chi.Router) {
			r.Post("/", handler.CreateTransportation)
			r.Get("/", handler.GetTransportations)
			r.Patch("/{id}", handler.UpdateTransportation)
			r.Delete("/{id}", handler.DeleteTransportation)
		})

		routerGroup.Route("/sightseeings", func(r chi.Router) {
			r.Post("/", handler.CreateSightseeing)
			r.Get("/", handler.GetSightseeings)
			r.Get("/{id}", handler.GetSightseeingByID)
			r.Patch("/{id}", handler.UpdateSightseeing)
			r.Delete("/{id}", handler.DeleteSightseeing)
		})

		routerGroup.Route("/activities", func(r chi.Router) {
			r.Post("/", handler.CreateActivity)
			r.Get("/", handler.GetActivities)
			r.Get("/{id}", handler.GetActivityByID)
			r.Patch("/{id}", handler.UpdateActivity)
			r.Delete("/{id}", handler.DeleteActivity)
		})

		routerGroup.Route("/entry-tickets", func(r chi.Router) {
			r.Post("/", handler.CreateEntryTicket)
			r.Get("/", handler.GetEntryTickets)
			r.Patch("/{id}", handler.UpdateEntryTicket)
			r.Delete("/{id}", handler.DeleteEntryTicket)
		})

		routerGroup.Route("/meals", func(r chi.Router) {
			r.Post("/", handler.CreateMeal)
			r.Get("/", handler.GetMeals)
			r.Patch("/{id}", handler.UpdateMeal)
			r.Delete("/{id}", handler.DeleteMeal)
		})
	})
}
