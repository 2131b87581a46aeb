package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"caravan/config"
	"caravan/infras/otel"
	"caravan/internal/domains/catalog/model"
	"caravan/internal/domains/catalog/model/dto"
	"caravan/internal/domains/catalog/repository"
	"caravan/shared"
	"caravan/shared/cache"
	"caravan/shared/constant"
	gDto "caravan/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheSnapshot = "catalog:snapshot"

	cacheGetHotel    = "catalog:hotel:get"
	cacheGetAllHotel = "catalog:hotel:gets"
	cacheCountHotel  = "catalog:hotel:count"

	cacheGetRoomType    = "catalog:room_type:get"
	cacheGetAllRoomType = "catalog:room_type:gets"
	cacheCountRoomType  = "catalog:room_type:count"

	cacheGetTransportation    = "catalog:transportation:get"
	cacheGetAllTransportation = "catalog:transportation:gets"
	cacheCountTransportation  = "catalog:transportation:count"

	cacheGetSightseeing    = "catalog:sightseeing:get"
	cacheGetAllSightseeing = "catalog:sightseeing:gets"
	cacheCountSightseeing  = "catalog:sightseeing:count"

	cacheGetActivity    = "catalog:activity:get"
	cacheGetAllActivity = "catalog:activity:gets"
	cacheCountActivity  = "catalog:activity:count"

	cacheGetEntryTicket    = "catalog:entry_ticket:get"
	cacheGetAllEntryTicket = "catalog:entry_ticket:gets"
	cacheCountEntryTicket  = "catalog:entry_ticket:count"

	cacheGetMeal    = "catalog:meal:get"
	cacheGetAllMeal = "catalog:meal:gets"
	cacheCountMeal  = "catalog:meal:count"
)

// Catalog manages the agency's reference data and serves it to the
// itinerary engine as a consistent Snapshot.
type Catalog interface {
	Snapshot(ctx context.Context) (model.Snapshot, error)

	CreateHotel(ctx context.Context, req dto.CreateHotelRequest) error
	GetHotels(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	GetHotel(ctx context.Context, id string) (model.Hotel, error)
	UpdateHotel(ctx context.Context, req dto.UpdateHotelRequest, id string) error
	DeleteHotel(ctx context.Context, id string) error

	CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest) error
	GetRoomTypes(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomTypesResponse, error)
	UpdateRoomType(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) error
	DeleteRoomType(ctx context.Context, id string) error

	CreateTransportation(ctx context.Context, req dto.CreateTransportationRequest) error
	GetTransportations(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTransportationsResponse, error)
	UpdateTransportation(ctx context.Context, req dto.UpdateTransportationRequest, id string) error
	DeleteTransportation(ctx context.Context, id string) error

	CreateSightseeing(ctx context.Context, req dto.CreateSightseeingRequest) error
	GetSightseeings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSightseeingsResponse, error)
	GetSightseeing(ctx context.Context, id string) (model.Sightseeing, error)
	UpdateSightseeing(ctx context.Context, req dto.UpdateSightseeingRequest, id string) error
	DeleteSightseeing(ctx context.Context, id string) error

	CreateActivity(ctx context.Context, req dto.CreateActivityRequest) error
	GetActivities(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetActivitiesResponse, error)
	GetActivity(ctx context.Context, id string) (model.Activity, error)
	UpdateActivity(ctx context.Context, req dto.UpdateActivityRequest, id string) error
	DeleteActivity(ctx context.Context, id string) error

	CreateEntryTicket(ctx context.Context, req dto.CreateEntryTicketRequest) error
	GetEntryTickets(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEntryTicketsResponse, error)
	UpdateEntryTicket(ctx context.Context, req dto.UpdateEntryTicketRequest, id string) error
	DeleteEntryTicket(ctx context.Context, id string) error

	CreateMeal(ctx context.Context, req dto.CreateMealRequest) error
	GetMeals(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMealsResponse, error)
	UpdateMeal(ctx context.Context, req dto.UpdateMealRequest, id string) error
	DeleteMeal(ctx context.Context, id string) error
}

type serviceImpl struct {
	hotelRepo          repository.Hotel
	roomTypeRepo       repository.RoomType
	transportationRepo repository.Transportation
	sightseeingRepo    repository.Sightseeing
	activityRepo       repository.Activity
	entryTicketRepo    repository.EntryTicket
	mealRepo           repository.Meal
	cfg                *config.Config
	cache              cache.RedisCache
	otel               otel.Otel
}

func New(
	hotelRepo repository.Hotel,
	roomTypeRepo repository.RoomType,
	transportationRepo repository.Transportation,
	sightseeingRepo repository.Sightseeing,
	activityRepo repository.Activity,
	entryTicketRepo repository.EntryTicket,
	mealRepo repository.Meal,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Catalog {
	return &serviceImpl{
		hotelRepo:          hotelRepo,
		roomTypeRepo:       roomTypeRepo,
		transportationRepo: transportationRepo,
		sightseeingRepo:    sightseeingRepo,
		activityRepo:       activityRepo,
		entryTicketRepo:    entryTicketRepo,
		mealRepo:           mealRepo,
		cfg:                cfg,
		cache:              cache,
		otel:               otel,
	}
}

// Snapshot assembles the full catalog into one immutable view. The result
// is cached; every catalog mutation drops the cached snapshot so pricing
// always works from current reference data.
func (s *serviceImpl) Snapshot(ctx context.Context) (snap model.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Snapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSnapshot, &snap)
	if err == nil {
		log.Info().Str("cacheKey", cacheSnapshot).Msg("cache hit for catalog snapshot")

		return snap, nil
	}

	all := gDto.QueryParams{}
	none := gDto.FilterGroup{}

	hotels, err := s.hotelRepo.GetAll(ctx, all, none)
	if err != nil {
		log.Error().Err(err).Msg("failed to load hotels for snapshot")

		return snap, fmt.Errorf("failed to load hotels for snapshot: %w", err)
	}

	roomTypes, err := s.roomTypeRepo.GetAll(ctx, all, none)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room types for snapshot")

		return snap, fmt.Errorf("failed to load room types for snapshot: %w", err)
	}

	transportations, err := s.transportationRepo.GetAll(ctx, all, none)
	if err != nil {
		log.Error().Err(err).Msg("failed to load transportations for snapshot")

		return snap, fmt.Errorf("failed to load transportations for snapshot: %w", err)
	}

	sightseeings, err := s.sightseeingRepo.GetAll(ctx, all, none)
	if err != nil {
		log.Error().Err(err).Msg("failed to load sightseeings for snapshot")

		return snap, fmt.Errorf("failed to load sightseeings for snapshot: %w", err)
	}

	activities, err := s.activityRepo.GetAll(ctx, all, none)
	if err != nil {
		log.Error().Err(err).Msg("failed to load activities for snapshot")

		return snap, fmt.Errorf("failed to load activities for snapshot: %w", err)
	}

	options, err := s.activityRepo.GetOptions(ctx, none)
	if err != nil {
		log.Error().Err(err).Msg("failed to load activity options for snapshot")

		return snap, fmt.Errorf("failed to load activity options for snapshot: %w", err)
	}

	tickets, err := s.entryTicketRepo.GetAll(ctx, all, none)
	if err != nil {
		log.Error().Err(err).Msg("failed to load entry tickets for snapshot")

		return snap, fmt.Errorf("failed to load entry tickets for snapshot: %w", err)
	}

	meals, err := s.mealRepo.GetAll(ctx, all, none)
	if err != nil {
		log.Error().Err(err).Msg("failed to load meals for snapshot")

		return snap, fmt.Errorf("failed to load meals for snapshot: %w", err)
	}

	optionsByActivity := make(map[string][]model.ActivityOption, len(activities))
	for _, opt := range options {
		optionsByActivity[opt.ActivityID] = append(optionsByActivity[opt.ActivityID], opt)
	}

	snap = model.Snapshot{
		Hotels:          make(map[string]model.Hotel, len(hotels)),
		RoomTypes:       make(map[string]model.RoomType, len(roomTypes)),
		Transportations: transportations,
		Sightseeings:    make(map[string]model.Sightseeing, len(sightseeings)),
		Activities:      make(map[string]model.Activity, len(activities)),
		EntryTickets:    make(map[string]model.EntryTicket, len(tickets)),
		Meals:           make(map[string]model.Meal, len(meals)),
	}

	for _, h := range hotels {
		snap.Hotels[h.ID] = h
	}

	for _, rt := range roomTypes {
		snap.RoomTypes[rt.ID] = rt
	}

	for _, spot := range sightseeings {
		snap.Sightseeings[spot.ID] = spot
	}

	for _, act := range activities {
		act.Options = optionsByActivity[act.ID]
		snap.Activities[act.ID] = act
	}

	for _, ticket := range tickets {
		snap.EntryTickets[ticket.ID] = ticket
	}

	for _, meal := range meals {
		snap.Meals[meal.ID] = meal
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSnapshot, snap, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save catalog snapshot to cache")
		}
	}()

	return snap, nil
}

// invalidate drops the listing caches for one entity plus the snapshot,
// and optionally the single-entity entry.
func (s *serviceImpl) invalidate(ctx context.Context, getPrefix, getAllPrefix, countPrefix, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(getPrefix, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete catalog entry from cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, getAllPrefix)
	shared.InvalidateCaches(c, s.cache, countPrefix)

	if err := s.cache.Delete(c, cacheSnapshot); err != nil {
		log.Error().Err(err).Msg("failed to delete catalog snapshot from cache")
	}
}
