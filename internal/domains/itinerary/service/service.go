package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caravan/config"
	"caravan/infras/kafka"
	"caravan/infras/otel"
	catalogService "caravan/internal/domains/catalog/service"
	clientModel "caravan/internal/domains/client/model"
	clientRepository "caravan/internal/domains/client/repository"
	"caravan/internal/domains/itinerary/model"
	"caravan/internal/domains/itinerary/model/dto"
	"caravan/internal/domains/itinerary/planner"
	"caravan/internal/domains/itinerary/pricing"
	"caravan/internal/domains/itinerary/repository"
	"caravan/shared"
	"caravan/shared/cache"
	"caravan/shared/constant"
	"caravan/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheChangeLog = "itinerary:changelog"
	cacheVersions  = "itinerary:versions"
)

// ItineraryVersionedEvent is published on every persisted version.
type ItineraryVersionedEvent struct {
	ClientID      string          `json:"client_id"`
	ItineraryID   string          `json:"itinerary_id"`
	Version       int             `json:"version"`
	ChangeType    string          `json:"change_type"`
	Description   string          `json:"description"`
	TotalBaseCost decimal.Decimal `json:"total_base_cost"`
	FinalPrice    decimal.Decimal `json:"final_price"`
	UpdatedBy     string          `json:"updated_by"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type Itinerary interface {
	Quote(ctx context.Context, req dto.QuoteRequest, clientID string) (dto.QuoteResponse, error)
	GetLatest(ctx context.Context, clientID string) (dto.ItineraryResponse, error)
	GetVersion(ctx context.Context, clientID string, version int) (dto.ItineraryResponse, error)
	SaveVersion(ctx context.Context, req dto.SaveVersionRequest, clientID string) (dto.ItineraryResponse, error)
	Availability(ctx context.Context, clientID string, day int) (planner.Availability, error)
	GetChangeLog(ctx context.Context, clientID string) (dto.GetChangeLogResponse, error)
	GetVersions(ctx context.Context, clientID string) (dto.GetVersionsResponse, error)
}

type serviceImpl struct {
	repo       repository.Itinerary
	clientRepo clientRepository.Client
	catalog    catalogService.Catalog
	cfg        *config.Config
	cache      cache.RedisCache
	kafka      kafka.Client
	otel       otel.Otel
}

func New(
	repo repository.Itinerary,
	clientRepo clientRepository.Client,
	catalog catalogService.Catalog,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Itinerary {
	return &serviceImpl{
		repo:       repo,
		clientRepo: clientRepo,
		catalog:    catalog,
		cfg:        cfg,
		cache:      cache,
		kafka:      kafka,
		otel:       otel,
	}
}

func (s *serviceImpl) pricingOptions() pricing.Options {
	return pricing.Options{
		SelfDriveCarSurcharge:     decimal.NewFromFloat(s.cfg.Pricing.SelfDriveCarSurcharge),
		SelfDriveScooterSurcharge: decimal.NewFromFloat(s.cfg.Pricing.SelfDriveScooterSurcharge),
	}
}

func (s *serviceImpl) loadClient(ctx context.Context, clientID string) (clientModel.Client, error) {
	client, err := s.clientRepo.Get(ctx, shared.FilterByID(clientID, clientModel.FieldID, clientModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return client, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == constant.Empty {
		return client, failure.NotFound("client not found") // nolint:wrapcheck
	}

	return client, nil
}

// Quote prices day plans without persisting anything.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest, clientID string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	client, err := s.loadClient(ctx, clientID)
	if err != nil {
		return res, err
	}

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalog snapshot")

		return res, fmt.Errorf("failed to get catalog snapshot: %w", err)
	}

	res.TotalBaseCost = pricing.ComputeBaseCost(client, req.DayPlans, snap, s.pricingOptions())
	res.FinalPrice = res.TotalBaseCost.Add(decimal.NewFromFloat(req.ProfitMargin))

	return res, nil
}

// GetLatest returns the current version with a live staleness verdict.
// Never cached: the verdict must reflect the catalog as of this call.
func (s *serviceImpl) GetLatest(ctx context.Context, clientID string) (res dto.ItineraryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLatest")
	defer scope.End()
	defer scope.TraceIfError(err)

	stored, err := s.repo.LoadLatest(ctx, clientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load latest itinerary")

		return res, fmt.Errorf("failed to load latest itinerary: %w", err)
	}

	if stored.ID == constant.Empty {
		return res, failure.NotFound("itinerary not found") // nolint:wrapcheck
	}

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalog snapshot")

		return res, fmt.Errorf("failed to get catalog snapshot: %w", err)
	}

	stale, fresh := IsStale(stored, snap, s.pricingOptions())
	if stale {
		log.Warn().
			Str("clientID", clientID).
			Int("version", stored.Version).
			Str("stored", stored.TotalBaseCost.String()).
			Str("fresh", fresh.String()).
			Msg("stored itinerary base cost is stale")
	}

	res.FromModel(stored, stale, fresh)

	return res, nil
}

func (s *serviceImpl) GetVersion(ctx context.Context, clientID string, version int) (res dto.ItineraryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetVersion")
	defer scope.End()
	defer scope.TraceIfError(err)

	stored, err := s.repo.LoadVersion(ctx, clientID, version)
	if err != nil {
		log.Error().Err(err).Msg("failed to load itinerary version")

		return res, fmt.Errorf("failed to load itinerary version: %w", err)
	}

	if stored.ID == constant.Empty {
		return res, failure.NotFound("itinerary version not found") // nolint:wrapcheck
	}

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalog snapshot")

		return res, fmt.Errorf("failed to get catalog snapshot: %w", err)
	}

	stale, fresh := IsStale(stored, snap, s.pricingOptions())
	res.FromModel(stored, stale, fresh)

	return res, nil
}

// SaveVersion builds and persists the next immutable version. Concurrent
// writers racing past the same base version lose with a conflict, never a
// lost update.
func (s *serviceImpl) SaveVersion(ctx context.Context, req dto.SaveVersionRequest, clientID string) (res dto.ItineraryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveVersion")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	client, err := s.loadClient(ctx, clientID)
	if err != nil {
		return res, err
	}

	stored, err := s.repo.LoadLatest(ctx, clientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load latest itinerary")

		return res, fmt.Errorf("failed to load latest itinerary: %w", err)
	}

	var previous *model.Itinerary

	changeType := req.ChangeType

	if stored.ID != constant.Empty {
		previous = &stored

		if req.BaseVersion != 0 && req.BaseVersion != stored.Version {
			return res, failure.Conflict(fmt.Sprintf("version conflict: edited version %d, current is %d", req.BaseVersion, stored.Version)) // nolint:wrapcheck
		}

		if changeType == model.ChangeTypeCreated {
			return res, failure.BadRequestFromString("change type created is reserved for the first version") // nolint:wrapcheck
		}
	} else {
		// The first version is always a creation, whatever the caller says.
		changeType = model.ChangeTypeCreated
	}

	if !model.IsValidChangeType(changeType) {
		return res, failure.BadRequestFromString("unknown change type") // nolint:wrapcheck
	}

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalog snapshot")

		return res, fmt.Errorf("failed to get catalog snapshot: %w", err)
	}

	exchangeRate := req.ExchangeRate
	if exchangeRate == 0 {
		exchangeRate = s.cfg.Pricing.DefaultExchangeRate
	}

	next := BuildNextVersion(
		previous,
		client,
		req.DayPlans,
		decimal.NewFromFloat(req.ProfitMargin),
		decimal.NewFromFloat(exchangeRate),
		user,
		changeType,
		req.Description,
		snap,
		s.pricingOptions(),
	)

	if err = s.repo.Save(ctx, next); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			log.Warn().Err(err).Str("clientID", clientID).Int("version", next.Version).Msg("itinerary version conflict")

			return res, failure.Conflict("version conflict") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to save itinerary version")

		return res, fmt.Errorf("failed to save itinerary version: %w", err)
	}

	event := ItineraryVersionedEvent{
		ClientID:      clientID,
		ItineraryID:   next.ID,
		Version:       next.Version,
		ChangeType:    changeType,
		Description:   req.Description,
		TotalBaseCost: next.TotalBaseCost,
		FinalPrice:    next.FinalPrice,
		UpdatedBy:     user,
		UpdatedAt:     next.LastUpdated,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.ItineraryVersioned, kafka.Message{Key: clientID, Value: event}); err != nil {
			log.Error().Err(err).Str("clientID", clientID).Msg("failed to publish itinerary version event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheChangeLog, clientID)); err != nil {
			log.Error().Err(err).Msg("failed to delete changelog from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheVersions, clientID)); err != nil {
			log.Error().Err(err).Msg("failed to delete versions from cache")
		}
	}()

	res.FromModel(next, false, next.TotalBaseCost)

	return res, nil
}

// Availability answers what remains selectable for one day of the
// client's itinerary under construction.
func (s *serviceImpl) Availability(ctx context.Context, clientID string, day int) (res planner.Availability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if day < 1 {
		return res, failure.BadRequestFromString("day must be 1 or greater") // nolint:wrapcheck
	}

	client, err := s.loadClient(ctx, clientID)
	if err != nil {
		return res, err
	}

	stored, err := s.repo.LoadLatest(ctx, clientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load latest itinerary")

		return res, fmt.Errorf("failed to load latest itinerary: %w", err)
	}

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalog snapshot")

		return res, fmt.Errorf("failed to get catalog snapshot: %w", err)
	}

	return planner.AvailableForDay(day, stored.DayPlans, client, snap), nil
}

func (s *serviceImpl) GetChangeLog(ctx context.Context, clientID string) (res dto.GetChangeLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetChangeLog")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheChangeLog, clientID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for itinerary changelog")

		return res, nil
	}

	stored, err := s.repo.LoadLatest(ctx, clientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load latest itinerary")

		return res, fmt.Errorf("failed to load latest itinerary: %w", err)
	}

	if stored.ID == constant.Empty {
		return res, failure.NotFound("itinerary not found") // nolint:wrapcheck
	}

	res.FromModel(stored.ChangeLog)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save changelog to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetVersions(ctx context.Context, clientID string) (res dto.GetVersionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetVersions")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheVersions, clientID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for itinerary versions")

		return res, nil
	}

	versions, err := s.repo.ListVersions(ctx, clientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list itinerary versions")

		return res, fmt.Errorf("failed to list itinerary versions: %w", err)
	}

	if len(versions) == 0 {
		return res, failure.NotFound("itinerary not found") // nolint:wrapcheck
	}

	res.FromModels(versions)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save versions to cache")
		}
	}()

	return res, nil
}
