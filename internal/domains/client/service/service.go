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
	"caravan/internal/domains/client/followup"
	"caravan/internal/domains/client/model"
	"caravan/internal/domains/client/model/dto"
	"caravan/internal/domains/client/repository"
	"caravan/shared"
	"caravan/shared/cache"
	"caravan/shared/constant"
	gDto "caravan/shared/dto"
	"caravan/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetClient    = "client:get"
	cacheGetAllClient = "client:gets"
	cacheCountClient  = "client:count"
	cacheFollowUps    = "client:followups"
)

// FollowUpRecordedEvent is the payload published whenever a client moves
// through the sales pipeline.
type FollowUpRecordedEvent struct {
	ClientID       string     `json:"client_id"`
	Status         string     `json:"status"`
	PreviousStatus string     `json:"previous_status"`
	Remarks        string     `json:"remarks"`
	NextFollowUpAt *time.Time `json:"next_follow_up_at"`
	RecordedBy     string     `json:"recorded_by"`
	RecordedAt     time.Time  `json:"recorded_at"`
}

type Client interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (dto.ClientResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetClientsResponse, error)
	Get(ctx context.Context, id string) (dto.ClientResponse, error)
	Update(ctx context.Context, req dto.UpdateClientRequest, id string) error
	RecordFollowUp(ctx context.Context, req dto.RecordFollowUpRequest, id string) error
	GetFollowUps(ctx context.Context, id string) (dto.GetFollowUpsResponse, error)
}

type serviceImpl struct {
	repo  repository.Client
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Client, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Client {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClientRequest) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	client, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse client request")

		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, client); err != nil {
		log.Error().Err(err).Msg("failed to create client")

		return res, fmt.Errorf("failed to create client: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)
	}()

	res.FromModel(client)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllClient, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for clients")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count clients")

		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get clients")

		return res, fmt.Errorf("failed to get clients: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save clients to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetClient, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for client")

		return res, nil
	}

	client, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return res, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == constant.Empty {
		return res, failure.NotFound("client not found") // nolint:wrapcheck
	}

	res.FromModel(client)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save client to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClientRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	stored, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return fmt.Errorf("failed to get client: %w", err)
	}

	if stored.ID == constant.Empty {
		return failure.NotFound("client not found") // nolint:wrapcheck
	}

	fields := shared.TransformFields(req, user)

	if err = s.applyDateFields(req, stored, fields); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update client")

		return fmt.Errorf("failed to update client: %w", err)
	}

	go s.invalidateClient(ctx, id)

	return nil
}

// applyDateFields folds the flexibility toggle and trip dates into the
// update map. Concrete dates re-derive number_of_days; switching to
// flexible drops the concrete dates.
func (s *serviceImpl) applyDateFields(req dto.UpdateClientRequest, stored model.Client, fields map[string]any) error {
	flexible := stored.IsFlexible
	if req.IsFlexible != nil {
		flexible = *req.IsFlexible
		fields["is_flexible"] = flexible
	}

	if flexible {
		if req.IsFlexible != nil {
			fields["trip_start_date"] = nil
			fields["trip_end_date"] = nil
		}

		return nil
	}

	start := stored.TripStartDate
	end := stored.TripEndDate

	if req.TripStartDate != constant.Empty {
		parsed, err := time.Parse(constant.DateOnlyFormat, req.TripStartDate)
		if err != nil {
			return failure.BadRequestFromString("invalid trip start date") // nolint:wrapcheck
		}

		start = &parsed
		fields["trip_start_date"] = parsed
	}

	if req.TripEndDate != constant.Empty {
		parsed, err := time.Parse(constant.DateOnlyFormat, req.TripEndDate)
		if err != nil {
			return failure.BadRequestFromString("invalid trip end date") // nolint:wrapcheck
		}

		end = &parsed
		fields["trip_end_date"] = parsed
	}

	if start != nil && end != nil {
		if end.Before(*start) {
			return failure.BadRequestFromString("trip end date is before start date") // nolint:wrapcheck
		}

		derived := model.Client{TripStartDate: start, TripEndDate: end}
		fields["number_of_days"] = derived.DerivedDays()
	}

	return nil
}

func (s *serviceImpl) RecordFollowUp(ctx context.Context, req dto.RecordFollowUpRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordFollowUp")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	client, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == constant.Empty {
		return failure.NotFound("client not found") // nolint:wrapcheck
	}

	record, err := req.ToModel(id, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse follow-up request")

		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if err = followup.Validate(client.FollowUpStatus, record.Status, record.Remarks, record.NextFollowUpAt); err != nil {
		log.Error().Err(err).Str("clientID", id).Msg("rejected follow-up transition")

		if errors.Is(err, followup.ErrInvalidTransition) {
			return failure.Conflict(err.Error()) // nolint:wrapcheck
		}

		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if err = s.repo.InsertFollowUp(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to append follow-up record")

		return fmt.Errorf("failed to append follow-up record: %w", err)
	}

	fields := map[string]any{
		model.FieldFollowUpStatus: record.Status,
		constant.FieldModifiedAt:  record.ModifiedAt,
		constant.FieldModifiedBy:  user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update client follow-up status")

		return fmt.Errorf("failed to update client follow-up status: %w", err)
	}

	event := FollowUpRecordedEvent{
		ClientID:       id,
		Status:         record.Status,
		PreviousStatus: client.FollowUpStatus,
		Remarks:        record.Remarks,
		NextFollowUpAt: record.NextFollowUpAt,
		RecordedBy:     user,
		RecordedAt:     record.CreatedAt,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.FollowUpRecorded, kafka.Message{Key: id, Value: event}); err != nil {
			log.Error().Err(err).Str("clientID", id).Msg("failed to publish follow-up event")
		}

		s.invalidateClient(c, id)
	}()

	return nil
}

func (s *serviceImpl) GetFollowUps(ctx context.Context, id string) (res dto.GetFollowUpsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFollowUps")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheFollowUps, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for follow-up records")

		return res, nil
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if client exists")

		return res, fmt.Errorf("failed to check if client exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("client not found") // nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}
	recordFilter := shared.FilterByID(id, model.FieldFollowUpRecordClientID, model.FollowUpRecordTableName)

	records, err := s.repo.GetFollowUps(ctx, params, recordFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get follow-up records")

		return res, fmt.Errorf("failed to get follow-up records: %w", err)
	}

	res.FromModels(records)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save follow-up records to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidateClient(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClient, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete client from cache")
	}

	if err := s.cache.Delete(c, shared.BuildCacheKey(cacheFollowUps, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete follow-up records from cache")
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
	shared.InvalidateCaches(c, s.cache, cacheCountClient)
}
