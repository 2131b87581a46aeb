package service

import (
	"context"
	"fmt"

	"caravan/internal/domains/catalog/model"
	"caravan/internal/domains/catalog/model/dto"
	"caravan/shared"
	"caravan/shared/constant"
	gDto "caravan/shared/dto"
	"caravan/shared/failure"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) CreateSightseeing(ctx context.Context, req dto.CreateSightseeingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSightseeing")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	for _, ticketID := range req.IncludedTicketIDs {
		ticketExists, err := s.entryTicketRepo.Exist(ctx, shared.FilterByID(ticketID, model.FieldEntryTicketID, model.EntryTicketTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if entry ticket exists")

			return fmt.Errorf("failed to check if entry ticket exists: %w", err)
		}

		if !ticketExists {
			return failure.BadRequestFromString("included entry ticket does not exist") // nolint:wrapcheck
		}
	}

	if err = s.sightseeingRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create sightseeing")

		return fmt.Errorf("failed to create sightseeing: %w", err)
	}

	go s.invalidate(ctx, cacheGetSightseeing, cacheGetAllSightseeing, cacheCountSightseeing, constant.Empty)

	return nil
}

func (s *serviceImpl) GetSightseeings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSightseeingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSightseeings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSightseeing, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for sightseeings")

		return res, nil
	}

	total, err := s.sightseeingRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sightseeings")

		return res, fmt.Errorf("failed to count sightseeings: %w", err)
	}

	models, err := s.sightseeingRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sightseeings")

		return res, fmt.Errorf("failed to get sightseeings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sightseeings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetSightseeing(ctx context.Context, id string) (res model.Sightseeing, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSightseeing")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSightseeing, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for sightseeing")

		return res, nil
	}

	res, err = s.sightseeingRepo.Get(ctx, shared.FilterByID(id, model.FieldSightseeingID, model.SightseeingTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get sightseeing")

		return res, fmt.Errorf("failed to get sightseeing: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("sightseeing not found") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sightseeing to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateSightseeing(ctx context.Context, req dto.UpdateSightseeingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSightseeing")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateSightseeingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldSightseeingID, model.SightseeingTableName)

	exist, err := s.sightseeingRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if sightseeing exists")

		return fmt.Errorf("failed to check if sightseeing exists: %w", err)
	}

	if !exist {
		return failure.NotFound("sightseeing not found") // nolint:wrapcheck
	}

	if err = s.sightseeingRepo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update sightseeing")

		return fmt.Errorf("failed to update sightseeing: %w", err)
	}

	go s.invalidate(ctx, cacheGetSightseeing, cacheGetAllSightseeing, cacheCountSightseeing, id)

	return nil
}

func (s *serviceImpl) DeleteSightseeing(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSightseeing")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldSightseeingID, model.SightseeingTableName)

	exist, err := s.sightseeingRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if sightseeing exists")

		return fmt.Errorf("failed to check if sightseeing exists: %w", err)
	}

	if !exist {
		return failure.NotFound("sightseeing not found") // nolint:wrapcheck
	}

	if err = s.sightseeingRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete sightseeing")

		return fmt.Errorf("failed to delete sightseeing: %w", err)
	}

	go s.invalidate(ctx, cacheGetSightseeing, cacheGetAllSightseeing, cacheCountSightseeing, id)

	return nil
}

func (s *serviceImpl) CreateEntryTicket(ctx context.Context, req dto.CreateEntryTicketRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateEntryTicket")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	spotExists, err := s.sightseeingRepo.Exist(ctx, shared.FilterByID(req.SightseeingID, model.FieldSightseeingID, model.SightseeingTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if sightseeing exists")

		return fmt.Errorf("failed to check if sightseeing exists: %w", err)
	}

	if !spotExists {
		return failure.BadRequestFromString("sightseeing does not exist") // nolint:wrapcheck
	}

	if err = s.entryTicketRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create entry ticket")

		return fmt.Errorf("failed to create entry ticket: %w", err)
	}

	go s.invalidate(ctx, cacheGetEntryTicket, cacheGetAllEntryTicket, cacheCountEntryTicket, constant.Empty)

	return nil
}

func (s *serviceImpl) GetEntryTickets(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEntryTicketsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetEntryTickets")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEntryTicket, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for entry tickets")

		return res, nil
	}

	total, err := s.entryTicketRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count entry tickets")

		return res, fmt.Errorf("failed to count entry tickets: %w", err)
	}

	models, err := s.entryTicketRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get entry tickets")

		return res, fmt.Errorf("failed to get entry tickets: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save entry tickets to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateEntryTicket(ctx context.Context, req dto.UpdateEntryTicketRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateEntryTicket")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateEntryTicketRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldEntryTicketID, model.EntryTicketTableName)

	exist, err := s.entryTicketRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if entry ticket exists")

		return fmt.Errorf("failed to check if entry ticket exists: %w", err)
	}

	if !exist {
		return failure.NotFound("entry ticket not found") // nolint:wrapcheck
	}

	if err = s.entryTicketRepo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update entry ticket")

		return fmt.Errorf("failed to update entry ticket: %w", err)
	}

	go s.invalidate(ctx, cacheGetEntryTicket, cacheGetAllEntryTicket, cacheCountEntryTicket, id)

	return nil
}

func (s *serviceImpl) DeleteEntryTicket(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteEntryTicket")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldEntryTicketID, model.EntryTicketTableName)

	exist, err := s.entryTicketRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if entry ticket exists")

		return fmt.Errorf("failed to check if entry ticket exists: %w", err)
	}

	if !exist {
		return failure.NotFound("entry ticket not found") // nolint:wrapcheck
	}

	if err = s.entryTicketRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete entry ticket")

		return fmt.Errorf("failed to delete entry ticket: %w", err)
	}

	go s.invalidate(ctx, cacheGetEntryTicket, cacheGetAllEntryTicket, cacheCountEntryTicket, id)

	return nil
}
