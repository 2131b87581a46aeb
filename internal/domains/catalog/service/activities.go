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

func (s *serviceImpl) CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateActivity")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	activity := req.ToModel(user)

	if err = s.activityRepo.Insert(ctx, activity); err != nil {
		log.Error().Err(err).Msg("failed to create activity")

		return fmt.Errorf("failed to create activity: %w", err)
	}

	for _, opt := range activity.Options {
		if err = s.activityRepo.InsertOption(ctx, opt); err != nil {
			log.Error().Err(err).Msg("failed to create activity option")

			return fmt.Errorf("failed to create activity option: %w", err)
		}
	}

	go s.invalidate(ctx, cacheGetActivity, cacheGetAllActivity, cacheCountActivity, constant.Empty)

	return nil
}

func (s *serviceImpl) GetActivities(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetActivitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActivities")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllActivity, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for activities")

		return res, nil
	}

	total, err := s.activityRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count activities")

		return res, fmt.Errorf("failed to count activities: %w", err)
	}

	models, err := s.activityRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activities")

		return res, fmt.Errorf("failed to get activities: %w", err)
	}

	for i := range models {
		models[i].Options, err = s.activityRepo.GetOptions(ctx, shared.FilterByID(models[i].ID, model.FieldActivityOptionActivityID, model.ActivityOptionTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get activity options")

			return res, fmt.Errorf("failed to get activity options: %w", err)
		}
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save activities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetActivity(ctx context.Context, id string) (res model.Activity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActivity")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetActivity, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for activity")

		return res, nil
	}

	res, err = s.activityRepo.Get(ctx, shared.FilterByID(id, model.FieldActivityID, model.ActivityTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get activity")

		return res, fmt.Errorf("failed to get activity: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("activity not found") // nolint:wrapcheck
	}

	res.Options, err = s.activityRepo.GetOptions(ctx, shared.FilterByID(id, model.FieldActivityOptionActivityID, model.ActivityOptionTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get activity options")

		return res, fmt.Errorf("failed to get activity options: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save activity to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateActivity(ctx context.Context, req dto.UpdateActivityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateActivity")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Name == constant.Empty && req.Area == constant.Empty && len(req.Options) == 0 {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldActivityID, model.ActivityTableName)

	exist, err := s.activityRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if activity exists")

		return fmt.Errorf("failed to check if activity exists: %w", err)
	}

	if !exist {
		return failure.NotFound("activity not found") // nolint:wrapcheck
	}

	if req.Name != constant.Empty || req.Area != constant.Empty {
		fields := dto.UpdateActivityRequest{Name: req.Name, Area: req.Area}
		if err = s.activityRepo.Update(ctx, shared.TransformFields(fields, user), filter); err != nil {
			log.Error().Err(err).Msg("failed to update activity")

			return fmt.Errorf("failed to update activity: %w", err)
		}
	}

	if len(req.Options) > 0 {
		replacement := dto.CreateActivityRequest{Name: req.Name, Area: req.Area, Options: req.Options}
		options := replacement.ToModel(user).Options

		optionFilter := shared.FilterByID(id, model.FieldActivityOptionActivityID, model.ActivityOptionTableName)
		if err = s.activityRepo.DeleteOptions(ctx, optionFilter); err != nil {
			log.Error().Err(err).Msg("failed to replace activity options")

			return fmt.Errorf("failed to replace activity options: %w", err)
		}

		for _, opt := range options {
			opt.ActivityID = id

			if err = s.activityRepo.InsertOption(ctx, opt); err != nil {
				log.Error().Err(err).Msg("failed to create activity option")

				return fmt.Errorf("failed to create activity option: %w", err)
			}
		}
	}

	go s.invalidate(ctx, cacheGetActivity, cacheGetAllActivity, cacheCountActivity, id)

	return nil
}

func (s *serviceImpl) DeleteActivity(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteActivity")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldActivityID, model.ActivityTableName)

	exist, err := s.activityRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if activity exists")

		return fmt.Errorf("failed to check if activity exists: %w", err)
	}

	if !exist {
		return failure.NotFound("activity not found") // nolint:wrapcheck
	}

	optionFilter := shared.FilterByID(id, model.FieldActivityOptionActivityID, model.ActivityOptionTableName)
	if err = s.activityRepo.DeleteOptions(ctx, optionFilter); err != nil {
		log.Error().Err(err).Msg("failed to delete activity options")

		return fmt.Errorf("failed to delete activity options: %w", err)
	}

	if err = s.activityRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete activity")

		return fmt.Errorf("failed to delete activity: %w", err)
	}

	go s.invalidate(ctx, cacheGetActivity, cacheGetAllActivity, cacheCountActivity, id)

	return nil
}
