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

func (s *serviceImpl) CreateTransportation(ctx context.Context, req dto.CreateTransportationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTransportation")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.transportationRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create transportation")

		return fmt.Errorf("failed to create transportation: %w", err)
	}

	go s.invalidate(ctx, cacheGetTransportation, cacheGetAllTransportation, cacheCountTransportation, constant.Empty)

	return nil
}

func (s *serviceImpl) GetTransportations(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTransportationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTransportations")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTransportation, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transportations")

		return res, nil
	}

	total, err := s.transportationRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transportations")

		return res, fmt.Errorf("failed to count transportations: %w", err)
	}

	models, err := s.transportationRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transportations")

		return res, fmt.Errorf("failed to get transportations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transportations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateTransportation(ctx context.Context, req dto.UpdateTransportationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTransportation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTransportationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldTransportationID, model.TransportationTableName)

	exist, err := s.transportationRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if transportation exists")

		return fmt.Errorf("failed to check if transportation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("transportation not found") // nolint:wrapcheck
	}

	if err = s.transportationRepo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update transportation")

		return fmt.Errorf("failed to update transportation: %w", err)
	}

	go s.invalidate(ctx, cacheGetTransportation, cacheGetAllTransportation, cacheCountTransportation, id)

	return nil
}

func (s *serviceImpl) DeleteTransportation(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTransportation")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldTransportationID, model.TransportationTableName)

	exist, err := s.transportationRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if transportation exists")

		return fmt.Errorf("failed to check if transportation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("transportation not found") // nolint:wrapcheck
	}

	if err = s.transportationRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete transportation")

		return fmt.Errorf("failed to delete transportation: %w", err)
	}

	go s.invalidate(ctx, cacheGetTransportation, cacheGetAllTransportation, cacheCountTransportation, id)

	return nil
}

func (s *serviceImpl) CreateMeal(ctx context.Context, req dto.CreateMealRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateMeal")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.mealRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create meal")

		return fmt.Errorf("failed to create meal: %w", err)
	}

	go s.invalidate(ctx, cacheGetMeal, cacheGetAllMeal, cacheCountMeal, constant.Empty)

	return nil
}

func (s *serviceImpl) GetMeals(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMealsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMeals")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMeal, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for meals")

		return res, nil
	}

	total, err := s.mealRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count meals")

		return res, fmt.Errorf("failed to count meals: %w", err)
	}

	models, err := s.mealRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get meals")

		return res, fmt.Errorf("failed to get meals: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save meals to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateMeal(ctx context.Context, req dto.UpdateMealRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMeal")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateMealRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldMealID, model.MealTableName)

	exist, err := s.mealRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if meal exists")

		return fmt.Errorf("failed to check if meal exists: %w", err)
	}

	if !exist {
		return failure.NotFound("meal not found") // nolint:wrapcheck
	}

	if err = s.mealRepo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update meal")

		return fmt.Errorf("failed to update meal: %w", err)
	}

	go s.invalidate(ctx, cacheGetMeal, cacheGetAllMeal, cacheCountMeal, id)

	return nil
}

func (s *serviceImpl) DeleteMeal(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteMeal")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldMealID, model.MealTableName)

	exist, err := s.mealRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if meal exists")

		return fmt.Errorf("failed to check if meal exists: %w", err)
	}

	if !exist {
		return failure.NotFound("meal not found") // nolint:wrapcheck
	}

	if err = s.mealRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete meal")

		return fmt.Errorf("failed to delete meal: %w", err)
	}

	go s.invalidate(ctx, cacheGetMeal, cacheGetAllMeal, cacheCountMeal, id)

	return nil
}
