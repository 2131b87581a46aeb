package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"caravan/infras/otel"
	"caravan/infras/postgres"
	"caravan/internal/domains/client/model"
	gDto "caravan/shared/dto"
	gRepo "caravan/shared/repository"
)

type Client interface {
	Insert(ctx context.Context, model model.Client) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Client, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Client, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	InsertFollowUp(ctx context.Context, record model.FollowUpRecord) error
	GetFollowUps(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.FollowUpRecord, error)
}

type clientImpl struct {
	gRepo.Repository[model.Client]
	followUps gRepo.Repository[model.FollowUpRecord]
}

func New(db *postgres.Connection, otel otel.Otel) Client {
	return &clientImpl{
		Repository: gRepo.NewRepository[model.Client](model.EntityName, model.TableName, model.FieldID, db, otel),
		followUps:  gRepo.NewRepository[model.FollowUpRecord](model.FollowUpRecordEntityName, model.FollowUpRecordTableName, model.FieldFollowUpRecordID, db, otel),
	}
}

func (repo *clientImpl) InsertFollowUp(ctx context.Context, record model.FollowUpRecord) error {
	return repo.followUps.Insert(ctx, record) //nolint:wrapcheck
}

func (repo *clientImpl) GetFollowUps(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.FollowUpRecord, error) {
	return repo.followUps.GetAll(ctx, params, filter) //nolint:wrapcheck
}
