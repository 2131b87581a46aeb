package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"caravan/infras/otel"
	"caravan/infras/postgres"
	"caravan/internal/domains/catalog/model"
	gDto "caravan/shared/dto"
	gRepo "caravan/shared/repository"
)

type Hotel interface {
	Insert(ctx context.Context, model model.Hotel) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotel, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type hotelImpl struct {
	gRepo.Repository[model.Hotel]
}

func NewHotel(db *postgres.Connection, otel otel.Otel) Hotel {
	return &hotelImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.HotelEntityName, model.HotelTableName, model.FieldHotelID, db, otel),
	}
}

type RoomType interface {
	Insert(ctx context.Context, model model.RoomType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type roomTypeImpl struct {
	gRepo.Repository[model.RoomType]
}

func NewRoomType(db *postgres.Connection, otel otel.Otel) RoomType {
	return &roomTypeImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.RoomTypeEntityName, model.RoomTypeTableName, model.FieldRoomTypeID, db, otel),
	}
}

type Transportation interface {
	Insert(ctx context.Context, model model.Transportation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Transportation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Transportation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type transportationImpl struct {
	gRepo.Repository[model.Transportation]
}

func NewTransportation(db *postgres.Connection, otel otel.Otel) Transportation {
	return &transportationImpl{
		Repository: gRepo.NewRepository[model.Transportation](model.TransportationEntityName, model.TransportationTableName, model.FieldTransportationID, db, otel),
	}
}

type Sightseeing interface {
	Insert(ctx context.Context, model model.Sightseeing) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Sightseeing, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Sightseeing, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type sightseeingImpl struct {
	gRepo.Repository[model.Sightseeing]
}

func NewSightseeing(db *postgres.Connection, otel otel.Otel) Sightseeing {
	return &sightseeingImpl{
		Repository: gRepo.NewRepository[model.Sightseeing](model.SightseeingEntityName, model.SightseeingTableName, model.FieldSightseeingID, db, otel),
	}
}

type Activity interface {
	Insert(ctx context.Context, model model.Activity) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Activity, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Activity, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	InsertOption(ctx context.Context, option model.ActivityOption) error
	GetOptions(ctx context.Context, filter gDto.FilterGroup) ([]model.ActivityOption, error)
	DeleteOptions(ctx context.Context, filter gDto.FilterGroup) error
}

type activityImpl struct {
	gRepo.Repository[model.Activity]
	options gRepo.Repository[model.ActivityOption]
}

func NewActivity(db *postgres.Connection, otel otel.Otel) Activity {
	return &activityImpl{
		Repository: gRepo.NewRepository[model.Activity](model.ActivityEntityName, model.ActivityTableName, model.FieldActivityID, db, otel),
		options:    gRepo.NewRepository[model.ActivityOption](model.ActivityOptionEntityName, model.ActivityOptionTableName, model.FieldActivityOptionID, db, otel),
	}
}

func (repo *activityImpl) InsertOption(ctx context.Context, option model.ActivityOption) error {
	return repo.options.Insert(ctx, option) //nolint:wrapcheck
}

func (repo *activityImpl) GetOptions(ctx context.Context, filter gDto.FilterGroup) ([]model.ActivityOption, error) {
	return repo.options.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (repo *activityImpl) DeleteOptions(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.options.Delete(ctx, filter) //nolint:wrapcheck
}

type EntryTicket interface {
	Insert(ctx context.Context, model model.EntryTicket) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.EntryTicket, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.EntryTicket, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type entryTicketImpl struct {
	gRepo.Repository[model.EntryTicket]
}

func NewEntryTicket(db *postgres.Connection, otel otel.Otel) EntryTicket {
	return &entryTicketImpl{
		Repository: gRepo.NewRepository[model.EntryTicket](model.EntryTicketEntityName, model.EntryTicketTableName, model.FieldEntryTicketID, db, otel),
	}
}

type Meal interface {
	Insert(ctx context.Context, model model.Meal) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Meal, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Meal, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type mealImpl struct {
	gRepo.Repository[model.Meal]
}

func NewMeal(db *postgres.Connection, otel otel.Otel) Meal {
	return &mealImpl{
		Repository: gRepo.NewRepository[model.Meal](model.MealEntityName, model.MealTableName, model.FieldMealID, db, otel),
	}
}
