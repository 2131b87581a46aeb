package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"caravan/infras/otel"
	"caravan/infras/postgres"
	"caravan/internal/domains/itinerary/model"
	"caravan/shared"
	"caravan/shared/constant"
	gDto "caravan/shared/dto"
	"caravan/shared/logger"
	gRepo "caravan/shared/repository"

	"github.com/lib/pq"
)

// ErrVersionConflict reports a compare-and-swap failure: the store already
// holds a version other than the one the save was built on.
var ErrVersionConflict = errors.New("itinerary version conflict")

type Itinerary interface {
	LoadLatest(ctx context.Context, clientID string) (model.Itinerary, error)
	LoadVersion(ctx context.Context, clientID string, version int) (model.Itinerary, error)
	ListVersions(ctx context.Context, clientID string) ([]model.Itinerary, error)
	Save(ctx context.Context, itinerary model.Itinerary) error
	CountForClient(ctx context.Context, clientID string) (int, error)
}

type itineraryImpl struct {
	gRepo.Repository[model.Itinerary]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Itinerary {
	return &itineraryImpl{
		Repository: gRepo.NewRepository[model.Itinerary](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *itineraryImpl) LoadLatest(ctx context.Context, clientID string) (model.Itinerary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".itinerary.LoadLatest")
	defer scope.End()

	params := gDto.QueryParams{Page: 1, Limit: 1, SortBy: model.FieldVersion, SortDir: gDto.SortDirDesc}
	filter := shared.FilterByID(clientID, model.FieldClientID, model.TableName)

	rows, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		return model.Itinerary{}, err //nolint:wrapcheck
	}

	if len(rows) == 0 {
		return model.Itinerary{}, nil
	}

	return rows[0], nil
}

func (repo *itineraryImpl) LoadVersion(ctx context.Context, clientID string, version int) (model.Itinerary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".itinerary.LoadVersion")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldClientID, Value: clientID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldVersion, Value: version, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	return repo.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *itineraryImpl) ListVersions(ctx context.Context, clientID string) ([]model.Itinerary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".itinerary.ListVersions")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.FieldVersion, SortDir: gDto.SortDirAsc}
	filter := shared.FilterByID(clientID, model.FieldClientID, model.TableName)

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *itineraryImpl) CountForClient(ctx context.Context, clientID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".itinerary.CountForClient")
	defer scope.End()

	return repo.Count(ctx, shared.FilterByID(clientID, model.FieldClientID, model.TableName)) //nolint:wrapcheck
}

// Save persists one new version with a compare-and-swap guard: the row
// only lands if the store's current version for the client is exactly
// version-1. The unique (client_id, version) index backstops the check
// against two writers racing past the same read.
func (repo *itineraryImpl) Save(ctx context.Context, itinerary model.Itinerary) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".itinerary.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin itinerary save transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	var current int

	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) FROM %s WHERE %s = $1", model.FieldVersion, model.TableName, model.FieldClientID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = tx.GetContext(ctx, &current, query, itinerary.ClientID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read current itinerary version: %w", err)
	}

	if current != itinerary.Version-1 {
		err = fmt.Errorf("%w: have %d, saving %d", ErrVersionConflict, current, itinerary.Version)

		return err
	}

	if err = repo.InsertTx(ctx, tx, itinerary); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			err = fmt.Errorf("%w: version %d already exists", ErrVersionConflict, itinerary.Version)

			return err
		}

		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit itinerary save: %w", err)
	}

	return nil
}
