package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"caravan/config"
	kafkaMocks "caravan/infras/kafka/mocks"
	"caravan/infras/otel/mocks"
	catalogMocks "caravan/internal/domains/catalog/mocks"
	catalogModel "caravan/internal/domains/catalog/model"
	clientMocks "caravan/internal/domains/client/mocks"
	clientModel "caravan/internal/domains/client/model"
	itineraryMocks "caravan/internal/domains/itinerary/mocks"
	"caravan/internal/domains/itinerary/model"
	"caravan/internal/domains/itinerary/model/dto"
	"caravan/internal/domains/itinerary/pricing"
	"caravan/internal/domains/itinerary/repository"
	"caravan/internal/domains/itinerary/service"
	cacheMocks "caravan/shared/cache/mocks"
	"caravan/shared/constant"
	"caravan/shared/failure"
)

func TestItineraryService_SaveVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := itineraryMocks.NewMockItinerary(ctrl)
	mockClientRepo := clientMocks.NewMockClient(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockClientRepo, mockCatalog, cfg, mockCache, mockKafka, mockOtel)

	stored := service.BuildNextVersion(nil, versionClient(), hotelPlans(), decimal.Zero, decimal.NewFromInt(1),
		"sales-1", model.ChangeTypeCreated, "initial", snapshotWithRoom(100), pricing.Options{})

	// The version event and cache invalidation run off the request
	// goroutine, so they may or may not land before the test ends.
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name        string
		req         dto.SaveVersionRequest
		setupMock   func()
		wantErr     bool
		wantCode    int
		wantVersion int
	}{
		{
			name: "first version is created",
			req: dto.SaveVersionRequest{
				DayPlans:    hotelPlans(),
				ChangeType:  model.ChangeTypeCreated,
				Description: "initial quote",
			},
			setupMock: func() {
				mockClientRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(versionClient(), nil)
				mockRepo.EXPECT().
					LoadLatest(gomock.Any(), "c1").
					Return(model.Itinerary{}, nil)
				mockCatalog.EXPECT().
					Snapshot(gomock.Any()).
					Return(snapshotWithRoom(100), nil)
				mockRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantVersion: 1,
		},
		{
			name: "next version on top of the stored one",
			req: dto.SaveVersionRequest{
				DayPlans:    hotelPlans(),
				ChangeType:  model.ChangeTypeGeneralEdit,
				Description: "swapped hotels",
				BaseVersion: 1,
			},
			setupMock: func() {
				mockClientRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(versionClient(), nil)
				mockRepo.EXPECT().
					LoadLatest(gomock.Any(), "c1").
					Return(stored, nil)
				mockCatalog.EXPECT().
					Snapshot(gomock.Any()).
					Return(snapshotWithRoom(100), nil)
				mockRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantVersion: 2,
		},
		{
			name: "stale base version is rejected",
			req: dto.SaveVersionRequest{
				DayPlans:    hotelPlans(),
				ChangeType:  model.ChangeTypeGeneralEdit,
				Description: "edit built on an old read",
				BaseVersion: 5,
			},
			setupMock: func() {
				mockClientRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(versionClient(), nil)
				mockRepo.EXPECT().
					LoadLatest(gomock.Any(), "c1").
					Return(stored, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "created change type on an existing itinerary is rejected",
			req: dto.SaveVersionRequest{
				DayPlans:    hotelPlans(),
				ChangeType:  model.ChangeTypeCreated,
				Description: "should not work",
				BaseVersion: 1,
			},
			setupMock: func() {
				mockClientRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(versionClient(), nil)
				mockRepo.EXPECT().
					LoadLatest(gomock.Any(), "c1").
					Return(stored, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "store-level conflict maps to 409",
			req: dto.SaveVersionRequest{
				DayPlans:    hotelPlans(),
				ChangeType:  model.ChangeTypeGeneralEdit,
				Description: "raced another writer",
				BaseVersion: 1,
			},
			setupMock: func() {
				mockClientRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(versionClient(), nil)
				mockRepo.EXPECT().
					LoadLatest(gomock.Any(), "c1").
					Return(stored, nil)
				mockCatalog.EXPECT().
					Snapshot(gomock.Any()).
					Return(snapshotWithRoom(100), nil)
				mockRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(repository.ErrVersionConflict)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "client not found",
			req: dto.SaveVersionRequest{
				DayPlans:    hotelPlans(),
				ChangeType:  model.ChangeTypeCreated,
				Description: "no such client",
			},
			setupMock: func() {
				mockClientRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(clientModel.Client{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			req: dto.SaveVersionRequest{
				DayPlans:    hotelPlans(),
				ChangeType:  model.ChangeTypeCreated,
				Description: "db down",
			},
			setupMock: func() {
				mockClientRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(versionClient(), nil)
				mockRepo.EXPECT().
					LoadLatest(gomock.Any(), "c1").
					Return(model.Itinerary{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "sales-1")
			res, err := svc.SaveVersion(ctx, tt.req, "c1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantVersion, res.Version)
				assert.False(t, res.Stale)
			}
		})
	}
}

func TestItineraryService_GetLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := itineraryMocks.NewMockItinerary(ctrl)
	mockClientRepo := clientMocks.NewMockClient(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockClientRepo, mockCatalog, cfg, mockCache, mockKafka, mockOtel)

	stored := service.BuildNextVersion(nil, versionClient(), hotelPlans(), decimal.Zero, decimal.NewFromInt(1),
		"sales-1", model.ChangeTypeCreated, "initial", snapshotWithRoom(100), pricing.Options{})

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantStale bool
	}{
		{
			name: "fresh itinerary",
			setupMock: func() {
				mockRepo.EXPECT().
					LoadLatest(gomock.Any(), "c1").
					Return(stored, nil)
				mockCatalog.EXPECT().
					Snapshot(gomock.Any()).
					Return(snapshotWithRoom(100), nil)
			},
		},
		{
			name: "stale after a catalog price change",
			setupMock: func() {
				mockRepo.EXPECT().
					LoadLatest(gomock.Any(), "c1").
					Return(stored, nil)
				mockCatalog.EXPECT().
					Snapshot(gomock.Any()).
					Return(snapshotWithRoom(150), nil)
			},
			wantStale: true,
		},
		{
			name: "no itinerary yet",
			setupMock: func() {
				mockRepo.EXPECT().
					LoadLatest(gomock.Any(), "c1").
					Return(model.Itinerary{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetLatest(context.Background(), "c1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 404, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStale, res.Stale)

			if tt.wantStale {
				assert.True(t, decimal.NewFromInt(150).Equal(res.FreshBaseCost))
				assert.True(t, decimal.NewFromInt(100).Equal(res.TotalBaseCost))
			} else {
				assert.True(t, res.FreshBaseCost.Equal(res.TotalBaseCost))
			}
		})
	}
}

func TestItineraryService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := itineraryMocks.NewMockItinerary(ctrl)
	mockClientRepo := clientMocks.NewMockClient(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockClientRepo, mockCatalog, cfg, mockCache, mockKafka, mockOtel)

	mockClientRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(versionClient(), nil)
	mockCatalog.EXPECT().
		Snapshot(gomock.Any()).
		Return(snapshotWithRoom(100), nil)

	res, err := svc.Quote(context.Background(), dto.QuoteRequest{
		DayPlans:     hotelPlans(),
		ProfitMargin: 25,
	}, "c1")

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(res.TotalBaseCost))
	assert.True(t, decimal.NewFromInt(125).Equal(res.FinalPrice))
}

func TestItineraryService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := itineraryMocks.NewMockItinerary(ctrl)
	mockClientRepo := clientMocks.NewMockClient(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockClientRepo, mockCatalog, cfg, mockCache, mockKafka, mockOtel)

	t.Run("day below one is rejected", func(t *testing.T) {
		_, err := svc.Availability(context.Background(), "c1", 0)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unvisited spots are offered", func(t *testing.T) {
		snap := snapshotWithRoom(100)
		snap.Sightseeings = map[string]catalogModel.Sightseeing{
			"s1": {ID: "s1", Name: "Old Town"},
		}

		mockClientRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(versionClient(), nil)
		mockRepo.EXPECT().
			LoadLatest(gomock.Any(), "c1").
			Return(model.Itinerary{}, nil)
		mockCatalog.EXPECT().
			Snapshot(gomock.Any()).
			Return(snap, nil)

		res, err := svc.Availability(context.Background(), "c1", 1)

		assert.NoError(t, err)
		assert.Len(t, res.Sightseeing, 1)
	})
}
