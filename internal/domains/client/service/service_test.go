package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"caravan/config"
	kafkaMocks "caravan/infras/kafka/mocks"
	"caravan/infras/otel/mocks"
	"caravan/internal/domains/client/followup"
	clientMocks "caravan/internal/domains/client/mocks"
	"caravan/internal/domains/client/model"
	"caravan/internal/domains/client/model/dto"
	"caravan/internal/domains/client/service"
	cacheMocks "caravan/shared/cache/mocks"
	"caravan/shared/constant"
	"caravan/shared/failure"
)

func TestClientService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clientMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateClientRequest
		setupMock func()
		wantErr   bool
		wantDays  int
	}{
		{
			name: "fixed dates derive the trip length",
			req: dto.CreateClientRequest{
				Name:               "Asha Verma",
				Phone:              "+91-98000-00000",
				NumAdults:          2,
				TripStartDate:      "2026-10-01",
				TripEndDate:        "2026-10-05",
				TransportationMode: "Cab (with driver)",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantDays: 5,
		},
		{
			name: "flexible client keeps the stated length",
			req: dto.CreateClientRequest{
				Name:               "Ravi Iyer",
				Phone:              "+91-98000-00001",
				NumAdults:          1,
				IsFlexible:         true,
				FlexibleMonth:      "December",
				NumberOfDays:       4,
				TransportationMode: "Self-drive car",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantDays: 4,
		},
		{
			name: "end before start is rejected",
			req: dto.CreateClientRequest{
				Name:               "Asha Verma",
				Phone:              "+91-98000-00000",
				NumAdults:          2,
				TripStartDate:      "2026-10-05",
				TripEndDate:        "2026-10-01",
				TransportationMode: "Cab (with driver)",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateClientRequest{
				Name:               "Asha Verma",
				Phone:              "+91-98000-00000",
				NumAdults:          2,
				TripStartDate:      "2026-10-01",
				TripEndDate:        "2026-10-05",
				TransportationMode: "Cab (with driver)",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDays, res.NumberOfDays)
			assert.Equal(t, followup.StatusItineraryCreated, res.FollowUpStatus)
			assert.Equal(t, followup.NextStatuses(followup.StatusItineraryCreated), res.NextStatuses)
		})
	}
}

func TestClientService_RecordFollowUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clientMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	// Publishing and cache invalidation happen off the request goroutine.
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	storedClient := model.Client{
		ID:             "c1",
		Name:           "Asha Verma",
		FollowUpStatus: followup.StatusItinerarySent,
	}

	tests := []struct {
		name      string
		req       dto.RecordFollowUpRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "legal transition is recorded",
			req: dto.RecordFollowUpRequest{
				Status:           followup.StatusFirstFollowUp,
				Remarks:          "called, will decide next week",
				NextFollowUpDate: "2026-09-08",
				NextFollowUpTime: "10:30",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedClient, nil)
				mockRepo.EXPECT().
					InsertFollowUp(gomock.Any(), gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "terminal transition needs no schedule",
			req: dto.RecordFollowUpRequest{
				Status:  followup.StatusDead,
				Remarks: "booked with another agency",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedClient, nil)
				mockRepo.EXPECT().
					InsertFollowUp(gomock.Any(), gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "illegal transition conflicts",
			req: dto.RecordFollowUpRequest{
				Status:           followup.StatusThirdFollowUp,
				Remarks:          "skipping ahead",
				NextFollowUpDate: "2026-09-08",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedClient, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "missing remarks is a bad request",
			req: dto.RecordFollowUpRequest{
				Status:           followup.StatusFirstFollowUp,
				Remarks:          "   ",
				NextFollowUpDate: "2026-09-08",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedClient, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "non-terminal transition without a schedule is rejected",
			req: dto.RecordFollowUpRequest{
				Status:  followup.StatusFirstFollowUp,
				Remarks: "called, no answer",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedClient, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "client not found",
			req: dto.RecordFollowUpRequest{
				Status:           followup.StatusFirstFollowUp,
				Remarks:          "called",
				NextFollowUpDate: "2026-09-08",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Client{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "sales-1")
			err := svc.RecordFollowUp(ctx, tt.req, "c1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClientService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clientMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, found in db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Client{ID: "c1", FollowUpStatus: followup.StatusItineraryCreated}, nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "client not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Client{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "c1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClientService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clientMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	start := "2026-10-01"
	end := "2026-10-04"

	flexible := true

	tests := []struct {
		name      string
		req       dto.UpdateClientRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name:      "empty update is rejected",
			req:       dto.UpdateClientRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "new dates re-derive the trip length",
			req:  dto.UpdateClientRequest{TripStartDate: start, TripEndDate: end},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Client{ID: "c1"}, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, 4, fields["number_of_days"])

						return nil
					})
			},
		},
		{
			name: "switching to flexible drops the dates",
			req:  dto.UpdateClientRequest{IsFlexible: &flexible, FlexibleMonth: "December"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Client{ID: "c1"}, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Nil(t, fields["trip_start_date"])
						assert.Nil(t, fields["trip_end_date"])

						return nil
					})
			},
		},
		{
			name: "end before start is rejected",
			req:  dto.UpdateClientRequest{TripStartDate: end, TripEndDate: start},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Client{ID: "c1"}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "sales-1")
			err := svc.Update(ctx, tt.req, "c1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
