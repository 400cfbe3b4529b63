package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"smeraldo/config"
	"smeraldo/infras/otel/mocks"
	bookingMocks "smeraldo/internal/domains/booking/mocks"
	"smeraldo/internal/domains/booking/model"
	"smeraldo/internal/domains/booking/model/dto"
	"smeraldo/internal/domains/booking/service"
	guestMocks "smeraldo/internal/domains/guest/mocks"
	roomMocks "smeraldo/internal/domains/room/mocks"
	roomModel "smeraldo/internal/domains/room/model"
	cacheMocks "smeraldo/shared/cache/mocks"
	"smeraldo/shared/constant"
	"smeraldo/shared/failure"
	"smeraldo/shared/timezone"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// newTestTx hands out a transaction backed by sqlmock so the service can
// commit or roll back without a database.
func newTestTx(t *testing.T) (*sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	dbMock.ExpectBegin()

	tx, err := sqlx.NewDb(db, "postgres").Beginx()
	require.NoError(t, err)

	return tx, dbMock
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockStatusLogRepo := roomMocks.NewMockStatusLog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockGuestRepo, mockRoomRepo, mockStatusLogRepo, cfg, mockCache, mockOtel)

	validReq := dto.CreateBookingRequest{
		RoomID:        "room-id",
		GuestFullName: "Nguyen Van A",
		CheckInDate:   "2026-01-10",
		CheckOutDate:  strPtr("2026-01-12"),
		BookingSource: model.SourceWalkIn,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				tx, dbMock := newTestTx(t)
				dbMock.ExpectCommit()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockGuestRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room does not exist",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid stay window",
			req: dto.CreateBookingRequest{
				RoomID:        "room-id",
				GuestFullName: "Nguyen Van A",
				CheckInDate:   "2026-01-10",
				CheckOutDate:  strPtr("2026-01-12"),
				DurationDays:  intPtr(30),
				BookingSource: model.SourceWalkIn,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "guest insert fails and rolls back",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				tx, dbMock := newTestTx(t)
				dbMock.ExpectRollback()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockGuestRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
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
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, model.StatusConfirmed, res.Status)
			}
		})
	}
}

func TestBookingService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockStatusLogRepo := roomMocks.NewMockStatusLog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockGuestRepo, mockRoomRepo, mockStatusLogRepo, cfg, mockCache, mockOtel)

	todayBooking := model.Booking{
		ID:          "booking-id",
		RoomID:      "room-id",
		GuestID:     "guest-id",
		CheckInDate: timezone.Now(),
		Status:      model.StatusConfirmed,
	}

	readyRoom := roomModel.Room{
		ID:     "room-id",
		Status: roomModel.StatusReady,
	}

	req := dto.CheckInRequest{
		RoomID:    "room-id",
		GuestName: "Nguyen Van A",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful check-in",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(todayBooking, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(readyRoom, nil)

				tx, dbMock := newTestTx(t)
				dbMock.ExpectCommit()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockGuestRepo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					UpdateMatchedTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRoomRepo.EXPECT().
					UpdateMatchedTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockStatusLogRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: nil,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: failure.NotFound("booking not found"),
		},
		{
			name: "booking belongs to another room",
			setupMock: func() {
				other := todayBooking
				other.RoomID = "other-room-id"

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(other, nil)
			},
			wantErr: failure.BadRequestFromString("booking does not belong to this room"),
		},
		{
			name: "booking already checked in",
			setupMock: func() {
				checkedIn := todayBooking
				checkedIn.Status = model.StatusCheckedIn

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedIn, nil)
			},
			wantErr: failure.Conflict("booking is not in confirmed status"),
		},
		{
			name: "room already occupied",
			setupMock: func() {
				occupied := readyRoom
				occupied.Status = roomModel.StatusOccupied

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(todayBooking, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupied, nil)
			},
			wantErr: failure.Conflict("room is already occupied"),
		},
		{
			name: "check-in on the wrong date",
			setupMock: func() {
				future := todayBooking
				future.CheckInDate = timezone.Now().AddDate(0, 0, 3)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(future, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(readyRoom, nil)
			},
			wantErr: failure.BadRequestFromString("check-in is only allowed on the booking's check-in date"),
		},
		{
			name: "concurrent check-in loses the room update",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(todayBooking, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(readyRoom, nil)

				tx, dbMock := newTestTx(t)
				dbMock.ExpectRollback()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockGuestRepo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					UpdateMatchedTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRoomRepo.EXPECT().
					UpdateMatchedTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr: failure.Conflict("room is already occupied"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.CheckIn(ctx, "booking-id", req)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_CheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockStatusLogRepo := roomMocks.NewMockStatusLog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockGuestRepo, mockRoomRepo, mockStatusLogRepo, cfg, mockCache, mockOtel)

	checkedInBooking := model.Booking{
		ID:      "booking-id",
		RoomID:  "room-id",
		GuestID: "guest-id",
		Status:  model.StatusCheckedIn,
	}

	guestName := "Nguyen Van A"
	occupiedRoom := roomModel.Room{
		ID:               "room-id",
		Status:           roomModel.StatusOccupied,
		CurrentGuestName: &guestName,
	}

	req := dto.CheckOutRequest{RoomID: "room-id"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful check-out",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupiedRoom, nil)

				tx, dbMock := newTestTx(t)
				dbMock.ExpectCommit()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRepo.EXPECT().
					UpdateMatchedTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRoomRepo.EXPECT().
					UpdateMatchedTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockStatusLogRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: nil,
		},
		{
			name: "booking not checked in",
			setupMock: func() {
				confirmed := checkedInBooking
				confirmed.Status = model.StatusConfirmed

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr: failure.Conflict("booking is not checked in"),
		},
		{
			name: "room not occupied",
			setupMock: func() {
				cleaned := occupiedRoom
				cleaned.Status = roomModel.StatusBeingCleaned

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cleaned, nil)
			},
			wantErr: failure.Conflict("room is not occupied"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.CheckOut(ctx, "booking-id", req)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockStatusLogRepo := roomMocks.NewMockStatusLog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockGuestRepo, mockRoomRepo, mockStatusLogRepo, cfg, mockCache, mockOtel)

	confirmedBooking := model.Booking{
		ID:     "booking-id",
		RoomID: "room-id",
		Status: model.StatusConfirmed,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful cancellation",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				mockRepo.EXPECT().
					UpdateMatched(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: nil,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: failure.NotFound("booking not found"),
		},
		{
			name: "booking already checked in",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				mockRepo.EXPECT().
					UpdateMatched(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr: failure.Conflict("booking is not in confirmed status"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, "booking-id")

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
