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
	inventoryMocks "smeraldo/internal/domains/inventory/mocks"
	"smeraldo/internal/domains/inventory/model"
	"smeraldo/internal/domains/inventory/model/dto"
	"smeraldo/internal/domains/inventory/service"
	cacheMocks "smeraldo/shared/cache/mocks"
	"smeraldo/shared/constant"
	"smeraldo/shared/failure"
)

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

func TestInventoryService_Move(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := inventoryMocks.NewMockInventory(ctrl)
	mockMovementRepo := inventoryMocks.NewMockMovement(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockMovementRepo, cfg, mockCache, mockOtel)

	req := dto.MoveStockRequest{
		ItemID:       "item-id",
		MovementType: model.MovementStockOut,
		Quantity:     4,
		MovementDate: "2026-08-30",
	}

	tests := []struct {
		name      string
		req       dto.MoveStockRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful movement",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				tx, dbMock := newTestTx(t)
				dbMock.ExpectCommit()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockMovementRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					AdjustStockTx(gomock.Any(), tx, "item-id", -4).
					Return(int64(1), nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: nil,
		},
		{
			name: "item not found",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: failure.NotFound("inventory item not found"),
		},
		{
			name: "invalid movement date",
			req: dto.MoveStockRequest{
				ItemID:       "item-id",
				MovementType: model.MovementStockOut,
				Quantity:     4,
				MovementDate: "30-08-2026",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: failure.BadRequestFromString("invalid movement_date"),
		},
		{
			name: "stock out larger than current stock",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				tx, dbMock := newTestTx(t)
				dbMock.ExpectRollback()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockMovementRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					AdjustStockTx(gomock.Any(), tx, "item-id", -4).
					Return(int64(0), nil)
			},
			wantErr: failure.Conflict("insufficient stock for movement"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Move(ctx, tt.req)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInventoryService_LowStockItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := inventoryMocks.NewMockInventory(ctrl)
	mockMovementRepo := inventoryMocks.NewMockMovement(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockMovementRepo, cfg, mockCache, mockOtel)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.InventoryItem{
			{ID: "item-1", Name: "Hand towels", CurrentStock: 3, LowStockThreshold: 10},
		}, nil)

	res, err := svc.LowStockItems(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.True(t, res.Items[0].LowStock)
}

func TestInventoryService_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := inventoryMocks.NewMockInventory(ctrl)
	mockMovementRepo := inventoryMocks.NewMockMovement(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockMovementRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "item not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.DeleteItem(context.Background(), "item-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
