package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"smeraldo/config"
	"smeraldo/infras/otel/mocks"
	attendanceMocks "smeraldo/internal/domains/attendance/mocks"
	"smeraldo/internal/domains/attendance/model"
	"smeraldo/internal/domains/attendance/model/dto"
	"smeraldo/internal/domains/attendance/service"
	staffMocks "smeraldo/internal/domains/staff/mocks"
	staffModel "smeraldo/internal/domains/staff/model"
	"smeraldo/shared/constant"
	"smeraldo/shared/failure"
	"smeraldo/shared/timezone"
)

func TestAttendanceService_Log(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := attendanceMocks.NewMockAttendance(ctrl)
	mockStaffRepo := staffMocks.NewMockStaff(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockStaffRepo, cfg, mockOtel)

	activeStaff := staffModel.StaffMember{
		ID:       "staff-id",
		FullName: "Nguyen Van A",
		Role:     constant.RoleReception,
		IsActive: true,
	}

	req := dto.LogAttendanceRequest{
		StaffID:    "staff-id",
		LogDate:    "2026-08-30",
		ShiftValue: 1,
	}

	tests := []struct {
		name      string
		req       dto.LogAttendanceRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful upsert",
			req:  req,
			setupMock: func() {
				mockStaffRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeStaff, nil)

				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: nil,
		},
		{
			name: "staff member not found",
			req:  req,
			setupMock: func() {
				mockStaffRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staffModel.StaffMember{}, nil)
			},
			wantErr: failure.NotFound("staff member not found"),
		},
		{
			name: "deactivated staff member",
			req:  req,
			setupMock: func() {
				inactive := activeStaff
				inactive.IsActive = false

				mockStaffRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: failure.BadRequestFromString("cannot log attendance for a deactivated staff member"),
		},
		{
			name: "invalid log date",
			req: dto.LogAttendanceRequest{
				StaffID:    "staff-id",
				LogDate:    "30-08-2026",
				ShiftValue: 1,
			},
			setupMock: func() {
				mockStaffRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeStaff, nil)
			},
			wantErr: failure.BadRequestFromString("invalid log_date"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Log(ctx, tt.req)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAttendanceService_ByMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := attendanceMocks.NewMockAttendance(ctrl)
	mockStaffRepo := staffMocks.NewMockStaff(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockStaffRepo, cfg, mockOtel)

	logDate, _ := timezone.Parse(constant.DateFormat, "2026-08-15")

	tests := []struct {
		name      string
		year      int
		month     int
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name:  "logs within the month",
			year:  2026,
			month: 8,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.AttendanceLog{
						{ID: "log-1", StaffID: "staff-id", LogDate: logDate, ShiftValue: 1, LoggedBy: "test-user-id"},
					}, nil)
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name:      "month out of range",
			year:      2026,
			month:     13,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:  "repository error",
			year:  2026,
			month: 8,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ByMonth(context.Background(), tt.year, tt.month)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
				assert.Equal(t, "2026-08-15", res.Logs[0].LogDate)
			}
		})
	}
}

func TestAttendanceService_TodayShifts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := attendanceMocks.NewMockAttendance(ctrl)
	mockStaffRepo := staffMocks.NewMockStaff(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockStaffRepo, cfg, mockOtel)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.AttendanceLog{
			{ID: "log-1", StaffID: "staff-1", ShiftValue: 1},
			{ID: "log-2", StaffID: "staff-2", ShiftValue: 0.5},
		}, nil)

	shifts, err := svc.TodayShifts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, shifts, 2)
	assert.Equal(t, 1.0, shifts["staff-1"])
	assert.Equal(t, 0.5, shifts["staff-2"])
	_, logged := shifts["staff-3"]
	assert.False(t, logged)
}
