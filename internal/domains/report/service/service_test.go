package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"smeraldo/config"
	"smeraldo/infras/otel/mocks"
	attendanceDto "smeraldo/internal/domains/attendance/model/dto"
	"smeraldo/internal/domains/report/service"
	roomDto "smeraldo/internal/domains/room/model/dto"
	staffDto "smeraldo/internal/domains/staff/model/dto"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
)

// Thin stand-ins for the three composed services. The dashboard only reads;
// the write methods are never reached.
type stubRooms struct {
	rooms  roomDto.GetRoomsResponse
	counts roomDto.StatusCounts
	err    error
}

func (s *stubRooms) Create(ctx context.Context, req roomDto.CreateRoomRequest) error { return nil }

func (s *stubRooms) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (roomDto.GetRoomsResponse, error) {
	return s.rooms, s.err
}

func (s *stubRooms) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error) {
	return 0, nil
}

func (s *stubRooms) Get(ctx context.Context, id string) (roomDto.RoomResponse, error) {
	return roomDto.RoomResponse{}, nil
}

func (s *stubRooms) StatusCounts(ctx context.Context) (roomDto.StatusCounts, error) {
	return s.counts, nil
}

func (s *stubRooms) StatusLogs(ctx context.Context, roomID string, params gDto.QueryParams) (roomDto.GetStatusLogsResponse, error) {
	return roomDto.GetStatusLogsResponse{}, nil
}

func (s *stubRooms) MarkReady(ctx context.Context, roomID string) error { return nil }

func (s *stubRooms) OverrideStatus(ctx context.Context, roomID string, req roomDto.OverrideStatusRequest) error {
	return nil
}

type stubStaff struct {
	active []staffDto.StaffProfile
}

func (s *stubStaff) Create(ctx context.Context, req staffDto.CreateStaffRequest) error { return nil }

func (s *stubStaff) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (staffDto.GetStaffResponse, error) {
	return staffDto.GetStaffResponse{}, nil
}

func (s *stubStaff) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error) {
	return 0, nil
}

func (s *stubStaff) Get(ctx context.Context, id string) (staffDto.StaffResponse, error) {
	return staffDto.StaffResponse{}, nil
}

func (s *stubStaff) Update(ctx context.Context, req staffDto.UpdateStaffRequest, id string) error {
	return nil
}

func (s *stubStaff) ProfileByAccountID(ctx context.Context, accountID string) (staffDto.StaffProfile, error) {
	return staffDto.StaffProfile{}, nil
}

func (s *stubStaff) ActiveStaff(ctx context.Context) ([]staffDto.StaffProfile, error) {
	return s.active, nil
}

type stubAttendance struct {
	shifts map[string]float64
}

func (s *stubAttendance) Log(ctx context.Context, req attendanceDto.LogAttendanceRequest) error {
	return nil
}

func (s *stubAttendance) ByMonth(ctx context.Context, year, month int) (attendanceDto.GetAttendanceResponse, error) {
	return attendanceDto.GetAttendanceResponse{}, nil
}

func (s *stubAttendance) TodayShifts(ctx context.Context) (map[string]float64, error) {
	return s.shifts, nil
}

func TestOccupancyPercent(t *testing.T) {
	tests := []struct {
		name     string
		occupied int
		total    int
		want     float64
	}{
		{"empty house", 0, 23, 0},
		{"fifteen of twenty-three", 15, 23, 15.0 / 23.0 * 100},
		{"full house", 23, 23, 100},
		{"overbooked clamps to 100", 30, 23, 100},
		{"zero total", 10, 0, 0},
		{"negative total", 10, -1, 0},
		{"negative occupied clamps to 0", -3, 23, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.OccupancyPercent(tt.occupied, tt.total))
		})
	}

	assert.InDelta(t, 65.22, service.OccupancyPercent(15, 23), 0.01)
}

func TestOccupancyLabel(t *testing.T) {
	assert.Equal(t, "15 / 23 phòng có khách", service.OccupancyLabel(15, 23))
	assert.Equal(t, "0 / 23 phòng có khách", service.OccupancyLabel(0, 23))
}

func TestReportService_Dashboard(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.TotalRooms = 23

	rooms := roomDto.GetRoomsResponse{
		Rooms: []roomDto.RoomResponse{
			{ID: "room-1", RoomNumber: "101", Status: "occupied"},
			{ID: "room-2", RoomNumber: "102", Status: "ready"},
		},
		TotalData: 2,
	}

	counts := roomDto.StatusCounts{Occupied: 15, Ready: 8}

	active := []staffDto.StaffProfile{
		{StaffID: "staff-1", FullName: "Nguyen Van A", Role: constant.RoleReception, IsActive: true},
		{StaffID: "staff-2", FullName: "Tran Thi B", Role: constant.RoleHousekeeping, IsActive: true},
	}

	shifts := map[string]float64{"staff-1": 1}

	svc := service.New(
		&stubRooms{rooms: rooms, counts: counts},
		&stubStaff{active: active},
		&stubAttendance{shifts: shifts},
		cfg,
		mocks.NewOtel(),
	)

	res, err := svc.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Date)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 15, res.StatusCounts.Occupied)
	assert.InDelta(t, 65.22, res.OccupancyPercent, 0.01)
	assert.Equal(t, "15 / 23 phòng có khách", res.OccupancyLabel)
	assert.Len(t, res.StaffOnDuty, 2)
	assert.Equal(t, 1.0, res.StaffOnDuty[0].ShiftValue)
	assert.Equal(t, 0.0, res.StaffOnDuty[1].ShiftValue)
}

func TestReportService_Dashboard_RoomError(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.TotalRooms = 23

	svc := service.New(
		&stubRooms{err: errors.New("database error")},
		&stubStaff{},
		&stubAttendance{},
		cfg,
		mocks.NewOtel(),
	)

	_, err := svc.Dashboard(context.Background())

	assert.Error(t, err)
}
