package service

import (
	"context"
	"fmt"
	"smeraldo/config"
	"smeraldo/infras/otel"
	attendanceService "smeraldo/internal/domains/attendance/service"
	"smeraldo/internal/domains/report/model/dto"
	roomService "smeraldo/internal/domains/room/service"
	staffService "smeraldo/internal/domains/staff/service"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Report interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	roomService       roomService.Room
	staffService      staffService.Staff
	attendanceService attendanceService.Attendance
	cfg               *config.Config
	otel              otel.Otel
}

func New(
	roomService roomService.Room,
	staffService staffService.Staff,
	attendanceService attendanceService.Attendance,
	cfg *config.Config,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		roomService:       roomService,
		staffService:      staffService,
		attendanceService: attendanceService,
		cfg:               cfg,
		otel:              otel,
	}
}

// Dashboard assembles the manager view for the current business-local date.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err := s.roomService.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for dashboard")

		return res, fmt.Errorf("failed to get rooms for dashboard: %w", err)
	}

	counts, err := s.roomService.StatusCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room status counts for dashboard")

		return res, fmt.Errorf("failed to get room status counts for dashboard: %w", err)
	}

	staff, err := s.staffService.ActiveStaff(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active staff for dashboard")

		return res, fmt.Errorf("failed to get active staff for dashboard: %w", err)
	}

	shifts, err := s.attendanceService.TodayShifts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get today's shifts for dashboard")

		return res, fmt.Errorf("failed to get today's shifts for dashboard: %w", err)
	}

	total := s.cfg.App.TotalRooms

	res.Date = timezone.Today()
	res.Rooms = rooms.Rooms
	res.StatusCounts = counts
	res.OccupancyPercent = OccupancyPercent(counts.Occupied, total)
	res.OccupancyLabel = OccupancyLabel(counts.Occupied, total)
	res.FillStaff(staff, shifts)

	return res, nil
}

// OccupancyPercent clamps to [0, 100] and reports 0 when the room total is
// not positive. The fraction is kept: 15 of 23 rooms is 65.22, not 65.
func OccupancyPercent(occupied, total int) float64 {
	if total <= 0 {
		return 0
	}

	percent := float64(occupied) / float64(total) * 100
	if percent < 0 {
		return 0
	}

	if percent > 100 {
		return 100
	}

	return percent
}

// OccupancyLabel renders the occupancy line shown on the dashboard.
func OccupancyLabel(occupied, total int) string {
	return fmt.Sprintf("%d / %d phòng có khách", occupied, total)
}
