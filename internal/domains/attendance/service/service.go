package service

import (
	"context"
	"fmt"
	"smeraldo/config"
	"smeraldo/infras/otel"
	"smeraldo/internal/domains/attendance/model"
	"smeraldo/internal/domains/attendance/model/dto"
	"smeraldo/internal/domains/attendance/repository"
	staffModel "smeraldo/internal/domains/staff/model"
	staffRepo "smeraldo/internal/domains/staff/repository"
	"smeraldo/shared"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/failure"
	"smeraldo/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Attendance interface {
	Log(ctx context.Context, req dto.LogAttendanceRequest) error
	ByMonth(ctx context.Context, year, month int) (dto.GetAttendanceResponse, error)
	TodayShifts(ctx context.Context) (map[string]float64, error)
}

type serviceImpl struct {
	repo      repository.Attendance
	staffRepo staffRepo.Staff
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Attendance, staffRepo staffRepo.Staff, cfg *config.Config, otel otel.Otel) Attendance {
	return &serviceImpl{
		repo:      repo,
		staffRepo: staffRepo,
		cfg:       cfg,
		otel:      otel,
	}
}

// Log upserts the shift value for (staff, date). The caller has already
// settled who may log for which date; this layer only checks the target
// staff member.
func (s *serviceImpl) Log(ctx context.Context, req dto.LogAttendanceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Log")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	staff, err := s.staffRepo.Get(ctx, shared.FilterByID(req.StaffID, staffModel.FieldID, staffModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff member")

		return fmt.Errorf("failed to get staff member: %w", err)
	}

	if staff.ID == constant.Empty {
		return failure.NotFound("staff member not found")
	}

	if !staff.IsActive {
		return failure.BadRequestFromString("cannot log attendance for a deactivated staff member")
	}

	logDate, err := timezone.Parse(constant.DateFormat, req.LogDate)
	if err != nil {
		return failure.BadRequestFromString("invalid log_date")
	}

	if err = s.repo.Upsert(ctx, req.ToModel(logDate, actor)); err != nil {
		log.Error().Err(err).Msg("failed to log attendance")

		return fmt.Errorf("failed to log attendance: %w", err)
	}

	return nil
}

func (s *serviceImpl) ByMonth(ctx context.Context, year, month int) (res dto.GetAttendanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ByMonth")
	defer scope.End()
	defer scope.TraceIfError(err)

	if month < 1 || month > 12 {
		return res, failure.BadRequestFromString("month must be between 1 and 12")
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timezone.GetLocation())
	last := first.AddDate(0, 1, -1)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "log_date_from",
				Field:    model.FieldLogDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    first.Format(constant.DateFormat),
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "log_date_to",
				Field:    model.FieldLogDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    last.Format(constant.DateFormat),
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldLogDate,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get attendance logs")

		return res, fmt.Errorf("failed to get attendance logs: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// TodayShifts maps staff id to the shift value logged for the current
// business-local date. Staff without a log today have no key.
func (s *serviceImpl) TodayShifts(ctx context.Context) (res map[string]float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TodayShifts")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldLogDate,
				Operator: gDto.FilterOperatorEq,
				Value:    timezone.Today(),
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get today's attendance")

		return res, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	res = make(map[string]float64, len(models))
	for _, mod := range models {
		res[mod.StaffID] = mod.ShiftValue
	}

	return res, nil
}
