package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"smeraldo/infras/otel"
	"smeraldo/infras/postgres"
	"smeraldo/internal/domains/attendance/model"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/logger"
	gRepo "smeraldo/shared/repository"
)

type Attendance interface {
	Upsert(ctx context.Context, model model.AttendanceLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AttendanceLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AttendanceLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AttendanceLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Attendance {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AttendanceLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert writes the log keyed by (staff_id, log_date). A second write for the
// same staff and date replaces the shift value instead of adding a row.
func (repo *repositoryImpl) Upsert(ctx context.Context, mod model.AttendanceLog) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Upsert")
	defer scope.End()

	query := `INSERT INTO attendance_logs
		(id, staff_id, log_date, shift_value, logged_by, created_at, created_by, modified_at, modified_by)
		VALUES (:id, :staff_id, :log_date, :shift_value, :logged_by, :created_at, :created_by, :modified_at, :modified_by)
		ON CONFLICT (staff_id, log_date) DO UPDATE SET
			shift_value = EXCLUDED.shift_value,
			logged_by   = EXCLUDED.logged_by,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, mod)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}
