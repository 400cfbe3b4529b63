package repository

//go:generate go run go.uber.org/mock/mockgen -source=./statuslog.go -destination=../mocks/statuslog_mock.go -package=mocks

import (
	"context"
	"smeraldo/infras/otel"
	"smeraldo/infras/postgres"
	"smeraldo/internal/domains/room/model"
	gDto "smeraldo/shared/dto"
	gRepo "smeraldo/shared/repository"

	"github.com/jmoiron/sqlx"
)

// StatusLog is insert-only. No update or delete is exposed on purpose.
type StatusLog interface {
	Insert(ctx context.Context, model model.StatusLog) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.StatusLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StatusLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type statusLogRepositoryImpl struct {
	gRepo.Repository[model.StatusLog]
	db   *postgres.Connection
	otel otel.Otel
}

func NewStatusLog(db *postgres.Connection, otel otel.Otel) StatusLog {
	return &statusLogRepositoryImpl{
		Repository: gRepo.NewRepository[model.StatusLog](model.StatusLogEntityName, model.StatusLogTableName, model.StatusLogFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
