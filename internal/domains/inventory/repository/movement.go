package repository

//go:generate go run go.uber.org/mock/mockgen -source=./movement.go -destination=../mocks/movement_mock.go -package=mocks

import (
	"context"
	"smeraldo/infras/otel"
	"smeraldo/infras/postgres"
	"smeraldo/internal/domains/inventory/model"
	gDto "smeraldo/shared/dto"
	gRepo "smeraldo/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Movement is insert-only, like the room status log.
type Movement interface {
	Insert(ctx context.Context, model model.StockMovement) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.StockMovement) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StockMovement, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type movementRepositoryImpl struct {
	gRepo.Repository[model.StockMovement]
	db   *postgres.Connection
	otel otel.Otel
}

func NewMovement(db *postgres.Connection, otel otel.Otel) Movement {
	return &movementRepositoryImpl{
		Repository: gRepo.NewRepository[model.StockMovement](model.MovementEntityName, model.MovementTableName, model.MovementFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
