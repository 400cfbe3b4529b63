package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"smeraldo/infras/otel"
	"smeraldo/infras/postgres"
	"smeraldo/internal/domains/account/model"
	gDto "smeraldo/shared/dto"
	gRepo "smeraldo/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Account interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	Insert(ctx context.Context, model model.Account) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Account) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Account, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Account]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Account {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Account](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
