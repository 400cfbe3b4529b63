package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"smeraldo/infras/otel"
	"smeraldo/infras/postgres"
	"smeraldo/internal/domains/inventory/model"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/logger"
	gRepo "smeraldo/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Inventory interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	Insert(ctx context.Context, model model.InventoryItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.InventoryItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.InventoryItem, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	AdjustStockTx(ctx context.Context, sqltx *sqlx.Tx, itemID string, delta int) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.InventoryItem]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inventory {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.InventoryItem](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// AdjustStockTx applies a signed delta to current_stock. The guard in the
// WHERE clause refuses an adjustment that would take stock negative, and the
// caller learns about it through the matched-row count.
func (repo *repositoryImpl) AdjustStockTx(ctx context.Context, sqltx *sqlx.Tx, itemID string, delta int) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".AdjustStockTx")
	defer scope.End()

	query := `UPDATE inventory_items
		SET current_stock = current_stock + :delta
		WHERE id = :id AND current_stock + :delta >= 0`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.NamedExecContext(ctx, query, map[string]any{
		"id":    itemID,
		"delta": delta,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to adjust stock (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read stock adjustment result (%s): %w", model.EntityName, err)
	}

	return affected, nil
}
