package dto

import (
	"smeraldo/internal/domains/inventory/model"
	"smeraldo/shared"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	gModel "smeraldo/shared/model"
	"smeraldo/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name              string `json:"name"                validate:"required,min=1"`
	Category          string `json:"category"            validate:"required,min=1"`
	CurrentStock      *int   `json:"current_stock,omitempty"       validate:"omitempty,min=0"`
	LowStockThreshold *int   `json:"low_stock_threshold,omitempty" validate:"omitempty,min=0"`
	Unit              string `json:"unit,omitempty"`
}

func (r *CreateItemRequest) ToModel(actor string) model.InventoryItem {
	stock := 0
	if r.CurrentStock != nil {
		stock = *r.CurrentStock
	}

	threshold := 5
	if r.LowStockThreshold != nil {
		threshold = *r.LowStockThreshold
	}

	unit := r.Unit
	if unit == "" {
		unit = "units"
	}

	return model.InventoryItem{
		ID:                uuid.NewString(),
		Name:              r.Name,
		Category:          r.Category,
		CurrentStock:      stock,
		LowStockThreshold: threshold,
		Unit:              unit,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateItemRequest struct {
	Name              *string `json:"name,omitempty"                validate:"omitempty,min=1"`
	Category          *string `json:"category,omitempty"            validate:"omitempty,min=1"`
	LowStockThreshold *int    `json:"low_stock_threshold,omitempty" validate:"omitempty,min=0"`
	Unit              *string `json:"unit,omitempty"                validate:"omitempty,min=1"`
}

func (r *UpdateItemRequest) ToUpdateMap(actor string) map[string]any {
	mod := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if r.Name != nil {
		mod[model.FieldName] = *r.Name
	}

	if r.Category != nil {
		mod[model.FieldCategory] = *r.Category
	}

	if r.LowStockThreshold != nil {
		mod[model.FieldLowStockThreshold] = *r.LowStockThreshold
	}

	if r.Unit != nil {
		mod[model.FieldUnit] = *r.Unit
	}

	return mod
}

// MoveStockRequest records one stock_in or stock_out delta. Quantity is
// always positive; the direction comes from the movement type.
type MoveStockRequest struct {
	ItemID        string  `json:"item_id"        validate:"required,uuid"`
	MovementType  string  `json:"movement_type"  validate:"required,oneof=stock_in stock_out"`
	Quantity      int     `json:"quantity"       validate:"required,min=1"`
	RecipientName *string `json:"recipient_name,omitempty"`
	MovementDate  string  `json:"movement_date"  validate:"required,dateymd"`
}

func (r *MoveStockRequest) ToModel(movementDate time.Time, actor string) model.StockMovement {
	return model.StockMovement{
		ID:            uuid.NewString(),
		ItemID:        r.ItemID,
		MovementType:  r.MovementType,
		Quantity:      r.Quantity,
		RecipientName: r.RecipientName,
		LoggedBy:      actor,
		MovementDate:  movementDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

// Delta is the signed stock adjustment for this movement.
func (r *MoveStockRequest) Delta() int {
	if r.MovementType == model.MovementStockOut {
		return -r.Quantity
	}

	return r.Quantity
}

type ItemResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	CurrentStock      int    `json:"current_stock"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Unit              string `json:"unit"`
	LowStock          bool   `json:"low_stock"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(model model.InventoryItem) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.CurrentStock = model.CurrentStock
	r.LowStockThreshold = model.LowStockThreshold
	r.Unit = model.Unit
	r.LowStock = model.LowStock()
	r.Metadata.FromModel(model.Metadata)
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetItemsResponse) FromModels(models []model.InventoryItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

type MovementResponse struct {
	ID            string  `json:"id"`
	ItemID        string  `json:"item_id"`
	MovementType  string  `json:"movement_type"`
	Quantity      int     `json:"quantity"`
	RecipientName *string `json:"recipient_name,omitempty"`
	LoggedBy      string  `json:"logged_by"`
	MovementDate  string  `json:"movement_date"`
}

func (r *MovementResponse) FromModel(model model.StockMovement) {
	r.ID = model.ID
	r.ItemID = model.ItemID
	r.MovementType = model.MovementType
	r.Quantity = model.Quantity
	r.RecipientName = model.RecipientName
	r.LoggedBy = model.LoggedBy
	r.MovementDate = model.MovementDate.Format(constant.DateFormat)
}

type GetMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMovementsResponse) FromModels(models []model.StockMovement, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Movements = make([]MovementResponse, len(models))
	for i, mod := range models {
		r.Movements[i].FromModel(mod)
	}
}
