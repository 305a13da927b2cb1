package dto

import (
	"arabina/internal/domains/stock/model"
	"arabina/shared"
	gDto "arabina/shared/dto"
	gModel "arabina/shared/model"
	"arabina/shared/timezone"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	SKU  string `json:"sku"  validate:"required,min=2,max=50"`
	Unit string `json:"unit" validate:"required,min=1,max=20"`
}

func (r *CreateProductRequest) ToModel(user, tenantID string) model.Product {
	return model.Product{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		Name:     r.Name,
		SKU:      r.SKU,
		Unit:     r.Unit,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type MoveStockRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Quantity  int     `json:"quantity"   validate:"gt=0"`
	Note      *string `json:"note"       validate:"omitempty,max=255"`
}

func (r *MoveStockRequest) ToModel(user, tenantID, direction string) model.Movement {
	return model.Movement{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		ProductID: r.ProductID,
		Direction: direction,
		Quantity:  r.Quantity,
		Note:      r.Note,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ProductResponse struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Unit     string `json:"unit"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *ProductResponse) FromModel(m model.Product) {
	r.ID = m.ID
	r.TenantID = m.TenantID
	r.Name = m.Name
	r.SKU = m.SKU
	r.Unit = m.Unit
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

type GetProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProductsResponse) FromModels(models []model.Product, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Products = make([]ProductResponse, len(models))
	for i, m := range models {
		r.Products[i].FromModel(m)
	}
}

type MovementResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Direction string  `json:"direction"`
	Quantity  int     `json:"quantity"`
	Note      *string `json:"note,omitempty"`
	gDto.Metadata
}

func (r *MovementResponse) FromModel(m model.Movement) {
	r.ID = m.ID
	r.ProductID = m.ProductID
	r.Direction = m.Direction
	r.Quantity = m.Quantity
	r.Note = m.Note
	r.Metadata.FromModel(m.Metadata)
}

type GetMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMovementsResponse) FromModels(models []model.Movement, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Movements = make([]MovementResponse, len(models))
	for i, m := range models {
		r.Movements[i].FromModel(m)
	}
}

type StockLevelResponse struct {
	ProductID string `json:"product_id"`
	Level     int    `json:"level"`
}
