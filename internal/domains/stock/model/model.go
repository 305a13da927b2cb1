package model

import (
	"arabina/shared/model"
)

const (
	ProductTableName  = "products"
	ProductEntityName = "product"

	FieldProductID       = "id"
	FieldProductTenantID = "tenant_id"
	FieldProductSKU      = "sku"
	FieldProductActive   = "active"
)

const (
	MovementTableName  = "stock_movements"
	MovementEntityName = "stock_movement"

	FieldMovementID        = "id"
	FieldMovementTenantID  = "tenant_id"
	FieldMovementProductID = "product_id"
)

const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

type Product struct {
	ID       string `db:"id"`
	TenantID string `db:"tenant_id"`
	Name     string `db:"name"`
	SKU      string `db:"sku"`
	Unit     string `db:"unit"`
	Active   bool   `db:"active"`
	model.Metadata
}

// Movement is one stock-in or stock-out entry. On-hand level is the
// sum of ins minus the sum of outs, never stored.
type Movement struct {
	ID        string  `db:"id"`
	TenantID  string  `db:"tenant_id"`
	ProductID string  `db:"product_id"`
	Direction string  `db:"direction"`
	Quantity  int     `db:"quantity"`
	Note      *string `db:"note"`
	model.Metadata
}
