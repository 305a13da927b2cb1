package model

import (
	"time"

	"arabina/shared/model"
	"arabina/shared/money"
)

const (
	OrderTableName  = "procurement_orders"
	OrderEntityName = "procurement_order"

	FieldOrderID       = "id"
	FieldOrderTenantID = "tenant_id"
	FieldOrderStatus   = "status"
)

const (
	LineTableName  = "procurement_order_lines"
	LineEntityName = "procurement_order_line"

	FieldLineID       = "id"
	FieldLineOrderID  = "order_id"
	FieldLineReceived = "received"
)

const (
	OrderStatusOpen      = "open"
	OrderStatusCompleted = "completed"
)

type Order struct {
	ID       string `db:"id"`
	TenantID string `db:"tenant_id"`
	Supplier string `db:"supplier"`
	Status   string `db:"status"`
	model.Metadata
}

// RejectedLine is a read row joining a rejected order line with its
// originating order.
type RejectedLine struct {
	LineID           string       `db:"line_id"`
	OrderID          string       `db:"order_id"`
	Supplier         string       `db:"supplier"`
	OrderCreatedAt   time.Time    `db:"order_created_at"`
	ProductID        string       `db:"product_id"`
	RejectedQuantity int          `db:"rejected_quantity"`
	UnitPrice        money.Amount `db:"unit_price"`
	RejectionNote    *string      `db:"rejection_note"`
	EvidenceURL      *string      `db:"evidence_url"`
}

type OrderLine struct {
	ID               string       `db:"id"`
	OrderID          string       `db:"order_id"`
	ProductID        string       `db:"product_id"`
	OrderedQuantity  int          `db:"ordered_quantity"`
	UnitPrice        money.Amount `db:"unit_price"`
	ReceivedQuantity int          `db:"received_quantity"`
	RejectedQuantity int          `db:"rejected_quantity"`
	Received         bool         `db:"received"`
	RejectionNote    *string      `db:"rejection_note"`
	EvidenceURL      *string      `db:"evidence_url"`
	model.Metadata
}
