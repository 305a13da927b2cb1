package dto

import (
	"mime/multipart"

	"arabina/internal/domains/procurement/model"
	"arabina/shared"
	gDto "arabina/shared/dto"
	gModel "arabina/shared/model"
	"arabina/shared/money"
	"arabina/shared/timezone"

	"github.com/google/uuid"
)

type CreateOrderLineRequest struct {
	ProductID       string `json:"product_id"       validate:"required,uuid"`
	OrderedQuantity int    `json:"ordered_quantity" validate:"gt=0"`
	UnitPrice       int64  `json:"unit_price"       validate:"gte=0"`
}

type CreateOrderRequest struct {
	Supplier string                   `json:"supplier" validate:"required,min=2,max=100"`
	Lines    []CreateOrderLineRequest `json:"lines"    validate:"required,min=1,dive"`
}

func (r *CreateOrderRequest) ToModel(user, tenantID string) model.Order {
	return model.Order{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		Supplier: r.Supplier,
		Status:   model.OrderStatusOpen,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (r *CreateOrderRequest) ToLineModels(user, orderID string) []model.OrderLine {
	lines := make([]model.OrderLine, len(r.Lines))

	for i, l := range r.Lines {
		lines[i] = model.OrderLine{
			ID:              uuid.NewString(),
			OrderID:         orderID,
			ProductID:       l.ProductID,
			OrderedQuantity: l.OrderedQuantity,
			UnitPrice:       money.Amount(l.UnitPrice),
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return lines
}

type ReceiveLineRequest struct {
	ReceivedQuantity int     `json:"received_quantity" validate:"gte=0"`
	RejectedQuantity int     `json:"rejected_quantity" validate:"gte=0"`
	RejectionNote    *string `json:"rejection_note"    validate:"omitempty,max=500"`
}

type OrderLineResponse struct {
	ID               string       `json:"id"`
	OrderID          string       `json:"order_id"`
	ProductID        string       `json:"product_id"`
	OrderedQuantity  int          `json:"ordered_quantity"`
	UnitPrice        money.Amount `json:"unit_price"`
	ReceivedQuantity int          `json:"received_quantity"`
	RejectedQuantity int          `json:"rejected_quantity"`
	Received         bool         `json:"received"`
	RejectionNote    *string      `json:"rejection_note,omitempty"`
	EvidenceURL      *string      `json:"evidence_url,omitempty"`
}

func (r *OrderLineResponse) FromModel(m model.OrderLine) {
	r.ID = m.ID
	r.OrderID = m.OrderID
	r.ProductID = m.ProductID
	r.OrderedQuantity = m.OrderedQuantity
	r.UnitPrice = m.UnitPrice
	r.ReceivedQuantity = m.ReceivedQuantity
	r.RejectedQuantity = m.RejectedQuantity
	r.Received = m.Received
	r.RejectionNote = m.RejectionNote
	r.EvidenceURL = m.EvidenceURL
}

type OrderResponse struct {
	ID       string              `json:"id"`
	TenantID string              `json:"tenant_id"`
	Supplier string              `json:"supplier"`
	Status   string              `json:"status"`
	Lines    []OrderLineResponse `json:"lines,omitempty"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(m model.Order) {
	r.ID = m.ID
	r.TenantID = m.TenantID
	r.Supplier = m.Supplier
	r.Status = m.Status
	r.Metadata.FromModel(m.Metadata)
}

func (r *OrderResponse) WithLines(lines []model.OrderLine) {
	r.Lines = make([]OrderLineResponse, len(lines))
	for i, l := range lines {
		r.Lines[i].FromModel(l)
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]OrderResponse, len(models))
	for i, m := range models {
		r.Orders[i].FromModel(m)
	}
}

// ShortageLine is one row of the auto-suggest report. Shortage is
// ordered − received − rejected and may be negative when the stored
// quantities are inconsistent; Inconsistent flags such rows.
type ShortageLine struct {
	LineID       string `json:"line_id"`
	OrderID      string `json:"order_id"`
	ProductID    string `json:"product_id"`
	Ordered      int    `json:"ordered"`
	Received     int    `json:"received"`
	Rejected     int    `json:"rejected"`
	Shortage     int    `json:"shortage"`
	Inconsistent bool   `json:"inconsistent"`
}

type ShortageReportResponse struct {
	Lines []ShortageLine `json:"lines"`
}

type UploadEvidenceRequest struct {
	Evidence     *multipart.FileHeader `json:"evidence" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	EvidenceFile multipart.File        `json:"-"`
}

type UploadEvidenceResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

// ReceiveEvent is the payload published when a line is received.
type ReceiveEvent struct {
	LineID           string `json:"line_id"`
	OrderID          string `json:"order_id"`
	ProductID        string `json:"product_id"`
	ReceivedQuantity int    `json:"received_quantity"`
	RejectedQuantity int    `json:"rejected_quantity"`
}
