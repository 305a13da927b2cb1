package dto

import (
	"time"

	procurementModel "arabina/internal/domains/procurement/model"
	"arabina/shared/constant"
	"arabina/shared/money"
)

type LineItem struct {
	Quantity  int   `json:"quantity"   validate:"gte=0"`
	UnitPrice int64 `json:"unit_price" validate:"gte=0"`
}

type PriceLineItemsRequest struct {
	Items []LineItem `json:"items" validate:"required,dive"`
}

type PriceResponse struct {
	Total money.Amount `json:"total"`
}

type RejectedLineResponse struct {
	LineID           string       `json:"line_id"`
	ProductID        string       `json:"product_id"`
	RejectedQuantity int          `json:"rejected_quantity"`
	UnitPrice        money.Amount `json:"unit_price"`
	RejectionNote    *string      `json:"rejection_note,omitempty"`
	EvidenceURL      *string      `json:"evidence_url,omitempty"`
}

// RejectedOrderGroup collects the rejected lines of one order, tagged
// with the order's supplier label.
type RejectedOrderGroup struct {
	OrderID   string                 `json:"order_id"`
	Supplier  string                 `json:"supplier"`
	OrderedAt string                 `json:"ordered_at"`
	Lines     []RejectedLineResponse `json:"lines"`
}

type RejectedGoodsResponse struct {
	Orders []RejectedOrderGroup `json:"orders"`
}

// FromRows groups the flat rows per order, preserving their order
// (rows arrive newest order first).
func (r *RejectedGoodsResponse) FromRows(rows []procurementModel.RejectedLine) {
	r.Orders = []RejectedOrderGroup{}

	index := map[string]int{}

	for _, row := range rows {
		line := RejectedLineResponse{
			LineID:           row.LineID,
			ProductID:        row.ProductID,
			RejectedQuantity: row.RejectedQuantity,
			UnitPrice:        row.UnitPrice,
			RejectionNote:    row.RejectionNote,
			EvidenceURL:      row.EvidenceURL,
		}

		pos, ok := index[row.OrderID]
		if !ok {
			r.Orders = append(r.Orders, RejectedOrderGroup{
				OrderID:   row.OrderID,
				Supplier:  row.Supplier,
				OrderedAt: row.OrderCreatedAt.Format(time.RFC3339),
			})

			pos = len(r.Orders) - 1
			index[row.OrderID] = pos
		}

		r.Orders[pos].Lines = append(r.Orders[pos].Lines, line)
	}
}

type AvailabilityResponse struct {
	TenantID      string `json:"tenant_id"`
	Date          string `json:"date"`
	DailyCapacity int    `json:"daily_capacity"`
	Used          int    `json:"used"`
	Available     int    `json:"available"`
	// Configured distinguishes "no capacity settings" from "fully booked".
	Configured bool `json:"configured"`
}

func (r *AvailabilityResponse) FromCapacity(tenantID string, date time.Time, dailyCapacity, used int, configured bool) {
	r.TenantID = tenantID
	r.Date = date.Format(constant.BookingDateFormat)
	r.DailyCapacity = dailyCapacity
	r.Used = used
	r.Configured = configured

	if available := dailyCapacity - used; available > 0 {
		r.Available = available
	}
}
