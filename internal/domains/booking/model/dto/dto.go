package dto

import (
	"time"

	"arabina/internal/domains/booking/model"
	"arabina/shared"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	gModel "arabina/shared/model"
	"arabina/shared/money"
	"arabina/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	TenantID      string  `json:"tenant_id"      validate:"omitempty,uuid"`
	BookingDate   string  `json:"booking_date"   validate:"required,datetime=2006-01-02"`
	ChildQty      int     `json:"child_qty"      validate:"gte=0"`
	AdultQty      int     `json:"adult_qty"      validate:"gte=0"`
	SeniorQty     int     `json:"senior_qty"     validate:"gte=0"`
	CustomerName  *string `json:"customer_name"  validate:"omitempty,max=100"`
	CustomerPhone *string `json:"customer_phone" validate:"omitempty,max=30"`
}

func (r *CreateBookingRequest) ToModel(user, tenantID, bookingRef string, date time.Time, amount money.Amount) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		BookingRef:    bookingRef,
		BookingDate:   date,
		ChildQty:      r.ChildQty,
		AdultQty:      r.AdultQty,
		SeniorQty:     r.SeniorQty,
		Amount:        amount,
		Status:        model.StatusPending,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type TransitionBookingRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending booked payment_done checked_in cancelled"`
}

type BookingResponse struct {
	ID            string       `json:"id"`
	TenantID      string       `json:"tenant_id"`
	BookingRef    string       `json:"booking_ref"`
	BookingDate   string       `json:"booking_date"`
	ChildQty      int          `json:"child_qty"`
	AdultQty      int          `json:"adult_qty"`
	SeniorQty     int          `json:"senior_qty"`
	Amount        money.Amount `json:"amount"`
	Status        string       `json:"status"`
	CustomerName  *string      `json:"customer_name,omitempty"`
	CustomerPhone *string      `json:"customer_phone,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.TenantID = m.TenantID
	r.BookingRef = m.BookingRef
	r.BookingDate = m.BookingDate.Format(constant.BookingDateFormat)
	r.ChildQty = m.ChildQty
	r.AdultQty = m.AdultQty
	r.SeniorQty = m.SeniorQty
	r.Amount = m.Amount
	r.Status = m.Status
	r.CustomerName = m.CustomerName
	r.CustomerPhone = m.CustomerPhone
	r.Metadata.FromModel(m.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}

// BookingEvent is the payload published on booking lifecycle topics.
type BookingEvent struct {
	BookingID   string       `json:"booking_id"`
	TenantID    string       `json:"tenant_id"`
	BookingRef  string       `json:"booking_ref"`
	BookingDate string       `json:"booking_date"`
	Guests      int          `json:"guests"`
	Amount      money.Amount `json:"amount"`
	Status      string       `json:"status"`
}

func (e *BookingEvent) FromModel(m model.Booking) {
	e.BookingID = m.ID
	e.TenantID = m.TenantID
	e.BookingRef = m.BookingRef
	e.BookingDate = m.BookingDate.Format(constant.BookingDateFormat)
	e.Guests = m.Guests()
	e.Amount = m.Amount
	e.Status = m.Status
}
