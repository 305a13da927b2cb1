package model

import (
	"time"

	"arabina/shared/model"
	"arabina/shared/money"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldTenantID    = "tenant_id"
	FieldBookingRef  = "booking_ref"
	FieldBookingDate = "booking_date"
	FieldStatus      = "status"
)

const (
	StatusPending     = "pending"
	StatusBooked      = "booked"
	StatusPaymentDone = "payment_done"
	StatusCheckedIn   = "checked_in"
	StatusCancelled   = "cancelled"
)

type Booking struct {
	ID            string       `db:"id"`
	TenantID      string       `db:"tenant_id"`
	BookingRef    string       `db:"booking_ref"`
	BookingDate   time.Time    `db:"booking_date"`
	ChildQty      int          `db:"child_qty"`
	AdultQty      int          `db:"adult_qty"`
	SeniorQty     int          `db:"senior_qty"`
	Amount        money.Amount `db:"amount"`
	Status        string       `db:"status"`
	CustomerName  *string      `db:"customer_name"`
	CustomerPhone *string      `db:"customer_phone"`
	model.Metadata
}

// Guests is the number of seats the booking occupies.
func (b Booking) Guests() int {
	return b.ChildQty + b.AdultQty + b.SeniorQty
}

// IsTerminal reports whether no further transition is allowed.
func IsTerminal(status string) bool {
	return status == StatusCheckedIn || status == StatusCancelled
}

// CanTransition validates the booking lifecycle:
// pending → booked → payment_done → checked_in, with cancellation
// allowed from any non-terminal state.
func CanTransition(from, to string) bool {
	if from == to {
		return false
	}

	if to == StatusCancelled {
		return !IsTerminal(from)
	}

	switch {
	case from == StatusPending && to == StatusBooked:
		return true
	case from == StatusBooked && to == StatusPaymentDone:
		return true
	case from == StatusPaymentDone && to == StatusCheckedIn:
		return true
	}

	return false
}

// ValidStatus reports whether the given status is a known lifecycle state.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusBooked, StatusPaymentDone, StatusCheckedIn, StatusCancelled:
		return true
	}

	return false
}
