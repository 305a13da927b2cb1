package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arabina/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to booked", model.StatusPending, model.StatusBooked, true},
		{"booked to payment_done", model.StatusBooked, model.StatusPaymentDone, true},
		{"payment_done to checked_in", model.StatusPaymentDone, model.StatusCheckedIn, true},
		{"pending to payment_done skips booked", model.StatusPending, model.StatusPaymentDone, false},
		{"pending to checked_in skips everything", model.StatusPending, model.StatusCheckedIn, false},
		{"booked to pending moves backwards", model.StatusBooked, model.StatusPending, false},
		{"checked_in to payment_done moves backwards", model.StatusCheckedIn, model.StatusPaymentDone, false},
		{"pending to cancelled", model.StatusPending, model.StatusCancelled, true},
		{"booked to cancelled", model.StatusBooked, model.StatusCancelled, true},
		{"payment_done to cancelled", model.StatusPaymentDone, model.StatusCancelled, true},
		{"checked_in to cancelled is terminal", model.StatusCheckedIn, model.StatusCancelled, false},
		{"cancelled to cancelled", model.StatusCancelled, model.StatusCancelled, false},
		{"cancelled to booked is terminal", model.StatusCancelled, model.StatusBooked, false},
		{"same state no-op", model.StatusBooked, model.StatusBooked, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, model.IsTerminal(model.StatusCheckedIn))
	assert.True(t, model.IsTerminal(model.StatusCancelled))
	assert.False(t, model.IsTerminal(model.StatusPending))
	assert.False(t, model.IsTerminal(model.StatusBooked))
	assert.False(t, model.IsTerminal(model.StatusPaymentDone))
}

func TestGuests(t *testing.T) {
	b := model.Booking{ChildQty: 2, AdultQty: 3, SeniorQty: 1}

	assert.Equal(t, 6, b.Guests())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, model.ValidStatus(model.StatusPending))
	assert.True(t, model.ValidStatus(model.StatusCancelled))
	assert.False(t, model.ValidStatus("confirmed"))
	assert.False(t, model.ValidStatus(""))
}
