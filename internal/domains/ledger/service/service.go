package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arabina/config"
	"arabina/infras/otel"
	bookingRepo "arabina/internal/domains/booking/repository"
	"arabina/internal/domains/ledger/model/dto"
	procurementModel "arabina/internal/domains/procurement/model"
	procurementRepo "arabina/internal/domains/procurement/repository"
	tenantModel "arabina/internal/domains/tenant/model"
	tenantRepo "arabina/internal/domains/tenant/repository"
	"arabina/shared/constant"
	"arabina/shared/money"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNegativeQuantity rejects pricing requests with quantities below zero.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	// ErrNegativePrice rejects pricing requests with unit prices below zero.
	ErrNegativePrice = errors.New("unit price must not be negative")
	// ErrQuantityInconsistency flags lines whose received+rejected exceeds
	// ordered. The shortage is still returned so callers can surface it.
	ErrQuantityInconsistency = errors.New("received and rejected quantities exceed ordered")
)

// Ledger derives capacity, pricing, and fulfillment figures from the
// booking and procurement records. It owns no table of its own.
type Ledger interface {
	AvailableCapacity(ctx context.Context, tenantID string, date time.Time) (int, error)
	UsedCapacity(ctx context.Context, tenantID string, date time.Time) (int, error)
	PriceBooking(childQty, adultQty, seniorQty int, settings tenantModel.CapacitySettings) (money.Amount, error)
	PriceLineItems(items []dto.LineItem) (money.Amount, error)
	LineShortage(line procurementModel.OrderLine) (int, error)
	RejectedGoods(ctx context.Context, tenantID string) (dto.RejectedGoodsResponse, error)
}

type serviceImpl struct {
	tenants     tenantRepo.Tenant
	bookings    bookingRepo.Booking
	procurement procurementRepo.Procurement
	cfg         *config.Config
	otel        otel.Otel
}

func New(tenants tenantRepo.Tenant, bookings bookingRepo.Booking, procurement procurementRepo.Procurement, cfg *config.Config, otel otel.Otel) Ledger {
	return &serviceImpl{
		tenants:     tenants,
		bookings:    bookings,
		procurement: procurement,
		cfg:         cfg,
		otel:        otel,
	}
}

// AvailableCapacity returns how many guests can still book the tenant
// on the given date. A tenant without capacity settings sells nothing.
func (s *serviceImpl) AvailableCapacity(ctx context.Context, tenantID string, date time.Time) (available int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableCapacity")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.tenants.GetSettings(ctx, tenantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get capacity settings")

		return 0, fmt.Errorf("failed to get capacity settings: %w", err)
	}

	if settings.ID == constant.Empty {
		return 0, nil
	}

	used, err := s.UsedCapacity(ctx, tenantID, date)
	if err != nil {
		return 0, err
	}

	if available = settings.DailyCapacity - used; available < 0 {
		available = 0
	}

	return available, nil
}

func (s *serviceImpl) UsedCapacity(ctx context.Context, tenantID string, date time.Time) (used int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UsedCapacity")
	defer scope.End()
	defer scope.TraceIfError(err)

	used, err = s.bookings.UsedCapacity(ctx, tenantID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum used capacity")

		return 0, fmt.Errorf("failed to sum used capacity: %w", err)
	}

	return used, nil
}

// PriceBooking prices a booking against the tenant's per-guest-type
// prices. Quantities below zero fail loudly instead of pricing to zero.
func (s *serviceImpl) PriceBooking(childQty, adultQty, seniorQty int, settings tenantModel.CapacitySettings) (money.Amount, error) {
	if childQty < 0 || adultQty < 0 || seniorQty < 0 {
		return 0, ErrNegativeQuantity
	}

	total := settings.PriceChild.Mul(childQty).
		Add(settings.PriceAdult.Mul(adultQty)).
		Add(settings.PriceSenior.Mul(seniorQty))

	return total, nil
}

// PriceLineItems totals already-resolved {quantity, unit price} pairs.
// An empty list prices to zero.
func (s *serviceImpl) PriceLineItems(items []dto.LineItem) (money.Amount, error) {
	var total money.Amount

	for _, item := range items {
		if item.Quantity < 0 {
			return 0, ErrNegativeQuantity
		}

		if item.UnitPrice < 0 {
			return 0, ErrNegativePrice
		}

		total = total.Add(money.Amount(item.UnitPrice).Mul(item.Quantity))
	}

	return total, nil
}

// LineShortage computes ordered − received − rejected. A negative
// shortage means the stored quantities are inconsistent; the value is
// returned as-is together with ErrQuantityInconsistency, never clamped.
func (s *serviceImpl) LineShortage(line procurementModel.OrderLine) (int, error) {
	shortage := line.OrderedQuantity - line.ReceivedQuantity - line.RejectedQuantity

	if shortage < 0 {
		return shortage, fmt.Errorf("%w: line %s ordered %d, received %d, rejected %d",
			ErrQuantityInconsistency, line.ID, line.OrderedQuantity, line.ReceivedQuantity, line.RejectedQuantity)
	}

	return shortage, nil
}

// RejectedGoods returns the tenant's rejected procurement lines grouped
// by originating order, newest order first.
func (s *serviceImpl) RejectedGoods(ctx context.Context, tenantID string) (res dto.RejectedGoodsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RejectedGoods")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.procurement.RejectedLines(ctx, tenantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rejected lines")

		return res, fmt.Errorf("failed to get rejected lines: %w", err)
	}

	res.FromRows(rows)

	return res, nil
}
