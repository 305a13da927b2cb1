package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arabina/config"
	otelMocks "arabina/infras/otel/mocks"
	bookingMocks "arabina/internal/domains/booking/mocks"
	"arabina/internal/domains/ledger/model/dto"
	"arabina/internal/domains/ledger/service"
	procurementMocks "arabina/internal/domains/procurement/mocks"
	procurementModel "arabina/internal/domains/procurement/model"
	tenantMocks "arabina/internal/domains/tenant/mocks"
	tenantModel "arabina/internal/domains/tenant/model"
	"arabina/shared/money"
)

func newService(t *testing.T) (service.Ledger, *tenantMocks.MockTenant, *bookingMocks.MockBooking, *procurementMocks.MockProcurement) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockTenants := tenantMocks.NewMockTenant(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockProcurement := procurementMocks.NewMockProcurement(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockTenants, mockBookings, mockProcurement, cfg, mockOtel)

	return svc, mockTenants, mockBookings, mockProcurement
}

func settings(priceChild, priceAdult, priceSenior int64, dailyCapacity int) tenantModel.CapacitySettings {
	return tenantModel.CapacitySettings{
		ID:            "settings-id",
		TenantID:      "tenant-id",
		PriceChild:    money.Amount(priceChild),
		PriceAdult:    money.Amount(priceAdult),
		PriceSenior:   money.Amount(priceSenior),
		DailyCapacity: dailyCapacity,
	}
}

func TestLedgerService_AvailableCapacity(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no settings means zero availability", func(t *testing.T) {
		svc, mockTenants, _, _ := newService(t)

		mockTenants.EXPECT().GetSettings(gomock.Any(), "tenant-id").Return(tenantModel.CapacitySettings{}, nil)

		available, err := svc.AvailableCapacity(context.Background(), "tenant-id", date)

		assert.NoError(t, err)
		assert.Equal(t, 0, available)
	})

	t.Run("capacity minus used", func(t *testing.T) {
		svc, mockTenants, mockBookings, _ := newService(t)

		mockTenants.EXPECT().GetSettings(gomock.Any(), "tenant-id").Return(settings(0, 0, 0, 40), nil)
		mockBookings.EXPECT().UsedCapacity(gomock.Any(), "tenant-id", date).Return(25, nil)

		available, err := svc.AvailableCapacity(context.Background(), "tenant-id", date)

		assert.NoError(t, err)
		assert.Equal(t, 15, available)
	})

	t.Run("overbooked day floors at zero", func(t *testing.T) {
		svc, mockTenants, mockBookings, _ := newService(t)

		mockTenants.EXPECT().GetSettings(gomock.Any(), "tenant-id").Return(settings(0, 0, 0, 40), nil)
		mockBookings.EXPECT().UsedCapacity(gomock.Any(), "tenant-id", date).Return(45, nil)

		available, err := svc.AvailableCapacity(context.Background(), "tenant-id", date)

		assert.NoError(t, err)
		assert.Equal(t, 0, available)
	})
}

func TestLedgerService_UsedCapacity(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no bookings means zero", func(t *testing.T) {
		svc, _, mockBookings, _ := newService(t)

		mockBookings.EXPECT().UsedCapacity(gomock.Any(), "tenant-id", date).Return(0, nil)

		used, err := svc.UsedCapacity(context.Background(), "tenant-id", date)

		assert.NoError(t, err)
		assert.Equal(t, 0, used)
	})
}

func TestLedgerService_PriceBooking(t *testing.T) {
	svc, _, _, _ := newService(t)

	tests := []struct {
		name      string
		child     int
		adult     int
		senior    int
		settings  tenantModel.CapacitySettings
		want      money.Amount
		wantErr   error
	}{
		{
			name:     "mixed party",
			child:    2,
			adult:    3,
			senior:   1,
			settings: settings(5000, 10000, 7500, 40),
			want:     money.Amount(2*5000 + 3*10000 + 1*7500),
		},
		{
			name:     "zero guests price to zero",
			settings: settings(5000, 10000, 7500, 40),
			want:     0,
		},
		{
			name:     "free pricing configured",
			child:    4,
			adult:    2,
			settings: settings(0, 0, 0, 40),
			want:     0,
		},
		{
			name:     "negative child quantity",
			child:    -1,
			adult:    2,
			settings: settings(5000, 10000, 7500, 40),
			wantErr:  service.ErrNegativeQuantity,
		},
		{
			name:     "negative senior quantity",
			senior:   -3,
			settings: settings(5000, 10000, 7500, 40),
			wantErr:  service.ErrNegativeQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.PriceBooking(tt.child, tt.adult, tt.senior, tt.settings)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedgerService_PriceLineItems(t *testing.T) {
	svc, _, _, _ := newService(t)

	tests := []struct {
		name    string
		items   []dto.LineItem
		want    money.Amount
		wantErr error
	}{
		{
			name: "sums quantity times unit price",
			items: []dto.LineItem{
				{Quantity: 3, UnitPrice: 2500},
				{Quantity: 10, UnitPrice: 120},
			},
			want: money.Amount(3*2500 + 10*120),
		},
		{
			name:  "empty list prices to zero",
			items: []dto.LineItem{},
			want:  0,
		},
		{
			name: "zero quantity line contributes nothing",
			items: []dto.LineItem{
				{Quantity: 0, UnitPrice: 9999},
				{Quantity: 1, UnitPrice: 100},
			},
			want: 100,
		},
		{
			name: "negative quantity rejected",
			items: []dto.LineItem{
				{Quantity: -2, UnitPrice: 100},
			},
			wantErr: service.ErrNegativeQuantity,
		},
		{
			name: "negative unit price rejected",
			items: []dto.LineItem{
				{Quantity: 2, UnitPrice: -100},
			},
			wantErr: service.ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.PriceLineItems(tt.items)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedgerService_LineShortage(t *testing.T) {
	svc, _, _, _ := newService(t)

	t.Run("ordered minus received minus rejected", func(t *testing.T) {
		line := procurementModel.OrderLine{OrderedQuantity: 10, ReceivedQuantity: 6, RejectedQuantity: 1}

		shortage, err := svc.LineShortage(line)

		assert.NoError(t, err)
		assert.Equal(t, 3, shortage)
	})

	t.Run("fully received means zero shortage", func(t *testing.T) {
		line := procurementModel.OrderLine{OrderedQuantity: 10, ReceivedQuantity: 10}

		shortage, err := svc.LineShortage(line)

		assert.NoError(t, err)
		assert.Equal(t, 0, shortage)
	})

	t.Run("inconsistent row surfaces negative shortage with error", func(t *testing.T) {
		line := procurementModel.OrderLine{ID: "line-1", OrderedQuantity: 5, ReceivedQuantity: 4, RejectedQuantity: 3}

		shortage, err := svc.LineShortage(line)

		assert.ErrorIs(t, err, service.ErrQuantityInconsistency)
		assert.Equal(t, -2, shortage)
	})
}

func TestLedgerService_RejectedGoods(t *testing.T) {
	svc, _, _, mockProcurement := newService(t)

	newer := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	older := time.Date(2026, 8, 10, 10, 0, 0, 0, time.UTC)

	rows := []procurementModel.RejectedLine{
		{LineID: "line-3", OrderID: "order-2", Supplier: "Pasar Induk", OrderCreatedAt: newer, ProductID: "prod-9", RejectedQuantity: 2},
		{LineID: "line-1", OrderID: "order-1", Supplier: "CV Segar", OrderCreatedAt: older, ProductID: "prod-1", RejectedQuantity: 5},
		{LineID: "line-2", OrderID: "order-1", Supplier: "CV Segar", OrderCreatedAt: older, ProductID: "prod-2", RejectedQuantity: 1},
	}

	mockProcurement.EXPECT().RejectedLines(gomock.Any(), "tenant-id").Return(rows, nil)

	res, err := svc.RejectedGoods(context.Background(), "tenant-id")

	assert.NoError(t, err)
	assert.Len(t, res.Orders, 2)

	// newest order first, lines grouped under their order
	assert.Equal(t, "order-2", res.Orders[0].OrderID)
	assert.Equal(t, "Pasar Induk", res.Orders[0].Supplier)
	assert.Len(t, res.Orders[0].Lines, 1)

	assert.Equal(t, "order-1", res.Orders[1].OrderID)
	assert.Len(t, res.Orders[1].Lines, 2)
	assert.Equal(t, "line-1", res.Orders[1].Lines[0].LineID)
}
