package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arabina/config"
	kafkaMocks "arabina/infras/kafka/mocks"
	otelMocks "arabina/infras/otel/mocks"
	bookingMocks "arabina/internal/domains/booking/mocks"
	"arabina/internal/domains/booking/model"
	"arabina/internal/domains/booking/model/dto"
	"arabina/internal/domains/booking/repository"
	"arabina/internal/domains/booking/service"
	ledgerService "arabina/internal/domains/ledger/service"
	procurementMocks "arabina/internal/domains/procurement/mocks"
	tenantMocks "arabina/internal/domains/tenant/mocks"
	tenantModel "arabina/internal/domains/tenant/model"
	gDto "arabina/shared/dto"
	"arabina/shared/failure"
	"arabina/shared/money"
)

type deps struct {
	repo    *bookingMocks.MockBooking
	tenants *tenantMocks.MockTenant
	kafka   *kafkaMocks.MockClient
}

func newService(t *testing.T) (service.Booking, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockTenants := tenantMocks.NewMockTenant(ctrl)
	mockProcurement := procurementMocks.NewMockProcurement(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := otelMocks.NewOtel()

	// Lifecycle events go out asynchronously.
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	ledger := ledgerService.New(mockTenants, mockRepo, mockProcurement, cfg, mockOtel)

	svc := service.New(mockRepo, mockTenants, ledger, cfg, mockOtel, mockKafka)

	return svc, deps{repo: mockRepo, tenants: mockTenants, kafka: mockKafka}
}

func capacitySettings(dailyCapacity int) tenantModel.CapacitySettings {
	return tenantModel.CapacitySettings{
		ID:            "settings-id",
		TenantID:      "tenant-id",
		PriceChild:    5000,
		PriceAdult:    10000,
		PriceSenior:   7500,
		DailyCapacity: dailyCapacity,
	}
}

func activeTenant() tenantModel.Tenant {
	return tenantModel.Tenant{
		ID:           "tenant-id",
		Name:         "Warung Sederhana",
		Slug:         "warung-sederhana",
		ReferralCode: "AB12CD",
		Active:       true,
	}
}

func createReq() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		TenantID:    "tenant-id",
		BookingDate: "2026-09-01",
		ChildQty:    1,
		AdultQty:    2,
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful creation prices via settings", func(t *testing.T) {
		svc, d := newService(t)

		d.tenants.EXPECT().GetSettings(gomock.Any(), "tenant-id").Return(capacitySettings(40), nil)
		d.repo.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), 40).Return(nil)

		res, err := svc.Create(context.Background(), createReq())

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, money.Amount(1*5000+2*10000), res.Amount)
		assert.NotEmpty(t, res.BookingRef)
	})

	t.Run("fully booked maps to conflict", func(t *testing.T) {
		svc, d := newService(t)

		d.tenants.EXPECT().GetSettings(gomock.Any(), "tenant-id").Return(capacitySettings(40), nil)
		d.repo.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), 40).Return(repository.ErrCapacityExceeded)

		_, err := svc.Create(context.Background(), createReq())

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("no capacity configured", func(t *testing.T) {
		svc, d := newService(t)

		d.tenants.EXPECT().GetSettings(gomock.Any(), "tenant-id").Return(tenantModel.CapacitySettings{}, nil)

		_, err := svc.Create(context.Background(), createReq())

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("zero guests rejected", func(t *testing.T) {
		svc, _ := newService(t)

		req := createReq()
		req.ChildQty = 0
		req.AdultQty = 0

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		svc, _ := newService(t)

		req := createReq()
		req.BookingDate = "01-09-2026"

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("missing tenant rejected", func(t *testing.T) {
		svc, _ := newService(t)

		req := createReq()
		req.TenantID = ""

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_CreateByReferralCode(t *testing.T) {
	t.Run("resolves tenant from code", func(t *testing.T) {
		svc, d := newService(t)

		d.tenants.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeTenant(), nil)
		d.tenants.EXPECT().GetSettings(gomock.Any(), "tenant-id").Return(capacitySettings(40), nil)
		d.repo.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), 40).Return(nil)

		req := createReq()
		req.TenantID = ""

		res, err := svc.CreateByReferralCode(context.Background(), "AB12CD", req)

		assert.NoError(t, err)
		assert.Equal(t, "tenant-id", res.TenantID)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc, d := newService(t)

		d.tenants.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tenantModel.Tenant{}, nil)

		_, err := svc.CreateByReferralCode(context.Background(), "NOPE", createReq())

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("deactivated tenant is not bookable", func(t *testing.T) {
		svc, d := newService(t)

		tenant := activeTenant()
		tenant.Active = false

		d.tenants.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tenant, nil)

		_, err := svc.CreateByReferralCode(context.Background(), "AB12CD", createReq())

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Transition(t *testing.T) {
	booking := func(status string) model.Booking {
		return model.Booking{
			ID:          "booking-id",
			TenantID:    "tenant-id",
			BookingRef:  "REF1234567",
			BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			AdultQty:    2,
			Status:      status,
		}
	}

	t.Run("valid transition", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(model.StatusPending), nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Transition(context.Background(), "booking-id", model.StatusBooked)

		assert.NoError(t, err)
	})

	t.Run("skipping a state is a conflict", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(model.StatusPending), nil)

		err := svc.Transition(context.Background(), "booking-id", model.StatusCheckedIn)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("terminal state cannot move", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(model.StatusCheckedIn), nil)

		err := svc.Transition(context.Background(), "booking-id", model.StatusCancelled)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Transition(context.Background(), "booking-id", "confirmed")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := svc.Transition(context.Background(), "missing-id", model.StatusBooked)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("cancel from payment_done", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(model.StatusPaymentDone), nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Cancel(context.Background(), "booking-id")

		assert.NoError(t, err)
	})
}

func TestBookingService_Availability(t *testing.T) {
	t.Run("configured tenant", func(t *testing.T) {
		svc, d := newService(t)

		d.tenants.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeTenant(), nil)
		d.tenants.EXPECT().GetSettings(gomock.Any(), "tenant-id").Return(capacitySettings(40), nil)
		d.repo.EXPECT().UsedCapacity(gomock.Any(), "tenant-id", gomock.Any()).Return(25, nil)

		res, err := svc.Availability(context.Background(), "AB12CD", "2026-09-01")

		assert.NoError(t, err)
		assert.True(t, res.Configured)
		assert.Equal(t, 40, res.DailyCapacity)
		assert.Equal(t, 25, res.Used)
		assert.Equal(t, 15, res.Available)
	})

	t.Run("unconfigured tenant is flagged, not an error", func(t *testing.T) {
		svc, d := newService(t)

		d.tenants.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeTenant(), nil)
		d.tenants.EXPECT().GetSettings(gomock.Any(), "tenant-id").Return(tenantModel.CapacitySettings{}, nil)

		res, err := svc.Availability(context.Background(), "AB12CD", "2026-09-01")

		assert.NoError(t, err)
		assert.False(t, res.Configured)
		assert.Equal(t, 0, res.Available)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Availability(context.Background(), "AB12CD", "not-a-date")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

// reservingRepo reserves atomically in memory, mirroring the advisory
// lock semantics of the real repository.
type reservingRepo struct {
	mu   sync.Mutex
	used int
}

func (f *reservingRepo) ReserveTx(_ context.Context, booking model.Booking, dailyCapacity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.used+booking.Guests() > dailyCapacity {
		return repository.ErrCapacityExceeded
	}

	f.used += booking.Guests()

	return nil
}

func (f *reservingRepo) Insert(context.Context, model.Booking) error { return nil }

func (f *reservingRepo) Get(context.Context, gDto.FilterGroup, ...string) (model.Booking, error) {
	return model.Booking{}, nil
}

func (f *reservingRepo) GetAll(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.Booking, error) {
	return nil, nil
}

func (f *reservingRepo) Exist(context.Context, gDto.FilterGroup) (bool, error) { return false, nil }

func (f *reservingRepo) Count(context.Context, gDto.FilterGroup) (int, error) { return 0, nil }

func (f *reservingRepo) Update(context.Context, map[string]any, gDto.FilterGroup) error { return nil }

func (f *reservingRepo) UsedCapacity(context.Context, string, time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.used, nil
}

func TestBookingService_ConcurrentCreateNeverOversells(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockTenants := tenantMocks.NewMockTenant(ctrl)
	mockProcurement := procurementMocks.NewMockProcurement(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := otelMocks.NewOtel()

	const dailyCapacity = 10

	mockTenants.EXPECT().GetSettings(gomock.Any(), "tenant-id").Return(capacitySettings(dailyCapacity), nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo := &reservingRepo{}
	cfg := &config.Config{}
	ledger := ledgerService.New(mockTenants, repo, mockProcurement, cfg, mockOtel)
	svc := service.New(repo, mockTenants, ledger, cfg, mockOtel, mockKafka)

	const attempts = 50

	var wg sync.WaitGroup

	accepted := make(chan struct{}, attempts)

	for range attempts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			req := createReq()
			req.ChildQty = 0
			req.AdultQty = 1

			if _, err := svc.Create(context.Background(), req); err == nil {
				accepted <- struct{}{}
			}
		}()
	}

	wg.Wait()
	close(accepted)

	assert.Equal(t, dailyCapacity, len(accepted))
	assert.Equal(t, dailyCapacity, repo.used)
}
