package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arabina/config"
	"arabina/infras/kafka"
	"arabina/infras/otel"
	"arabina/internal/domains/booking/model"
	"arabina/internal/domains/booking/model/dto"
	"arabina/internal/domains/booking/repository"
	ledgerDto "arabina/internal/domains/ledger/model/dto"
	ledgerService "arabina/internal/domains/ledger/service"
	tenantModel "arabina/internal/domains/tenant/model"
	tenantRepo "arabina/internal/domains/tenant/repository"
	"arabina/shared"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	"arabina/shared/failure"

	"github.com/rs/zerolog/log"
)

const bookingRefLength = 10

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CreateByReferralCode(ctx context.Context, referralCode string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Transition(ctx context.Context, id, status string) error
	Cancel(ctx context.Context, id string) error
	Availability(ctx context.Context, referralCode, date string) (ledgerDto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo    repository.Booking
	tenants tenantRepo.Tenant
	ledger  ledgerService.Ledger
	cfg     *config.Config
	otel    otel.Otel
	kafka   kafka.Client
}

func New(repo repository.Booking, tenants tenantRepo.Tenant, ledger ledgerService.Ledger, cfg *config.Config, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:    repo,
		tenants: tenants,
		ledger:  ledger,
		cfg:     cfg,
		otel:    otel,
		kafka:   kafka,
	}
}

// Create reserves a booking for the tenant in the caller's context.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenantID := req.TenantID
	if tenantID == constant.Empty {
		tenantID, _ = ctx.Value(constant.ContextKeyTenantID).(string)
	}

	if tenantID == constant.Empty {
		return res, failure.BadRequestFromString("tenant_id is required") // nolint:wrapcheck
	}

	return s.create(ctx, tenantID, req)
}

// CreateByReferralCode reserves a booking through the public surface,
// resolving the tenant from its referral code.
func (s *serviceImpl) CreateByReferralCode(ctx context.Context, referralCode string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateByReferralCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenant, err := s.tenantByReferralCode(ctx, referralCode)
	if err != nil {
		return res, err
	}

	return s.create(ctx, tenant.ID, req)
}

func (s *serviceImpl) create(ctx context.Context, tenantID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	if req.ChildQty+req.AdultQty+req.SeniorQty <= 0 {
		return res, failure.BadRequestFromString("booking must have at least one guest") // nolint:wrapcheck
	}

	date, err := time.Parse(constant.BookingDateFormat, req.BookingDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid booking date") // nolint:wrapcheck
	}

	settings, err := s.tenants.GetSettings(ctx, tenantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get capacity settings")

		return res, fmt.Errorf("failed to get capacity settings: %w", err)
	}

	if settings.ID == constant.Empty {
		return res, failure.Conflict("tenant has no capacity configured") // nolint:wrapcheck
	}

	amount, err := s.ledger.PriceBooking(req.ChildQty, req.AdultQty, req.SeniorQty, settings)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	bookingRef, err := shared.RandomToken(constant.ReferralCodeCharset, bookingRefLength)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate booking ref")

		return res, fmt.Errorf("failed to generate booking ref: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	booking := req.ToModel(user, tenantID, bookingRef, date, amount)

	// Check-and-insert happens atomically inside ReserveTx so two
	// concurrent requests cannot both take the last seats.
	if err = s.repo.ReserveTx(ctx, booking, settings.DailyCapacity); err != nil {
		if errors.Is(err, repository.ErrCapacityExceeded) {
			return res, failure.Conflict("booking no longer available: fully booked") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to reserve booking")

		return res, fmt.Errorf("failed to reserve booking: %w", err)
	}

	s.publishEvent(ctx, constant.KafkaTopicBookingCreated, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

// Transition advances the booking along its lifecycle. Invalid moves
// are rejected; bookings are never deleted.
func (s *serviceImpl) Transition(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.ValidStatus(status) {
		return failure.BadRequestFromString("unknown booking status") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, status) {
		return failure.Conflict(fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(dto.TransitionBookingRequest{Status: status}, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if status == model.StatusCancelled {
		booking.Status = status
		s.publishEvent(ctx, constant.KafkaTopicBookingCancelled, booking)
	}

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	return s.Transition(ctx, id, model.StatusCancelled)
}

// Availability reports how many seats remain for the tenant behind the
// referral code on the given date. An unconfigured tenant answers with
// zero capacity and configured=false rather than an error.
func (s *serviceImpl) Availability(ctx context.Context, referralCode, date string) (res ledgerDto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := time.Parse(constant.BookingDateFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	tenant, err := s.tenantByReferralCode(ctx, referralCode)
	if err != nil {
		return res, err
	}

	settings, err := s.tenants.GetSettings(ctx, tenant.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get capacity settings")

		return res, fmt.Errorf("failed to get capacity settings: %w", err)
	}

	if settings.ID == constant.Empty {
		res.FromCapacity(tenant.ID, day, 0, 0, false)

		return res, nil
	}

	used, err := s.ledger.UsedCapacity(ctx, tenant.ID, day)
	if err != nil {
		return res, err
	}

	res.FromCapacity(tenant.ID, day, settings.DailyCapacity, used, true)

	return res, nil
}

func (s *serviceImpl) tenantByReferralCode(ctx context.Context, referralCode string) (tenantModel.Tenant, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    tenantModel.FieldReferralCode,
				Operator: gDto.FilterOperatorEq,
				Value:    referralCode,
				Table:    tenantModel.TableName,
			},
		},
	}

	tenant, err := s.tenants.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenant")

		return tenant, fmt.Errorf("failed to get tenant: %w", err)
	}

	if tenant.ID == constant.Empty || !tenant.Active {
		return tenant, failure.NotFound("tenant not found") // nolint:wrapcheck
	}

	return tenant, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, topic string, booking model.Booking) {
	event := dto.BookingEvent{}
	event.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, topic, kafka.Message{Key: booking.TenantID, Value: event}); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")
		}
	}()
}
