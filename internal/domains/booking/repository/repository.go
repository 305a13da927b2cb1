package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arabina/infras/otel"
	"arabina/infras/postgres"
	"arabina/internal/domains/booking/model"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	"arabina/shared/logger"
	gRepo "arabina/shared/repository"

	"github.com/rs/zerolog/log"
)

// ErrCapacityExceeded is returned by ReserveTx when the booking would
// push the day over the tenant's daily capacity.
var ErrCapacityExceeded = errors.New("daily capacity exceeded")

const usedCapacityQuery = `
	SELECT COALESCE(SUM(child_qty + adult_qty + senior_qty), 0)
	FROM bookings
	WHERE tenant_id = $1 AND booking_date = $2 AND status != $3`

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UsedCapacity(ctx context.Context, tenantID string, date time.Time) (int, error)
	ReserveTx(ctx context.Context, booking model.Booking, dailyCapacity int) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UsedCapacity sums the guests of every non-cancelled booking for the
// tenant on the given date. No rows means zero, not an error.
func (r *repositoryImpl) UsedCapacity(ctx context.Context, tenantID string, date time.Time) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UsedCapacity")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, usedCapacityQuery)

	var used int

	err := r.db.Read.GetContext(ctx, &used, usedCapacityQuery, tenantID, date.Format(constant.BookingDateFormat), model.StatusCancelled)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum used capacity (%s): %w", model.EntityName, err)
	}

	return used, nil
}

// ReserveTx inserts the booking only if the day still has room. The
// check and the insert run under a per-(tenant, date) advisory xact
// lock so concurrent reservations serialize instead of overselling.
func (r *repositoryImpl) ReserveTx(ctx context.Context, booking model.Booking, dailyCapacity int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ReserveTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking reservation")
			}
		}
	}()

	dateKey := booking.BookingDate.Format(constant.BookingDateFormat)

	// Lock is released automatically at commit/rollback.
	if _, err = tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", booking.TenantID+"|"+dateKey); err != nil {
		return fmt.Errorf("failed to take reservation lock (%s): %w", model.EntityName, err)
	}

	var used int
	if err = tx.GetContext(ctx, &used, usedCapacityQuery, booking.TenantID, dateKey, model.StatusCancelled); err != nil {
		return fmt.Errorf("failed to sum used capacity (%s): %w", model.EntityName, err)
	}

	if used+booking.Guests() > dailyCapacity {
		err = ErrCapacityExceeded

		return err
	}

	if err = r.Repository.InsertTx(ctx, tx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking reservation: %w", err)
	}

	return nil
}
