package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arabina/infras/otel"
	"arabina/infras/postgres"
	"arabina/internal/domains/procurement/model"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	"arabina/shared/logger"
	gRepo "arabina/shared/repository"

	"github.com/rs/zerolog/log"
)

const rejectedLinesQuery = `
	SELECT l.id AS line_id, l.order_id, o.supplier, o.created_at AS order_created_at,
	       l.product_id, l.rejected_quantity, l.unit_price, l.rejection_note, l.evidence_url
	FROM procurement_order_lines l
	JOIN procurement_orders o ON o.id = l.order_id
	WHERE o.tenant_id = $1 AND l.rejected_quantity > 0
	ORDER BY o.created_at DESC, l.created_at ASC`

const linesByTenantQuery = `
	SELECT l.*
	FROM procurement_order_lines l
	JOIN procurement_orders o ON o.id = l.order_id
	WHERE o.tenant_id = $1
	ORDER BY o.created_at DESC, l.created_at ASC`

type Procurement interface {
	GetOrder(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAllOrders(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	CountOrders(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateOrder(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	CreateOrderTx(ctx context.Context, order model.Order, lines []model.OrderLine) error
	GetLine(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.OrderLine, error)
	GetLines(ctx context.Context, filter gDto.FilterGroup) ([]model.OrderLine, error)
	UpdateLine(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	LinesByTenant(ctx context.Context, tenantID string) ([]model.OrderLine, error)
	RejectedLines(ctx context.Context, tenantID string) ([]model.RejectedLine, error)
}

type repositoryImpl struct {
	orders gRepo.Repository[model.Order]
	lines  gRepo.Repository[model.OrderLine]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Procurement {
	return &repositoryImpl{
		orders: gRepo.NewRepository[model.Order](model.OrderEntityName, model.OrderTableName, model.FieldOrderID, db, otel),
		lines:  gRepo.NewRepository[model.OrderLine](model.LineEntityName, model.LineTableName, model.FieldLineID, db, otel),
		db:     db,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetOrder(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error) {
	return r.orders.Get(ctx, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAllOrders(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error) {
	return r.orders.GetAll(ctx, params, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) CountOrders(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.orders.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateOrder(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return r.orders.Update(ctx, req, filter) //nolint:wrapcheck
}

// CreateOrderTx inserts the order and all of its lines in one transaction.
func (r *repositoryImpl) CreateOrderTx(ctx context.Context, order model.Order, lines []model.OrderLine) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".procurement.CreateOrderTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction (%s): %w", model.OrderEntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback order creation")
			}
		}
	}()

	if err = r.orders.InsertTx(ctx, tx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if err = r.lines.InsertBulkTx(ctx, tx, lines); err != nil {
		return fmt.Errorf("failed to insert order lines: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order creation: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetLine(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.OrderLine, error) {
	return r.lines.Get(ctx, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) GetLines(ctx context.Context, filter gDto.FilterGroup) ([]model.OrderLine, error) {
	return r.lines.GetAll(ctx, gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateLine(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return r.lines.Update(ctx, req, filter) //nolint:wrapcheck
}

// LinesByTenant returns every order line belonging to the tenant's
// orders, newest order first.
func (r *repositoryImpl) LinesByTenant(ctx context.Context, tenantID string) ([]model.OrderLine, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".procurement.LinesByTenant")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, linesByTenantQuery)

	rows := []model.OrderLine{}

	err := r.db.Read.SelectContext(ctx, &rows, linesByTenantQuery, tenantID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get order lines (%s): %w", model.LineEntityName, err)
	}

	return rows, nil
}

// RejectedLines returns every rejected line for the tenant joined with
// its order, newest order first.
func (r *repositoryImpl) RejectedLines(ctx context.Context, tenantID string) ([]model.RejectedLine, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".procurement.RejectedLines")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, rejectedLinesQuery)

	rows := []model.RejectedLine{}

	err := r.db.Read.SelectContext(ctx, &rows, rejectedLinesQuery, tenantID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get rejected lines (%s): %w", model.LineEntityName, err)
	}

	return rows, nil
}
