package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arabina/infras/otel"
	"arabina/infras/postgres"
	"arabina/internal/domains/stock/model"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	"arabina/shared/logger"
	gRepo "arabina/shared/repository"
)

// On-hand level is derived from the movement journal, never stored.
const levelQuery = `
	SELECT COALESCE(SUM(CASE WHEN direction = $1 THEN quantity ELSE -quantity END), 0)
	FROM stock_movements
	WHERE tenant_id = $2 AND product_id = $3`

type Stock interface {
	InsertProduct(ctx context.Context, product model.Product) error
	GetProduct(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Product, error)
	GetProducts(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Product, error)
	CountProducts(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ExistProduct(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateProduct(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	InsertMovement(ctx context.Context, movement model.Movement) error
	GetMovements(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Movement, error)
	CountMovements(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Level(ctx context.Context, tenantID, productID string) (int, error)
}

type repositoryImpl struct {
	products  gRepo.Repository[model.Product]
	movements gRepo.Repository[model.Movement]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Stock {
	return &repositoryImpl{
		products:  gRepo.NewRepository[model.Product](model.ProductEntityName, model.ProductTableName, model.FieldProductID, db, otel),
		movements: gRepo.NewRepository[model.Movement](model.MovementEntityName, model.MovementTableName, model.FieldMovementID, db, otel),
		db:        db,
		otel:      otel,
	}
}

func (r *repositoryImpl) InsertProduct(ctx context.Context, product model.Product) error {
	return r.products.Insert(ctx, product) //nolint:wrapcheck
}

func (r *repositoryImpl) GetProduct(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Product, error) {
	return r.products.Get(ctx, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) GetProducts(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Product, error) {
	return r.products.GetAll(ctx, params, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) CountProducts(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.products.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) ExistProduct(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return r.products.Exist(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateProduct(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return r.products.Update(ctx, req, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertMovement(ctx context.Context, movement model.Movement) error {
	return r.movements.Insert(ctx, movement) //nolint:wrapcheck
}

func (r *repositoryImpl) GetMovements(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Movement, error) {
	return r.movements.GetAll(ctx, params, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) CountMovements(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.movements.Count(ctx, filter) //nolint:wrapcheck
}

// Level sums ins minus outs for the product. No movements means zero.
func (r *repositoryImpl) Level(ctx context.Context, tenantID, productID string) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stock.Level")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, levelQuery)

	var level int

	err := r.db.Read.GetContext(ctx, &level, levelQuery, model.DirectionIn, tenantID, productID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum stock level (%s): %w", model.MovementEntityName, err)
	}

	return level, nil
}
