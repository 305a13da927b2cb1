package service

import (
	"context"
	"fmt"

	"arabina/config"
	"arabina/infras/otel"
	"arabina/internal/domains/stock/model"
	"arabina/internal/domains/stock/model/dto"
	"arabina/internal/domains/stock/repository"
	"arabina/shared"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	"arabina/shared/failure"

	"github.com/rs/zerolog/log"
)

type Stock interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	GetProducts(ctx context.Context, params gDto.QueryParams) (dto.GetProductsResponse, error)
	StockIn(ctx context.Context, req dto.MoveStockRequest) (dto.MovementResponse, error)
	StockOut(ctx context.Context, req dto.MoveStockRequest) (dto.MovementResponse, error)
	GetMovements(ctx context.Context, productID string, params gDto.QueryParams) (dto.GetMovementsResponse, error)
	Level(ctx context.Context, productID string) (dto.StockLevelResponse, error)
}

type serviceImpl struct {
	repo repository.Stock
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Stock, cfg *config.Config, otel otel.Otel) Stock {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func tenantFromContext(ctx context.Context) (string, error) {
	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)
	if tenantID == constant.Empty {
		return constant.Empty, failure.BadRequestFromString("tenant context is required") // nolint:wrapcheck
	}

	return tenantID, nil
}

func (s *serviceImpl) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (res dto.ProductResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateProduct")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByTenant(tenantID, model.FieldProductTenantID, model.ProductTableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldProductSKU,
		Value:    req.SKU,
		Operator: gDto.FilterOperatorEq,
		Table:    model.ProductTableName,
	})

	exist, err := s.repo.ExistProduct(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check product sku")

		return res, fmt.Errorf("failed to check product sku: %w", err)
	}

	if exist {
		return res, failure.Conflict("product sku already exists") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	product := req.ToModel(user, tenantID)

	if err = s.repo.InsertProduct(ctx, product); err != nil {
		log.Error().Err(err).Msg("failed to create product")

		return res, fmt.Errorf("failed to create product: %w", err)
	}

	res.FromModel(product)

	return res, nil
}

func (s *serviceImpl) GetProducts(ctx context.Context, params gDto.QueryParams) (res dto.GetProductsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProducts")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByTenant(tenantID, model.FieldProductTenantID, model.ProductTableName)

	products, err := s.repo.GetProducts(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get products")

		return res, fmt.Errorf("failed to get products: %w", err)
	}

	count, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count products")

		return res, fmt.Errorf("failed to count products: %w", err)
	}

	res.FromModels(products, count, params.Limit)

	return res, nil
}

func (s *serviceImpl) StockIn(ctx context.Context, req dto.MoveStockRequest) (res dto.MovementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StockIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.move(ctx, req, model.DirectionIn)
}

func (s *serviceImpl) StockOut(ctx context.Context, req dto.MoveStockRequest) (res dto.MovementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StockOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.move(ctx, req, model.DirectionOut)
}

func (s *serviceImpl) move(ctx context.Context, req dto.MoveStockRequest, direction string) (res dto.MovementResponse, err error) {
	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return res, err
	}

	product, err := s.activeProduct(ctx, tenantID, req.ProductID)
	if err != nil {
		return res, err
	}

	if direction == model.DirectionOut {
		level, levelErr := s.repo.Level(ctx, tenantID, product.ID)
		if levelErr != nil {
			log.Error().Err(levelErr).Msg("failed to get stock level")

			return res, fmt.Errorf("failed to get stock level: %w", levelErr)
		}

		if req.Quantity > level {
			return res, failure.BadRequestFromString(
				fmt.Sprintf("insufficient stock: on hand %d, requested %d", level, req.Quantity)) // nolint:wrapcheck
		}
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	movement := req.ToModel(user, tenantID, direction)

	if err = s.repo.InsertMovement(ctx, movement); err != nil {
		log.Error().Err(err).Msg("failed to record stock movement")

		return res, fmt.Errorf("failed to record stock movement: %w", err)
	}

	res.FromModel(movement)

	return res, nil
}

func (s *serviceImpl) GetMovements(ctx context.Context, productID string, params gDto.QueryParams) (res dto.GetMovementsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMovements")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByTenant(tenantID, model.FieldMovementTenantID, model.MovementTableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldMovementProductID,
		Value:    productID,
		Operator: gDto.FilterOperatorEq,
		Table:    model.MovementTableName,
	})

	movements, err := s.repo.GetMovements(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stock movements")

		return res, fmt.Errorf("failed to get stock movements: %w", err)
	}

	count, err := s.repo.CountMovements(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stock movements")

		return res, fmt.Errorf("failed to count stock movements: %w", err)
	}

	res.FromModels(movements, count, params.Limit)

	return res, nil
}

func (s *serviceImpl) Level(ctx context.Context, productID string) (res dto.StockLevelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Level")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return res, err
	}

	product, err := s.activeProduct(ctx, tenantID, productID)
	if err != nil {
		return res, err
	}

	level, err := s.repo.Level(ctx, tenantID, product.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stock level")

		return res, fmt.Errorf("failed to get stock level: %w", err)
	}

	res.ProductID = product.ID
	res.Level = level

	return res, nil
}

// activeProduct loads the product and verifies it belongs to the tenant.
func (s *serviceImpl) activeProduct(ctx context.Context, tenantID, productID string) (model.Product, error) {
	product, err := s.repo.GetProduct(ctx, shared.FilterByID(productID, model.FieldProductID, model.ProductTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product")

		return product, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == constant.Empty || product.TenantID != tenantID {
		return product, failure.NotFound("product not found") // nolint:wrapcheck
	}

	return product, nil
}
