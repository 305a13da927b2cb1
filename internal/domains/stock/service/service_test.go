package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arabina/config"
	otelMocks "arabina/infras/otel/mocks"
	stockMocks "arabina/internal/domains/stock/mocks"
	"arabina/internal/domains/stock/model"
	"arabina/internal/domains/stock/model/dto"
	"arabina/internal/domains/stock/service"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	"arabina/shared/failure"
)

func tenantCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyTenantID, "tenant-id")

	return context.WithValue(ctx, constant.ContextKeyUserID, "user-id")
}

func newService(t *testing.T) (service.Stock, *stockMocks.MockStock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := stockMocks.NewMockStock(ctrl)

	svc := service.New(mockRepo, &config.Config{}, otelMocks.NewOtel())

	return svc, mockRepo
}

func activeProduct() model.Product {
	return model.Product{
		ID:       "product-id",
		TenantID: "tenant-id",
		Name:     "Beras Premium",
		SKU:      "RICE-001",
		Unit:     "kg",
		Active:   true,
	}
}

func TestStockService_CreateProduct(t *testing.T) {
	req := dto.CreateProductRequest{
		Name: "Beras Premium",
		SKU:  "RICE-001",
		Unit: "kg",
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().ExistProduct(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().InsertProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, product model.Product) error {
				assert.Equal(t, "tenant-id", product.TenantID)
				assert.Equal(t, "RICE-001", product.SKU)
				assert.True(t, product.Active)

				return nil
			})

		res, err := svc.CreateProduct(tenantCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Beras Premium", res.Name)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("duplicate sku rejected", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().ExistProduct(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.CreateProduct(tenantCtx(), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("missing tenant context", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.CreateProduct(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestStockService_GetProducts(t *testing.T) {
	t.Run("returns paged products", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetProducts(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Product{activeProduct()}, nil)
		mockRepo.EXPECT().CountProducts(gomock.Any(), gomock.Any()).Return(1, nil)

		res, err := svc.GetProducts(tenantCtx(), gDto.QueryParams{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Len(t, res.Products, 1)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetProducts(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := svc.GetProducts(tenantCtx(), gDto.QueryParams{Page: 1, Limit: 10})

		assert.Error(t, err)
	})
}

func TestStockService_StockIn(t *testing.T) {
	req := dto.MoveStockRequest{ProductID: "product-id", Quantity: 25}

	t.Run("records inbound movement", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(activeProduct(), nil)
		mockRepo.EXPECT().InsertMovement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, movement model.Movement) error {
				assert.Equal(t, model.DirectionIn, movement.Direction)
				assert.Equal(t, 25, movement.Quantity)
				assert.Equal(t, "tenant-id", movement.TenantID)

				return nil
			})

		res, err := svc.StockIn(tenantCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, model.DirectionIn, res.Direction)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(model.Product{}, nil)

		_, err := svc.StockIn(tenantCtx(), req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("product of another tenant", func(t *testing.T) {
		svc, mockRepo := newService(t)

		other := activeProduct()
		other.TenantID = "other-tenant"
		mockRepo.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(other, nil)

		_, err := svc.StockIn(tenantCtx(), req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestStockService_StockOut(t *testing.T) {
	t.Run("records outbound movement within on-hand level", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(activeProduct(), nil)
		mockRepo.EXPECT().Level(gomock.Any(), "tenant-id", "product-id").Return(30, nil)
		mockRepo.EXPECT().InsertMovement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, movement model.Movement) error {
				assert.Equal(t, model.DirectionOut, movement.Direction)
				assert.Equal(t, 30, movement.Quantity)

				return nil
			})

		res, err := svc.StockOut(tenantCtx(), dto.MoveStockRequest{ProductID: "product-id", Quantity: 30})

		assert.NoError(t, err)
		assert.Equal(t, model.DirectionOut, res.Direction)
	})

	t.Run("overdraw rejected", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(activeProduct(), nil)
		mockRepo.EXPECT().Level(gomock.Any(), "tenant-id", "product-id").Return(5, nil)

		_, err := svc.StockOut(tenantCtx(), dto.MoveStockRequest{ProductID: "product-id", Quantity: 6})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Contains(t, err.Error(), "insufficient stock")
	})

	t.Run("level lookup failure", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(activeProduct(), nil)
		mockRepo.EXPECT().Level(gomock.Any(), "tenant-id", "product-id").Return(0, errors.New("connection refused"))

		_, err := svc.StockOut(tenantCtx(), dto.MoveStockRequest{ProductID: "product-id", Quantity: 1})

		assert.Error(t, err)
	})
}

func TestStockService_Level(t *testing.T) {
	t.Run("returns derived level", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(activeProduct(), nil)
		mockRepo.EXPECT().Level(gomock.Any(), "tenant-id", "product-id").Return(17, nil)

		res, err := svc.Level(tenantCtx(), "product-id")

		assert.NoError(t, err)
		assert.Equal(t, 17, res.Level)
		assert.Equal(t, "product-id", res.ProductID)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(model.Product{}, nil)

		_, err := svc.Level(tenantCtx(), "product-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestStockService_GetMovements(t *testing.T) {
	t.Run("returns movement history", func(t *testing.T) {
		svc, mockRepo := newService(t)

		note := "opening balance"
		movements := []model.Movement{
			{ID: "m1", TenantID: "tenant-id", ProductID: "product-id", Direction: model.DirectionIn, Quantity: 50, Note: &note},
			{ID: "m2", TenantID: "tenant-id", ProductID: "product-id", Direction: model.DirectionOut, Quantity: 20},
		}

		mockRepo.EXPECT().GetMovements(gomock.Any(), gomock.Any(), gomock.Any()).Return(movements, nil)
		mockRepo.EXPECT().CountMovements(gomock.Any(), gomock.Any()).Return(2, nil)

		res, err := svc.GetMovements(tenantCtx(), "product-id", gDto.QueryParams{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Len(t, res.Movements, 2)
		assert.Equal(t, model.DirectionOut, res.Movements[1].Direction)
	})
}
