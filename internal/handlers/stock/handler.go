package stock

import (
	"net/http"

	"arabina/infras/otel"
	"arabina/internal/domains/stock/model/dto"
	"arabina/internal/domains/stock/service"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	"arabina/shared/validator"
	"arabina/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stock
	otel    otel.Otel
}

func New(service service.Stock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/stock", func(r chi.Router) {
		r.Post("/products", handler.CreateProduct)
		r.Get("/products", handler.GetProducts)
		r.Get("/products/{id}/level", handler.GetLevel)
		r.Get("/products/{id}/movements", handler.GetMovements)
		r.Post("/in", handler.StockIn)
		r.Post("/out", handler.StockOut)
	})
}

// CreateProduct registers a product for the caller's tenant.
// @Summary Create a product
// @Description Create a product with a tenant-unique SKU.
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Create Product Request"
// @Success 201 {object} response.Data[dto.ProductResponse] "Created product"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stock/products [post]
// @Security BearerAuth
func (handler *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProduct")
	defer scope.End()

	req := dto.CreateProductRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateProduct(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create product")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Product created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetProducts retrieves the caller tenant's products.
// @Summary Get all products
// @Description Retrieve products with pagination.
// @Tags Stock
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetProductsResponse] "List of products"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stock/products [get]
// @Security BearerAuth
func (handler *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProducts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	products, err := handler.service.GetProducts(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get products")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Products retrieved successfully")

	response.WithJSON(w, http.StatusOK, products)
}

// GetLevel reports the on-hand level of a product.
// @Summary Get the stock level of a product
// @Description On-hand level is the sum of stock-ins minus stock-outs.
// @Tags Stock
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Data[dto.StockLevelResponse] "Stock level"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stock/products/{id}/level [get]
// @Security BearerAuth
func (handler *Handler) GetLevel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLevel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	level, err := handler.service.Level(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock level")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock level retrieved successfully")

	response.WithJSON(w, http.StatusOK, level)
}

// GetMovements lists the movement history of a product.
// @Summary Get stock movements of a product
// @Description Retrieve the in/out movement journal for a product with pagination.
// @Tags Stock
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetMovementsResponse] "List of movements"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stock/products/{id}/movements [get]
// @Security BearerAuth
func (handler *Handler) GetMovements(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMovements")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	movements, err := handler.service.GetMovements(ctx, id, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock movements")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock movements retrieved successfully")

	response.WithJSON(w, http.StatusOK, movements)
}

// StockIn records an inbound stock movement.
// @Summary Record a stock-in
// @Description Add quantity to a product's on-hand level.
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body dto.MoveStockRequest true "Move Stock Request"
// @Success 201 {object} response.Data[dto.MovementResponse] "Recorded movement"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stock/in [post]
// @Security BearerAuth
func (handler *Handler) StockIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StockIn")
	defer scope.End()

	req := dto.MoveStockRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.StockIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record stock-in")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stock-in recorded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// StockOut records an outbound stock movement.
// @Summary Record a stock-out
// @Description Remove quantity from a product's on-hand level. Taking more than on hand is rejected.
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body dto.MoveStockRequest true "Move Stock Request"
// @Success 201 {object} response.Data[dto.MovementResponse] "Recorded movement"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stock/out [post]
// @Security BearerAuth
func (handler *Handler) StockOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StockOut")
	defer scope.End()

	req := dto.MoveStockRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.StockOut(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record stock-out")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stock-out recorded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}
