package procurement

import (
	"net/http"

	"arabina/infras/otel"
	"arabina/internal/domains/procurement/model/dto"
	"arabina/internal/domains/procurement/service"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	"arabina/shared/validator"
	"arabina/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Procurement
	otel    otel.Otel
}

func New(service service.Procurement, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/procurement", func(r chi.Router) {
		r.Post("/orders", handler.CreateOrder)
		r.Get("/orders", handler.GetOrders)
		r.Get("/orders/{id}", handler.GetOrderByID)
		r.Post("/lines/{id}/receive", handler.ReceiveLine)
		r.Post("/lines/{id}/evidence", handler.UploadEvidence)
		r.Get("/shortages", handler.GetShortageReport)
		r.Get("/rejected", handler.GetRejectedGoods)
	})
}

// CreateOrder creates a procurement order with its lines.
// @Summary Create a procurement order
// @Description Create an order and its lines in one transaction for the caller's tenant.
// @Tags Procurement
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} response.Data[dto.OrderResponse] "Created order"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procurement/orders [post]
// @Security BearerAuth
func (handler *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Order created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetOrders retrieves the caller tenant's procurement orders.
// @Summary Get all procurement orders
// @Description Retrieve procurement orders with pagination.
// @Tags Procurement
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetOrdersResponse] "List of orders"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procurement/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	orders, err := handler.service.GetAllOrders(ctx, queryParams, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Orders retrieved successfully")

	response.WithJSON(w, http.StatusOK, orders)
}

// GetOrderByID retrieves a procurement order and its lines.
// @Summary Get a procurement order by ID
// @Description Retrieve an order with all of its lines.
// @Tags Procurement
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Data[dto.OrderResponse] "Order details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procurement/orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrderByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	order, err := handler.service.GetOrder(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order retrieved successfully")

	response.WithJSON(w, http.StatusOK, order)
}

// ReceiveLine records what arrived for an order line.
// @Summary Receive an order line
// @Description Record received and rejected quantities for a line. A line can be received exactly once.
// @Tags Procurement
// @Accept json
// @Produce json
// @Param id path string true "Order Line ID"
// @Param request body dto.ReceiveLineRequest true "Receive Line Request"
// @Success 200 {object} response.Message "Order line received successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procurement/lines/{id}/receive [post]
// @Security BearerAuth
func (handler *Handler) ReceiveLine(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReceiveLine")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ReceiveLineRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReceiveLine(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to receive order line")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Order line received successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Order line received successfully")
}

// UploadEvidence attaches a rejection photo to an order line.
// @Summary Upload rejection evidence
// @Description Upload a photo of rejected goods to S3 and store its URL on the line.
// @Tags Procurement
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Order Line ID"
// @Param file formData file true "Evidence image"
// @Success 200 {object} response.Data[dto.UploadEvidenceResponse] "Evidence uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procurement/lines/{id}/evidence [post]
// @Security BearerAuth
func (handler *Handler) UploadEvidence(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadEvidence")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadEvidenceRequest{
		Evidence:     fileHeader,
		EvidenceFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate evidence file")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadEvidence(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload evidence")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Evidence uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// GetShortageReport lists per-line shortages for the caller's tenant.
// @Summary Get the shortage report
// @Description For every order line, report ordered minus received minus rejected. Inconsistent rows are flagged, not hidden.
// @Tags Procurement
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ShortageReportResponse] "Shortage report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procurement/shortages [get]
// @Security BearerAuth
func (handler *Handler) GetShortageReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShortageReport")
	defer scope.End()

	report, err := handler.service.ShortageReport(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build shortage report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shortage report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetRejectedGoods lists rejected lines grouped by order, newest first.
// @Summary Get rejected goods
// @Description Rejected procurement lines grouped by originating order with the supplier label.
// @Tags Procurement
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[ledgerDto.RejectedGoodsResponse] "Rejected goods"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procurement/rejected [get]
// @Security BearerAuth
func (handler *Handler) GetRejectedGoods(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRejectedGoods")
	defer scope.End()

	rejected, err := handler.service.RejectedList(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rejected goods")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rejected goods retrieved successfully")

	response.WithJSON(w, http.StatusOK, rejected)
}
