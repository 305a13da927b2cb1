package ledger

import (
	"net/http"

	"arabina/infras/otel"
	"arabina/internal/domains/ledger/model/dto"
	"arabina/internal/domains/ledger/service"
	"arabina/shared/constant"
	"arabina/shared/validator"
	"arabina/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/ledger", func(r chi.Router) {
		r.Post("/price", handler.PriceLineItems)
	})
}

// PriceLineItems prices a list of already-resolved line items.
// @Summary Price line items
// @Description Sum quantity times unit price over the given items. Negative quantities or prices are rejected.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body dto.PriceLineItemsRequest true "Price Line Items Request"
// @Success 200 {object} response.Data[dto.PriceResponse] "Total price"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/price [post]
// @Security BearerAuth
func (handler *Handler) PriceLineItems(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PriceLineItems")
	defer scope.End()

	req := dto.PriceLineItemsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	total, err := handler.service.PriceLineItems(req.Items)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to price line items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Line items priced successfully")

	response.WithJSON(w, http.StatusOK, dto.PriceResponse{Total: total})
}
