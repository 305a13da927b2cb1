package service

import (
	"context"
	"errors"
	"fmt"

	"arabina/config"
	"arabina/infras/kafka"
	"arabina/infras/otel"
	"arabina/infras/s3"
	ledgerDto "arabina/internal/domains/ledger/model/dto"
	ledgerService "arabina/internal/domains/ledger/service"
	"arabina/internal/domains/procurement/model"
	"arabina/internal/domains/procurement/model/dto"
	"arabina/internal/domains/procurement/repository"
	"arabina/shared"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	"arabina/shared/failure"
	"arabina/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Procurement interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	GetOrder(ctx context.Context, id string) (dto.OrderResponse, error)
	GetAllOrders(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
	ReceiveLine(ctx context.Context, lineID string, req dto.ReceiveLineRequest) error
	ShortageReport(ctx context.Context) (dto.ShortageReportResponse, error)
	RejectedList(ctx context.Context) (ledgerDto.RejectedGoodsResponse, error)
	UploadEvidence(ctx context.Context, lineID string, req dto.UploadEvidenceRequest) (dto.UploadEvidenceResponse, error)
}

type serviceImpl struct {
	repo   repository.Procurement
	ledger ledgerService.Ledger
	cfg    *config.Config
	otel   otel.Otel
	kafka  kafka.Client
	s3     s3.S3
}

func New(repo repository.Procurement, ledger ledgerService.Ledger, cfg *config.Config, otel otel.Otel, kafka kafka.Client, s3 s3.S3) Procurement {
	return &serviceImpl{
		repo:   repo,
		ledger: ledger,
		cfg:    cfg,
		otel:   otel,
		kafka:  kafka,
		s3:     s3,
	}
}

func tenantFromContext(ctx context.Context) (string, error) {
	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)
	if tenantID == constant.Empty {
		return constant.Empty, failure.BadRequestFromString("tenant context is required") // nolint:wrapcheck
	}

	return tenantID, nil
}

func (s *serviceImpl) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	order := req.ToModel(user, tenantID)
	lines := req.ToLineModels(user, order.ID)

	if err = s.repo.CreateOrderTx(ctx, order, lines); err != nil {
		log.Error().Err(err).Msg("failed to create order")

		return res, fmt.Errorf("failed to create order: %w", err)
	}

	res.FromModel(order)
	res.WithLines(lines)

	return res, nil
}

func (s *serviceImpl) GetOrder(ctx context.Context, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.repo.GetOrder(ctx, shared.FilterByID(id, model.FieldOrderID, model.OrderTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return res, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return res, failure.NotFound("order not found") // nolint:wrapcheck
	}

	lines, err := s.repo.GetLines(ctx, shared.FilterByID(order.ID, model.FieldLineOrderID, model.LineTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order lines")

		return res, fmt.Errorf("failed to get order lines: %w", err)
	}

	res.FromModel(order)
	res.WithLines(lines)

	return res, nil
}

func (s *serviceImpl) GetAllOrders(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllOrders")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.CountOrders(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	orders, err := s.repo.GetAllOrders(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	res.FromModels(orders, total, params.Limit)

	return res, nil
}

// ReceiveLine records the received/rejected split for a line. A line is
// received exactly once; the second attempt is a conflict.
func (s *serviceImpl) ReceiveLine(ctx context.Context, lineID string, req dto.ReceiveLineRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReceiveLine")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(lineID, model.FieldLineID, model.LineTableName)

	line, err := s.repo.GetLine(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order line")

		return fmt.Errorf("failed to get order line: %w", err)
	}

	if line.ID == constant.Empty {
		return failure.NotFound("order line not found") // nolint:wrapcheck
	}

	if line.Received {
		return failure.Conflict("order line already received") // nolint:wrapcheck
	}

	if req.ReceivedQuantity+req.RejectedQuantity > line.OrderedQuantity {
		return failure.BadRequestFromString("received and rejected quantities exceed ordered quantity") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		"received_quantity":      req.ReceivedQuantity,
		"rejected_quantity":      req.RejectedQuantity,
		"received":               true,
		"rejection_note":         req.RejectionNote,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.UpdateLine(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update order line")

		return fmt.Errorf("failed to update order line: %w", err)
	}

	s.completeOrderIfDone(ctx, line.OrderID, lineID, user)

	event := dto.ReceiveEvent{
		LineID:           lineID,
		OrderID:          line.OrderID,
		ProductID:        line.ProductID,
		ReceivedQuantity: req.ReceivedQuantity,
		RejectedQuantity: req.RejectedQuantity,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, constant.KafkaTopicProcurementReceived, kafka.Message{Key: line.OrderID, Value: event}); err != nil {
			log.Error().Err(err).Msg("failed to publish receive event")
		}
	}()

	return nil
}

// completeOrderIfDone marks the order completed once every line has
// been received. Best effort: a failure here never fails the receive.
func (s *serviceImpl) completeOrderIfDone(ctx context.Context, orderID, justReceivedLineID, user string) {
	lines, err := s.repo.GetLines(ctx, shared.FilterByID(orderID, model.FieldLineOrderID, model.LineTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check order completion")

		return
	}

	for _, l := range lines {
		if !l.Received && l.ID != justReceivedLineID {
			return
		}
	}

	updatedFields := map[string]any{
		model.FieldOrderStatus:   model.OrderStatusCompleted,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.UpdateOrder(ctx, updatedFields, shared.FilterByID(orderID, model.FieldOrderID, model.OrderTableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark order completed")
	}
}

// ShortageReport lists, per line, how much is still expected from the
// supplier. Inconsistent rows are flagged and surfaced, never clamped.
func (s *serviceImpl) ShortageReport(ctx context.Context) (res dto.ShortageReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ShortageReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return res, err
	}

	lines, err := s.repo.LinesByTenant(ctx, tenantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order lines")

		return res, fmt.Errorf("failed to get order lines: %w", err)
	}

	res.Lines = make([]dto.ShortageLine, len(lines))

	for i, line := range lines {
		shortage, shortageErr := s.ledger.LineShortage(line)

		res.Lines[i] = dto.ShortageLine{
			LineID:       line.ID,
			OrderID:      line.OrderID,
			ProductID:    line.ProductID,
			Ordered:      line.OrderedQuantity,
			Received:     line.ReceivedQuantity,
			Rejected:     line.RejectedQuantity,
			Shortage:     shortage,
			Inconsistent: errors.Is(shortageErr, ledgerService.ErrQuantityInconsistency),
		}

		if res.Lines[i].Inconsistent {
			log.Warn().Str("line_id", line.ID).Int("shortage", shortage).Msg("inconsistent fulfillment quantities")
		}
	}

	return res, nil
}

func (s *serviceImpl) RejectedList(ctx context.Context) (res ledgerDto.RejectedGoodsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RejectedList")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return res, err
	}

	return s.ledger.RejectedGoods(ctx, tenantID)
}

// UploadEvidence stores a rejection photo in S3 and records its URL on
// the line.
func (s *serviceImpl) UploadEvidence(ctx context.Context, lineID string, req dto.UploadEvidenceRequest) (res dto.UploadEvidenceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadEvidence")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(lineID, model.FieldLineID, model.LineTableName)

	line, err := s.repo.GetLine(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order line")

		return res, fmt.Errorf("failed to get order line: %w", err)
	}

	if line.ID == constant.Empty {
		return res, failure.NotFound("order line not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.LineEntityName, req.EvidenceFile, req.Evidence, req.Evidence.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload evidence to S3")

		return res, fmt.Errorf("failed to upload evidence to S3: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		"evidence_url":           url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.UpdateLine(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to record evidence url")

		return res, fmt.Errorf("failed to record evidence url: %w", err)
	}

	res.URL = url
	res.FileName = req.Evidence.Filename

	return res, nil
}
