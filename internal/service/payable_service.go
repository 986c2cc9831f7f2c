package service

import (
	"context"
	"fmt"
	"time"

	"github.com/straye-as/bizdesk-api/internal/analytics"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/logger"
	"github.com/straye-as/bizdesk-api/internal/mapper"
	"github.com/straye-as/bizdesk-api/internal/metrics"
	"github.com/straye-as/bizdesk-api/internal/store"
	"go.uber.org/zap"
)

type PayableService struct {
	store     *store.Store
	assistant assistant
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

func NewPayableService(st *store.Store, generator TextGenerator, m *metrics.Metrics, logger *zap.Logger) *PayableService {
	return &PayableService{
		store:     st,
		assistant: newAssistant(generator, m, logger),
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns every payable after re-deriving due and overdue as of today
func (s *PayableService) List(ctx context.Context) []domain.PayableDTO {
	s.store.RefreshPaymentStatuses(ctx, domain.DateOf(s.now()))

	payables := s.store.Snapshot().Payables
	dtos := make([]domain.PayableDTO, len(payables))
	for i := range payables {
		dtos[i] = mapper.ToPayableDTO(&payables[i])
	}
	return dtos
}

func (s *PayableService) Create(ctx context.Context, req *domain.CreatePayableRequest) (*domain.PayableDTO, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if _, ok := findByID(s.store.Snapshot().Suppliers, req.SupplierID); !ok {
		return nil, ErrSupplierNotFound
	}

	today := domain.DateOf(s.now())
	issueDate, dueDate, err := paymentDates(req.IssueDate, req.DueDate, today)
	if err != nil {
		return nil, err
	}

	p := s.store.AddPayable(ctx, domain.Payable{
		SupplierID: req.SupplierID,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Amount:     req.Amount,
		Status:     initialPaymentStatus(dueDate, today),
	})
	logger.WithEntity(s.logger, "payable", p.ID).Info("payable created",
		zap.String("supplier_id", p.SupplierID),
		zap.Float64("amount", p.Amount))

	dto := mapper.ToPayableDTO(&p)
	return &dto, nil
}

// UpdateStatus marks a payable paid. Due and overdue can not be set by hand.
func (s *PayableService) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.PayableDTO, error) {
	// a stored due may already be overdue; compare against the derived status
	s.store.RefreshPaymentStatuses(ctx, domain.DateOf(s.now()))

	var previous domain.PaymentStatus
	p, err := s.store.UpdatePayable(ctx, id, func(p domain.Payable) (domain.Payable, error) {
		previous = p.Status
		next, err := domain.ApplyPaymentStatus(p.Status, status)
		if err != nil {
			return p, err
		}
		p.Status = next
		return p, nil
	})
	if err != nil {
		return nil, notFound(err, ErrPayableNotFound)
	}

	if previous != p.Status {
		s.metrics.StatusChanged("payable", string(p.Status))
		logger.WithEntity(s.logger, "payable", id).Info("payable status changed",
			zap.String("from", string(previous)),
			zap.String("to", string(p.Status)))
	}

	dto := mapper.ToPayableDTO(&p)
	return &dto, nil
}

// Summary proposes a payment plan for the open payables. Without open payables
// the text service is not called.
func (s *PayableService) Summary(ctx context.Context) (*domain.AiTextDTO, error) {
	s.store.RefreshPaymentStatuses(ctx, domain.DateOf(s.now()))

	open := analytics.OpenPayables(s.store.Snapshot().Payables)
	if len(open) == 0 {
		return &domain.AiTextDTO{Content: NoDuePayablesMessage}, nil
	}

	content, err := s.assistant.text(ctx, featurePayablesSummary, payablesSummaryPrompt(open))
	if err != nil {
		return nil, err
	}
	return &domain.AiTextDTO{Content: content, Generated: true}, nil
}
