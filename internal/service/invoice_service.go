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

type InvoiceService struct {
	store     *store.Store
	assistant assistant
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

func NewInvoiceService(st *store.Store, generator TextGenerator, m *metrics.Metrics, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		store:     st,
		assistant: newAssistant(generator, m, logger),
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns every invoice after re-deriving due and overdue as of today
func (s *InvoiceService) List(ctx context.Context) []domain.InvoiceDTO {
	s.store.RefreshPaymentStatuses(ctx, domain.DateOf(s.now()))

	invoices := s.store.Snapshot().Invoices
	dtos := make([]domain.InvoiceDTO, len(invoices))
	for i := range invoices {
		dtos[i] = mapper.ToInvoiceDTO(&invoices[i])
	}
	return dtos
}

// Create issues an invoice. Its status follows from the due date.
func (s *InvoiceService) Create(ctx context.Context, req *domain.CreateInvoiceRequest) (*domain.InvoiceDTO, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	ds := s.store.Snapshot()
	if _, ok := findByID(ds.Customers, req.CustomerID); !ok {
		return nil, ErrCustomerNotFound
	}
	if req.ProjectID != nil {
		if _, ok := findByID(ds.Projects, *req.ProjectID); !ok {
			return nil, ErrProjectNotFound
		}
	}

	today := domain.DateOf(s.now())
	issueDate, dueDate, err := paymentDates(req.IssueDate, req.DueDate, today)
	if err != nil {
		return nil, err
	}

	inv := s.store.AddInvoice(ctx, domain.Invoice{
		CustomerID: req.CustomerID,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Amount:     req.Amount,
		Status:     initialPaymentStatus(dueDate, today),
		ProjectID:  req.ProjectID,
	})
	logger.WithEntity(s.logger, "invoice", inv.ID).Info("invoice created",
		zap.String("customer_id", inv.CustomerID),
		zap.Float64("amount", inv.Amount))

	dto := mapper.ToInvoiceDTO(&inv)
	return &dto, nil
}

// UpdateStatus marks an invoice paid. Due and overdue can not be set by hand.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.InvoiceDTO, error) {
	// a stored due may already be overdue; compare against the derived status
	s.store.RefreshPaymentStatuses(ctx, domain.DateOf(s.now()))

	var previous domain.PaymentStatus
	inv, err := s.store.UpdateInvoice(ctx, id, func(inv domain.Invoice) (domain.Invoice, error) {
		previous = inv.Status
		next, err := domain.ApplyPaymentStatus(inv.Status, status)
		if err != nil {
			return inv, err
		}
		inv.Status = next
		return inv, nil
	})
	if err != nil {
		return nil, notFound(err, ErrInvoiceNotFound)
	}

	if previous != inv.Status {
		s.metrics.StatusChanged("invoice", string(inv.Status))
		logger.WithEntity(s.logger, "invoice", id).Info("invoice status changed",
			zap.String("from", string(previous)),
			zap.String("to", string(inv.Status)))
	}

	dto := mapper.ToInvoiceDTO(&inv)
	return &dto, nil
}

// Summary analyses the overdue invoices. Without overdue invoices the text
// service is not called.
func (s *InvoiceService) Summary(ctx context.Context) (*domain.AiTextDTO, error) {
	s.store.RefreshPaymentStatuses(ctx, domain.DateOf(s.now()))

	overdue := analytics.OverdueInvoices(s.store.Snapshot().Invoices)
	if len(overdue) == 0 {
		return &domain.AiTextDTO{Content: NoOverdueInvoicesMessage}, nil
	}

	content, err := s.assistant.text(ctx, featureReceivablesSummary, receivablesSummaryPrompt(overdue))
	if err != nil {
		return nil, err
	}
	return &domain.AiTextDTO{Content: content, Generated: true}, nil
}

// Reminder drafts a payment reminder email for an invoice
func (s *InvoiceService) Reminder(ctx context.Context, id string) (*domain.AiTextDTO, error) {
	ds := s.store.Snapshot()
	inv, ok := findByID(ds.Invoices, id)
	if !ok {
		return nil, ErrInvoiceNotFound
	}
	customer, ok := findByID(ds.Customers, inv.CustomerID)
	if !ok {
		// the customer was deleted; address the reminder by the name on the invoice
		customer = domain.Customer{ID: inv.CustomerID, Name: inv.CustomerName, ContactPerson: inv.CustomerName}
	}

	overdue := domain.DateOf(inv.DueDate).Before(domain.DateOf(s.now()))
	content, err := s.assistant.text(ctx, featureReminder, reminderPrompt(inv, customer, overdue))
	if err != nil {
		return nil, err
	}
	return &domain.AiTextDTO{Content: content, Generated: true}, nil
}

// paymentDates parses the issue and due dates of a new invoice or payable.
// A missing issue date defaults to today.
func paymentDates(issue, due string, today time.Time) (time.Time, time.Time, error) {
	issueDate := today
	if issue != "" {
		d, err := domain.ParseDate(issue)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: issueDate: %v", ErrInvalidInput, err)
		}
		issueDate = d
	}
	dueDate, err := domain.ParseDate(due)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: dueDate: %v", ErrInvalidInput, err)
	}
	return issueDate, dueDate, nil
}

func initialPaymentStatus(dueDate, today time.Time) domain.PaymentStatus {
	if dueDate.Before(today) {
		return domain.PaymentStatusOverdue
	}
	return domain.PaymentStatusDue
}
