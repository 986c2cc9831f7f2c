package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/straye-as/bizdesk-api/internal/analytics"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/logger"
	"github.com/straye-as/bizdesk-api/internal/mapper"
	"github.com/straye-as/bizdesk-api/internal/metrics"
	"github.com/straye-as/bizdesk-api/internal/procurement"
	"github.com/straye-as/bizdesk-api/internal/store"
	"go.uber.org/zap"
)

type OfferService struct {
	store     *store.Store
	assistant assistant
	selector  procurement.QuoteSelector
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

func NewOfferService(
	st *store.Store,
	generator TextGenerator,
	selector procurement.QuoteSelector,
	m *metrics.Metrics,
	logger *zap.Logger,
) *OfferService {
	if selector == nil {
		selector = procurement.FirstQuote
	}
	return &OfferService{
		store:     st,
		assistant: newAssistant(generator, m, logger),
		selector:  selector,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *OfferService) List(ctx context.Context) []domain.OfferDTO {
	offers := s.store.Snapshot().Offers
	dtos := make([]domain.OfferDTO, len(offers))
	for i := range offers {
		dtos[i] = mapper.ToOfferDTO(&offers[i])
	}
	return dtos
}

func (s *OfferService) GetByID(ctx context.Context, id string) (*domain.OfferDTO, error) {
	offer, ok := findByID(s.store.Snapshot().Offers, id)
	if !ok {
		return nil, ErrOfferNotFound
	}
	dto := mapper.ToOfferDTO(&offer)
	return &dto, nil
}

// Create opens a new offer with status new, no items and no price
func (s *OfferService) Create(ctx context.Context, req *domain.CreateOfferRequest) (*domain.OfferDTO, error) {
	ds := s.store.Snapshot()
	if _, ok := findByID(ds.Customers, req.CustomerID); !ok {
		return nil, ErrCustomerNotFound
	}
	if req.ProjectID != nil {
		if _, ok := findByID(ds.Projects, *req.ProjectID); !ok {
			return nil, ErrProjectNotFound
		}
	}

	issueDate := domain.DateOf(s.now())
	if req.IssueDate != "" {
		d, err := domain.ParseDate(req.IssueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: issueDate: %v", ErrInvalidInput, err)
		}
		issueDate = d
	}
	validUntil, err := domain.ParseDate(req.ValidUntil)
	if err != nil {
		return nil, fmt.Errorf("%w: validUntil: %v", ErrInvalidInput, err)
	}

	offer := s.store.AddOffer(ctx, domain.Offer{
		CustomerID: req.CustomerID,
		Subject:    req.Subject,
		IssueDate:  issueDate,
		ValidUntil: validUntil,
		Status:     domain.OfferStatusNew,
		Items:      []domain.OfferItem{},
		ProjectID:  req.ProjectID,
	})
	logger.WithEntity(s.logger, "offer", offer.ID).Info("offer created",
		zap.String("customer_id", offer.CustomerID))

	dto := mapper.ToOfferDTO(&offer)
	return &dto, nil
}

// Update replaces the subject, validity, items and selling price of an offer.
// Offers whose purchase orders were generated can no longer be edited.
func (s *OfferService) Update(ctx context.Context, id string, req *domain.UpdateOfferRequest) (*domain.OfferDTO, error) {
	validUntil, err := domain.ParseDate(req.ValidUntil)
	if err != nil {
		return nil, fmt.Errorf("%w: validUntil: %v", ErrInvalidInput, err)
	}

	ds := s.store.Snapshot()
	if req.ProjectID != nil {
		if _, ok := findByID(ds.Projects, *req.ProjectID); !ok {
			return nil, ErrProjectNotFound
		}
	}
	items := mapper.ToOfferItems(req.Items, store.NewOfferItemID)
	fillQuoteSupplierNames(items, ds.Suppliers)

	offer, err := s.store.UpdateOffer(ctx, id, func(o domain.Offer) (domain.Offer, error) {
		if o.Status.IsTerminal() {
			return o, ErrOfferStatusLocked
		}
		o.Subject = req.Subject
		o.ValidUntil = validUntil
		o.Items = items
		o.TotalSellingPrice = req.TotalSellingPrice
		o.ProjectID = req.ProjectID
		return o, nil
	})
	if err != nil {
		return nil, s.offerError(err, "update")
	}

	logger.WithEntity(s.logger, "offer", id).Info("offer updated",
		zap.Int("items", len(offer.Items)),
		zap.Float64("total_selling_price", offer.TotalSellingPrice))

	dto := mapper.ToOfferDTO(&offer)
	return &dto, nil
}

// UpdateStatus moves an offer to a new status. Accepting records the commission once.
func (s *OfferService) UpdateStatus(ctx context.Context, id string, status domain.OfferStatus) (*domain.OfferDTO, error) {
	var previous domain.Offer
	offer, err := s.store.UpdateOffer(ctx, id, func(o domain.Offer) (domain.Offer, error) {
		previous = o
		return domain.ApplyOfferStatus(o, status)
	})
	if err != nil {
		return nil, s.offerError(err, "update status of")
	}

	log := logger.WithEntity(s.logger, "offer", id)
	if previous.Status != offer.Status {
		s.metrics.StatusChanged("offer", string(offer.Status))
		log.Info("offer status changed",
			zap.String("from", string(previous.Status)),
			zap.String("to", string(offer.Status)))
	}
	if previous.Commission == nil && offer.Commission != nil {
		log.Info("offer commission recorded", zap.Float64("commission", *offer.Commission))
	}

	dto := mapper.ToOfferDTO(&offer)
	return &dto, nil
}

// PreviewPurchaseOrders shows the purchase orders the offer would generate today
func (s *OfferService) PreviewPurchaseOrders(ctx context.Context, id string) (*domain.PurchaseOrderPreviewDTO, error) {
	offer, ok := findByID(s.store.Snapshot().Offers, id)
	if !ok {
		return nil, ErrOfferNotFound
	}

	drafts := procurement.Generate(offer, s.now(), s.selector)
	preview := &domain.PurchaseOrderPreviewDTO{
		OfferID:      offer.ID,
		Drafts:       make([]domain.PurchaseOrderDTO, len(drafts)),
		SkippedItems: []string{},
	}
	for i := range drafts {
		preview.Drafts[i] = mapper.ToPurchaseOrderDraftDTO(&drafts[i])
		preview.TotalAmount += drafts[i].TotalAmount
	}
	for _, item := range offer.Items {
		if len(item.SupplierQuotes) == 0 {
			preview.SkippedItems = append(preview.SkippedItems, item.ID)
		}
	}
	return preview, nil
}

// CommitPurchaseOrders stores the generated purchase orders of an accepted offer
// and moves the offer to purchase-order-created in the same write
func (s *OfferService) CommitPurchaseOrders(ctx context.Context, id string) (*domain.PurchaseOrderCommitDTO, error) {
	orderDate := s.now()
	orders, offer, err := s.store.CommitPurchaseOrders(ctx, id, func(o domain.Offer) ([]domain.PurchaseOrder, domain.Offer, error) {
		if o.Status.IsTerminal() {
			return nil, o, ErrOfferStatusLocked
		}
		if o.Status != domain.OfferStatusAccepted {
			return nil, o, ErrOfferNotAccepted
		}

		drafts := procurement.Generate(o, orderDate, s.selector)
		if len(drafts) == 0 {
			return nil, o, ErrNothingToGenerate
		}
		orders := make([]domain.PurchaseOrder, len(drafts))
		for i, d := range drafts {
			orders[i] = procurement.ToPurchaseOrder(d)
		}

		updated, err := domain.MarkPurchaseOrdersCreated(o)
		if err != nil {
			return nil, o, err
		}
		return orders, updated, nil
	})
	if err != nil {
		return nil, s.offerError(err, "generate purchase orders for")
	}

	s.metrics.PurchaseOrdersCreated(len(orders))
	s.metrics.StatusChanged("offer", string(offer.Status))
	logger.WithEntity(s.logger, "offer", id).Info("purchase orders generated",
		zap.Int("count", len(orders)))

	result := &domain.PurchaseOrderCommitDTO{
		Offer:          mapper.ToOfferDTO(&offer),
		PurchaseOrders: make([]domain.PurchaseOrderDTO, len(orders)),
	}
	for i := range orders {
		result.PurchaseOrders[i] = mapper.ToPurchaseOrderDTO(&orders[i])
	}
	return result, nil
}

// PricingAdvice asks the pricing advisor about an offer, given its cheapest cost,
// the customer's communication history and the products available for upselling
func (s *OfferService) PricingAdvice(ctx context.Context, id string) (*domain.PricingAdviceDTO, error) {
	ds := s.store.Snapshot()
	offer, ok := findByID(ds.Offers, id)
	if !ok {
		return nil, ErrOfferNotFound
	}

	basis := analytics.OfferCostBasis(offer)
	comms := analytics.CustomerCommunications(ds.Communications, offer.CustomerID)
	advice, err := s.assistant.text(ctx, featurePricingAdvice, pricingAdvicePrompt(offer, basis, comms, ds.Inventory))
	if err != nil {
		return nil, err
	}

	return &domain.PricingAdviceDTO{
		OfferID:   offer.ID,
		CostBasis: mapper.ToCostBasisDTO(basis),
		Advice:    advice,
	}, nil
}

// Compose drafts an email or WhatsApp message presenting the offer. With log set
// the message is recorded in the customer's communication log.
func (s *OfferService) Compose(ctx context.Context, id string, req *domain.ComposeOfferRequest) (*domain.ComposedMessageDTO, error) {
	if !req.Mode.IsValid() {
		return nil, fmt.Errorf("%w: mode %q", ErrInvalidInput, req.Mode)
	}
	offer, ok := findByID(s.store.Snapshot().Offers, id)
	if !ok {
		return nil, ErrOfferNotFound
	}

	content, err := s.assistant.text(ctx, featureCompose, composePrompt(offer, req.Mode))
	if err != nil {
		return nil, err
	}

	result := &domain.ComposedMessageDTO{
		OfferID: offer.ID,
		Mode:    req.Mode,
		Content: content,
	}
	if req.Log {
		offerID := offer.ID
		comm := s.store.AddCommunication(ctx, domain.Communication{
			CustomerID: offer.CustomerID,
			Type:       req.Mode,
			Summary:    composeLogSummary(offer),
			OfferID:    &offerID,
			ProjectID:  offer.ProjectID,
		})
		dto := mapper.ToCommunicationDTO(&comm)
		result.Communication = &dto
		logger.WithEntity(s.logger, "offer", id).Info("offer message logged",
			zap.String("communication_id", comm.ID),
			zap.String("mode", string(req.Mode)))
	}
	return result, nil
}

func (s *OfferService) offerError(err error, action string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrOfferNotFound
	case errors.Is(err, ErrOfferStatusLocked),
		errors.Is(err, ErrInvalidStatusTransition),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrOfferNotAccepted),
		errors.Is(err, ErrNothingToGenerate):
		return err
	}
	return fmt.Errorf("failed to %s offer: %w", action, err)
}

// fillQuoteSupplierNames completes quotes that only carry a supplier id
func fillQuoteSupplierNames(items []domain.OfferItem, suppliers []domain.Supplier) {
	for i := range items {
		for j := range items[i].SupplierQuotes {
			q := &items[i].SupplierQuotes[j]
			if q.SupplierName != "" {
				continue
			}
			if sup, ok := findByID(suppliers, q.SupplierID); ok {
				q.SupplierName = sup.Name
			}
		}
	}
}
