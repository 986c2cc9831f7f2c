package service

import (
	"context"
	"fmt"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/logger"
	"github.com/straye-as/bizdesk-api/internal/mapper"
	"github.com/straye-as/bizdesk-api/internal/metrics"
	"github.com/straye-as/bizdesk-api/internal/store"
	"go.uber.org/zap"
)

type PurchaseOrderService struct {
	store   *store.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewPurchaseOrderService(st *store.Store, m *metrics.Metrics, logger *zap.Logger) *PurchaseOrderService {
	return &PurchaseOrderService{
		store:   st,
		metrics: m,
		logger:  logger,
	}
}

func (s *PurchaseOrderService) List(ctx context.Context) []domain.PurchaseOrderDTO {
	orders := s.store.Snapshot().PurchaseOrders
	dtos := make([]domain.PurchaseOrderDTO, len(orders))
	for i := range orders {
		dtos[i] = mapper.ToPurchaseOrderDTO(&orders[i])
	}
	return dtos
}

func (s *PurchaseOrderService) GetByID(ctx context.Context, id string) (*domain.PurchaseOrderDTO, error) {
	po, ok := findByID(s.store.Snapshot().PurchaseOrders, id)
	if !ok {
		return nil, ErrPurchaseOrderNotFound
	}
	dto := mapper.ToPurchaseOrderDTO(&po)
	return &dto, nil
}

// UpdateStatus sets any purchase order status; there are no transition rules
func (s *PurchaseOrderService) UpdateStatus(ctx context.Context, id string, status domain.PurchaseOrderStatus) (*domain.PurchaseOrderDTO, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: purchase order status %q", ErrInvalidStatus, status)
	}

	var previous domain.PurchaseOrderStatus
	po, err := s.store.UpdatePurchaseOrder(ctx, id, func(po domain.PurchaseOrder) (domain.PurchaseOrder, error) {
		previous = po.Status
		po.Status = status
		return po, nil
	})
	if err != nil {
		return nil, notFound(err, ErrPurchaseOrderNotFound)
	}

	if previous != po.Status {
		s.metrics.StatusChanged("purchase_order", string(po.Status))
		logger.WithEntity(s.logger, "purchase_order", id).Info("purchase order status changed",
			zap.String("from", string(previous)),
			zap.String("to", string(po.Status)))
	}

	dto := mapper.ToPurchaseOrderDTO(&po)
	return &dto, nil
}
