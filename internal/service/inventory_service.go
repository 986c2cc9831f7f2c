package service

import (
	"context"

	"github.com/straye-as/bizdesk-api/internal/analytics"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/logger"
	"github.com/straye-as/bizdesk-api/internal/mapper"
	"github.com/straye-as/bizdesk-api/internal/metrics"
	"github.com/straye-as/bizdesk-api/internal/store"
	"go.uber.org/zap"
)

type InventoryService struct {
	store     *store.Store
	assistant assistant
	logger    *zap.Logger
}

func NewInventoryService(st *store.Store, generator TextGenerator, m *metrics.Metrics, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		store:     st,
		assistant: newAssistant(generator, m, logger),
		logger:    logger,
	}
}

func (s *InventoryService) List(ctx context.Context) []domain.InventoryItemDTO {
	return inventoryDTOs(s.store.Snapshot().Inventory)
}

// Create adds a product. The stored status is derived from quantity and reorder point.
func (s *InventoryService) Create(ctx context.Context, req *domain.CreateInventoryItemRequest) (*domain.InventoryItemDTO, error) {
	item := domain.InventoryItem{
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		Quantity:      req.Quantity,
		ReorderPoint:  req.ReorderPoint,
		SupplierID:    req.SupplierID,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		SalesVelocity: req.SalesVelocity,
		LeadTimeDays:  req.LeadTimeDays,
	}
	item.Status = analytics.DeriveInventoryStatus(item)

	item = s.store.AddInventoryItem(ctx, item)
	logger.WithEntity(s.logger, "inventory_item", item.ID).Info("inventory item created",
		zap.String("sku", item.SKU),
		zap.Int("quantity", item.Quantity))

	dto := mapper.ToInventoryItemDTO(&item)
	return &dto, nil
}

// Advice asks the inventory advisor for reorder recommendations
func (s *InventoryService) Advice(ctx context.Context) (*domain.InventoryAdviceDTO, error) {
	items := s.store.Snapshot().Inventory

	advice, err := s.assistant.text(ctx, featureInventoryAdvice, inventoryAdvicePrompt(items))
	if err != nil {
		return nil, err
	}
	return &domain.InventoryAdviceDTO{
		ReorderCandidates: inventoryDTOs(analytics.ReorderCandidates(items)),
		Advice:            advice,
	}, nil
}

func inventoryDTOs(items []domain.InventoryItem) []domain.InventoryItemDTO {
	dtos := make([]domain.InventoryItemDTO, len(items))
	for i := range items {
		dtos[i] = mapper.ToInventoryItemDTO(&items[i])
	}
	return dtos
}
