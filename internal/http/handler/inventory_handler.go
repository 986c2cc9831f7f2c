package handler

import (
	"net/http"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/service"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	inventoryService *service.InventoryService
	logger           *zap.Logger
}

func NewInventoryHandler(inventoryService *service.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		logger:           logger,
	}
}

// List godoc
// @Summary List inventory items
// @Tags Inventory
// @Produce json
// @Success 200 {array} domain.InventoryItemDTO
// @Router /inventory [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.inventoryService.List(r.Context()))
}

// Create godoc
// @Summary Add inventory item
// @Description The stock status is derived from quantity and reorder point
// @Tags Inventory
// @Accept json
// @Produce json
// @Param item body domain.CreateInventoryItemRequest true "Inventory item"
// @Success 201 {object} domain.InventoryItemDTO
// @Failure 400 {object} domain.APIError
// @Router /inventory [post]
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateInventoryItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.inventoryService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "add inventory item")
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// Advice godoc
// @Summary Get inventory advice
// @Tags Inventory
// @Produce json
// @Success 200 {object} domain.InventoryAdviceDTO
// @Failure 429 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Router /inventory/advice [post]
func (h *InventoryHandler) Advice(w http.ResponseWriter, r *http.Request) {
	advice, err := h.inventoryService.Advice(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "get inventory advice")
		return
	}

	respondJSON(w, http.StatusOK, advice)
}
