package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/service"
	"go.uber.org/zap"
)

type PurchaseOrderHandler struct {
	purchaseOrderService *service.PurchaseOrderService
	logger               *zap.Logger
}

func NewPurchaseOrderHandler(purchaseOrderService *service.PurchaseOrderService, logger *zap.Logger) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		purchaseOrderService: purchaseOrderService,
		logger:               logger,
	}
}

// List godoc
// @Summary List purchase orders
// @Tags Purchase Orders
// @Produce json
// @Success 200 {array} domain.PurchaseOrderDTO
// @Router /purchase-orders [get]
func (h *PurchaseOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.purchaseOrderService.List(r.Context()))
}

// GetByID godoc
// @Summary Get purchase order
// @Tags Purchase Orders
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} domain.PurchaseOrderDTO
// @Failure 404 {object} domain.APIError
// @Router /purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	po, err := h.purchaseOrderService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "get purchase order")
		return
	}

	respondJSON(w, http.StatusOK, po)
}

// UpdateStatus godoc
// @Summary Change purchase order status
// @Tags Purchase Orders
// @Accept json
// @Produce json
// @Param id path string true "Purchase order ID"
// @Param status body domain.UpdatePurchaseOrderStatusRequest true "New status"
// @Success 200 {object} domain.PurchaseOrderDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /purchase-orders/{id}/status [put]
func (h *PurchaseOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdatePurchaseOrderStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	po, err := h.purchaseOrderService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		handleServiceError(w, h.logger, err, "update purchase order status")
		return
	}

	respondJSON(w, http.StatusOK, po)
}
