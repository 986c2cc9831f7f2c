package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/service"
	"go.uber.org/zap"
)

type OfferHandler struct {
	offerService *service.OfferService
	logger       *zap.Logger
}

func NewOfferHandler(offerService *service.OfferService, logger *zap.Logger) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
		logger:       logger,
	}
}

// List godoc
// @Summary List offers
// @Tags Offers
// @Produce json
// @Success 200 {array} domain.OfferDTO
// @Router /offers [get]
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.offerService.List(r.Context()))
}

// GetByID godoc
// @Summary Get offer
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} domain.OfferDTO
// @Failure 404 {object} domain.APIError
// @Router /offers/{id} [get]
func (h *OfferHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	offer, err := h.offerService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "get offer")
		return
	}

	respondJSON(w, http.StatusOK, offer)
}

// Create godoc
// @Summary Create offer
// @Description Creates an empty offer with status new
// @Tags Offers
// @Accept json
// @Produce json
// @Param offer body domain.CreateOfferRequest true "Offer data"
// @Success 201 {object} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /offers [post]
func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOfferRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	offer, err := h.offerService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create offer")
		return
	}

	w.Header().Set("Location", "/api/v1/offers/"+offer.ID)
	respondJSON(w, http.StatusCreated, offer)
}

// Update godoc
// @Summary Update offer content
// @Description Replaces subject, validity, items and selling price. Offers with purchase orders created cannot be edited.
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param offer body domain.UpdateOfferRequest true "Offer content"
// @Success 200 {object} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /offers/{id} [put]
func (h *OfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateOfferRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	offer, err := h.offerService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "update offer")
		return
	}

	respondJSON(w, http.StatusOK, offer)
}

// UpdateStatus godoc
// @Summary Change offer status
// @Description Accepting an offer records a 5% commission once. Offers with purchase orders created are locked.
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param status body domain.UpdateOfferStatusRequest true "New status"
// @Success 200 {object} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /offers/{id}/status [put]
func (h *OfferHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateOfferStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	offer, err := h.offerService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		handleServiceError(w, h.logger, err, "update offer status")
		return
	}

	respondJSON(w, http.StatusOK, offer)
}

// PreviewPurchaseOrders godoc
// @Summary Preview purchase orders for an offer
// @Description Groups the offer items by their selected supplier quote without saving anything
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} domain.PurchaseOrderPreviewDTO
// @Failure 404 {object} domain.APIError
// @Router /offers/{id}/purchase-orders/preview [get]
func (h *OfferHandler) PreviewPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	preview, err := h.offerService.PreviewPurchaseOrders(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "preview purchase orders")
		return
	}

	respondJSON(w, http.StatusOK, preview)
}

// CommitPurchaseOrders godoc
// @Summary Create purchase orders for an accepted offer
// @Description Saves one purchase order per supplier and marks the offer as purchase-order-created
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 201 {object} domain.PurchaseOrderCommitDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /offers/{id}/purchase-orders [post]
func (h *OfferHandler) CommitPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.offerService.CommitPurchaseOrders(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "create purchase orders")
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// PricingAdvice godoc
// @Summary Get pricing advice for an offer
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} domain.PricingAdviceDTO
// @Failure 404 {object} domain.APIError
// @Failure 429 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Router /offers/{id}/pricing-advice [post]
func (h *OfferHandler) PricingAdvice(w http.ResponseWriter, r *http.Request) {
	advice, err := h.offerService.PricingAdvice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "get pricing advice")
		return
	}

	respondJSON(w, http.StatusOK, advice)
}

// Compose godoc
// @Summary Compose an offer message
// @Description Drafts an email or WhatsApp message for the offer. With log=true the message is logged as a communication.
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body domain.ComposeOfferRequest true "Compose options"
// @Success 200 {object} domain.ComposedMessageDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 429 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Router /offers/{id}/compose [post]
func (h *OfferHandler) Compose(w http.ResponseWriter, r *http.Request) {
	var req domain.ComposeOfferRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	message, err := h.offerService.Compose(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "compose offer message")
		return
	}

	respondJSON(w, http.StatusOK, message)
}
