package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/service"
	"go.uber.org/zap"
)

// InvoiceHandler serves customer invoices (receivables)
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	logger         *zap.Logger
}

func NewInvoiceHandler(invoiceService *service.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// List godoc
// @Summary List invoices
// @Description Overdue statuses are refreshed against today before listing
// @Tags Invoices
// @Produce json
// @Success 200 {array} domain.InvoiceDTO
// @Router /invoices [get]
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.invoiceService.List(r.Context()))
}

// Create godoc
// @Summary Create invoice
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice body domain.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} domain.InvoiceDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /invoices [post]
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateInvoiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	invoice, err := h.invoiceService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create invoice")
		return
	}

	respondJSON(w, http.StatusCreated, invoice)
}

// UpdateStatus godoc
// @Summary Change invoice status
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param status body domain.UpdatePaymentStatusRequest true "New status"
// @Success 200 {object} domain.InvoiceDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /invoices/{id}/status [put]
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdatePaymentStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		handleServiceError(w, h.logger, err, "update invoice status")
		return
	}

	respondJSON(w, http.StatusOK, invoice)
}

// Summary godoc
// @Summary Summarize overdue receivables
// @Description Without overdue invoices a fixed message is returned and no text is generated
// @Tags Invoices
// @Produce json
// @Success 200 {object} domain.AiTextDTO
// @Failure 429 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Router /invoices/summary [post]
func (h *InvoiceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.invoiceService.Summary(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "summarize receivables")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// Reminder godoc
// @Summary Draft a payment reminder
// @Tags Invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.AiTextDTO
// @Failure 404 {object} domain.APIError
// @Failure 429 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Router /invoices/{id}/reminder [post]
func (h *InvoiceHandler) Reminder(w http.ResponseWriter, r *http.Request) {
	reminder, err := h.invoiceService.Reminder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "draft payment reminder")
		return
	}

	respondJSON(w, http.StatusOK, reminder)
}

// PayableHandler serves supplier bills
type PayableHandler struct {
	payableService *service.PayableService
	logger         *zap.Logger
}

func NewPayableHandler(payableService *service.PayableService, logger *zap.Logger) *PayableHandler {
	return &PayableHandler{
		payableService: payableService,
		logger:         logger,
	}
}

// List godoc
// @Summary List payables
// @Tags Payables
// @Produce json
// @Success 200 {array} domain.PayableDTO
// @Router /payables [get]
func (h *PayableHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.payableService.List(r.Context()))
}

// Create godoc
// @Summary Create payable
// @Tags Payables
// @Accept json
// @Produce json
// @Param payable body domain.CreatePayableRequest true "Payable data"
// @Success 201 {object} domain.PayableDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /payables [post]
func (h *PayableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePayableRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	payable, err := h.payableService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create payable")
		return
	}

	respondJSON(w, http.StatusCreated, payable)
}

// UpdateStatus godoc
// @Summary Change payable status
// @Tags Payables
// @Accept json
// @Produce json
// @Param id path string true "Payable ID"
// @Param status body domain.UpdatePaymentStatusRequest true "New status"
// @Success 200 {object} domain.PayableDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /payables/{id}/status [put]
func (h *PayableHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdatePaymentStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	payable, err := h.payableService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		handleServiceError(w, h.logger, err, "update payable status")
		return
	}

	respondJSON(w, http.StatusOK, payable)
}

// Summary godoc
// @Summary Summarize open payables
// @Tags Payables
// @Produce json
// @Success 200 {object} domain.AiTextDTO
// @Failure 429 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Router /payables/summary [post]
func (h *PayableHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.payableService.Summary(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "summarize payables")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
