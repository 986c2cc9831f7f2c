package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/service"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	customerService *service.CustomerService
	logger          *zap.Logger
}

func NewCustomerHandler(customerService *service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// List godoc
// @Summary List customers
// @Description Get all customers with their number of logged communications
// @Tags Customers
// @Produce json
// @Success 200 {array} domain.CustomerDTO
// @Router /customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.customerService.List(r.Context()))
}

// GetByID godoc
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} domain.CustomerDTO
// @Failure 404 {object} domain.APIError
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customerService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "get customer")
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Create godoc
// @Summary Create customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer body domain.SaveCustomerRequest true "Customer data"
// @Success 201 {object} domain.CustomerDTO
// @Failure 400 {object} domain.APIError
// @Router /customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer, err := h.customerService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create customer")
		return
	}

	w.Header().Set("Location", "/api/v1/customers/"+customer.ID)
	respondJSON(w, http.StatusCreated, customer)
}

// Update godoc
// @Summary Save customer
// @Description Replaces the customer. An unknown id creates the customer under that id.
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body domain.SaveCustomerRequest true "Customer data"
// @Success 200 {object} domain.CustomerDTO
// @Success 201 {object} domain.CustomerDTO
// @Failure 400 {object} domain.APIError
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer, created, err := h.customerService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "update customer")
		return
	}

	if created {
		respondJSON(w, http.StatusCreated, customer)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// Delete godoc
// @Summary Delete customer
// @Description Removes the customer. Records referencing it keep their stored name.
// @Tags Customers
// @Param id path string true "Customer ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customerService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.logger, err, "delete customer")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Communications godoc
// @Summary List customer communications
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} domain.CommunicationDTO
// @Failure 404 {object} domain.APIError
// @Router /customers/{id}/communications [get]
func (h *CustomerHandler) Communications(w http.ResponseWriter, r *http.Request) {
	comms, err := h.customerService.Communications(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "list customer communications")
		return
	}

	respondJSON(w, http.StatusOK, comms)
}
