package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/service"
	"go.uber.org/zap"
)

type SupplierHandler struct {
	supplierService *service.SupplierService
	logger          *zap.Logger
}

func NewSupplierHandler(supplierService *service.SupplierService, logger *zap.Logger) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
		logger:          logger,
	}
}

// List godoc
// @Summary List suppliers
// @Tags Suppliers
// @Produce json
// @Success 200 {array} domain.SupplierDTO
// @Router /suppliers [get]
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.supplierService.List(r.Context()))
}

// GetByID godoc
// @Summary Get supplier
// @Tags Suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} domain.SupplierDTO
// @Failure 404 {object} domain.APIError
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.supplierService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "get supplier")
		return
	}

	respondJSON(w, http.StatusOK, supplier)
}

// Create godoc
// @Summary Create supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param supplier body domain.SaveSupplierRequest true "Supplier data"
// @Success 201 {object} domain.SupplierDTO
// @Failure 400 {object} domain.APIError
// @Router /suppliers [post]
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveSupplierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	supplier, err := h.supplierService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create supplier")
		return
	}

	w.Header().Set("Location", "/api/v1/suppliers/"+supplier.ID)
	respondJSON(w, http.StatusCreated, supplier)
}

// Update godoc
// @Summary Save supplier
// @Description Replaces the supplier. An unknown id creates the supplier under that id.
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param supplier body domain.SaveSupplierRequest true "Supplier data"
// @Success 200 {object} domain.SupplierDTO
// @Success 201 {object} domain.SupplierDTO
// @Failure 400 {object} domain.APIError
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveSupplierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	supplier, created, err := h.supplierService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "update supplier")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, supplier)
}

// Delete godoc
// @Summary Delete supplier
// @Tags Suppliers
// @Param id path string true "Supplier ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.supplierService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.logger, err, "delete supplier")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
