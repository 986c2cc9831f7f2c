package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/service"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Generate godoc
// @Summary Generate a report
// @Description Answers a business question with a summary and chart data built from the current records
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body domain.GenerateReportRequest true "Question"
// @Success 200 {object} domain.GeneratedReportDTO
// @Failure 400 {object} domain.APIError
// @Failure 429 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Router /reports/generate [post]
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateReportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report, err := h.reportService.Generate(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "generate report")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// List godoc
// @Summary List saved reports
// @Tags Reports
// @Produce json
// @Success 200 {array} domain.SavedReportDTO
// @Router /reports [get]
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.reportService.List(r.Context()))
}

// Save godoc
// @Summary Save a report
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body domain.SaveReportRequest true "Report"
// @Success 201 {object} domain.SavedReportDTO
// @Failure 400 {object} domain.APIError
// @Router /reports [post]
func (h *ReportHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveReportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report, err := h.reportService.Save(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "save report")
		return
	}

	respondJSON(w, http.StatusCreated, report)
}

// Delete godoc
// @Summary Delete a saved report
// @Tags Reports
// @Param id path string true "Report ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reportService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.logger, err, "delete report")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Archive godoc
// @Summary Archive a saved report
// @Description Writes the report as JSON to the configured file storage
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 201 {object} domain.ReportArchiveDTO
// @Failure 404 {object} domain.APIError
// @Router /reports/{id}/archive [post]
func (h *ReportHandler) Archive(w http.ResponseWriter, r *http.Request) {
	archive, err := h.reportService.Archive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "archive report")
		return
	}

	respondJSON(w, http.StatusCreated, archive)
}
