package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/service"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	logger         *zap.Logger
}

func NewProjectHandler(projectService *service.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// List godoc
// @Summary List projects with profitability
// @Description Revenue sums every linked invoice, cost sums every linked purchase order
// @Tags Projects
// @Produce json
// @Success 200 {array} domain.ProjectSummaryDTO
// @Router /projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.List(r.Context()))
}

// Create godoc
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body domain.CreateProjectRequest true "Project data"
// @Success 201 {object} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	project, err := h.projectService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create project")
		return
	}

	w.Header().Set("Location", "/api/v1/projects/"+project.ID)
	respondJSON(w, http.StatusCreated, project)
}

// GetByID godoc
// @Summary Get project detail
// @Description Project with its financials and every linked offer, invoice, purchase order, time log and communication
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} domain.ProjectDetailDTO
// @Failure 404 {object} domain.APIError
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "get project")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// Update godoc
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body domain.UpdateProjectRequest true "Project data"
// @Success 200 {object} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	project, err := h.projectService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "update project")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// Financials godoc
// @Summary Get project financials
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} domain.ProjectFinancialsDTO
// @Failure 404 {object} domain.APIError
// @Router /projects/{id}/financials [get]
func (h *ProjectHandler) Financials(w http.ResponseWriter, r *http.Request) {
	financials, err := h.projectService.Financials(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "get project financials")
		return
	}

	respondJSON(w, http.StatusOK, financials)
}

// LogTime godoc
// @Summary Log time on a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param timeLog body domain.CreateTimeLogRequest true "Time log"
// @Success 201 {object} domain.TimeLogDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /projects/{id}/time-logs [post]
func (h *ProjectHandler) LogTime(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTimeLogRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	timeLog, err := h.projectService.LogTime(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "log time")
		return
	}

	respondJSON(w, http.StatusCreated, timeLog)
}
