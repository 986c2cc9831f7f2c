package handler

import (
	"net/http"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/service"
	"go.uber.org/zap"
)

type CommunicationHandler struct {
	communicationService *service.CommunicationService
	logger               *zap.Logger
}

func NewCommunicationHandler(communicationService *service.CommunicationService, logger *zap.Logger) *CommunicationHandler {
	return &CommunicationHandler{
		communicationService: communicationService,
		logger:               logger,
	}
}

// List godoc
// @Summary List communications
// @Tags Communications
// @Produce json
// @Success 200 {array} domain.CommunicationDTO
// @Router /communications [get]
func (h *CommunicationHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.communicationService.List(r.Context()))
}

// Create godoc
// @Summary Log a communication
// @Tags Communications
// @Accept json
// @Produce json
// @Param communication body domain.CreateCommunicationRequest true "Communication"
// @Success 201 {object} domain.CommunicationDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /communications [post]
func (h *CommunicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCommunicationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comm, err := h.communicationService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "log communication")
		return
	}

	respondJSON(w, http.StatusCreated, comm)
}
