package handler

import (
	"net/http"
	"strings"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/service"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// @Summary Get dashboard metrics
// @Description Business overview computed from the current records.
// @Description
// @Description **Payments:** receivable and payable totals per status, aging buckets of unpaid invoices
// @Description
// @Description **Sales:** active customers, offers awaiting a customer decision, portfolio profit
// @Description
// @Description **Stock:** low stock item count, stock value at cost and at selling price
// @Description
// @Description **Recent Lists:** the five latest purchase orders
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.DashboardDTO
// @Router /dashboard [get]
func (h *DashboardHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.dashboardService.GetMetrics(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "get dashboard metrics")
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}

// @Summary Global search
// @Description Case-insensitive name search over customers, suppliers, projects and offers
// @Tags Search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} domain.SearchResults
// @Failure 400 {object} domain.APIError
// @Router /search [get]
func (h *DashboardHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	respondJSON(w, http.StatusOK, h.dashboardService.Search(r.Context(), query))
}

// @Summary Resolve a navigation fragment
// @Description Maps a location fragment such as "#offers?id=Q-2024-001" to a page. Unknown fragments resolve to the dashboard.
// @Tags Navigation
// @Produce json
// @Param fragment query string false "Location fragment"
// @Success 200 {object} domain.Route
// @Router /navigation [get]
func (h *DashboardHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.ResolveRoute(r.URL.Query().Get("fragment")))
}
