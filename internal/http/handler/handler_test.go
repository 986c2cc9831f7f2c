package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/genai"
	"github.com/straye-as/bizdesk-api/internal/http/handler"
	"github.com/straye-as/bizdesk-api/internal/service"
	"github.com/straye-as/bizdesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	g.calls++
	return g.text, g.err
}

func (g *stubGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return g.Generate(ctx, prompt)
}

func strPtr(s string) *string { return &s }

func seedData() domain.Dataset {
	return domain.Dataset{
		Customers: []domain.Customer{{ID: "C1", Name: "Acme Trading", RegistrationDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)}},
		Suppliers: []domain.Supplier{{ID: "S1", Name: "Steel Co"}},
		Projects:  []domain.Project{{ID: "P1", Name: "Warehouse", CustomerID: "C1", CustomerName: "Acme Trading", Status: domain.ProjectStatusPlanning}},
		Offers: []domain.Offer{
			{
				ID: "Q-2024-001", CustomerID: "C1", CustomerName: "Acme Trading", Subject: "Steel",
				Status: domain.OfferStatusAccepted, TotalSellingPrice: 1000,
				Items: []domain.OfferItem{{ID: "i1", Description: "Beams", Quantity: 2, SupplierQuotes: []domain.SupplierQuote{{SupplierID: "S1", SupplierName: "Steel Co", Price: 100}}}},
			},
			{ID: "Q-2024-002", CustomerID: "C1", CustomerName: "Acme Trading", Subject: "Paint", Status: domain.OfferStatusPurchaseOrderCreated},
		},
		Invoices: []domain.Invoice{
			{ID: "INV-1", CustomerID: "C1", CustomerName: "Acme Trading", Amount: 500, DueDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), Status: domain.PaymentStatusOverdue, ProjectID: strPtr("P1")},
		},
	}
}

// testServer mounts the handlers on a chi router the way the API router does
type testServer struct {
	router    chi.Router
	store     *store.Store
	generator *stubGenerator
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()
	st := store.New(seedData(), logger)
	gen := &stubGenerator{text: "generated"}

	customers := handler.NewCustomerHandler(service.NewCustomerService(st, logger), logger)
	projects := handler.NewProjectHandler(service.NewProjectService(st, nil, logger), logger)
	offers := handler.NewOfferHandler(service.NewOfferService(st, gen, nil, nil, logger), logger)
	invoices := handler.NewInvoiceHandler(service.NewInvoiceService(st, gen, nil, logger), logger)
	reports := handler.NewReportHandler(service.NewReportService(st, gen, nil, time.Minute, nil, nil, logger), logger)
	dashboard := handler.NewDashboardHandler(service.NewDashboardService(st, logger), logger)

	r := chi.NewRouter()
	r.Get("/customers", customers.List)
	r.Post("/customers", customers.Create)
	r.Get("/customers/{id}", customers.GetByID)
	r.Put("/customers/{id}", customers.Update)
	r.Delete("/customers/{id}", customers.Delete)
	r.Post("/projects", projects.Create)
	r.Get("/projects/{id}/financials", projects.Financials)
	r.Put("/offers/{id}", offers.Update)
	r.Put("/offers/{id}/status", offers.UpdateStatus)
	r.Post("/offers/{id}/purchase-orders", offers.CommitPurchaseOrders)
	r.Post("/offers/{id}/compose", offers.Compose)
	r.Post("/invoices/summary", invoices.Summary)
	r.Put("/invoices/{id}/status", invoices.UpdateStatus)
	r.Post("/reports", reports.Save)
	r.Post("/reports/generate", reports.Generate)
	r.Get("/search", dashboard.Search)
	r.Get("/navigation", dashboard.Navigation)

	return &testServer{router: r, store: st, generator: gen}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeAPIError(t *testing.T, rr *httptest.ResponseRecorder) domain.APIError {
	t.Helper()
	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	return apiErr
}

// ============================================================================
// Customers
// ============================================================================

func TestCustomerHandler_Create(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/customers", domain.SaveCustomerRequest{Name: "New Co", Email: "info@new.co"})

	require.Equal(t, http.StatusCreated, rr.Code)
	var created domain.CustomerDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "New Co", created.Name)
	assert.Equal(t, "/api/v1/customers/"+created.ID, rr.Header().Get("Location"))
}

func TestCustomerHandler_CreateValidation(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/customers", domain.SaveCustomerRequest{Email: "not-an-email"})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	apiErr := decodeAPIError(t, rr)
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
	assert.Contains(t, apiErr.Errors, "name")
	assert.Contains(t, apiErr.Errors, "email")
}

func TestCustomerHandler_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/customers", "{not json")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, domain.ErrorTypeBadRequest, decodeAPIError(t, rr).Type)
}

func TestCustomerHandler_UpdateCreatesOrReplaces(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPut, "/customers/C1", domain.SaveCustomerRequest{Name: "Acme Holding"})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(t, http.MethodPut, "/customers/C-NEW", domain.SaveCustomerRequest{Name: "Imported"})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Len(t, s.store.Snapshot().Customers, 2)
}

func TestCustomerHandler_GetAndDelete(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/customers/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, domain.ErrorTypeNotFound, decodeAPIError(t, rr).Type)

	rr = s.do(t, http.MethodDelete, "/customers/C1", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.do(t, http.MethodDelete, "/customers/C1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// the invoice keeps its customer name after the customer is gone
	assert.Equal(t, "Acme Trading", s.store.Snapshot().Invoices[0].CustomerName)
}

// ============================================================================
// Projects and offers
// ============================================================================

func TestProjectHandler(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/projects", domain.CreateProjectRequest{Name: "Lab", CustomerID: "nobody"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.do(t, http.MethodGet, "/projects/P1/financials", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var f domain.ProjectFinancialsDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &f))
	assert.Equal(t, 500.0, f.TotalRevenue)
	assert.Equal(t, 500.0, f.Profit)
}

func TestOfferHandler_LockedOfferConflicts(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPut, "/offers/Q-2024-002/status", domain.UpdateOfferStatusRequest{Status: domain.OfferStatusSent})
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, domain.ErrorTypeConflict, decodeAPIError(t, rr).Type)

	rr = s.do(t, http.MethodPut, "/offers/Q-2024-002", domain.UpdateOfferRequest{Subject: "x", ValidUntil: "2024-10-01"})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestOfferHandler_InvalidStatus(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPut, "/offers/Q-2024-001/status", map[string]string{"status": "archived"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOfferHandler_CommitPurchaseOrders(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/offers/Q-2024-001/purchase-orders", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	var result domain.PurchaseOrderCommitDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Len(t, result.PurchaseOrders, 1)
	assert.Equal(t, 200.0, result.PurchaseOrders[0].TotalAmount)
	assert.True(t, result.Offer.StatusLocked)

	rr = s.do(t, http.MethodPost, "/offers/Q-2024-001/purchase-orders", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestOfferHandler_ComposeAIErrors(t *testing.T) {
	tests := []struct {
		name   string
		kind   genai.Kind
		status int
	}{
		{"rate limit", genai.KindRateLimit, http.StatusTooManyRequests},
		{"authentication", genai.KindAuthentication, http.StatusBadGateway},
		{"server", genai.KindServer, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.generator.err = &genai.Error{Kind: tt.kind}

			rr := s.do(t, http.MethodPost, "/offers/Q-2024-001/compose", domain.ComposeOfferRequest{Mode: domain.CommunicationTypeEmail})

			require.Equal(t, tt.status, rr.Code)
			apiErr := decodeAPIError(t, rr)
			assert.Equal(t, domain.ErrorTypeAIPrefix+string(tt.kind), apiErr.Type)
			assert.Equal(t, genai.UserMessage(tt.kind), apiErr.Detail)
		})
	}
}

func TestOfferHandler_Compose(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/offers/Q-2024-001/compose", domain.ComposeOfferRequest{Mode: domain.CommunicationTypeWhatsApp, Log: true})

	require.Equal(t, http.StatusOK, rr.Code)
	var msg domain.ComposedMessageDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
	assert.Equal(t, "generated", msg.Content)
	assert.NotNil(t, msg.Communication)
	assert.Len(t, s.store.Snapshot().Communications, 1)

	rr = s.do(t, http.MethodPost, "/offers/Q-2024-001/compose", map[string]string{"mode": "fax"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ============================================================================
// Invoices, reports and search
// ============================================================================

func TestInvoiceHandler(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/invoices/summary", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, s.generator.calls)

	rr = s.do(t, http.MethodPut, "/invoices/INV-1/status", domain.UpdatePaymentStatusRequest{Status: domain.PaymentStatusDue})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = s.do(t, http.MethodPut, "/invoices/INV-1/status", domain.UpdatePaymentStatusRequest{Status: domain.PaymentStatusPaid})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(t, http.MethodPost, "/invoices/summary", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var summary domain.AiTextDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, service.NoOverdueInvoicesMessage, summary.Content)
	assert.Equal(t, 1, s.generator.calls)
}

func TestReportHandler(t *testing.T) {
	s := newTestServer(t)
	s.generator.text = `{"summary":"ok","chartType":"pie","chartData":[{"name":"a","value":1}]}`

	rr := s.do(t, http.MethodPost, "/reports/generate", domain.GenerateReportRequest{Query: "revenue?"})
	require.Equal(t, http.StatusOK, rr.Code)
	var generated domain.GeneratedReportDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &generated))
	assert.Equal(t, domain.ChartTypePie, generated.Response.ChartType)

	rr = s.do(t, http.MethodPost, "/reports", domain.SaveReportRequest{Query: "revenue?", Response: generated.Response})
	assert.Equal(t, http.StatusCreated, rr.Code)

	s.generator.text = "no json here"
	rr = s.do(t, http.MethodPost, "/reports/generate", domain.GenerateReportRequest{Query: "other"})
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, domain.ErrorTypeAIPrefix+string(genai.KindResponseShape), decodeAPIError(t, rr).Type)
}

func TestDashboardHandler_Search(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/search?q=%20%20", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(t, http.MethodGet, "/search?q=steel", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var results domain.SearchResults
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &results))
	assert.Len(t, results.Suppliers, 1)
	assert.Len(t, results.Offers, 1)
}

func TestDashboardHandler_Navigation(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/navigation?fragment=%23offers%3Fid%3DQ-2024-001", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var route domain.Route
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &route))
	assert.Equal(t, domain.PageOffers, route.Page)
	assert.Equal(t, "Q-2024-001", route.ID)
}
