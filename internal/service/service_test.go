package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/store"
	"go.uber.org/zap"
)

// fakeGenerator records prompts and answers with a fixed text or error
type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	text    string
	err     error
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	return g.answer(prompt)
}

func (g *fakeGenerator) GenerateJSON(_ context.Context, prompt string) (string, error) {
	return g.answer(prompt)
}

func (g *fakeGenerator) answer(prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func (g *fakeGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// memoryReportCache is a map-backed report cache
type memoryReportCache struct {
	mu    sync.Mutex
	items map[string]domain.AiReport
}

func newMemoryReportCache() *memoryReportCache {
	return &memoryReportCache{items: make(map[string]domain.AiReport)}
}

func (c *memoryReportCache) Get(_ context.Context, key string) (*domain.AiReport, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}
	return &r, true, nil
}

func (c *memoryReportCache) Set(_ context.Context, key string, value *domain.AiReport, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = *value
	return nil
}

func (c *memoryReportCache) Ping(_ context.Context) error { return nil }

func strPtr(s string) *string { return &s }

func testDataset() domain.Dataset {
	return domain.Dataset{
		Customers: []domain.Customer{
			{ID: "C1", Name: "Acme Trading", ContactPerson: "Sara", RegistrationDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "C2", Name: "Delta Schools", ContactPerson: "Omar"},
		},
		Suppliers: []domain.Supplier{
			{ID: "S1", Name: "Steel Co"},
			{ID: "S2", Name: "Paint House"},
		},
		Projects: []domain.Project{
			{ID: "P1", Name: "Warehouse fit-out", CustomerID: "C1", CustomerName: "Acme Trading", Status: domain.ProjectStatusInProgress},
		},
		Offers: []domain.Offer{
			{
				ID: "Q-2024-001", CustomerID: "C1", CustomerName: "Acme Trading", Subject: "Steel structure",
				Status: domain.OfferStatusAccepted, TotalSellingPrice: 400, ProjectID: strPtr("P1"),
				Items: []domain.OfferItem{
					{ID: "i1", Description: "Beams", Quantity: 2, SupplierQuotes: []domain.SupplierQuote{{SupplierID: "S1", SupplierName: "Steel Co", Price: 100}}},
					{ID: "i2", Description: "Bolts", Quantity: 1, SupplierQuotes: []domain.SupplierQuote{{SupplierID: "S1", SupplierName: "Steel Co", Price: 50}}},
					{ID: "i3", Description: "Paint", Quantity: 3, SupplierQuotes: []domain.SupplierQuote{}},
				},
			},
			{ID: "Q-2024-002", CustomerID: "C2", CustomerName: "Delta Schools", Subject: "Projectors", Status: domain.OfferStatusSent, TotalSellingPrice: 100000},
			{ID: "Q-2024-003", CustomerID: "C2", CustomerName: "Delta Schools", Subject: "Cabling", Status: domain.OfferStatusAccepted, Items: []domain.OfferItem{{ID: "i1", Quantity: 1}}},
		},
		Invoices: []domain.Invoice{
			{ID: "INV-1", CustomerID: "C1", CustomerName: "Acme Trading", Amount: 100, DueDate: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC), Status: domain.PaymentStatusDue, ProjectID: strPtr("P1")},
			{ID: "INV-2", CustomerID: "C1", CustomerName: "Acme Trading", Amount: 50, DueDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Status: domain.PaymentStatusPaid, ProjectID: strPtr("P1")},
		},
		PurchaseOrders: []domain.PurchaseOrder{
			{ID: "PO-1", SupplierID: "S1", TotalAmount: 30, Status: domain.PurchaseOrderStatusSent, ProjectID: strPtr("P1")},
		},
		Payables: []domain.Payable{
			{ID: "PAY-1", SupplierID: "S1", Amount: 70, DueDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Status: domain.PaymentStatusPaid},
		},
		Inventory: []domain.InventoryItem{
			{ID: "PROD-1", Name: "Camera", Quantity: 2, ReorderPoint: 5, CostPrice: 100, SellingPrice: 150},
		},
	}
}

func newTestStore() *store.Store {
	return store.New(testDataset(), zap.NewNop())
}
