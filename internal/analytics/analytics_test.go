package analytics_test

import (
	"testing"
	"time"

	"github.com/straye-as/bizdesk-api/internal/analytics"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(s string) *string { return &s }

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

// ============================================================================
// Project financials
// ============================================================================

func TestProjectFinancials_SumsLinkedRecords(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: "INV-1", ProjectID: ref("P1"), Amount: 100},
		{ID: "INV-2", ProjectID: ref("P1"), Amount: 50},
		{ID: "INV-3", ProjectID: ref("P2"), Amount: 10},
	}
	purchaseOrders := []domain.PurchaseOrder{
		{ID: "PO-1", ProjectID: ref("P1"), TotalAmount: 30},
	}

	f := analytics.ProjectFinancials("P1", invoices, purchaseOrders, nil)

	assert.Equal(t, 150.0, f.TotalRevenue)
	assert.Equal(t, 30.0, f.TotalCost)
	assert.Equal(t, 120.0, f.Profit)
	assert.InDelta(t, 80.0, f.ProfitMargin, 1e-9)
}

func TestProjectFinancials_Idempotent(t *testing.T) {
	invoices := []domain.Invoice{{ProjectID: ref("P1"), Amount: 333.33}}
	purchaseOrders := []domain.PurchaseOrder{{ProjectID: ref("P1"), TotalAmount: 111.11}}
	timeLogs := []domain.TimeLog{{ProjectID: "P1", Hours: 2.5}}

	first := analytics.ProjectFinancials("P1", invoices, purchaseOrders, timeLogs)
	second := analytics.ProjectFinancials("P1", invoices, purchaseOrders, timeLogs)

	assert.Equal(t, first, second)
}

func TestProjectFinancials_ZeroRevenueHasZeroMargin(t *testing.T) {
	purchaseOrders := []domain.PurchaseOrder{{ProjectID: ref("P1"), TotalAmount: 40}}

	f := analytics.ProjectFinancials("P1", nil, purchaseOrders, nil)

	assert.Equal(t, 0.0, f.TotalRevenue)
	assert.Equal(t, -40.0, f.Profit)
	assert.Equal(t, 0.0, f.ProfitMargin)
}

func TestProjectFinancials_UnknownProject(t *testing.T) {
	invoices := []domain.Invoice{{ProjectID: ref("P1"), Amount: 100}, {Amount: 20}}

	f := analytics.ProjectFinancials("missing", invoices, nil, nil)

	assert.Equal(t, analytics.Financials{}, f)
}

func TestProjectFinancials_CountsHours(t *testing.T) {
	timeLogs := []domain.TimeLog{
		{ProjectID: "P1", Hours: 4},
		{ProjectID: "P1", Hours: 3.5},
		{ProjectID: "P2", Hours: 8},
	}

	f := analytics.ProjectFinancials("P1", nil, nil, timeLogs)

	assert.Equal(t, 7.5, f.TotalHours)
}

func TestPortfolioProfitability(t *testing.T) {
	projects := []domain.Project{{ID: "P1", Name: "Tower"}, {ID: "P2", Name: "Bridge"}}
	invoices := []domain.Invoice{
		{ProjectID: ref("P1"), Amount: 1000},
		{ProjectID: ref("P2"), Amount: 200},
	}
	purchaseOrders := []domain.PurchaseOrder{{ProjectID: ref("P2"), TotalAmount: 500}}

	rows := analytics.PortfolioProfitability(projects, invoices, purchaseOrders)

	require.Len(t, rows, 2)
	assert.Equal(t, "Tower", rows[0].Name)
	assert.Equal(t, 1000.0, rows[0].Profit)
	assert.Equal(t, -300.0, rows[1].Profit)
	assert.Equal(t, 700.0, analytics.TotalProfit(rows))
}

func TestPortfolioProfitability_Empty(t *testing.T) {
	rows := analytics.PortfolioProfitability(nil, nil, nil)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.Equal(t, 0.0, analytics.TotalProfit(rows))
}

// ============================================================================
// Payment statuses
// ============================================================================

func TestRefreshInvoiceStatuses(t *testing.T) {
	today := day(t, "2024-08-01")
	invoices := []domain.Invoice{
		{ID: "due-past", DueDate: day(t, "2024-07-01"), Status: domain.PaymentStatusDue},
		{ID: "paid-past", DueDate: day(t, "2024-07-01"), Status: domain.PaymentStatusPaid},
		{ID: "due-today", DueDate: day(t, "2024-08-01"), Status: domain.PaymentStatusDue},
		{ID: "overdue-future", DueDate: day(t, "2024-09-01"), Status: domain.PaymentStatusOverdue},
	}

	out, changed := analytics.RefreshInvoiceStatuses(invoices, today)

	require.True(t, changed)
	assert.Equal(t, domain.PaymentStatusOverdue, out[0].Status)
	assert.Equal(t, domain.PaymentStatusPaid, out[1].Status)
	assert.Equal(t, domain.PaymentStatusDue, out[2].Status)
	assert.Equal(t, domain.PaymentStatusDue, out[3].Status)

	// the input is never modified
	assert.Equal(t, domain.PaymentStatusDue, invoices[0].Status)
}

func TestRefreshInvoiceStatuses_NoChange(t *testing.T) {
	invoices := []domain.Invoice{
		{DueDate: day(t, "2024-01-01"), Status: domain.PaymentStatusPaid},
		{DueDate: day(t, "2024-12-01"), Status: domain.PaymentStatusDue},
	}

	out, changed := analytics.RefreshInvoiceStatuses(invoices, day(t, "2024-08-01"))

	assert.False(t, changed)
	assert.Equal(t, invoices, out)
}

func TestRefreshPayableStatuses(t *testing.T) {
	payables := []domain.Payable{
		{DueDate: day(t, "2024-07-15"), Status: domain.PaymentStatusDue},
		{DueDate: day(t, "2024-07-15"), Status: domain.PaymentStatusPaid},
	}

	out, changed := analytics.RefreshPayableStatuses(payables, day(t, "2024-08-01"))

	require.True(t, changed)
	assert.Equal(t, domain.PaymentStatusOverdue, out[0].Status)
	assert.Equal(t, domain.PaymentStatusPaid, out[1].Status)
}

func TestReceivablesSummary(t *testing.T) {
	invoices := []domain.Invoice{
		{Amount: 100, Status: domain.PaymentStatusPaid},
		{Amount: 200, Status: domain.PaymentStatusDue},
		{Amount: 50, Status: domain.PaymentStatusOverdue},
		{Amount: 25, Status: domain.PaymentStatusOverdue},
	}

	totals := analytics.ReceivablesSummary(invoices)

	assert.Equal(t, analytics.StatusTotals{Total: 375, Paid: 100, Due: 200, Overdue: 75, Count: 4}, totals)
}

func TestPayablesSummary_Empty(t *testing.T) {
	assert.Equal(t, analytics.StatusTotals{}, analytics.PayablesSummary(nil))
}

func TestAgingBuckets(t *testing.T) {
	today := day(t, "2024-08-01")
	invoices := []domain.Invoice{
		{Amount: 10, DueDate: day(t, "2024-07-25"), Status: domain.PaymentStatusOverdue},
		{Amount: 20, DueDate: day(t, "2024-06-15"), Status: domain.PaymentStatusOverdue},
		{Amount: 30, DueDate: day(t, "2024-05-10"), Status: domain.PaymentStatusOverdue},
		{Amount: 40, DueDate: day(t, "2024-01-01"), Status: domain.PaymentStatusOverdue},
		{Amount: 99, DueDate: day(t, "2024-01-01"), Status: domain.PaymentStatusPaid},
		{Amount: 77, DueDate: day(t, "2024-08-10"), Status: domain.PaymentStatusDue},
	}

	aging := analytics.AgingBuckets(invoices, today)

	assert.Equal(t, analytics.Aging{Days0To30: 10, Days31To60: 20, Days61To90: 30, Over90: 40}, aging)
}

func TestOverdueInvoicesAndOpenPayables(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: "a", Status: domain.PaymentStatusOverdue},
		{ID: "b", Status: domain.PaymentStatusDue},
	}
	payables := []domain.Payable{
		{ID: "x", Status: domain.PaymentStatusPaid},
		{ID: "y", Status: domain.PaymentStatusDue},
		{ID: "z", Status: domain.PaymentStatusOverdue},
	}

	overdue := analytics.OverdueInvoices(invoices)
	open := analytics.OpenPayables(payables)

	require.Len(t, overdue, 1)
	assert.Equal(t, "a", overdue[0].ID)
	require.Len(t, open, 2)
	assert.Equal(t, "y", open[0].ID)
	assert.Equal(t, "z", open[1].ID)
}

// ============================================================================
// Offers
// ============================================================================

func TestBestQuote(t *testing.T) {
	item := domain.OfferItem{SupplierQuotes: []domain.SupplierQuote{
		{SupplierID: "S1", Price: 120},
		{SupplierID: "S2", Price: 90},
		{SupplierID: "S3", Price: 90},
	}}

	q, ok := analytics.BestQuote(item)

	require.True(t, ok)
	assert.Equal(t, "S2", q.SupplierID)

	_, ok = analytics.BestQuote(domain.OfferItem{})
	assert.False(t, ok)
}

func TestOfferCostBasis(t *testing.T) {
	offer := domain.Offer{
		TotalSellingPrice: 1000,
		Items: []domain.OfferItem{
			{ID: "i1", Quantity: 2, SupplierQuotes: []domain.SupplierQuote{{SupplierID: "S1", Price: 200}, {SupplierID: "S2", Price: 150}}},
			{ID: "i2", Quantity: 1, SupplierQuotes: []domain.SupplierQuote{{SupplierID: "S1", Price: 100}}},
			{ID: "i3", Quantity: 5},
		},
	}

	basis := analytics.OfferCostBasis(offer)

	require.Len(t, basis.Items, 3)
	assert.Equal(t, 400.0, basis.TotalCost)
	assert.Equal(t, 600.0, basis.Margin)
	assert.InDelta(t, 60.0, basis.MarginPercent, 1e-9)
	assert.Equal(t, "S2", basis.Items[0].BestQuote.SupplierID)
	assert.Nil(t, basis.Items[2].BestQuote)
	assert.Equal(t, 0.0, basis.Items[2].Cost)
}

func TestOfferCostBasis_NoSellingPrice(t *testing.T) {
	basis := analytics.OfferCostBasis(domain.Offer{})

	assert.Empty(t, basis.Items)
	assert.Equal(t, 0.0, basis.MarginPercent)
}

func TestOpenOffers(t *testing.T) {
	offers := []domain.Offer{
		{Status: domain.OfferStatusNew},
		{Status: domain.OfferStatusSent},
		{Status: domain.OfferStatusNegotiating},
		{Status: domain.OfferStatusAccepted},
		{Status: domain.OfferStatusPurchaseOrderCreated},
	}

	assert.Equal(t, 3, analytics.OpenOffers(offers))
}

func TestCommunicationCounts(t *testing.T) {
	comms := []domain.Communication{
		{ID: "1", CustomerID: "C1"},
		{ID: "2", CustomerID: "C2"},
		{ID: "3", CustomerID: "C1"},
	}

	counts := analytics.CommunicationCounts(comms)
	forC1 := analytics.CustomerCommunications(comms, "C1")

	assert.Equal(t, 2, counts["C1"])
	assert.Equal(t, 0, counts["C9"])
	require.Len(t, forC1, 2)
	assert.Equal(t, "1", forC1[0].ID)
	assert.Equal(t, "3", forC1[1].ID)
}

// ============================================================================
// Inventory
// ============================================================================

func TestDeriveInventoryStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		reorder  int
		expected domain.InventoryStatus
	}{
		{"empty", 0, 5, domain.InventoryStatusOutOfStock},
		{"negative", -1, 5, domain.InventoryStatusOutOfStock},
		{"at reorder point", 5, 5, domain.InventoryStatusLowStock},
		{"below reorder point", 3, 5, domain.InventoryStatusLowStock},
		{"above reorder point", 6, 5, domain.InventoryStatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.InventoryItem{Quantity: tt.quantity, ReorderPoint: tt.reorder}
			assert.Equal(t, tt.expected, analytics.DeriveInventoryStatus(item))
		})
	}
}

func TestReorderCandidatesAndStockValue(t *testing.T) {
	items := []domain.InventoryItem{
		{ID: "a", Quantity: 10, ReorderPoint: 2, CostPrice: 5, SellingPrice: 8},
		{ID: "b", Quantity: 2, ReorderPoint: 2, CostPrice: 100, SellingPrice: 150},
		{ID: "c", Quantity: 0, ReorderPoint: 1, CostPrice: 50, SellingPrice: 70},
	}

	candidates := analytics.ReorderCandidates(items)
	value := analytics.StockValue(items)

	require.Len(t, candidates, 2)
	assert.Equal(t, "b", candidates[0].ID)
	assert.Equal(t, "c", candidates[1].ID)
	assert.Equal(t, analytics.InventoryValue{AtCost: 250, AtSelling: 380}, value)
}
