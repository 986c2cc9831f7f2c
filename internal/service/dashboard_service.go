package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/straye-as/bizdesk-api/internal/analytics"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/mapper"
	"github.com/straye-as/bizdesk-api/internal/store"
	"go.uber.org/zap"
)

const (
	recentPurchaseOrdersLimit = 5
	searchLimit               = 10
)

type DashboardService struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewDashboardService(st *store.Store, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

// GetMetrics aggregates the dashboard figures as of today
func (s *DashboardService) GetMetrics(ctx context.Context) (*domain.DashboardDTO, error) {
	today := domain.DateOf(s.now())
	s.store.RefreshPaymentStatuses(ctx, today)
	ds := s.store.Snapshot()

	portfolio := analytics.PortfolioProfitability(ds.Projects, ds.Invoices, ds.PurchaseOrders)
	stock := analytics.StockValue(ds.Inventory)

	recent := slices.Clone(ds.PurchaseOrders)
	slices.SortStableFunc(recent, func(a, b domain.PurchaseOrder) int {
		return b.OrderDate.Compare(a.OrderDate)
	})
	if len(recent) > recentPurchaseOrdersLimit {
		recent = recent[:recentPurchaseOrdersLimit]
	}
	recentDTOs := make([]domain.PurchaseOrderDTO, len(recent))
	for i := range recent {
		recentDTOs[i] = mapper.ToPurchaseOrderDTO(&recent[i])
	}

	return &domain.DashboardDTO{
		Receivables:          mapper.ToPaymentTotalsDTO(analytics.ReceivablesSummary(ds.Invoices)),
		Payables:             mapper.ToPaymentTotalsDTO(analytics.PayablesSummary(ds.Payables)),
		Aging:                mapper.ToAgingDTO(analytics.AgingBuckets(ds.Invoices, today)),
		ActiveCustomers:      len(ds.Customers),
		OpenOffers:           analytics.OpenOffers(ds.Offers),
		PortfolioProfit:      analytics.TotalProfit(portfolio),
		LowStockItems:        len(analytics.ReorderCandidates(ds.Inventory)),
		StockValueAtCost:     stock.AtCost,
		StockValueAtSelling:  stock.AtSelling,
		RecentPurchaseOrders: recentDTOs,
	}, nil
}

// Search matches customers, suppliers and projects by name and offers by subject,
// case-insensitively
func (s *DashboardService) Search(ctx context.Context, query string) *domain.SearchResults {
	ds := s.store.Snapshot()
	q := strings.ToLower(strings.TrimSpace(query))
	results := &domain.SearchResults{
		Customers: []domain.CustomerDTO{},
		Suppliers: []domain.SupplierDTO{},
		Projects:  []domain.ProjectDTO{},
		Offers:    []domain.OfferDTO{},
	}
	if q == "" {
		return results
	}
	match := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}

	counts := analytics.CommunicationCounts(ds.Communications)
	for i := range ds.Customers {
		if len(results.Customers) < searchLimit && match(ds.Customers[i].Name, ds.Customers[i].ContactPerson) {
			results.Customers = append(results.Customers, mapper.ToCustomerDTO(&ds.Customers[i], counts[ds.Customers[i].ID]))
		}
	}
	for i := range ds.Suppliers {
		if len(results.Suppliers) < searchLimit && match(ds.Suppliers[i].Name, ds.Suppliers[i].ContactPerson) {
			results.Suppliers = append(results.Suppliers, mapper.ToSupplierDTO(&ds.Suppliers[i]))
		}
	}
	for i := range ds.Projects {
		if len(results.Projects) < searchLimit && match(ds.Projects[i].Name, ds.Projects[i].CustomerName) {
			results.Projects = append(results.Projects, mapper.ToProjectDTO(&ds.Projects[i]))
		}
	}
	for i := range ds.Offers {
		if len(results.Offers) < searchLimit && match(ds.Offers[i].ID, ds.Offers[i].Subject, ds.Offers[i].CustomerName) {
			results.Offers = append(results.Offers, mapper.ToOfferDTO(&ds.Offers[i]))
		}
	}

	results.Total = len(results.Customers) + len(results.Suppliers) + len(results.Projects) + len(results.Offers)
	return results
}
