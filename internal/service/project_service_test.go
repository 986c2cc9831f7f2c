package service_test

import (
	"context"
	"testing"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProjectService_Financials(t *testing.T) {
	svc := service.NewProjectService(newTestStore(), nil, zap.NewNop())

	f, err := svc.Financials(context.Background(), "P1")

	require.NoError(t, err)
	assert.Equal(t, 150.0, f.TotalRevenue)
	assert.Equal(t, 30.0, f.TotalCost)
	assert.Equal(t, 120.0, f.Profit)
	assert.InDelta(t, 80.0, f.ProfitMargin, 1e-9)

	_, err = svc.Financials(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestProjectService_GetByIDCollectsLinkedRecords(t *testing.T) {
	svc := service.NewProjectService(newTestStore(), nil, zap.NewNop())

	detail, err := svc.GetByID(context.Background(), "P1")

	require.NoError(t, err)
	assert.Equal(t, "Warehouse fit-out", detail.Project.Name)
	assert.Len(t, detail.Offers, 1)
	assert.Len(t, detail.Invoices, 2)
	assert.Len(t, detail.PurchaseOrders, 1)
	assert.NotNil(t, detail.TimeLogs)
	assert.Empty(t, detail.TimeLogs)
}

func TestProjectService_CreateUpdateLogTime(t *testing.T) {
	ctx := context.Background()
	svc := service.NewProjectService(newTestStore(), nil, zap.NewNop())

	_, err := svc.Create(ctx, &domain.CreateProjectRequest{Name: "x", CustomerID: "nobody"})
	assert.ErrorIs(t, err, service.ErrCustomerNotFound)

	_, err = svc.Create(ctx, &domain.CreateProjectRequest{Name: "x", CustomerID: "C2", Status: "paused"})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)

	project, err := svc.Create(ctx, &domain.CreateProjectRequest{Name: "Lab", CustomerID: "C2"})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusPlanning, project.Status)
	assert.Equal(t, "Delta Schools", project.CustomerName)

	updated, err := svc.Update(ctx, project.ID, &domain.UpdateProjectRequest{Name: "Science lab", Status: domain.ProjectStatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusInProgress, updated.Status)

	tl, err := svc.LogTime(ctx, project.ID, &domain.CreateTimeLogRequest{UserName: "Ali", Date: "2024-08-01", Hours: 3.5, Task: "Survey"})
	require.NoError(t, err)
	assert.Equal(t, "2024-08-01", tl.Date)

	f, err := svc.Financials(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.5, f.TotalHours)

	_, err = svc.LogTime(ctx, "missing", &domain.CreateTimeLogRequest{UserName: "Ali", Date: "2024-08-01", Hours: 1, Task: "x"})
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestProjectService_ListPortfolio(t *testing.T) {
	rows := service.NewProjectService(newTestStore(), nil, zap.NewNop()).List(context.Background())

	require.Len(t, rows, 1)
	assert.Equal(t, 120.0, rows[0].Profit)
}

func TestCustomerService(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCustomerService(newTestStore(), zap.NewNop())

	created, err := svc.Create(ctx, &domain.SaveCustomerRequest{Name: "New Co"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, isNew, err := svc.Update(ctx, "C1", &domain.SaveCustomerRequest{Name: "Acme Holding"})
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, "Acme Holding", updated.Name)
	assert.Equal(t, "2023-01-01", updated.RegistrationDate)

	_, isNew, err = svc.Update(ctx, "C-EXT", &domain.SaveCustomerRequest{Name: "Imported"})
	require.NoError(t, err)
	assert.True(t, isNew)

	assert.Len(t, svc.List(ctx), 4)

	require.NoError(t, svc.Delete(ctx, "C2"))
	assert.ErrorIs(t, svc.Delete(ctx, "C2"), service.ErrCustomerNotFound)
	_, err = svc.Communications(ctx, "C2")
	assert.ErrorIs(t, err, service.ErrCustomerNotFound)
}

func TestDashboardService(t *testing.T) {
	ctx := context.Background()
	svc := service.NewDashboardService(newTestStore(), zap.NewNop())

	m, err := svc.GetMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, m.ActiveCustomers)
	assert.Equal(t, 1, m.OpenOffers)
	assert.Equal(t, 120.0, m.PortfolioProfit)
	assert.Equal(t, 1, m.LowStockItems)
	assert.Equal(t, 150.0, m.Receivables.Total)
	assert.Len(t, m.RecentPurchaseOrders, 1)

	results := svc.Search(ctx, "  acme ")
	assert.Len(t, results.Customers, 1)
	assert.Len(t, results.Projects, 1)
	assert.Len(t, results.Offers, 1)
	assert.Equal(t, 3, results.Total)

	empty := svc.Search(ctx, "")
	assert.Zero(t, empty.Total)
	assert.NotNil(t, empty.Customers)
}

func TestInventoryService(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{text: "اطلب المزيد"}
	svc := service.NewInventoryService(newTestStore(), gen, nil, zap.NewNop())

	item, err := svc.Create(ctx, &domain.CreateInventoryItemRequest{Name: "Switch", SKU: "SW-1", Quantity: 0, ReorderPoint: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.InventoryStatusOutOfStock, item.Status)

	advice, err := svc.Advice(ctx)
	require.NoError(t, err)
	assert.Equal(t, "اطلب المزيد", advice.Advice)
	assert.Len(t, advice.ReorderCandidates, 2)
}

func TestCommunicationService(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCommunicationService(newTestStore(), zap.NewNop())

	_, err := svc.Create(ctx, &domain.CreateCommunicationRequest{CustomerID: "C1", Type: "fax", Summary: "x"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.Create(ctx, &domain.CreateCommunicationRequest{CustomerID: "C1", Type: domain.CommunicationTypeEmail, Summary: "x", OfferID: strPtr("nope")})
	assert.ErrorIs(t, err, service.ErrOfferNotFound)

	comm, err := svc.Create(ctx, &domain.CreateCommunicationRequest{CustomerID: "C1", Date: "2024-07-30", Type: domain.CommunicationTypeEmail, Summary: "Sent the offer"})
	require.NoError(t, err)
	assert.Equal(t, "2024-07-30", comm.Date)
	assert.Len(t, svc.List(ctx), 1)
}

func TestPurchaseOrderService(t *testing.T) {
	ctx := context.Background()
	svc := service.NewPurchaseOrderService(newTestStore(), nil, zap.NewNop())

	po, err := svc.UpdateStatus(ctx, "PO-1", domain.PurchaseOrderStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, domain.PurchaseOrderStatusReceived, po.Status)

	// no transition rules: any valid status may follow
	po, err = svc.UpdateStatus(ctx, "PO-1", domain.PurchaseOrderStatusDraft)
	require.NoError(t, err)
	assert.Equal(t, domain.PurchaseOrderStatusDraft, po.Status)

	_, err = svc.UpdateStatus(ctx, "PO-1", "lost")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrPurchaseOrderNotFound)
}
