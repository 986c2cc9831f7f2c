package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/straye-as/bizdesk-api/internal/database"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/repository"
	"github.com/straye-as/bizdesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every connection of an in-memory sqlite database is a new database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

func TestJournalRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewJournalRepository(setupTestDB(t))

	empty, err := repo.IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	offer := &domain.Offer{
		ID: "Q-2024-001", CustomerID: "C1", CustomerName: "Acme Trading", Subject: "Steel",
		IssueDate: day("2024-07-01"), ValidUntil: day("2024-08-01"), Status: domain.OfferStatusSent,
		Items: []domain.OfferItem{
			{ID: "i1", Description: "Beams", Quantity: 2, SupplierQuotes: []domain.SupplierQuote{{SupplierID: "S1", SupplierName: "Steel Co", Price: 100}}},
		},
		TotalSellingPrice: 400,
		ProjectID:         strPtr("P1"),
	}
	require.NoError(t, repo.Save(ctx,
		&domain.Customer{ID: "C1", Name: "Acme Trading", RegistrationDate: day("2023-01-01")},
		offer,
		&domain.SavedReport{ID: "REP-1", SavedAt: day("2024-07-24"), Query: "q", Response: domain.AiReport{
			Summary: "s", ChartType: domain.ChartTypeBar, ChartData: []map[string]any{{"name": "a", "value": 1.5}},
		}},
	))

	empty, err = repo.IsEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)

	ds, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, ds.Customers, 1)
	require.Len(t, ds.Offers, 1)
	loaded := ds.Offers[0]
	assert.Equal(t, "Acme Trading", loaded.CustomerName)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Steel Co", loaded.Items[0].SupplierQuotes[0].SupplierName)
	require.NotNil(t, loaded.ProjectID)
	assert.Equal(t, "P1", *loaded.ProjectID)
	assert.Equal(t, "2024-08-01", domain.FormatDate(loaded.ValidUntil))

	require.Len(t, ds.SavedReports, 1)
	assert.Equal(t, domain.ChartTypeBar, ds.SavedReports[0].Response.ChartType)
	assert.Equal(t, 1.5, ds.SavedReports[0].Response.ChartData[0]["value"])
}

func TestJournalRepository_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewJournalRepository(setupTestDB(t))

	inv := &domain.Invoice{ID: "INV-1", CustomerID: "C1", IssueDate: day("2024-07-01"), DueDate: day("2024-07-31"), Amount: 100, Status: domain.PaymentStatusDue}
	require.NoError(t, repo.Save(ctx, inv))

	inv.Status = domain.PaymentStatusOverdue
	require.NoError(t, repo.Save(ctx, inv))

	ds, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, ds.Invoices, 1)
	assert.Equal(t, domain.PaymentStatusOverdue, ds.Invoices[0].Status)
}

func TestJournalRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewJournalRepository(setupTestDB(t))

	require.NoError(t, repo.Save(ctx,
		&domain.Supplier{ID: "S1", Name: "Steel Co"},
		&domain.Supplier{ID: "S2", Name: "Paint House"},
	))
	require.NoError(t, repo.Delete(ctx, &domain.Supplier{}, "S1"))

	ds, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, ds.Suppliers, 1)
	assert.Equal(t, "S2", ds.Suppliers[0].ID)
}

func TestJournalRepository_SaveNothing(t *testing.T) {
	repo := repository.NewJournalRepository(setupTestDB(t))

	assert.NoError(t, repo.Save(context.Background()))
}

func TestJournalRepository_SeedRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewJournalRepository(setupTestDB(t))
	seed := store.SeedDataset()

	require.NoError(t, repo.SaveDataset(ctx, seed))

	ds, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, ds.Customers, len(seed.Customers))
	assert.Len(t, ds.Offers, len(seed.Offers))
	assert.Len(t, ds.Invoices, len(seed.Invoices))
	assert.Len(t, ds.Inventory, len(seed.Inventory))
	assert.Len(t, ds.SavedReports, len(seed.SavedReports))
}

// The journal backs the store: changes made through the store reach the database.
func TestJournalRepository_AsStoreJournal(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewJournalRepository(setupTestDB(t))
	st := store.New(domain.Dataset{}, zap.NewNop(), store.WithJournal(repo))

	c, created := st.SaveCustomer(ctx, domain.Customer{ID: "C9", Name: "Journaled"})
	require.True(t, created)
	st.AddInvoice(ctx, domain.Invoice{CustomerID: c.ID, IssueDate: day("2024-07-01"), DueDate: day("2024-07-31"), Amount: 10, Status: domain.PaymentStatusDue})

	ds, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, ds.Customers, 1)
	require.Len(t, ds.Invoices, 1)
	assert.Equal(t, "Journaled", ds.Invoices[0].CustomerName)

	require.NoError(t, st.DeleteCustomer(ctx, "C9"))
	ds, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, ds.Customers)
	assert.Len(t, ds.Invoices, 1)
}
