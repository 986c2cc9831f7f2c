package repository

import (
	"context"
	"fmt"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"gorm.io/gorm"
)

// JournalRepository mirrors store changes into the database and reloads them at startup
type JournalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Save upserts every record in one transaction
func (r *JournalRepository) Save(ctx context.Context, records ...any) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			if err := tx.Save(rec).Error; err != nil {
				return fmt.Errorf("failed to save %T: %w", rec, err)
			}
		}
		return nil
	})
}

// Delete removes the row with id from the table of model
func (r *JournalRepository) Delete(ctx context.Context, model any, id string) error {
	return r.db.WithContext(ctx).Delete(model, "id = ?", id).Error
}

// Load reads the whole dataset
func (r *JournalRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	var ds domain.Dataset
	db := r.db.WithContext(ctx)

	loads := []struct {
		name  string
		dest  any
		order string
	}{
		{"customers", &ds.Customers, "id"},
		{"suppliers", &ds.Suppliers, "id"},
		{"projects", &ds.Projects, "id"},
		{"offers", &ds.Offers, "issue_date, id"},
		{"purchase orders", &ds.PurchaseOrders, "order_date, id"},
		{"invoices", &ds.Invoices, "issue_date, id"},
		{"payables", &ds.Payables, "issue_date, id"},
		{"time logs", &ds.TimeLogs, "date, id"},
		{"communications", &ds.Communications, "date, id"},
		{"inventory", &ds.Inventory, "id"},
		{"saved reports", &ds.SavedReports, "saved_at DESC, id DESC"},
	}
	for _, l := range loads {
		if err := db.Order(l.order).Find(l.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", l.name, err)
		}
	}
	return &ds, nil
}

// IsEmpty reports whether the journal holds no customers, suppliers or offers yet
func (r *JournalRepository) IsEmpty(ctx context.Context) (bool, error) {
	for _, model := range []any{&domain.Customer{}, &domain.Supplier{}, &domain.Offer{}} {
		var count int64
		if err := r.db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return false, nil
		}
	}
	return true, nil
}

// SaveDataset writes every record of ds, used to persist the seed dataset
func (r *JournalRepository) SaveDataset(ctx context.Context, ds domain.Dataset) error {
	var records []any
	for i := range ds.Customers {
		records = append(records, &ds.Customers[i])
	}
	for i := range ds.Suppliers {
		records = append(records, &ds.Suppliers[i])
	}
	for i := range ds.Projects {
		records = append(records, &ds.Projects[i])
	}
	for i := range ds.Offers {
		records = append(records, &ds.Offers[i])
	}
	for i := range ds.PurchaseOrders {
		records = append(records, &ds.PurchaseOrders[i])
	}
	for i := range ds.Invoices {
		records = append(records, &ds.Invoices[i])
	}
	for i := range ds.Payables {
		records = append(records, &ds.Payables[i])
	}
	for i := range ds.TimeLogs {
		records = append(records, &ds.TimeLogs[i])
	}
	for i := range ds.Communications {
		records = append(records, &ds.Communications[i])
	}
	for i := range ds.Inventory {
		records = append(records, &ds.Inventory[i])
	}
	for i := range ds.SavedReports {
		records = append(records, &ds.SavedReports[i])
	}
	return r.Save(ctx, records...)
}
