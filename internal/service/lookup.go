package service

import (
	"errors"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/store"
)

type identified interface {
	domain.Customer | domain.Supplier | domain.Project | domain.Offer | domain.PurchaseOrder |
		domain.Invoice | domain.Payable | domain.InventoryItem | domain.SavedReport
}

func recordID[T identified](v *T) string {
	switch r := any(v).(type) {
	case *domain.Customer:
		return r.ID
	case *domain.Supplier:
		return r.ID
	case *domain.Project:
		return r.ID
	case *domain.Offer:
		return r.ID
	case *domain.PurchaseOrder:
		return r.ID
	case *domain.Invoice:
		return r.ID
	case *domain.Payable:
		return r.ID
	case *domain.InventoryItem:
		return r.ID
	case *domain.SavedReport:
		return r.ID
	}
	return ""
}

// findByID returns the record with id from a snapshot collection
func findByID[T identified](items []T, id string) (T, bool) {
	for i := range items {
		if recordID(&items[i]) == id {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// notFound translates the store's not found error into the entity sentinel
func notFound(err, sentinel error) error {
	if errors.Is(err, store.ErrNotFound) {
		return sentinel
	}
	return err
}
