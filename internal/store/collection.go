package store

import (
	"github.com/straye-as/bizdesk-api/internal/domain"
)

func customerKey(c domain.Customer) string { return c.ID }
func supplierKey(s domain.Supplier) string { return s.ID }
func projectKey(p domain.Project) string { return p.ID }
func offerKey(o domain.Offer) string { return o.ID }
func purchaseOrderKey(po domain.PurchaseOrder) string { return po.ID }
func invoiceKey(inv domain.Invoice) string { return inv.ID }
func payableKey(p domain.Payable) string { return p.ID }
func savedReportKey(r domain.SavedReport) string { return r.ID }

func indexOf[T any](items []T, id string, key func(T) string) int {
	if id == "" {
		return -1
	}
	for i := range items {
		if key(items[i]) == id {
			return i
		}
	}
	return -1
}

// appendCopy returns a new slice holding items followed by extra
func appendCopy[T any](items []T, extra ...T) []T {
	out := make([]T, 0, len(items)+len(extra))
	out = append(out, items...)
	return append(out, extra...)
}

// replaceAt returns a copy of items with position i set to v
func replaceAt[T any](items []T, i int, v T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[i] = v
	return out
}

// removeAt returns a copy of items without position i
func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// update applies fn to the element with the given id and returns the new element
// together with the swapped collection
func update[T any](items []T, id string, key func(T) string, fn func(T) (T, error)) (T, []T, error) {
	var zero T
	i := indexOf(items, id, key)
	if i < 0 {
		return zero, nil, ErrNotFound
	}
	updated, err := fn(items[i])
	if err != nil {
		return zero, nil, err
	}
	return updated, replaceAt(items, i, updated), nil
}
