// Package procurement turns accepted offers into purchase orders.
package procurement

import (
	"time"

	"github.com/straye-as/bizdesk-api/internal/analytics"
	"github.com/straye-as/bizdesk-api/internal/domain"
)

// QuoteSelector picks the quote an item is ordered at. It is only called for
// items with at least one quote.
type QuoteSelector func(item domain.OfferItem) domain.SupplierQuote

// FirstQuote orders every item from the first quote on record
func FirstQuote(item domain.OfferItem) domain.SupplierQuote {
	return item.SupplierQuotes[0]
}

// CheapestQuote orders every item from its lowest-priced quote
func CheapestQuote(item domain.OfferItem) domain.SupplierQuote {
	q, _ := analytics.BestQuote(item)
	return q
}

// Selection names a configured quote selection strategy
const (
	SelectionFirst    = "first"
	SelectionCheapest = "cheapest"
)

// SelectorFor maps a configured selection name to a selector, defaulting to FirstQuote
func SelectorFor(name string) QuoteSelector {
	if name == SelectionCheapest {
		return CheapestQuote
	}
	return FirstQuote
}

// Generate builds one purchase order draft per supplier from the offer items.
// Items without quotes are skipped; drafts follow the order in which their
// supplier first appears.
func Generate(offer domain.Offer, orderDate time.Time, selector QuoteSelector) []domain.PurchaseOrderDraft {
	if selector == nil {
		selector = FirstQuote
	}

	var drafts []domain.PurchaseOrderDraft
	bySupplier := make(map[string]int)

	for _, item := range offer.Items {
		if len(item.SupplierQuotes) == 0 {
			continue
		}
		quote := selector(item)

		i, ok := bySupplier[quote.SupplierID]
		if !ok {
			i = len(drafts)
			bySupplier[quote.SupplierID] = i
			drafts = append(drafts, domain.PurchaseOrderDraft{
				SupplierID:   quote.SupplierID,
				SupplierName: quote.SupplierName,
				OrderDate:    domain.DateOf(orderDate),
				Status:       domain.PurchaseOrderStatusSent,
				ProjectID:    copyRef(offer.ProjectID),
				OfferID:      copyRef(&offer.ID),
			})
		}

		line := domain.PurchaseOrderItem{
			ProductID:   item.ID,
			ProductName: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   quote.Price,
		}
		drafts[i].Items = append(drafts[i].Items, line)
		drafts[i].TotalAmount += float64(line.Quantity) * line.UnitPrice
	}

	return drafts
}

// ToPurchaseOrder converts a draft into an order ready to be stored
func ToPurchaseOrder(d domain.PurchaseOrderDraft) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		SupplierID:   d.SupplierID,
		SupplierName: d.SupplierName,
		OrderDate:    d.OrderDate,
		Items:        d.Items,
		TotalAmount:  d.TotalAmount,
		Status:       d.Status,
		ProjectID:    d.ProjectID,
		OfferID:      d.OfferID,
	}
}

func copyRef(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
