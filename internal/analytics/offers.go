package analytics

import (
	"github.com/straye-as/bizdesk-api/internal/domain"
)

// BestQuote returns the lowest-priced quote of an item. The first quote wins ties.
func BestQuote(item domain.OfferItem) (domain.SupplierQuote, bool) {
	if len(item.SupplierQuotes) == 0 {
		return domain.SupplierQuote{}, false
	}
	best := item.SupplierQuotes[0]
	for _, q := range item.SupplierQuotes[1:] {
		if q.Price < best.Price {
			best = q
		}
	}
	return best, true
}

// ItemCost is the cheapest supplier cost of an offer line
type ItemCost struct {
	ItemID      string                `json:"itemId"`
	Description string                `json:"description"`
	Quantity    int                   `json:"quantity"`
	BestQuote   *domain.SupplierQuote `json:"bestQuote,omitempty"`
	Cost        float64               `json:"cost"`
}

// CostBasis is the cheapest total supplier cost of an offer
type CostBasis struct {
	Items         []ItemCost `json:"items"`
	TotalCost     float64    `json:"totalCost"`
	SellingPrice  float64    `json:"sellingPrice"`
	Margin        float64    `json:"margin"`
	MarginPercent float64    `json:"marginPercent"` // 0 when the offer has no selling price
}

// OfferCostBasis prices every item at its best quote. Items without quotes cost nothing.
func OfferCostBasis(offer domain.Offer) CostBasis {
	basis := CostBasis{
		Items:        make([]ItemCost, 0, len(offer.Items)),
		SellingPrice: offer.TotalSellingPrice,
	}
	for _, item := range offer.Items {
		line := ItemCost{ItemID: item.ID, Description: item.Description, Quantity: item.Quantity}
		if q, ok := BestQuote(item); ok {
			line.BestQuote = &q
			line.Cost = q.Price * float64(item.Quantity)
		}
		basis.TotalCost += line.Cost
		basis.Items = append(basis.Items, line)
	}
	basis.Margin = basis.SellingPrice - basis.TotalCost
	if basis.SellingPrice > 0 {
		basis.MarginPercent = basis.Margin / basis.SellingPrice * 100
	}
	return basis
}

// OpenOffers counts offers still waiting for a customer decision
func OpenOffers(offers []domain.Offer) int {
	n := 0
	for _, o := range offers {
		if o.Status.IsOpen() {
			n++
		}
	}
	return n
}

// CommunicationCounts returns the number of logged communications per customer
func CommunicationCounts(comms []domain.Communication) map[string]int {
	counts := make(map[string]int)
	for _, c := range comms {
		counts[c.CustomerID]++
	}
	return counts
}

// CustomerCommunications returns the communications of one customer in input order
func CustomerCommunications(comms []domain.Communication, customerID string) []domain.Communication {
	var out []domain.Communication
	for _, c := range comms {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return out
}
