package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/bizdesk-api/internal/domain"
)

const (
	prefixCustomer      = "C"
	prefixSupplier      = "S"
	prefixProject       = "PROJ"
	prefixPurchaseOrder = "PO"
	prefixInvoice       = "INV"
	prefixPayable       = "PAY"
	prefixTimeLog       = "TL"
	prefixCommunication = "COMM"
	prefixProduct       = "PROD"
	prefixReport        = "REP"
	prefixOfferItem     = "ITEM"
)

// newID returns prefix followed by a short random suffix, e.g. "PO-3F2A9C1B"
func newID(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return prefix + "-" + suffix
}

// NewOfferItemID returns an id for a new offer line
func NewOfferItemID() string {
	return newID(prefixOfferItem)
}

// nextOfferID numbers quotations per year from the current offer count,
// skipping numbers that are already taken
func nextOfferID(year int, offers []domain.Offer) string {
	taken := make(map[string]struct{}, len(offers))
	for _, o := range offers {
		taken[o.ID] = struct{}{}
	}
	for n := len(offers) + 1; ; n++ {
		id := fmt.Sprintf("Q-%d-%03d", year, n)
		if _, ok := taken[id]; !ok {
			return id
		}
	}
}

func reportID(now time.Time) string {
	return fmt.Sprintf("%s-%d", prefixReport, now.UnixNano())
}
