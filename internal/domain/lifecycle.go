package domain

import "errors"

// CommissionRate is the share of the selling price earned when an offer is accepted
const CommissionRate = 0.05

var (
	// ErrInvalidStatus is returned for a value outside the status enum
	ErrInvalidStatus = errors.New("invalid status")

	// ErrOfferStatusLocked is returned when the offer already reached a terminal status
	ErrOfferStatusLocked = errors.New("offer status is locked")

	// ErrInvalidStatusTransition is returned when a status can not be set manually
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// ApplyOfferStatus returns a copy of offer moved to target.
// Accepting an offer with a positive price and no commission records the commission;
// an existing commission is never recomputed.
func ApplyOfferStatus(offer Offer, target OfferStatus) (Offer, error) {
	if !target.IsValid() {
		return offer, ErrInvalidStatus
	}
	if offer.Status.IsTerminal() {
		return offer, ErrOfferStatusLocked
	}
	if target == OfferStatusPurchaseOrderCreated {
		// only reachable through purchase order generation
		return offer, ErrInvalidStatusTransition
	}

	offer.Status = target
	if target == OfferStatusAccepted && offer.Commission == nil && offer.TotalSellingPrice > 0 {
		commission := offer.TotalSellingPrice * CommissionRate
		offer.Commission = &commission
	}
	return offer, nil
}

// MarkPurchaseOrdersCreated moves an accepted offer to its terminal status
func MarkPurchaseOrdersCreated(offer Offer) (Offer, error) {
	if offer.Status.IsTerminal() {
		return offer, ErrOfferStatusLocked
	}
	offer.Status = OfferStatusPurchaseOrderCreated
	return offer, nil
}

// ApplyPaymentStatus validates a manual status change of an invoice or payable.
// Only paid may be set by hand; due and overdue follow from the due date.
func ApplyPaymentStatus(current, target PaymentStatus) (PaymentStatus, error) {
	if !target.IsValid() {
		return current, ErrInvalidStatus
	}
	if target == current {
		return current, nil
	}
	if target != PaymentStatusPaid {
		return current, ErrInvalidStatusTransition
	}
	return PaymentStatusPaid, nil
}
