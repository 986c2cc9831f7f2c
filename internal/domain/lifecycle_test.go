package domain_test

import (
	"testing"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOfferStatus_CommissionIsWriteOnce(t *testing.T) {
	offer := domain.Offer{ID: "Q-2024-001", Status: domain.OfferStatusSent, TotalSellingPrice: 100000}

	accepted, err := domain.ApplyOfferStatus(offer, domain.OfferStatusAccepted)
	require.NoError(t, err)
	require.NotNil(t, accepted.Commission)
	assert.Equal(t, 5000.0, *accepted.Commission)

	accepted.TotalSellingPrice = 250000
	again, err := domain.ApplyOfferStatus(accepted, domain.OfferStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, *again.Commission)

	// moving away and back keeps the first commission too
	negotiating, err := domain.ApplyOfferStatus(again, domain.OfferStatusNegotiating)
	require.NoError(t, err)
	back, err := domain.ApplyOfferStatus(negotiating, domain.OfferStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, *back.Commission)
}

func TestApplyOfferStatus_NoCommissionWithoutPrice(t *testing.T) {
	offer := domain.Offer{Status: domain.OfferStatusNew}

	accepted, err := domain.ApplyOfferStatus(offer, domain.OfferStatusAccepted)

	require.NoError(t, err)
	assert.Nil(t, accepted.Commission)
}

func TestApplyOfferStatus_DoesNotModifyInput(t *testing.T) {
	offer := domain.Offer{Status: domain.OfferStatusSent, TotalSellingPrice: 1000}

	_, err := domain.ApplyOfferStatus(offer, domain.OfferStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusSent, offer.Status)
	assert.Nil(t, offer.Commission)
}

func TestApplyOfferStatus_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		current domain.OfferStatus
		target  domain.OfferStatus
		err     error
	}{
		{"unknown target", domain.OfferStatusNew, domain.OfferStatus("archived"), domain.ErrInvalidStatus},
		{"terminal offer", domain.OfferStatusPurchaseOrderCreated, domain.OfferStatusSent, domain.ErrOfferStatusLocked},
		{"terminal offer to itself", domain.OfferStatusPurchaseOrderCreated, domain.OfferStatusPurchaseOrderCreated, domain.ErrOfferStatusLocked},
		{"manual purchase order status", domain.OfferStatusAccepted, domain.OfferStatusPurchaseOrderCreated, domain.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := domain.Offer{Status: tt.current}

			result, err := domain.ApplyOfferStatus(offer, tt.target)

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.current, result.Status)
		})
	}
}

func TestMarkPurchaseOrdersCreated(t *testing.T) {
	offer := domain.Offer{Status: domain.OfferStatusAccepted}

	done, err := domain.MarkPurchaseOrdersCreated(offer)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusPurchaseOrderCreated, done.Status)

	_, err = domain.MarkPurchaseOrdersCreated(done)
	assert.ErrorIs(t, err, domain.ErrOfferStatusLocked)
}

func TestApplyPaymentStatus(t *testing.T) {
	status, err := domain.ApplyPaymentStatus(domain.PaymentStatusOverdue, domain.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, status)

	status, err = domain.ApplyPaymentStatus(domain.PaymentStatusDue, domain.PaymentStatusDue)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusDue, status)

	_, err = domain.ApplyPaymentStatus(domain.PaymentStatusDue, domain.PaymentStatusOverdue)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	_, err = domain.ApplyPaymentStatus(domain.PaymentStatusPaid, domain.PaymentStatusDue)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	_, err = domain.ApplyPaymentStatus(domain.PaymentStatusDue, domain.PaymentStatus("cancelled"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestOfferStatusPredicates(t *testing.T) {
	assert.True(t, domain.OfferStatusPurchaseOrderCreated.IsTerminal())
	assert.False(t, domain.OfferStatusAccepted.IsTerminal())
	assert.True(t, domain.OfferStatusPricing.IsOpen())
	assert.False(t, domain.OfferStatusRejected.IsOpen())
	assert.Equal(t, "مقبول", domain.OfferStatusAccepted.Label())
	assert.Equal(t, "unknown", domain.OfferStatus("unknown").Label())
}
