package analytics

import (
	"time"

	"github.com/straye-as/bizdesk-api/internal/domain"
)

// derivePaymentStatus returns the status a record should have on today.
// Paid is final; otherwise a due date strictly before today means overdue.
func derivePaymentStatus(current domain.PaymentStatus, dueDate, today time.Time) domain.PaymentStatus {
	if current == domain.PaymentStatusPaid {
		return current
	}
	if domain.DateOf(dueDate).Before(domain.DateOf(today)) {
		return domain.PaymentStatusOverdue
	}
	return domain.PaymentStatusDue
}

// RefreshInvoiceStatuses re-derives due/overdue for every unpaid invoice.
// When nothing changes the input slice is returned as is together with false.
func RefreshInvoiceStatuses(invoices []domain.Invoice, today time.Time) ([]domain.Invoice, bool) {
	var out []domain.Invoice
	for i, inv := range invoices {
		status := derivePaymentStatus(inv.Status, inv.DueDate, today)
		if status == inv.Status {
			continue
		}
		if out == nil {
			out = make([]domain.Invoice, len(invoices))
			copy(out, invoices)
		}
		out[i].Status = status
	}
	if out == nil {
		return invoices, false
	}
	return out, true
}

// RefreshPayableStatuses applies the invoice rule to supplier payables
func RefreshPayableStatuses(payables []domain.Payable, today time.Time) ([]domain.Payable, bool) {
	var out []domain.Payable
	for i, p := range payables {
		status := derivePaymentStatus(p.Status, p.DueDate, today)
		if status == p.Status {
			continue
		}
		if out == nil {
			out = make([]domain.Payable, len(payables))
			copy(out, payables)
		}
		out[i].Status = status
	}
	if out == nil {
		return payables, false
	}
	return out, true
}

// StatusTotals sums amounts per payment status
type StatusTotals struct {
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Due     float64 `json:"due"`
	Overdue float64 `json:"overdue"`
	Count   int     `json:"count"`
}

func (t *StatusTotals) add(status domain.PaymentStatus, amount float64) {
	t.Total += amount
	t.Count++
	switch status {
	case domain.PaymentStatusPaid:
		t.Paid += amount
	case domain.PaymentStatusDue:
		t.Due += amount
	case domain.PaymentStatusOverdue:
		t.Overdue += amount
	}
}

// ReceivablesSummary totals invoice amounts per status
func ReceivablesSummary(invoices []domain.Invoice) StatusTotals {
	var t StatusTotals
	for _, inv := range invoices {
		t.add(inv.Status, inv.Amount)
	}
	return t
}

// PayablesSummary totals payable amounts per status
func PayablesSummary(payables []domain.Payable) StatusTotals {
	var t StatusTotals
	for _, p := range payables {
		t.add(p.Status, p.Amount)
	}
	return t
}

// Aging groups outstanding overdue amounts by days past due
type Aging struct {
	Days0To30  float64 `json:"days0To30"`
	Days31To60 float64 `json:"days31To60"`
	Days61To90 float64 `json:"days61To90"`
	Over90     float64 `json:"over90"`
}

// AgingBuckets classifies every unpaid invoice whose due date has passed
func AgingBuckets(invoices []domain.Invoice, today time.Time) Aging {
	var a Aging
	today = domain.DateOf(today)
	for _, inv := range invoices {
		if inv.Status == domain.PaymentStatusPaid {
			continue
		}
		due := domain.DateOf(inv.DueDate)
		if !due.Before(today) {
			continue
		}
		days := int(today.Sub(due).Hours() / 24)
		switch {
		case days <= 30:
			a.Days0To30 += inv.Amount
		case days <= 60:
			a.Days31To60 += inv.Amount
		case days <= 90:
			a.Days61To90 += inv.Amount
		default:
			a.Over90 += inv.Amount
		}
	}
	return a
}

// OverdueInvoices returns the invoices currently marked overdue
func OverdueInvoices(invoices []domain.Invoice) []domain.Invoice {
	var out []domain.Invoice
	for _, inv := range invoices {
		if inv.Status == domain.PaymentStatusOverdue {
			out = append(out, inv)
		}
	}
	return out
}

// OpenPayables returns the payables that still have to be paid
func OpenPayables(payables []domain.Payable) []domain.Payable {
	var out []domain.Payable
	for _, p := range payables {
		if p.Status != domain.PaymentStatusPaid {
			out = append(out, p)
		}
	}
	return out
}
