// Package analytics derives read-only figures from the business desk dataset.
// All functions are pure: they never modify their inputs and tolerate nil slices.
package analytics

import (
	"github.com/straye-as/bizdesk-api/internal/domain"
)

// Financials is the profitability of one project
type Financials struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCost    float64 `json:"totalCost"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
	TotalHours   float64 `json:"totalHours"`
}

// ProjectFinancials sums the invoices, purchase orders and time logs linked to projectID.
// Revenue counts every invoice regardless of its payment status.
func ProjectFinancials(projectID string, invoices []domain.Invoice, purchaseOrders []domain.PurchaseOrder, timeLogs []domain.TimeLog) Financials {
	var f Financials
	for _, inv := range invoices {
		if linkedTo(inv.ProjectID, projectID) {
			f.TotalRevenue += inv.Amount
		}
	}
	for _, po := range purchaseOrders {
		if linkedTo(po.ProjectID, projectID) {
			f.TotalCost += po.TotalAmount
		}
	}
	for _, tl := range timeLogs {
		if tl.ProjectID == projectID {
			f.TotalHours += tl.Hours
		}
	}

	f.Profit = f.TotalRevenue - f.TotalCost
	if f.TotalRevenue > 0 {
		f.ProfitMargin = f.Profit / f.TotalRevenue * 100
	}
	return f
}

// ProjectProfitability is one row of the project portfolio
type ProjectProfitability struct {
	domain.Project
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCost    float64 `json:"totalCost"`
	Profit       float64 `json:"profit"`
}

// PortfolioProfitability returns one row per project, in input order
func PortfolioProfitability(projects []domain.Project, invoices []domain.Invoice, purchaseOrders []domain.PurchaseOrder) []ProjectProfitability {
	rows := make([]ProjectProfitability, 0, len(projects))
	for _, p := range projects {
		f := ProjectFinancials(p.ID, invoices, purchaseOrders, nil)
		rows = append(rows, ProjectProfitability{
			Project:      p,
			TotalRevenue: f.TotalRevenue,
			TotalCost:    f.TotalCost,
			Profit:       f.Profit,
		})
	}
	return rows
}

// TotalProfit sums the profit of every portfolio row
func TotalProfit(rows []ProjectProfitability) float64 {
	var total float64
	for _, r := range rows {
		total += r.Profit
	}
	return total
}

func linkedTo(ref *string, id string) bool {
	return ref != nil && *ref == id
}
