package mapper

import (
	"github.com/straye-as/bizdesk-api/internal/analytics"
	"github.com/straye-as/bizdesk-api/internal/domain"
)

// ToCustomerDTO converts Customer to CustomerDTO
func ToCustomerDTO(customer *domain.Customer, communicationCount int) domain.CustomerDTO {
	return domain.CustomerDTO{
		ID:                 customer.ID,
		Name:               customer.Name,
		ContactPerson:      customer.ContactPerson,
		Email:              customer.Email,
		Phone:              customer.Phone,
		RegistrationDate:   domain.FormatDate(customer.RegistrationDate),
		CommunicationCount: communicationCount,
	}
}

// ToSupplierDTO converts Supplier to SupplierDTO
func ToSupplierDTO(supplier *domain.Supplier) domain.SupplierDTO {
	return domain.SupplierDTO{
		ID:            supplier.ID,
		Name:          supplier.Name,
		ContactPerson: supplier.ContactPerson,
		Email:         supplier.Email,
		Phone:         supplier.Phone,
	}
}

// ToProjectDTO converts Project to ProjectDTO
func ToProjectDTO(project *domain.Project) domain.ProjectDTO {
	return domain.ProjectDTO{
		ID:           project.ID,
		Name:         project.Name,
		CustomerID:   project.CustomerID,
		CustomerName: project.CustomerName,
		Status:       project.Status,
		StatusLabel:  project.Status.Label(),
	}
}

// ToProjectSummaryDTO converts a portfolio row
func ToProjectSummaryDTO(row *analytics.ProjectProfitability) domain.ProjectSummaryDTO {
	return domain.ProjectSummaryDTO{
		ProjectDTO:   ToProjectDTO(&row.Project),
		TotalRevenue: row.TotalRevenue,
		TotalCost:    row.TotalCost,
		Profit:       row.Profit,
	}
}

func ToProjectFinancialsDTO(f analytics.Financials) domain.ProjectFinancialsDTO {
	return domain.ProjectFinancialsDTO{
		TotalRevenue: f.TotalRevenue,
		TotalCost:    f.TotalCost,
		Profit:       f.Profit,
		ProfitMargin: f.ProfitMargin,
		TotalHours:   f.TotalHours,
	}
}

// ToOfferDTO converts Offer to OfferDTO
func ToOfferDTO(offer *domain.Offer) domain.OfferDTO {
	items := make([]domain.OfferItemDTO, len(offer.Items))
	for i, item := range offer.Items {
		quotes := item.SupplierQuotes
		if quotes == nil {
			quotes = []domain.SupplierQuote{}
		}
		items[i] = domain.OfferItemDTO{
			ID:                  item.ID,
			Description:         item.Description,
			Quantity:            item.Quantity,
			SupplierQuotes:      quotes,
			SellingPricePerUnit: item.SellingPricePerUnit,
		}
	}

	return domain.OfferDTO{
		ID:                offer.ID,
		CustomerID:        offer.CustomerID,
		CustomerName:      offer.CustomerName,
		Subject:           offer.Subject,
		IssueDate:         domain.FormatDate(offer.IssueDate),
		ValidUntil:        domain.FormatDate(offer.ValidUntil),
		Status:            offer.Status,
		StatusLabel:       offer.Status.Label(),
		StatusLocked:      offer.Status.IsTerminal(),
		Items:             items,
		TotalSellingPrice: offer.TotalSellingPrice,
		Commission:        offer.Commission,
		ProjectID:         offer.ProjectID,
	}
}

// ToPurchaseOrderDTO converts PurchaseOrder to PurchaseOrderDTO
func ToPurchaseOrderDTO(po *domain.PurchaseOrder) domain.PurchaseOrderDTO {
	return domain.PurchaseOrderDTO{
		ID:                   po.ID,
		SupplierID:           po.SupplierID,
		SupplierName:         po.SupplierName,
		OrderDate:            domain.FormatDate(po.OrderDate),
		ExpectedDeliveryDate: domain.FormatDatePtr(po.ExpectedDeliveryDate),
		Items:                purchaseOrderItems(po.Items),
		TotalAmount:          po.TotalAmount,
		Status:               po.Status,
		StatusLabel:          po.Status.Label(),
		ProjectID:            po.ProjectID,
		OfferID:              po.OfferID,
	}
}

// ToPurchaseOrderDraftDTO renders a draft; it has no id yet
func ToPurchaseOrderDraftDTO(d *domain.PurchaseOrderDraft) domain.PurchaseOrderDTO {
	return domain.PurchaseOrderDTO{
		SupplierID:   d.SupplierID,
		SupplierName: d.SupplierName,
		OrderDate:    domain.FormatDate(d.OrderDate),
		Items:        purchaseOrderItems(d.Items),
		TotalAmount:  d.TotalAmount,
		Status:       d.Status,
		StatusLabel:  d.Status.Label(),
		ProjectID:    d.ProjectID,
		OfferID:      d.OfferID,
	}
}

func purchaseOrderItems(items []domain.PurchaseOrderItem) []domain.PurchaseOrderItem {
	if items == nil {
		return []domain.PurchaseOrderItem{}
	}
	return items
}

// ToInvoiceDTO converts Invoice to InvoiceDTO
func ToInvoiceDTO(inv *domain.Invoice) domain.InvoiceDTO {
	return domain.InvoiceDTO{
		ID:           inv.ID,
		CustomerID:   inv.CustomerID,
		CustomerName: inv.CustomerName,
		IssueDate:    domain.FormatDate(inv.IssueDate),
		DueDate:      domain.FormatDate(inv.DueDate),
		Amount:       inv.Amount,
		Status:       inv.Status,
		StatusLabel:  inv.Status.Label(),
		ProjectID:    inv.ProjectID,
	}
}

// ToPayableDTO converts Payable to PayableDTO
func ToPayableDTO(p *domain.Payable) domain.PayableDTO {
	return domain.PayableDTO{
		ID:           p.ID,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		IssueDate:    domain.FormatDate(p.IssueDate),
		DueDate:      domain.FormatDate(p.DueDate),
		Amount:       p.Amount,
		Status:       p.Status,
		StatusLabel:  p.Status.Label(),
	}
}

func ToPaymentTotalsDTO(t analytics.StatusTotals) domain.PaymentTotalsDTO {
	return domain.PaymentTotalsDTO{
		Total:   t.Total,
		Paid:    t.Paid,
		Due:     t.Due,
		Overdue: t.Overdue,
		Count:   t.Count,
	}
}

func ToAgingDTO(a analytics.Aging) domain.AgingDTO {
	return domain.AgingDTO{
		Days0To30:  a.Days0To30,
		Days31To60: a.Days31To60,
		Days61To90: a.Days61To90,
		Over90:     a.Over90,
	}
}

// ToTimeLogDTO converts TimeLog to TimeLogDTO
func ToTimeLogDTO(tl *domain.TimeLog) domain.TimeLogDTO {
	return domain.TimeLogDTO{
		ID:        tl.ID,
		ProjectID: tl.ProjectID,
		UserName:  tl.UserName,
		Date:      domain.FormatDate(tl.Date),
		Hours:     tl.Hours,
		Task:      tl.Task,
	}
}

// ToCommunicationDTO converts Communication to CommunicationDTO
func ToCommunicationDTO(c *domain.Communication) domain.CommunicationDTO {
	return domain.CommunicationDTO{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		Date:       domain.FormatDate(c.Date),
		Type:       c.Type,
		Summary:    c.Summary,
		OfferID:    c.OfferID,
		ProjectID:  c.ProjectID,
	}
}

// ToInventoryItemDTO converts InventoryItem to InventoryItemDTO
func ToInventoryItemDTO(item *domain.InventoryItem) domain.InventoryItemDTO {
	computed := analytics.DeriveInventoryStatus(*item)
	return domain.InventoryItemDTO{
		ID:             item.ID,
		Name:           item.Name,
		SKU:            item.SKU,
		Category:       item.Category,
		Quantity:       item.Quantity,
		ReorderPoint:   item.ReorderPoint,
		SupplierID:     item.SupplierID,
		CostPrice:      item.CostPrice,
		SellingPrice:   item.SellingPrice,
		Status:         item.Status,
		StatusLabel:    item.Status.Label(),
		ComputedStatus: computed,
		NeedsReorder:   computed != domain.InventoryStatusInStock,
		SalesVelocity:  item.SalesVelocity,
		LeadTimeDays:   item.LeadTimeDays,
	}
}

// ToSavedReportDTO converts SavedReport to SavedReportDTO
func ToSavedReportDTO(r *domain.SavedReport) domain.SavedReportDTO {
	return domain.SavedReportDTO{
		ID:       r.ID,
		SavedAt:  domain.FormatDate(r.SavedAt),
		Query:    r.Query,
		Response: r.Response,
	}
}

func ToCostBasisDTO(b analytics.CostBasis) domain.CostBasisDTO {
	items := make([]domain.ItemCostDTO, len(b.Items))
	for i, line := range b.Items {
		items[i] = domain.ItemCostDTO{
			ItemID:      line.ItemID,
			Description: line.Description,
			Quantity:    line.Quantity,
			BestQuote:   line.BestQuote,
			Cost:        line.Cost,
		}
	}
	return domain.CostBasisDTO{
		Items:         items,
		TotalCost:     b.TotalCost,
		SellingPrice:  b.SellingPrice,
		Margin:        b.Margin,
		MarginPercent: b.MarginPercent,
	}
}

// ToOfferItems converts item requests, keeping ids of existing lines
func ToOfferItems(reqs []domain.OfferItemRequest, newID func() string) []domain.OfferItem {
	items := make([]domain.OfferItem, len(reqs))
	for i, req := range reqs {
		quotes := make([]domain.SupplierQuote, len(req.SupplierQuotes))
		for j, q := range req.SupplierQuotes {
			quotes[j] = domain.SupplierQuote{
				SupplierID:   q.SupplierID,
				SupplierName: q.SupplierName,
				Price:        q.Price,
			}
		}
		id := req.ID
		if id == "" {
			id = newID()
		}
		items[i] = domain.OfferItem{
			ID:                  id,
			Description:         req.Description,
			Quantity:            req.Quantity,
			SupplierQuotes:      quotes,
			SellingPricePerUnit: req.SellingPricePerUnit,
		}
	}
	return items
}
