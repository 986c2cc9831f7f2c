package store

import (
	"time"

	"github.com/straye-as/bizdesk-api/internal/domain"
)

func day(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

// SeedDataset returns the demo dataset loaded at startup when seeding is enabled
func SeedDataset() domain.Dataset {
	return domain.Dataset{
		Customers: []domain.Customer{
			{ID: "C-001", Name: "شركة الحلول المبتكرة", ContactPerson: "عبدالله السالم", Email: "a.salem@innovative.sa", Phone: "0501112222", RegistrationDate: day("2023-02-10")},
			{ID: "C-002", Name: "مجموعة البناء الحديث", ContactPerson: "سليمان الحمد", Email: "s.alhamad@modern-cg.com", Phone: "0553334444", RegistrationDate: day("2023-04-18")},
			{ID: "C-003", Name: "مدارس الأجيال الجديدة", ContactPerson: "هند العتيبي", Email: "h.alotaibi@ngs.edu.sa", Phone: "0535556666", RegistrationDate: day("2023-06-05")},
		},
		Suppliers: []domain.Supplier{
			{ID: "S-001", Name: "موردون ألفا", ContactPerson: "علي حسن", Email: "ali@alpha.com", Phone: "0512345678"},
			{ID: "S-002", Name: "شركة بيتا للتوريدات", ContactPerson: "مريم يوسف", Email: "mariam@beta-supplies.sa", Phone: "0598765432"},
			{ID: "S-003", Name: "مؤسسة جاما", ContactPerson: "ياسر محمد", Email: "yasser@gamma.org", Phone: "0522233344"},
			{ID: "S-004", Name: "خدمات الشبكة المتقدمة", ContactPerson: "نورة خالد", Email: "noura@ans.net", Phone: "0567890123"},
		},
		Projects: []domain.Project{
			{ID: "PROJ-24-01", Name: "تطوير البنية التحتية لشبكة مدارس الأجيال", CustomerID: "C-003", CustomerName: "مدارس الأجيال الجديدة", Status: domain.ProjectStatusInProgress},
			{ID: "PROJ-24-02", Name: "توريد وتركيب نظام ERP لشركة الحلول المبتكرة", CustomerID: "C-001", CustomerName: "شركة الحلول المبتكرة", Status: domain.ProjectStatusCompleted},
			{ID: "PROJ-24-03", Name: "نظام المراقبة الأمنية لمجموعة البناء الحديث", CustomerID: "C-002", CustomerName: "مجموعة البناء الحديث", Status: domain.ProjectStatusPlanning},
		},
		Offers:         seedOffers(),
		PurchaseOrders: seedPurchaseOrders(),
		Invoices: []domain.Invoice{
			{ID: "INV-24-01", CustomerID: "C-003", CustomerName: "مدارس الأجيال الجديدة", IssueDate: day("2024-07-10"), DueDate: day("2024-08-09"), Amount: 75000, Status: domain.PaymentStatusDue, ProjectID: strPtr("PROJ-24-01")},
			{ID: "INV-24-02", CustomerID: "C-001", CustomerName: "شركة الحلول المبتكرة", IssueDate: day("2024-06-01"), DueDate: day("2024-07-01"), Amount: 125000, Status: domain.PaymentStatusPaid, ProjectID: strPtr("PROJ-24-02")},
			{ID: "INV-24-03", CustomerID: "C-001", CustomerName: "شركة الحلول المبتكرة", IssueDate: day("2024-07-15"), DueDate: day("2024-08-14"), Amount: 125000, Status: domain.PaymentStatusPaid, ProjectID: strPtr("PROJ-24-02")},
			{ID: "INV-24-04", CustomerID: "C-002", CustomerName: "مجموعة البناء الحديث", IssueDate: day("2024-05-20"), DueDate: day("2024-06-20"), Amount: 15000, Status: domain.PaymentStatusOverdue},
		},
		Payables: []domain.Payable{
			{ID: "PAY-201", SupplierID: "S-001", SupplierName: "موردون ألفا", IssueDate: day("2024-07-05"), DueDate: day("2024-08-04"), Amount: 18000, Status: domain.PaymentStatusDue},
			{ID: "PAY-202", SupplierID: "S-002", SupplierName: "شركة بيتا للتوريدات", IssueDate: day("2024-06-20"), DueDate: day("2024-07-20"), Amount: 7500, Status: domain.PaymentStatusPaid},
			{ID: "PAY-203", SupplierID: "S-003", SupplierName: "مؤسسة جاما", IssueDate: day("2024-05-10"), DueDate: day("2024-06-10"), Amount: 42000, Status: domain.PaymentStatusOverdue},
			{ID: "PAY-204", SupplierID: "S-001", SupplierName: "موردون ألفا", IssueDate: day("2024-07-15"), DueDate: day("2024-08-15"), Amount: 9500, Status: domain.PaymentStatusDue},
		},
		TimeLogs: []domain.TimeLog{
			{ID: "TL-01", ProjectID: "PROJ-24-01", UserName: "أحمد محمود", Date: day("2024-07-20"), Hours: 5, Task: "تثبيت وتكوين الراوترات الأساسية في الموقع."},
			{ID: "TL-02", ProjectID: "PROJ-24-02", UserName: "سارة عبدالله", Date: day("2024-07-18"), Hours: 8, Task: "جلسة تدريب للمستخدمين على نظام ERP."},
			{ID: "TL-03", ProjectID: "PROJ-24-01", UserName: "أحمد محمود", Date: day("2024-07-21"), Hours: 3.5, Task: "اختبار الاتصال بالشبكة وتصحيح الأخطاء."},
			{ID: "TL-04", ProjectID: "PROJ-24-02", UserName: "خالد الغامدي", Date: day("2024-07-22"), Hours: 6, Task: "تخصيص وحدات الفواتير والمخزون في النظام."},
		},
		Inventory: []domain.InventoryItem{
			{ID: "PROD-001", Name: "كاميرا مراقبة خارجية 4K", SKU: "CAM-4K-01", Category: "كاميرات مراقبة", Quantity: 25, ReorderPoint: 10, SupplierID: "S-001", CostPrice: 350, SellingPrice: 550, Status: domain.InventoryStatusInStock, SalesVelocity: 15, LeadTimeDays: 7},
			{ID: "PROD-002", Name: "جهاز تسجيل شبكي (NVR) 16 قناة", SKU: "NVR-16CH-01", Category: "أجهزة تسجيل", Quantity: 8, ReorderPoint: 5, SupplierID: "S-001", CostPrice: 1200, SellingPrice: 1800, Status: domain.InventoryStatusLowStock, SalesVelocity: 5, LeadTimeDays: 10},
			{ID: "PROD-003", Name: "شاشة عرض 55 بوصة", SKU: "DISP-55-LG", Category: "شاشات عرض", Quantity: 15, ReorderPoint: 5, SupplierID: "S-002", CostPrice: 1500, SellingPrice: 2200, Status: domain.InventoryStatusInStock, SalesVelocity: 8, LeadTimeDays: 14},
			{ID: "PROD-004", Name: "عقد صيانة سنوي", SKU: "SRV-MAINT-01", Category: "خدمات", Quantity: 999, ReorderPoint: 0, SupplierID: "S-004", CostPrice: 40000, SellingPrice: 75000, Status: domain.InventoryStatusInStock, SalesVelocity: 2, LeadTimeDays: 0},
			{ID: "PROD-005", Name: "محول شبكة (Switch) 24 منفذ", SKU: "SW-24P-CISC", Category: "معدات شبكات", Quantity: 3, ReorderPoint: 5, SupplierID: "S-003", CostPrice: 800, SellingPrice: 1100, Status: domain.InventoryStatusOutOfStock, SalesVelocity: 10, LeadTimeDays: 12},
		},
		SavedReports: []domain.SavedReport{
			{
				ID:      "REP-1721832145",
				SavedAt: day("2024-07-24"),
				Query:   "ما هي حالة الذمم المدينة الحالية؟",
				Response: domain.AiReport{
					Summary:   "**ملخص الذمم المدينة:**\n\n*   **إجمالي المبلغ:** 265,000 ر.س\n*   **مدفوع:** 250,000 ر.س\n*   **مستحق:** 75,000 ر.س\n*   **متأخر:** 15,000 ر.س\n\nيجب التركيز على تحصيل المبلغ المتأخر من **مجموعة البناء الحديث**.",
					ChartType: domain.ChartTypePie,
					ChartData: []map[string]any{
						{"name": "مدفوع", "value": 250000.0},
						{"name": "مستحق", "value": 75000.0},
						{"name": "متأخر", "value": 15000.0},
					},
				},
			},
		},
	}
}

func seedOffers() []domain.Offer {
	const (
		futureTech = "تقنيات المستقبل للتجارة"
		digital    = "الإبداع الرقمي للبرمجيات"
		installers = "خبراء التركيب والصيانة"
	)
	return []domain.Offer{
		{
			ID:           "Q-24-01",
			CustomerID:   "C-003",
			CustomerName: "مدارس الأجيال الجديدة",
			Subject:      "تطوير شبكة المدرسة الرئيسية",
			IssueDate:    day("2024-07-05"),
			ValidUntil:   day("2024-07-20"),
			Status:       domain.OfferStatusAccepted,
			Items: []domain.OfferItem{
				{ID: "item-1", Description: "50x Routers", Quantity: 50, SupplierQuotes: []domain.SupplierQuote{{SupplierID: "S-001", SupplierName: futureTech, Price: 1000}}},
				{ID: "item-2", Description: "10x Switches", Quantity: 10, SupplierQuotes: []domain.SupplierQuote{{SupplierID: "S-001", SupplierName: futureTech, Price: 3000}}},
				{ID: "item-3", Description: "Network installation services", Quantity: 1, SupplierQuotes: []domain.SupplierQuote{{SupplierID: "S-003", SupplierName: installers, Price: 20000}}},
			},
			TotalSellingPrice: 150000,
			Commission:        floatPtr(7500),
			ProjectID:         strPtr("PROJ-24-01"),
		},
		{
			ID:           "Q-24-02",
			CustomerID:   "C-001",
			CustomerName: "شركة الحلول المبتكرة",
			Subject:      "تطبيق نظام ERP متكامل",
			IssueDate:    day("2024-05-10"),
			ValidUntil:   day("2024-05-25"),
			Status:       domain.OfferStatusPurchaseOrderCreated,
			Items: []domain.OfferItem{
				{ID: "item-4", Description: "ERP Software License", Quantity: 1, SupplierQuotes: []domain.SupplierQuote{{SupplierID: "S-002", SupplierName: digital, Price: 120000}}},
				{ID: "item-5", Description: "Implementation Service", Quantity: 1, SupplierQuotes: []domain.SupplierQuote{{SupplierID: "S-003", SupplierName: installers, Price: 60000}}},
			},
			TotalSellingPrice: 250000,
			Commission:        floatPtr(12500),
			ProjectID:         strPtr("PROJ-24-02"),
		},
		{
			ID:           "Q-24-03",
			CustomerID:   "C-002",
			CustomerName: "مجموعة البناء الحديث",
			Subject:      "تأمين المقر الرئيسي بنظام كاميرات مراقبة",
			IssueDate:    day("2024-07-18"),
			ValidUntil:   day("2024-08-02"),
			Status:       domain.OfferStatusPricing,
			Items: []domain.OfferItem{
				{ID: "item-6", Description: "30x Cameras", Quantity: 30, SupplierQuotes: []domain.SupplierQuote{}},
				{ID: "item-7", Description: "2x NVRs", Quantity: 2, SupplierQuotes: []domain.SupplierQuote{}},
			},
			ProjectID: strPtr("PROJ-24-03"),
		},
	}
}

func seedPurchaseOrders() []domain.PurchaseOrder {
	return []domain.PurchaseOrder{
		{
			ID:                   "PO-24-01",
			SupplierID:           "S-001",
			SupplierName:         "تقنيات المستقبل للتجارة",
			OrderDate:            day("2024-07-08"),
			ExpectedDeliveryDate: dayPtr("2024-07-22"),
			Items: []domain.PurchaseOrderItem{
				{ProductID: "item-1", ProductName: "50x Routers", Quantity: 50, UnitPrice: 1000},
				{ProductID: "item-2", ProductName: "10x Switches", Quantity: 10, UnitPrice: 3000},
			},
			TotalAmount: 80000,
			Status:      domain.PurchaseOrderStatusSent,
			ProjectID:   strPtr("PROJ-24-01"),
		},
		{
			ID:                   "PO-24-02",
			SupplierID:           "S-003",
			SupplierName:         "خبراء التركيب والصيانة",
			OrderDate:            day("2024-07-08"),
			ExpectedDeliveryDate: dayPtr("2024-08-01"),
			Items: []domain.PurchaseOrderItem{
				{ProductID: "item-3", ProductName: "Network installation services", Quantity: 1, UnitPrice: 20000},
			},
			TotalAmount: 20000,
			Status:      domain.PurchaseOrderStatusSent,
			ProjectID:   strPtr("PROJ-24-01"),
		},
		{
			ID:                   "PO-24-03",
			SupplierID:           "S-002",
			SupplierName:         "الإبداع الرقمي للبرمجيات",
			OrderDate:            day("2024-05-28"),
			ExpectedDeliveryDate: dayPtr("2024-06-05"),
			Items: []domain.PurchaseOrderItem{
				{ProductID: "item-4", ProductName: "ERP Software License", Quantity: 1, UnitPrice: 120000},
			},
			TotalAmount: 120000,
			Status:      domain.PurchaseOrderStatusReceived,
			ProjectID:   strPtr("PROJ-24-02"),
		},
		{
			ID:                   "PO-24-04",
			SupplierID:           "S-003",
			SupplierName:         "خبراء التركيب والصيانة",
			OrderDate:            day("2024-05-28"),
			ExpectedDeliveryDate: dayPtr("2024-07-15"),
			Items: []domain.PurchaseOrderItem{
				{ProductID: "item-5", ProductName: "Implementation Service", Quantity: 1, UnitPrice: 60000},
			},
			TotalAmount: 60000,
			Status:      domain.PurchaseOrderStatusReceived,
			ProjectID:   strPtr("PROJ-24-02"),
		},
	}
}
