package domain

// DTOs for API responses. Dates are rendered as YYYY-MM-DD.

type CustomerDTO struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	ContactPerson      string `json:"contactPerson"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	RegistrationDate   string `json:"registrationDate"`
	CommunicationCount int    `json:"communicationCount"`
}

type SupplierDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

type ProjectDTO struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CustomerID   string        `json:"customerId"`
	CustomerName string        `json:"customerName"`
	Status       ProjectStatus `json:"status"`
	StatusLabel  string        `json:"statusLabel"`
}

// ProjectSummaryDTO is a project row of the portfolio with its profitability
type ProjectSummaryDTO struct {
	ProjectDTO
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCost    float64 `json:"totalCost"`
	Profit       float64 `json:"profit"`
}

type ProjectFinancialsDTO struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCost    float64 `json:"totalCost"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
	TotalHours   float64 `json:"totalHours"`
}

// ProjectDetailDTO is a project with its financials and every linked record
type ProjectDetailDTO struct {
	Project        ProjectDTO           `json:"project"`
	Financials     ProjectFinancialsDTO `json:"financials"`
	Offers         []OfferDTO           `json:"offers"`
	Invoices       []InvoiceDTO         `json:"invoices"`
	PurchaseOrders []PurchaseOrderDTO   `json:"purchaseOrders"`
	TimeLogs       []TimeLogDTO         `json:"timeLogs"`
	Communications []CommunicationDTO   `json:"communications"`
}

type OfferItemDTO struct {
	ID                  string          `json:"id"`
	Description         string          `json:"description"`
	Quantity            int             `json:"quantity"`
	SupplierQuotes      []SupplierQuote `json:"supplierQuotes"`
	SellingPricePerUnit *float64        `json:"sellingPricePerUnit,omitempty"`
}

type OfferDTO struct {
	ID                string         `json:"id"`
	CustomerID        string         `json:"customerId"`
	CustomerName      string         `json:"customerName"`
	Subject           string         `json:"subject"`
	IssueDate         string         `json:"issueDate"`
	ValidUntil        string         `json:"validUntil"`
	Status            OfferStatus    `json:"status"`
	StatusLabel       string         `json:"statusLabel"`
	StatusLocked      bool           `json:"statusLocked"`
	Items             []OfferItemDTO `json:"items"`
	TotalSellingPrice float64        `json:"totalSellingPrice"`
	Commission        *float64       `json:"commission,omitempty"`
	ProjectID         *string        `json:"projectId,omitempty"`
}

type PurchaseOrderDTO struct {
	ID                   string              `json:"id,omitempty"`
	SupplierID           string              `json:"supplierId"`
	SupplierName         string              `json:"supplierName"`
	OrderDate            string              `json:"orderDate"`
	ExpectedDeliveryDate string              `json:"expectedDeliveryDate,omitempty"`
	Items                []PurchaseOrderItem `json:"items"`
	TotalAmount          float64             `json:"totalAmount"`
	Status               PurchaseOrderStatus `json:"status"`
	StatusLabel          string              `json:"statusLabel"`
	ProjectID            *string             `json:"projectId,omitempty"`
	OfferID              *string             `json:"offerId,omitempty"`
}

// PurchaseOrderPreviewDTO lists the drafts an offer would generate
type PurchaseOrderPreviewDTO struct {
	OfferID     string             `json:"offerId"`
	Drafts      []PurchaseOrderDTO `json:"drafts"`
	TotalAmount float64            `json:"totalAmount"`
	// SkippedItems are offer items without any supplier quote
	SkippedItems []string `json:"skippedItems"`
}

// PurchaseOrderCommitDTO is the result of generating purchase orders from an offer
type PurchaseOrderCommitDTO struct {
	Offer          OfferDTO           `json:"offer"`
	PurchaseOrders []PurchaseOrderDTO `json:"purchaseOrders"`
}

type InvoiceDTO struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customerId"`
	CustomerName string        `json:"customerName"`
	IssueDate    string        `json:"issueDate"`
	DueDate      string        `json:"dueDate"`
	Amount       float64       `json:"amount"`
	Status       PaymentStatus `json:"status"`
	StatusLabel  string        `json:"statusLabel"`
	ProjectID    *string       `json:"projectId,omitempty"`
}

type PayableDTO struct {
	ID           string        `json:"id"`
	SupplierID   string        `json:"supplierId"`
	SupplierName string        `json:"supplierName"`
	IssueDate    string        `json:"issueDate"`
	DueDate      string        `json:"dueDate"`
	Amount       float64       `json:"amount"`
	Status       PaymentStatus `json:"status"`
	StatusLabel  string        `json:"statusLabel"`
}

// PaymentTotalsDTO sums invoice or payable amounts per status
type PaymentTotalsDTO struct {
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Due     float64 `json:"due"`
	Overdue float64 `json:"overdue"`
	Count   int     `json:"count"`
}

type AgingDTO struct {
	Days0To30  float64 `json:"days0To30"`
	Days31To60 float64 `json:"days31To60"`
	Days61To90 float64 `json:"days61To90"`
	Over90     float64 `json:"over90"`
}

type TimeLogDTO struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	UserName  string  `json:"userName"`
	Date      string  `json:"date"`
	Hours     float64 `json:"hours"`
	Task      string  `json:"task"`
}

type CommunicationDTO struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customerId"`
	Date       string            `json:"date"`
	Type       CommunicationType `json:"type"`
	Summary    string            `json:"summary"`
	OfferID    *string           `json:"offerId,omitempty"`
	ProjectID  *string           `json:"projectId,omitempty"`
}

type InventoryItemDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	ReorderPoint int     `json:"reorderPoint"`
	SupplierID   string  `json:"supplierId"`
	CostPrice    float64 `json:"costPrice"`
	SellingPrice float64 `json:"sellingPrice"`
	// Status is the stored value; ComputedStatus follows from quantity and reorder point
	Status         InventoryStatus `json:"status"`
	StatusLabel    string          `json:"statusLabel"`
	ComputedStatus InventoryStatus `json:"computedStatus"`
	NeedsReorder   bool            `json:"needsReorder"`
	SalesVelocity  float64         `json:"salesVelocity"`
	LeadTimeDays   int             `json:"leadTimeDays"`
}

type SavedReportDTO struct {
	ID       string   `json:"id"`
	SavedAt  string   `json:"savedAt"`
	Query    string   `json:"query"`
	Response AiReport `json:"response"`
}

// GeneratedReportDTO is a fresh answer of the reporting assistant
type GeneratedReportDTO struct {
	Query    string   `json:"query"`
	Response AiReport `json:"response"`
	Cached   bool     `json:"cached"`
}

// ReportArchiveDTO points at an exported report
type ReportArchiveDTO struct {
	ReportID string `json:"reportId"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
}

// AiTextDTO is free text produced by an assistant
type AiTextDTO struct {
	Content string `json:"content"`
	// Generated is false when the answer was produced without calling the text service
	Generated bool `json:"generated"`
}

type ItemCostDTO struct {
	ItemID      string         `json:"itemId"`
	Description string         `json:"description"`
	Quantity    int            `json:"quantity"`
	BestQuote   *SupplierQuote `json:"bestQuote,omitempty"`
	Cost        float64        `json:"cost"`
}

type CostBasisDTO struct {
	Items         []ItemCostDTO `json:"items"`
	TotalCost     float64       `json:"totalCost"`
	SellingPrice  float64       `json:"sellingPrice"`
	Margin        float64       `json:"margin"`
	MarginPercent float64       `json:"marginPercent"`
}

// PricingAdviceDTO is the pricing advisor answer for an offer
type PricingAdviceDTO struct {
	OfferID   string       `json:"offerId"`
	CostBasis CostBasisDTO `json:"costBasis"`
	Advice    string       `json:"advice"`
}

// ComposedMessageDTO is a drafted customer message for an offer
type ComposedMessageDTO struct {
	OfferID       string            `json:"offerId"`
	Mode          CommunicationType `json:"mode"`
	Content       string            `json:"content"`
	Communication *CommunicationDTO `json:"communication,omitempty"`
}

// InventoryAdviceDTO is the inventory advisor answer
type InventoryAdviceDTO struct {
	ReorderCandidates []InventoryItemDTO `json:"reorderCandidates"`
	Advice            string             `json:"advice"`
}

type DashboardDTO struct {
	Receivables          PaymentTotalsDTO   `json:"receivables"`
	Payables             PaymentTotalsDTO   `json:"payables"`
	Aging                AgingDTO           `json:"aging"`
	ActiveCustomers      int                `json:"activeCustomers"`
	OpenOffers           int                `json:"openOffers"`
	PortfolioProfit      float64            `json:"portfolioProfit"`
	LowStockItems        int                `json:"lowStockItems"`
	StockValueAtCost     float64            `json:"stockValueAtCost"`
	StockValueAtSelling  float64            `json:"stockValueAtSelling"`
	RecentPurchaseOrders []PurchaseOrderDTO `json:"recentPurchaseOrders"`
}

// SearchResults holds the records whose name or subject matches a query
type SearchResults struct {
	Customers []CustomerDTO `json:"customers"`
	Suppliers []SupplierDTO `json:"suppliers"`
	Projects  []ProjectDTO  `json:"projects"`
	Offers    []OfferDTO    `json:"offers"`
	Total     int           `json:"total"`
}

// Request types

type SaveCustomerRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	ContactPerson string `json:"contactPerson,omitempty" validate:"max=200"`
	Email         string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone         string `json:"phone,omitempty" validate:"max=50"`
}

type SaveSupplierRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	ContactPerson string `json:"contactPerson,omitempty" validate:"max=200"`
	Email         string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone         string `json:"phone,omitempty" validate:"max=50"`
}

type CreateProjectRequest struct {
	Name       string        `json:"name" validate:"required,max=200"`
	CustomerID string        `json:"customerId" validate:"required,max=64"`
	Status     ProjectStatus `json:"status,omitempty"`
}

type UpdateProjectRequest struct {
	Name   string        `json:"name" validate:"required,max=200"`
	Status ProjectStatus `json:"status" validate:"required"`
}

type CreateTimeLogRequest struct {
	UserName string  `json:"userName" validate:"required,max=200"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours    float64 `json:"hours" validate:"gt=0,lte=24"`
	Task     string  `json:"task" validate:"required,max=2000"`
}

type CreateOfferRequest struct {
	CustomerID string  `json:"customerId" validate:"required,max=64"`
	Subject    string  `json:"subject" validate:"required,max=500"`
	IssueDate  string  `json:"issueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ValidUntil string  `json:"validUntil" validate:"required,datetime=2006-01-02"`
	ProjectID  *string `json:"projectId,omitempty" validate:"omitempty,max=64"`
}

type SupplierQuoteRequest struct {
	SupplierID   string  `json:"supplierId" validate:"required,max=64"`
	SupplierName string  `json:"supplierName,omitempty" validate:"max=200"`
	Price        float64 `json:"price" validate:"gte=0"`
}

type OfferItemRequest struct {
	ID                  string                 `json:"id,omitempty" validate:"max=64"`
	Description         string                 `json:"description" validate:"required,max=500"`
	Quantity            int                    `json:"quantity" validate:"gt=0"`
	SupplierQuotes      []SupplierQuoteRequest `json:"supplierQuotes" validate:"dive"`
	SellingPricePerUnit *float64               `json:"sellingPricePerUnit,omitempty" validate:"omitempty,gte=0"`
}

type UpdateOfferRequest struct {
	Subject           string             `json:"subject" validate:"required,max=500"`
	ValidUntil        string             `json:"validUntil" validate:"required,datetime=2006-01-02"`
	Items             []OfferItemRequest `json:"items" validate:"dive"`
	TotalSellingPrice float64            `json:"totalSellingPrice" validate:"gte=0"`
	ProjectID         *string            `json:"projectId,omitempty" validate:"omitempty,max=64"`
}

type UpdateOfferStatusRequest struct {
	Status OfferStatus `json:"status" validate:"required"`
}

type UpdatePurchaseOrderStatusRequest struct {
	Status PurchaseOrderStatus `json:"status" validate:"required"`
}

type UpdatePaymentStatusRequest struct {
	Status PaymentStatus `json:"status" validate:"required"`
}

type CreateInvoiceRequest struct {
	CustomerID string  `json:"customerId" validate:"required,max=64"`
	IssueDate  string  `json:"issueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate    string  `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Amount     float64 `json:"amount" validate:"gt=0"`
	ProjectID  *string `json:"projectId,omitempty" validate:"omitempty,max=64"`
}

type CreatePayableRequest struct {
	SupplierID string  `json:"supplierId" validate:"required,max=64"`
	IssueDate  string  `json:"issueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate    string  `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Amount     float64 `json:"amount" validate:"gt=0"`
}

type CreateCommunicationRequest struct {
	CustomerID string            `json:"customerId" validate:"required,max=64"`
	Date       string            `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Type       CommunicationType `json:"type" validate:"required,oneof=email whatsapp"`
	Summary    string            `json:"summary" validate:"required,max=2000"`
	OfferID    *string           `json:"offerId,omitempty" validate:"omitempty,max=64"`
	ProjectID  *string           `json:"projectId,omitempty" validate:"omitempty,max=64"`
}

type CreateInventoryItemRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	SKU           string  `json:"sku" validate:"required,max=100"`
	Category      string  `json:"category,omitempty" validate:"max=100"`
	Quantity      int     `json:"quantity" validate:"gte=0"`
	ReorderPoint  int     `json:"reorderPoint" validate:"gte=0"`
	SupplierID    string  `json:"supplierId,omitempty" validate:"max=64"`
	CostPrice     float64 `json:"costPrice" validate:"gte=0"`
	SellingPrice  float64 `json:"sellingPrice" validate:"gte=0"`
	SalesVelocity float64 `json:"salesVelocity" validate:"gte=0"`
	LeadTimeDays  int     `json:"leadTimeDays" validate:"gte=0"`
}

type ComposeOfferRequest struct {
	Mode CommunicationType `json:"mode" validate:"required,oneof=email whatsapp"`
	// Log records the message in the customer communication log
	Log bool `json:"log"`
}

type GenerateReportRequest struct {
	Query string `json:"query" validate:"required,max=1000"`
}

type SaveReportRequest struct {
	Query    string   `json:"query" validate:"required,max=1000"`
	Response AiReport `json:"response"`
}
