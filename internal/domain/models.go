package domain

import (
	"time"
)

// Customer represents a buyer organization
type Customer struct {
	ID               string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(200);not null;index" json:"name"`
	ContactPerson    string    `gorm:"type:varchar(200);column:contact_person" json:"contactPerson"`
	Email            string    `gorm:"type:varchar(255)" json:"email"`
	Phone            string    `gorm:"type:varchar(50)" json:"phone"`
	RegistrationDate time.Time `gorm:"type:date;not null;column:registration_date" json:"registrationDate"`
}

// Supplier represents a vendor that quotes prices and receives purchase orders
type Supplier struct {
	ID            string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name          string `gorm:"type:varchar(200);not null;index" json:"name"`
	ContactPerson string `gorm:"type:varchar(200);column:contact_person" json:"contactPerson"`
	Email         string `gorm:"type:varchar(255)" json:"email"`
	Phone         string `gorm:"type:varchar(50)" json:"phone"`
}

// Project links one customer to offers, invoices, purchase orders and logged hours.
// CustomerName is a snapshot taken at creation and is not kept in sync.
type Project struct {
	ID           string        `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name         string        `gorm:"type:varchar(200);not null" json:"name"`
	CustomerID   string        `gorm:"type:varchar(64);not null;index;column:customer_id" json:"customerId"`
	CustomerName string        `gorm:"type:varchar(200);column:customer_name" json:"customerName"`
	Status       ProjectStatus `gorm:"type:varchar(50);not null" json:"status"`
}

// SupplierQuote is one supplier's unit price for an offer item
type SupplierQuote struct {
	SupplierID   string  `json:"supplierId"`
	SupplierName string  `json:"supplierName"`
	Price        float64 `json:"price"`
}

// OfferItem represents a line item in an offer
type OfferItem struct {
	ID                  string          `json:"id"`
	Description         string          `json:"description"`
	Quantity            int             `json:"quantity"`
	SupplierQuotes      []SupplierQuote `json:"supplierQuotes"`
	SellingPricePerUnit *float64        `json:"sellingPricePerUnit,omitempty"`
}

// Offer represents a price quotation issued to a customer
type Offer struct {
	ID                string      `gorm:"type:varchar(64);primaryKey" json:"id"`
	CustomerID        string      `gorm:"type:varchar(64);not null;index;column:customer_id" json:"customerId"`
	CustomerName      string      `gorm:"type:varchar(200);column:customer_name" json:"customerName"`
	Subject           string      `gorm:"type:varchar(500);not null" json:"subject"`
	IssueDate         time.Time   `gorm:"type:date;not null;column:issue_date" json:"issueDate"`
	ValidUntil        time.Time   `gorm:"type:date;not null;column:valid_until" json:"validUntil"`
	Status            OfferStatus `gorm:"type:varchar(50);not null;index" json:"status"`
	Items             []OfferItem `gorm:"serializer:json;type:text" json:"items"`
	TotalSellingPrice float64     `gorm:"type:decimal(15,2);not null;default:0;column:total_selling_price" json:"totalSellingPrice"`
	// Commission is write-once: set on the first transition to accepted
	Commission *float64 `gorm:"type:decimal(15,2)" json:"commission,omitempty"`
	ProjectID  *string  `gorm:"type:varchar(64);index;column:project_id" json:"projectId,omitempty"`
}

// PurchaseOrderItem is a single line in a purchase order
type PurchaseOrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// PurchaseOrder is a commitment to buy items from one supplier
type PurchaseOrder struct {
	ID                   string              `gorm:"type:varchar(64);primaryKey" json:"id"`
	SupplierID           string              `gorm:"type:varchar(64);not null;index;column:supplier_id" json:"supplierId"`
	SupplierName         string              `gorm:"type:varchar(200);column:supplier_name" json:"supplierName"`
	OrderDate            time.Time           `gorm:"type:date;not null;column:order_date" json:"orderDate"`
	ExpectedDeliveryDate *time.Time          `gorm:"type:date;column:expected_delivery_date" json:"expectedDeliveryDate,omitempty"`
	Items                []PurchaseOrderItem `gorm:"serializer:json;type:text" json:"items"`
	TotalAmount          float64             `gorm:"type:decimal(15,2);not null;default:0;column:total_amount" json:"totalAmount"`
	Status               PurchaseOrderStatus `gorm:"type:varchar(50);not null;index" json:"status"`
	ProjectID            *string             `gorm:"type:varchar(64);index;column:project_id" json:"projectId,omitempty"`
	OfferID              *string             `gorm:"type:varchar(64);index;column:offer_id" json:"offerId,omitempty"`
}

// PurchaseOrderDraft is a generated, not yet committed purchase order
type PurchaseOrderDraft struct {
	SupplierID   string              `json:"supplierId"`
	SupplierName string              `json:"supplierName"`
	OrderDate    time.Time           `json:"orderDate"`
	Items        []PurchaseOrderItem `json:"items"`
	TotalAmount  float64             `json:"totalAmount"`
	Status       PurchaseOrderStatus `json:"status"`
	ProjectID    *string             `json:"projectId,omitempty"`
	OfferID      *string             `json:"offerId,omitempty"`
}

// Invoice is money owed by a customer
type Invoice struct {
	ID           string        `gorm:"type:varchar(64);primaryKey" json:"id"`
	CustomerID   string        `gorm:"type:varchar(64);not null;index;column:customer_id" json:"customerId"`
	CustomerName string        `gorm:"type:varchar(200);column:customer_name" json:"customerName"`
	IssueDate    time.Time     `gorm:"type:date;not null;column:issue_date" json:"issueDate"`
	DueDate      time.Time     `gorm:"type:date;not null;column:due_date" json:"dueDate"`
	Amount       float64       `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status       PaymentStatus `gorm:"type:varchar(50);not null;index" json:"status"`
	ProjectID    *string       `gorm:"type:varchar(64);index;column:project_id" json:"projectId,omitempty"`
}

// Payable is money owed to a supplier
type Payable struct {
	ID           string        `gorm:"type:varchar(64);primaryKey" json:"id"`
	SupplierID   string        `gorm:"type:varchar(64);not null;index;column:supplier_id" json:"supplierId"`
	SupplierName string        `gorm:"type:varchar(200);column:supplier_name" json:"supplierName"`
	IssueDate    time.Time     `gorm:"type:date;not null;column:issue_date" json:"issueDate"`
	DueDate      time.Time     `gorm:"type:date;not null;column:due_date" json:"dueDate"`
	Amount       float64       `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status       PaymentStatus `gorm:"type:varchar(50);not null;index" json:"status"`
}

// TimeLog records hours worked on a project
type TimeLog struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	ProjectID string    `gorm:"type:varchar(64);not null;index;column:project_id" json:"projectId"`
	UserName  string    `gorm:"type:varchar(200);column:user_name" json:"userName"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Hours     float64   `gorm:"type:decimal(6,2);not null" json:"hours"`
	Task      string    `gorm:"type:text" json:"task"`
}

// Communication is a logged email or WhatsApp exchange with a customer
type Communication struct {
	ID         string            `gorm:"type:varchar(64);primaryKey" json:"id"`
	CustomerID string            `gorm:"type:varchar(64);not null;index;column:customer_id" json:"customerId"`
	Date       time.Time         `gorm:"type:date;not null" json:"date"`
	Type       CommunicationType `gorm:"type:varchar(20);not null" json:"type"`
	Summary    string            `gorm:"type:text" json:"summary"`
	OfferID    *string           `gorm:"type:varchar(64);column:offer_id" json:"offerId,omitempty"`
	ProjectID  *string           `gorm:"type:varchar(64);column:project_id" json:"projectId,omitempty"`
}

// InventoryItem is a stocked product
type InventoryItem struct {
	ID            string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(200);not null" json:"name"`
	SKU           string          `gorm:"type:varchar(100);uniqueIndex" json:"sku"`
	Category      string          `gorm:"type:varchar(100)" json:"category"`
	Quantity      int             `gorm:"not null;default:0" json:"quantity"`
	ReorderPoint  int             `gorm:"not null;default:0;column:reorder_point" json:"reorderPoint"`
	SupplierID    string          `gorm:"type:varchar(64);column:supplier_id" json:"supplierId"`
	CostPrice     float64         `gorm:"type:decimal(15,2);column:cost_price" json:"costPrice"`
	SellingPrice  float64         `gorm:"type:decimal(15,2);column:selling_price" json:"sellingPrice"`
	Status        InventoryStatus `gorm:"type:varchar(50);not null" json:"status"`
	SalesVelocity float64         `gorm:"type:decimal(10,2);column:sales_velocity" json:"salesVelocity"`
	LeadTimeDays  int             `gorm:"column:lead_time_days" json:"leadTimeDays"`
}

// ChartType is the visualization suggested by a generated report
type ChartType string

const (
	ChartTypeLine ChartType = "line"
	ChartTypeBar  ChartType = "bar"
	ChartTypePie  ChartType = "pie"
	ChartTypeNone ChartType = "none"
)

// IsValid checks if the ChartType is a valid enum value
func (c ChartType) IsValid() bool {
	switch c {
	case ChartTypeLine, ChartTypeBar, ChartTypePie, ChartTypeNone:
		return true
	}
	return false
}

// AiReport is the structured answer of the reporting assistant.
// Each chart point has a "name" plus one numeric value key.
type AiReport struct {
	Summary   string           `json:"summary"`
	ChartType ChartType        `json:"chartType"`
	ChartData []map[string]any `json:"chartData"`
}

// SavedReport is a report the user chose to keep
type SavedReport struct {
	ID       string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	SavedAt  time.Time `gorm:"type:date;not null;column:saved_at" json:"savedAt"`
	Query    string    `gorm:"type:text;not null" json:"query"`
	Response AiReport  `gorm:"serializer:json;type:text" json:"response"`
}

// Dataset holds every collection of the business desk.
// Slices inside a Dataset returned by the store are never mutated.
type Dataset struct {
	Customers      []Customer
	Suppliers      []Supplier
	Projects       []Project
	Offers         []Offer
	PurchaseOrders []PurchaseOrder
	Invoices       []Invoice
	Payables       []Payable
	TimeLogs       []TimeLog
	Communications []Communication
	Inventory      []InventoryItem
	SavedReports   []SavedReport
}
