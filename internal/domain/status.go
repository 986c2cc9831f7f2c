package domain

// ProjectStatus represents the progress of a project
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// IsValid checks if the ProjectStatus is a valid enum value
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// Label returns the display label
func (s ProjectStatus) Label() string {
	switch s {
	case ProjectStatusPlanning:
		return "تخطيط"
	case ProjectStatusInProgress:
		return "قيد التنفيذ"
	case ProjectStatusCompleted:
		return "مكتمل"
	}
	return string(s)
}

// OfferStatus represents where an offer is in its lifecycle
type OfferStatus string

const (
	OfferStatusNew                  OfferStatus = "new"
	OfferStatusPricing              OfferStatus = "pricing"
	OfferStatusSent                 OfferStatus = "sent"
	OfferStatusAccepted             OfferStatus = "accepted"
	OfferStatusRejected             OfferStatus = "rejected"
	OfferStatusNegotiating          OfferStatus = "negotiating"
	OfferStatusConvertedToInvoice   OfferStatus = "converted-to-invoice"
	OfferStatusPurchaseOrderCreated OfferStatus = "purchase-order-created"
)

// IsValid checks if the OfferStatus is a valid enum value
func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusNew, OfferStatusPricing, OfferStatusSent, OfferStatusAccepted,
		OfferStatusRejected, OfferStatusNegotiating, OfferStatusConvertedToInvoice,
		OfferStatusPurchaseOrderCreated:
		return true
	}
	return false
}

// IsTerminal reports whether no further status change is allowed
func (s OfferStatus) IsTerminal() bool {
	return s == OfferStatusPurchaseOrderCreated
}

// IsOpen reports whether the offer still awaits a customer decision
func (s OfferStatus) IsOpen() bool {
	switch s {
	case OfferStatusNew, OfferStatusPricing, OfferStatusSent, OfferStatusNegotiating:
		return true
	}
	return false
}

// Label returns the display label
func (s OfferStatus) Label() string {
	switch s {
	case OfferStatusNew:
		return "جديد"
	case OfferStatusPricing:
		return "قيد التسعير"
	case OfferStatusSent:
		return "مرسل"
	case OfferStatusAccepted:
		return "مقبول"
	case OfferStatusRejected:
		return "مرفوض"
	case OfferStatusNegotiating:
		return "قيد التفاوض"
	case OfferStatusConvertedToInvoice:
		return "تحول لفاتورة"
	case OfferStatusPurchaseOrderCreated:
		return "تم إنشاء أمر شراء"
	}
	return string(s)
}

// PurchaseOrderStatus represents the delivery state of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft             PurchaseOrderStatus = "draft"
	PurchaseOrderStatusSent              PurchaseOrderStatus = "sent"
	PurchaseOrderStatusPartiallyReceived PurchaseOrderStatus = "partially-received"
	PurchaseOrderStatusReceived          PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled         PurchaseOrderStatus = "cancelled"
)

// IsValid checks if the PurchaseOrderStatus is a valid enum value
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusSent, PurchaseOrderStatusPartiallyReceived,
		PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// Label returns the display label
func (s PurchaseOrderStatus) Label() string {
	switch s {
	case PurchaseOrderStatusDraft:
		return "مسودة"
	case PurchaseOrderStatusSent:
		return "مرسل"
	case PurchaseOrderStatusPartiallyReceived:
		return "مستلم جزئياً"
	case PurchaseOrderStatusReceived:
		return "مستلم"
	case PurchaseOrderStatusCancelled:
		return "ملغي"
	}
	return string(s)
}

// PaymentStatus is shared by invoices and payables
type PaymentStatus string

const (
	PaymentStatusDue     PaymentStatus = "due"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// IsValid checks if the PaymentStatus is a valid enum value
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusDue, PaymentStatusPaid, PaymentStatusOverdue:
		return true
	}
	return false
}

// Label returns the display label
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPaid:
		return "مدفوعة"
	case PaymentStatusDue:
		return "مستحقة"
	case PaymentStatusOverdue:
		return "متأخرة"
	}
	return string(s)
}

// CommunicationType is the channel a communication went through
type CommunicationType string

const (
	CommunicationTypeEmail    CommunicationType = "email"
	CommunicationTypeWhatsApp CommunicationType = "whatsapp"
)

// IsValid checks if the CommunicationType is a valid enum value
func (t CommunicationType) IsValid() bool {
	return t == CommunicationTypeEmail || t == CommunicationTypeWhatsApp
}

// Label returns the display label
func (t CommunicationType) Label() string {
	switch t {
	case CommunicationTypeEmail:
		return "بريد إلكتروني"
	case CommunicationTypeWhatsApp:
		return "واتساب"
	}
	return string(t)
}

// InventoryStatus is the stock level of an inventory item
type InventoryStatus string

const (
	InventoryStatusInStock    InventoryStatus = "in-stock"
	InventoryStatusLowStock   InventoryStatus = "low-stock"
	InventoryStatusOutOfStock InventoryStatus = "out-of-stock"
)

// IsValid checks if the InventoryStatus is a valid enum value
func (s InventoryStatus) IsValid() bool {
	switch s {
	case InventoryStatusInStock, InventoryStatusLowStock, InventoryStatusOutOfStock:
		return true
	}
	return false
}

// Label returns the display label
func (s InventoryStatus) Label() string {
	switch s {
	case InventoryStatusInStock:
		return "متوفر"
	case InventoryStatusLowStock:
		return "كمية قليلة"
	case InventoryStatusOutOfStock:
		return "نفذ المخزون"
	}
	return string(s)
}
