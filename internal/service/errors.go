package service

import (
	"errors"

	"github.com/straye-as/bizdesk-api/internal/domain"
)

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrCustomerNotFound is returned when a customer is not found
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrSupplierNotFound is returned when a supplier is not found
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrOfferNotFound is returned when an offer is not found
	ErrOfferNotFound = errors.New("offer not found")

	// ErrPurchaseOrderNotFound is returned when a purchase order is not found
	ErrPurchaseOrderNotFound = errors.New("purchase order not found")

	// ErrInvoiceNotFound is returned when an invoice is not found
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrPayableNotFound is returned when a payable is not found
	ErrPayableNotFound = errors.New("payable not found")

	// ErrReportNotFound is returned when a saved report is not found
	ErrReportNotFound = errors.New("report not found")

	// ErrOfferNotAccepted is returned when purchase orders are requested for an offer that is not accepted
	ErrOfferNotAccepted = errors.New("offer must be accepted before generating purchase orders")

	// ErrNothingToGenerate is returned when no offer item has a supplier quote
	ErrNothingToGenerate = errors.New("no offer item has a supplier quote")

	// ErrTextGeneration wraps every failed call to the text generation service
	ErrTextGeneration = errors.New("text generation failed")
)

// Lifecycle errors surfaced by the services
var (
	ErrInvalidStatus           = domain.ErrInvalidStatus
	ErrOfferStatusLocked       = domain.ErrOfferStatusLocked
	ErrInvalidStatusTransition = domain.ErrInvalidStatusTransition
)
