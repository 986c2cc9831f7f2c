// Package store owns the business desk dataset.
//
// Every collection has exactly one writer: the Store. Commands copy the affected
// slice, apply the change and swap it in, so a Dataset returned by Snapshot is
// never mutated afterwards and can be read without holding any lock.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/straye-as/bizdesk-api/internal/analytics"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a command targets an unknown id
var ErrNotFound = errors.New("record not found")

// Journal receives every committed change for write-behind persistence
type Journal interface {
	Save(ctx context.Context, records ...any) error
	Delete(ctx context.Context, record any, id string) error
}

// Store is the single owner of the application state
type Store struct {
	mu      sync.RWMutex
	data    domain.Dataset
	journal Journal
	logger  *zap.Logger
	now     func() time.Time

	// pending holds journal writes in commit order. It is appended to while mu
	// is held and drained under flushMu after mu is released.
	pendingMu sync.Mutex
	pending   []journalOp
	flushMu   sync.Mutex
}

type journalOp struct {
	records []any
	// delete is set for removals; records then holds the model only
	delete   bool
	deleteID string
}

// Option configures a Store
type Option func(*Store)

// WithJournal mirrors committed changes into j
func WithJournal(j Journal) Option {
	return func(s *Store) {
		s.journal = j
	}
}

// WithClock overrides the clock used for generated ids and dates
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store holding data
func New(data domain.Dataset, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		data:   data,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current dataset. The returned slices must not be modified.
func (s *Store) Snapshot() domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// persist queues committed records for the journal. It must be called with mu
// held so the queue keeps commit order.
func (s *Store) persist(_ context.Context, records ...any) {
	if s.journal == nil || len(records) == 0 {
		return
	}
	s.enqueue(journalOp{records: records})
}

func (s *Store) persistDelete(_ context.Context, record any, id string) {
	if s.journal == nil {
		return
	}
	s.enqueue(journalOp{records: []any{record}, delete: true, deleteID: id})
}

func (s *Store) enqueue(op journalOp) {
	s.pendingMu.Lock()
	s.pending = append(s.pending, op)
	s.pendingMu.Unlock()
}

// unlockAndFlush releases the write lock and then writes every queued change
// to the journal, so readers never wait on the database. Failures are logged
// and never roll back the in-memory change.
func (s *Store) unlockAndFlush(ctx context.Context) {
	s.mu.Unlock()
	if s.journal == nil {
		return
	}

	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.pendingMu.Lock()
	ops := s.pending
	s.pending = nil
	s.pendingMu.Unlock()

	// the request may be gone by now; the write still has to land
	ctx = context.WithoutCancel(ctx)
	for _, op := range ops {
		if op.delete {
			if err := s.journal.Delete(ctx, op.records[0], op.deleteID); err != nil {
				s.logger.Error("failed to journal delete", zap.String("id", op.deleteID), zap.Error(err))
			}
			continue
		}
		if err := s.journal.Save(ctx, op.records...); err != nil {
			s.logger.Error("failed to journal change", zap.Int("records", len(op.records)), zap.Error(err))
		}
	}
}

func (s *Store) today() time.Time {
	return domain.DateOf(s.now())
}

// SaveCustomer replaces the customer with the same id or adds it when the id is
// unknown or empty. It reports whether a new record was created.
func (s *Store) SaveCustomer(ctx context.Context, c domain.Customer) (domain.Customer, bool) {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	created := false
	if i := indexOf(s.data.Customers, c.ID, customerKey); i >= 0 {
		c.RegistrationDate = s.data.Customers[i].RegistrationDate
		s.data.Customers = replaceAt(s.data.Customers, i, c)
	} else {
		if c.ID == "" {
			c.ID = newID(prefixCustomer)
		}
		if c.RegistrationDate.IsZero() {
			c.RegistrationDate = s.today()
		}
		s.data.Customers = appendCopy(s.data.Customers, c)
		created = true
	}

	s.persist(ctx, &c)
	return c, created
}

// DeleteCustomer removes a customer. Records referencing it are left untouched.
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	i := indexOf(s.data.Customers, id, customerKey)
	if i < 0 {
		return ErrNotFound
	}
	s.data.Customers = removeAt(s.data.Customers, i)
	s.persistDelete(ctx, &domain.Customer{}, id)
	return nil
}

// SaveSupplier replaces the supplier with the same id or adds it
func (s *Store) SaveSupplier(ctx context.Context, sup domain.Supplier) (domain.Supplier, bool) {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	created := false
	if i := indexOf(s.data.Suppliers, sup.ID, supplierKey); i >= 0 {
		s.data.Suppliers = replaceAt(s.data.Suppliers, i, sup)
	} else {
		if sup.ID == "" {
			sup.ID = newID(prefixSupplier)
		}
		s.data.Suppliers = appendCopy(s.data.Suppliers, sup)
		created = true
	}

	s.persist(ctx, &sup)
	return sup, created
}

// DeleteSupplier removes a supplier. Records referencing it are left untouched.
func (s *Store) DeleteSupplier(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	i := indexOf(s.data.Suppliers, id, supplierKey)
	if i < 0 {
		return ErrNotFound
	}
	s.data.Suppliers = removeAt(s.data.Suppliers, i)
	s.persistDelete(ctx, &domain.Supplier{}, id)
	return nil
}

// AddProject stores a new project, snapshotting the customer name
func (s *Store) AddProject(ctx context.Context, p domain.Project) domain.Project {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	if p.ID == "" {
		p.ID = newID(prefixProject)
	}
	p.CustomerName = snapshotCustomerName(s.data, p.CustomerID, p.CustomerName)
	s.data.Projects = appendCopy(s.data.Projects, p)

	s.persist(ctx, &p)
	return p
}

// UpdateProject applies fn to the project with the given id
func (s *Store) UpdateProject(ctx context.Context, id string, fn func(domain.Project) (domain.Project, error)) (domain.Project, error) {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	updated, items, err := update(s.data.Projects, id, projectKey, fn)
	if err != nil {
		return domain.Project{}, err
	}
	s.data.Projects = items

	s.persist(ctx, &updated)
	return updated, nil
}

// AddOffer stores a new offer with the next quotation number
func (s *Store) AddOffer(ctx context.Context, o domain.Offer) domain.Offer {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	if o.ID == "" {
		o.ID = nextOfferID(s.now().Year(), s.data.Offers)
	}
	o.CustomerName = snapshotCustomerName(s.data, o.CustomerID, o.CustomerName)
	s.data.Offers = appendCopy(s.data.Offers, o)

	s.persist(ctx, &o)
	return o
}

// UpdateOffer applies fn to the offer with the given id
func (s *Store) UpdateOffer(ctx context.Context, id string, fn func(domain.Offer) (domain.Offer, error)) (domain.Offer, error) {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	updated, items, err := update(s.data.Offers, id, offerKey, fn)
	if err != nil {
		return domain.Offer{}, err
	}
	s.data.Offers = items

	s.persist(ctx, &updated)
	return updated, nil
}

// CommitPurchaseOrders runs build against the current offer and, when it succeeds,
// appends the returned purchase orders and stores the returned offer in one write.
// Orders without an id get a fresh one.
func (s *Store) CommitPurchaseOrders(
	ctx context.Context,
	offerID string,
	build func(domain.Offer) ([]domain.PurchaseOrder, domain.Offer, error),
) ([]domain.PurchaseOrder, domain.Offer, error) {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	i := indexOf(s.data.Offers, offerID, offerKey)
	if i < 0 {
		return nil, domain.Offer{}, ErrNotFound
	}

	orders, offer, err := build(s.data.Offers[i])
	if err != nil {
		return nil, domain.Offer{}, err
	}
	for j := range orders {
		if orders[j].ID == "" {
			orders[j].ID = newID(prefixPurchaseOrder)
		}
	}

	s.data.PurchaseOrders = appendCopy(s.data.PurchaseOrders, orders...)
	s.data.Offers = replaceAt(s.data.Offers, i, offer)

	records := make([]any, 0, len(orders)+1)
	for j := range orders {
		records = append(records, &orders[j])
	}
	records = append(records, &offer)
	s.persist(ctx, records...)

	return orders, offer, nil
}

// UpdatePurchaseOrder applies fn to the purchase order with the given id
func (s *Store) UpdatePurchaseOrder(ctx context.Context, id string, fn func(domain.PurchaseOrder) (domain.PurchaseOrder, error)) (domain.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	updated, items, err := update(s.data.PurchaseOrders, id, purchaseOrderKey, fn)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	s.data.PurchaseOrders = items

	s.persist(ctx, &updated)
	return updated, nil
}

// AddInvoice stores a new invoice, snapshotting the customer name
func (s *Store) AddInvoice(ctx context.Context, inv domain.Invoice) domain.Invoice {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	if inv.ID == "" {
		inv.ID = newID(prefixInvoice)
	}
	inv.CustomerName = snapshotCustomerName(s.data, inv.CustomerID, inv.CustomerName)
	s.data.Invoices = appendCopy(s.data.Invoices, inv)

	s.persist(ctx, &inv)
	return inv
}

// UpdateInvoice applies fn to the invoice with the given id
func (s *Store) UpdateInvoice(ctx context.Context, id string, fn func(domain.Invoice) (domain.Invoice, error)) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	updated, items, err := update(s.data.Invoices, id, invoiceKey, fn)
	if err != nil {
		return domain.Invoice{}, err
	}
	s.data.Invoices = items

	s.persist(ctx, &updated)
	return updated, nil
}

// AddPayable stores a new payable, snapshotting the supplier name
func (s *Store) AddPayable(ctx context.Context, p domain.Payable) domain.Payable {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	if p.ID == "" {
		p.ID = newID(prefixPayable)
	}
	p.SupplierName = snapshotSupplierName(s.data, p.SupplierID, p.SupplierName)
	s.data.Payables = appendCopy(s.data.Payables, p)

	s.persist(ctx, &p)
	return p
}

// UpdatePayable applies fn to the payable with the given id
func (s *Store) UpdatePayable(ctx context.Context, id string, fn func(domain.Payable) (domain.Payable, error)) (domain.Payable, error) {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	updated, items, err := update(s.data.Payables, id, payableKey, fn)
	if err != nil {
		return domain.Payable{}, err
	}
	s.data.Payables = items

	s.persist(ctx, &updated)
	return updated, nil
}

// RefreshPaymentStatuses re-derives due/overdue for invoices and payables as of
// today. Collections are only swapped when a status actually changed.
func (s *Store) RefreshPaymentStatuses(ctx context.Context, today time.Time) (invoicesChanged, payablesChanged int) {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	var records []any
	if invoices, changed := analytics.RefreshInvoiceStatuses(s.data.Invoices, today); changed {
		for i := range invoices {
			if invoices[i].Status != s.data.Invoices[i].Status {
				invoicesChanged++
				records = append(records, &invoices[i])
			}
		}
		s.data.Invoices = invoices
	}
	if payables, changed := analytics.RefreshPayableStatuses(s.data.Payables, today); changed {
		for i := range payables {
			if payables[i].Status != s.data.Payables[i].Status {
				payablesChanged++
				records = append(records, &payables[i])
			}
		}
		s.data.Payables = payables
	}

	s.persist(ctx, records...)
	return invoicesChanged, payablesChanged
}

// AddTimeLog records hours against a project
func (s *Store) AddTimeLog(ctx context.Context, tl domain.TimeLog) domain.TimeLog {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	if tl.ID == "" {
		tl.ID = newID(prefixTimeLog)
	}
	s.data.TimeLogs = appendCopy(s.data.TimeLogs, tl)

	s.persist(ctx, &tl)
	return tl
}

// AddCommunication logs a customer communication
func (s *Store) AddCommunication(ctx context.Context, c domain.Communication) domain.Communication {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	if c.ID == "" {
		c.ID = newID(prefixCommunication)
	}
	if c.Date.IsZero() {
		c.Date = s.today()
	}
	s.data.Communications = appendCopy(s.data.Communications, c)

	s.persist(ctx, &c)
	return c
}

// AddInventoryItem stores a new inventory item
func (s *Store) AddInventoryItem(ctx context.Context, item domain.InventoryItem) domain.InventoryItem {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	if item.ID == "" {
		item.ID = newID(prefixProduct)
	}
	s.data.Inventory = appendCopy(s.data.Inventory, item)

	s.persist(ctx, &item)
	return item
}

// SaveReport keeps a generated report, newest first
func (s *Store) SaveReport(ctx context.Context, r domain.SavedReport) domain.SavedReport {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	if r.ID == "" {
		r.ID = reportID(s.now())
	}
	if r.SavedAt.IsZero() {
		r.SavedAt = s.today()
	}
	reports := make([]domain.SavedReport, 0, len(s.data.SavedReports)+1)
	reports = append(reports, r)
	s.data.SavedReports = append(reports, s.data.SavedReports...)

	s.persist(ctx, &r)
	return r
}

// DeleteReport removes a saved report
func (s *Store) DeleteReport(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.unlockAndFlush(ctx)

	i := indexOf(s.data.SavedReports, id, savedReportKey)
	if i < 0 {
		return ErrNotFound
	}
	s.data.SavedReports = removeAt(s.data.SavedReports, i)
	s.persistDelete(ctx, &domain.SavedReport{}, id)
	return nil
}

// snapshotCustomerName returns the display name copied onto records that
// reference a customer. An explicit fallback wins when the customer is unknown.
func snapshotCustomerName(ds domain.Dataset, id, fallback string) string {
	if i := indexOf(ds.Customers, id, customerKey); i >= 0 {
		return ds.Customers[i].Name
	}
	return fallback
}

// snapshotSupplierName is snapshotCustomerName for suppliers
func snapshotSupplierName(ds domain.Dataset, id, fallback string) string {
	if i := indexOf(ds.Suppliers, id, supplierKey); i >= 0 {
		return ds.Suppliers[i].Name
	}
	return fallback
}
