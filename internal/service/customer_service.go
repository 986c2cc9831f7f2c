package service

import (
	"context"
	"fmt"

	"github.com/straye-as/bizdesk-api/internal/analytics"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/logger"
	"github.com/straye-as/bizdesk-api/internal/mapper"
	"github.com/straye-as/bizdesk-api/internal/store"
	"go.uber.org/zap"
)

type CustomerService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewCustomerService(st *store.Store, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		store:  st,
		logger: logger,
	}
}

// List returns every customer with the number of logged communications
func (s *CustomerService) List(ctx context.Context) []domain.CustomerDTO {
	ds := s.store.Snapshot()
	counts := analytics.CommunicationCounts(ds.Communications)

	dtos := make([]domain.CustomerDTO, len(ds.Customers))
	for i := range ds.Customers {
		dtos[i] = mapper.ToCustomerDTO(&ds.Customers[i], counts[ds.Customers[i].ID])
	}
	return dtos
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.CustomerDTO, error) {
	ds := s.store.Snapshot()
	customer, ok := findByID(ds.Customers, id)
	if !ok {
		return nil, ErrCustomerNotFound
	}

	dto := mapper.ToCustomerDTO(&customer, len(analytics.CustomerCommunications(ds.Communications, id)))
	return &dto, nil
}

func (s *CustomerService) Create(ctx context.Context, req *domain.SaveCustomerRequest) (*domain.CustomerDTO, error) {
	dto, _ := s.save(ctx, "", req)
	return dto, nil
}

// Update replaces the customer with id. An unknown id creates a new customer
// with that id; created reports which of the two happened.
func (s *CustomerService) Update(ctx context.Context, id string, req *domain.SaveCustomerRequest) (dto *domain.CustomerDTO, created bool, err error) {
	if id == "" {
		return nil, false, fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}
	dto, created = s.save(ctx, id, req)
	return dto, created, nil
}

func (s *CustomerService) save(ctx context.Context, id string, req *domain.SaveCustomerRequest) (*domain.CustomerDTO, bool) {
	saved, created := s.store.SaveCustomer(ctx, domain.Customer{
		ID:            id,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
	})

	action := "updated"
	if created {
		action = "created"
	}
	logger.WithEntity(s.logger, "customer", saved.ID).Info("customer " + action)

	comms := analytics.CustomerCommunications(s.store.Snapshot().Communications, saved.ID)
	dto := mapper.ToCustomerDTO(&saved, len(comms))
	return &dto, created
}

// Delete removes the customer. Offers, invoices and projects keep their customer name snapshot.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteCustomer(ctx, id); err != nil {
		return notFound(err, ErrCustomerNotFound)
	}
	logger.WithEntity(s.logger, "customer", id).Info("customer deleted")
	return nil
}

// Communications returns the communication log of a customer in logged order
func (s *CustomerService) Communications(ctx context.Context, id string) ([]domain.CommunicationDTO, error) {
	ds := s.store.Snapshot()
	if _, ok := findByID(ds.Customers, id); !ok {
		return nil, ErrCustomerNotFound
	}
	return communicationDTOs(analytics.CustomerCommunications(ds.Communications, id)), nil
}

func communicationDTOs(comms []domain.Communication) []domain.CommunicationDTO {
	dtos := make([]domain.CommunicationDTO, len(comms))
	for i := range comms {
		dtos[i] = mapper.ToCommunicationDTO(&comms[i])
	}
	return dtos
}
