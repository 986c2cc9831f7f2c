package service

import (
	"context"
	"fmt"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/logger"
	"github.com/straye-as/bizdesk-api/internal/mapper"
	"github.com/straye-as/bizdesk-api/internal/store"
	"go.uber.org/zap"
)

type SupplierService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewSupplierService(st *store.Store, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		store:  st,
		logger: logger,
	}
}

func (s *SupplierService) List(ctx context.Context) []domain.SupplierDTO {
	suppliers := s.store.Snapshot().Suppliers
	dtos := make([]domain.SupplierDTO, len(suppliers))
	for i := range suppliers {
		dtos[i] = mapper.ToSupplierDTO(&suppliers[i])
	}
	return dtos
}

func (s *SupplierService) GetByID(ctx context.Context, id string) (*domain.SupplierDTO, error) {
	supplier, ok := findByID(s.store.Snapshot().Suppliers, id)
	if !ok {
		return nil, ErrSupplierNotFound
	}
	dto := mapper.ToSupplierDTO(&supplier)
	return &dto, nil
}

func (s *SupplierService) Create(ctx context.Context, req *domain.SaveSupplierRequest) (*domain.SupplierDTO, error) {
	dto, _ := s.save(ctx, "", req)
	return dto, nil
}

// Update replaces the supplier with id, creating it when the id is unknown
func (s *SupplierService) Update(ctx context.Context, id string, req *domain.SaveSupplierRequest) (dto *domain.SupplierDTO, created bool, err error) {
	if id == "" {
		return nil, false, fmt.Errorf("%w: supplier id is required", ErrInvalidInput)
	}
	dto, created = s.save(ctx, id, req)
	return dto, created, nil
}

func (s *SupplierService) save(ctx context.Context, id string, req *domain.SaveSupplierRequest) (*domain.SupplierDTO, bool) {
	saved, created := s.store.SaveSupplier(ctx, domain.Supplier{
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
	logger.WithEntity(s.logger, "supplier", saved.ID).Info("supplier " + action)

	dto := mapper.ToSupplierDTO(&saved)
	return &dto, created
}

// Delete removes the supplier. Quotes, purchase orders and payables keep the supplier name snapshot.
func (s *SupplierService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteSupplier(ctx, id); err != nil {
		return notFound(err, ErrSupplierNotFound)
	}
	logger.WithEntity(s.logger, "supplier", id).Info("supplier deleted")
	return nil
}
