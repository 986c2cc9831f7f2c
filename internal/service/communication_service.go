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

type CommunicationService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewCommunicationService(st *store.Store, logger *zap.Logger) *CommunicationService {
	return &CommunicationService{
		store:  st,
		logger: logger,
	}
}

func (s *CommunicationService) List(ctx context.Context) []domain.CommunicationDTO {
	return communicationDTOs(s.store.Snapshot().Communications)
}

// Create logs an exchange with a customer, optionally linked to an offer or project
func (s *CommunicationService) Create(ctx context.Context, req *domain.CreateCommunicationRequest) (*domain.CommunicationDTO, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: communication type %q", ErrInvalidInput, req.Type)
	}

	ds := s.store.Snapshot()
	if _, ok := findByID(ds.Customers, req.CustomerID); !ok {
		return nil, ErrCustomerNotFound
	}
	if req.OfferID != nil {
		if _, ok := findByID(ds.Offers, *req.OfferID); !ok {
			return nil, ErrOfferNotFound
		}
	}
	if req.ProjectID != nil {
		if _, ok := findByID(ds.Projects, *req.ProjectID); !ok {
			return nil, ErrProjectNotFound
		}
	}

	comm := domain.Communication{
		CustomerID: req.CustomerID,
		Type:       req.Type,
		Summary:    req.Summary,
		OfferID:    req.OfferID,
		ProjectID:  req.ProjectID,
	}
	if req.Date != "" {
		d, err := domain.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
		}
		comm.Date = d
	}

	comm = s.store.AddCommunication(ctx, comm)
	logger.WithEntity(s.logger, "customer", comm.CustomerID).Info("communication logged",
		zap.String("communication_id", comm.ID),
		zap.String("type", string(comm.Type)))

	dto := mapper.ToCommunicationDTO(&comm)
	return &dto, nil
}
