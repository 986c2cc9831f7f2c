package service

import (
	"context"
	"fmt"

	"github.com/straye-as/bizdesk-api/internal/analytics"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/logger"
	"github.com/straye-as/bizdesk-api/internal/mapper"
	"github.com/straye-as/bizdesk-api/internal/metrics"
	"github.com/straye-as/bizdesk-api/internal/store"
	"go.uber.org/zap"
)

type ProjectService struct {
	store   *store.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewProjectService(st *store.Store, m *metrics.Metrics, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		store:   st,
		metrics: m,
		logger:  logger,
	}
}

// List returns the project portfolio with revenue, cost and profit per project
func (s *ProjectService) List(ctx context.Context) []domain.ProjectSummaryDTO {
	ds := s.store.Snapshot()
	rows := analytics.PortfolioProfitability(ds.Projects, ds.Invoices, ds.PurchaseOrders)

	dtos := make([]domain.ProjectSummaryDTO, len(rows))
	for i := range rows {
		dtos[i] = mapper.ToProjectSummaryDTO(&rows[i])
	}
	return dtos
}

func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.ProjectDTO, error) {
	status := req.Status
	if status == "" {
		status = domain.ProjectStatusPlanning
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: project status %q", ErrInvalidStatus, status)
	}
	if _, ok := findByID(s.store.Snapshot().Customers, req.CustomerID); !ok {
		return nil, ErrCustomerNotFound
	}

	project := s.store.AddProject(ctx, domain.Project{
		Name:       req.Name,
		CustomerID: req.CustomerID,
		Status:     status,
	})
	logger.WithEntity(s.logger, "project", project.ID).Info("project created",
		zap.String("customer_id", project.CustomerID))

	dto := mapper.ToProjectDTO(&project)
	return &dto, nil
}

// GetByID returns the project with its financials and every record linked to it
func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.ProjectDetailDTO, error) {
	ds := s.store.Snapshot()
	project, ok := findByID(ds.Projects, id)
	if !ok {
		return nil, ErrProjectNotFound
	}

	detail := &domain.ProjectDetailDTO{
		Project:        mapper.ToProjectDTO(&project),
		Financials:     mapper.ToProjectFinancialsDTO(analytics.ProjectFinancials(id, ds.Invoices, ds.PurchaseOrders, ds.TimeLogs)),
		Offers:         []domain.OfferDTO{},
		Invoices:       []domain.InvoiceDTO{},
		PurchaseOrders: []domain.PurchaseOrderDTO{},
		TimeLogs:       []domain.TimeLogDTO{},
		Communications: []domain.CommunicationDTO{},
	}

	for i := range ds.Offers {
		if isLinked(ds.Offers[i].ProjectID, id) {
			detail.Offers = append(detail.Offers, mapper.ToOfferDTO(&ds.Offers[i]))
		}
	}
	for i := range ds.Invoices {
		if isLinked(ds.Invoices[i].ProjectID, id) {
			detail.Invoices = append(detail.Invoices, mapper.ToInvoiceDTO(&ds.Invoices[i]))
		}
	}
	for i := range ds.PurchaseOrders {
		if isLinked(ds.PurchaseOrders[i].ProjectID, id) {
			detail.PurchaseOrders = append(detail.PurchaseOrders, mapper.ToPurchaseOrderDTO(&ds.PurchaseOrders[i]))
		}
	}
	for i := range ds.TimeLogs {
		if ds.TimeLogs[i].ProjectID == id {
			detail.TimeLogs = append(detail.TimeLogs, mapper.ToTimeLogDTO(&ds.TimeLogs[i]))
		}
	}
	for i := range ds.Communications {
		if isLinked(ds.Communications[i].ProjectID, id) {
			detail.Communications = append(detail.Communications, mapper.ToCommunicationDTO(&ds.Communications[i]))
		}
	}

	return detail, nil
}

// Financials returns revenue, cost, profit, margin and hours of a project
func (s *ProjectService) Financials(ctx context.Context, id string) (*domain.ProjectFinancialsDTO, error) {
	ds := s.store.Snapshot()
	if _, ok := findByID(ds.Projects, id); !ok {
		return nil, ErrProjectNotFound
	}
	dto := mapper.ToProjectFinancialsDTO(analytics.ProjectFinancials(id, ds.Invoices, ds.PurchaseOrders, ds.TimeLogs))
	return &dto, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, req *domain.UpdateProjectRequest) (*domain.ProjectDTO, error) {
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: project status %q", ErrInvalidStatus, req.Status)
	}

	var previous domain.ProjectStatus
	project, err := s.store.UpdateProject(ctx, id, func(p domain.Project) (domain.Project, error) {
		previous = p.Status
		p.Name = req.Name
		p.Status = req.Status
		return p, nil
	})
	if err != nil {
		return nil, notFound(err, ErrProjectNotFound)
	}

	if previous != project.Status {
		s.metrics.StatusChanged("project", string(project.Status))
		logger.WithEntity(s.logger, "project", id).Info("project status changed",
			zap.String("from", string(previous)),
			zap.String("to", string(project.Status)))
	}

	dto := mapper.ToProjectDTO(&project)
	return &dto, nil
}

// LogTime records hours worked on a project
func (s *ProjectService) LogTime(ctx context.Context, projectID string, req *domain.CreateTimeLogRequest) (*domain.TimeLogDTO, error) {
	if _, ok := findByID(s.store.Snapshot().Projects, projectID); !ok {
		return nil, ErrProjectNotFound
	}
	if req.Hours <= 0 {
		return nil, fmt.Errorf("%w: hours must be positive", ErrInvalidInput)
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	tl := s.store.AddTimeLog(ctx, domain.TimeLog{
		ProjectID: projectID,
		UserName:  req.UserName,
		Date:      date,
		Hours:     req.Hours,
		Task:      req.Task,
	})
	logger.WithEntity(s.logger, "project", projectID).Info("time logged",
		zap.String("time_log_id", tl.ID),
		zap.Float64("hours", tl.Hours))

	dto := mapper.ToTimeLogDTO(&tl)
	return &dto, nil
}

func isLinked(ref *string, id string) bool {
	return ref != nil && *ref == id
}
