package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/straye-as/bizdesk-api/internal/cache"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/genai"
	"github.com/straye-as/bizdesk-api/internal/logger"
	"github.com/straye-as/bizdesk-api/internal/mapper"
	"github.com/straye-as/bizdesk-api/internal/metrics"
	"github.com/straye-as/bizdesk-api/internal/storage"
	"github.com/straye-as/bizdesk-api/internal/store"
	"go.uber.org/zap"
)

// reportArchivePrefix is the storage folder of exported reports
const reportArchivePrefix = "reports/"

type ReportService struct {
	store     *store.Store
	assistant assistant
	cache     cache.ReportCache
	cacheTTL  time.Duration
	archive   storage.Storage
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewReportService(
	st *store.Store,
	generator TextGenerator,
	reportCache cache.ReportCache,
	cacheTTL time.Duration,
	archive storage.Storage,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ReportService {
	if reportCache == nil {
		reportCache = cache.NoopReportCache{}
	}
	return &ReportService{
		store:     st,
		assistant: newAssistant(generator, m, logger),
		cache:     reportCache,
		cacheTTL:  cacheTTL,
		archive:   archive,
		metrics:   m,
		logger:    logger,
	}
}

// Generate answers a business question with a summary and chart data.
// Answers are cached per prompt, so a change in the underlying data asks again.
func (s *ReportService) Generate(ctx context.Context, req *domain.GenerateReportRequest) (*domain.GeneratedReportDTO, error) {
	prompt := reportPrompt(s.store.Snapshot(), req.Query)
	key := cache.ReportKey(prompt)

	cached, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("report cache lookup failed", zap.Error(err))
	}
	s.metrics.CacheLookup(hit)
	if hit {
		return &domain.GeneratedReportDTO{Query: req.Query, Response: *cached, Cached: true}, nil
	}

	text, err := s.assistant.json(ctx, featureReport, prompt)
	if err != nil {
		return nil, err
	}
	report, err := genai.ParseReport(text)
	if err != nil {
		s.logger.Warn("report response could not be parsed",
			zap.String("raw", text),
			zap.Error(err))
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	if err := s.cache.Set(ctx, key, report, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache report", zap.Error(err))
	}

	return &domain.GeneratedReportDTO{Query: req.Query, Response: *report}, nil
}

// List returns saved reports, newest first
func (s *ReportService) List(ctx context.Context) []domain.SavedReportDTO {
	reports := s.store.Snapshot().SavedReports
	dtos := make([]domain.SavedReportDTO, len(reports))
	for i := range reports {
		dtos[i] = mapper.ToSavedReportDTO(&reports[i])
	}
	return dtos
}

func (s *ReportService) Save(ctx context.Context, req *domain.SaveReportRequest) (*domain.SavedReportDTO, error) {
	if !req.Response.ChartType.IsValid() {
		return nil, fmt.Errorf("%w: chart type %q", ErrInvalidInput, req.Response.ChartType)
	}
	response := req.Response
	if response.ChartData == nil {
		response.ChartData = []map[string]any{}
	}

	report := s.store.SaveReport(ctx, domain.SavedReport{
		Query:    req.Query,
		Response: response,
	})
	logger.WithEntity(s.logger, "report", report.ID).Info("report saved")

	dto := mapper.ToSavedReportDTO(&report)
	return &dto, nil
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteReport(ctx, id); err != nil {
		return notFound(err, ErrReportNotFound)
	}
	logger.WithEntity(s.logger, "report", id).Info("report deleted")
	return nil
}

// Archive exports a saved report as JSON to the configured storage
func (s *ReportService) Archive(ctx context.Context, id string) (*domain.ReportArchiveDTO, error) {
	report, ok := findByID(s.store.Snapshot().SavedReports, id)
	if !ok {
		return nil, ErrReportNotFound
	}
	if s.archive == nil {
		return nil, fmt.Errorf("report archive storage is not configured")
	}

	body, err := json.MarshalIndent(mapper.ToSavedReportDTO(&report), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	key := reportArchivePrefix + report.ID + ".json"
	size, err := s.archive.Put(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to archive report: %w", err)
	}

	logger.WithEntity(s.logger, "report", id).Info("report archived",
		zap.String("key", key),
		zap.Int64("size", size))

	return &domain.ReportArchiveDTO{ReportID: report.ID, Key: key, Size: size}, nil
}
