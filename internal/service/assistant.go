package service

import (
	"context"
	"fmt"
	"time"

	"github.com/straye-as/bizdesk-api/internal/genai"
	"github.com/straye-as/bizdesk-api/internal/metrics"
	"go.uber.org/zap"
)

// TextGenerator produces text for a prompt. *genai.Client implements it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Feature names used in logs and metrics
const (
	featureReceivablesSummary = "receivables_summary"
	featurePayablesSummary    = "payables_summary"
	featureReminder           = "payment_reminder"
	featurePricingAdvice      = "pricing_advice"
	featureCompose            = "compose"
	featureInventoryAdvice    = "inventory_advice"
	featureReport             = "report"
)

// assistant wraps calls to the text generator with logging and metrics.
// A failed call is surfaced once, never retried.
type assistant struct {
	generator TextGenerator
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func newAssistant(generator TextGenerator, m *metrics.Metrics, logger *zap.Logger) assistant {
	return assistant{generator: generator, metrics: m, logger: logger}
}

func (a assistant) text(ctx context.Context, feature, prompt string) (string, error) {
	return a.call(ctx, feature, prompt, a.generator.Generate)
}

func (a assistant) json(ctx context.Context, feature, prompt string) (string, error) {
	return a.call(ctx, feature, prompt, a.generator.GenerateJSON)
}

func (a assistant) call(ctx context.Context, feature, prompt string, fn func(context.Context, string) (string, error)) (string, error) {
	start := time.Now()
	out, err := fn(ctx, prompt)
	elapsed := time.Since(start)

	if err != nil {
		kind := genai.Classify(err)
		a.metrics.ObserveAI(feature, string(kind), elapsed)
		a.logger.Warn("text generation failed",
			zap.String("feature", feature),
			zap.String("kind", string(kind)),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return "", fmt.Errorf("%w: %s: %w", ErrTextGeneration, feature, err)
	}

	a.metrics.ObserveAI(feature, "ok", elapsed)
	a.logger.Debug("text generated",
		zap.String("feature", feature),
		zap.Int("length", len(out)),
		zap.Duration("elapsed", elapsed))
	return out, nil
}
