// Package genai wraps the Gemini API for the assistant features.
package genai

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/straye-as/bizdesk-api/internal/config"
	"go.uber.org/zap"
	gemini "google.golang.org/genai"
)

// Client calls the text generation service
type Client struct {
	models      *gemini.Models
	model       string
	reportModel string
	logger      *zap.Logger
}

// NewClient creates a client from configuration. Without an API key the
// client is still returned and every call fails with KindAuthentication.
func NewClient(ctx context.Context, cfg *config.GenAIConfig, logger *zap.Logger) (*Client, error) {
	reportModel := cfg.ReportModel
	if reportModel == "" {
		reportModel = cfg.Model
	}
	c := &Client{
		model:       cfg.Model,
		reportModel: reportModel,
		logger:      logger,
	}
	if cfg.APIKey == "" {
		return c, nil
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	sdk, err := gemini.NewClient(ctx, &gemini.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    gemini.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
		HTTPOptions: gemini.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		// the SDK error may echo the client config, key included
		return nil, errors.New("failed to create genai client")
	}
	c.models = sdk.Models
	return c, nil
}

// Generate returns free text for prompt
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, c.model, prompt, nil)
}

// GenerateJSON asks the report model for a JSON document
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, c.reportModel, prompt, &gemini.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
}

func (c *Client) generate(ctx context.Context, model, prompt string, genCfg *gemini.GenerateContentConfig) (string, error) {
	if c.models == nil {
		return "", &Error{Kind: KindAuthentication, Message: "API key not configured"}
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, model, gemini.Text(prompt), genCfg)
	if err != nil {
		var apiErr gemini.APIError
		if errors.As(err, &apiErr) {
			kind := kindForStatus(apiErr.Code, apiErr.Message)
			c.logger.Warn("text generation failed",
				zap.String("model", model),
				zap.Int("status", apiErr.Code),
				zap.String("kind", string(kind)),
				zap.String("upstream_status", apiErr.Status),
			)
			return "", &Error{Kind: kind, StatusCode: apiErr.Code, Message: apiErr.Message, Raw: apiErr.Status}
		}
		if ctx.Err() != nil {
			return "", &Error{Kind: KindNetwork, Err: ctx.Err()}
		}
		return "", &Error{Kind: KindNetwork, Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &Error{Kind: KindResponseShape, StatusCode: http.StatusOK, Message: "empty response"}
	}

	c.logger.Debug("text generated",
		zap.String("model", model),
		zap.Int("chars", len(text)),
		zap.Duration("duration", time.Since(start)),
	)
	return text, nil
}

