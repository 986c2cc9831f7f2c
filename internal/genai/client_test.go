package genai_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/straye-as/bizdesk-api/internal/config"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *genai.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := genai.NewClient(context.Background(), &config.GenAIConfig{
		BaseURL:        server.URL,
		APIKey:         "test-key",
		Model:          "text-model",
		ReportModel:    "report-model",
		TimeoutSeconds: 5,
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func candidateBody(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"role":"model","parts":[{"text":%q}]},"finishReason":"STOP"}]}`, text)
}

func TestClient_Generate(t *testing.T) {
	var gotPath, gotKey, gotQuery string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, candidateBody("مرحبا"))
	})

	text, err := client.Generate(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "مرحبا", text)
	assert.Equal(t, "/v1beta/models/text-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.NotContains(t, gotQuery, "test-key")
}

func TestClient_GenerateJSONUsesReportModel(t *testing.T) {
	var gotPath string
	var gotBody struct {
		GenerationConfig struct {
			ResponseMimeType string `json:"responseMimeType"`
		} `json:"generationConfig"`
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = io.WriteString(w, candidateBody(`{"summary":"ok","chartType":"none","chartData":[]}`))
	})

	_, err := client.GenerateJSON(context.Background(), "report")

	require.NoError(t, err)
	assert.Equal(t, "/v1beta/models/report-model:generateContent", gotPath)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMimeType)
}

func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   genai.Kind
	}{
		{"forbidden", http.StatusForbidden, `{"error":{"code":403,"message":"denied"}}`, genai.KindAuthentication},
		{"invalid key", http.StatusBadRequest, `{"error":{"code":400,"message":"API key not valid. Please pass a valid API key."}}`, genai.KindAuthentication},
		{"rate limited", http.StatusTooManyRequests, `{"error":{"code":429,"message":"quota"}}`, genai.KindRateLimit},
		{"server", http.StatusServiceUnavailable, `overloaded`, genai.KindServer},
		{"other client error", http.StatusBadRequest, `{"error":{"code":400,"message":"bad"}}`, genai.KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.Generate(context.Background(), "hello")

			require.Error(t, err)
			var genErr *genai.Error
			require.True(t, errors.As(err, &genErr))
			assert.Equal(t, tt.kind, genErr.Kind)
			assert.Equal(t, tt.status, genErr.StatusCode)
			assert.Equal(t, tt.kind, genai.Classify(err))
		})
	}
}

func TestClient_EmptyResponseIsShapeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	_, err := client.Generate(context.Background(), "hello")

	assert.Equal(t, genai.KindResponseShape, genai.Classify(err))
}

func TestClient_MissingKey(t *testing.T) {
	client, err := genai.NewClient(context.Background(), &config.GenAIConfig{BaseURL: "http://127.0.0.1:1", Model: "m"}, zap.NewNop())
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "hello")

	assert.Equal(t, genai.KindAuthentication, genai.Classify(err))
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := genai.NewClient(context.Background(), &config.GenAIConfig{BaseURL: url, APIKey: "SECRET-KEY-123", Model: "m"}, zap.NewNop())
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "hello")

	require.Error(t, err)
	assert.Equal(t, genai.KindNetwork, genai.Classify(err))
	assert.NotContains(t, err.Error(), "SECRET-KEY-123")
}

func TestClient_NetworkErrorIsNotLoggedWithKey(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	client, err := genai.NewClient(context.Background(), &config.GenAIConfig{BaseURL: "http://127.0.0.1:1", APIKey: "SECRET-KEY-123", Model: "m", TimeoutSeconds: 2}, zap.New(core))
	require.NoError(t, err)

	_, err = client.GenerateJSON(context.Background(), "hello")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET-KEY-123")
	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, "SECRET-KEY-123")
		for _, v := range entry.ContextMap() {
			assert.NotContains(t, fmt.Sprint(v), "SECRET-KEY-123")
		}
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, genai.KindUnknown, genai.Classify(nil))
	assert.Equal(t, genai.KindNetwork, genai.Classify(fmt.Errorf("call: %w", context.DeadlineExceeded)))
	assert.Equal(t, genai.KindAuthentication, genai.Classify(errors.New("API key not valid")))
	assert.Equal(t, genai.KindUnexpected, genai.Classify(errors.New("boom")))
	assert.Equal(t, genai.KindRateLimit, genai.Classify(fmt.Errorf("wrapped: %w", &genai.Error{Kind: genai.KindRateLimit})))
}

func TestUserMessage(t *testing.T) {
	assert.Contains(t, genai.UserMessage(genai.KindRateLimit), "الطلبات")
	assert.Equal(t, genai.UserMessage(genai.KindUnknown), genai.UserMessage(genai.Kind("nope")))
}

// ============================================================================
// Report parsing
// ============================================================================

func TestParseReport(t *testing.T) {
	report, err := genai.ParseReport(`{"summary":"**الإيرادات**","chartType":"bar","chartData":[{"name":"يوليو","value":1500}]}`)

	require.NoError(t, err)
	assert.Equal(t, domain.ChartTypeBar, report.ChartType)
	require.Len(t, report.ChartData, 1)
	assert.Equal(t, "يوليو", report.ChartData[0]["name"])
	assert.Equal(t, 1500.0, report.ChartData[0]["value"])
}

func TestParseReport_CodeFence(t *testing.T) {
	text := "```json\n{\"summary\":\"s\",\"chartType\":\"pie\",\"chartData\":[]}\n```"

	report, err := genai.ParseReport(text)

	require.NoError(t, err)
	assert.Equal(t, domain.ChartTypePie, report.ChartType)
}

func TestParseReport_NoneClearsChartData(t *testing.T) {
	report, err := genai.ParseReport(`{"summary":"s","chartType":"none","chartData":[{"name":"x","value":1}]}`)

	require.NoError(t, err)
	assert.NotNil(t, report.ChartData)
	assert.Empty(t, report.ChartData)
}

func TestParseReport_Invalid(t *testing.T) {
	for _, text := range []string{
		"not json",
		`{"summary":"s","chartType":"scatter","chartData":[]}`,
		strings.Repeat("{", 3),
	} {
		_, err := genai.ParseReport(text)

		var genErr *genai.Error
		require.True(t, errors.As(err, &genErr), text)
		assert.Equal(t, genai.KindResponseShape, genErr.Kind)
		assert.Equal(t, text, genErr.Raw)
	}
}
