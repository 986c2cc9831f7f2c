package genai

import (
	"encoding/json"
	"strings"

	"github.com/straye-as/bizdesk-api/internal/domain"
)

// ParseReport decodes a structured report answer. Code fences around the JSON
// are tolerated; anything else that is not a valid report is a response shape error.
func ParseReport(text string) (*domain.AiReport, error) {
	cleaned := stripCodeFence(strings.TrimSpace(text))

	var report domain.AiReport
	if err := json.Unmarshal([]byte(cleaned), &report); err != nil {
		return nil, &Error{Kind: KindResponseShape, Raw: text, Err: err}
	}
	if !report.ChartType.IsValid() {
		return nil, &Error{Kind: KindResponseShape, Raw: text, Message: "unknown chart type " + string(report.ChartType)}
	}
	if report.ChartData == nil || report.ChartType == domain.ChartTypeNone {
		report.ChartData = []map[string]any{}
	}
	return &report, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
