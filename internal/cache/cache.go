// Package cache stores generated reports so repeated questions over unchanged data
// do not call the text generation service again.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/straye-as/bizdesk-api/internal/domain"
)

// ReportCache caches structured report answers by key
type ReportCache interface {
	Get(ctx context.Context, key string) (*domain.AiReport, bool, error)
	Set(ctx context.Context, key string, value *domain.AiReport, ttl time.Duration) error
	Ping(ctx context.Context) error
}

// ReportKey derives a cache key from the full prompt, which embeds the data it was built from
func ReportKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "bizdesk:report:" + hex.EncodeToString(sum[:])
}

// NoopReportCache never stores anything
type NoopReportCache struct{}

func (NoopReportCache) Get(_ context.Context, _ string) (*domain.AiReport, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) Set(_ context.Context, _ string, _ *domain.AiReport, _ time.Duration) error {
	return nil
}

func (NoopReportCache) Ping(_ context.Context) error {
	return nil
}
