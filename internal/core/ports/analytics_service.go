package ports

import (
	"context"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// AnalyticsService derives summary statistics from the owner's current
// tasks. Every call re-scans the owner's full task set; per-user sets are
// small and nothing here is cached.
type AnalyticsService interface {
	Summarize(ctx context.Context, ownerID uint, now time.Time) (*domain.AnalyticsSummary, error)
}
