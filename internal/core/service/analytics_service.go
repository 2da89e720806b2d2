package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

const completedWindow = 7 * 24 * time.Hour

// AnalyticsService recomputes the summary from the owner's current rows on
// every call. No memoization; per-user task counts are small.
type AnalyticsService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewAnalyticsService(repo ports.TaskRepository, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, logger: logger}
}

// Summarize is a pure function of the owner's task rows and now.
func (s *AnalyticsService) Summarize(ctx context.Context, ownerID uint, now time.Time) (*domain.AnalyticsSummary, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error().Err(err).Uint("owner_id", ownerID).Msg("failed to load tasks for analytics")
		return nil, err
	}
	return summarize(tasks, now), nil
}

func summarize(tasks []domain.Task, now time.Time) *domain.AnalyticsSummary {
	cutoff := now.Add(-completedWindow)

	completedLastWeek := 0
	var completionHoursSum float64
	doneCount := 0
	tagDistribution := make(map[string]int)

	for _, t := range tasks {
		if t.Status == domain.StatusDone {
			doneCount++
			completionHoursSum += t.UpdatedAt.Sub(t.CreatedAt).Hours()
			if !t.UpdatedAt.Before(cutoff) {
				completedLastWeek++
			}
		}
		// One count per occurrence: duplicates within a task each count.
		for _, tag := range t.Tags {
			tagDistribution[tag]++
		}
	}

	avg := 0.0
	if doneCount > 0 {
		avg = completionHoursSum / float64(doneCount)
	}

	return &domain.AnalyticsSummary{
		CompletedLastWeek:      completedLastWeek,
		AvgCompletionTimeHours: avg,
		TagDistribution:        tagDistribution,
	}
}
