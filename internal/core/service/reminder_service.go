package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// ReminderService publishes deadline reminders for tasks that are not Done
// and fall due within the lookahead window. Invoked periodically by the
// cron scheduler; delivery is best-effort like every other notification.
type ReminderService struct {
	repo      ports.TaskRepository
	notifier  ports.Notifier
	lookahead time.Duration
	logger    zerolog.Logger
}

func NewReminderService(repo ports.TaskRepository, notifier ports.Notifier, lookahead time.Duration, logger zerolog.Logger) *ReminderService {
	if lookahead <= 0 {
		lookahead = 24 * time.Hour
	}
	return &ReminderService{repo: repo, notifier: notifier, lookahead: lookahead, logger: logger}
}

// Run performs a single reminder sweep.
func (s *ReminderService) Run(ctx context.Context) error {
	now := time.Now().UTC()

	due, err := s.repo.FindDueBetween(ctx, now, now.Add(s.lookahead))
	if err != nil {
		s.logger.Error().Err(err).Msg("reminder sweep failed to load due tasks")
		return err
	}

	for i := range due {
		task := &due[i]
		s.notifier.Publish(task.UserID, EventTaskDeadlineDue, task)
	}

	if len(due) > 0 {
		s.logger.Info().Int("count", len(due)).Msg("deadline reminders published")
	}
	return nil
}
