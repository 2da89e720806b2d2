package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// Event names published to the notification relay on task mutations.
const (
	EventTaskCreated     = "task.created"
	EventTaskUpdated     = "task.updated"
	EventTaskDeleted     = "task.deleted"
	EventTaskDeadlineDue = "task.deadline_due"
)

// deletedPayload is the notification body for a delete; the row is gone, so
// only the id travels.
type deletedPayload struct {
	ID uint `json:"id"`
}

type TaskService struct {
	repo     ports.TaskRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, notifier ports.Notifier, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, notifier: notifier, logger: logger}
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID uint) ([]domain.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// CreateTask validates the input, applies the column defaults and persists
// the task. The owner's live sessions are notified best-effort.
func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = domain.StatusToDo
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, priority)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		UserID:      input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		Tags:        tags,
		Deadline:    input.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Uint("owner_id", input.OwnerID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Uint("owner_id", input.OwnerID).Uint("task_id", task.ID).Msg("task created")
	s.notifier.Publish(input.OwnerID, EventTaskCreated, task)

	return task, nil
}

// UpdateTask applies the partial patch. The repository scopes the write by
// owner, so a foreign or missing task surfaces uniformly as
// domain.ErrTaskNotFound.
func (s *TaskService) UpdateTask(ctx context.Context, input ports.UpdateTaskInput) (*domain.Task, error) {
	if err := validatePatch(input.Patch); err != nil {
		return nil, err
	}

	task, err := s.repo.Update(ctx, input.OwnerID, input.TaskID, input.Patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("owner_id", input.OwnerID).Uint("task_id", input.TaskID).Msg("task updated")
	s.notifier.Publish(input.OwnerID, EventTaskUpdated, task)

	return task, nil
}

// DeleteTask removes the task under the same ownership rule as UpdateTask.
// Deleting an already-gone task keeps returning domain.ErrTaskNotFound.
func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID uint) error {
	if err := s.repo.Delete(ctx, ownerID, taskID); err != nil {
		return err
	}

	s.logger.Info().Uint("owner_id", ownerID).Uint("task_id", taskID).Msg("task deleted")
	s.notifier.Publish(ownerID, EventTaskDeleted, deletedPayload{ID: taskID})

	return nil
}

func validatePatch(p ports.TaskPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
	}
	if p.Status != nil && !p.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *p.Status)
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, *p.Priority)
	}
	return nil
}
