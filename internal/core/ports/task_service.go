package ports

import (
	"context"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a new task. Status and
// Priority may be empty, in which case the service applies the defaults
// ("To Do" / "Medium").
type CreateTaskInput struct {
	OwnerID     uint
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	Tags        []string
	Deadline    *time.Time
}

// UpdateTaskInput identifies a task and the partial change to apply.
type UpdateTaskInput struct {
	OwnerID uint
	TaskID  uint
	Patch   TaskPatch
}

// TaskService defines use-case operations for tasks. Mutations notify the
// owner's live sessions best-effort; a failed notification never fails the
// mutation.
type TaskService interface {
	ListTasks(ctx context.Context, ownerID uint) ([]domain.Task, error)
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uint) error
}
