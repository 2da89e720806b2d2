package ports

import (
	"context"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// TaskPatch carries a partial update. Nil fields are left untouched; only
// non-nil fields are written. The repository refreshes updated_at on every
// successful patch, even an empty one.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	Tags        *[]string
	Deadline    *time.Time
}

// TaskRepository defines persistence operations for tasks. Every operation
// that names a task is scoped by ownerID in the same statement as the write,
// so "not yours" and "does not exist" are indistinguishable: both surface
// as domain.ErrTaskNotFound.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	// ListByOwner returns all tasks owned by ownerID, oldest first.
	ListByOwner(ctx context.Context, ownerID uint) ([]domain.Task, error)
	// Update applies patch to the task and returns the row after the write.
	Update(ctx context.Context, ownerID, taskID uint, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID uint) error
	// FindDueBetween returns tasks of any owner that are not Done and whose
	// deadline falls within [from, to). Used by the reminder scheduler.
	FindDueBetween(ctx context.Context, from, to time.Time) ([]domain.Task, error)
}
