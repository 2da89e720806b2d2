package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

func openTestDB(t *testing.T) *TaskRepository {
	t.Helper()
	db, err := Open("file::memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })
	return NewTaskRepository(db)
}

func createTask(t *testing.T, repo *TaskRepository, owner uint, title string, tags ...string) *domain.Task {
	t.Helper()
	now := time.Now().UTC()
	task := &domain.Task{
		UserID:    owner,
		Title:     title,
		Status:    domain.StatusToDo,
		Priority:  domain.PriorityMedium,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func TestTaskRepository_RoundTripPreservesTags(t *testing.T) {
	repo := openTestDB(t)
	createTask(t, repo, 1, "X", "a", "b", "a")

	tasks, err := repo.ListByOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0].Tags
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "a" {
		t.Errorf("tags not preserved in order with duplicates: %v", got)
	}
}

func TestTaskRepository_ListScopedToOwner(t *testing.T) {
	repo := openTestDB(t)
	createTask(t, repo, 1, "mine")
	createTask(t, repo, 2, "theirs")

	tasks, err := repo.ListByOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "mine" {
		t.Errorf("owner scoping broken: %+v", tasks)
	}
}

func TestTaskRepository_Update_ForeignOwnerNotFound(t *testing.T) {
	repo := openTestDB(t)
	task := createTask(t, repo, 1, "secret")

	title := "hijacked"
	_, err := repo.Update(context.Background(), 2, task.ID, ports.TaskPatch{Title: &title})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	tasks, _ := repo.ListByOwner(context.Background(), 1)
	if tasks[0].Title != "secret" {
		t.Errorf("row mutated by non-owner: %q", tasks[0].Title)
	}
}

func TestTaskRepository_Update_PatchAndRefresh(t *testing.T) {
	repo := openTestDB(t)
	task := createTask(t, repo, 1, "before", "keep")

	status := domain.StatusDone
	updated, err := repo.Update(context.Background(), 1, task.ID, ports.TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != domain.StatusDone {
		t.Errorf("status not applied: %q", updated.Status)
	}
	if updated.Title != "before" || len(updated.Tags) != 1 || updated.Tags[0] != "keep" {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
	if updated.UpdatedAt.Before(task.UpdatedAt) {
		t.Errorf("updated_at not refreshed")
	}
}

func TestTaskRepository_Delete_IdempotentFailure(t *testing.T) {
	repo := openTestDB(t)
	task := createTask(t, repo, 1, "doomed")

	if err := repo.Delete(context.Background(), 1, task.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(context.Background(), 1, task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("repeated delete: expected ErrTaskNotFound, got %v", err)
	}
	if err := repo.Delete(context.Background(), 2, task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("foreign delete: expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskRepository_FindDueBetween(t *testing.T) {
	repo := openTestDB(t)
	now := time.Now().UTC()

	soon := now.Add(2 * time.Hour)
	later := now.Add(48 * time.Hour)

	due := createTask(t, repo, 1, "due soon")
	if _, err := repo.Update(context.Background(), 1, due.ID, ports.TaskPatch{Deadline: &soon}); err != nil {
		t.Fatalf("set deadline: %v", err)
	}

	far := createTask(t, repo, 1, "due later")
	if _, err := repo.Update(context.Background(), 1, far.ID, ports.TaskPatch{Deadline: &later}); err != nil {
		t.Fatalf("set deadline: %v", err)
	}

	done := createTask(t, repo, 1, "already done")
	status := domain.StatusDone
	if _, err := repo.Update(context.Background(), 1, done.ID, ports.TaskPatch{Deadline: &soon, Status: &status}); err != nil {
		t.Fatalf("set deadline: %v", err)
	}

	found, err := repo.FindDueBetween(context.Background(), now, now.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("find due: %v", err)
	}
	if len(found) != 1 || found[0].ID != due.ID {
		t.Errorf("expected only the open task due within 24h, got %+v", found)
	}
}
