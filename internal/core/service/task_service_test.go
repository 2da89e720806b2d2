package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubTaskRepo struct {
	byID      map[uint]*domain.Task
	nextID    uint
	createErr error // if set, Create returns this error
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{byID: make(map[uint]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	t.ID = r.nextID
	clone := *t
	r.byID[t.ID] = &clone
	return nil
}

func (r *stubTaskRepo) ListByOwner(_ context.Context, ownerID uint) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.byID {
		if t.UserID == ownerID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update enforces the same owner scoping the real SQL condition would.
func (r *stubTaskRepo) Update(_ context.Context, ownerID, taskID uint, patch ports.TaskPatch) (*domain.Task, error) {
	t, ok := r.byID[taskID]
	if !ok || t.UserID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Tags != nil {
		t.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.Deadline != nil {
		d := *patch.Deadline
		t.Deadline = &d
	}
	t.UpdatedAt = time.Now().UTC()
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, ownerID, taskID uint) error {
	t, ok := r.byID[taskID]
	if !ok || t.UserID != ownerID {
		return domain.ErrTaskNotFound
	}
	delete(r.byID, taskID)
	return nil
}

func (r *stubTaskRepo) FindDueBetween(_ context.Context, from, to time.Time) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.byID {
		if t.Status == domain.StatusDone || t.Deadline == nil {
			continue
		}
		if t.Deadline.Before(from) || !t.Deadline.Before(to) {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---------------------------------------------------------------------------
// Recording notifier
// ---------------------------------------------------------------------------

type publishedEvent struct {
	OwnerID uint
	Event   string
	Payload any
}

type stubNotifier struct {
	events []publishedEvent
}

func (n *stubNotifier) Publish(ownerID uint, event string, payload any) {
	n.events = append(n.events, publishedEvent{OwnerID: ownerID, Event: event, Payload: payload})
}

var discardLogger = zerolog.Nop()

func strPtr(s string) *string                        { return &s }
func statusPtr(s domain.TaskStatus) *domain.TaskStatus { return &s }

// ---------------------------------------------------------------------------
// CreateTask tests
// ---------------------------------------------------------------------------

func TestTaskService_Create_AppliesDefaults(t *testing.T) {
	repo := newStubTaskRepo()
	notifier := &stubNotifier{}
	svc := NewTaskService(repo, notifier, discardLogger)

	task, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{
		OwnerID: 1,
		Title:   "Buy groceries",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.Status != domain.StatusToDo {
		t.Errorf("expected default status %q, got %q", domain.StatusToDo, task.Status)
	}
	if task.Priority != domain.PriorityMedium {
		t.Errorf("expected default priority %q, got %q", domain.PriorityMedium, task.Priority)
	}
	if task.Tags == nil || len(task.Tags) != 0 {
		t.Errorf("expected empty tag slice, got %v", task.Tags)
	}
	if task.CreatedAt.IsZero() || !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Errorf("expected created_at == updated_at and non-zero, got %v / %v", task.CreatedAt, task.UpdatedAt)
	}
}

func TestTaskService_Create_EmptyTitle_NothingPersisted(t *testing.T) {
	repo := newStubTaskRepo()
	notifier := &stubNotifier{}
	svc := NewTaskService(repo, notifier, discardLogger)

	for _, title := range []string{"", "   "} {
		_, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{OwnerID: 1, Title: title})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("title %q: expected ErrValidation, got %v", title, err)
		}
	}
	if len(repo.byID) != 0 {
		t.Errorf("expected no rows persisted, got %d", len(repo.byID))
	}
	if len(notifier.events) != 0 {
		t.Errorf("expected no notifications, got %d", len(notifier.events))
	}
}

func TestTaskService_Create_RejectsUnknownEnums(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), &stubNotifier{}, discardLogger)

	_, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{
		OwnerID: 1, Title: "x", Status: domain.TaskStatus("Archived"),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown status, got %v", err)
	}

	_, err = svc.CreateTask(context.Background(), ports.CreateTaskInput{
		OwnerID: 1, Title: "x", Priority: domain.TaskPriority("Urgent"),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown priority, got %v", err)
	}
}

func TestTaskService_Create_RoundTripPreservesTagOrder(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, &stubNotifier{}, discardLogger)

	_, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{
		OwnerID: 7, Title: "X", Tags: []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks, err := svc.ListTasks(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected exactly one task, got %d", len(tasks))
	}
	if tasks[0].Title != "X" {
		t.Errorf("expected title X, got %q", tasks[0].Title)
	}
	if len(tasks[0].Tags) != 2 || tasks[0].Tags[0] != "a" || tasks[0].Tags[1] != "b" {
		t.Errorf("expected tags [a b] in order, got %v", tasks[0].Tags)
	}
}

func TestTaskService_Create_PublishesNotification(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewTaskService(newStubTaskRepo(), notifier, discardLogger)

	task, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{OwnerID: 3, Title: "notify me"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.OwnerID != 3 || ev.Event != EventTaskCreated {
		t.Errorf("unexpected event: %+v", ev)
	}
	if got, ok := ev.Payload.(*domain.Task); !ok || got.ID != task.ID {
		t.Errorf("payload is not the created task: %+v", ev.Payload)
	}
}

// ---------------------------------------------------------------------------
// Ownership scoping
// ---------------------------------------------------------------------------

func TestTaskService_List_NeverLeaksAcrossOwners(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, &stubNotifier{}, discardLogger)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{OwnerID: 1, Title: "mine"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	other, err := svc.ListTasks(context.Background(), 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("owner 2 can see %d of owner 1's tasks", len(other))
	}
}

func TestTaskService_Update_ForeignAndMissing_SameError(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, &stubNotifier{}, discardLogger)

	created, _ := svc.CreateTask(context.Background(), ports.CreateTaskInput{OwnerID: 1, Title: "secret"})

	patch := ports.TaskPatch{Title: strPtr("hijacked")}

	_, errForeign := svc.UpdateTask(context.Background(), ports.UpdateTaskInput{OwnerID: 2, TaskID: created.ID, Patch: patch})
	_, errMissing := svc.UpdateTask(context.Background(), ports.UpdateTaskInput{OwnerID: 2, TaskID: 9999, Patch: patch})

	if !errors.Is(errForeign, domain.ErrTaskNotFound) || !errors.Is(errMissing, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for both, got %v / %v", errForeign, errMissing)
	}
	if errForeign.Error() != errMissing.Error() {
		t.Errorf("error shapes differ: %q vs %q", errForeign, errMissing)
	}
}

// ---------------------------------------------------------------------------
// UpdateTask tests
// ---------------------------------------------------------------------------

func TestTaskService_Update_PartialPatchLeavesOtherFields(t *testing.T) {
	repo := newStubTaskRepo()
	notifier := &stubNotifier{}
	svc := NewTaskService(repo, notifier, discardLogger)

	created, _ := svc.CreateTask(context.Background(), ports.CreateTaskInput{
		OwnerID:     1,
		Title:       "original",
		Description: "keep me",
		Priority:    domain.PriorityHigh,
	})

	updated, err := svc.UpdateTask(context.Background(), ports.UpdateTaskInput{
		OwnerID: 1,
		TaskID:  created.ID,
		Patch:   ports.TaskPatch{Status: statusPtr(domain.StatusInProgress)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Status != domain.StatusInProgress {
		t.Errorf("status not applied: %q", updated.Status)
	}
	if updated.Title != "original" || updated.Description != "keep me" || updated.Priority != domain.PriorityHigh {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updated_at not refreshed: %v <= %v", updated.UpdatedAt, created.UpdatedAt)
	}
	if len(notifier.events) != 2 || notifier.events[1].Event != EventTaskUpdated {
		t.Errorf("expected a task.updated notification, got %+v", notifier.events)
	}
}

func TestTaskService_Update_EmptyTitleRejectedBeforeWrite(t *testing.T) {
	repo := newStubTaskRepo()
	notifier := &stubNotifier{}
	svc := NewTaskService(repo, notifier, discardLogger)

	created, _ := svc.CreateTask(context.Background(), ports.CreateTaskInput{OwnerID: 1, Title: "valid"})
	notifier.events = nil

	_, err := svc.UpdateTask(context.Background(), ports.UpdateTaskInput{
		OwnerID: 1,
		TaskID:  created.ID,
		Patch:   ports.TaskPatch{Title: strPtr("  ")},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.byID[created.ID].Title != "valid" {
		t.Errorf("title was written despite validation failure")
	}
	if len(notifier.events) != 0 {
		t.Errorf("notification published for failed mutation")
	}
}

// ---------------------------------------------------------------------------
// DeleteTask tests
// ---------------------------------------------------------------------------

func TestTaskService_Delete_IdempotentFailure(t *testing.T) {
	repo := newStubTaskRepo()
	notifier := &stubNotifier{}
	svc := NewTaskService(repo, notifier, discardLogger)

	created, _ := svc.CreateTask(context.Background(), ports.CreateTaskInput{OwnerID: 1, Title: "doomed"})

	if err := svc.DeleteTask(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteTask(context.Background(), 1, created.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("repeated delete: expected ErrTaskNotFound, got %v", err)
	}

	last := notifier.events[len(notifier.events)-1]
	if last.Event != EventTaskDeleted {
		t.Errorf("expected task.deleted notification, got %q", last.Event)
	}
	if payload, ok := last.Payload.(deletedPayload); !ok || payload.ID != created.ID {
		t.Errorf("unexpected delete payload: %+v", last.Payload)
	}
}

func TestTaskService_Delete_ForeignOwner(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, &stubNotifier{}, discardLogger)

	created, _ := svc.CreateTask(context.Background(), ports.CreateTaskInput{OwnerID: 1, Title: "mine"})

	if err := svc.DeleteTask(context.Background(), 2, created.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if _, ok := repo.byID[created.ID]; !ok {
		t.Errorf("task deleted by non-owner")
	}
}
