package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the board column a task currently sits in.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
)

// TaskPriority represents the urgency assigned to a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrValidation = errors.New("validation failed")

// IsValid reports whether s is one of the known board columns.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// IsValid reports whether p is one of the known priorities.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is the core aggregate root. UserID is set at creation and never
// changes; every read and write is scoped by it. Tags keep their order and
// duplicates exactly as submitted.
type Task struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	UserID      uint         `json:"user_id" gorm:"index;not null"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status" gorm:"type:text"`
	Priority    TaskPriority `json:"priority" gorm:"type:text"`
	Tags        []string     `json:"tags" gorm:"serializer:json"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
