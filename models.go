package planner

import (
	"time"
)

type Task struct {
	ID          int
	Description string
	DueDate     time.Time // zero means no specific time
	Status      TaskStatus
	CreatedAt   time.Time
}

type TaskStatus string

const (
	StatusPending TaskStatus = "pending"
	StatusDone    TaskStatus = "done"
)

// HasDueDate reports whether the task was scheduled for a specific time.
func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}
