package planner

import (
	"context"
	"errors"
	"time"
)

// ErrEmptyDescription is returned by the store when a caller tries to
// create a task without a description. The dispatcher guards against this
// before it reaches the store, but the store defends its own boundary.
var ErrEmptyDescription = errors.New("task description must not be empty")

type TaskStore interface {
	// CreateTask persists a new pending task and returns it with its
	// assigned ID.
	CreateTask(context.Context, CreateTaskRequest) (Task, error)

	// GetTasksForDay returns pending tasks due within the given calendar
	// day, ascending by due date. Tasks without a due date never appear.
	GetTasksForDay(ctx context.Context, day time.Time) ([]Task, error)

	// GetAllPendingTasks returns every pending task, ascending by due
	// date, untimed tasks included.
	GetAllPendingTasks(context.Context) ([]Task, error)

	// CompleteTasksMatching marks every pending task whose description
	// contains fragment as done and returns how many were updated.
	// Matching zero tasks is not an error.
	CompleteTasksMatching(ctx context.Context, fragment string) (int, error)
}

type CreateTaskRequest struct {
	Description string
	DueDate     time.Time // zero = no specific time
}
