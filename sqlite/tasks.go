package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"

	planner "github.com/AnmoL11221/Voice-Task-Planner"
)

const selectTasks = "SELECT id, description, due_date, status, created_at FROM tasks"

type taskEntity struct {
	ID          int
	Description string
	DueDate     sql.NullInt64
	Status      string
	CreatedAt   int64
}

type scannable interface {
	Scan(...any) error
}

// taskStore
type taskStore struct {
	dbGetter txStdLib.DBGetter
	l        planner.Logger
}

var _ planner.TaskStore = (*taskStore)(nil)

func NewTaskStore(dbGetter txStdLib.DBGetter, logger planner.Logger) planner.TaskStore {
	return &taskStore{
		dbGetter: dbGetter,
		l:        logger,
	}
}

func (s *taskStore) CreateTask(ctx context.Context, req planner.CreateTaskRequest) (planner.Task, error) {
	if req.Description == "" {
		return planner.Task{}, planner.ErrEmptyDescription
	}

	now := time.Now()
	var due sql.NullInt64
	if !req.DueDate.IsZero() {
		due = sql.NullInt64{
			Valid: true,
			Int64: req.DueDate.Unix(),
		}
	}

	args := []any{req.Description, due, planner.StatusPending, now.Unix()}
	query := "INSERT INTO tasks (description, due_date, status, created_at) VALUES " + generateParameters(len(args))
	s.l.Debug("creating task", "query", query, "args", args)

	db := s.dbGetter(ctx)
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return planner.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return planner.Task{}, err
	}

	return planner.Task{
		ID:          int(id),
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      planner.StatusPending,
		CreatedAt:   now,
	}, nil
}

func (s *taskStore) GetTasksForDay(ctx context.Context, day time.Time) ([]planner.Task, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Second)

	query := selectTasks + " WHERE status = ? AND due_date BETWEEN ? AND ? ORDER BY due_date ASC"
	args := []any{planner.StatusPending, start.Unix(), end.Unix()}
	s.l.Debug("getting tasks for day", "query", query, "args", args)

	db := s.dbGetter(ctx)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return extractTasks(rows)
}

func (s *taskStore) GetAllPendingTasks(ctx context.Context) ([]planner.Task, error) {
	query := selectTasks + " WHERE status = ? ORDER BY due_date ASC"
	s.l.Debug("getting all pending tasks", "query", query)

	db := s.dbGetter(ctx)
	rows, err := db.QueryContext(ctx, query, planner.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return extractTasks(rows)
}

func (s *taskStore) CompleteTasksMatching(ctx context.Context, fragment string) (int, error) {
	// instr keeps the match case-sensitive; LIKE folds ASCII case.
	// An empty fragment would match every row.
	if fragment == "" {
		return 0, nil
	}

	query := "UPDATE tasks SET status = ? WHERE status = ? AND instr(description, ?) > 0"
	s.l.Debug("completing tasks", "query", query, "fragment", fragment)

	db := s.dbGetter(ctx)
	res, err := db.ExecContext(ctx, query, planner.StatusDone, planner.StatusPending, fragment)
	if err != nil {
		return 0, err
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(updated), nil
}

func extractTasks(rows *sql.Rows) ([]planner.Task, error) {
	var tasks []planner.Task
	for rows.Next() {
		task, err := extractTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func extractTask(s scannable) (planner.Task, error) {
	var e taskEntity
	if err := s.Scan(&e.ID, &e.Description, &e.DueDate, &e.Status, &e.CreatedAt); err != nil {
		return planner.Task{}, err
	}
	return mapToTask(e), nil
}

func mapToTask(e taskEntity) planner.Task {
	var due time.Time
	if e.DueDate.Valid {
		due = time.Unix(e.DueDate.Int64, 0).Local()
	}
	return planner.Task{
		ID:          e.ID,
		Description: e.Description,
		DueDate:     due,
		Status:      planner.TaskStatus(e.Status),
		CreatedAt:   time.Unix(e.CreatedAt, 0).Local(),
	}
}

func generateParameters(n int) string {
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("(?")
	for range n - 1 {
		sb.WriteString(",?")
	}

	sb.WriteString(")")
	return sb.String()
}
