package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nestlist/nestlist/internal/models"
	"github.com/nestlist/nestlist/internal/storage"
)

// CreateTask inserts a new task into the database.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt == 0 {
		task.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (id, description, completed, collapsed, list_id, parent_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		task.ID, task.Description, task.Completed, task.Collapsed, task.ListID, task.ParentID, task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetTask retrieves a task by ID.
func (s *SQLiteStore) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	task := &models.Task{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, description, completed, collapsed, list_id, parent_id, created_at FROM tasks WHERE id = ?",
		taskID,
	).Scan(&task.ID, &task.Description, &task.Completed, &task.Collapsed, &task.ListID, &task.ParentID, &task.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// UpdateTask writes the task's mutable fields.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *models.Task) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET description = ?, completed = ?, collapsed = ? WHERE id = ?",
		task.Description, task.Completed, task.Collapsed, task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// RootTasks returns the tasks of a list that have no parent.
func (s *SQLiteStore) RootTasks(ctx context.Context, listID string) ([]*models.Task, error) {
	return s.queryTasks(ctx,
		"SELECT id, description, completed, collapsed, list_id, parent_id, created_at FROM tasks WHERE list_id = ? AND parent_id IS NULL ORDER BY created_at, id",
		listID,
	)
}

// Subtasks returns the direct children of a task.
func (s *SQLiteStore) Subtasks(ctx context.Context, taskID string) ([]*models.Task, error) {
	return s.queryTasks(ctx,
		"SELECT id, description, completed, collapsed, list_id, parent_id, created_at FROM tasks WHERE parent_id = ? ORDER BY created_at, id",
		taskID,
	)
}

// MoveSubtree reassigns a task and all of its descendants to another list in
// one transaction. The recursive CTE bottoms out after the depth cap, but is
// written to follow the chain however deep it goes.
func (s *SQLiteStore) MoveSubtree(ctx context.Context, taskID, newListID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		WITH RECURSIVE subtree(id) AS (
			SELECT id FROM tasks WHERE id = ?
			UNION ALL
			SELECT t.id FROM tasks t JOIN subtree s ON t.parent_id = s.id
		)
		UPDATE tasks SET list_id = ? WHERE id IN (SELECT id FROM subtree)`,
		taskID, newListID,
	)
	if err != nil {
		return fmt.Errorf("failed to move task subtree: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check move result: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// queryTasks runs a task SELECT and scans all rows.
func (s *SQLiteStore) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(&task.ID, &task.Description, &task.Completed, &task.Collapsed, &task.ListID, &task.ParentID, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}
