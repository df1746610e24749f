// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/nestlist/nestlist/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint
// (currently only usernames).
var ErrDuplicate = errors.New("already exists")

// Store defines the interface for persistence operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user. Returns ErrDuplicate if the username
	// is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username.
	// Returns ErrNotFound if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateList persists a new list. The list.ID and list.CreatedAt fields
	// are populated by the store if unset.
	CreateList(ctx context.Context, list *models.List) error

	// GetList retrieves a list by ID, regardless of owner.
	GetList(ctx context.Context, listID string) (*models.List, error)

	// ListsByUser returns all lists owned by the given user, in id order.
	ListsByUser(ctx context.Context, userID string) ([]*models.List, error)

	// DeleteList removes a list and, atomically with it, every task that
	// references it. Returns ErrNotFound if the list does not exist.
	DeleteList(ctx context.Context, listID string) error

	// CreateTask persists a new task. ID and CreatedAt are populated if unset.
	CreateTask(ctx context.Context, task *models.Task) error

	// GetTask retrieves a task by ID.
	GetTask(ctx context.Context, taskID string) (*models.Task, error)

	// UpdateTask writes the task's mutable fields (description, completed,
	// collapsed). Returns ErrNotFound if the task does not exist.
	UpdateTask(ctx context.Context, task *models.Task) error

	// RootTasks returns the tasks of a list with no parent, in creation order.
	RootTasks(ctx context.Context, listID string) ([]*models.Task, error)

	// Subtasks returns the direct children of a task, in creation order.
	Subtasks(ctx context.Context, taskID string) ([]*models.Task, error)

	// MoveSubtree reassigns a task and all of its descendants to another
	// list in a single transaction.
	MoveSubtree(ctx context.Context, taskID, newListID string) error

	// Close releases any resources held by the store.
	Close() error
}
