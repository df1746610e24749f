package models

// MaxTaskDepth is the maximum nesting depth for tasks. A root task is at
// depth 1, so subtasks of subtasks (depth 3) are the deepest allowed level.
const MaxTaskDepth = 3

// Task represents a unit of work within a list. Tasks nest via ParentID up
// to MaxTaskDepth levels; a task and all of its descendants always belong to
// the same list.
type Task struct {
	// ID is the unique identifier for the task (UUID format).
	ID string

	// Description is the task text.
	Description string

	// Completed marks the task as done. Completion does not propagate to
	// subtasks or parents.
	Completed bool

	// Collapsed controls whether the task's subtasks are displayed.
	// It is a pure presentation toggle, independent of Completed.
	Collapsed bool

	// ListID is the list this task belongs to.
	ListID string

	// ParentID is the parent task, or nil for a root task.
	ParentID *string

	// CreatedAt is the Unix timestamp when the task was created.
	CreatedAt int64
}

// IsRoot reports whether the task has no parent.
func (t *Task) IsRoot() bool {
	return t.ParentID == nil
}
