package models

// List represents a named, user-owned container of tasks.
type List struct {
	// ID is the unique identifier for the list (UUID format).
	ID string

	// Name is the display name of the list (e.g., "Groceries").
	// Names are not unique, even within one user.
	Name string

	// UserID is the owning user. Every list belongs to exactly one user,
	// and all authorization checks resolve to this field.
	UserID string

	// CreatedAt is the Unix timestamp when the list was created.
	CreatedAt int64
}
