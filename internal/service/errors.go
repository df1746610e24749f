// Package service implements the list and task operations behind the web
// handlers: ownership checks, the nesting depth cap, and the cascade rules
// for deleting and moving tasks.
package service

import "errors"

var (
	// ErrForbidden means the entity exists but belongs to another user.
	// Handlers surface it identically to ErrNotFound so the existence of
	// other users' data never leaks.
	ErrForbidden = errors.New("you do not own this item")

	// ErrDepthExceeded means adding the task would nest deeper than
	// models.MaxTaskDepth. It is a soft validation failure: the operation
	// is a no-op and state is unchanged.
	ErrDepthExceeded = errors.New("maximum nesting depth reached")
)
