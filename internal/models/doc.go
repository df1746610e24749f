// Package models defines the core domain models for nestlist.
//
// Three entities make up the whole data model:
//   - User: a registered account identified by a unique username
//   - List: a named, user-owned container of tasks
//   - Task: a unit of work that may nest under a parent task
//
// # Design principles
//
//  1. **IDs are UUID strings**: relationships are expressed as ID fields, not
//     pointers between models, so rows map 1:1 onto structs with no cycles.
//  2. **Hierarchy is a parent pointer**: a task's position in the tree is fully
//     determined by ParentID; depth is derived by walking the chain, never
//     stored alongside it.
//  3. **Presentation state lives with the row**: Collapsed is persisted so a
//     user's view of a list survives across sessions, but it carries no
//     semantics beyond display.
package models
