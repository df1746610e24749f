package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nestlist/nestlist/internal/models"
	"github.com/nestlist/nestlist/internal/storage"
)

// TaskService implements task operations with ownership enforcement and the
// nesting depth cap.
type TaskService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewTaskService creates a new TaskService with the given storage backend.
func NewTaskService(store storage.Store, logger *slog.Logger) *TaskService {
	return &TaskService{store: store, logger: logger}
}

// TaskNode is a task together with its subtasks, for rendering.
type TaskNode struct {
	*models.Task
	Subtasks []*TaskNode
}

// get retrieves a task and verifies that its list is owned by ownerID.
// Every task operation goes through this single check.
func (s *TaskService) get(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	list, err := s.store.GetList(ctx, task.ListID)
	if err != nil {
		return nil, err
	}
	if list.UserID != ownerID {
		s.logger.Warn("Task access denied", "task_id", taskID, "user_id", ownerID)
		return nil, ErrForbidden
	}

	return task, nil
}

// depth returns the nesting level of a task: 1 for a root task, plus one per
// ancestor. It walks the parent chain rather than reading a stored level, so
// the cap stays derivable from parent_id alone.
func (s *TaskService) depth(ctx context.Context, task *models.Task) (int, error) {
	level := 1
	for task.ParentID != nil {
		parent, err := s.store.GetTask(ctx, *task.ParentID)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve parent chain: %w", err)
		}
		task = parent
		level++
	}
	return level, nil
}

// Get retrieves a task, enforcing ownership of its list.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	return s.get(ctx, ownerID, taskID)
}

// Add creates a task in the given list, optionally under a parent task.
// Returns ErrDepthExceeded (and creates no row) if the new task would nest
// deeper than models.MaxTaskDepth.
func (s *TaskService) Add(ctx context.Context, ownerID, listID, description string, parentID *string) (*models.Task, error) {
	if _, err := s.getOwnedList(ctx, ownerID, listID); err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.get(ctx, ownerID, *parentID)
		if err != nil {
			return nil, err
		}
		// A subtask always lives in its parent's list.
		if parent.ListID != listID {
			return nil, storage.ErrNotFound
		}

		parentLevel, err := s.depth(ctx, parent)
		if err != nil {
			return nil, err
		}
		if parentLevel+1 > models.MaxTaskDepth {
			s.logger.Info("Task rejected, depth cap reached", "list_id", listID, "parent_id", *parentID)
			return nil, ErrDepthExceeded
		}
	}

	task := &models.Task{
		Description: description,
		ListID:      listID,
		ParentID:    parentID,
	}
	if err := s.store.CreateTask(ctx, task); err != nil {
		s.logger.Error("CreateTask failed", "list_id", listID, "error", err)
		return nil, err
	}

	s.logger.Info("Task created", "task_id", task.ID, "list_id", listID)
	return task, nil
}

// Complete marks a task as done. Completing an already-completed task is a
// no-op success. Completion never propagates to subtasks or parents.
func (s *TaskService) Complete(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	task, err := s.get(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if task.Completed {
		return task, nil
	}

	task.Completed = true
	if err := s.store.UpdateTask(ctx, task); err != nil {
		s.logger.Error("Complete failed", "task_id", taskID, "error", err)
		return nil, err
	}

	s.logger.Info("Task completed", "task_id", taskID)
	return task, nil
}

// ToggleCollapse flips whether a task's subtasks are displayed.
func (s *TaskService) ToggleCollapse(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	task, err := s.get(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Collapsed = !task.Collapsed
	if err := s.store.UpdateTask(ctx, task); err != nil {
		s.logger.Error("ToggleCollapse failed", "task_id", taskID, "error", err)
		return nil, err
	}

	return task, nil
}

// Move reassigns a task to another list owned by the same user. The task's
// whole subtree moves with it, keeping descendants in the same list as their
// ancestor. Parent links are untouched, so depth cannot change.
func (s *TaskService) Move(ctx context.Context, ownerID, taskID, newListID string) (*models.Task, error) {
	task, err := s.get(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if _, err := s.getOwnedList(ctx, ownerID, newListID); err != nil {
		s.logger.Warn("Move target denied", "task_id", taskID, "list_id", newListID, "user_id", ownerID)
		return nil, err
	}

	if task.ListID == newListID {
		return task, nil
	}

	if err := s.store.MoveSubtree(ctx, taskID, newListID); err != nil {
		s.logger.Error("Move failed", "task_id", taskID, "list_id", newListID, "error", err)
		return nil, err
	}

	s.logger.Info("Task moved", "task_id", taskID, "from", task.ListID, "to", newListID)
	task.ListID = newListID
	return task, nil
}

// RootTasks returns the top-level tasks of a list the user owns.
func (s *TaskService) RootTasks(ctx context.Context, ownerID, listID string) ([]*models.Task, error) {
	if _, err := s.getOwnedList(ctx, ownerID, listID); err != nil {
		return nil, err
	}
	return s.store.RootTasks(ctx, listID)
}

// Subtasks returns the direct children of a task the user owns.
func (s *TaskService) Subtasks(ctx context.Context, ownerID, taskID string) ([]*models.Task, error) {
	if _, err := s.get(ctx, ownerID, taskID); err != nil {
		return nil, err
	}
	return s.store.Subtasks(ctx, taskID)
}

// Tree assembles the render tree for a list: root tasks with subtasks
// resolved recursively. Collapsed tasks keep their subtasks out of the tree,
// matching what the page shows.
func (s *TaskService) Tree(ctx context.Context, ownerID, listID string) ([]*TaskNode, error) {
	roots, err := s.RootTasks(ctx, ownerID, listID)
	if err != nil {
		return nil, err
	}
	return s.buildNodes(ctx, roots)
}

func (s *TaskService) buildNodes(ctx context.Context, tasks []*models.Task) ([]*TaskNode, error) {
	nodes := make([]*TaskNode, 0, len(tasks))
	for _, task := range tasks {
		node := &TaskNode{Task: task}
		if !task.Collapsed {
			children, err := s.store.Subtasks(ctx, task.ID)
			if err != nil {
				return nil, err
			}
			node.Subtasks, err = s.buildNodes(ctx, children)
			if err != nil {
				return nil, err
			}
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (s *TaskService) getOwnedList(ctx context.Context, ownerID, listID string) (*models.List, error) {
	list, err := s.store.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list.UserID != ownerID {
		return nil, ErrForbidden
	}
	return list, nil
}
