package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/nestlist/nestlist/internal/middleware"
	"github.com/nestlist/nestlist/internal/models"
	"github.com/nestlist/nestlist/internal/service"
)

// addTaskData is the payload for the new-task form.
type addTaskData struct {
	List     *models.List
	ParentID string
}

// handleAddTask renders the new-task form and creates the task on POST.
// The route carries an optional parent_id for subtasks; the depth cap is
// enforced by the task service.
func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	vars := mux.Vars(r)
	listID := vars["list_id"]

	var parentID *string
	if p, ok := vars["parent_id"]; ok && p != "" {
		parentID = &p
	}

	list, err := s.lists.Get(r.Context(), userID, listID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	if r.Method == http.MethodGet {
		data := addTaskData{List: list}
		if parentID != nil {
			data.ParentID = *parentID
		}
		s.render(w, r, "add_task.html", "New task", middleware.GetUsername(r.Context()), data)
		return
	}

	description := strings.TrimSpace(r.FormValue("description"))
	if description == "" {
		setFlash(w, "Task description is required.")
		http.Redirect(w, r, "/list/"+listID, http.StatusSeeOther)
		return
	}

	_, err = s.tasks.Add(r.Context(), userID, listID, description, parentID)
	if errors.Is(err, service.ErrDepthExceeded) {
		// Soft rejection: warn and land back on the list, nothing created.
		setFlash(w, "Maximum depth reached.")
		http.Redirect(w, r, "/list/"+listID, http.StatusSeeOther)
		return
	}
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/list/"+listID, http.StatusSeeOther)
}

// handleCompleteTask marks a task as done and returns to its list.
func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	taskID := mux.Vars(r)["task_id"]

	task, err := s.tasks.Complete(r.Context(), userID, taskID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/list/"+task.ListID, http.StatusSeeOther)
}

// handleToggleCollapse flips a task's collapsed flag and returns to its list.
func (s *Server) handleToggleCollapse(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	taskID := mux.Vars(r)["task_id"]

	task, err := s.tasks.ToggleCollapse(r.Context(), userID, taskID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/list/"+task.ListID, http.StatusSeeOther)
}

// moveTaskData is the payload for the target-list picker.
type moveTaskData struct {
	Task  *models.Task
	Lists []*models.List
}

// handleMoveTask renders the target-list picker and reassigns the task (and
// its whole subtree) on POST.
func (s *Server) handleMoveTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	taskID := mux.Vars(r)["task_id"]

	task, err := s.tasks.Get(r.Context(), userID, taskID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	if r.Method == http.MethodGet {
		lists, err := s.lists.Lists(r.Context(), userID)
		if err != nil {
			s.serviceError(w, r, err)
			return
		}
		s.render(w, r, "move_task.html", "Move task", middleware.GetUsername(r.Context()), moveTaskData{
			Task:  task,
			Lists: lists,
		})
		return
	}

	newListID := r.FormValue("new_list_id")
	if newListID == "" {
		setFlash(w, "Pick a destination list.")
		http.Redirect(w, r, "/move_task/"+taskID, http.StatusSeeOther)
		return
	}

	moved, err := s.tasks.Move(r.Context(), userID, taskID, newListID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/list/"+moved.ListID, http.StatusSeeOther)
}
