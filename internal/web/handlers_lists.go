package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/nestlist/nestlist/internal/middleware"
	"github.com/nestlist/nestlist/internal/models"
	"github.com/nestlist/nestlist/internal/service"
	"github.com/nestlist/nestlist/internal/storage"
)

// serviceError turns a service failure into a flash and a safe redirect.
// Forbidden and NotFound read the same to the user so the existence of other
// users' data never leaks.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, service.ErrForbidden):
		setFlash(w, "List or task not found.")
	default:
		s.logger.Error("Operation failed", "path", r.URL.Path, "error", err)
		setFlash(w, "Something went wrong. Please try again.")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleIndex shows the caller's lists.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	lists, err := s.lists.Lists(r.Context(), userID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.render(w, r, "index.html", "Your lists", middleware.GetUsername(r.Context()), lists)
}

// handleAddList renders the new-list form and creates the list on POST.
func (s *Server) handleAddList(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, r, "add_list.html", "New list", middleware.GetUsername(r.Context()), nil)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		setFlash(w, "List name is required.")
		http.Redirect(w, r, "/add_list", http.StatusSeeOther)
		return
	}

	userID := middleware.GetUserID(r.Context())
	if _, err := s.lists.Create(r.Context(), userID, name); err != nil {
		s.serviceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// listViewData is the payload for the list page.
type listViewData struct {
	List  *models.List
	Tasks []*service.TaskNode
}

// handleListView shows the task tree of one list.
func (s *Server) handleListView(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	listID := mux.Vars(r)["list_id"]

	list, err := s.lists.Get(r.Context(), userID, listID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	tree, err := s.tasks.Tree(r.Context(), userID, listID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.render(w, r, "list_view.html", list.Name, middleware.GetUsername(r.Context()), listViewData{
		List:  list,
		Tasks: tree,
	})
}

// handleDeleteList deletes a list and, with it, all of its tasks.
func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	listID := mux.Vars(r)["list_id"]

	if err := s.lists.Delete(r.Context(), userID, listID); err != nil {
		s.serviceError(w, r, err)
		return
	}

	setFlash(w, "List and all its tasks have been deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
