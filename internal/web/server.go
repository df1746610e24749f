// Package web maps HTTP routes onto the service layer and renders HTML views.
// Handlers contain only argument parsing, service calls, and flash/redirect
// or render logic; all business rules live in internal/service.
package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nestlist/nestlist/internal/middleware"
	"github.com/nestlist/nestlist/internal/service"
)

// Server holds the handler dependencies.
type Server struct {
	auth   *service.AuthService
	lists  *service.ListService
	tasks  *service.TaskService
	logger *slog.Logger
}

// NewServer creates a web server over the given services.
func NewServer(auth *service.AuthService, lists *service.ListService, tasks *service.TaskService, logger *slog.Logger) *Server {
	return &Server{
		auth:   auth,
		lists:  lists,
		tasks:  tasks,
		logger: logger,
	}
}

// Router builds the full route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Metrics, middleware.Logging)

	sessions := s.auth.Sessions()

	// Public routes. OptionalAuth lets the pages bounce signed-in users home.
	public := router.NewRoute().Subrouter()
	public.Use(middleware.OptionalAuth(sessions))
	public.HandleFunc("/login", s.handleLogin).Methods(http.MethodGet, http.MethodPost)
	public.HandleFunc("/register", s.handleRegister).Methods(http.MethodGet, http.MethodPost)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Everything below requires a session.
	private := router.NewRoute().Subrouter()
	private.Use(middleware.RequireAuth(sessions))
	private.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	private.HandleFunc("/logout", s.handleLogout).Methods(http.MethodGet)
	private.HandleFunc("/add_list", s.handleAddList).Methods(http.MethodGet, http.MethodPost)
	private.HandleFunc("/list/{list_id}", s.handleListView).Methods(http.MethodGet)
	private.HandleFunc("/add_task/{list_id}", s.handleAddTask).Methods(http.MethodGet, http.MethodPost)
	private.HandleFunc("/add_task/{list_id}/{parent_id}", s.handleAddTask).Methods(http.MethodGet, http.MethodPost)
	private.HandleFunc("/complete_task/{task_id}", s.handleCompleteTask).Methods(http.MethodGet)
	private.HandleFunc("/toggle_collapse/{task_id}", s.handleToggleCollapse).Methods(http.MethodGet)
	private.HandleFunc("/move_task/{task_id}", s.handleMoveTask).Methods(http.MethodGet, http.MethodPost)
	private.HandleFunc("/delete_list/{list_id}", s.handleDeleteList).Methods(http.MethodPost)

	return router
}
