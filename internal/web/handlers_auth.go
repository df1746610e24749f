package web

import (
	"errors"
	"net/http"

	"github.com/nestlist/nestlist/internal/auth"
	"github.com/nestlist/nestlist/internal/middleware"
)

// handleLogin renders the login form and establishes a session on POST.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUserID(r.Context()) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		s.render(w, r, "login.html", "Log in", "", nil)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	_, token, err := s.auth.Login(r.Context(), username, password)
	if err != nil {
		setFlash(w, "Invalid username or password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	s.auth.Sessions().SetCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleRegister renders the registration form and creates an account on POST.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUserID(r.Context()) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		s.render(w, r, "register.html", "Register", "", nil)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	_, err := s.auth.Register(r.Context(), username, password)
	switch {
	case errors.Is(err, auth.ErrUsernameExists):
		setFlash(w, "Username already exists.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
	case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidCredentials):
		setFlash(w, err.Error())
		http.Redirect(w, r, "/register", http.StatusSeeOther)
	case err != nil:
		setFlash(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
	default:
		setFlash(w, "Registration successful. Please log in.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

// handleLogout clears the session and returns to the login page.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.Sessions().ClearCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
