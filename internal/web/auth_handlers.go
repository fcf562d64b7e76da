package web

import (
	"errors"
	"net/http"

	"github.com/baharkarakas/blog-backend/internal/api/validate"
	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/services"
)

type AuthHandlers struct {
	users    *services.UserService
	sessions *auth.Sessions
	render   *Renderer
}

func NewAuthHandlers(users *services.UserService, sessions *auth.Sessions, render *Renderer) *AuthHandlers {
	return &AuthHandlers{users: users, sessions: sessions, render: render}
}

func (h *AuthHandlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "register.html", authFormPage{
		page: h.render.newPage(w, r, "Register"),
	})
}

// Register creates the account and sends the user to the login page.
// It never establishes a session itself.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.users.Register(r.Context(), username, password)
	if err != nil {
		data := authFormPage{
			page:     h.render.newPage(w, r, "Register"),
			Username: username,
		}
		data.Error = err.Error()
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrUsernameTaken) {
			status = http.StatusConflict
		} else if !isValidation(err) {
			serverError(w, err)
			return
		}
		h.render.HTML(w, status, "register.html", data)
		return
	}

	setFlash(w, "Registration successful. Please log in.")
	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

func (h *AuthHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "login.html", authFormPage{
		page: h.render.newPage(w, r, "Log In"),
	})
}

func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	u, err := h.users.Login(r.Context(), username, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			serverError(w, err)
			return
		}
		data := authFormPage{
			page:     h.render.newPage(w, r, "Log In"),
			Username: username,
		}
		data.Error = "Incorrect username or password."
		h.render.HTML(w, http.StatusUnauthorized, "login.html", data)
		return
	}

	token, err := h.sessions.Issue(u.ID)
	if err != nil {
		serverError(w, err)
		return
	}
	h.sessions.SetCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session cookie. Idempotent: logging out while logged
// out is a no-op redirect.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func isValidation(err error) bool {
	var errs validate.Errs
	return errors.As(err, &errs)
}
