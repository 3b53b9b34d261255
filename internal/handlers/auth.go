package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/inkwell-blog/inkwell/internal/services"
	"github.com/inkwell-blog/inkwell/internal/session"
	"github.com/inkwell-blog/inkwell/internal/web"
)

// AuthHandler provides the registration, login, and logout pages.
type AuthHandler struct {
	userService *services.UserService
	sessions    *session.Manager
	renderer    *web.Renderer
}

func NewAuthHandler(userService *services.UserService, sessions *session.Manager, renderer *web.Renderer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
		renderer:    renderer,
	}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, userService *services.UserService, sessions *session.Manager, renderer *web.Renderer) {
	handler := NewAuthHandler(userService, sessions, renderer)

	r.Get("/register", handler.RegisterForm)
	r.Post("/register", handler.Register)
	r.Get("/login", handler.LoginForm)
	r.Post("/login", handler.Login)
	r.Get("/logout", handler.Logout)
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "auth/register", web.PageData{
		User: CurrentUser(r.Context()),
	})
}

// Register creates the account and redirects to the login page. It does not
// log the new user in; registration and session establishment are separate
// steps.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	if _, err := h.userService.Register(r.Context(), username, password); err != nil {
		if services.IsRecoverable(err) {
			h.renderer.Render(w, http.StatusOK, "auth/register", web.PageData{
				User:  CurrentUser(r.Context()),
				Error: err.Error(),
			})
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "auth/login", web.PageData{
		User: CurrentUser(r.Context()),
	})
}

// Login verifies the credentials and establishes the session. Any prior
// session state is cleared before the new identity is bound, so a login
// can never extend a token that was planted beforehand.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	user, err := h.userService.Login(r.Context(), username, password)
	if err != nil {
		if services.IsRecoverable(err) {
			h.renderer.Render(w, http.StatusOK, "auth/login", web.PageData{
				User:  CurrentUser(r.Context()),
				Error: err.Error(),
			})
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sessions.Clear(w)
	if err := h.sessions.Issue(w, user.ID); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session unconditionally. Logging out while already
// logged out is a no-op.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
