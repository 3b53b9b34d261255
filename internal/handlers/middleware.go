package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/inkwell-blog/inkwell/internal/services"
	"github.com/inkwell-blog/inkwell/internal/session"
	"github.com/inkwell-blog/inkwell/internal/store"
	"github.com/inkwell-blog/inkwell/types"
)

type contextKey string

const contextUserKey contextKey = "user"

const loginPath = "/auth/login"

// CurrentUser returns the identity resolved for this request, or nil when
// the request is anonymous.
func CurrentUser(ctx context.Context) *types.User {
	user, _ := ctx.Value(contextUserKey).(*types.User)
	return user
}

func withUser(ctx context.Context, user *types.User) context.Context {
	return context.WithValue(ctx, contextUserKey, user)
}

// LoadIdentity runs before every handler regardless of route. It reads the
// user id from the session cookie and re-verifies it against the store; the
// token alone is never trusted. A missing cookie, a bad signature, or a
// user row deleted since the token was issued all resolve to an anonymous
// request. The resolved identity lives only for this request.
func LoadIdentity(sessions *session.Manager, userService *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := sessions.UserID(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userService.GetByID(r.Context(), userID)
			if err != nil {
				if !errors.Is(err, store.ErrNotFound) {
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), &user)))
		})
	}
}

// RequireLogin gates a handler on a resolved identity. Anonymous requests
// are redirected to the login page and the wrapped handler never runs. The
// gate only reads the identity set by LoadIdentity; it does not query the
// store itself.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentUser(r.Context()) == nil {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
