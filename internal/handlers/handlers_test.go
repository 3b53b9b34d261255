package handlers_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/inkwell-blog/inkwell/internal/db"
	"github.com/inkwell-blog/inkwell/internal/handlers"
	"github.com/inkwell-blog/inkwell/internal/services"
	"github.com/inkwell-blog/inkwell/internal/session"
	"github.com/inkwell-blog/inkwell/internal/store"
	"github.com/inkwell-blog/inkwell/internal/web"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// testApp wires the real router against an in-memory database, mirroring
// the server package.
type testApp struct {
	router   *chi.Mux
	conn     *sql.DB
	sessions *session.Manager
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.InitSchema(context.Background(), conn))

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	userService := services.NewUserService(store.NewUserRepository(conn))
	postService := services.NewPostService(store.NewPostRepository(conn))
	sessions := session.NewManager("test-secret", time.Hour)

	router := chi.NewRouter()
	router.Use(handlers.LoadIdentity(sessions, userService))
	router.Get("/hello", handlers.Hello)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, sessions, renderer)
	})
	handlers.BlogRouter(router, postService, renderer)

	return &testApp{router: router, conn: conn, sessions: sessions}
}

func (a *testApp) get(t *testing.T, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) register(t *testing.T, username, password string) {
	t.Helper()
	rec := a.postForm(t, "/auth/register", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
}

// login registers nothing; it posts credentials and returns the issued
// session cookie.
func (a *testApp) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	rec := a.postForm(t, "/auth/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	cookie := liveSessionCookie(rec)
	require.NotNil(t, cookie, "login must issue a session cookie")
	return cookie
}

// liveSessionCookie returns the last non-empty session cookie set on the
// response, or nil when the response only cleared the session.
func liveSessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	var found *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "session" && cookie.Value != "" && cookie.MaxAge >= 0 {
			found = cookie
		}
	}
	return found
}

func (a *testApp) userCount(t *testing.T, username string) int {
	t.Helper()
	var count int
	err := a.conn.QueryRow(`SELECT COUNT(1) FROM user WHERE username = ?`, username).Scan(&count)
	require.NoError(t, err)
	return count
}

func (a *testApp) postCount(t *testing.T) int {
	t.Helper()
	var count int
	err := a.conn.QueryRow(`SELECT COUNT(1) FROM post`).Scan(&count)
	require.NoError(t, err)
	return count
}
