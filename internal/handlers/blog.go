package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/inkwell-blog/inkwell/internal/services"
	"github.com/inkwell-blog/inkwell/internal/store"
	"github.com/inkwell-blog/inkwell/internal/web"
	"github.com/inkwell-blog/inkwell/types"
)

// BlogHandler provides the post listing and the owner-scoped CRUD pages.
type BlogHandler struct {
	postService *services.PostService
	renderer    *web.Renderer
}

func NewBlogHandler(postService *services.PostService, renderer *web.Renderer) *BlogHandler {
	return &BlogHandler{
		postService: postService,
		renderer:    renderer,
	}
}

// BlogRouter registers blog routes on the given router. The listing is
// public; every mutation sits behind the login gate.
func BlogRouter(r chi.Router, postService *services.PostService, renderer *web.Renderer) {
	handler := NewBlogHandler(postService, renderer)

	r.Get("/", handler.Index)
	r.With(RequireLogin).Get("/create", handler.CreateForm)
	r.With(RequireLogin).Post("/create", handler.Create)
	r.Route("/{postID}", func(r chi.Router) {
		r.With(RequireLogin).Get("/update", handler.UpdateForm)
		r.With(RequireLogin).Post("/update", handler.Update)
		r.With(RequireLogin).Post("/delete", handler.Delete)
	})
}

// Index is the public landing page: all posts, newest first.
func (h *BlogHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, http.StatusOK, "blog/index", web.PageData{
		User:  CurrentUser(r.Context()),
		Posts: posts,
	})
}

func (h *BlogHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "blog/create", web.PageData{
		User: CurrentUser(r.Context()),
	})
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	body := r.PostFormValue("body")
	user := CurrentUser(r.Context())

	if _, err := h.postService.Create(r.Context(), user.ID, title, body); err != nil {
		if services.IsRecoverable(err) {
			h.renderer.Render(w, http.StatusOK, "blog/create", web.PageData{
				User:  user,
				Error: err.Error(),
				Post:  types.Post{Title: title, Body: body},
			})
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BlogHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user := CurrentUser(r.Context())

	post, err := h.postService.Get(r.Context(), id)
	if err != nil {
		h.renderPostError(w, err)
		return
	}
	if post.AuthorID != user.ID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	h.renderer.Render(w, http.StatusOK, "blog/update", web.PageData{
		User: user,
		Post: post,
	})
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	body := r.PostFormValue("body")
	user := CurrentUser(r.Context())

	if _, err := h.postService.Update(r.Context(), user.ID, id, title, body); err != nil {
		if services.IsRecoverable(err) {
			h.renderer.Render(w, http.StatusOK, "blog/update", web.PageData{
				User:  user,
				Error: err.Error(),
				Post:  types.Post{ID: id, Title: title, Body: body},
			})
			return
		}
		h.renderPostError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user := CurrentUser(r.Context())

	if err := h.postService.Delete(r.Context(), user.ID, id); err != nil {
		h.renderPostError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BlogHandler) renderPostError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "post not found", http.StatusNotFound)
	case errors.Is(err, services.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func parsePostID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "postID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid post id")
	}
	return id, nil
}
