package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/blog-backend/internal/middleware"
	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/services"
)

type BlogHandlers struct {
	posts  *services.PostService
	render *Renderer
}

func NewBlogHandlers(posts *services.PostService, render *Renderer) *BlogHandlers {
	return &BlogHandlers{posts: posts, render: render}
}

func (h *BlogHandlers) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "index.html", indexPage{
		page:  h.render.newPage(w, r, "Posts"),
		Posts: posts,
	})
}

func (h *BlogHandlers) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	p, err := h.posts.Get(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "post.html", postPage{
		page: h.render.newPage(w, r, p.Title),
		Post: p,
	})
}

func (h *BlogHandlers) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "create.html", postFormPage{
		page: h.render.newPage(w, r, "New Post"),
	})
}

func (h *BlogHandlers) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	if _, err := h.posts.Create(r.Context(), user, title, body); err != nil {
		if isValidation(err) {
			data := postFormPage{
				page: h.render.newPage(w, r, "New Post"),
				Post: models.Post{Title: title, Body: body},
			}
			data.Error = "Title is required."
			h.render.HTML(w, http.StatusBadRequest, "create.html", data)
			return
		}
		serverError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BlogHandlers) UpdateForm(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	id, ok := postID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	p, err := h.posts.Get(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	// owner-only form, same rule the POST enforces
	if p.AuthorID != user.ID {
		h.writeErr(w, r, services.ErrNotOwner)
		return
	}
	h.render.HTML(w, http.StatusOK, "update.html", postFormPage{
		page: h.render.newPage(w, r, "Edit Post"),
		Post: p,
	})
}

func (h *BlogHandlers) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	id, ok := postID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	if err := h.posts.Update(r.Context(), user, id, title, body); err != nil {
		if isValidation(err) {
			data := postFormPage{
				page: h.render.newPage(w, r, "Edit Post"),
				Post: models.Post{ID: id, Title: title, Body: body},
			}
			data.Error = "Title is required."
			h.render.HTML(w, http.StatusBadRequest, "update.html", data)
			return
		}
		h.writeErr(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BlogHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	id, ok := postID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.posts.Delete(r.Context(), user, id); err != nil {
		h.writeErr(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// writeErr maps service errors onto their HTTP equivalents.
func (h *BlogHandlers) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		http.NotFound(w, r)
	case errors.Is(err, services.ErrNotOwner):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		serverError(w, err)
	}
}

func postID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func serverError(w http.ResponseWriter, err error) {
	slog.Error("handler", "err", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
