package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/baharkarakas/blog-backend/internal/middleware"
	"github.com/baharkarakas/blog-backend/internal/models"
)

//go:embed templates
var templatesFS embed.FS

const flashCookie = "flash"

// page is the view-model base shared by every template. Handlers build a
// typed view model per page; templates never see services or requests.
type page struct {
	Title       string
	CurrentUser *models.User
	Flash       string
	Error       string
}

type indexPage struct {
	page
	Posts []models.Post
}

type postPage struct {
	page
	Post models.Post
}

type authFormPage struct {
	page
	Username string
}

type postFormPage struct {
	page
	Post models.Post
}

// Renderer holds the parsed templates. Each page template is parsed
// against the base layout so {{template "content"}} resolves per page.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() *Renderer {
	names := []string{
		"index.html", "post.html", "create.html", "update.html",
		"login.html", "register.html",
	}
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		pages[name] = template.Must(template.ParseFS(templatesFS,
			"templates/base.html", "templates/"+name))
	}
	return &Renderer{pages: pages}
}

func (rd *Renderer) HTML(w http.ResponseWriter, status int, name string, data any) {
	t, ok := rd.pages[name]
	if !ok {
		slog.Error("unknown template", "name", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "base.html", data); err != nil {
		slog.Error("render", "template", name, "err", err)
	}
}

// newPage fills the shared view-model fields: the current user from the
// request context and any pending flash message, which is consumed here.
func (rd *Renderer) newPage(w http.ResponseWriter, r *http.Request, title string) page {
	p := page{Title: title}
	if u, ok := middleware.UserFrom(r.Context()); ok {
		p.CurrentUser = &u
	}
	p.Flash = popFlash(w, r)
	return p
}

// setFlash stores a one-shot message for the next rendered page.
func setFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}
