package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/config"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/middleware"
	"github.com/baharkarakas/blog-backend/internal/services"
)

type RouterDeps struct {
	Cfg      config.Config
	Users    *services.UserService
	Posts    *services.PostService
	Sessions *auth.Sessions
}

func NewRouter(d RouterDeps) http.Handler {
	render := NewRenderer()
	sess := middleware.NewSessionMiddleware(d.Sessions, d.Users)
	authH := NewAuthHandlers(d.Users, d.Sessions, render)
	blogH := NewBlogHandlers(d.Posts, render)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))
	r.Use(sess.CurrentUser)

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Get("/", blogH.Index)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/register", authH.RegisterForm)
		r.Post("/register", authH.Register)
		r.Get("/login", authH.LoginForm)
		r.Post("/login", authH.Login)
		r.Post("/logout", authH.Logout)
	})

	r.Route("/blog", func(r chi.Router) {
		r.Get("/{id}", blogH.Show)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireLogin)
			r.Get("/create", blogH.CreateForm)
			r.Post("/create", blogH.Create)
			r.Get("/{id}/update", blogH.UpdateForm)
			r.Post("/{id}/update", blogH.Update)
			r.Post("/{id}/delete", blogH.Delete)
		})
	})

	return r
}
