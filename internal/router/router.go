package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scorp5438/articles-app/internal/middleware/metrics"
	"github.com/scorp5438/articles-app/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))

	// CORS for browser clients
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Use(metrics.Middleware)

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Get("/confirm/{link}", h.Confirm)

			r.Group(func(r chi.Router) {
				r.Use(authMw.NeedAuth())
				r.Post("/logout", h.Logout)
				r.Get("/link", h.RequestLink)
				r.Get("/me", h.Me)
			})
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", h.ListArticles)
			r.Get("/{id}", h.GetArticle)
			r.Get("/{id}/comments", h.ListComments)

			r.Group(func(r chi.Router) {
				r.Use(authMw.NeedAuth())
				r.Post("/", h.CreateArticle)
				r.Patch("/{id}", h.UpdateArticle)
				r.Delete("/{id}", h.DeleteArticle)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())

			r.Post("/comments", h.CreateComment)
			r.Delete("/comments/{id}", h.DeleteComment)

			r.Get("/users", h.ListUsers)
			r.Patch("/users/{id}", h.UpdateUser)
			r.Delete("/users/{id}", h.DeleteUser)
		})
	})

	return r
}
