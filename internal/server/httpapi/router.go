package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler builds the full route tree. Read routes are mounted without
// the identity middleware; mutating blog routes sit behind requireUser.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.recoveryMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.metricsMiddleware)

	r.Get("/healthz", s.handlePing)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", s.handleRegister)
		r.Get("/users", s.handleListUsers)
		r.Post("/login", s.handleLogin)

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", s.handleListBlogs)
			r.Get("/stats", s.handleBlogStats)
			r.Get("/{id}", s.handleGetBlog)

			r.Group(func(r chi.Router) {
				r.Use(s.requireUser)
				r.Post("/", s.handleCreateBlog)
				r.Put("/{id}", s.handleUpdateBlog)
				r.Delete("/{id}", s.handleDeleteBlog)
			})
		})
	})

	return r
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
