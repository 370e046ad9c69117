package http

import (
	"net/http"

	"github.com/artakjato/happy-thoughts-api/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewHandler(thoughtHandler *ThoughtHandler, userHandler *UserHandler, authService ports.AuthService, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"message": "Welcome to the Happy Thoughts API!",
			"endpoints": []string{
				"GET /api/thoughts",
				"GET /api/thoughts/{id}",
				"POST /api/thoughts",
				"PUT /api/thoughts/{id}",
				"DELETE /api/thoughts/{id}",
				"POST /api/thoughts/{id}/like",
				"POST /api/users/signup",
				"POST /api/users/login",
			},
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/thoughts", func(r chi.Router) {
			r.Get("/", thoughtHandler.ListThoughts)
			r.Get("/{id}", thoughtHandler.GetThought)
			r.Post("/{id}/like", thoughtHandler.LikeThought)

			r.Group(func(r chi.Router) {
				r.Use(RequireAuth(authService))
				r.Post("/", thoughtHandler.CreateThought)
				r.Put("/{id}", thoughtHandler.UpdateThought)
				r.Delete("/{id}", thoughtHandler.DeleteThought)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/signup", userHandler.Signup)
			r.Post("/login", userHandler.Login)
		})
	})

	return r
}
