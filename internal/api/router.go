package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/api/middleware"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/api/shared"
)

// NewRouter assembles the application's HTTP routes. The /auth endpoints
// are public; everything under /api requires a valid bearer token.
func NewRouter(
	authHandler *AuthHandler,
	taskHandler *TaskHandler,
	userHandler *UserHandler,
	authenticator *middleware.Authenticator,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Trace)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authenticator.Middleware)

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.Create)
			r.Get("/", taskHandler.List)
			r.Put("/", taskHandler.Update)
			r.Delete("/", taskHandler.Delete)
			r.Get("/pending", taskHandler.ListPending)
			r.Get("/completed", taskHandler.ListCompleted)
			r.Get("/today", taskHandler.ListToday)
			r.Get("/title/{title}", taskHandler.GetByTitle)
			r.Get("/{id}", taskHandler.GetByID)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Put("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)
			r.Get("/username/{username}", userHandler.GetByUsername)
			r.Get("/{id}", userHandler.GetByID)
		})
	})

	return r
}
