// Package router sets up all HTTP routes and middleware chains for the
// markshare server. It organizes routes into open and gated groups with
// appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"markshare/internal/auth"
	"markshare/internal/handlers"
	"markshare/internal/middleware"
	"markshare/internal/store"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(gate *auth.Gate, users *store.UserStore, md *handlers.Markdown, shares *handlers.Shares, files *handlers.Files, authHandlers *handlers.Auth) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request. The body cap runs
	// before any handler reads a request, so oversized submissions are
	// rejected before processing begins.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.BodyLimit)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	requireAuth := middleware.RequireAuth(gate, users)

	r.Route("/api", func(r chi.Router) {
		// Markdown conversion — stateless, open.
		r.Get("/markdown", md.Usage)
		r.Post("/markdown", md.Convert)

		// Anonymous shares — open in both directions.
		r.Post("/share", shares.Create)
		r.Get("/share", shares.Get)

		// Files — reads are open, mutations require a resolved owner.
		r.Route("/files", func(r chi.Router) {
			r.Get("/", files.List)
			r.With(requireAuth).Post("/", files.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", files.Get)
				r.With(requireAuth).Put("/", files.Update)
				r.With(requireAuth).Delete("/", files.Delete)
			})
		})

		// Access gate.
		r.Route("/admin", func(r chi.Router) {
			r.Post("/auth", authHandlers.Login)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/auth", authHandlers.Verify)
				r.Post("/password", authHandlers.ChangePassword)
				r.Post("/2fa/setup", authHandlers.TwoFASetup)
				r.Post("/2fa/verify", authHandlers.TwoFAVerify)
			})
		})
	})

	// Public share rendering.
	r.Get("/preview/{id}", shares.Preview)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
