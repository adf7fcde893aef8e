// Package router sets up all HTTP routes and middleware chains for the
// portfolio backend. It organizes routes into public and admin groups
// with appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"foliocms/internal/auth"
	"foliocms/internal/handlers"
	"foliocms/internal/middleware"
	"foliocms/internal/ratelimit"
)

// Handlers bundles the handler groups the router wires up.
type Handlers struct {
	Auth        *handlers.Auth
	Projects    *handlers.Projects
	Experiences *handlers.Experiences
	Skills      *handlers.Skills
	Tools       *handlers.Tools
	SoftSkills  *handlers.Tools
	Content     *handlers.Content
	Contact     *handlers.Contact
	Analytics   *handlers.Analytics
	Media       *handlers.Media
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The contact limiter gates only the public
// contact endpoint.
func New(tokens *auth.Tokens, contactLimiter ratelimit.Limiter, h Handlers) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check, no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Auth.
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/logout", h.Auth.Logout)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokens))
			r.Get("/auth/me", h.Auth.Me)
			r.Post("/auth/totp/setup", h.Auth.TOTPSetup)
			r.Post("/auth/totp/enable", h.Auth.TOTPEnable)
			r.Post("/auth/totp/disable", h.Auth.TOTPDisable)
		})

		// Public content reads.
		r.Get("/projects", h.Projects.List)
		r.Get("/projects/{id}", h.Projects.Get)
		r.Get("/experiences", h.Experiences.List)
		r.Get("/experiences/{id}", h.Experiences.Get)
		r.Get("/skills", h.Skills.List)
		r.Get("/skills/{id}", h.Skills.Get)
		r.Get("/tools", h.Tools.List)
		r.Get("/tools/{id}", h.Tools.Get)
		r.Get("/soft-skills", h.SoftSkills.List)
		r.Get("/soft-skills/{id}", h.SoftSkills.Get)
		r.Get("/hero", h.Content.GetHero)
		r.Get("/about", h.Content.GetAbout)
		r.Get("/footer", h.Content.GetFooter)
		r.Get("/navigation-settings", h.Content.GetNavigation)
		r.Get("/seo-settings", h.Content.GetSeo)

		// Public contact form, rate limited per client IP.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(contactLimiter))
			r.Post("/contact", h.Contact.Submit)
		})

		// Public analytics ingestion, best effort.
		r.Post("/analytics/track", h.Analytics.Track)

		// Admin area. Every mutation goes through the same token check.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokens))

			r.Post("/projects", h.Projects.Create)
			r.Put("/projects/{id}", h.Projects.Update)
			r.Delete("/projects/{id}", h.Projects.Delete)

			r.Post("/experiences", h.Experiences.Create)
			r.Put("/experiences/reorder", h.Experiences.Reorder)
			r.Put("/experiences/{id}", h.Experiences.Update)
			r.Delete("/experiences/{id}", h.Experiences.Delete)

			r.Post("/skills", h.Skills.Create)
			r.Put("/skills/{id}", h.Skills.Update)
			r.Delete("/skills/{id}", h.Skills.Delete)

			r.Post("/tools", h.Tools.Create)
			r.Put("/tools/{id}", h.Tools.Update)
			r.Delete("/tools/{id}", h.Tools.Delete)

			r.Post("/soft-skills", h.SoftSkills.Create)
			r.Put("/soft-skills/{id}", h.SoftSkills.Update)
			r.Delete("/soft-skills/{id}", h.SoftSkills.Delete)

			// Singleton content and settings.
			r.Put("/hero", h.Content.PutHero)
			r.Put("/about", h.Content.PutAbout)
			r.Put("/footer", h.Content.PutFooter)
			r.Put("/navigation-settings", h.Content.PutNavigation)
			r.Put("/seo-settings", h.Content.PutSeo)
			r.Get("/contact-settings", h.Content.GetContactSettings)
			r.Put("/contact-settings", h.Content.PutContactSettings)
			r.Get("/analytics-settings", h.Content.GetAnalyticsSettings)
			r.Put("/analytics-settings", h.Content.PutAnalyticsSettings)

			// Aggregated analytics.
			r.Get("/analytics/stats", h.Analytics.Stats)

			// Media library.
			r.Post("/upload", h.Media.Upload)
			r.Get("/media", h.Media.List)
			r.Delete("/media/{id}", h.Media.Delete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
