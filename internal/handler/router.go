/*
Package handler provides the HTTP handlers and routing setup for the GuffSuff auth service.

This file defines the main Router, applying global middleware like logging, CORS, and
panic recovery before delegating requests to the authentication and account handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/app/user"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/auth/jwt"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/logx"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/resp"
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It configures CORS, applies global and per-route middleware, and wires the
// identity extractor in front of every API route so handlers can read the
// request identity (or its absence) from the context.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "GuffSuff Auth Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", HandleRegister(deps))
			auth.Post("/login", HandleLogin(deps))

			auth.Get("/google", HandleGoogleStart(deps))
			auth.Get("/google/callback", HandleGoogleCallback(deps))

			auth.Get("/profile", HandleGetProfile(deps))
			auth.Patch("/profile/username", HandleChangeUsername(deps))
			auth.Patch("/profile/password", HandleChangePassword(deps))

			auth.With(jwt.RoleGuardMiddleware(string(user.RoleAdmin))).
				Get("/users", HandleListUsers(deps))
		})
	})

	return r
}
