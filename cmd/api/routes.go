package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passvault/internal/config"
	"github.com/vaultpass/passvault/internal/crypto"
	"github.com/vaultpass/passvault/internal/handler"
	"github.com/vaultpass/passvault/internal/metrics"
	"github.com/vaultpass/passvault/internal/middleware"
)

// routes holds everything the router mounts. auth and credentials are nil
// when the database is unavailable.
type routes struct {
	cfg         config.Config
	metrics     *metrics.Metrics
	generator   *handler.GeneratorHandler
	auth        *handler.AuthHandler
	credentials *handler.CredentialHandler
	tokens      *crypto.TokenIssuer
}

func (rt routes) handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(rt.cfg.CORSOrigins))
	r.Use(middleware.Metrics(rt.metrics))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())

	r.Get("/api/v1/health", handler.HandleHealth)
	r.Post("/api/v1/generate", rt.generator.HandleGenerate)
	r.Post("/api/v1/strength", rt.generator.HandleStrength)

	if rt.auth == nil || rt.credentials == nil {
		return r
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rt.cfg.RateLimitRPS, rt.cfg.RateLimitBurst))
		r.Post("/api/v1/auth/register", rt.auth.HandleRegister)
		r.Post("/api/v1/auth/login", rt.auth.HandleLogin)
		r.Post("/api/v1/auth/refresh", rt.auth.HandleRefresh)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(rt.tokens))
		r.Get("/api/v1/auth/me", rt.auth.HandleMe)

		r.Get("/api/v1/credentials", rt.credentials.HandleList)
		r.Post("/api/v1/credentials", rt.credentials.HandleCreate)
		r.Get("/api/v1/credentials/{id}/reveal", rt.credentials.HandleReveal)
		r.Put("/api/v1/credentials/{id}", rt.credentials.HandleUpdate)
		r.Delete("/api/v1/credentials/{id}", rt.credentials.HandleDelete)
	})

	return r
}
