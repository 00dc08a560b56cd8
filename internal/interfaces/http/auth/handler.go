package auth

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	identityapp "github.com/stkhm/form-review-services/api/internal/identity/application"
)

// Handler wires identity HTTP endpoints to the auth application service.
type Handler struct {
	logger *log.Logger
	auth   identityapp.AuthService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger *log.Logger
	Auth   identityapp.AuthService
}

// NewHandler constructs the identity HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger: cfg.Logger,
		auth:   cfg.Auth,
	}
}

// Register mounts the identity routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/register", h.registerHandler())
	r.Post("/login", h.loginHandler())
	r.With(authMiddleware).Get("/", h.profileHandler())
}
