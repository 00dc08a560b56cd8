package users

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	formsapp "github.com/stkhm/form-review-services/api/internal/forms/application"
)

// Handler wires the master-facing user listing to the review service.
type Handler struct {
	logger  *log.Logger
	reviews formsapp.ReviewQueryService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger  *log.Logger
	Reviews formsapp.ReviewQueryService
}

// NewHandler constructs the users HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:  cfg.Logger,
		reviews: cfg.Reviews,
	}
}

// Register mounts the user listing route onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Get("/", h.listHandler())
}
