package forms

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	formsapp "github.com/stkhm/form-review-services/api/internal/forms/application"
)

// Handler wires form HTTP endpoints to the forms application services.
type Handler struct {
	logger   *log.Logger
	commands formsapp.FormCommandService
	queries  formsapp.FormQueryService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger   *log.Logger
	Commands formsapp.FormCommandService
	Queries  formsapp.FormQueryService
}

// NewHandler constructs the forms HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:   cfg.Logger,
		commands: cfg.Commands,
		queries:  cfg.Queries,
	}
}

// Register mounts form routes onto the router. 全ルートが認証必須。
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Use(authMiddleware)
	r.Post("/", h.submitHandler())
	r.Get("/", h.listOwnHandler())
	r.Get("/user/{userId}", h.listByUserHandler())
	r.Get("/{id}", h.detailHandler())
	r.Put("/{id}/feedback", h.feedbackHandler())
}
