package forms

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stkhm/form-review-services/api/internal/access"
	formsdomain "github.com/stkhm/form-review-services/api/internal/forms/domain"
	"github.com/stkhm/form-review-services/api/internal/interfaces/http/common"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *Handler) feedbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := common.ClaimsFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		formID := strings.TrimSpace(chi.URLParam(r, "id"))

		var req feedbackRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"msg": "Invalid request body"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		form, err := h.commands.AttachFeedback(ctx, claims, formID, formsdomain.Feedback{
			Score:    req.Score,
			Bonus:    req.Bonus,
			Comments: req.Comments,
		})
		if err != nil {
			if errors.Is(err, access.ErrMasterOnly) {
				common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"msg": "Access denied"})
				return
			}
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"msg": "Form not found"})
				return
			}
			h.logger.Printf("feedback update failed id=%s err=%v", formID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, formDomainToResponse(*form))
	}
}
