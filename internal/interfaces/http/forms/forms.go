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
	"github.com/stkhm/form-review-services/api/internal/interfaces/http/common"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *Handler) submitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := common.ClaimsFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		var req submitRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"msg": "Invalid request body"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		form, err := h.commands.Submit(ctx, claims, req.FormData)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"msg": "User not found"})
				return
			}
			h.logger.Printf("form submit failed owner=%s err=%v", claims.UserID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, formDomainToResponse(*form))
	}
}

func (h *Handler) listOwnHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := common.ClaimsFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		forms, err := h.queries.ListOwn(ctx, claims)
		if err != nil {
			h.logger.Printf("form list fetch failed owner=%s err=%v", claims.UserID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, formsDomainToResponse(forms))
	}
}

func (h *Handler) listByUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := common.ClaimsFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		userID := strings.TrimSpace(chi.URLParam(r, "userId"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		forms, err := h.queries.ListByUser(ctx, claims, userID)
		if err != nil {
			if errors.Is(err, access.ErrMasterOnly) {
				common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"msg": "Access denied"})
				return
			}
			h.logger.Printf("form list fetch failed user=%s err=%v", userID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, formsDomainToResponse(forms))
	}
}

func (h *Handler) detailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := common.ClaimsFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		formID := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		form, err := h.queries.Detail(ctx, claims, formID)
		if err != nil {
			// 存在しない id は権限に関わらず 404。所有権の判定はその後。
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"msg": "Form not found"})
				return
			}
			if errors.Is(err, access.ErrNotOwner) {
				common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"msg": "Not authorized"})
				return
			}
			h.logger.Printf("form detail fetch failed id=%s err=%v", formID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, formDomainToResponse(*form))
	}
}
