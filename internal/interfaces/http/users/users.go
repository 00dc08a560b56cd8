package users

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stkhm/form-review-services/api/internal/access"
	formsdomain "github.com/stkhm/form-review-services/api/internal/forms/domain"
	"github.com/stkhm/form-review-services/api/internal/interfaces/http/common"
)

type reviewableUserResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	UngradedCount int    `json:"ungradedCount"`
}

func (h *Handler) listHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := common.ClaimsFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		users, err := h.reviews.ListReviewableUsers(ctx, claims)
		if err != nil {
			if errors.Is(err, access.ErrMasterOnly) {
				common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"msg": "Access denied"})
				return
			}
			h.logger.Printf("reviewable user list fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, reviewableUsersToResponse(users))
	}
}

func reviewableUsersToResponse(users []formsdomain.ReviewableUser) []reviewableUserResponse {
	items := make([]reviewableUserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, reviewableUserResponse{
			ID:            user.ID,
			FirstName:     user.FirstName,
			LastName:      user.LastName,
			Email:         user.Email,
			UngradedCount: user.UngradedCount,
		})
	}
	return items
}
