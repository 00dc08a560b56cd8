package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	identityapp "github.com/stkhm/form-review-services/api/internal/identity/application"
	"github.com/stkhm/form-review-services/api/internal/interfaces/http/common"
)

func (h *Handler) registerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"msg": "Invalid request body"})
			return
		}
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"msg": "Email and password are required"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tok, err := h.auth.Register(ctx, identityapp.RegisterCommand{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			if errors.Is(err, identityapp.ErrEmailTaken) {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"msg": "User already exists"})
				return
			}
			h.logger.Printf("register failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, tokenResponse{Token: tok})
	}
}

func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"msg": "Invalid request body"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tok, err := h.auth.Login(ctx, req.Email, req.Password)
		if err != nil {
			// 未登録メールとパスワード不一致は呼び分けない。
			if errors.Is(err, identityapp.ErrInvalidCredentials) {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"msg": "Invalid credentials"})
				return
			}
			h.logger.Printf("login failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, tokenResponse{Token: tok})
	}
}

func (h *Handler) profileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := common.ClaimsFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := h.auth.Profile(ctx, claims.UserID)
		if err != nil {
			h.logger.Printf("profile fetch failed id=%s err=%v", claims.UserID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, userDomainToResponse(*user))
	}
}
