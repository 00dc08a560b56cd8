package users

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stkhm/form-review-services/api/internal/access"
	formsdomain "github.com/stkhm/form-review-services/api/internal/forms/domain"
	"github.com/stkhm/form-review-services/api/internal/interfaces/http/common"
	"github.com/stkhm/form-review-services/api/internal/token"
)

type fakeReviewService struct {
	users []formsdomain.ReviewableUser
}

func (f *fakeReviewService) ListReviewableUsers(_ context.Context, claims token.Claims) ([]formsdomain.ReviewableUser, error) {
	if err := access.CanListUsers(claims); err != nil {
		return nil, err
	}
	return f.users, nil
}

func newTestRouter(svc *fakeReviewService, claims token.Claims) http.Handler {
	h := NewHandler(Config{Logger: log.New(io.Discard, "", 0), Reviews: svc})
	r := chi.NewRouter()
	r.Route("/api/users", func(r chi.Router) {
		h.Register(r, func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(common.ContextWithClaims(req.Context(), claims)))
			})
		})
	})
	return r
}

func TestListHandlerForbiddenForNonMaster(t *testing.T) {
	router := newTestRouter(&fakeReviewService{}, token.Claims{UserID: "64f000000000000000000001"})

	req := httptest.NewRequest(http.MethodGet, "/api/users/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 (body %s)", rec.Code, rec.Body)
	}
}

func TestListHandlerReturnsUngradedCounts(t *testing.T) {
	svc := &fakeReviewService{users: []formsdomain.ReviewableUser{
		{ID: "64f000000000000000000a01", FirstName: "Aiko", LastName: "Nakano", Email: "aiko@example.com", UngradedCount: 2},
		{ID: "64f000000000000000000b01", FirstName: "Ren", LastName: "Sakamoto", Email: "ren@example.com", UngradedCount: 1},
	}}
	router := newTestRouter(svc, token.Claims{UserID: "64f000000000000000000c01", IsMaster: true})

	req := httptest.NewRequest(http.MethodGet, "/api/users/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("len = %d, want 2", len(resp))
	}
	if resp[0]["ungradedCount"] != float64(2) || resp[1]["ungradedCount"] != float64(1) {
		t.Errorf("ungraded counts = %v / %v, want 2 / 1", resp[0]["ungradedCount"], resp[1]["ungradedCount"])
	}
	for _, item := range resp {
		if _, leaked := item["passwordHash"]; leaked {
			t.Error("password hash leaked in user listing")
		}
	}
}
