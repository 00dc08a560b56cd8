package auth

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	identityapp "github.com/stkhm/form-review-services/api/internal/identity/application"
	identitydomain "github.com/stkhm/form-review-services/api/internal/identity/domain"
	"github.com/stkhm/form-review-services/api/internal/interfaces/http/common"
	"github.com/stkhm/form-review-services/api/internal/token"
)

type fakeAuthService struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
	profileUser   *identitydomain.User
	profileErr    error
}

func (f *fakeAuthService) Register(context.Context, identityapp.RegisterCommand) (string, error) {
	return f.registerToken, f.registerErr
}

func (f *fakeAuthService) Login(context.Context, string, string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeAuthService) Profile(context.Context, string) (*identitydomain.User, error) {
	return f.profileUser, f.profileErr
}

func passthroughAuth(claims token.Claims) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(common.ContextWithClaims(r.Context(), claims)))
		})
	}
}

func newTestRouter(svc identityapp.AuthService, claims token.Claims) http.Handler {
	h := NewHandler(Config{Logger: log.New(io.Discard, "", 0), Auth: svc})
	r := chi.NewRouter()
	r.Route("/api/auth", func(r chi.Router) {
		h.Register(r, passthroughAuth(claims))
	})
	return r
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeAuthService
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "success returns token",
			body:       `{"firstName":"Hana","lastName":"Ishida","email":"user@example.com","password":"pw"}`,
			svc:        &fakeAuthService{registerToken: "issued-token"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "duplicate email",
			body:       `{"email":"user@example.com","password":"pw"}`,
			svc:        &fakeAuthService{registerErr: identityapp.ErrEmailTaken},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "User already exists",
		},
		{
			name:       "missing fields",
			body:       `{"firstName":"Hana"}`,
			svc:        &fakeAuthService{},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Email and password are required",
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			svc:        &fakeAuthService{},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.svc, token.Claims{})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}
			if tt.wantMsg != "" {
				assertMsg(t, rec, tt.wantMsg)
			}
			if tt.wantStatus == http.StatusOK {
				var resp map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if resp["token"] != "issued-token" {
					t.Errorf("token = %q, want issued-token", resp["token"])
				}
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	t.Run("invalid credentials", func(t *testing.T) {
		router := newTestRouter(&fakeAuthService{loginErr: identityapp.ErrInvalidCredentials}, token.Claims{})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		assertMsg(t, rec, "Invalid credentials")
	})

	t.Run("success", func(t *testing.T) {
		router := newTestRouter(&fakeAuthService{loginToken: "issued-token"}, token.Claims{})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
		}
	})
}

func TestProfileHandler(t *testing.T) {
	user := &identitydomain.User{
		ID:        "64f000000000000000000001",
		FirstName: "Hana",
		LastName:  "Ishida",
		Email:     "user@example.com",
	}
	router := newTestRouter(&fakeAuthService{profileUser: user}, token.Claims{UserID: user.ID})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["email"] != "user@example.com" {
		t.Errorf("email = %v, want user@example.com", resp["email"])
	}
	if _, leaked := resp["passwordHash"]; leaked {
		t.Error("password hash leaked in profile response")
	}
}

func assertMsg(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if resp["msg"] != want {
		t.Errorf("msg = %q, want %q", resp["msg"], want)
	}
}
