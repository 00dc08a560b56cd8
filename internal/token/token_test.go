package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService([]byte("test-secret"))

	tests := []struct {
		name   string
		claims Claims
	}{
		{name: "regular user", claims: Claims{UserID: "64f000000000000000000001"}},
		{name: "master user", claims: Claims{UserID: "64f000000000000000000002", IsMaster: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := svc.Issue(tt.claims)
			if err != nil {
				t.Fatalf("Issue failed: %v", err)
			}

			got, err := svc.Verify(raw)
			if err != nil {
				t.Fatalf("Verify failed: %v", err)
			}
			if got != tt.claims {
				t.Errorf("claims = %+v, want %+v", got, tt.claims)
			}
		})
	}
}

func TestVerifyRejectsInvalidTokens(t *testing.T) {
	svc := NewService([]byte("test-secret"))

	valid, err := svc.Issue(Claims{UserID: "64f000000000000000000001"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	otherSvc := NewService([]byte("another-secret"))
	foreign, err := otherSvc.Issue(Claims{UserID: "64f000000000000000000001"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "truncated", token: valid[:len(valid)-10]},
		{name: "wrong signing key", token: foreign},
		{name: "expired", token: expiredToken(t, []byte("test-secret"))},
		{name: "missing subject", token: subjectlessToken(t, []byte("test-secret"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.token); err != ErrInvalidToken {
				t.Errorf("Verify error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func expiredToken(t *testing.T, secret []byte) string {
	t.Helper()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "64f000000000000000000001",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}
	return raw
}

func subjectlessToken(t *testing.T, secret []byte) string {
	t.Helper()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("signing subjectless token: %v", err)
	}
	return raw
}
