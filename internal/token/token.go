package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the fixed lifetime of every issued token.
const TTL = time.Hour

// ErrInvalidToken covers every verification failure. 署名不正・破損・期限切れの
// いずれであっても呼び出し側には区別を見せない。
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity and privilege of an authenticated caller.
type Claims struct {
	UserID   string
	IsMaster bool
}

type jwtClaims struct {
	jwt.RegisteredClaims
	IsMaster bool `json:"isMaster"`
}

// Service issues and verifies HS256-signed session tokens.
type Service struct {
	secret []byte
}

// NewService creates a token service bound to the configured signing secret.
func NewService(secret []byte) *Service {
	return &Service{secret: secret}
}

// Issue signs a token for the given claims, expiring TTL from now.
func (s *Service) Issue(claims Claims) (string, error) {
	now := time.Now()
	payload := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
		IsMaster: claims.IsMaster,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(s.secret)
}

// Verify parses and validates a token string and returns its claims.
// 失敗要因は呼び分けず、すべて ErrInvalidToken に畳み込む。
func (s *Service) Verify(tokenString string) (Claims, error) {
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	if claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		return Claims{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{UserID: claims.Subject, IsMaster: claims.IsMaster}, nil
}
