package application

import (
	"context"
	"errors"
	"strings"

	"github.com/stkhm/form-review-services/api/internal/identity/domain"
	"github.com/stkhm/form-review-services/api/internal/token"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrEmailTaken is returned when the registration email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for every login failure. 存在しない
	// メールとパスワード不一致を呼び分けず、アカウントの有無を漏らさない。
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository abstracts persistence of accounts.
// UserRepository はアカウント永続化のポート。Create は email 重複で
// ErrEmailTaken を返す。includeHash が真のときだけ PasswordHash を埋める。
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string, includeHash bool) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// RegisterCommand captures registration input.
type RegisterCommand struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService describes the identity use-cases.
type AuthService interface {
	Register(ctx context.Context, cmd RegisterCommand) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

// NewAuthService wires the credential store, token service and the single
// configured master address into an AuthService.
func NewAuthService(users UserRepository, tokens *token.Service, masterEmail string) AuthService {
	return &authService{
		users:       users,
		tokens:      tokens,
		masterEmail: strings.TrimSpace(masterEmail),
	}
}

type authService struct {
	users       UserRepository
	tokens      *token.Service
	masterEmail string
}

// Register creates an account and returns a session token. 設定済みの
// master メールと一致した場合に限り isMaster を立てる。昇格経路はここだけ。
func (s *authService) Register(ctx context.Context, cmd RegisterCommand) (string, error) {
	email := strings.TrimSpace(cmd.Email)

	hash, err := hashPassword(cmd.Password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		FirstName:    strings.TrimSpace(cmd.FirstName),
		LastName:     strings.TrimSpace(cmd.LastName),
		Email:        email,
		PasswordHash: hash,
		IsMaster:     s.masterEmail != "" && email == s.masterEmail,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.Issue(token.Claims{UserID: user.ID, IsMaster: user.IsMaster})
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email), true)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if err := checkPassword(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(token.Claims{UserID: user.ID, IsMaster: user.IsMaster})
}

func (s *authService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}
