package application

import (
	"context"
	"time"

	"github.com/stkhm/form-review-services/api/internal/access"
	"github.com/stkhm/form-review-services/api/internal/forms/domain"
	identitydomain "github.com/stkhm/form-review-services/api/internal/identity/domain"
	"github.com/stkhm/form-review-services/api/internal/token"
)

// FormRepository abstracts persistence of form submissions.
// FormRepository はフォーム提出のポート。FindByOwner は date 降順で返す。
type FormRepository interface {
	Create(ctx context.Context, form *domain.Form) error
	FindByID(ctx context.Context, id string) (*domain.Form, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Form, error)
	UpdateFeedback(ctx context.Context, id string, feedback domain.Feedback) (*domain.Form, error)
	CountUngradedByOwner(ctx context.Context) (map[string]int, error)
}

// OwnerDirectory is the read-only view of accounts the forms context needs:
// the name snapshot at submission time and the reviewable-user listing.
type OwnerDirectory interface {
	FindByID(ctx context.Context, id string) (*identitydomain.User, error)
	FindNonMasters(ctx context.Context) ([]identitydomain.User, error)
}

// FormCommandService handles writes: submission and grading.
type FormCommandService interface {
	Submit(ctx context.Context, claims token.Claims, formData map[string]any) (*domain.Form, error)
	AttachFeedback(ctx context.Context, claims token.Claims, formID string, feedback domain.Feedback) (*domain.Form, error)
}

// FormQueryService handles reads of individual forms and per-owner listings.
type FormQueryService interface {
	Detail(ctx context.Context, claims token.Claims, formID string) (*domain.Form, error)
	ListOwn(ctx context.Context, claims token.Claims) ([]domain.Form, error)
	ListByUser(ctx context.Context, claims token.Claims, userID string) ([]domain.Form, error)
}

// ReviewQueryService lists accounts awaiting review.
type ReviewQueryService interface {
	ListReviewableUsers(ctx context.Context, claims token.Claims) ([]domain.ReviewableUser, error)
}

// NewFormCommandService creates the write-side service.
func NewFormCommandService(forms FormRepository, owners OwnerDirectory) FormCommandService {
	return &formCommandService{forms: forms, owners: owners}
}

type formCommandService struct {
	forms  FormRepository
	owners OwnerDirectory
}

// Submit stores a new form owned by the caller. 所有者と氏名スナップショットは
// 認証済みクレームと現在の登録名から強制的に決め、クライアント入力は使わない。
func (s *formCommandService) Submit(ctx context.Context, claims token.Claims, formData map[string]any) (*domain.Form, error) {
	owner, err := s.owners.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	form := &domain.Form{
		OwnerID:       owner.ID,
		OwnerFullName: owner.FullName(),
		SubmittedAt:   time.Now().UTC(),
		FormData:      formData,
	}
	if err := s.forms.Create(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

// AttachFeedback replaces the form's feedback wholesale. Master only.
func (s *formCommandService) AttachFeedback(ctx context.Context, claims token.Claims, formID string, feedback domain.Feedback) (*domain.Form, error) {
	if err := access.CanGrade(claims); err != nil {
		return nil, err
	}
	return s.forms.UpdateFeedback(ctx, formID, feedback)
}

// NewFormQueryService creates the read-side service.
func NewFormQueryService(forms FormRepository) FormQueryService {
	return &formQueryService{forms: forms}
}

type formQueryService struct {
	forms FormRepository
}

// Detail returns a single form for its owner or a master. 存在確認を先に
// 行うため、未知の id は権限に関わらず not-found のまま返る。
func (s *formQueryService) Detail(ctx context.Context, claims token.Claims, formID string) (*domain.Form, error) {
	form, err := s.forms.FindByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := access.CanReadForm(claims, form.OwnerID); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *formQueryService) ListOwn(ctx context.Context, claims token.Claims) ([]domain.Form, error) {
	return s.forms.FindByOwner(ctx, claims.UserID)
}

func (s *formQueryService) ListByUser(ctx context.Context, claims token.Claims, userID string) ([]domain.Form, error) {
	if err := access.CanListUserForms(claims); err != nil {
		return nil, err
	}
	return s.forms.FindByOwner(ctx, userID)
}
