package application

import (
	"context"

	"github.com/stkhm/form-review-services/api/internal/access"
	"github.com/stkhm/form-review-services/api/internal/forms/domain"
	"github.com/stkhm/form-review-services/api/internal/token"
)

// NewReviewQueryService creates the master-facing review listing service.
func NewReviewQueryService(forms FormRepository, owners OwnerDirectory) ReviewQueryService {
	return &reviewQueryService{forms: forms, owners: owners}
}

type reviewQueryService struct {
	forms  FormRepository
	owners OwnerDirectory
}

// ListReviewableUsers returns every non-master account annotated with the
// number of its forms still lacking feedback. 件数はユーザー単位で対応付け、
// master 属性のアカウントは一覧から完全に除外する。
func (s *reviewQueryService) ListReviewableUsers(ctx context.Context, claims token.Claims) ([]domain.ReviewableUser, error) {
	if err := access.CanListUsers(claims); err != nil {
		return nil, err
	}

	users, err := s.owners.FindNonMasters(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.forms.CountUngradedByOwner(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ReviewableUser, 0, len(users))
	for _, user := range users {
		result = append(result, domain.ReviewableUser{
			ID:            user.ID,
			FirstName:     user.FirstName,
			LastName:      user.LastName,
			Email:         user.Email,
			UngradedCount: counts[user.ID],
		})
	}
	return result, nil
}
