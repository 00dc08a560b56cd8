// Package access holds the authorization decisions for form records.
//
// 判定はすべて (呼び出し元のクレーム, 対象の所有者) の純関数。ロール階層は
// master/非 master の二値のみで、リソース単位の ACL は所有者 1 名の参照だけ。
package access

import (
	"errors"

	"github.com/stkhm/form-review-services/api/internal/token"
)

var (
	// ErrNotOwner denies a read of a form the caller neither owns nor may review.
	ErrNotOwner = errors.New("not the form owner")
	// ErrMasterOnly denies operations reserved for the master role.
	ErrMasterOnly = errors.New("master privilege required")
)

// CanReadForm allows the form's owner and any master. Existence of the form
// is checked by the caller first, so a missing id never reaches this point.
func CanReadForm(claims token.Claims, ownerID string) error {
	if claims.UserID == ownerID || claims.IsMaster {
		return nil
	}
	return ErrNotOwner
}

// CanListUserForms gates the per-user review listing. No ownership exception:
// a user cannot take this path even for their own forms.
func CanListUserForms(claims token.Claims) error {
	return masterOnly(claims)
}

// CanGrade gates feedback writes. Owners never grade their own forms.
func CanGrade(claims token.Claims) error {
	return masterOnly(claims)
}

// CanListUsers gates the reviewable-user listing with ungraded counts.
func CanListUsers(claims token.Claims) error {
	return masterOnly(claims)
}

func masterOnly(claims token.Claims) error {
	if claims.IsMaster {
		return nil
	}
	return ErrMasterOnly
}
