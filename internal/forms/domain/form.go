package domain

import "time"

// Feedback is the review a master attaches to a form.
// 全フィールドを常にまとめて置き換える。フィールド単位のマージは行わない。
type Feedback struct {
	Score    string
	Bonus    string
	Comments string
}

// Form represents a submitted form owned by a single user.
//
// OwnerFullName は提出時点の氏名スナップショットで、以後のユーザー名変更には
// 追従しない。FormData はスキーマを持たない不透明な JSON 値としてそのまま
// 保存・返却する。Feedback が nil の間は未採点を意味する。
type Form struct {
	ID            string
	OwnerID       string
	OwnerFullName string
	SubmittedAt   time.Time
	FormData      map[string]any
	Feedback      *Feedback
}

// Graded reports whether a master has attached feedback.
func (f Form) Graded() bool {
	return f.Feedback != nil
}

// ReviewableUser is a non-master account annotated with its ungraded form count.
type ReviewableUser struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	UngradedCount int
}
