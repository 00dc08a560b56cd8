package domain

// User represents a registered account.
// User は登録済みアカウントを表すエンティティ。PasswordHash は明示的に
// 要求した読み取りでのみ埋まる。
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash []byte
	IsMaster     bool
}

// FullName returns the denormalized display name captured on form submission.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
