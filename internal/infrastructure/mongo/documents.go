package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDocument は MongoDB 上のアカウントスキーマを Go 構造体として表現したもの。
// passwordHash は通常の読み取りではプロジェクションで除外する。
type UserDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"firstName"`
	LastName     string             `bson:"lastName"`
	Email        string             `bson:"email"`
	PasswordHash []byte             `bson:"passwordHash,omitempty"`
	IsMaster     bool               `bson:"isMaster"`
}

// FeedbackDocument は採点結果の埋め込みドキュメント。
type FeedbackDocument struct {
	Score    string `bson:"score"`
	Bonus    string `bson:"bonus"`
	Comments string `bson:"comments"`
}

// FormDocument はフォーム提出 1 件分のスキーマ。feedback が null のまま
// 保存されている間は未採点を意味する。
type FormDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       primitive.ObjectID `bson:"userId"`
	UserFullName string             `bson:"userFullName"`
	Date         time.Time          `bson:"date"`
	FormData     map[string]any     `bson:"formData"`
	Feedback     *FeedbackDocument  `bson:"feedback"`
}
