package mongo

import (
	"context"

	"github.com/stkhm/form-review-services/api/internal/identity/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OwnerDirectory is the forms-context view over the users collection.
// 同一コレクションを文脈ごとに別リポジトリで読む構成。パスワードハッシュは
// ここからは一切取得しない。
type OwnerDirectory struct {
	collection *mongo.Collection
}

// NewOwnerDirectory creates a read-only account view for the forms context.
func NewOwnerDirectory(db *mongo.Database, collectionName string) *OwnerDirectory {
	return &OwnerDirectory{collection: db.Collection(collectionName)}
}

// FindByID returns the account a submission should be attributed to.
func (d *OwnerDirectory) FindByID(ctx context.Context, id string) (*domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	opts := options.FindOne().SetProjection(bson.M{"passwordHash": 0})
	var doc UserDocument
	if err := d.collection.FindOne(ctx, bson.M{"_id": objectID}, opts).Decode(&doc); err != nil {
		return nil, err
	}
	user := mapUserDocument(doc)
	return &user, nil
}

// FindNonMasters returns every account without the master flag, hash excluded.
func (d *OwnerDirectory) FindNonMasters(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().SetProjection(bson.M{"passwordHash": 0})
	cursor, err := d.collection.Find(ctx, bson.M{"isMaster": false}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]domain.User, 0)
	for cursor.Next(ctx) {
		var doc UserDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		users = append(users, mapUserDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
