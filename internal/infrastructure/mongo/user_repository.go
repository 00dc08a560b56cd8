package mongo

import (
	"context"

	"github.com/stkhm/form-review-services/api/internal/identity/application"
	"github.com/stkhm/form-review-services/api/internal/identity/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository implements application.UserRepository using MongoDB.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new Mongo-backed credential store.
func NewUserRepository(db *mongo.Database, collectionName string) *UserRepository {
	return &UserRepository{collection: db.Collection(collectionName)}
}

// Create inserts a new account. email のユニークインデックス違反は
// application.ErrEmailTaken へ読み替える。
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	res, err := r.collection.InsertOne(ctx, bson.M{
		"firstName":    user.FirstName,
		"lastName":     user.LastName,
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"isMaster":     user.IsMaster,
	})
	if mongo.IsDuplicateKeyError(err) {
		return application.ErrEmailTaken
	}
	if err != nil {
		return err
	}

	user.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// FindByEmail returns the account registered under email, or nil with
// mongo.ErrNoDocuments. includeHash が偽のときは passwordHash を除外する。
func (r *UserRepository) FindByEmail(ctx context.Context, email string, includeHash bool) (*domain.User, error) {
	opts := options.FindOne()
	if !includeHash {
		opts.SetProjection(bson.M{"passwordHash": 0})
	}

	var doc UserDocument
	if err := r.collection.FindOne(ctx, bson.M{"email": email}, opts).Decode(&doc); err != nil {
		return nil, err
	}
	user := mapUserDocument(doc)
	return &user, nil
}

// FindByID returns a single account by its identifier, hash excluded.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne().SetProjection(bson.M{"passwordHash": 0})
	var doc UserDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}, opts).Decode(&doc); err != nil {
		return nil, err
	}
	user := mapUserDocument(doc)
	return &user, nil
}

func mapUserDocument(doc UserDocument) domain.User {
	return domain.User{
		ID:           doc.ID.Hex(),
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		Email:        doc.Email,
		PasswordHash: append([]byte(nil), doc.PasswordHash...),
		IsMaster:     doc.IsMaster,
	}
}
