package mongo

import (
	"context"
	"time"

	"github.com/stkhm/form-review-services/api/internal/forms/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FormRepository implements the forms application port using MongoDB.
type FormRepository struct {
	collection *mongo.Collection
}

// NewFormRepository creates a new Mongo-backed submission store.
func NewFormRepository(db *mongo.Database, collectionName string) *FormRepository {
	return &FormRepository{collection: db.Collection(collectionName)}
}

// Create inserts a new form submission. feedback は明示的に null で保存する。
func (r *FormRepository) Create(ctx context.Context, form *domain.Form) error {
	ownerID, err := primitive.ObjectIDFromHex(form.OwnerID)
	if err != nil {
		return err
	}

	date := form.SubmittedAt
	if date.IsZero() {
		date = time.Now().UTC()
	}

	res, err := r.collection.InsertOne(ctx, bson.M{
		"userId":       ownerID,
		"userFullName": form.OwnerFullName,
		"date":         date,
		"formData":     form.FormData,
		"feedback":     nil,
	})
	if err != nil {
		return err
	}

	form.ID = res.InsertedID.(primitive.ObjectID).Hex()
	form.SubmittedAt = date
	return nil
}

// FindByID returns a single form by its identifier.
func (r *FormRepository) FindByID(ctx context.Context, id string) (*domain.Form, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var doc FormDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	form := mapFormDocument(doc)
	return &form, nil
}

// FindByOwner returns every form owned by ownerID, newest first.
func (r *FormRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Form, error) {
	objectID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": objectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	forms := make([]domain.Form, 0)
	for cursor.Next(ctx) {
		var doc FormDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		forms = append(forms, mapFormDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return forms, nil
}

// UpdateFeedback replaces the feedback field wholesale and returns the
// updated form. 更新後ドキュメントを返すため ReturnDocument(After) を使う。
func (r *FormRepository) UpdateFeedback(ctx context.Context, id string, feedback domain.Feedback) (*domain.Form, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	update := bson.M{"$set": bson.M{
		"feedback": FeedbackDocument{
			Score:    feedback.Score,
			Bonus:    feedback.Bonus,
			Comments: feedback.Comments,
		},
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc FormDocument
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	form := mapFormDocument(doc)
	return &form, nil
}

// CountUngradedByOwner groups ungraded forms per owner. レビュー対象一覧の
// ungradedCount をユーザー単位で算出する集計パイプライン。
func (r *FormRepository) CountUngradedByOwner(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"feedback": nil}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$userId",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int)
	for cursor.Next(ctx) {
		var row struct {
			OwnerID primitive.ObjectID `bson:"_id"`
			Count   int                `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.OwnerID.Hex()] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func mapFormDocument(doc FormDocument) domain.Form {
	var feedback *domain.Feedback
	if doc.Feedback != nil {
		feedback = &domain.Feedback{
			Score:    doc.Feedback.Score,
			Bonus:    doc.Feedback.Bonus,
			Comments: doc.Feedback.Comments,
		}
	}

	return domain.Form{
		ID:            doc.ID.Hex(),
		OwnerID:       doc.UserID.Hex(),
		OwnerFullName: doc.UserFullName,
		SubmittedAt:   doc.Date,
		FormData:      doc.FormData,
		Feedback:      feedback,
	}
}
