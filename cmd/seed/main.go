package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"github.com/stkhm/form-review-services/api/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

type seedOptions struct {
	userCount       int
	formCount       int
	dropCollections bool
	randomSeed      int64
}

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	FirstName    string             `bson:"firstName"`
	LastName     string             `bson:"lastName"`
	Email        string             `bson:"email"`
	PasswordHash []byte             `bson:"passwordHash"`
	IsMaster     bool               `bson:"isMaster"`
}

type formDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	UserID       primitive.ObjectID `bson:"userId"`
	UserFullName string             `bson:"userFullName"`
	Date         time.Time          `bson:"date"`
	FormData     bson.M             `bson:"formData"`
	Feedback     bson.M             `bson:"feedback"`
}

var firstNames = []string{"Aiko", "Daichi", "Hana", "Kenta", "Mio", "Ren", "Sora", "Yui"}
var lastNames = []string{"Fujimoto", "Ishida", "Kobayashi", "Murakami", "Nakano", "Sakamoto"}

func main() {
	opts := parseFlags()
	_ = godotenv.Load()
	cfg := config.Load()

	rng := rand.New(rand.NewSource(opts.randomSeed))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDatabase)
	users := db.Collection(cfg.UserCollection)
	forms := db.Collection(cfg.FormCollection)

	if opts.dropCollections {
		if err := users.Drop(ctx); err != nil {
			log.Fatalf("users コレクションの削除に失敗: %v", err)
		}
		if err := forms.Drop(ctx); err != nil {
			log.Fatalf("forms コレクションの削除に失敗: %v", err)
		}
	}

	// 開発用パスワードは全アカウント共通。
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("パスワードハッシュの生成に失敗: %v", err)
	}

	master := userDocument{
		ID:           primitive.NewObjectID(),
		FirstName:    "Admin",
		LastName:     "Master",
		Email:        cfg.MasterEmail,
		PasswordHash: hash,
		IsMaster:     true,
	}

	docs := []any{master}
	members := make([]userDocument, 0, opts.userCount)
	for i := 0; i < opts.userCount; i++ {
		user := userDocument{
			ID:           primitive.NewObjectID(),
			FirstName:    firstNames[rng.Intn(len(firstNames))],
			LastName:     lastNames[rng.Intn(len(lastNames))],
			Email:        fmt.Sprintf("user%02d@example.com", i+1),
			PasswordHash: hash,
			IsMaster:     false,
		}
		members = append(members, user)
		docs = append(docs, user)
	}
	if _, err := users.InsertMany(ctx, docs); err != nil {
		log.Fatalf("users の投入に失敗: %v", err)
	}

	formDocs := make([]any, 0, opts.formCount)
	for i := 0; i < opts.formCount && len(members) > 0; i++ {
		owner := members[rng.Intn(len(members))]
		doc := formDocument{
			ID:           primitive.NewObjectID(),
			UserID:       owner.ID,
			UserFullName: owner.FirstName + " " + owner.LastName,
			Date:         time.Now().UTC().Add(-time.Duration(rng.Intn(72)) * time.Hour),
			FormData: bson.M{
				"week":    rng.Intn(12) + 1,
				"summary": fmt.Sprintf("週次レポート %d", i+1),
				"hours":   rng.Intn(30) + 5,
			},
			Feedback: nil,
		}
		// 一部はすでに採点済みの状態を作っておく。
		if rng.Intn(3) == 0 {
			doc.Feedback = bson.M{
				"score":    fmt.Sprintf("%d", rng.Intn(40)+60),
				"bonus":    fmt.Sprintf("%d", rng.Intn(10)),
				"comments": "Good progress.",
			}
		}
		formDocs = append(formDocs, doc)
	}
	if len(formDocs) > 0 {
		if _, err := forms.InsertMany(ctx, formDocs); err != nil {
			log.Fatalf("forms の投入に失敗: %v", err)
		}
	}

	log.Printf("seed 完了: users=%d (master 含む), forms=%d", opts.userCount+1, opts.formCount)
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.IntVar(&opts.userCount, "users", 5, "number of non-master users to create")
	flag.IntVar(&opts.formCount, "forms", 12, "number of form submissions to create")
	flag.BoolVar(&opts.dropCollections, "drop", false, "drop users/forms collections before seeding")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()
	return opts
}
