package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the uniqueness constraints the application relies on:
// email per account collection, and one purchase per (userId, courseId).
// Safe to call on every startup; Mongo treats existing indexes as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, name := range []string{"admins", "users"} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, emailIndex); err != nil {
			return err
		}
	}

	purchaseIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "courseId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("purchases").Indexes().CreateOne(ctx, purchaseIndex); err != nil {
		return err
	}

	return nil
}
