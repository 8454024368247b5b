package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/coursify/coursify-backend/internal/models"
	"github.com/coursify/coursify-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure PurchaseRepository implements the interface
var _ repositories.PurchaseRepository = (*PurchaseRepository)(nil)

// PurchaseRepository handles MongoDB operations for Purchase
type PurchaseRepository struct {
	collection *mongo.Collection
}

// NewPurchaseRepository creates a new PurchaseRepository
func NewPurchaseRepository(db *mongo.Database) *PurchaseRepository {
	return &PurchaseRepository{collection: db.Collection("purchases")}
}

// Create inserts a new purchase. The unique (userId, courseId) index makes
// this the atomic insert-if-absent the duplicate check alone cannot provide:
// a concurrent double-submission loses here with ErrDuplicate.
func (r *PurchaseRepository) Create(ctx context.Context, purchase *models.Purchase) error {
	purchase.ID = primitive.NewObjectID()
	purchase.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, purchase)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicate
	}
	return err
}

// FindByUserAndCourse finds the purchase for one (user, course) pair
func (r *PurchaseRepository) FindByUserAndCourse(ctx context.Context, userID, courseID primitive.ObjectID) (*models.Purchase, error) {
	var purchase models.Purchase
	filter := bson.M{"userId": userID, "courseId": courseID}
	err := r.collection.FindOne(ctx, filter).Decode(&purchase)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

// FindByUser retrieves all purchases for one user
func (r *PurchaseRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Purchase, error) {
	var purchases []*models.Purchase
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}
	if purchases == nil {
		purchases = []*models.Purchase{}
	}
	return purchases, nil
}
