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

// Compile-time check to ensure AccountRepository implements the interface
var _ repositories.AccountRepository = (*AccountRepository)(nil)

// AccountRepository handles MongoDB operations for one account collection.
// Construct it twice (admins, users) to get the two independent stores.
type AccountRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository creates an AccountRepository over the admins collection
func NewAdminRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{collection: db.Collection("admins")}
}

// NewUserRepository creates an AccountRepository over the users collection
func NewUserRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{collection: db.Collection("users")}
}

// Create inserts a new account. A duplicate email trips the unique index and
// comes back as repositories.ErrDuplicate.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	account.ID = primitive.NewObjectID()
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, account)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicate
	}
	return err
}

// FindByEmail finds an account by email
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindByID finds an account by ID
func (r *AccountRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	var account models.Account
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}
