package repositories

import (
	"context"
	"errors"

	"github.com/coursify/coursify-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Storage-level sentinel errors. Implementations translate driver errors into
// these so services never depend on the driver.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// AccountRepository handles one account collection (admins or users)
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
}

// CourseRepository handles the courses collection. The *Owned methods match
// on both course id and creator id, so a wrong id and a course owned by a
// different admin are indistinguishable to the caller.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	FindOwned(ctx context.Context, id, creatorID primitive.ObjectID) (*models.Course, error)
	UpdateOwned(ctx context.Context, course *models.Course) error
	DeleteOwned(ctx context.Context, id, creatorID primitive.ObjectID) error
	FindByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]*models.Course, error)
	FindAll(ctx context.Context) ([]*models.Course, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Course, error)
}

// PurchaseRepository handles the purchases collection
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *models.Purchase) error
	FindByUserAndCourse(ctx context.Context, userID, courseID primitive.ObjectID) (*models.Purchase, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Purchase, error)
}
