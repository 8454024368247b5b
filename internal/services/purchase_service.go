package services

import (
	"context"
	"errors"

	"github.com/coursify/coursify-backend/internal/models"
	"github.com/coursify/coursify-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchaseService defines the user-scoped purchase operations
type PurchaseService interface {
	Purchase(ctx context.Context, userID, courseID primitive.ObjectID) (*models.Purchase, error)
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Purchase, []*models.Course, error)
}

type purchaseService struct {
	purchases repositories.PurchaseRepository
	courses   repositories.CourseRepository
}

// NewPurchaseService creates a new PurchaseService implementation
func NewPurchaseService(purchases repositories.PurchaseRepository, courses repositories.CourseRepository) PurchaseService {
	return &purchaseService{
		purchases: purchases,
		courses:   courses,
	}
}

// Purchase records that the user bought the course. The course must exist and
// the pair must not already hold a purchase. The duplicate pre-check gives
// the common case a clean answer; the unique index behind Create decides the
// race when two requests pass the pre-check together.
func (s *purchaseService) Purchase(ctx context.Context, userID, courseID primitive.ObjectID) (*models.Purchase, error) {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	_, err := s.purchases.FindByUserAndCourse(ctx, userID, courseID)
	if err == nil {
		return nil, ErrAlreadyPurchased
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	purchase := &models.Purchase{
		UserID:   userID,
		CourseID: courseID,
	}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyPurchased
		}
		return nil, err
	}
	return purchase, nil
}

// ListForUser returns the user's purchases and the matching course documents
// as parallel slices; callers correlate them by courseId.
func (s *purchaseService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Purchase, []*models.Course, error) {
	purchases, err := s.purchases.FindByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	courseIDs := make([]primitive.ObjectID, 0, len(purchases))
	for _, p := range purchases {
		courseIDs = append(courseIDs, p.CourseID)
	}

	courses, err := s.courses.FindByIDs(ctx, courseIDs)
	if err != nil {
		return nil, nil, err
	}

	return purchases, courses, nil
}
