package services

import (
	"context"
	"errors"

	"github.com/coursify/coursify-backend/internal/models"
	"github.com/coursify/coursify-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseService defines course management scoped to the owning admin plus the
// unscoped listings.
type CourseService interface {
	Create(ctx context.Context, creatorID primitive.ObjectID, req *models.CourseRequest) (*models.Course, error)
	Update(ctx context.Context, id, creatorID primitive.ObjectID, req *models.CourseRequest) (*models.Course, error)
	GetOwned(ctx context.Context, id, creatorID primitive.ObjectID) (*models.Course, error)
	Delete(ctx context.Context, id, creatorID primitive.ObjectID) error
	ListByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]*models.Course, error)
	ListAll(ctx context.Context) ([]*models.Course, error)
}

type courseService struct {
	courses repositories.CourseRepository
}

// NewCourseService creates a new CourseService implementation
func NewCourseService(courses repositories.CourseRepository) CourseService {
	return &courseService{courses: courses}
}

// Create persists a new course owned by the authenticated admin
func (s *courseService) Create(ctx context.Context, creatorID primitive.ObjectID, req *models.CourseRequest) (*models.Course, error) {
	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       *req.Price,
		CreatorID:   creatorID,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update overwrites all mutable fields of a course the admin owns. There is
// no partial-patch path; callers send the full document every time.
func (s *courseService) Update(ctx context.Context, id, creatorID primitive.ObjectID, req *models.CourseRequest) (*models.Course, error) {
	course := &models.Course{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       *req.Price,
		CreatorID:   creatorID,
	}
	if err := s.courses.UpdateOwned(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// GetOwned fetches a course matched on id and owner
func (s *courseService) GetOwned(ctx context.Context, id, creatorID primitive.ObjectID) (*models.Course, error) {
	course, err := s.courses.FindOwned(ctx, id, creatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// Delete removes a course matched on id and owner. Purchases referencing the
// course are left in place.
func (s *courseService) Delete(ctx context.Context, id, creatorID primitive.ObjectID) error {
	if err := s.courses.DeleteOwned(ctx, id, creatorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	return nil
}

// ListByCreator returns the courses owned by one admin
func (s *courseService) ListByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]*models.Course, error) {
	return s.courses.FindByCreator(ctx, creatorID)
}

// ListAll returns every course in the system
func (s *courseService) ListAll(ctx context.Context) ([]*models.Course, error) {
	return s.courses.FindAll(ctx)
}
