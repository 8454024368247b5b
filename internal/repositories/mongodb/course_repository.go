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

// Compile-time check to ensure CourseRepository implements the interface
var _ repositories.CourseRepository = (*CourseRepository)(nil)

// CourseRepository handles MongoDB operations for Course
type CourseRepository struct {
	collection *mongo.Collection
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{collection: db.Collection("courses")}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	course.ID = primitive.NewObjectID()
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, course)
	return err
}

// FindByID finds a course regardless of owner
func (r *CourseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindOwned finds a course matching both id and creator
func (r *CourseRepository) FindOwned(ctx context.Context, id, creatorID primitive.ObjectID) (*models.Course, error) {
	return r.findOne(ctx, bson.M{"_id": id, "creatorId": creatorID})
}

// UpdateOwned overwrites the mutable fields of a course matched by id and
// creator. ErrNotFound when no document matches either.
func (r *CourseRepository) UpdateOwned(ctx context.Context, course *models.Course) error {
	filter := bson.M{"_id": course.ID, "creatorId": course.CreatorID}
	update := bson.M{"$set": bson.M{
		"title":       course.Title,
		"description": course.Description,
		"imageUrl":    course.ImageURL,
		"price":       course.Price,
		"updatedAt":   time.Now(),
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// DeleteOwned deletes a course matched by id and creator
func (r *CourseRepository) DeleteOwned(ctx context.Context, id, creatorID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "creatorId": creatorID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// FindByCreator retrieves all courses owned by one admin
func (r *CourseRepository) FindByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]*models.Course, error) {
	return r.findMany(ctx, bson.M{"creatorId": creatorID})
}

// FindAll retrieves every course in the system
func (r *CourseRepository) FindAll(ctx context.Context) ([]*models.Course, error) {
	return r.findMany(ctx, bson.M{})
}

// FindByIDs retrieves the courses whose ids are in the given set
func (r *CourseRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Course, error) {
	if len(ids) == 0 {
		return []*models.Course{}, nil
	}
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *CourseRepository) findOne(ctx context.Context, filter bson.M) (*models.Course, error) {
	var course models.Course
	err := r.collection.FindOne(ctx, filter).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) findMany(ctx context.Context, filter bson.M) ([]*models.Course, error) {
	var courses []*models.Course
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}
