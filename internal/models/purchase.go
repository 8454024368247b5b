package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Purchase links a user to a course they have bought. Exactly one record may
// exist per (userId, courseId) pair; the purchases collection enforces this
// with a unique compound index.
type Purchase struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	CourseID  primitive.ObjectID `bson:"courseId" json:"courseId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
