package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RebeyMasota/fittrack-backend/internal/database"
	"github.com/RebeyMasota/fittrack-backend/internal/models"
)

type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(database.CoursesCollection)}
}

func (r *CourseRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]models.Course, error) {
	return findRecent[models.Course](ctx, r.coll, filter, limit)
}

func (r *CourseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	return getByID[models.Course](ctx, r.coll, id)
}

func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	oid, err := insertOne(ctx, r.coll, course)
	if err != nil {
		return err
	}
	course.ID = oid
	return nil
}

func (r *CourseRepository) Update(ctx context.Context, id primitive.ObjectID, course models.Course) (*models.Course, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.ID = id
	course.CreatedAt = existing.CreatedAt
	course.UpdatedAt = time.Now().UTC()
	if err := replaceOne(ctx, r.coll, id, course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id)
}
