package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubmissionRepository is the unified review-workflow view over the gallery,
// story, and photographer collections. Every resource type is read and
// written through the same embedded Submission shape.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *models.Submission) error
	GetByID(ctx context.Context, id string) (*models.Submission, error)
	ListByStatus(ctx context.Context, resource models.ResourceType, status models.SubmissionStatus, recentFirst bool) ([]models.Submission, error)
	Transition(ctx context.Context, id string, action models.SubmissionAction, actorID string) (*models.Submission, error)
}

// MongoSubmissionRepository implements SubmissionRepository for MongoDB.
type MongoSubmissionRepository struct {
	collections map[models.ResourceType]*mongo.Collection
}

// NewMongoSubmissionRepository creates a new MongoSubmissionRepository.
func NewMongoSubmissionRepository(db *mongo.Database) *MongoSubmissionRepository {
	return &MongoSubmissionRepository{
		collections: map[models.ResourceType]*mongo.Collection{
			models.ResourceGallery:      db.Collection("galleries"),
			models.ResourceStory:        db.Collection("stories"),
			models.ResourcePhotographer: db.Collection("photographers"),
		},
	}
}

// Create inserts a submission into the collection of its resource type. The
// initial status follows from the owning actor unless the caller set one.
func (r *MongoSubmissionRepository) Create(ctx context.Context, sub *models.Submission) error {
	coll, ok := r.collections[sub.ResourceType]
	if !ok {
		return apperr.NewValidation("unknown resource type %q", sub.ResourceType)
	}

	sub.ID = primitive.NewObjectID()
	if sub.Status == "" {
		sub.Status = models.InitialStatus(sub.OwnerID)
	}
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = sub.CreatedAt

	if _, err := coll.InsertOne(ctx, sub); err != nil {
		return errors.Wrapf(err, "inserting %s submission", sub.ResourceType)
	}
	return nil
}

// GetByID resolves a submission id across the three resource collections.
func (r *MongoSubmissionRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("invalid submission ID format")
	}

	for _, resource := range models.ResourceTypes {
		var sub models.Submission
		err := r.collections[resource].FindOne(ctx, bson.M{"_id": objID}).Decode(&sub)
		if err == nil {
			return &sub, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, errors.Wrapf(err, "finding submission in %s collection", resource)
		}
	}
	return nil, apperr.NewNotFound("submission %s not found", id)
}

// ListByStatus returns submissions matching status, optionally restricted to
// one resource type. With recentFirst the result is ordered by creation time
// descending; otherwise ordering is unspecified.
func (r *MongoSubmissionRepository) ListByStatus(ctx context.Context, resource models.ResourceType, status models.SubmissionStatus, recentFirst bool) ([]models.Submission, error) {
	if !models.IsValidStatus(status) {
		return nil, apperr.NewValidation("unknown status %q", status)
	}

	targets := models.ResourceTypes
	if resource != "" {
		if !models.IsValidResourceType(resource) {
			return nil, apperr.NewValidation("unknown resource type %q", resource)
		}
		targets = []models.ResourceType{resource}
	}

	var out []models.Submission
	for _, rt := range targets {
		findOptions := options.Find()
		if recentFirst {
			findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})
		}
		cursor, err := r.collections[rt].Find(ctx, bson.M{"status": status}, findOptions)
		if err != nil {
			return nil, errors.Wrapf(err, "listing %s submissions", rt)
		}
		var subs []models.Submission
		if err = cursor.All(ctx, &subs); err != nil {
			cursor.Close(ctx)
			return nil, errors.Wrapf(err, "decoding %s submissions", rt)
		}
		out = append(out, subs...)
	}

	if recentFirst && resource == "" {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

// Transition applies an action to a submission per the state table and
// persists the result. The two reads/writes are not transactional; Mongo
// serializes the single document write.
func (r *MongoSubmissionRepository) Transition(ctx context.Context, id string, action models.SubmissionAction, actorID string) (*models.Submission, error) {
	sub, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := models.NextStatus(sub.Status, action)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":     next,
		"updated_at": now,
		"decided_at": now,
		"decided_by": actorID,
	}}
	res, err := r.collections[sub.ResourceType].UpdateOne(ctx, bson.M{"_id": sub.ID}, update)
	if err != nil {
		return nil, errors.Wrapf(err, "transitioning %s submission %s", sub.ResourceType, id)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NewNotFound("submission %s not found", id)
	}

	sub.Status = next
	sub.UpdatedAt = now
	sub.DecidedAt = &now
	sub.DecidedBy = actorID
	return sub, nil
}
