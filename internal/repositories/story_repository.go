package repositories

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoryRepository defines the interface for story data operations.
type StoryRepository interface {
	CreateStory(ctx context.Context, story *models.Story) error
	GetStoryByID(ctx context.Context, id string) (*models.Story, error)
	GetStoriesByOwner(ctx context.Context, ownerID string, skip, limit int64) ([]models.Story, error)
	GetApprovedStories(ctx context.Context, skip, limit int64) ([]models.Story, error)
	UpdateStory(ctx context.Context, id string, story *models.Story) error
}

// MongoStoryRepository implements StoryRepository for MongoDB.
type MongoStoryRepository struct {
	collection *mongo.Collection
}

// NewMongoStoryRepository creates a new MongoStoryRepository.
func NewMongoStoryRepository(db *mongo.Database) *MongoStoryRepository {
	return &MongoStoryRepository{collection: db.Collection("stories")}
}

// CreateStory inserts a new story. The review status follows from the owning
// actor.
func (r *MongoStoryRepository) CreateStory(ctx context.Context, story *models.Story) error {
	story.ID = primitive.NewObjectID()
	story.ResourceType = models.ResourceStory
	if story.Status == "" {
		story.Status = models.InitialStatus(story.OwnerID)
	}
	story.CreatedAt = time.Now()
	story.UpdatedAt = story.CreatedAt
	if _, err := r.collection.InsertOne(ctx, story); err != nil {
		return errors.Wrap(err, "inserting story")
	}
	return nil
}

// GetStoryByID retrieves a story by ID.
func (r *MongoStoryRepository) GetStoryByID(ctx context.Context, id string) (*models.Story, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("invalid story ID format")
	}
	var story models.Story
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&story); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("story %s not found", id)
		}
		return nil, errors.Wrap(err, "finding story")
	}
	return &story, nil
}

// GetStoriesByOwner retrieves a photographer's stories, newest first.
func (r *MongoStoryRepository) GetStoriesByOwner(ctx context.Context, ownerID string, skip, limit int64) ([]models.Story, error) {
	filter := bson.M{"owner_id": ownerID, "status": bson.M{"$ne": models.StatusDeleted}}
	return r.find(ctx, filter, skip, limit)
}

// GetApprovedStories retrieves publicly visible stories, newest first.
func (r *MongoStoryRepository) GetApprovedStories(ctx context.Context, skip, limit int64) ([]models.Story, error) {
	return r.find(ctx, bson.M{"status": models.StatusApproved}, skip, limit)
}

// UpdateStory updates the content fields of an existing story.
func (r *MongoStoryRepository) UpdateStory(ctx context.Context, id string, story *models.Story) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("invalid story ID format")
	}
	story.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":       story.Title,
		"description": story.Description,
		"cover_image": story.CoverImage,
		"images":      story.Images,
		"location":    story.Location,
		"updated_at":  story.UpdatedAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return errors.Wrap(err, "updating story")
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("story %s not found", id)
	}
	return nil
}

func (r *MongoStoryRepository) find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Story, error) {
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "listing stories")
	}
	defer cursor.Close(ctx)

	var stories []models.Story
	if err = cursor.All(ctx, &stories); err != nil {
		return nil, errors.Wrap(err, "decoding stories")
	}
	return stories, nil
}
