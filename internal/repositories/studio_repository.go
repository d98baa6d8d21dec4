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

// StudioRepository defines the interface for studio data operations.
type StudioRepository interface {
	CreateStudio(ctx context.Context, studio *models.Studio) error
	GetStudioByID(ctx context.Context, id string) (*models.Studio, error)
	GetStudioByEmail(ctx context.Context, email string) (*models.Studio, error)
	GetStudios(ctx context.Context, city string, skip, limit int64) ([]models.Studio, error)
	UpdateStudio(ctx context.Context, id string, studio *models.Studio) error
}

// MongoStudioRepository implements StudioRepository for MongoDB.
type MongoStudioRepository struct {
	collection *mongo.Collection
}

// NewMongoStudioRepository creates a new MongoStudioRepository.
func NewMongoStudioRepository(db *mongo.Database) *MongoStudioRepository {
	return &MongoStudioRepository{collection: db.Collection("studios")}
}

// CreateStudio inserts a new studio account. Email must be unique among
// studios.
func (r *MongoStudioRepository) CreateStudio(ctx context.Context, studio *models.Studio) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": studio.Email})
	if err != nil {
		return errors.Wrap(err, "checking studio email uniqueness")
	}
	if count > 0 {
		return apperr.NewConflict("a studio with this email already exists")
	}

	studio.ID = primitive.NewObjectID()
	studio.CreatedAt = time.Now()
	studio.UpdatedAt = studio.CreatedAt
	if _, err := r.collection.InsertOne(ctx, studio); err != nil {
		return errors.Wrap(err, "inserting studio")
	}
	return nil
}

// GetStudioByID retrieves a studio by ID.
func (r *MongoStudioRepository) GetStudioByID(ctx context.Context, id string) (*models.Studio, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("invalid studio ID format")
	}
	var studio models.Studio
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&studio); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("studio %s not found", id)
		}
		return nil, errors.Wrap(err, "finding studio")
	}
	return &studio, nil
}

// GetStudioByEmail retrieves a studio by email.
func (r *MongoStudioRepository) GetStudioByEmail(ctx context.Context, email string) (*models.Studio, error) {
	var studio models.Studio
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&studio); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("studio with email %s not found", email)
		}
		return nil, errors.Wrap(err, "finding studio by email")
	}
	return &studio, nil
}

// GetStudios retrieves studios, optionally filtered by city, newest first.
func (r *MongoStudioRepository) GetStudios(ctx context.Context, city string, skip, limit int64) ([]models.Studio, error) {
	filter := bson.M{}
	if city != "" {
		filter["city"] = city
	}
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "listing studios")
	}
	defer cursor.Close(ctx)

	var studios []models.Studio
	if err = cursor.All(ctx, &studios); err != nil {
		return nil, errors.Wrap(err, "decoding studios")
	}
	return studios, nil
}

// UpdateStudio updates the profile fields of an existing studio.
func (r *MongoStudioRepository) UpdateStudio(ctx context.Context, id string, studio *models.Studio) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("invalid studio ID format")
	}
	studio.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":        studio.Name,
		"mobile":      studio.Mobile,
		"city":        studio.City,
		"address":     studio.Address,
		"description": studio.Description,
		"logo_url":    studio.LogoURL,
		"updated_at":  studio.UpdatedAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return errors.Wrap(err, "updating studio")
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("studio %s not found", id)
	}
	return nil
}
