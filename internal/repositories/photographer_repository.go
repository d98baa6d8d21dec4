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

// PhotographerRepository defines the interface for photographer data
// operations.
type PhotographerRepository interface {
	Register(ctx context.Context, photographer *models.Photographer) error
	GetPhotographerByID(ctx context.Context, id string) (*models.Photographer, error)
	GetPhotographerByEmail(ctx context.Context, email string) (*models.Photographer, error)
	GetApprovedPhotographers(ctx context.Context, city, specialty string, skip, limit int64) ([]models.Photographer, error)
	SearchPhotographers(ctx context.Context, query string, limit int64) ([]models.Photographer, error)
	UpdatePhotographer(ctx context.Context, id string, photographer *models.Photographer) error
}

// MongoPhotographerRepository implements PhotographerRepository for MongoDB.
type MongoPhotographerRepository struct {
	collection *mongo.Collection
	studios    *mongo.Collection
}

// NewMongoPhotographerRepository creates a new MongoPhotographerRepository.
// The studios collection participates in the registration uniqueness check.
func NewMongoPhotographerRepository(db *mongo.Database) *MongoPhotographerRepository {
	return &MongoPhotographerRepository{
		collection: db.Collection("photographers"),
		studios:    db.Collection("studios"),
	}
}

// Register inserts a new photographer registration in pending status. Email
// and mobile must be unique across photographers and studios; a collision
// fails with a conflict error and creates nothing.
func (r *MongoPhotographerRepository) Register(ctx context.Context, photographer *models.Photographer) error {
	contact := bson.M{"$or": []bson.M{
		{"email": photographer.Email},
		{"mobile": photographer.Mobile},
	}}
	for _, coll := range []*mongo.Collection{r.collection, r.studios} {
		count, err := coll.CountDocuments(ctx, contact)
		if err != nil {
			return errors.Wrap(err, "checking contact uniqueness")
		}
		if count > 0 {
			return apperr.NewConflict("an account with this email or mobile already exists")
		}
	}

	photographer.ID = primitive.NewObjectID()
	photographer.ResourceType = models.ResourcePhotographer
	photographer.Status = models.StatusPending
	photographer.CreatedAt = time.Now()
	photographer.UpdatedAt = photographer.CreatedAt
	if _, err := r.collection.InsertOne(ctx, photographer); err != nil {
		return errors.Wrap(err, "inserting photographer")
	}
	return nil
}

// GetPhotographerByID retrieves a photographer by ID.
func (r *MongoPhotographerRepository) GetPhotographerByID(ctx context.Context, id string) (*models.Photographer, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("invalid photographer ID format")
	}
	var photographer models.Photographer
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&photographer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("photographer %s not found", id)
		}
		return nil, errors.Wrap(err, "finding photographer")
	}
	return &photographer, nil
}

// GetPhotographerByEmail retrieves a photographer by email.
func (r *MongoPhotographerRepository) GetPhotographerByEmail(ctx context.Context, email string) (*models.Photographer, error) {
	var photographer models.Photographer
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&photographer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("photographer with email %s not found", email)
		}
		return nil, errors.Wrap(err, "finding photographer by email")
	}
	return &photographer, nil
}

// GetApprovedPhotographers retrieves approved photographers with optional
// city and specialty filters, newest first.
func (r *MongoPhotographerRepository) GetApprovedPhotographers(ctx context.Context, city, specialty string, skip, limit int64) ([]models.Photographer, error) {
	filter := bson.M{"status": models.StatusApproved}
	if city != "" {
		filter["city"] = city
	}
	if specialty != "" {
		filter["specialties"] = specialty
	}
	return r.find(ctx, filter, skip, limit)
}

// SearchPhotographers searches approved photographers by name or specialty.
func (r *MongoPhotographerRepository) SearchPhotographers(ctx context.Context, query string, limit int64) ([]models.Photographer, error) {
	pattern := primitive.Regex{Pattern: query, Options: "i"}
	filter := bson.M{
		"status": models.StatusApproved,
		"$or": []bson.M{
			{"title": pattern},
			{"specialties": pattern},
		},
	}
	return r.find(ctx, filter, 0, limit)
}

// UpdatePhotographer updates the profile fields of an existing photographer.
func (r *MongoPhotographerRepository) UpdatePhotographer(ctx context.Context, id string, photographer *models.Photographer) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("invalid photographer ID format")
	}
	photographer.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":       photographer.Title,
		"mobile":      photographer.Mobile,
		"city":        photographer.City,
		"bio":         photographer.Bio,
		"avatar_url":  photographer.AvatarURL,
		"specialties": photographer.Specialties,
		"updated_at":  photographer.UpdatedAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return errors.Wrap(err, "updating photographer")
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("photographer %s not found", id)
	}
	return nil
}

func (r *MongoPhotographerRepository) find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Photographer, error) {
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "listing photographers")
	}
	defer cursor.Close(ctx)

	var photographers []models.Photographer
	if err = cursor.All(ctx, &photographers); err != nil {
		return nil, errors.Wrap(err, "decoding photographers")
	}
	return photographers, nil
}
