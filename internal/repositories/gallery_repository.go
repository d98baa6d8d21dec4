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

// GalleryRepository defines the interface for gallery data operations.
type GalleryRepository interface {
	CreateGallery(ctx context.Context, gallery *models.Gallery) error
	GetGalleryByID(ctx context.Context, id string) (*models.Gallery, error)
	GetGalleriesByOwner(ctx context.Context, ownerID string, skip, limit int64) ([]models.Gallery, error)
	GetApprovedGalleries(ctx context.Context, category, city string, skip, limit int64) ([]models.Gallery, error)
	SearchGalleries(ctx context.Context, query string, limit int64) ([]models.Gallery, error)
	UpdateGallery(ctx context.Context, id string, gallery *models.Gallery) error
}

// MongoGalleryRepository implements GalleryRepository for MongoDB.
type MongoGalleryRepository struct {
	collection *mongo.Collection
}

// NewMongoGalleryRepository creates a new MongoGalleryRepository.
func NewMongoGalleryRepository(db *mongo.Database) *MongoGalleryRepository {
	return &MongoGalleryRepository{collection: db.Collection("galleries")}
}

// CreateGallery inserts a new gallery. The review status follows from the
// owning actor.
func (r *MongoGalleryRepository) CreateGallery(ctx context.Context, gallery *models.Gallery) error {
	gallery.ID = primitive.NewObjectID()
	gallery.ResourceType = models.ResourceGallery
	if gallery.Status == "" {
		gallery.Status = models.InitialStatus(gallery.OwnerID)
	}
	gallery.CreatedAt = time.Now()
	gallery.UpdatedAt = gallery.CreatedAt
	if _, err := r.collection.InsertOne(ctx, gallery); err != nil {
		return errors.Wrap(err, "inserting gallery")
	}
	return nil
}

// GetGalleryByID retrieves a gallery by ID.
func (r *MongoGalleryRepository) GetGalleryByID(ctx context.Context, id string) (*models.Gallery, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("invalid gallery ID format")
	}
	var gallery models.Gallery
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&gallery); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("gallery %s not found", id)
		}
		return nil, errors.Wrap(err, "finding gallery")
	}
	return &gallery, nil
}

// GetGalleriesByOwner retrieves a photographer's galleries, newest first.
func (r *MongoGalleryRepository) GetGalleriesByOwner(ctx context.Context, ownerID string, skip, limit int64) ([]models.Gallery, error) {
	filter := bson.M{"owner_id": ownerID, "status": bson.M{"$ne": models.StatusDeleted}}
	return r.find(ctx, filter, skip, limit)
}

// GetApprovedGalleries retrieves publicly visible galleries with optional
// category and city filters.
func (r *MongoGalleryRepository) GetApprovedGalleries(ctx context.Context, category, city string, skip, limit int64) ([]models.Gallery, error) {
	filter := bson.M{"status": models.StatusApproved}
	if category != "" {
		filter["category"] = category
	}
	if city != "" {
		filter["city"] = city
	}
	return r.find(ctx, filter, skip, limit)
}

// SearchGalleries searches approved galleries by title or tag.
func (r *MongoGalleryRepository) SearchGalleries(ctx context.Context, query string, limit int64) ([]models.Gallery, error) {
	pattern := primitive.Regex{Pattern: query, Options: "i"}
	filter := bson.M{
		"status": models.StatusApproved,
		"$or": []bson.M{
			{"title": pattern},
			{"tags": pattern},
		},
	}
	return r.find(ctx, filter, 0, limit)
}

// UpdateGallery updates the content fields of an existing gallery. Review
// state is only changed through the submission workflow.
func (r *MongoGalleryRepository) UpdateGallery(ctx context.Context, id string, gallery *models.Gallery) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("invalid gallery ID format")
	}
	gallery.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":       gallery.Title,
		"description": gallery.Description,
		"category":    gallery.Category,
		"city":        gallery.City,
		"cover_image": gallery.CoverImage,
		"images":      gallery.Images,
		"tags":        gallery.Tags,
		"updated_at":  gallery.UpdatedAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return errors.Wrap(err, "updating gallery")
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("gallery %s not found", id)
	}
	return nil
}

func (r *MongoGalleryRepository) find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Gallery, error) {
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "listing galleries")
	}
	defer cursor.Close(ctx)

	var galleries []models.Gallery
	if err = cursor.All(ctx, &galleries); err != nil {
		return nil, errors.Wrap(err, "decoding galleries")
	}
	return galleries, nil
}
