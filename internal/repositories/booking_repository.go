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

// BookingRepository defines the interface for booking request operations.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.BookingRequest) error
	GetBookingByID(ctx context.Context, id string) (*models.BookingRequest, error)
	GetBookingByReference(ctx context.Context, reference string) (*models.BookingRequest, error)
	GetBookingsByPhotographer(ctx context.Context, photographerID string, status models.BookingStatus) ([]models.BookingRequest, error)
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error
}

// MongoBookingRepository implements BookingRepository for MongoDB, backed by
// the requests collection.
type MongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a new MongoBookingRepository.
func NewMongoBookingRepository(db *mongo.Database) *MongoBookingRepository {
	return &MongoBookingRepository{collection: db.Collection("requests")}
}

// CreateBooking inserts a new booking request in the "new" status.
func (r *MongoBookingRepository) CreateBooking(ctx context.Context, booking *models.BookingRequest) error {
	booking.ID = primitive.NewObjectID()
	booking.Status = models.BookingNew
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	if _, err := r.collection.InsertOne(ctx, booking); err != nil {
		return errors.Wrap(err, "inserting booking request")
	}
	return nil
}

// GetBookingByID retrieves a booking request by its document id.
func (r *MongoBookingRepository) GetBookingByID(ctx context.Context, id string) (*models.BookingRequest, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("invalid booking ID format")
	}
	var booking models.BookingRequest
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("booking request %s not found", id)
		}
		return nil, errors.Wrap(err, "finding booking request")
	}
	return &booking, nil
}

// GetBookingByReference retrieves a booking request by its reference code.
func (r *MongoBookingRepository) GetBookingByReference(ctx context.Context, reference string) (*models.BookingRequest, error) {
	var booking models.BookingRequest
	if err := r.collection.FindOne(ctx, bson.M{"reference": reference}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("booking request %s not found", reference)
		}
		return nil, errors.Wrap(err, "finding booking request")
	}
	return &booking, nil
}

// GetBookingsByPhotographer retrieves booking requests for a photographer,
// optionally filtered by status, newest first.
func (r *MongoBookingRepository) GetBookingsByPhotographer(ctx context.Context, photographerID string, status models.BookingStatus) ([]models.BookingRequest, error) {
	filter := bson.M{"photographer_id": photographerID}
	if status != "" {
		filter["status"] = status
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "listing booking requests")
	}
	defer cursor.Close(ctx)

	var bookings []models.BookingRequest
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, errors.Wrap(err, "decoding booking requests")
	}
	return bookings, nil
}

// UpdateBookingStatus moves a booking request to a new follow-up status.
func (r *MongoBookingRepository) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("invalid booking ID format")
	}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return errors.Wrap(err, "updating booking status")
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("booking request %s not found", id)
	}
	return nil
}
