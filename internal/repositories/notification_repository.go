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

// NotificationRepository defines the interface for notification operations.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	List(ctx context.Context, target string, unreadOnly bool) ([]models.Notification, error)
	CountPending(ctx context.Context, target string, filterType models.NotificationType) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, target string) error
	ResolveForSubmission(ctx context.Context, submissionID string) error
}

// MongoNotificationRepository implements NotificationRepository for MongoDB.
type MongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new MongoNotificationRepository.
func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{collection: db.Collection("notifications")}
}

// Create inserts a notification with read=false.
func (r *MongoNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	notification.ID = primitive.NewObjectID()
	notification.Read = false
	notification.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, notification); err != nil {
		return errors.Wrap(err, "inserting notification")
	}
	return nil
}

// List returns notifications for a target inbox, newest first.
func (r *MongoNotificationRepository) List(ctx context.Context, target string, unreadOnly bool) ([]models.Notification, error) {
	filter := bson.M{"target": target}
	if unreadOnly {
		filter["read"] = false
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "listing notifications")
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, errors.Wrap(err, "decoding notifications")
	}
	return notifications, nil
}

// CountPending counts unread, action-required notifications for a target,
// optionally restricted to one type. Used by the UI badge.
func (r *MongoNotificationRepository) CountPending(ctx context.Context, target string, filterType models.NotificationType) (int64, error) {
	filter := bson.M{"target": target, "read": false, "action_required": true}
	if filterType != "" {
		filter["type"] = filterType
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.Wrap(err, "counting pending notifications")
	}
	return count, nil
}

// MarkRead marks one notification read. Reading an already-read notification
// is a no-op success.
func (r *MongoNotificationRepository) MarkRead(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("invalid notification ID format")
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return errors.Wrap(err, "marking notification read")
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("notification %s not found", id)
	}
	return nil
}

// MarkAllRead marks every unread notification in a target inbox read.
func (r *MongoNotificationRepository) MarkAllRead(ctx context.Context, target string) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"target": target, "read": false}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return errors.Wrap(err, "marking all notifications read")
	}
	return nil
}

// ResolveForSubmission marks the outstanding action-required notifications
// that reference a submission read, so deciding a submission clears its badge
// entry without touching unrelated inbox items.
func (r *MongoNotificationRepository) ResolveForSubmission(ctx context.Context, submissionID string) error {
	filter := bson.M{"submission_id": submissionID, "action_required": true, "read": false}
	_, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return errors.Wrap(err, "resolving notifications for submission")
	}
	return nil
}
