package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TargetAdmin is the inbox name for the admin. Everything else addressed by
// a notification target is a photographer id.
const TargetAdmin = "admin"

// NotificationType tags a notification with the event that produced it.
type NotificationType string

const (
	NotifGalleryHomepageRequest NotificationType = "gallery_homepage_request"
	NotifStoryHomepageRequest   NotificationType = "story_homepage_request"
	NotifPhotographerSignup     NotificationType = "photographer_registration"

	NotifGalleryApproved  NotificationType = "gallery_approved"
	NotifGalleryRejected  NotificationType = "gallery_rejected"
	NotifGalleryBlocked   NotificationType = "gallery_blocked"
	NotifGalleryUnblocked NotificationType = "gallery_unblocked"
	NotifGalleryDeleted   NotificationType = "gallery_deleted"

	NotifStoryApproved  NotificationType = "story_approved"
	NotifStoryRejected  NotificationType = "story_rejected"
	NotifStoryBlocked   NotificationType = "story_blocked"
	NotifStoryUnblocked NotificationType = "story_unblocked"
	NotifStoryDeleted   NotificationType = "story_deleted"

	NotifPhotographerApproved NotificationType = "photographer_approved"
	NotifPhotographerRejected NotificationType = "photographer_rejected"
	NotifAccountBlocked       NotificationType = "account_blocked"
	NotifAccountUnblocked     NotificationType = "account_unblocked"
	NotifAccountDeleted       NotificationType = "account_deleted"
)

// Notification is an inbox record stored in MongoDB. Marking a notification
// read is independent of the status of the submission it references.
type Notification struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Target         string             `json:"target" bson:"target"`
	Type           NotificationType   `json:"type" bson:"type"`
	Title          string             `json:"title" bson:"title"`
	Message        string             `json:"message" bson:"message"`
	Read           bool               `json:"read" bson:"read"`
	ActionRequired bool               `json:"action_required" bson:"action_required"`
	SubmissionID   string             `json:"submission_id,omitempty" bson:"submission_id,omitempty"`
	ResourceType   ResourceType       `json:"resource_type,omitempty" bson:"resource_type,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// CreateNotificationRequest is the request body for the notification
// creation endpoint, used as a same-process RPC surface by other handlers.
type CreateNotificationRequest struct {
	Target         string           `json:"userId" validate:"required"`
	Type           NotificationType `json:"type" validate:"required"`
	Title          string           `json:"title" validate:"required,max=160"`
	Message        string           `json:"message,omitempty" validate:"omitempty,max=1000"`
	ActionRequired bool             `json:"actionRequired"`
	SubmissionID   string           `json:"submissionId,omitempty"`
	ResourceType   ResourceType     `json:"resourceType,omitempty" validate:"omitempty,oneof=gallery story photographer"`
}

// UpdateNotificationRequest covers both update shapes the notification
// endpoint accepts: {id, read} for a single record and {markAllRead, userId}
// for the whole inbox.
type UpdateNotificationRequest struct {
	ID          string `json:"id,omitempty"`
	Read        *bool  `json:"read,omitempty"`
	MarkAllRead bool   `json:"markAllRead,omitempty"`
	UserID      string `json:"userId,omitempty"`
}
