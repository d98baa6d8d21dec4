package models

import (
	"time"

	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceType identifies which kind of content a submission carries.
type ResourceType string

const (
	ResourceGallery      ResourceType = "gallery"
	ResourceStory        ResourceType = "story"
	ResourcePhotographer ResourceType = "photographer"
)

// ResourceTypes lists every valid resource type.
var ResourceTypes = []ResourceType{ResourceGallery, ResourceStory, ResourcePhotographer}

// IsValidResourceType reports whether t is a known resource type.
func IsValidResourceType(t ResourceType) bool {
	for _, rt := range ResourceTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// SubmissionStatus is the review state of a submission.
type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "pending"
	StatusApproved  SubmissionStatus = "approved"
	StatusRejected  SubmissionStatus = "rejected"
	StatusSuspended SubmissionStatus = "suspended"
	StatusDeleted   SubmissionStatus = "deleted"
)

// SubmissionStatuses is the closed set of statuses a submission can hold.
var SubmissionStatuses = []SubmissionStatus{
	StatusPending, StatusApproved, StatusRejected, StatusSuspended, StatusDeleted,
}

// IsValidStatus reports whether s is one of the enumerated statuses.
func IsValidStatus(s SubmissionStatus) bool {
	for _, status := range SubmissionStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// SubmissionAction is an admin or owner action applied to a submission.
type SubmissionAction string

const (
	ActionApprove          SubmissionAction = "approve"
	ActionReject           SubmissionAction = "reject"
	ActionBlock            SubmissionAction = "block"
	ActionUnblock          SubmissionAction = "unblock"
	ActionDelete           SubmissionAction = "delete"
	ActionRequestPlacement SubmissionAction = "request_home"
)

// AdminActions are the decision actions reserved for the admin.
var AdminActions = []SubmissionAction{
	ActionApprove, ActionReject, ActionBlock, ActionUnblock, ActionDelete,
}

// NextStatus applies action to the current status and returns the resulting
// status. Transitions are one-directional except block/unblock; deleted is
// terminal. Any pair outside the table fails with an invalid-action error,
// including approving an already-approved submission.
func NextStatus(current SubmissionStatus, action SubmissionAction) (SubmissionStatus, error) {
	if current == StatusDeleted {
		return "", apperr.NewInvalidAction("cannot %s a deleted submission", action)
	}

	switch action {
	case ActionApprove:
		if current == StatusPending {
			return StatusApproved, nil
		}
	case ActionReject:
		if current == StatusPending {
			return StatusRejected, nil
		}
	case ActionBlock:
		if current == StatusApproved {
			return StatusSuspended, nil
		}
	case ActionUnblock:
		if current == StatusSuspended {
			return StatusApproved, nil
		}
	case ActionDelete:
		return StatusDeleted, nil
	case ActionRequestPlacement:
		if current == StatusApproved {
			return StatusPending, nil
		}
	default:
		return "", apperr.NewInvalidAction("unknown action %q", action)
	}
	return "", apperr.NewInvalidAction("cannot %s a submission in status %q", action, current)
}

// Submission holds the review-workflow fields shared by galleries, stories,
// and photographer registrations. Resource documents embed it inline so the
// approval workflow reads and writes every resource type through one shape.
type Submission struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ResourceType ResourceType       `json:"resource_type" bson:"resource_type"`
	OwnerID      string             `json:"owner_id" bson:"owner_id"` // photographer id, or "admin"
	Title        string             `json:"title" bson:"title"`
	Status       SubmissionStatus   `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
	DecidedAt    *time.Time         `json:"decided_at,omitempty" bson:"decided_at,omitempty"`
	DecidedBy    string             `json:"decided_by,omitempty" bson:"decided_by,omitempty"`
}

// InitialStatus returns the status a freshly created submission starts in.
// Photographer-initiated content and registrations wait for review;
// admin-created content is approved immediately.
func InitialStatus(ownerID string) SubmissionStatus {
	if ownerID == TargetAdmin {
		return StatusApproved
	}
	return StatusPending
}

// CreateSubmissionRequest is the request body for creating a submission
// through the generic workflow endpoint. Resource details beyond the title
// go through the gallery and story endpoints.
type CreateSubmissionRequest struct {
	ResourceType ResourceType `json:"resource_type" validate:"required,oneof=gallery story"`
	Title        string       `json:"title" validate:"required,min=2,max=120"`
}

// SubmissionActionRequest is the request body for acting on a submission.
type SubmissionActionRequest struct {
	Action SubmissionAction `json:"action" validate:"required,oneof=approve reject block unblock delete request_home"`
}
