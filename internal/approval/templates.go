package approval

import (
	"fmt"

	"github.com/shotfolio/shotfolio-api/internal/models"
)

// template is one entry in the fixed {resource, action} message lookup.
type template struct {
	Type  models.NotificationType
	Title string
	// Message receives the submission title.
	Message string
}

func (t template) Render(title string) (string, string) {
	return t.Title, fmt.Sprintf(t.Message, title)
}

// placementTemplates are the admin-inbox notifications emitted when an owner
// requests homepage placement.
var placementTemplates = map[models.ResourceType]template{
	models.ResourceGallery: {
		Type:    models.NotifGalleryHomepageRequest,
		Title:   "Gallery homepage request",
		Message: "Homepage placement was requested for gallery %q.",
	},
	models.ResourceStory: {
		Type:    models.NotifStoryHomepageRequest,
		Title:   "Story homepage request",
		Message: "Homepage placement was requested for story %q.",
	},
}

// registrationTemplate is the admin-inbox notification for a new
// photographer registration.
var registrationTemplate = template{
	Type:    models.NotifPhotographerSignup,
	Title:   "New photographer registration",
	Message: "Photographer %q registered and is awaiting review.",
}

// decisionTemplates are the owner-inbox notifications emitted when the admin
// decides a submission. The table is a fixed lookup, not computed.
var decisionTemplates = map[models.ResourceType]map[models.SubmissionAction]template{
	models.ResourceGallery: {
		models.ActionApprove: {models.NotifGalleryApproved, "Gallery approved", "Your gallery %q was approved for the homepage."},
		models.ActionReject:  {models.NotifGalleryRejected, "Gallery rejected", "Your gallery %q was not approved for the homepage."},
		models.ActionBlock:   {models.NotifGalleryBlocked, "Gallery suspended", "Your gallery %q was suspended by the admin."},
		models.ActionUnblock: {models.NotifGalleryUnblocked, "Gallery restored", "Your gallery %q was restored by the admin."},
		models.ActionDelete:  {models.NotifGalleryDeleted, "Gallery removed", "Your gallery %q was removed by the admin."},
	},
	models.ResourceStory: {
		models.ActionApprove: {models.NotifStoryApproved, "Story approved", "Your story %q was approved for the homepage."},
		models.ActionReject:  {models.NotifStoryRejected, "Story rejected", "Your story %q was not approved for the homepage."},
		models.ActionBlock:   {models.NotifStoryBlocked, "Story suspended", "Your story %q was suspended by the admin."},
		models.ActionUnblock: {models.NotifStoryUnblocked, "Story restored", "Your story %q was restored by the admin."},
		models.ActionDelete:  {models.NotifStoryDeleted, "Story removed", "Your story %q was removed by the admin."},
	},
	models.ResourcePhotographer: {
		models.ActionApprove: {models.NotifPhotographerApproved, "Registration approved", "Welcome %s, your photographer account was approved."},
		models.ActionReject:  {models.NotifPhotographerRejected, "Registration rejected", "Sorry %s, your photographer registration was not approved."},
		models.ActionBlock:   {models.NotifAccountBlocked, "Account blocked", "%s, your photographer account was blocked by the admin."},
		models.ActionUnblock: {models.NotifAccountUnblocked, "Account unblocked", "%s, your photographer account was unblocked."},
		models.ActionDelete:  {models.NotifAccountDeleted, "Account removed", "%s, your photographer account was removed."},
	},
}
