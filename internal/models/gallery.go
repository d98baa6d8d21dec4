package models

import "time"

// GalleryImage is a single image in a gallery.
type GalleryImage struct {
	ID        string    `json:"id" bson:"id"`
	URL       string    `json:"url" bson:"url"`
	Caption   string    `json:"caption,omitempty" bson:"caption,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Gallery is a photographer's image collection stored in MongoDB. The
// embedded Submission carries the review state that controls homepage
// placement.
type Gallery struct {
	Submission  `bson:",inline"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Category    string         `json:"category,omitempty" bson:"category,omitempty"`
	City        string         `json:"city,omitempty" bson:"city,omitempty"`
	CoverImage  string         `json:"cover_image,omitempty" bson:"cover_image,omitempty"`
	Images      []GalleryImage `json:"images,omitempty" bson:"images,omitempty"`
	Tags        []string       `json:"tags,omitempty" bson:"tags,omitempty"`
}

// CreateGalleryRequest defines the request body for creating a gallery.
type CreateGalleryRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=120"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    string   `json:"category,omitempty" validate:"omitempty,max=60"`
	City        string   `json:"city,omitempty" validate:"omitempty,max=60"`
	CoverImage  string   `json:"cover_image,omitempty" validate:"omitempty,url"`
	ImageURLs   []string `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=40"`
}

// UpdateGalleryRequest defines the request body for updating a gallery.
type UpdateGalleryRequest struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    string   `json:"category,omitempty" validate:"omitempty,max=60"`
	City        string   `json:"city,omitempty" validate:"omitempty,max=60"`
	CoverImage  string   `json:"cover_image,omitempty" validate:"omitempty,url"`
	ImageURLs   []string `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=40"`
}
