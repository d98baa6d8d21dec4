package models

import "time"

// Story is a behind-the-scenes shoot story stored in MongoDB. Like galleries,
// the embedded Submission gates homepage placement.
type Story struct {
	Submission  `bson:",inline"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty" bson:"cover_image,omitempty"`
	Images      []string  `json:"images,omitempty" bson:"images,omitempty"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	ShootDate   time.Time `json:"shoot_date,omitempty" bson:"shoot_date,omitempty"`
}

// CreateStoryRequest defines the request body for creating a story.
type CreateStoryRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=120"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=4000"`
	CoverImage  string   `json:"cover_image,omitempty" validate:"omitempty,url"`
	ImageURLs   []string `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
	Location    string   `json:"location,omitempty" validate:"omitempty,max=120"`
	ShootDate   string   `json:"shoot_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateStoryRequest defines the request body for updating a story.
type UpdateStoryRequest struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=4000"`
	CoverImage  string   `json:"cover_image,omitempty" validate:"omitempty,url"`
	ImageURLs   []string `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
	Location    string   `json:"location,omitempty" validate:"omitempty,max=120"`
}
