package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Studio is a studio account and public profile stored in MongoDB. Studios
// sign up directly and are not subject to the review workflow.
type Studio struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Mobile      string             `json:"mobile" bson:"mobile"`
	Password    string             `json:"-" bson:"password"`
	City        string             `json:"city,omitempty" bson:"city,omitempty"`
	Address     string             `json:"address,omitempty" bson:"address,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	LogoURL     string             `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateStudioRequest defines the request body for studio signup.
type CreateStudioRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=80"`
	Email       string `json:"email" validate:"required,email"`
	Mobile      string `json:"mobile" validate:"required,min=7,max=20"`
	Password    string `json:"password" validate:"required,min=8"`
	City        string `json:"city,omitempty" validate:"omitempty,max=60"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	LogoURL     string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

// UpdateStudioRequest defines the request body for studio profile updates.
type UpdateStudioRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	Mobile      string `json:"mobile,omitempty" validate:"omitempty,min=7,max=20"`
	City        string `json:"city,omitempty" validate:"omitempty,max=60"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	LogoURL     string `json:"logo_url,omitempty" validate:"omitempty,url"`
}
