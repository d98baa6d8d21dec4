package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package is a bookable service offering stored in MongoDB. Packages are
// plain CRUD; they do not go through the review workflow.
type Package struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID      string             `json:"owner_id" bson:"owner_id"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Price        int64              `json:"price" bson:"price"` // minor currency units
	Currency     string             `json:"currency" bson:"currency"`
	Deliverables []string           `json:"deliverables,omitempty" bson:"deliverables,omitempty"`
	DurationHrs  int                `json:"duration_hours,omitempty" bson:"duration_hours,omitempty"`
	Active       bool               `json:"active" bson:"active"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePackageRequest defines the request body for creating a package.
type CreatePackageRequest struct {
	Title        string   `json:"title" validate:"required,min=2,max=120"`
	Description  string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price        int64    `json:"price" validate:"required,min=0"`
	Currency     string   `json:"currency" validate:"required,len=3"`
	Deliverables []string `json:"deliverables,omitempty" validate:"omitempty,dive,min=1,max=120"`
	DurationHrs  int      `json:"duration_hours,omitempty" validate:"omitempty,min=1,max=168"`
}

// UpdatePackageRequest defines the request body for updating a package.
type UpdatePackageRequest struct {
	Title        string   `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	Description  string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price        *int64   `json:"price,omitempty" validate:"omitempty,min=0"`
	Currency     string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	Deliverables []string `json:"deliverables,omitempty" validate:"omitempty,dive,min=1,max=120"`
	DurationHrs  int      `json:"duration_hours,omitempty" validate:"omitempty,min=1,max=168"`
	Active       *bool    `json:"active,omitempty"`
}
