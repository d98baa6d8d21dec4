package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a photography category lookup record (wedding, portrait, ...).
type Category struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
	Slug string             `json:"slug" bson:"slug"`
}

// City is a serviced-city lookup record.
type City struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
	Slug string             `json:"slug" bson:"slug"`
}

// CreateLookupRequest defines the request body for adding a category or city.
type CreateLookupRequest struct {
	Name string `json:"name" validate:"required,min=2,max=60"`
	Slug string `json:"slug" validate:"required,min=2,max=60,lowercase"`
}
