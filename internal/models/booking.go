package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatus tracks a booking request through the studio's follow-up.
type BookingStatus string

const (
	BookingNew       BookingStatus = "new"
	BookingContacted BookingStatus = "contacted"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDeclined  BookingStatus = "declined"
	BookingClosed    BookingStatus = "closed"
)

// BookingRequest is a client's inquiry stored in the requests collection.
// Clients are not authenticated; the reference code is what they quote in
// follow-up conversations.
type BookingRequest struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Reference      string             `json:"reference" bson:"reference"`
	ClientName     string             `json:"client_name" bson:"client_name"`
	ClientEmail    string             `json:"client_email" bson:"client_email"`
	ClientMobile   string             `json:"client_mobile,omitempty" bson:"client_mobile,omitempty"`
	PhotographerID string             `json:"photographer_id" bson:"photographer_id"`
	PackageID      string             `json:"package_id,omitempty" bson:"package_id,omitempty"`
	EventDate      time.Time          `json:"event_date" bson:"event_date"`
	Venue          string             `json:"venue,omitempty" bson:"venue,omitempty"`
	Message        string             `json:"message,omitempty" bson:"message,omitempty"`
	Status         BookingStatus      `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateBookingRequest defines the request body for submitting a booking
// inquiry.
type CreateBookingRequest struct {
	ClientName     string `json:"client_name" validate:"required,min=2,max=80"`
	ClientEmail    string `json:"client_email" validate:"required,email"`
	ClientMobile   string `json:"client_mobile,omitempty" validate:"omitempty,min=7,max=20"`
	PhotographerID string `json:"photographer_id" validate:"required"`
	PackageID      string `json:"package_id,omitempty"`
	EventDate      string `json:"event_date" validate:"required,datetime=2006-01-02"`
	Venue          string `json:"venue,omitempty" validate:"omitempty,max=200"`
	Message        string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

// UpdateBookingStatusRequest defines the request body for moving a booking
// request through its follow-up states.
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" validate:"required,oneof=contacted confirmed declined closed"`
}
