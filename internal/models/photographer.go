package models

// Photographer is a photographer account and public profile stored in
// MongoDB. Registration is itself a submission: the account stays pending
// until the admin approves it, and block/unblock suspend and restore it.
type Photographer struct {
	Submission  `bson:",inline"`
	Email       string   `json:"email" bson:"email"`
	Mobile      string   `json:"mobile" bson:"mobile"`
	Password    string   `json:"-" bson:"password"`
	City        string   `json:"city,omitempty" bson:"city,omitempty"`
	Bio         string   `json:"bio,omitempty" bson:"bio,omitempty"`
	AvatarURL   string   `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Specialties []string `json:"specialties,omitempty" bson:"specialties,omitempty"`
}

// RegisterPhotographerRequest defines the request body for photographer
// registration. Email and mobile must be unique across photographers and
// studios.
type RegisterPhotographerRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=80"`
	Email       string   `json:"email" validate:"required,email"`
	Mobile      string   `json:"mobile" validate:"required,min=7,max=20"`
	Password    string   `json:"password" validate:"required,min=8"`
	City        string   `json:"city,omitempty" validate:"omitempty,max=60"`
	Bio         string   `json:"bio,omitempty" validate:"omitempty,max=2000"`
	AvatarURL   string   `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Specialties []string `json:"specialties,omitempty" validate:"omitempty,dive,min=1,max=40"`
}

// UpdatePhotographerRequest defines the request body for profile updates.
type UpdatePhotographerRequest struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	Mobile      string   `json:"mobile,omitempty" validate:"omitempty,min=7,max=20"`
	City        string   `json:"city,omitempty" validate:"omitempty,max=60"`
	Bio         string   `json:"bio,omitempty" validate:"omitempty,max=2000"`
	AvatarURL   string   `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Specialties []string `json:"specialties,omitempty" validate:"omitempty,dive,min=1,max=40"`
}
