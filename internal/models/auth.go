package models

// SignInRequest defines the request body for email/password sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// FirebaseLoginRequest defines the request body for Firebase token sign-in.
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}
