package handlers

import (
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"github.com/shotfolio/shotfolio-api/internal/authz"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	studioRepository       repositories.StudioRepository
	photographerRepository repositories.PhotographerRepository
	firebaseAuth           *auth.Client
	jwtSecret              string
	adminEmail             string
	adminPasswordHash      string
}

// NewAuthHandler creates a new AuthHandler. The firebase client may be nil
// when Firebase sign-in is not configured.
func NewAuthHandler(
	studioRepo repositories.StudioRepository,
	photographerRepo repositories.PhotographerRepository,
	firebaseAuthClient *auth.Client,
	jwtSecret, adminEmail, adminPasswordHash string,
) *AuthHandler {
	return &AuthHandler{
		studioRepository:       studioRepo,
		photographerRepository: photographerRepo,
		firebaseAuth:           firebaseAuthClient,
		jwtSecret:              jwtSecret,
		adminEmail:             adminEmail,
		adminPasswordHash:      adminPasswordHash,
	}
}

// RegisterAuthRoutes registers authentication-related routes.
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
	g.POST("/firebase-login", h.FirebaseLogin)
}

// Signup handles studio registration with email and password.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.CreateStudioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	studio := &models.Studio{
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Password:    string(hashedPassword),
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	}
	if err := h.studioRepository.CreateStudio(c.Request().Context(), studio); err != nil {
		return httpError(err)
	}

	token, err := h.generateJWT(studio.ID.Hex(), studio.Email, authz.RoleStudio)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token after signup")
	}

	return respond(c, http.StatusCreated, echo.Map{"token": token, "studio": studio})
}

// SignIn handles email/password authentication for the admin, studios, and
// approved photographers.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// The admin account comes from configuration, not a collection.
	if req.Email == h.adminEmail && h.adminPasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(h.adminPasswordHash), []byte(req.Password)); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		token, err := h.generateJWT(models.TargetAdmin, req.Email, authz.RoleAdmin)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
		}
		return respond(c, http.StatusOK, echo.Map{"token": token, "role": authz.RoleAdmin})
	}

	ctx := c.Request().Context()

	if studio, err := h.studioRepository.GetStudioByEmail(ctx, req.Email); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(studio.Password), []byte(req.Password)) != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		token, err := h.generateJWT(studio.ID.Hex(), studio.Email, authz.RoleStudio)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
		}
		return respond(c, http.StatusOK, echo.Map{"token": token, "role": authz.RoleStudio})
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return httpError(err)
	}

	photographer, err := h.photographerRepository.GetPhotographerByEmail(ctx, req.Email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		return httpError(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(photographer.Password), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	switch photographer.Status {
	case models.StatusApproved:
		// Account is live.
	case models.StatusPending:
		return echo.NewHTTPError(http.StatusForbidden, "Your registration is awaiting review")
	case models.StatusSuspended:
		return echo.NewHTTPError(http.StatusForbidden, "Your account has been blocked")
	default:
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.generateJWT(photographer.ID.Hex(), photographer.Email, authz.RolePhotographer)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}
	return respond(c, http.StatusOK, echo.Map{"token": token, "role": authz.RolePhotographer})
}

// FirebaseLogin verifies a Firebase ID token and issues a local JWT for the
// studio or photographer account registered under the token's email.
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	if h.firebaseAuth == nil {
		return echo.NewHTTPError(http.StatusNotImplemented, "Firebase sign-in is not configured")
	}

	var req models.FirebaseLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.firebaseAuth.VerifyIDToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}
	email, _ := token.Claims["email"].(string)
	if email == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Firebase token carries no email")
	}

	ctx := c.Request().Context()
	if studio, err := h.studioRepository.GetStudioByEmail(ctx, email); err == nil {
		localJWT, err := h.generateJWT(studio.ID.Hex(), studio.Email, authz.RoleStudio)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
		}
		return respond(c, http.StatusOK, echo.Map{"token": localJWT, "role": authz.RoleStudio})
	}

	photographer, err := h.photographerRepository.GetPhotographerByEmail(ctx, email)
	if err != nil || photographer.Status != models.StatusApproved {
		return echo.NewHTTPError(http.StatusUnauthorized, "No active account for this identity")
	}
	localJWT, err := h.generateJWT(photographer.ID.Hex(), photographer.Email, authz.RolePhotographer)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}
	return respond(c, http.StatusOK, echo.Map{"token": localJWT, "role": authz.RolePhotographer})
}

// generateJWT generates a signed token for a verified identity.
func (h *AuthHandler) generateJWT(subjectID, email string, role authz.Role) (string, error) {
	claims := &authz.JwtCustomClaims{
		SubjectID: subjectID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
