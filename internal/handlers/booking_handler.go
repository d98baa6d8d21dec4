package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
)

// BookingHandler handles client booking inquiries. Submitting and tracking
// an inquiry needs no account; follow-up is done by the photographer.
type BookingHandler struct {
	bookingRepository      repositories.BookingRepository
	photographerRepository repositories.PhotographerRepository
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingRepo repositories.BookingRepository, photographerRepo repositories.PhotographerRepository) *BookingHandler {
	return &BookingHandler{
		bookingRepository:      bookingRepo,
		photographerRepository: photographerRepo,
	}
}

// RegisterPublicBookingRoutes registers the routes that need no token.
func (h *BookingHandler) RegisterPublicBookingRoutes(g *echo.Group) {
	g.POST("", h.CreateBooking)
	g.GET("/track/:reference", h.GetBookingByReference)
}

// RegisterBookingRoutes registers the authenticated routes.
func (h *BookingHandler) RegisterBookingRoutes(g *echo.Group) {
	g.GET("", h.ListForPhotographer)
	g.PUT("/:id/status", h.UpdateBookingStatus)
}

// CreateBooking records a client inquiry against an approved photographer
// and returns the reference code the client quotes later.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	photographer, err := h.photographerRepository.GetPhotographerByID(ctx, req.PhotographerID)
	if err != nil {
		return httpError(err)
	}
	if photographer.Status != models.StatusApproved {
		return echo.NewHTTPError(http.StatusNotFound, "Photographer not found")
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid event_date format")
	}

	booking := &models.BookingRequest{
		Reference:      uuid.NewString(),
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientMobile:   req.ClientMobile,
		PhotographerID: req.PhotographerID,
		PackageID:      req.PackageID,
		EventDate:      eventDate,
		Venue:          req.Venue,
		Message:        req.Message,
	}
	if err := h.bookingRepository.CreateBooking(ctx, booking); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusCreated, booking)
}

// GetBookingByReference lets a client check an inquiry by reference code.
func (h *BookingHandler) GetBookingByReference(c echo.Context) error {
	booking, err := h.bookingRepository.GetBookingByReference(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, booking)
}

// ListForPhotographer returns the authenticated photographer's inquiries,
// optionally filtered by status.
func (h *BookingHandler) ListForPhotographer(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}
	status := models.BookingStatus(c.QueryParam("status"))
	bookings, err := h.bookingRepository.GetBookingsByPhotographer(c.Request().Context(), auth.SubjectID, status)
	if err != nil {
		return httpError(err)
	}
	if bookings == nil {
		bookings = []models.BookingRequest{}
	}
	return respond(c, http.StatusOK, bookings)
}

// UpdateBookingStatus moves an inquiry through its follow-up states. Only
// the photographer it addresses, or the admin, may move it.
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}

	var req models.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	booking, err := h.bookingRepository.GetBookingByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if !auth.IsAdmin() && booking.PhotographerID != auth.SubjectID {
		return echo.NewHTTPError(http.StatusNotFound, "Booking request not found")
	}

	if err := h.bookingRepository.UpdateBookingStatus(ctx, booking.ID.Hex(), req.Status); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, echo.Map{"status": req.Status})
}
