package handlers

import (
	"errors"
	"net/http"

	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler handles HTTP requests for session scheduling
type SessionHandler struct {
	sessionService service.SessionServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService service.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// CancelBookingRequest represents the request to cancel a booking
type CancelBookingRequest struct {
	ProfileID uuid.UUID `json:"profile_id" binding:"required"`
}

// CreateTemplate handles POST /sessions/templates
// @Summary Create availability template
// @Description Create a weekly availability template and its bookable slot
// @Tags sessions
// @Accept json
// @Produce json
// @Param template body service.CreateTemplateRequest true "Template data"
// @Success 201 {object} models.SessionTemplate "Template created"
// @Failure 400 {object} ErrorResponse "Invalid request body or time range"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/templates [post]
func (h *SessionHandler) CreateTemplate(c *gin.Context) {
	var req service.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.sessionService.CreateTemplate(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrTimeRangeInvalid) || errors.Is(err, apperrors.ErrNotAMentor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, template)
}

// ListAvailabilities handles GET /sessions/mentors/:id/availabilities
// @Summary List mentor availabilities
// @Description List a mentor's bookable slots
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Mentor profile ID (UUID)"
// @Success 200 {array} models.SessionAvailability "Availabilities"
// @Failure 400 {object} ErrorResponse "Invalid profile ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/mentors/{id}/availabilities [get]
func (h *SessionHandler) ListAvailabilities(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile ID"})
		return
	}

	availabilities, err := h.sessionService.ListAvailabilities(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, availabilities)
}

// BookSession handles POST /sessions/bookings
// @Summary Book a session
// @Description Claim an availability slot for a concrete date
// @Tags sessions
// @Accept json
// @Produce json
// @Param booking body service.BookSessionRequest true "Booking data"
// @Success 201 {object} models.SessionBooking "Booking confirmed"
// @Failure 400 {object} ErrorResponse "Invalid request body or weekday mismatch"
// @Failure 404 {object} ErrorResponse "Availability not found"
// @Failure 409 {object} ErrorResponse "Slot already booked for this date"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/bookings [post]
func (h *SessionHandler) BookSession(c *gin.Context) {
	var req service.BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.sessionService.Book(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAvailabilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrWeekdayMismatch) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// CancelBooking handles POST /sessions/bookings/:id/cancel
// @Summary Cancel a booking
// @Description Cancel a booking, freeing the slot for rebooking
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Param cancel body CancelBookingRequest true "Profile cancelling"
// @Success 200 {object} map[string]string "Booking cancelled"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not the booking owner"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/bookings/{id}/cancel [post]
func (h *SessionHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessionService.Cancel(id, req.ProfileID); err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListBookings handles GET /sessions/profiles/:id/bookings
// @Summary List bookings for a profile
// @Description List all bookings made by a profile
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {array} models.SessionBooking "Bookings"
// @Failure 400 {object} ErrorResponse "Invalid profile ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/profiles/{id}/bookings [get]
func (h *SessionHandler) ListBookings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile ID"})
		return
	}

	bookings, err := h.sessionService.ListBookings(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListMentorBookings handles GET /sessions/mentors/:id/bookings
// @Summary List bookings for a mentor
// @Description List all bookings against a mentor's slots
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Mentor profile ID (UUID)"
// @Success 200 {array} models.SessionBooking "Bookings"
// @Failure 400 {object} ErrorResponse "Invalid profile ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sessions/mentors/{id}/bookings [get]
func (h *SessionHandler) ListMentorBookings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile ID"})
		return
	}

	bookings, err := h.sessionService.ListMentorBookings(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
