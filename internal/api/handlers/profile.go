package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler handles HTTP requests for profile operations
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// CreateProfile handles POST /profiles
// @Summary Create a new profile
// @Description Register a profile with its platform role
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body service.CreateProfileRequest true "Profile data"
// @Success 201 {object} service.ProfileResponse "Successfully created profile"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Institution not found"
// @Failure 409 {object} ErrorResponse "Profile already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req service.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInstitutionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetProfile handles GET /profiles/:id
// @Summary Get profile by ID
// @Description Get a specific profile by its UUID
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} service.ProfileResponse "Successfully retrieved profile"
// @Failure 400 {object} ErrorResponse "Invalid profile ID"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile ID"})
		return
	}

	profile, err := h.profileService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListProfiles handles GET /profiles
// @Summary List profiles
// @Description List profiles with pagination, optionally filtered by a search query
// @Tags profiles
// @Accept json
// @Produce json
// @Param q query string false "Search query matched against name and email"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ProfileListResponse "Successfully retrieved profiles"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	profiles, err := h.profileService.List(c.Query("q"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// UpdateProfile handles PUT /profiles/:id
// @Summary Update a profile
// @Description Update the mutable fields of a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Param profile body service.UpdateProfileRequest true "Profile data"
// @Success 200 {object} service.ProfileResponse "Successfully updated profile"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles/{id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile ID"})
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) || errors.Is(err, apperrors.ErrInstitutionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ApproveProfile handles POST /profiles/:id/approve
// @Summary Approve a profile
// @Description Move a profile to the approved status
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} map[string]string "Profile approved"
// @Failure 400 {object} ErrorResponse "Invalid profile ID"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles/{id}/approve [post]
func (h *ProfileHandler) ApproveProfile(c *gin.Context) {
	h.setStatus(c, h.profileService.Approve, "approved")
}

// FlagProfile handles POST /profiles/:id/flag
// @Summary Flag a profile
// @Description Move a profile to the flagged status
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} map[string]string "Profile flagged"
// @Failure 400 {object} ErrorResponse "Invalid profile ID"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles/{id}/flag [post]
func (h *ProfileHandler) FlagProfile(c *gin.Context) {
	h.setStatus(c, h.profileService.Flag, "flagged")
}

func (h *ProfileHandler) setStatus(c *gin.Context, op func(uuid.UUID) error, status string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile ID"})
		return
	}

	if err := op(id); err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}
