package handlers

import (
	"errors"
	"net/http"

	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MentorHandler handles HTTP requests for mentor preferences and assignment
type MentorHandler struct {
	assignmentService service.MentorAssignmentServiceInterface
	provisionService  service.RepoProvisionServiceInterface
}

// NewMentorHandler creates a new mentor handler
func NewMentorHandler(assignmentService service.MentorAssignmentServiceInterface, provisionService service.RepoProvisionServiceInterface) *MentorHandler {
	return &MentorHandler{
		assignmentService: assignmentService,
		provisionService:  provisionService,
	}
}

// ManualAssignRequest represents the request to assign a specific mentor
type ManualAssignRequest struct {
	MentorID uuid.UUID `json:"mentor_id" binding:"required"`
}

// SetPreference handles PUT /mentors/preference
// @Summary Set mentor preference
// @Description Set a mentor's concurrent-team capacity and preferred stacks
// @Tags mentors
// @Accept json
// @Produce json
// @Param preference body service.SetPreferenceRequest true "Preference data"
// @Success 200 {object} map[string]string "Preference saved"
// @Failure 400 {object} ErrorResponse "Invalid request body or not a mentor"
// @Failure 404 {object} ErrorResponse "Profile or stack not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /mentors/preference [put]
func (h *MentorHandler) SetPreference(c *gin.Context) {
	var req service.SetPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.assignmentService.SetPreference(&req); err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) || errors.Is(err, apperrors.ErrTechStackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotAMentor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// GetPreference handles GET /mentors/:id/preference
// @Summary Get mentor preference
// @Description Get a mentor's capacity and preferred stacks
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path string true "Mentor profile ID (UUID)"
// @Success 200 {object} models.MentorPreference "Preference"
// @Failure 400 {object} ErrorResponse "Invalid profile ID"
// @Failure 404 {object} ErrorResponse "Preference not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /mentors/{id}/preference [get]
func (h *MentorHandler) GetPreference(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile ID"})
		return
	}

	pref, err := h.assignmentService.GetPreference(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPreferenceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pref)
}

// EligibleMentors handles GET /teams/:id/mentors/eligible
// @Summary List eligible mentors
// @Description List mentors preferring the team's stack that still have capacity
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} service.EligibleMentorResponse "Eligible mentors"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/mentors/eligible [get]
func (h *MentorHandler) EligibleMentors(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	mentors, err := h.assignmentService.EligibleMentors(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mentors)
}

// AutoAssign handles POST /teams/:id/mentors/auto-assign
// @Summary Auto-assign a mentor
// @Description Assign the eligible mentor with the most remaining capacity
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.EligibleMentorResponse "Assigned mentor"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "No eligible mentor"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/mentors/auto-assign [post]
func (h *MentorHandler) AutoAssign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	mentor, err := h.assignmentService.AutoAssign(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNoEligibleMentor) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mentor)
}

// ManualAssign handles POST /teams/:id/mentors/assign
// @Summary Manually assign a mentor
// @Description Assign a specific mentor to the team, bypassing the capacity check
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param assignment body ManualAssignRequest true "Mentor to assign"
// @Success 200 {object} map[string]string "Mentor assigned"
// @Failure 400 {object} ErrorResponse "Invalid request body or not a mentor"
// @Failure 404 {object} ErrorResponse "Team or profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/mentors/assign [post]
func (h *MentorHandler) ManualAssign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req ManualAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.assignmentService.ManualAssign(id, req.MentorID); err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) || errors.Is(err, apperrors.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotAMentor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "assigned"})
}

// ProvisionRepository handles POST /teams/:id/repository
// @Summary Provision a team repository
// @Description Create a GitHub repository for the team and invite members
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.ProvisionResult "Repository provisioned"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Repository already exists"
// @Failure 503 {object} ErrorResponse "Provisioning not configured"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/repository [post]
func (h *MentorHandler) ProvisionRepository(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	result, err := h.provisionService.Provision(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrRepoNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
