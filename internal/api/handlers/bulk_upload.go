package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BulkUploadHandler handles HTTP requests for batch onboarding jobs
type BulkUploadHandler struct {
	uploadService service.BulkUploadServiceInterface
	watcher       service.JobWatcherInterface
}

// NewBulkUploadHandler creates a new bulk upload handler
func NewBulkUploadHandler(uploadService service.BulkUploadServiceInterface, watcher service.JobWatcherInterface) *BulkUploadHandler {
	return &BulkUploadHandler{
		uploadService: uploadService,
		watcher:       watcher,
	}
}

// BulkUploadRequest represents an onboarding batch
type BulkUploadRequest struct {
	Rows []service.BulkUploadRow `json:"rows" binding:"required"`
}

// JobListResponse represents a paginated list of jobs
type JobListResponse struct {
	Jobs     []models.BulkUploadJob `json:"jobs"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// UploadParticipants handles POST /uploads/participants
// @Summary Upload a participant batch
// @Description Start a background job onboarding the given participants
// @Tags uploads
// @Accept json
// @Produce json
// @Param batch body BulkUploadRequest true "Participant rows"
// @Success 202 {object} models.BulkUploadJob "Job accepted"
// @Failure 400 {object} ErrorResponse "Invalid or empty batch"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /uploads/participants [post]
func (h *BulkUploadHandler) UploadParticipants(c *gin.Context) {
	h.start(c, models.BulkUploadParticipants)
}

// UploadMentors handles POST /uploads/mentors
// @Summary Upload a mentor batch
// @Description Start a background job onboarding the given mentors
// @Tags uploads
// @Accept json
// @Produce json
// @Param batch body BulkUploadRequest true "Mentor rows"
// @Success 202 {object} models.BulkUploadJob "Job accepted"
// @Failure 400 {object} ErrorResponse "Invalid or empty batch"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /uploads/mentors [post]
func (h *BulkUploadHandler) UploadMentors(c *gin.Context) {
	h.start(c, models.BulkUploadMentors)
}

func (h *BulkUploadHandler) start(c *gin.Context, kind models.BulkUploadKind) {
	var req BulkUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.uploadService.Start(kind, req.Rows)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyBatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, job)
}

// GetJob handles GET /uploads/jobs/:id
// @Summary Get job progress
// @Description Get the live progress counters of a bulk upload job
// @Tags uploads
// @Accept json
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 200 {object} models.BulkUploadJob "Job state"
// @Failure 400 {object} ErrorResponse "Invalid job ID"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /uploads/jobs/{id} [get]
func (h *BulkUploadHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job ID"})
		return
	}

	job, err := h.uploadService.GetJob(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobs handles GET /uploads/jobs
// @Summary List jobs
// @Description List bulk upload jobs, newest first
// @Tags uploads
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} JobListResponse "Jobs"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /uploads/jobs [get]
func (h *BulkUploadHandler) ListJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	jobs, total, err := h.uploadService.ListJobs(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, JobListResponse{
		Jobs:     jobs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// WatchJob handles GET /uploads/jobs/:id/watch
// @Summary Stream job progress
// @Description Stream progress snapshots as server-sent events until the job finishes
// @Tags uploads
// @Produce text/event-stream
// @Param id path string true "Job ID (UUID)"
// @Success 200 {object} service.JobSnapshot "Snapshot stream"
// @Failure 400 {object} ErrorResponse "Invalid job ID"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /uploads/jobs/{id}/watch [get]
func (h *BulkUploadHandler) WatchJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job ID"})
		return
	}

	snapshots, err := h.watcher.Watch(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		snapshot, ok := <-snapshots
		if !ok {
			return false
		}
		c.SSEvent("progress", snapshot)
		return true
	})
}
