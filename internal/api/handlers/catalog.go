package handlers

import (
	"net/http"
	"strconv"

	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for institutions and technology stacks
type CatalogHandler struct {
	institutionService *service.InstitutionService
	stackService       *service.TechnologyStackService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(institutionService *service.InstitutionService, stackService *service.TechnologyStackService) *CatalogHandler {
	return &CatalogHandler{
		institutionService: institutionService,
		stackService:       stackService,
	}
}

// CreateInstitution handles POST /institutions
// @Summary Create an institution
// @Description Create a new institution
// @Tags catalog
// @Accept json
// @Produce json
// @Param institution body service.CreateInstitutionRequest true "Institution data"
// @Success 201 {object} models.Institution "Institution created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Institution already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /institutions [post]
func (h *CatalogHandler) CreateInstitution(c *gin.Context) {
	var req service.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	institution, err := h.institutionService.Create(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, institution)
}

// ListInstitutions handles GET /institutions
// @Summary List institutions
// @Description List institutions with pagination
// @Tags catalog
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.InstitutionListResponse "Institutions"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /institutions [get]
func (h *CatalogHandler) ListInstitutions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	institutions, err := h.institutionService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, institutions)
}

// CreateTechnologyStack handles POST /tech-stacks
// @Summary Create a technology stack
// @Description Create a new technology stack
// @Tags catalog
// @Accept json
// @Produce json
// @Param stack body service.CreateTechnologyStackRequest true "Stack data"
// @Success 201 {object} models.TechnologyStack "Stack created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Stack already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tech-stacks [post]
func (h *CatalogHandler) CreateTechnologyStack(c *gin.Context) {
	var req service.CreateTechnologyStackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stack, err := h.stackService.Create(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, stack)
}

// ListTechnologyStacks handles GET /tech-stacks
// @Summary List technology stacks
// @Description List all technology stacks
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {array} models.TechnologyStack "Stacks"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tech-stacks [get]
func (h *CatalogHandler) ListTechnologyStacks(c *gin.Context) {
	stacks, err := h.stackService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stacks)
}
