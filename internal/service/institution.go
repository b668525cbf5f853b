package service

import (
	"errors"
	"fmt"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// InstitutionService handles business logic for institutions
type InstitutionService struct {
	repo      repository.InstitutionRepositoryInterface
	validator *validator.Validate
}

// NewInstitutionService creates a new institution service
func NewInstitutionService(repo repository.InstitutionRepositoryInterface, validator *validator.Validate) *InstitutionService {
	return &InstitutionService{repo: repo, validator: validator}
}

// CreateInstitutionRequest represents the request to create an institution
type CreateInstitutionRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Website string `json:"website,omitempty" validate:"omitempty,url,max=300"`
}

// InstitutionListResponse represents a paginated list of institutions
type InstitutionListResponse struct {
	Institutions []models.Institution `json:"institutions"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
}

// Create creates a new institution
func (s *InstitutionService) Create(req *CreateInstitutionRequest) (*models.Institution, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing institution: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrInstitutionExists
	}

	institution := &models.Institution{Name: req.Name, Website: req.Website}
	if err := s.repo.Create(institution); err != nil {
		return nil, fmt.Errorf("failed to create institution: %w", err)
	}
	return institution, nil
}

// List retrieves institutions with pagination
func (s *InstitutionService) List(page, pageSize int) (*InstitutionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	institutions, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list institutions: %w", err)
	}

	return &InstitutionListResponse{
		Institutions: institutions,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}
