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

// TechnologyStackService handles business logic for technology stacks
type TechnologyStackService struct {
	repo      repository.TechnologyStackRepositoryInterface
	validator *validator.Validate
}

// NewTechnologyStackService creates a new technology stack service
func NewTechnologyStackService(repo repository.TechnologyStackRepositoryInterface, validator *validator.Validate) *TechnologyStackService {
	return &TechnologyStackService{repo: repo, validator: validator}
}

// CreateTechnologyStackRequest represents the request to create a technology stack
type CreateTechnologyStackRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// Create creates a new technology stack
func (s *TechnologyStackService) Create(req *CreateTechnologyStackRequest) (*models.TechnologyStack, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing stack: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTechStackExists
	}

	stack := &models.TechnologyStack{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(stack); err != nil {
		return nil, fmt.Errorf("failed to create stack: %w", err)
	}
	return stack, nil
}

// List retrieves all technology stacks
func (s *TechnologyStackService) List() ([]models.TechnologyStack, error) {
	stacks, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list stacks: %w", err)
	}
	return stacks, nil
}
