package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TechnologyStackRepository handles database operations for technology stacks
type TechnologyStackRepository struct {
	db *gorm.DB
}

// NewTechnologyStackRepository creates a new technology stack repository
func NewTechnologyStackRepository(db *gorm.DB) *TechnologyStackRepository {
	return &TechnologyStackRepository{db: db}
}

// Create creates a new technology stack
func (r *TechnologyStackRepository) Create(stack *models.TechnologyStack) error {
	return r.db.Create(stack).Error
}

// GetByID retrieves a technology stack by ID
func (r *TechnologyStackRepository) GetByID(id uuid.UUID) (*models.TechnologyStack, error) {
	var stack models.TechnologyStack
	err := r.db.First(&stack, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stack, nil
}

// GetByName retrieves a technology stack by name
func (r *TechnologyStackRepository) GetByName(name string) (*models.TechnologyStack, error) {
	var stack models.TechnologyStack
	err := r.db.First(&stack, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &stack, nil
}

// GetAll retrieves all technology stacks ordered by name
func (r *TechnologyStackRepository) GetAll() ([]models.TechnologyStack, error) {
	var stacks []models.TechnologyStack
	err := r.db.Order("name").Find(&stacks).Error
	if err != nil {
		return nil, err
	}
	return stacks, nil
}
