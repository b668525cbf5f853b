package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstitutionRepository handles database operations for institutions
type InstitutionRepository struct {
	db *gorm.DB
}

// NewInstitutionRepository creates a new institution repository
func NewInstitutionRepository(db *gorm.DB) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

// Create creates a new institution
func (r *InstitutionRepository) Create(institution *models.Institution) error {
	return r.db.Create(institution).Error
}

// GetByID retrieves an institution by ID
func (r *InstitutionRepository) GetByID(id uuid.UUID) (*models.Institution, error) {
	var institution models.Institution
	err := r.db.First(&institution, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &institution, nil
}

// GetByName retrieves an institution by name
func (r *InstitutionRepository) GetByName(name string) (*models.Institution, error) {
	var institution models.Institution
	err := r.db.First(&institution, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &institution, nil
}

// GetAll retrieves all institutions with pagination
func (r *InstitutionRepository) GetAll(limit, offset int) ([]models.Institution, int64, error) {
	var institutions []models.Institution
	var total int64

	if err := r.db.Model(&models.Institution{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&institutions).Error
	if err != nil {
		return nil, 0, err
	}

	return institutions, total, nil
}
