package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by ID with its institution and roles
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("Institution").Preload("Roles").First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("Institution").Preload("Roles").First(&profile, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetAll retrieves all profiles with pagination
func (r *ProfileRepository) GetAll(limit, offset int) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	var total int64

	if err := r.db.Model(&models.Profile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Institution").
		Order("created_at").
		Limit(limit).Offset(offset).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// Search retrieves profiles matching the query by name or email with pagination
func (r *ProfileRepository) Search(query string, limit, offset int) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	var total int64

	searchPattern := "%" + query + "%"
	q := r.db.Model(&models.Profile{}).
		Where("full_name ILIKE ? OR email ILIKE ?", searchPattern, searchPattern)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at").Limit(limit).Offset(offset).Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// Update updates a profile
func (r *ProfileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// SetStatus updates only the status column of a profile
func (r *ProfileRepository) SetStatus(id uuid.UUID, status models.ProfileStatus) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AssignRole creates or replaces the role assignment for a profile
func (r *ProfileRepository) AssignRole(profileID uuid.UUID, role models.Role) error {
	assignment := models.RoleAssignment{
		ProfileID: profileID,
		Role:      role,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(&assignment).Error
}

// GetRole retrieves the role assigned to a profile
func (r *ProfileRepository) GetRole(profileID uuid.UUID) (models.Role, error) {
	var assignment models.RoleAssignment
	err := r.db.First(&assignment, "profile_id = ?", profileID).Error
	if err != nil {
		return "", err
	}
	return assignment.Role, nil
}

// GetRoleByEmail retrieves the role for the profile registered under email
func (r *ProfileRepository) GetRoleByEmail(email string) (models.Role, error) {
	var assignment models.RoleAssignment
	err := r.db.
		Joins("JOIN profiles ON profiles.id = user_roles.profile_id").
		Where("profiles.email = ?", email).
		First(&assignment).Error
	if err != nil {
		return "", err
	}
	return assignment.Role, nil
}
