package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BulkUploadJobRepository handles database operations for bulk upload jobs
type BulkUploadJobRepository struct {
	db *gorm.DB
}

// NewBulkUploadJobRepository creates a new bulk upload job repository
func NewBulkUploadJobRepository(db *gorm.DB) *BulkUploadJobRepository {
	return &BulkUploadJobRepository{db: db}
}

// Create creates a new bulk upload job
func (r *BulkUploadJobRepository) Create(job *models.BulkUploadJob) error {
	return r.db.Create(job).Error
}

// GetByID retrieves a bulk upload job by ID
func (r *BulkUploadJobRepository) GetByID(id uuid.UUID) (*models.BulkUploadJob, error) {
	var job models.BulkUploadJob
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetAll retrieves all bulk upload jobs with pagination, newest first
func (r *BulkUploadJobRepository) GetAll(limit, offset int) ([]models.BulkUploadJob, int64, error) {
	var jobs []models.BulkUploadJob
	var total int64

	if err := r.db.Model(&models.BulkUploadJob{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// SetStatus updates only the status column of a job
func (r *BulkUploadJobRepository) SetStatus(id uuid.UUID, status models.JobStatus) error {
	result := r.db.Model(&models.BulkUploadJob{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateProgress persists the per-row counters and error log. Called after
// every processed row so pollers observe monotonically increasing progress.
func (r *BulkUploadJobRepository) UpdateProgress(id uuid.UUID, processed, successful, failed int, errorLog models.JobErrorLog) error {
	result := r.db.Model(&models.BulkUploadJob{}).Where("id = ?", id).Updates(map[string]interface{}{
		"processed_records":  processed,
		"successful_records": successful,
		"failed_records":     failed,
		"error_log":          errorLog,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Finish moves the job into a terminal status with its final error log
func (r *BulkUploadJobRepository) Finish(id uuid.UUID, status models.JobStatus, errorLog models.JobErrorLog) error {
	result := r.db.Model(&models.BulkUploadJob{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":    status,
		"error_log": errorLog,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
