package service

import (
	"errors"
	"fmt"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/identity"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/notify"
	"hackathon-portal-backend/internal/random"
	"hackathon-portal-backend/internal/repository"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const tempPasswordLength = 16

// BulkUploadRow is one record in an onboarding batch
type BulkUploadRow struct {
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	GithubUser      string `json:"github_username,omitempty"`
	LinkedinID      string `json:"linkedin_profile_id,omitempty"`
	InstitutionName string `json:"institution_name,omitempty"`
	// TeamCount applies to mentor batches only
	TeamCount int `json:"team_count,omitempty"`
}

// BulkUploadService orchestrates batch onboarding jobs. Rows are processed
// strictly in order; a failing row is recorded and never aborts the batch.
type BulkUploadService struct {
	jobRepo         repository.BulkUploadJobRepositoryInterface
	profileRepo     repository.ProfileRepositoryInterface
	institutionRepo repository.InstitutionRepositoryInterface
	prefRepo        repository.MentorPreferenceRepositoryInterface
	provider        identity.Provider
	notifier        notify.Notifier
	rand            random.Rand
	defaultCapacity int
	log             *logger.Logger
}

// NewBulkUploadService creates a new bulk upload service
func NewBulkUploadService(jobRepo repository.BulkUploadJobRepositoryInterface, profileRepo repository.ProfileRepositoryInterface, institutionRepo repository.InstitutionRepositoryInterface, prefRepo repository.MentorPreferenceRepositoryInterface, provider identity.Provider, notifier notify.Notifier, rand random.Rand, defaultCapacity int) *BulkUploadService {
	return &BulkUploadService{
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		institutionRepo: institutionRepo,
		prefRepo:        prefRepo,
		provider:        provider,
		notifier:        notifier,
		rand:            rand,
		defaultCapacity: defaultCapacity,
		log:             logger.New(),
	}
}

// Start creates a job for the batch and processes it in the background.
// The returned job is in the pending status; clients poll it by ID.
func (s *BulkUploadService) Start(kind models.BulkUploadKind, rows []BulkUploadRow) (*models.BulkUploadJob, error) {
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyBatch
	}

	job := &models.BulkUploadJob{
		Kind:         kind,
		Status:       models.JobStatusPending,
		TotalRecords: len(rows),
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	go s.Process(job.ID, kind, rows)

	return job, nil
}

// GetJob retrieves a job by ID
func (s *BulkUploadService) GetJob(id uuid.UUID) (*models.BulkUploadJob, error) {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs retrieves jobs with pagination, newest first
func (s *BulkUploadService) ListJobs(page, pageSize int) ([]models.BulkUploadJob, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	jobs, total, err := s.jobRepo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, total, nil
}

// Process runs the batch to completion. Counters and the error log are
// persisted after every row so polling clients see live progress, and
// processed always equals successful plus failed.
func (s *BulkUploadService) Process(jobID uuid.UUID, kind models.BulkUploadKind, rows []BulkUploadRow) {
	if err := s.jobRepo.SetStatus(jobID, models.JobStatusProcessing); err != nil {
		s.log.WithError(err).WithField("job_id", jobID).Error("failed to start job")
		return
	}

	var processed, successful, failed int
	var errorLog models.JobErrorLog

	for _, row := range rows {
		err := s.processRow(kind, row)
		processed++
		if err != nil {
			failed++
			errorLog = append(errorLog, models.JobError{Email: row.Email, Error: err.Error()})
		} else {
			successful++
		}

		if err := s.jobRepo.UpdateProgress(jobID, processed, successful, failed, errorLog); err != nil {
			s.log.WithError(err).WithField("job_id", jobID).Error("failed to persist job progress")
			_ = s.jobRepo.Finish(jobID, models.JobStatusFailed, errorLog)
			return
		}
	}

	// Row failures do not fail the job; the batch completed.
	if err := s.jobRepo.Finish(jobID, models.JobStatusCompleted, errorLog); err != nil {
		s.log.WithError(err).WithField("job_id", jobID).Error("failed to finish job")
	}
}

// processRow onboards one person: credential, profile, role, and for
// mentors their capacity preference.
func (s *BulkUploadService) processRow(kind models.BulkUploadKind, row BulkUploadRow) error {
	if row.FullName == "" {
		return fmt.Errorf("full name is required")
	}
	if err := checkmail.ValidateFormat(row.Email); err != nil {
		return fmt.Errorf("invalid email format")
	}

	existing, err := s.profileRepo.GetByEmail(row.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing profile: %v", err)
	}
	if existing != nil {
		return fmt.Errorf("email already registered")
	}

	if err := s.provider.Register(row.Email, tempPassword(s.rand)); err != nil {
		if errors.Is(err, apperrors.ErrEmailRegistered) {
			return fmt.Errorf("email already registered")
		}
		return fmt.Errorf("failed to register credential: %v", err)
	}

	// An unknown institution name resolves to no institution; the row
	// still onboards and the profile stays incomplete.
	var institutionID *uuid.UUID
	if row.InstitutionName != "" {
		institution, err := s.institutionRepo.GetByName(row.InstitutionName)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to resolve institution: %v", err)
		}
		if institution != nil {
			institutionID = &institution.ID
		}
	}

	profile := &models.Profile{
		FullName:      row.FullName,
		Email:         row.Email,
		GithubUser:    row.GithubUser,
		LinkedinID:    row.LinkedinID,
		InstitutionID: institutionID,
		Status:        completionStatus(row.GithubUser, row.LinkedinID, institutionID),
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return fmt.Errorf("failed to create profile: %v", err)
	}

	role := models.RoleParticipant
	template := "welcome_participant"
	if kind == models.BulkUploadMentors {
		role = models.RoleMentor
		template = "welcome_mentor"
	}
	if err := s.profileRepo.AssignRole(profile.ID, role); err != nil {
		return fmt.Errorf("failed to assign role: %v", err)
	}

	if kind == models.BulkUploadMentors {
		capacity := row.TeamCount
		if capacity <= 0 {
			capacity = s.defaultCapacity
		}
		pref := &models.MentorPreference{ProfileID: profile.ID, TeamCount: capacity}
		if err := s.prefRepo.Upsert(pref); err != nil {
			return fmt.Errorf("failed to save mentor preference: %v", err)
		}
	}

	if s.notifier.Enabled() {
		data := map[string]interface{}{"FullName": row.FullName}
		if err := s.notifier.Send(template, row.Email, data); err != nil {
			s.log.WithError(err).WithField("email", row.Email).Warn("welcome notification failed")
		}
	}

	return nil
}

const tempPasswordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func tempPassword(r random.Rand) string {
	b := make([]byte, tempPasswordLength)
	for i := range b {
		b[i] = tempPasswordAlphabet[r.Intn(len(tempPasswordAlphabet))]
	}
	return string(b)
}
