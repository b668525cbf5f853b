package service

import (
	"errors"
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileService handles business logic for profiles
type ProfileService struct {
	repo            repository.ProfileRepositoryInterface
	institutionRepo repository.InstitutionRepositoryInterface
	validator       *validator.Validate
}

// NewProfileService creates a new profile service
func NewProfileService(repo repository.ProfileRepositoryInterface, institutionRepo repository.InstitutionRepositoryInterface, validator *validator.Validate) *ProfileService {
	return &ProfileService{
		repo:            repo,
		institutionRepo: institutionRepo,
		validator:       validator,
	}
}

// CreateProfileRequest represents the request to create a profile
type CreateProfileRequest struct {
	FullName      string      `json:"full_name" validate:"required,max=200"`
	Email         string      `json:"email" validate:"required,email,max=255"`
	Role          models.Role `json:"role" validate:"required,oneof=participant mentor admin organizer moderator"`
	AvatarURL     string      `json:"avatar_url,omitempty" validate:"omitempty,url,max=500"`
	GithubUser    string      `json:"github_username,omitempty" validate:"omitempty,max=100"`
	LinkedinID    string      `json:"linkedin_profile_id,omitempty" validate:"omitempty,max=100"`
	InstitutionID *uuid.UUID  `json:"institution_id,omitempty"`
}

// UpdateProfileRequest represents the request to update a profile.
// Email and role are immutable after registration.
type UpdateProfileRequest struct {
	FullName      string     `json:"full_name,omitempty" validate:"omitempty,max=200"`
	AvatarURL     string     `json:"avatar_url,omitempty" validate:"omitempty,url,max=500"`
	GithubUser    string     `json:"github_username,omitempty" validate:"omitempty,max=100"`
	LinkedinID    string     `json:"linkedin_profile_id,omitempty" validate:"omitempty,max=100"`
	InstitutionID *uuid.UUID `json:"institution_id,omitempty"`
}

// ProfileResponse represents the response for profile operations
type ProfileResponse struct {
	ID            uuid.UUID            `json:"id"`
	FullName      string               `json:"full_name"`
	Email         string               `json:"email"`
	Role          models.Role          `json:"role,omitempty"`
	AvatarURL     string               `json:"avatar_url,omitempty"`
	GithubUser    string               `json:"github_username,omitempty"`
	LinkedinID    string               `json:"linkedin_profile_id,omitempty"`
	InstitutionID *uuid.UUID           `json:"institution_id,omitempty"`
	Institution   *models.Institution  `json:"institution,omitempty"`
	Status        models.ProfileStatus `json:"status"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
}

// ProfileListResponse represents a paginated list of profiles
type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new profile with its role assignment
func (s *ProfileService) Create(req *CreateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProfileExists
	}

	if req.InstitutionID != nil {
		if _, err := s.institutionRepo.GetByID(*req.InstitutionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInstitutionNotFound
			}
			return nil, fmt.Errorf("failed to verify institution: %w", err)
		}
	}

	profile := &models.Profile{
		FullName:      req.FullName,
		Email:         req.Email,
		AvatarURL:     req.AvatarURL,
		GithubUser:    req.GithubUser,
		LinkedinID:    req.LinkedinID,
		InstitutionID: req.InstitutionID,
		Status:        completionStatus(req.GithubUser, req.LinkedinID, req.InstitutionID),
	}
	if err := s.repo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if err := s.repo.AssignRole(profile.ID, req.Role); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	return s.toResponse(profile, req.Role), nil
}

// GetByID retrieves a profile by ID
func (s *ProfileService) GetByID(id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return s.toResponse(profile, roleOf(profile)), nil
}

// GetByEmail retrieves a profile by email
func (s *ProfileService) GetByEmail(email string) (*ProfileResponse, error) {
	profile, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return s.toResponse(profile, roleOf(profile)), nil
}

// List retrieves profiles with pagination, optionally filtered by a search query
func (s *ProfileService) List(query string, page, pageSize int) (*ProfileListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var profiles []models.Profile
	var total int64
	var err error
	if query != "" {
		profiles, total, err = s.repo.Search(query, pageSize, offset)
	} else {
		profiles, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	responses := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *s.toResponse(&profiles[i], "")
	}

	return &ProfileListResponse{
		Profiles: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates the mutable fields of a profile. When the update makes an
// incomplete profile complete, the status moves to pending_approval.
func (s *ProfileService) Update(id uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.AvatarURL != "" {
		profile.AvatarURL = req.AvatarURL
	}
	if req.GithubUser != "" {
		profile.GithubUser = req.GithubUser
	}
	if req.LinkedinID != "" {
		profile.LinkedinID = req.LinkedinID
	}
	if req.InstitutionID != nil {
		if _, err := s.institutionRepo.GetByID(*req.InstitutionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInstitutionNotFound
			}
			return nil, fmt.Errorf("failed to verify institution: %w", err)
		}
		profile.InstitutionID = req.InstitutionID
	}

	// Approved and flagged statuses are moderator decisions; completion
	// only promotes out of the incomplete state.
	if profile.Status == models.ProfileStatusIncomplete {
		profile.Status = completionStatus(profile.GithubUser, profile.LinkedinID, profile.InstitutionID)
	}

	if err := s.repo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.toResponse(profile, roleOf(profile)), nil
}

// Approve moves a profile to the approved status
func (s *ProfileService) Approve(id uuid.UUID) error {
	return s.setStatus(id, models.ProfileStatusApproved)
}

// Flag moves a profile to the flagged status. Flagged profiles remain
// in the system; there is no hard delete.
func (s *ProfileService) Flag(id uuid.UUID) error {
	return s.setStatus(id, models.ProfileStatusFlagged)
}

func (s *ProfileService) setStatus(id uuid.UUID, status models.ProfileStatus) error {
	if err := s.repo.SetStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return fmt.Errorf("failed to set profile status: %w", err)
	}
	return nil
}

// completionStatus derives the status from the completeness of the
// optional profile fields.
func completionStatus(githubUser, linkedinID string, institutionID *uuid.UUID) models.ProfileStatus {
	if githubUser != "" && linkedinID != "" && institutionID != nil {
		return models.ProfileStatusPendingApproval
	}
	return models.ProfileStatusIncomplete
}

func roleOf(profile *models.Profile) models.Role {
	if len(profile.Roles) > 0 {
		return profile.Roles[0].Role
	}
	return ""
}

func (s *ProfileService) toResponse(profile *models.Profile, role models.Role) *ProfileResponse {
	return &ProfileResponse{
		ID:            profile.ID,
		FullName:      profile.FullName,
		Email:         profile.Email,
		Role:          role,
		AvatarURL:     profile.AvatarURL,
		GithubUser:    profile.GithubUser,
		LinkedinID:    profile.LinkedinID,
		InstitutionID: profile.InstitutionID,
		Institution:   profile.Institution,
		Status:        profile.Status,
		CreatedAt:     profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     profile.UpdatedAt.Format(time.RFC3339),
	}
}
