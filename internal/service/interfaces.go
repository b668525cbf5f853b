package service

import (
	"context"

	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	Create(req *CreateProfileRequest) (*ProfileResponse, error)
	GetByID(id uuid.UUID) (*ProfileResponse, error)
	GetByEmail(email string) (*ProfileResponse, error)
	List(query string, page, pageSize int) (*ProfileListResponse, error)
	Update(id uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error)
	Approve(id uuid.UUID) error
	Flag(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	List(status models.TeamStatus, page, pageSize int) (*TeamListResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	SetStatus(id uuid.UUID, status models.TeamStatus) error
	Join(code string, profileID uuid.UUID) (*TeamResponse, error)
	Leave(teamID, profileID uuid.UUID) error
}

// MentorAssignmentServiceInterface defines the interface for mentor assignment service
type MentorAssignmentServiceInterface interface {
	SetPreference(req *SetPreferenceRequest) error
	GetPreference(profileID uuid.UUID) (*models.MentorPreference, error)
	EligibleMentors(teamID uuid.UUID) ([]EligibleMentorResponse, error)
	AutoAssign(teamID uuid.UUID) (*EligibleMentorResponse, error)
	ManualAssign(teamID, mentorID uuid.UUID) error
}

// BulkUploadServiceInterface defines the interface for bulk upload service
type BulkUploadServiceInterface interface {
	Start(kind models.BulkUploadKind, rows []BulkUploadRow) (*models.BulkUploadJob, error)
	GetJob(id uuid.UUID) (*models.BulkUploadJob, error)
	ListJobs(page, pageSize int) ([]models.BulkUploadJob, int64, error)
}

// JobWatcherInterface defines the interface for the job watcher
type JobWatcherInterface interface {
	Watch(ctx context.Context, jobID uuid.UUID) (<-chan JobSnapshot, error)
}

// RepoProvisionServiceInterface defines the interface for repository provisioning
type RepoProvisionServiceInterface interface {
	Provision(ctx context.Context, teamID uuid.UUID) (*ProvisionResult, error)
}

// SessionServiceInterface defines the interface for session service
type SessionServiceInterface interface {
	CreateTemplate(req *CreateTemplateRequest) (*models.SessionTemplate, error)
	ListTemplates(mentorID uuid.UUID) ([]models.SessionTemplate, error)
	ListAvailabilities(mentorID uuid.UUID) ([]models.SessionAvailability, error)
	Book(req *BookSessionRequest) (*models.SessionBooking, error)
	Cancel(bookingID, profileID uuid.UUID) error
	ListBookings(profileID uuid.UUID) ([]models.SessionBooking, error)
	ListMentorBookings(mentorID uuid.UUID) ([]models.SessionBooking, error)
}
