package repository

import (
	"time"

	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByID(id uuid.UUID) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetAll(limit, offset int) ([]models.Profile, int64, error)
	Search(query string, limit, offset int) ([]models.Profile, int64, error)
	Update(profile *models.Profile) error
	SetStatus(id uuid.UUID, status models.ProfileStatus) error
	AssignRole(profileID uuid.UUID, role models.Role) error
	GetRole(profileID uuid.UUID) (models.Role, error)
	GetRoleByEmail(email string) (models.Role, error)
}

// InstitutionRepositoryInterface defines the interface for institution repository operations
type InstitutionRepositoryInterface interface {
	Create(institution *models.Institution) error
	GetByID(id uuid.UUID) (*models.Institution, error)
	GetByName(name string) (*models.Institution, error)
	GetAll(limit, offset int) ([]models.Institution, int64, error)
}

// TechnologyStackRepositoryInterface defines the interface for technology stack repository operations
type TechnologyStackRepositoryInterface interface {
	Create(stack *models.TechnologyStack) error
	GetByID(id uuid.UUID) (*models.TechnologyStack, error)
	GetByName(name string) (*models.TechnologyStack, error)
	GetAll() ([]models.TechnologyStack, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByJoinCode(code string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	GetByStatus(status models.TeamStatus, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	SetStatus(id uuid.UUID, status models.TeamStatus) error
	AssignMentor(teamID, mentorID uuid.UUID) error
	AddMember(member *models.TeamMember) error
	RemoveMember(teamID, profileID uuid.UUID) error
	GetMembers(teamID uuid.UUID) ([]models.TeamMember, error)
	MemberCount(teamID uuid.UUID) (int64, error)
	GetMembershipByProfile(profileID uuid.UUID) (*models.TeamMember, error)
	CountByMentor(mentorID uuid.UUID) (int64, error)
}

// MentorPreferenceRepositoryInterface defines the interface for mentor preference repository operations
type MentorPreferenceRepositoryInterface interface {
	Upsert(pref *models.MentorPreference) error
	GetByProfileID(profileID uuid.UUID) (*models.MentorPreference, error)
	ReplaceStacks(profileID uuid.UUID, stackIDs []uuid.UUID) error
	CandidatesForStack(stackID uuid.UUID) ([]models.MentorCandidate, error)
}

// BulkUploadJobRepositoryInterface defines the interface for bulk upload job repository operations
type BulkUploadJobRepositoryInterface interface {
	Create(job *models.BulkUploadJob) error
	GetByID(id uuid.UUID) (*models.BulkUploadJob, error)
	GetAll(limit, offset int) ([]models.BulkUploadJob, int64, error)
	SetStatus(id uuid.UUID, status models.JobStatus) error
	UpdateProgress(id uuid.UUID, processed, successful, failed int, errorLog models.JobErrorLog) error
	Finish(id uuid.UUID, status models.JobStatus, errorLog models.JobErrorLog) error
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	CreateTemplate(template *models.SessionTemplate) error
	GetTemplateByID(id uuid.UUID) (*models.SessionTemplate, error)
	ListTemplates(mentorID uuid.UUID) ([]models.SessionTemplate, error)
	CreateAvailability(availability *models.SessionAvailability) error
	GetAvailabilityByID(id uuid.UUID) (*models.SessionAvailability, error)
	ListAvailabilities(mentorID uuid.UUID) ([]models.SessionAvailability, error)
	CreateBooking(booking *models.SessionBooking) error
	GetBookingByID(id uuid.UUID) (*models.SessionBooking, error)
	GetConfirmedBooking(availabilityID uuid.UUID, date time.Time) (*models.SessionBooking, error)
	CancelBooking(id uuid.UUID) error
	ListBookingsByProfile(profileID uuid.UUID) ([]models.SessionBooking, error)
	ListBookingsByMentor(mentorID uuid.UUID) ([]models.SessionBooking, error)
}
