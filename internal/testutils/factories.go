package testutils

import (
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with default values
func (f *ProfileFactory) Create() *models.Profile {
	id := uuid.New()
	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:   "Jane Doe",
		Email:      fmt.Sprintf("jane.%s@test.local", id.String()[:8]),
		GithubUser: "janedoe",
		LinkedinID: "jane-doe",
		Status:     models.ProfileStatusApproved,
	}
}

// WithEmail sets a custom email for the profile
func (f *ProfileFactory) WithEmail(email string) *models.Profile {
	profile := f.Create()
	profile.Email = email
	return profile
}

// WithStatus sets a custom status for the profile
func (f *ProfileFactory) WithStatus(status models.ProfileStatus) *models.Profile {
	profile := f.Create()
	profile.Status = status
	return profile
}

// WithInstitution sets the institution ID for the profile
func (f *ProfileFactory) WithInstitution(institutionID uuid.UUID) *models.Profile {
	profile := f.Create()
	profile.InstitutionID = &institutionID
	return profile
}

// Incomplete creates a profile missing its social handles
func (f *ProfileFactory) Incomplete() *models.Profile {
	profile := f.Create()
	profile.GithubUser = ""
	profile.LinkedinID = ""
	profile.InstitutionID = nil
	profile.Status = models.ProfileStatusIncomplete
	return profile
}

// InstitutionFactory provides methods to create test Institution data
type InstitutionFactory struct{}

// NewInstitutionFactory creates a new InstitutionFactory
func NewInstitutionFactory() *InstitutionFactory {
	return &InstitutionFactory{}
}

// Create creates a test Institution with default values
func (f *InstitutionFactory) Create() *models.Institution {
	id := uuid.New()
	return &models.Institution{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test University " + id.String()[:8],
		Website: "https://test-university.example.edu",
	}
}

// WithName sets a custom name for the institution
func (f *InstitutionFactory) WithName(name string) *models.Institution {
	institution := f.Create()
	institution.Name = name
	return institution
}

// TechnologyStackFactory provides methods to create test TechnologyStack data
type TechnologyStackFactory struct{}

// NewTechnologyStackFactory creates a new TechnologyStackFactory
func NewTechnologyStackFactory() *TechnologyStackFactory {
	return &TechnologyStackFactory{}
}

// Create creates a test TechnologyStack with default values
func (f *TechnologyStackFactory) Create() *models.TechnologyStack {
	id := uuid.New()
	return &models.TechnologyStack{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "stack-" + id.String()[:8],
		Description: "A test technology stack",
	}
}

// WithName sets a custom name for the stack
func (f *TechnologyStackFactory) WithName(name string) *models.TechnologyStack {
	stack := f.Create()
	stack.Name = name
	return stack
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Team",
		Description: "A test team",
		TechStackID: uuid.New(),
		JoinCode:    joinCodeFromID(id),
		Status:      models.TeamStatusOpen,
		LeaderID:    uuid.New(),
	}
}

// WithStack sets the tech stack ID for the team
func (f *TeamFactory) WithStack(stackID uuid.UUID) *models.Team {
	team := f.Create()
	team.TechStackID = stackID
	return team
}

// WithLeader sets the leader ID for the team
func (f *TeamFactory) WithLeader(leaderID uuid.UUID) *models.Team {
	team := f.Create()
	team.LeaderID = leaderID
	return team
}

// WithStatus sets a custom status for the team
func (f *TeamFactory) WithStatus(status models.TeamStatus) *models.Team {
	team := f.Create()
	team.Status = status
	return team
}

// WithMentor sets the mentor ID for the team
func (f *TeamFactory) WithMentor(mentorID uuid.UUID) *models.Team {
	team := f.Create()
	team.MentorID = &mentorID
	return team
}

// joinCodeFromID derives a unique 8-char code from the team ID so factory
// teams never collide on the join code unique index.
func joinCodeFromID(id uuid.UUID) string {
	const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	code := make([]byte, 8)
	for i, b := range id[:8] {
		code[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(code)
}

// MentorPreferenceFactory provides methods to create test MentorPreference data
type MentorPreferenceFactory struct{}

// NewMentorPreferenceFactory creates a new MentorPreferenceFactory
func NewMentorPreferenceFactory() *MentorPreferenceFactory {
	return &MentorPreferenceFactory{}
}

// Create creates a test MentorPreference with default values
func (f *MentorPreferenceFactory) Create() *models.MentorPreference {
	return &models.MentorPreference{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProfileID: uuid.New(),
		TeamCount: 2,
	}
}

// WithProfile sets the profile ID for the preference
func (f *MentorPreferenceFactory) WithProfile(profileID uuid.UUID) *models.MentorPreference {
	pref := f.Create()
	pref.ProfileID = profileID
	return pref
}

// WithTeamCount sets the desired team count for the preference
func (f *MentorPreferenceFactory) WithTeamCount(count int) *models.MentorPreference {
	pref := f.Create()
	pref.TeamCount = count
	return pref
}

// BulkUploadJobFactory provides methods to create test BulkUploadJob data
type BulkUploadJobFactory struct{}

// NewBulkUploadJobFactory creates a new BulkUploadJobFactory
func NewBulkUploadJobFactory() *BulkUploadJobFactory {
	return &BulkUploadJobFactory{}
}

// Create creates a test BulkUploadJob with default values
func (f *BulkUploadJobFactory) Create() *models.BulkUploadJob {
	return &models.BulkUploadJob{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Kind:         models.BulkUploadParticipants,
		Status:       models.JobStatusPending,
		TotalRecords: 3,
	}
}

// WithStatus sets a custom status for the job
func (f *BulkUploadJobFactory) WithStatus(status models.JobStatus) *models.BulkUploadJob {
	job := f.Create()
	job.Status = status
	return job
}

// WithKind sets a custom kind for the job
func (f *BulkUploadJobFactory) WithKind(kind models.BulkUploadKind) *models.BulkUploadJob {
	job := f.Create()
	job.Kind = kind
	return job
}

// SessionTemplateFactory provides methods to create test SessionTemplate data
type SessionTemplateFactory struct{}

// NewSessionTemplateFactory creates a new SessionTemplateFactory
func NewSessionTemplateFactory() *SessionTemplateFactory {
	return &SessionTemplateFactory{}
}

// Create creates a test SessionTemplate with default values
func (f *SessionTemplateFactory) Create() *models.SessionTemplate {
	return &models.SessionTemplate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MentorID:    uuid.New(),
		Weekday:     time.Wednesday,
		StartMinute: 600,
		EndMinute:   660,
	}
}

// WithMentor sets the mentor ID for the template
func (f *SessionTemplateFactory) WithMentor(mentorID uuid.UUID) *models.SessionTemplate {
	template := f.Create()
	template.MentorID = mentorID
	return template
}

// SessionAvailabilityFactory provides methods to create test SessionAvailability data
type SessionAvailabilityFactory struct{}

// NewSessionAvailabilityFactory creates a new SessionAvailabilityFactory
func NewSessionAvailabilityFactory() *SessionAvailabilityFactory {
	return &SessionAvailabilityFactory{}
}

// Create creates a test SessionAvailability with default values
func (f *SessionAvailabilityFactory) Create() *models.SessionAvailability {
	return &models.SessionAvailability{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TemplateID:  uuid.New(),
		MentorID:    uuid.New(),
		Weekday:     time.Wednesday,
		StartMinute: 600,
		EndMinute:   660,
	}
}

// WithMentor sets the mentor ID for the availability
func (f *SessionAvailabilityFactory) WithMentor(mentorID uuid.UUID) *models.SessionAvailability {
	availability := f.Create()
	availability.MentorID = mentorID
	return availability
}

// WithWeekday sets the weekday for the availability
func (f *SessionAvailabilityFactory) WithWeekday(weekday time.Weekday) *models.SessionAvailability {
	availability := f.Create()
	availability.Weekday = weekday
	return availability
}

// FactorySet provides access to all factories
type FactorySet struct {
	Profile             *ProfileFactory
	Institution         *InstitutionFactory
	TechnologyStack     *TechnologyStackFactory
	Team                *TeamFactory
	MentorPreference    *MentorPreferenceFactory
	BulkUploadJob       *BulkUploadJobFactory
	SessionTemplate     *SessionTemplateFactory
	SessionAvailability *SessionAvailabilityFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Profile:             NewProfileFactory(),
		Institution:         NewInstitutionFactory(),
		TechnologyStack:     NewTechnologyStackFactory(),
		Team:                NewTeamFactory(),
		MentorPreference:    NewMentorPreferenceFactory(),
		BulkUploadJob:       NewBulkUploadJobFactory(),
		SessionTemplate:     NewSessionTemplateFactory(),
		SessionAvailability: NewSessionAvailabilityFactory(),
	}
}
