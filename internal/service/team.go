package service

import (
	"errors"
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/random"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const joinCodeLength = 8

// joinCodeAttempts bounds collision retries on the unique join code index
const joinCodeAttempts = 5

// TeamService handles business logic for teams
type TeamService struct {
	repo        repository.TeamRepositoryInterface
	profileRepo repository.ProfileRepositoryInterface
	stackRepo   repository.TechnologyStackRepositoryInterface
	rand        random.Rand
	maxTeamSize int
	validator   *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, profileRepo repository.ProfileRepositoryInterface, stackRepo repository.TechnologyStackRepositoryInterface, rand random.Rand, maxTeamSize int, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:        repo,
		profileRepo: profileRepo,
		stackRepo:   stackRepo,
		rand:        rand,
		maxTeamSize: maxTeamSize,
		validator:   validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Description string    `json:"description,omitempty" validate:"max=500"`
	TechStackID uuid.UUID `json:"tech_stack_id" validate:"required"`
	LeaderID    uuid.UUID `json:"leader_id" validate:"required"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name        string     `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description string     `json:"description,omitempty" validate:"max=500"`
	TechStackID *uuid.UUID `json:"tech_stack_id,omitempty"`
}

// TeamMemberResponse represents one member in a team response
type TeamMemberResponse struct {
	ProfileID uuid.UUID `json:"profile_id"`
	FullName  string    `json:"full_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	JoinedAt  string    `json:"joined_at"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description,omitempty"`
	TechStackID   uuid.UUID            `json:"tech_stack_id"`
	TechStack     string               `json:"tech_stack,omitempty"`
	JoinCode      string               `json:"join_code,omitempty"`
	Status        models.TeamStatus    `json:"status"`
	LeaderID      uuid.UUID            `json:"leader_id"`
	MentorID      *uuid.UUID           `json:"mentor_id,omitempty"`
	RepositoryURL string               `json:"repository_url,omitempty"`
	Members       []TeamMemberResponse `json:"members,omitempty"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// validTeamTransitions lists the permitted status moves
var validTeamTransitions = map[models.TeamStatus][]models.TeamStatus{
	models.TeamStatusDraft:         {models.TeamStatusOpen},
	models.TeamStatusOpen:          {models.TeamStatusLocked, models.TeamStatusDraft},
	models.TeamStatusLocked:        {models.TeamStatusPendingMentor, models.TeamStatusOpen},
	models.TeamStatusPendingMentor: {models.TeamStatusActive, models.TeamStatusLocked},
	models.TeamStatusActive:        {},
}

// Create creates a team with a fresh join code and the leader as first member
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.stackRepo.GetByID(req.TechStackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTechStackNotFound
		}
		return nil, fmt.Errorf("failed to verify stack: %w", err)
	}

	if _, err := s.profileRepo.GetByID(req.LeaderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to verify leader: %w", err)
	}

	if _, err := s.repo.GetMembershipByProfile(req.LeaderID); err == nil {
		return nil, apperrors.ErrAlreadyInTeam
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		TechStackID: req.TechStackID,
		Status:      models.TeamStatusOpen,
		LeaderID:    req.LeaderID,
	}

	// The join code is unique; retry a few times on the rare collision.
	var created bool
	for attempt := 0; attempt < joinCodeAttempts; attempt++ {
		team.JoinCode = random.JoinCode(s.rand, joinCodeLength)
		existing, err := s.repo.GetByJoinCode(team.JoinCode)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check join code: %w", err)
		}
		if existing != nil {
			continue
		}
		if err := s.repo.Create(team); err != nil {
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
		created = true
		break
	}
	if !created {
		return nil, fmt.Errorf("failed to generate a unique join code")
	}

	member := &models.TeamMember{TeamID: team.ID, ProfileID: req.LeaderID}
	if err := s.repo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add leader as member: %w", err)
	}

	return s.toResponse(team, []models.TeamMember{*member}), nil
}

// GetByID retrieves a team by ID with its members
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(team, team.Members), nil
}

// List retrieves teams with pagination, optionally filtered by status
func (s *TeamService) List(status models.TeamStatus, page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var teams []models.Team
	var total int64
	var err error
	if status != "" {
		teams, total, err = s.repo.GetByStatus(status, pageSize, offset)
	} else {
		teams, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i], nil)
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates the mutable fields of a team
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != "" {
		team.Name = req.Name
	}
	if req.Description != "" {
		team.Description = req.Description
	}
	if req.TechStackID != nil {
		if _, err := s.stackRepo.GetByID(*req.TechStackID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTechStackNotFound
			}
			return nil, fmt.Errorf("failed to verify stack: %w", err)
		}
		team.TechStackID = *req.TechStackID
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.toResponse(team, team.Members), nil
}

// SetStatus moves a team through its lifecycle, rejecting invalid transitions
func (s *TeamService) SetStatus(id uuid.UUID, status models.TeamStatus) error {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	allowed, ok := validTeamTransitions[team.Status]
	if !ok {
		return apperrors.ErrInvalidStatus
	}
	permitted := false
	for _, a := range allowed {
		if a == status {
			permitted = true
			break
		}
	}
	if !permitted {
		return apperrors.ErrInvalidStatus
	}

	if err := s.repo.SetStatus(id, status); err != nil {
		return fmt.Errorf("failed to set team status: %w", err)
	}
	return nil
}

// Join adds a profile to the team matching the join code
func (s *TeamService) Join(code string, profileID uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByJoinCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidJoinCode
		}
		return nil, fmt.Errorf("failed to resolve join code: %w", err)
	}

	if team.Status != models.TeamStatusOpen {
		return nil, apperrors.ErrInvalidStatus
	}

	if _, err := s.repo.GetMembershipByProfile(profileID); err == nil {
		return nil, apperrors.ErrAlreadyInTeam
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	count, err := s.repo.MemberCount(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	if count >= int64(s.maxTeamSize) {
		return nil, apperrors.ErrTeamFull
	}

	member := &models.TeamMember{TeamID: team.ID, ProfileID: profileID}
	if err := s.repo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	members, err := s.repo.GetMembers(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	return s.toResponse(team, members), nil
}

// Leave removes a profile from its team. When the departing member is
// the leader and other members remain, the earliest-joined member is
// promoted. When the last member leaves, the team falls back to draft.
func (s *TeamService) Leave(teamID, profileID uuid.UUID) error {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.RemoveMember(teamID, profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotTeamMember
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	remaining, err := s.repo.GetMembers(teamID)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	if len(remaining) == 0 {
		if err := s.repo.SetStatus(teamID, models.TeamStatusDraft); err != nil {
			return fmt.Errorf("failed to park empty team: %w", err)
		}
		return nil
	}

	if team.LeaderID == profileID {
		// GetMembers orders by created_at, so the first row is the
		// earliest-joined remaining member.
		team.LeaderID = remaining[0].ProfileID
		if err := s.repo.Update(team); err != nil {
			return fmt.Errorf("failed to promote leader: %w", err)
		}
	}
	return nil
}

func (s *TeamService) toResponse(team *models.Team, members []models.TeamMember) *TeamResponse {
	resp := &TeamResponse{
		ID:            team.ID,
		Name:          team.Name,
		Description:   team.Description,
		TechStackID:   team.TechStackID,
		JoinCode:      team.JoinCode,
		Status:        team.Status,
		LeaderID:      team.LeaderID,
		MentorID:      team.MentorID,
		RepositoryURL: team.RepositoryURL,
		CreatedAt:     team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     team.UpdatedAt.Format(time.RFC3339),
	}
	if team.TechStack != nil {
		resp.TechStack = team.TechStack.Name
	}
	for _, m := range members {
		mr := TeamMemberResponse{
			ProfileID: m.ProfileID,
			JoinedAt:  m.CreatedAt.Format(time.RFC3339),
		}
		if m.Profile != nil {
			mr.FullName = m.Profile.FullName
			mr.Email = m.Profile.Email
		}
		resp.Members = append(resp.Members, mr)
	}
	return resp
}
