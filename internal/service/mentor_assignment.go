package service

import (
	"errors"
	"fmt"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/notify"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MentorAssignmentService handles mentor preferences and team assignment
type MentorAssignmentService struct {
	prefRepo    repository.MentorPreferenceRepositoryInterface
	teamRepo    repository.TeamRepositoryInterface
	profileRepo repository.ProfileRepositoryInterface
	stackRepo   repository.TechnologyStackRepositoryInterface
	notifier    notify.Notifier
	log         *logger.Logger
	validator   *validator.Validate
}

// NewMentorAssignmentService creates a new mentor assignment service
func NewMentorAssignmentService(prefRepo repository.MentorPreferenceRepositoryInterface, teamRepo repository.TeamRepositoryInterface, profileRepo repository.ProfileRepositoryInterface, stackRepo repository.TechnologyStackRepositoryInterface, notifier notify.Notifier, validator *validator.Validate) *MentorAssignmentService {
	return &MentorAssignmentService{
		prefRepo:    prefRepo,
		teamRepo:    teamRepo,
		profileRepo: profileRepo,
		stackRepo:   stackRepo,
		notifier:    notifier,
		log:         logger.New(),
		validator:   validator,
	}
}

// SetPreferenceRequest represents the request to set a mentor's preference
type SetPreferenceRequest struct {
	ProfileID uuid.UUID   `json:"profile_id" validate:"required"`
	TeamCount int         `json:"team_count" validate:"required,min=1,max=10"`
	StackIDs  []uuid.UUID `json:"stack_ids" validate:"required,min=1"`
}

// EligibleMentorResponse represents one mentor able to take the team
type EligibleMentorResponse struct {
	ProfileID         uuid.UUID `json:"profile_id"`
	TeamCount         int       `json:"team_count"`
	AssignedTeams     int64     `json:"assigned_teams"`
	RemainingCapacity int64     `json:"remaining_capacity"`
}

// SetPreference creates or updates a mentor's capacity and preferred stacks
func (s *MentorAssignmentService) SetPreference(req *SetPreferenceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.requireMentorRole(req.ProfileID); err != nil {
		return err
	}

	for _, stackID := range req.StackIDs {
		if _, err := s.stackRepo.GetByID(stackID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTechStackNotFound
			}
			return fmt.Errorf("failed to verify stack: %w", err)
		}
	}

	pref := &models.MentorPreference{
		ProfileID: req.ProfileID,
		TeamCount: req.TeamCount,
	}
	if err := s.prefRepo.Upsert(pref); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	if err := s.prefRepo.ReplaceStacks(req.ProfileID, req.StackIDs); err != nil {
		return fmt.Errorf("failed to save preferred stacks: %w", err)
	}
	return nil
}

// GetPreference retrieves a mentor's preference with its stacks
func (s *MentorAssignmentService) GetPreference(profileID uuid.UUID) (*models.MentorPreference, error) {
	pref, err := s.prefRepo.GetByProfileID(profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return pref, nil
}

// EligibleMentors lists mentors preferring the team's stack that still
// have capacity, ordered by remaining capacity then seniority.
func (s *MentorAssignmentService) EligibleMentors(teamID uuid.UUID) ([]EligibleMentorResponse, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	candidates, err := s.candidatesWithCapacity(team.TechStackID)
	if err != nil {
		return nil, err
	}

	responses := make([]EligibleMentorResponse, len(candidates))
	for i, c := range candidates {
		responses[i] = EligibleMentorResponse{
			ProfileID:         c.ProfileID,
			TeamCount:         c.TeamCount,
			AssignedTeams:     c.AssignedTeams,
			RemainingCapacity: c.RemainingCapacity(),
		}
	}
	return responses, nil
}

// AutoAssign picks the best eligible mentor for the team and assigns them.
// Best means most remaining capacity, with earlier registration breaking
// ties, so load spreads across the mentor pool.
func (s *MentorAssignmentService) AutoAssign(teamID uuid.UUID) (*EligibleMentorResponse, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	candidates, err := s.candidatesWithCapacity(team.TechStackID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperrors.ErrNoEligibleMentor
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.RemainingCapacity() > best.RemainingCapacity() {
			best = c
		} else if c.RemainingCapacity() == best.RemainingCapacity() && c.CreatedAt.Before(best.CreatedAt) {
			best = c
		}
	}

	if err := s.assign(team, best.ProfileID); err != nil {
		return nil, err
	}

	return &EligibleMentorResponse{
		ProfileID:         best.ProfileID,
		TeamCount:         best.TeamCount,
		AssignedTeams:     best.AssignedTeams + 1,
		RemainingCapacity: best.RemainingCapacity() - 1,
	}, nil
}

// ManualAssign assigns a specific mentor to the team. Organizer overrides
// are deliberate, so the mentor's capacity is not enforced here.
func (s *MentorAssignmentService) ManualAssign(teamID, mentorID uuid.UUID) error {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.requireMentorRole(mentorID); err != nil {
		return err
	}

	return s.assign(team, mentorID)
}

func (s *MentorAssignmentService) assign(team *models.Team, mentorID uuid.UUID) error {
	// AssignMentor also activates the team in the same statement.
	if err := s.teamRepo.AssignMentor(team.ID, mentorID); err != nil {
		return fmt.Errorf("failed to assign mentor: %w", err)
	}

	s.notifyAssignment(team, mentorID)
	return nil
}

// notifyAssignment emails every team member. Failures are logged and
// never fail the assignment.
func (s *MentorAssignmentService) notifyAssignment(team *models.Team, mentorID uuid.UUID) {
	if !s.notifier.Enabled() {
		return
	}

	mentor, err := s.profileRepo.GetByID(mentorID)
	if err != nil {
		s.log.WithError(err).Warn("mentor lookup for notification failed")
		return
	}

	members, err := s.teamRepo.GetMembers(team.ID)
	if err != nil {
		s.log.WithError(err).Warn("member lookup for notification failed")
		return
	}

	for _, m := range members {
		if m.Profile == nil {
			continue
		}
		data := map[string]interface{}{
			"FullName":   m.Profile.FullName,
			"TeamName":   team.Name,
			"MentorName": mentor.FullName,
		}
		if err := s.notifier.Send("mentor_assigned", m.Profile.Email, data); err != nil {
			s.log.WithError(err).WithField("email", m.Profile.Email).Warn("assignment notification failed")
		}
	}
}

func (s *MentorAssignmentService) requireMentorRole(profileID uuid.UUID) error {
	role, err := s.profileRepo.GetRole(profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return fmt.Errorf("failed to resolve role: %w", err)
	}
	if role != models.RoleMentor {
		return apperrors.ErrNotAMentor
	}
	return nil
}

// candidatesWithCapacity filters the grouped candidate query down to
// mentors that can still take a team.
func (s *MentorAssignmentService) candidatesWithCapacity(stackID uuid.UUID) ([]models.MentorCandidate, error) {
	all, err := s.prefRepo.CandidatesForStack(stackID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	candidates := all[:0]
	for _, c := range all {
		if c.RemainingCapacity() > 0 {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}
