package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams and memberships
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID with its stack and members
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("TechStack").Preload("Members.Profile").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByJoinCode retrieves a team by its join code
func (r *TeamRepository) GetByJoinCode(code string) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("TechStack").Preload("Members").First(&team, "join_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with pagination
func (r *TeamRepository) GetAll(limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("TechStack").
		Order("created_at").
		Limit(limit).Offset(offset).
		Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// GetByStatus retrieves teams in the given status with pagination
func (r *TeamRepository) GetByStatus(status models.TeamStatus, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	q := r.db.Model(&models.Team{}).Where("status = ?", status)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("TechStack").
		Where("status = ?", status).
		Order("created_at").
		Limit(limit).Offset(offset).
		Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// SetStatus updates only the status column of a team
func (r *TeamRepository) SetStatus(id uuid.UUID, status models.TeamStatus) error {
	result := r.db.Model(&models.Team{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AssignMentor sets the mentor for a team and activates it. Both columns
// move in a single UPDATE so a crash cannot leave a mentored team inactive.
func (r *TeamRepository) AssignMentor(teamID, mentorID uuid.UUID) error {
	result := r.db.Model(&models.Team{}).Where("id = ?", teamID).Updates(map[string]interface{}{
		"mentor_id": mentorID,
		"status":    models.TeamStatusActive,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddMember adds a profile to a team. The unique index on profile_id
// rejects a second membership at the database level.
func (r *TeamRepository) AddMember(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// RemoveMember removes a profile from a team
func (r *TeamRepository) RemoveMember(teamID, profileID uuid.UUID) error {
	result := r.db.Delete(&models.TeamMember{}, "team_id = ? AND profile_id = ?", teamID, profileID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetMembers retrieves all members of a team with their profiles
func (r *TeamRepository) GetMembers(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("Profile").
		Where("team_id = ?", teamID).
		Order("created_at").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// MemberCount returns the number of members in a team
func (r *TeamRepository) MemberCount(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// GetMembershipByProfile retrieves the membership row for a profile, if any
func (r *TeamRepository) GetMembershipByProfile(profileID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "profile_id = ?", profileID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// CountByMentor returns how many teams are assigned to a mentor
func (r *TeamRepository) CountByMentor(mentorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("mentor_id = ?", mentorID).Count(&count).Error
	return count, err
}
