package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MentorPreferenceRepository handles database operations for mentor preferences
type MentorPreferenceRepository struct {
	db *gorm.DB
}

// NewMentorPreferenceRepository creates a new mentor preference repository
func NewMentorPreferenceRepository(db *gorm.DB) *MentorPreferenceRepository {
	return &MentorPreferenceRepository{db: db}
}

// Upsert creates or updates the preference row for a mentor
func (r *MentorPreferenceRepository) Upsert(pref *models.MentorPreference) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"team_count", "updated_at"}),
	}).Create(pref).Error
}

// GetByProfileID retrieves a mentor's preference with preferred stacks
func (r *MentorPreferenceRepository) GetByProfileID(profileID uuid.UUID) (*models.MentorPreference, error) {
	var pref models.MentorPreference
	err := r.db.Preload("TechStacks").First(&pref, "profile_id = ?", profileID).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// ReplaceStacks replaces the mentor's preferred stacks in one transaction
func (r *MentorPreferenceRepository) ReplaceStacks(profileID uuid.UUID, stackIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.MentorTechStack{}, "profile_id = ?", profileID).Error; err != nil {
			return err
		}
		for _, stackID := range stackIDs {
			row := models.MentorTechStack{ProfileID: profileID, TechStackID: stackID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CandidatesForStack returns every mentor preferring the given stack with
// the assigned-team count aggregated in one grouped query. Only teams in
// the locked or active statuses count against a mentor's capacity.
func (r *MentorPreferenceRepository) CandidatesForStack(stackID uuid.UUID) ([]models.MentorCandidate, error) {
	var candidates []models.MentorCandidate
	err := r.db.Model(&models.MentorPreference{}).
		Select(`mentor_preferences.profile_id,
			mentor_preferences.team_count,
			COUNT(teams.id) AS assigned_teams,
			mentor_preferences.created_at`).
		Joins("JOIN mentor_tech_stacks ON mentor_tech_stacks.profile_id = mentor_preferences.profile_id").
		Joins("LEFT JOIN teams ON teams.mentor_id = mentor_preferences.profile_id AND teams.status IN ?",
			[]models.TeamStatus{models.TeamStatusLocked, models.TeamStatusActive}).
		Where("mentor_tech_stacks.tech_stack_id = ?", stackID).
		Group("mentor_preferences.profile_id, mentor_preferences.team_count, mentor_preferences.created_at").
		Order("mentor_preferences.created_at").
		Scan(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
