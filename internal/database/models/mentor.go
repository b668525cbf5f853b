package models

import (
	"time"

	"github.com/google/uuid"
)

// MentorPreference holds a mentor's desired concurrent-team capacity.
// Preferred technology stacks live in the mentor_tech_stacks join table.
type MentorPreference struct {
	BaseModel
	ProfileID uuid.UUID `json:"profile_id" gorm:"type:uuid;uniqueIndex;not null" validate:"required"`
	TeamCount int       `json:"team_count" gorm:"not null;default:2" validate:"min=1,max=10"`

	TechStacks []MentorTechStack `json:"tech_stacks,omitempty" gorm:"foreignKey:ProfileID;references:ProfileID"`
}

// TableName returns the table name for MentorPreference
func (MentorPreference) TableName() string {
	return "mentor_preferences"
}

// MentorTechStack is the join row between a mentor profile and a preferred stack
type MentorTechStack struct {
	BaseModel
	ProfileID   uuid.UUID `json:"profile_id" gorm:"type:uuid;not null;uniqueIndex:idx_mentor_stack"`
	TechStackID uuid.UUID `json:"tech_stack_id" gorm:"type:uuid;not null;uniqueIndex:idx_mentor_stack"`
}

// TableName returns the table name for MentorTechStack
func (MentorTechStack) TableName() string {
	return "mentor_tech_stacks"
}

// MentorCandidate is the read model for mentor eligibility queries: one row
// per mentor preferring a given stack, with the assigned-team count already
// aggregated so remaining capacity is capacity minus assigned.
type MentorCandidate struct {
	ProfileID     uuid.UUID `json:"profile_id"`
	TeamCount     int       `json:"team_count"`
	AssignedTeams int64     `json:"assigned_teams"`
	CreatedAt     time.Time `json:"created_at"`
}

// RemainingCapacity returns how many more teams this mentor can take
func (c MentorCandidate) RemainingCapacity() int64 {
	return int64(c.TeamCount) - c.AssignedTeams
}
