package models

import (
	"github.com/google/uuid"
)

// TeamStatus represents the lifecycle state of a team
type TeamStatus string

const (
	TeamStatusDraft         TeamStatus = "draft"
	TeamStatusOpen          TeamStatus = "open"
	TeamStatusLocked        TeamStatus = "locked"
	TeamStatusActive        TeamStatus = "active"
	TeamStatusPendingMentor TeamStatus = "pending_mentor"
)

// Team is a group of participants pursuing a shared project
type Team struct {
	BaseModel
	Name          string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description   string     `json:"description" gorm:"size:500" validate:"max=500"`
	TechStackID   uuid.UUID  `json:"tech_stack_id" gorm:"type:uuid;not null;index" validate:"required"`
	JoinCode      string     `json:"join_code" gorm:"uniqueIndex;not null;size:12"`
	Status        TeamStatus `json:"status" gorm:"type:varchar(30);not null;default:'open'"`
	LeaderID      uuid.UUID  `json:"leader_id" gorm:"type:uuid;not null"`
	MentorID      *uuid.UUID `json:"mentor_id,omitempty" gorm:"type:uuid;index"`
	RepositoryURL string     `json:"repository_url" gorm:"size:300"`

	// Relationships
	TechStack *TechnologyStack `json:"tech_stack,omitempty" gorm:"foreignKey:TechStackID"`
	Members   []TeamMember     `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember is the join row between Team and Profile.
// The unique index on ProfileID enforces one active team per participant.
type TeamMember struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	ProfileID uuid.UUID `json:"profile_id" gorm:"type:uuid;uniqueIndex;not null"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
