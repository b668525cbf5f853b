package models

import (
	"github.com/google/uuid"
)

// ProfileStatus represents the completion/approval state of a profile.
// Profiles are never hard-deleted; the status changes instead.
type ProfileStatus string

const (
	ProfileStatusIncomplete      ProfileStatus = "incomplete"
	ProfileStatusPendingApproval ProfileStatus = "pending_approval"
	ProfileStatusApproved        ProfileStatus = "approved"
	ProfileStatusFlagged         ProfileStatus = "flagged"
)

// Role represents the platform-wide role of a profile
type Role string

const (
	RoleParticipant Role = "participant"
	RoleMentor      Role = "mentor"
	RoleAdmin       Role = "admin"
	RoleOrganizer   Role = "organizer"
	RoleModerator   Role = "moderator"
)

// Profile is the record of one registered person
type Profile struct {
	BaseModel
	FullName      string        `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email         string        `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	AvatarURL     string        `json:"avatar_url" gorm:"size:500"`
	GithubUser    string        `json:"github_username" gorm:"size:100"`
	LinkedinID    string        `json:"linkedin_profile_id" gorm:"size:100"`
	InstitutionID *uuid.UUID    `json:"institution_id,omitempty" gorm:"type:uuid;index"`
	Status        ProfileStatus `json:"status" gorm:"type:varchar(30);not null;default:'incomplete'"`

	// Relationships
	Institution *Institution    `json:"institution,omitempty" gorm:"foreignKey:InstitutionID"`
	Roles       []RoleAssignment `json:"roles,omitempty" gorm:"foreignKey:ProfileID"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// RoleAssignment maps a profile to its role. Created at registration and
// immutable afterwards; there is no role-change flow.
type RoleAssignment struct {
	BaseModel
	ProfileID uuid.UUID `json:"profile_id" gorm:"type:uuid;uniqueIndex;not null"`
	Role      Role      `json:"role" gorm:"type:varchar(30);not null" validate:"required,oneof=participant mentor admin organizer moderator"`
}

// TableName returns the table name for RoleAssignment
func (RoleAssignment) TableName() string {
	return "user_roles"
}
