package models

// IdentityCredential backs the local identity provider: one row per
// registered email with a bcrypt password hash. Admin-initiated bulk
// creation marks the email confirmed on create.
type IdentityCredential struct {
	BaseModel
	Email          string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash   string `json:"-" gorm:"not null;size:100"`
	EmailConfirmed bool   `json:"email_confirmed" gorm:"not null;default:false"`
}

// TableName returns the table name for IdentityCredential
func (IdentityCredential) TableName() string {
	return "identity_credentials"
}
