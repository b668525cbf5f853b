package models

// TechnologyStack is a catalog entry teams and mentors reference
type TechnologyStack struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Description string `json:"description" gorm:"size:300"`
}

// TableName returns the table name for TechnologyStack
func (TechnologyStack) TableName() string {
	return "technology_stacks"
}
