package models

// Institution is a school/university/company a profile can belong to
type Institution struct {
	BaseModel
	Name    string `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,max=200"`
	Website string `json:"website" gorm:"size:300"`
}

// TableName returns the table name for Institution
func (Institution) TableName() string {
	return "institutions"
}
