package models

// Team represents a property-management agency team
type Team struct {
	BaseModel
	Name    string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Address string `json:"address" gorm:"size:255"`

	// Relationships
	Users []User `json:"users,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
