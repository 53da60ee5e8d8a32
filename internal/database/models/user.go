package models

import (
	"github.com/google/uuid"
)

// User represents a platform user: manager, provider or tenant
type User struct {
	BaseModel
	TeamID    *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	FirstName string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName  string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Phone     string     `json:"phone" gorm:"size:20"`
	Role      UserRole   `json:"role" gorm:"type:varchar(50);not null;default:'locataire'" validate:"required"`
	IsActive  bool       `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
