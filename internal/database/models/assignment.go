package models

import (
	"github.com/google/uuid"
)

// InterventionAssignment links a user to an intervention in a specific role.
// A given (intervention, user, role) triple is unique.
type InterventionAssignment struct {
	BaseModel
	InterventionID uuid.UUID      `json:"intervention_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignment_unique" validate:"required"`
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignment_unique" validate:"required"`
	Role           AssignmentRole `json:"role" gorm:"type:varchar(50);not null;uniqueIndex:idx_assignment_unique" validate:"required"`
	IsLead         bool           `json:"is_lead" gorm:"not null;default:false"`

	// Relationships
	Intervention Intervention `json:"intervention,omitempty" gorm:"foreignKey:InterventionID;constraint:OnDelete:CASCADE"`
	User         User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for InterventionAssignment
func (InterventionAssignment) TableName() string {
	return "intervention_assignments"
}
