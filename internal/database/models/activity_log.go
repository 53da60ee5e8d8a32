package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ActivityLog is an immutable audit record appended on every significant
// state change. Entries are never updated or deleted.
type ActivityLog struct {
	BaseModel
	InterventionID uuid.UUID       `json:"intervention_id" gorm:"type:uuid;not null;index" validate:"required"`
	ActorID        uuid.UUID       `json:"actor_id" gorm:"type:uuid;not null" validate:"required"`
	Action         string          `json:"action" gorm:"not null;size:100" validate:"required,max=100"`
	Metadata       json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Intervention Intervention `json:"intervention,omitempty" gorm:"foreignKey:InterventionID;constraint:OnDelete:CASCADE"`
	Actor        User         `json:"actor,omitempty" gorm:"foreignKey:ActorID"`
}

// TableName returns the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}
