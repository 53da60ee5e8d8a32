package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// NotificationAudienceKind tags how a notification's audience is addressed:
// either by role or by explicit user list, never both.
type NotificationAudienceKind string

const (
	AudienceByRole NotificationAudienceKind = "by_role"
	AudienceByUser NotificationAudienceKind = "by_user"
)

// Notification is a user-facing notification enqueued by the workflow engine
type Notification struct {
	BaseModel
	Type           string                   `json:"type" gorm:"not null;size:100" validate:"required,max=100"`
	Title          string                   `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Message        string                   `json:"message" gorm:"type:text"`
	TeamID         uuid.UUID                `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	InterventionID *uuid.UUID               `json:"intervention_id,omitempty" gorm:"type:uuid;index"`
	ActorID        uuid.UUID                `json:"actor_id" gorm:"type:uuid;not null" validate:"required"`
	AudienceKind   NotificationAudienceKind `json:"audience_kind" gorm:"type:varchar(20);not null"`
	Audience       json.RawMessage          `json:"audience" gorm:"type:jsonb"`
	IsRead         bool                     `json:"is_read" gorm:"not null;default:false"`

	// Relationships
	Team  Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Actor User `json:"actor,omitempty" gorm:"foreignKey:ActorID"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
