package models

import (
	"github.com/google/uuid"
)

// ThreadType represents the kind of conversation thread scoped to an intervention
type ThreadType string

const (
	ThreadTypeGroup              ThreadType = "group"
	ThreadTypeTenantToManagers   ThreadType = "tenant_to_managers"
	ThreadTypeProviderToManagers ThreadType = "provider_to_managers"
)

// ConversationThread is a messaging channel scoped to an intervention.
// Message delivery itself lives outside this service.
type ConversationThread struct {
	BaseModel
	InterventionID uuid.UUID  `json:"intervention_id" gorm:"type:uuid;not null;uniqueIndex:idx_thread_unique" validate:"required"`
	Type           ThreadType `json:"type" gorm:"type:varchar(50);not null;uniqueIndex:idx_thread_unique" validate:"required"`

	// Relationships
	Intervention Intervention        `json:"intervention,omitempty" gorm:"foreignKey:InterventionID;constraint:OnDelete:CASCADE"`
	Participants []ThreadParticipant `json:"participants,omitempty" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ConversationThread
func (ConversationThread) TableName() string {
	return "conversation_threads"
}

// ThreadParticipant links a user to a conversation thread
type ThreadParticipant struct {
	BaseModel
	ThreadID uuid.UUID `json:"thread_id" gorm:"type:uuid;not null;uniqueIndex:idx_participant_unique" validate:"required"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_participant_unique" validate:"required"`

	// Relationships
	Thread ConversationThread `json:"thread,omitempty" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
	User   User               `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ThreadParticipant
func (ThreadParticipant) TableName() string {
	return "thread_participants"
}
