package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationRepository handles database operations for conversation threads
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create inserts a thread with its participants
func (r *ConversationRepository) Create(thread *models.ConversationThread) error {
	return r.db.Create(thread).Error
}

// GetByInterventionAndType retrieves the thread of a given type for an intervention
func (r *ConversationRepository) GetByInterventionAndType(interventionID uuid.UUID, threadType models.ThreadType) (*models.ConversationThread, error) {
	var thread models.ConversationThread
	err := r.db.Preload("Participants").
		First(&thread, "intervention_id = ? AND type = ?", interventionID, threadType).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// AddParticipants links users to an existing thread
func (r *ConversationRepository) AddParticipants(threadID uuid.UUID, userIDs []uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}
	participants := make([]models.ThreadParticipant, 0, len(userIDs))
	for _, id := range userIDs {
		participants = append(participants, models.ThreadParticipant{ThreadID: threadID, UserID: id})
	}
	return r.db.Create(&participants).Error
}
