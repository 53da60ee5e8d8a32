package repository

import (
	"time"

	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// InterventionFilter narrows team-scoped intervention listings
type InterventionFilter struct {
	Status  *models.InterventionStatus
	Urgency *models.InterventionUrgency
	Limit   int
	Offset  int
}

// InterventionRepositoryInterface defines persistence operations for interventions
type InterventionRepositoryInterface interface {
	Create(intervention *models.Intervention) error
	GetByID(id uuid.UUID) (*models.Intervention, error)
	GetByTeamID(teamID uuid.UUID, filter InterventionFilter) ([]models.Intervention, int64, error)
	// RecordEstimatedCost writes only the estimated cost column so a stale
	// in-memory row cannot clobber a concurrent status transition.
	RecordEstimatedCost(id uuid.UUID, cost float64) error
	// UpdateStatusFrom performs a conditional status write guarded by the
	// expected prior status and returns the number of rows affected. Zero
	// rows means the row moved concurrently (or no longer exists).
	UpdateStatusFrom(id uuid.UUID, from, to models.InterventionStatus, fields map[string]interface{}) (int64, error)
	SoftDelete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines persistence operations for intervention assignments
type AssignmentRepositoryInterface interface {
	Create(assignment *models.InterventionAssignment) error
	Delete(interventionID, userID uuid.UUID, role models.AssignmentRole) (int64, error)
	GetByIntervention(interventionID uuid.UUID) ([]models.InterventionAssignment, error)
	Exists(interventionID, userID uuid.UUID, role models.AssignmentRole) (bool, error)
}

// TimeSlotRepositoryInterface defines persistence operations for time slots
type TimeSlotRepositoryInterface interface {
	CreateBatch(slots []*models.TimeSlot) error
	GetByID(id uuid.UUID) (*models.TimeSlot, error)
	GetByIntervention(interventionID uuid.UUID) ([]models.TimeSlot, error)
	SetStatus(id uuid.UUID, status models.TimeSlotStatus) error
	UpsertResponse(response *models.SlotResponse) error
	// CancelSiblings marks every non-terminal slot of the intervention other
	// than keepID as cancelled.
	CancelSiblings(interventionID, keepID uuid.UUID) error
}

// QuoteRepositoryInterface defines persistence operations for quotes
type QuoteRepositoryInterface interface {
	Create(quote *models.Quote) error
	GetByID(id uuid.UUID) (*models.Quote, error)
	GetByIntervention(interventionID uuid.UUID) ([]models.Quote, error)
	UpdateStatusFrom(id uuid.UUID, from, to models.QuoteStatus, fields map[string]interface{}) (int64, error)
	GetExpiredSent(teamID uuid.UUID, now time.Time) ([]models.Quote, error)
}

// UserRepositoryInterface defines persistence operations for users
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTeamAndRole(teamID uuid.UUID, role models.UserRole) ([]models.User, error)
}

// ActivityLogRepositoryInterface defines append-only persistence for audit entries
type ActivityLogRepositoryInterface interface {
	Append(entry *models.ActivityLog) error
	GetByIntervention(interventionID uuid.UUID, limit, offset int) ([]models.ActivityLog, int64, error)
}

// NotificationRepositoryInterface defines persistence operations for notifications
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByTeam(teamID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	MarkRead(id uuid.UUID) error
}

// ConversationRepositoryInterface defines persistence operations for conversation threads
type ConversationRepositoryInterface interface {
	Create(thread *models.ConversationThread) error
	GetByInterventionAndType(interventionID uuid.UUID, threadType models.ThreadType) (*models.ConversationThread, error)
	AddParticipants(threadID uuid.UUID, userIDs []uuid.UUID) error
}
