package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TimeSlotRepository handles database operations for time slots
type TimeSlotRepository struct {
	db *gorm.DB
}

// NewTimeSlotRepository creates a new time slot repository
func NewTimeSlotRepository(db *gorm.DB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

// CreateBatch inserts all proposed slots in one statement
func (r *TimeSlotRepository) CreateBatch(slots []*models.TimeSlot) error {
	if len(slots) == 0 {
		return nil
	}
	return r.db.Create(&slots).Error
}

// GetByID retrieves a time slot with its responses
func (r *TimeSlotRepository) GetByID(id uuid.UUID) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	err := r.db.Preload("Responses").First(&slot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// GetByIntervention retrieves all slots of an intervention with responses
func (r *TimeSlotRepository) GetByIntervention(interventionID uuid.UUID) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	err := r.db.Preload("Responses").
		Where("intervention_id = ?", interventionID).
		Order("date ASC, start_time ASC").
		Find(&slots).Error
	return slots, err
}

// SetStatus updates a slot's status
func (r *TimeSlotRepository) SetStatus(id uuid.UUID, status models.TimeSlotStatus) error {
	return r.db.Model(&models.TimeSlot{}).Where("id = ?", id).Update("status", status).Error
}

// UpsertResponse inserts a participant response or updates the existing one
// for the same (slot, user) pair
func (r *TimeSlotRepository) UpsertResponse(response *models.SlotResponse) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"response", "note", "role", "updated_at"}),
	}).Create(response).Error
}

// CancelSiblings marks every proposed or pending slot of the intervention,
// other than the kept one, as cancelled
func (r *TimeSlotRepository) CancelSiblings(interventionID, keepID uuid.UUID) error {
	return r.db.Model(&models.TimeSlot{}).
		Where("intervention_id = ? AND id <> ? AND status IN ?",
			interventionID, keepID,
			[]models.TimeSlotStatus{models.SlotStatusProposed, models.SlotStatusPending}).
		Update("status", models.SlotStatusCancelled).Error
}
