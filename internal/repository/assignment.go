package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for intervention assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts a new assignment
func (r *AssignmentRepository) Create(assignment *models.InterventionAssignment) error {
	return r.db.Create(assignment).Error
}

// Delete removes the assignment for the given user and role, returning the
// number of rows removed
func (r *AssignmentRepository) Delete(interventionID, userID uuid.UUID, role models.AssignmentRole) (int64, error) {
	result := r.db.
		Where("intervention_id = ? AND user_id = ? AND role = ?", interventionID, userID, role).
		Delete(&models.InterventionAssignment{})
	return result.RowsAffected, result.Error
}

// GetByIntervention retrieves all assignments with their users
func (r *AssignmentRepository) GetByIntervention(interventionID uuid.UUID) ([]models.InterventionAssignment, error) {
	var assignments []models.InterventionAssignment
	err := r.db.Preload("User").
		Where("intervention_id = ?", interventionID).
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// Exists reports whether the (intervention, user, role) assignment is recorded
func (r *AssignmentRepository) Exists(interventionID, userID uuid.UUID, role models.AssignmentRole) (bool, error) {
	var count int64
	err := r.db.Model(&models.InterventionAssignment{}).
		Where("intervention_id = ? AND user_id = ? AND role = ?", interventionID, userID, role).
		Count(&count).Error
	return count > 0, err
}
