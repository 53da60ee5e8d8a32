package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterventionRepository handles database operations for interventions
type InterventionRepository struct {
	db *gorm.DB
}

// NewInterventionRepository creates a new intervention repository
func NewInterventionRepository(db *gorm.DB) *InterventionRepository {
	return &InterventionRepository{db: db}
}

// Create inserts a new intervention
func (r *InterventionRepository) Create(intervention *models.Intervention) error {
	return r.db.Create(intervention).Error
}

// GetByID retrieves an intervention with its assignments
func (r *InterventionRepository) GetByID(id uuid.UUID) (*models.Intervention, error) {
	var intervention models.Intervention
	err := r.db.Preload("Assignments").First(&intervention, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &intervention, nil
}

// GetByTeamID retrieves interventions for a team with optional status and urgency filters
func (r *InterventionRepository) GetByTeamID(teamID uuid.UUID, filter InterventionFilter) ([]models.Intervention, int64, error) {
	var interventions []models.Intervention
	var total int64

	query := r.db.Model(&models.Intervention{}).Where("team_id = ?", teamID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Urgency != nil {
		query = query.Where("urgency = ?", *filter.Urgency)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(filter.Offset).Find(&interventions).Error
	return interventions, total, err
}

// RecordEstimatedCost writes the estimated cost column, leaving the status
// and every other column untouched
func (r *InterventionRepository) RecordEstimatedCost(id uuid.UUID, cost float64) error {
	return r.db.Model(&models.Intervention{}).
		Where("id = ?", id).
		Update("estimated_cost", cost).Error
}

// UpdateStatusFrom performs a conditional status transition guarded by the
// expected prior status. Extra fields are written in the same statement.
// Returns the number of rows affected; zero means the guard did not match.
func (r *InterventionRepository) UpdateStatusFrom(id uuid.UUID, from, to models.InterventionStatus, fields map[string]interface{}) (int64, error) {
	updates := map[string]interface{}{"status": to}
	for k, v := range fields {
		updates[k] = v
	}
	result := r.db.Model(&models.Intervention{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// SoftDelete marks an intervention as deleted without removing the row
func (r *InterventionRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&models.Intervention{}, "id = ?", id).Error
}
