package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogRepository handles append-only persistence for audit entries
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Append inserts an audit entry. Entries are never updated or deleted.
func (r *ActivityLogRepository) Append(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// GetByIntervention retrieves audit entries for an intervention, newest first
func (r *ActivityLogRepository) GetByIntervention(interventionID uuid.UUID, limit, offset int) ([]models.ActivityLog, int64, error) {
	var entries []models.ActivityLog
	var total int64

	query := r.db.Model(&models.ActivityLog{}).Where("intervention_id = ?", interventionID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}
