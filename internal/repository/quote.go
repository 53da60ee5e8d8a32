package repository

import (
	"time"

	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuoteRepository handles database operations for quotes
type QuoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Create inserts a quote together with its line items
func (r *QuoteRepository) Create(quote *models.Quote) error {
	return r.db.Create(quote).Error
}

// GetByID retrieves a quote with its line items
func (r *QuoteRepository) GetByID(id uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.Preload("LineItems").First(&quote, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// GetByIntervention retrieves all quotes of an intervention
func (r *QuoteRepository) GetByIntervention(interventionID uuid.UUID) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Preload("LineItems").
		Where("intervention_id = ?", interventionID).
		Order("created_at DESC").
		Find(&quotes).Error
	return quotes, err
}

// UpdateStatusFrom performs a conditional quote status transition guarded by
// the expected prior status. Returns the number of rows affected.
func (r *QuoteRepository) UpdateStatusFrom(id uuid.UUID, from, to models.QuoteStatus, fields map[string]interface{}) (int64, error) {
	updates := map[string]interface{}{"status": to}
	for k, v := range fields {
		updates[k] = v
	}
	result := r.db.Model(&models.Quote{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// GetExpiredSent retrieves sent quotes of a team whose validity deadline has passed
func (r *QuoteRepository) GetExpiredSent(teamID uuid.UUID, now time.Time) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.
		Joins("JOIN interventions ON interventions.id = quotes.intervention_id").
		Where("interventions.team_id = ?", teamID).
		Where("quotes.status = ?", models.QuoteStatusSent).
		Where("quotes.valid_until IS NOT NULL AND quotes.valid_until < ?", now).
		Find(&quotes).Error
	return quotes, err
}
