package models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus represents the one-way status of a quote
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// QuoteType distinguishes a preliminary estimation from a final quote
type QuoteType string

const (
	QuoteTypeEstimation QuoteType = "estimation"
	QuoteTypeFinal      QuoteType = "final"
)

// Quote represents a provider cost estimate for an intervention
type Quote struct {
	BaseModel
	InterventionID  uuid.UUID   `json:"intervention_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProviderID      uuid.UUID   `json:"provider_id" gorm:"type:uuid;not null;index" validate:"required"`
	Amount          float64     `json:"amount" gorm:"not null"`
	Currency        string      `json:"currency" gorm:"size:3;not null;default:'EUR'"`
	Status          QuoteStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	Type            QuoteType   `json:"type" gorm:"type:varchar(20);not null;default:'estimation'"`
	ValidUntil      *time.Time  `json:"valid_until,omitempty"`
	RejectionReason string      `json:"rejection_reason" gorm:"size:500"`

	// Relationships
	Intervention Intervention    `json:"intervention,omitempty" gorm:"foreignKey:InterventionID;constraint:OnDelete:CASCADE"`
	Provider     User            `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	LineItems    []QuoteLineItem `json:"line_items,omitempty" gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Quote
func (Quote) TableName() string {
	return "quotes"
}

// LineItemsTotal sums the totals of all line items
func (q *Quote) LineItemsTotal() float64 {
	var sum float64
	for _, item := range q.LineItems {
		sum += item.Total
	}
	return sum
}

// QuoteLineItem is a single billed line on a quote
type QuoteLineItem struct {
	BaseModel
	QuoteID     uuid.UUID `json:"quote_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description string    `json:"description" gorm:"not null;size:255" validate:"required,max=255"`
	Quantity    float64   `json:"quantity" gorm:"not null;default:1"`
	UnitPrice   float64   `json:"unit_price" gorm:"not null"`
	Total       float64   `json:"total" gorm:"not null"`

	// Relationships
	Quote Quote `json:"quote,omitempty" gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for QuoteLineItem
func (QuoteLineItem) TableName() string {
	return "quote_line_items"
}
