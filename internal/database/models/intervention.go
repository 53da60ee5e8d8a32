package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterventionStatus represents the lifecycle status of an intervention
type InterventionStatus string

const (
	StatusDemande                 InterventionStatus = "demande"
	StatusRejetee                 InterventionStatus = "rejetee"
	StatusApprouvee               InterventionStatus = "approuvee"
	StatusDemandeDeDevis          InterventionStatus = "demande_de_devis"
	StatusPlanification           InterventionStatus = "planification"
	StatusPlanifiee               InterventionStatus = "planifiee"
	StatusEnCours                 InterventionStatus = "en_cours"
	StatusClotureeParPrestataire  InterventionStatus = "cloturee_par_prestataire"
	StatusClotureeParLocataire    InterventionStatus = "cloturee_par_locataire"
	StatusClotureeParGestionnaire InterventionStatus = "cloturee_par_gestionnaire"
	StatusAnnulee                 InterventionStatus = "annulee"
)

// IsValid checks if the InterventionStatus is one of the eleven lifecycle values
func (s InterventionStatus) IsValid() bool {
	switch s {
	case StatusDemande, StatusRejetee, StatusApprouvee, StatusDemandeDeDevis,
		StatusPlanification, StatusPlanifiee, StatusEnCours,
		StatusClotureeParPrestataire, StatusClotureeParLocataire,
		StatusClotureeParGestionnaire, StatusAnnulee:
		return true
	}
	return false
}

// Intervention represents a maintenance request tracked through its lifecycle
type Intervention struct {
	BaseModel
	TeamID         uuid.UUID           `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title          string              `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description    string              `json:"description" gorm:"type:text"`
	Status         InterventionStatus  `json:"status" gorm:"type:varchar(50);not null;default:'demande';index" validate:"required"`
	Urgency        InterventionUrgency `json:"urgency" gorm:"type:varchar(20);not null;default:'normale'" validate:"required"`
	Type           string              `json:"type" gorm:"size:100"`
	TenantID       *uuid.UUID          `json:"tenant_id,omitempty" gorm:"type:uuid;index"`
	BuildingID     *uuid.UUID          `json:"building_id,omitempty" gorm:"type:uuid;index"`
	LotID          *uuid.UUID          `json:"lot_id,omitempty" gorm:"type:uuid;index"`
	ScheduledDate  *time.Time          `json:"scheduled_date,omitempty"`
	SelectedSlotID *uuid.UUID          `json:"selected_slot_id,omitempty" gorm:"type:uuid"`
	EstimatedCost  *float64            `json:"estimated_cost,omitempty"`
	FinalCost      *float64            `json:"final_cost,omitempty"`
	DeletedAt      gorm.DeletedAt      `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	Team        Team                     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Tenant      *User                    `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Building    *Building                `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
	Lot         *Lot                     `json:"lot,omitempty" gorm:"foreignKey:LotID"`
	Assignments []InterventionAssignment `json:"assignments,omitempty" gorm:"foreignKey:InterventionID;constraint:OnDelete:CASCADE"`
	TimeSlots   []TimeSlot               `json:"time_slots,omitempty" gorm:"foreignKey:InterventionID;constraint:OnDelete:CASCADE"`
	Quotes      []Quote                  `json:"quotes,omitempty" gorm:"foreignKey:InterventionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Intervention
func (Intervention) TableName() string {
	return "interventions"
}
