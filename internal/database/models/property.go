package models

import (
	"github.com/google/uuid"
)

// Building represents a managed building
type Building struct {
	BaseModel
	TeamID  uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name    string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Address string    `json:"address" gorm:"not null;size:255" validate:"required,max=255"`
	City    string    `json:"city" gorm:"size:100"`
	ZipCode string    `json:"zip_code" gorm:"size:20"`

	// Relationships
	Team Team  `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Lots []Lot `json:"lots,omitempty" gorm:"foreignKey:BuildingID"`
}

// TableName returns the table name for Building
func (Building) TableName() string {
	return "buildings"
}

// Lot represents a dwelling unit inside a building
type Lot struct {
	BaseModel
	BuildingID uuid.UUID  `json:"building_id" gorm:"type:uuid;not null;index" validate:"required"`
	Reference  string     `json:"reference" gorm:"not null;size:50" validate:"required,max=50"`
	Floor      int        `json:"floor"`
	TenantID   *uuid.UUID `json:"tenant_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Building Building `json:"building,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	Tenant   *User    `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

// TableName returns the table name for Lot
func (Lot) TableName() string {
	return "lots"
}
