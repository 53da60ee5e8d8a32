package models

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlotStatus represents the status of a proposed appointment window
type TimeSlotStatus string

const (
	SlotStatusProposed  TimeSlotStatus = "proposed"
	SlotStatusPending   TimeSlotStatus = "pending"
	SlotStatusSelected  TimeSlotStatus = "selected"
	SlotStatusRejected  TimeSlotStatus = "rejected"
	SlotStatusCancelled TimeSlotStatus = "cancelled"
)

// SlotResponseValue represents a participant's answer on a time slot
type SlotResponseValue string

const (
	SlotResponseAccepted SlotResponseValue = "accepted"
	SlotResponseRejected SlotResponseValue = "rejected"
	SlotResponsePending  SlotResponseValue = "pending"
)

// TimeSlot represents a candidate appointment window for an intervention
type TimeSlot struct {
	BaseModel
	InterventionID uuid.UUID      `json:"intervention_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date           time.Time      `json:"date" gorm:"not null" validate:"required"`
	StartTime      string         `json:"start_time" gorm:"not null;size:5" validate:"required"`
	EndTime        string         `json:"end_time" gorm:"not null;size:5" validate:"required"`
	ProposedBy     uuid.UUID      `json:"proposed_by" gorm:"type:uuid;not null" validate:"required"`
	Status         TimeSlotStatus `json:"status" gorm:"type:varchar(20);not null;default:'proposed';index"`

	// Relationships
	Intervention Intervention   `json:"intervention,omitempty" gorm:"foreignKey:InterventionID;constraint:OnDelete:CASCADE"`
	Proposer     User           `json:"proposer,omitempty" gorm:"foreignKey:ProposedBy"`
	Responses    []SlotResponse `json:"responses,omitempty" gorm:"foreignKey:SlotID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TimeSlot
func (TimeSlot) TableName() string {
	return "time_slots"
}

// ScheduledAt combines the slot date with its start time into a timestamp.
// The start time must be "15:04" formatted; on parse failure the bare date is returned.
func (s *TimeSlot) ScheduledAt() time.Time {
	t, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return s.Date
	}
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), t.Hour(), t.Minute(), 0, 0, s.Date.Location())
}

// SlotResponse records one participant's answer on a time slot.
// A given (slot, user) pair is unique.
type SlotResponse struct {
	BaseModel
	SlotID   uuid.UUID         `json:"slot_id" gorm:"type:uuid;not null;uniqueIndex:idx_slot_response_unique" validate:"required"`
	UserID   uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_slot_response_unique" validate:"required"`
	Role     UserRole          `json:"role" gorm:"type:varchar(50);not null" validate:"required"`
	Response SlotResponseValue `json:"response" gorm:"type:varchar(20);not null;default:'pending'"`
	Note     string            `json:"note" gorm:"size:500"`

	// Relationships
	Slot TimeSlot `json:"slot,omitempty" gorm:"foreignKey:SlotID;constraint:OnDelete:CASCADE"`
	User User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SlotResponse
func (SlotResponse) TableName() string {
	return "slot_responses"
}
