package service

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EmailKind identifies the templated email sent for a workflow event
type EmailKind string

const (
	EmailInterventionCreated   EmailKind = "intervention_created"
	EmailInterventionApproved  EmailKind = "intervention_approved"
	EmailInterventionRejected  EmailKind = "intervention_rejected"
	EmailInterventionScheduled EmailKind = "intervention_scheduled"
	EmailInterventionCompleted EmailKind = "intervention_completed"
	EmailQuoteRequested        EmailKind = "quote_requested"
)

// EmailEvent is the structured payload handed to the email collaborator
type EmailEvent struct {
	Kind           EmailKind
	Recipients     []string
	InterventionID uuid.UUID
	Title          string
	Fields         map[string]string
}

// NotificationEvent is the payload handed to the notification collaborator
type NotificationEvent struct {
	Type           string
	Title          string
	Message        string
	TeamID         uuid.UUID
	InterventionID *uuid.UUID
	ActorID        uuid.UUID
	Audience       Audience
}

// Notifier enqueues a user-facing notification. Fire-and-forget from the
// orchestrator's perspective.
type Notifier interface {
	Notify(event NotificationEvent) error
}

// Emailer sends a templated email for a workflow event. Fire-and-forget.
type Emailer interface {
	Send(event EmailEvent) error
}

// ActivityRecorder appends an immutable audit entry
type ActivityRecorder interface {
	Record(interventionID, actorID uuid.UUID, action string, metadata map[string]interface{}) error
}

// ConversationProvisioner creates a conversation thread of the given type for
// an intervention
type ConversationProvisioner interface {
	Provision(interventionID uuid.UUID, threadType models.ThreadType, participantIDs []uuid.UUID) error
}
