package service

import (
	"encoding/json"

	"property-portal-backend/internal/database/models"
	"property-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// dbNotifier persists notifications through the notification repository
type dbNotifier struct {
	repo repository.NotificationRepositoryInterface
}

// NewNotifier creates a database-backed notifier
func NewNotifier(repo repository.NotificationRepositoryInterface) Notifier {
	return &dbNotifier{repo: repo}
}

func (n *dbNotifier) Notify(event NotificationEvent) error {
	var audience json.RawMessage
	switch event.Audience.Kind() {
	case models.AudienceByRole:
		data, err := json.Marshal(event.Audience.Roles())
		if err != nil {
			return err
		}
		audience = data
	case models.AudienceByUser:
		data, err := json.Marshal(event.Audience.UserIDs())
		if err != nil {
			return err
		}
		audience = data
	}

	return n.repo.Create(&models.Notification{
		Type:           event.Type,
		Title:          event.Title,
		Message:        event.Message,
		TeamID:         event.TeamID,
		InterventionID: event.InterventionID,
		ActorID:        event.ActorID,
		AudienceKind:   event.Audience.Kind(),
		Audience:       audience,
	})
}

// dbActivityRecorder appends audit entries through the activity log repository
type dbActivityRecorder struct {
	repo repository.ActivityLogRepositoryInterface
}

// NewActivityRecorder creates a database-backed activity recorder
func NewActivityRecorder(repo repository.ActivityLogRepositoryInterface) ActivityRecorder {
	return &dbActivityRecorder{repo: repo}
}

func (a *dbActivityRecorder) Record(interventionID, actorID uuid.UUID, action string, metadata map[string]interface{}) error {
	var raw json.RawMessage
	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		raw = data
	}
	return a.repo.Append(&models.ActivityLog{
		InterventionID: interventionID,
		ActorID:        actorID,
		Action:         action,
		Metadata:       raw,
	})
}

// dbConversationProvisioner creates threads through the conversation repository
type dbConversationProvisioner struct {
	repo repository.ConversationRepositoryInterface
}

// NewConversationProvisioner creates a database-backed thread provisioner
func NewConversationProvisioner(repo repository.ConversationRepositoryInterface) ConversationProvisioner {
	return &dbConversationProvisioner{repo: repo}
}

func (p *dbConversationProvisioner) Provision(interventionID uuid.UUID, threadType models.ThreadType, participantIDs []uuid.UUID) error {
	thread := &models.ConversationThread{
		InterventionID: interventionID,
		Type:           threadType,
	}
	for _, id := range participantIDs {
		thread.Participants = append(thread.Participants, models.ThreadParticipant{UserID: id})
	}
	return p.repo.Create(thread)
}
