package service

import (
	"errors"
	"time"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService exposes the read side of the notification feed
type NotificationService struct {
	notifications repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID             uuid.UUID                       `json:"id"`
	Type           string                          `json:"type"`
	Title          string                          `json:"title"`
	Message        string                          `json:"message"`
	InterventionID *uuid.UUID                      `json:"intervention_id,omitempty"`
	AudienceKind   models.NotificationAudienceKind `json:"audience_kind"`
	IsRead         bool                            `json:"is_read"`
	CreatedAt      time.Time                       `json:"created_at"`
}

// NotificationListResponse represents a paginated notification feed
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// ListByTeam returns a team's notification feed, newest first
func (s *NotificationService) ListByTeam(teamID uuid.UUID, page, pageSize int) (*NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	notifications, total, err := s.notifications.GetByTeam(teamID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.NewStorageError("list notifications", err)
	}

	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = NotificationResponse{
			ID:             n.ID,
			Type:           n.Type,
			Title:          n.Title,
			Message:        n.Message,
			InterventionID: n.InterventionID,
			AudienceKind:   n.AudienceKind,
			IsRead:         n.IsRead,
			CreatedAt:      n.CreatedAt,
		}
	}
	return &NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// MarkRead flags a notification as read
func (s *NotificationService) MarkRead(id uuid.UUID) error {
	if err := s.notifications.MarkRead(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("notification")
		}
		return apperrors.NewStorageError("mark notification read", err)
	}
	return nil
}
