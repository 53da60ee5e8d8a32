package service

import (
	"errors"
	"fmt"
	"time"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/repository"
	"property-portal-backend/internal/workflow"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleServiceOptions tunes scheduling behavior
type ScheduleServiceOptions struct {
	// AutoCancelSiblings cancels the unselected slots of an intervention
	// once one slot is confirmed. Off unless enabled in configuration.
	AutoCancelSiblings bool
}

// ScheduleService handles the propose, respond and confirm cycle that turns
// candidate time slots into a scheduled intervention.
type ScheduleService struct {
	slots         repository.TimeSlotRepositoryInterface
	interventions repository.InterventionRepositoryInterface
	assignments   repository.AssignmentRepositoryInterface
	users         repository.UserRepositoryInterface
	validator     *validator.Validate
	effects       *Dispatcher
	notifier      Notifier
	emailer       Emailer
	activity      ActivityRecorder
	opts          ScheduleServiceOptions
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	slots repository.TimeSlotRepositoryInterface,
	interventions repository.InterventionRepositoryInterface,
	assignments repository.AssignmentRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
	effects *Dispatcher,
	notifier Notifier,
	emailer Emailer,
	activity ActivityRecorder,
	opts ScheduleServiceOptions,
) *ScheduleService {
	return &ScheduleService{
		slots:         slots,
		interventions: interventions,
		assignments:   assignments,
		users:         users,
		validator:     validator,
		effects:       effects,
		notifier:      notifier,
		emailer:       emailer,
		activity:      activity,
		opts:          opts,
	}
}

// SlotProposal describes one candidate window in a proposal batch
type SlotProposal struct {
	Date      time.Time `json:"date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required,len=5"`
	EndTime   string    `json:"end_time" validate:"required,len=5"`
}

// ProposeSlotsRequest represents the request to propose candidate windows
type ProposeSlotsRequest struct {
	Slots []SlotProposal `json:"slots" validate:"required,min=1,max=10,dive"`
}

// SlotResponseRequest represents one participant's answer on a slot
type SlotResponseRequest struct {
	Response models.SlotResponseValue `json:"response" validate:"required,oneof=accepted rejected"`
	Note     string                   `json:"note,omitempty" validate:"max=500"`
}

// TimeSlotResponse represents a time slot in API responses
type TimeSlotResponse struct {
	ID             uuid.UUID             `json:"id"`
	InterventionID uuid.UUID             `json:"intervention_id"`
	Date           time.Time             `json:"date"`
	StartTime      string                `json:"start_time"`
	EndTime        string                `json:"end_time"`
	ProposedBy     uuid.UUID             `json:"proposed_by"`
	Status         models.TimeSlotStatus `json:"status"`
	Responses      []SlotAnswer          `json:"responses,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

// SlotAnswer represents one recorded response in API responses
type SlotAnswer struct {
	UserID   uuid.UUID                `json:"user_id"`
	Role     models.UserRole          `json:"role"`
	Response models.SlotResponseValue `json:"response"`
	Note     string                   `json:"note,omitempty"`
}

// FinalizeCheckResponse reports whether a slot has gathered enough agreement
type FinalizeCheckResponse struct {
	SlotID           uuid.UUID `json:"slot_id"`
	CanFinalize      bool      `json:"can_finalize"`
	TenantAccepted   bool      `json:"tenant_accepted"`
	ProviderAccepted bool      `json:"provider_accepted"`
}

// ProposeSlots records a batch of candidate windows for an intervention in
// the planning stage. Managers and assigned providers may propose.
func (s *ScheduleService) ProposeSlots(interventionID, actorID uuid.UUID, req *ProposeSlotsRequest) ([]TimeSlotResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	intervention, err := s.getIntervention(interventionID)
	if err != nil {
		return nil, err
	}
	if intervention.Status != models.StatusPlanification {
		return nil, apperrors.NewValidationError("status",
			fmt.Sprintf("slots can only be proposed while planning, current status is %s", intervention.Status))
	}

	actor, err := s.getUser(actorID)
	if err != nil {
		return nil, err
	}
	if err := s.checkProposer(intervention, actor); err != nil {
		return nil, err
	}

	slots := make([]*models.TimeSlot, 0, len(req.Slots))
	for i, p := range req.Slots {
		if err := validateWindow(p.StartTime, p.EndTime); err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("slots[%d]", i), err.Error())
		}
		slots = append(slots, &models.TimeSlot{
			InterventionID: interventionID,
			Date:           p.Date,
			StartTime:      p.StartTime,
			EndTime:        p.EndTime,
			ProposedBy:     actorID,
			Status:         models.SlotStatusProposed,
		})
	}

	if err := s.slots.CreateBatch(slots); err != nil {
		return nil, apperrors.NewStorageError("create time slots", err)
	}

	s.effects.Go("activity log", func() error {
		return s.activity.Record(interventionID, actorID, "slots_proposed", map[string]interface{}{
			"count": len(slots),
		})
	})
	s.notifySlotParticipants(intervention, actorID, "slots_proposed", "Créneaux proposés",
		fmt.Sprintf("%d créneaux proposés pour l'intervention %q", len(slots), intervention.Title))

	responses := make([]TimeSlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = toSlotResponse(slot)
	}
	return responses, nil
}

// ListSlots returns every slot of an intervention with recorded responses
func (s *ScheduleService) ListSlots(interventionID uuid.UUID) ([]TimeSlotResponse, error) {
	if _, err := s.getIntervention(interventionID); err != nil {
		return nil, err
	}
	slots, err := s.slots.GetByIntervention(interventionID)
	if err != nil {
		return nil, apperrors.NewStorageError("list time slots", err)
	}
	responses := make([]TimeSlotResponse, len(slots))
	for i := range slots {
		responses[i] = toSlotResponse(&slots[i])
	}
	return responses, nil
}

// RecordResponse upserts a participant's answer on a slot. Responding again
// overwrites the previous answer; answers on a settled slot are rejected.
func (s *ScheduleService) RecordResponse(slotID, actorID uuid.UUID, req *SlotResponseRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	slot, err := s.getSlot(slotID)
	if err != nil {
		return err
	}
	switch slot.Status {
	case models.SlotStatusSelected, models.SlotStatusCancelled:
		return apperrors.NewValidationError("status",
			fmt.Sprintf("slot is %s and no longer accepts responses", slot.Status))
	}

	intervention, err := s.getIntervention(slot.InterventionID)
	if err != nil {
		return err
	}
	actor, err := s.getUser(actorID)
	if err != nil {
		return err
	}
	if err := s.checkResponder(intervention, actor); err != nil {
		return err
	}

	if err := s.slots.UpsertResponse(&models.SlotResponse{
		SlotID:   slotID,
		UserID:   actorID,
		Role:     actor.Role,
		Response: req.Response,
		Note:     req.Note,
	}); err != nil {
		return apperrors.NewStorageError("record slot response", err)
	}

	s.effects.Go("activity log", func() error {
		return s.activity.Record(intervention.ID, actorID, "slot_response_recorded", map[string]interface{}{
			"slot_id":  slotID,
			"response": req.Response,
		})
	})
	return nil
}

// CanFinalize reports whether a slot gathered at least one tenant acceptance
// and one provider acceptance.
func (s *ScheduleService) CanFinalize(slotID uuid.UUID) (*FinalizeCheckResponse, error) {
	slot, err := s.getSlot(slotID)
	if err != nil {
		return nil, err
	}
	check := &FinalizeCheckResponse{SlotID: slot.ID}
	for _, r := range slot.Responses {
		if r.Response != models.SlotResponseAccepted {
			continue
		}
		switch r.Role {
		case models.UserRoleLocataire:
			check.TenantAccepted = true
		case models.UserRolePrestataire:
			check.ProviderAccepted = true
		}
	}
	check.CanFinalize = check.TenantAccepted && check.ProviderAccepted
	return check, nil
}

// ConfirmSchedule selects a slot and moves the intervention to planifiee.
// Managers and assigned providers may confirm. The slot selection and the
// status transition are the mandatory steps; the sibling cleanup and the
// notifications run best-effort afterwards. Agreement is advisory: a slot may
// be confirmed regardless of responses.
func (s *ScheduleService) ConfirmSchedule(slotID, actorID uuid.UUID) (*TimeSlotResponse, error) {
	slot, err := s.getSlot(slotID)
	if err != nil {
		return nil, err
	}
	switch slot.Status {
	case models.SlotStatusCancelled:
		return nil, apperrors.NewValidationError("status", "cancelled slot cannot be confirmed")
	case models.SlotStatusSelected:
		return nil, apperrors.NewValidationError("status", "slot is already confirmed")
	}

	intervention, err := s.getIntervention(slot.InterventionID)
	if err != nil {
		return nil, err
	}
	actor, err := s.getUser(actorID)
	if err != nil {
		return nil, err
	}
	if !workflow.RoleAllowed(models.StatusPlanifiee, actor.Role) {
		return nil, apperrors.NewPermissionError(
			fmt.Sprintf("role %s may not confirm a schedule", actor.Role))
	}
	if actor.Role.IsManager() && actor.Role != models.UserRoleAdmin {
		if actor.TeamID == nil || *actor.TeamID != intervention.TeamID {
			return nil, apperrors.NewPermissionError("manager does not belong to the intervention's team")
		}
	}
	if workflow.NeedsProviderAssignment(models.StatusPlanifiee, actor.Role) {
		assigned, err := s.assignments.Exists(intervention.ID, actor.ID, models.AssignmentRolePrestataire)
		if err != nil {
			return nil, apperrors.NewStorageError("check provider assignment", err)
		}
		if !assigned {
			return nil, apperrors.NewPermissionError("provider is not assigned to this intervention")
		}
	}
	if intervention.Status != models.StatusPlanification {
		return nil, apperrors.NewValidationError("status",
			fmt.Sprintf("intervention is %s, only a planning intervention can be scheduled", intervention.Status))
	}

	if err := s.slots.SetStatus(slotID, models.SlotStatusSelected); err != nil {
		return nil, apperrors.NewStorageError("select time slot", err)
	}
	slot.Status = models.SlotStatusSelected

	scheduledAt := slot.ScheduledAt()
	rows, err := s.interventions.UpdateStatusFrom(intervention.ID, models.StatusPlanification, models.StatusPlanifiee, map[string]interface{}{
		"scheduled_date":   scheduledAt,
		"selected_slot_id": slot.ID,
	})
	if err != nil {
		return nil, apperrors.NewStorageError("update intervention status", err)
	}
	if rows == 0 {
		return nil, apperrors.NewValidationError("status", "intervention status changed concurrently")
	}
	intervention.Status = models.StatusPlanifiee
	intervention.ScheduledDate = &scheduledAt

	s.effects.Go("activity log", func() error {
		return s.activity.Record(intervention.ID, actorID, "schedule_confirmed", map[string]interface{}{
			"slot_id":      slot.ID,
			"scheduled_at": scheduledAt,
		})
	})
	if s.opts.AutoCancelSiblings {
		s.effects.Go("cancel sibling slots", func() error {
			return s.slots.CancelSiblings(intervention.ID, slot.ID)
		})
	}
	s.notifySlotParticipants(intervention, actorID, "schedule_confirmed", "Intervention planifiée",
		fmt.Sprintf("L'intervention %q est planifiée le %s", intervention.Title, scheduledAt.Format("02/01/2006 15:04")))
	if intervention.TenantID != nil {
		tenantID := *intervention.TenantID
		s.effects.Go("email scheduled", func() error {
			tenant, err := s.users.GetByID(tenantID)
			if err != nil {
				return err
			}
			return s.emailer.Send(EmailEvent{
				Kind:           EmailInterventionScheduled,
				Recipients:     []string{tenant.Email},
				InterventionID: intervention.ID,
				Title:          intervention.Title,
				Fields:         map[string]string{"scheduled_at": scheduledAt.Format(time.RFC3339)},
			})
		})
	}

	resp := toSlotResponse(slot)
	return &resp, nil
}

func (s *ScheduleService) checkProposer(intervention *models.Intervention, actor *models.User) error {
	if actor.Role.IsManager() {
		if actor.Role == models.UserRoleAdmin {
			return nil
		}
		if actor.TeamID == nil || *actor.TeamID != intervention.TeamID {
			return apperrors.NewPermissionError("manager does not belong to the intervention's team")
		}
		return nil
	}
	if actor.Role == models.UserRolePrestataire {
		assigned, err := s.assignments.Exists(intervention.ID, actor.ID, models.AssignmentRolePrestataire)
		if err != nil {
			return apperrors.NewStorageError("check provider assignment", err)
		}
		if !assigned {
			return apperrors.NewPermissionError("provider is not assigned to this intervention")
		}
		return nil
	}
	return apperrors.NewPermissionError("only managers and assigned providers can propose slots")
}

func (s *ScheduleService) checkResponder(intervention *models.Intervention, actor *models.User) error {
	switch actor.Role {
	case models.UserRoleLocataire:
		if intervention.TenantID == nil || *intervention.TenantID != actor.ID {
			return apperrors.NewPermissionError("tenant is not the requester of this intervention")
		}
		return nil
	case models.UserRolePrestataire:
		assigned, err := s.assignments.Exists(intervention.ID, actor.ID, models.AssignmentRolePrestataire)
		if err != nil {
			return apperrors.NewStorageError("check provider assignment", err)
		}
		if !assigned {
			return apperrors.NewPermissionError("provider is not assigned to this intervention")
		}
		return nil
	default:
		return apperrors.NewPermissionError("only the tenant and assigned providers respond to slots")
	}
}

func (s *ScheduleService) notifySlotParticipants(intervention *models.Intervention, actorID uuid.UUID, eventType, title, message string) {
	audience := AudienceRoles(models.UserRoleGestionnaire, models.UserRolePrestataire, models.UserRoleLocataire)
	s.effects.Go("notify "+eventType, func() error {
		return s.notifier.Notify(NotificationEvent{
			Type:           eventType,
			Title:          title,
			Message:        message,
			TeamID:         intervention.TeamID,
			InterventionID: &intervention.ID,
			ActorID:        actorID,
			Audience:       audience,
		})
	})
}

func (s *ScheduleService) getSlot(id uuid.UUID) (*models.TimeSlot, error) {
	slot, err := s.slots.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTimeSlotNotFound
		}
		return nil, apperrors.NewStorageError("get time slot", err)
	}
	return slot, nil
}

func (s *ScheduleService) getIntervention(id uuid.UUID) (*models.Intervention, error) {
	intervention, err := s.interventions.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInterventionNotFound
		}
		return nil, apperrors.NewStorageError("get intervention", err)
	}
	return intervention, nil
}

func (s *ScheduleService) getUser(id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError("get user", err)
	}
	return user, nil
}

// validateWindow checks a "15:04" formatted window has a positive duration
func validateWindow(start, end string) error {
	st, err := time.Parse("15:04", start)
	if err != nil {
		return fmt.Errorf("start time %q is not HH:MM formatted", start)
	}
	et, err := time.Parse("15:04", end)
	if err != nil {
		return fmt.Errorf("end time %q is not HH:MM formatted", end)
	}
	if !et.After(st) {
		return fmt.Errorf("end time %q must be after start time %q", end, start)
	}
	return nil
}

func toSlotResponse(slot *models.TimeSlot) TimeSlotResponse {
	resp := TimeSlotResponse{
		ID:             slot.ID,
		InterventionID: slot.InterventionID,
		Date:           slot.Date,
		StartTime:      slot.StartTime,
		EndTime:        slot.EndTime,
		ProposedBy:     slot.ProposedBy,
		Status:         slot.Status,
		CreatedAt:      slot.CreatedAt,
	}
	for _, r := range slot.Responses {
		resp.Responses = append(resp.Responses, SlotAnswer{
			UserID:   r.UserID,
			Role:     r.Role,
			Response: r.Response,
			Note:     r.Note,
		})
	}
	return resp
}
