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

// InterventionService is the single entry point for intervention lifecycle
// mutations. Every operation loads current state, validates the transition
// and the actor, persists the new state with a conditional write, then fires
// best-effort side effects.
type InterventionService struct {
	interventions repository.InterventionRepositoryInterface
	assignments   repository.AssignmentRepositoryInterface
	users         repository.UserRepositoryInterface
	quotes        repository.QuoteRepositoryInterface
	validator     *validator.Validate
	effects       *Dispatcher
	notifier      Notifier
	emailer       Emailer
	activity      ActivityRecorder
	conversations ConversationProvisioner
}

// NewInterventionService creates a new intervention service
func NewInterventionService(
	interventions repository.InterventionRepositoryInterface,
	assignments repository.AssignmentRepositoryInterface,
	users repository.UserRepositoryInterface,
	quotes repository.QuoteRepositoryInterface,
	validator *validator.Validate,
	effects *Dispatcher,
	notifier Notifier,
	emailer Emailer,
	activity ActivityRecorder,
	conversations ConversationProvisioner,
) *InterventionService {
	return &InterventionService{
		interventions: interventions,
		assignments:   assignments,
		users:         users,
		quotes:        quotes,
		validator:     validator,
		effects:       effects,
		notifier:      notifier,
		emailer:       emailer,
		activity:      activity,
		conversations: conversations,
	}
}

// CreateInterventionRequest represents the request to create an intervention
type CreateInterventionRequest struct {
	Title       string                     `json:"title" validate:"required,max=200"`
	Description string                     `json:"description,omitempty"`
	Urgency     models.InterventionUrgency `json:"urgency" validate:"required"`
	Type        string                     `json:"type,omitempty" validate:"max=100"`
	BuildingID  *uuid.UUID                 `json:"building_id,omitempty"`
	LotID       *uuid.UUID                 `json:"lot_id,omitempty"`
	TenantID    *uuid.UUID                 `json:"tenant_id,omitempty"`
}

// AssignUserRequest represents the request to assign a user to an intervention
type AssignUserRequest struct {
	UserID uuid.UUID             `json:"user_id" validate:"required"`
	Role   models.AssignmentRole `json:"role" validate:"required"`
	IsLead bool                  `json:"is_lead,omitempty"`
}

// InterventionResponse represents the response for intervention operations
type InterventionResponse struct {
	ID             uuid.UUID                  `json:"id"`
	TeamID         uuid.UUID                  `json:"team_id"`
	Title          string                     `json:"title"`
	Description    string                     `json:"description"`
	Status         models.InterventionStatus  `json:"status"`
	Urgency        models.InterventionUrgency `json:"urgency"`
	Type           string                     `json:"type"`
	TenantID       *uuid.UUID                 `json:"tenant_id,omitempty"`
	BuildingID     *uuid.UUID                 `json:"building_id,omitempty"`
	LotID          *uuid.UUID                 `json:"lot_id,omitempty"`
	ScheduledDate  *time.Time                 `json:"scheduled_date,omitempty"`
	SelectedSlotID *uuid.UUID                 `json:"selected_slot_id,omitempty"`
	EstimatedCost  *float64                   `json:"estimated_cost,omitempty"`
	FinalCost      *float64                   `json:"final_cost,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// InterventionListResponse represents a paginated list of interventions
type InterventionListResponse struct {
	Interventions []InterventionResponse `json:"interventions"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// RequestIntervention creates an intervention. A tenant's request starts in
// demande; a manager or admin creates it pre-approved in approuvee.
func (s *InterventionService) RequestIntervention(req *CreateInterventionRequest, actorID uuid.UUID) (*InterventionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Urgency.IsValid() {
		return nil, apperrors.NewValidationError("urgency", fmt.Sprintf("unknown urgency %q", req.Urgency))
	}

	actor, err := s.getUser(actorID)
	if err != nil {
		return nil, err
	}
	if actor.TeamID == nil {
		return nil, apperrors.NewPermissionError("actor does not belong to a team")
	}

	intervention := &models.Intervention{
		TeamID:      *actor.TeamID,
		Title:       req.Title,
		Description: req.Description,
		Urgency:     req.Urgency,
		Type:        req.Type,
		BuildingID:  req.BuildingID,
		LotID:       req.LotID,
	}

	switch {
	case actor.Role == models.UserRoleLocataire:
		intervention.Status = models.StatusDemande
		actorRef := actor.ID
		intervention.TenantID = &actorRef
	case actor.Role.IsManager():
		intervention.Status = models.StatusApprouvee
		intervention.TenantID = req.TenantID
	default:
		return nil, apperrors.NewPermissionError("only tenants and managers can request interventions")
	}

	if err := s.interventions.Create(intervention); err != nil {
		return nil, apperrors.NewStorageError("create intervention", err)
	}

	s.effects.Go("provision group thread", func() error {
		return s.conversations.Provision(intervention.ID, models.ThreadTypeGroup, s.threadParticipants(intervention, actor))
	})
	s.effects.Go("provision tenant thread", func() error {
		return s.conversations.Provision(intervention.ID, models.ThreadTypeTenantToManagers, s.threadParticipants(intervention, actor))
	})
	s.recordActivity(intervention.ID, actorID, "intervention_created", map[string]interface{}{
		"status": intervention.Status,
	})
	s.notifyTeam(intervention, actorID, "intervention_created", "Nouvelle intervention",
		fmt.Sprintf("Intervention %q créée", intervention.Title),
		AudienceRoles(models.UserRoleGestionnaire))
	s.emailTenant(intervention, EmailInterventionCreated, nil)

	return s.toResponse(intervention), nil
}

// GetByID retrieves an intervention
func (s *InterventionService) GetByID(id uuid.UUID) (*InterventionResponse, error) {
	intervention, err := s.getIntervention(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(intervention), nil
}

// ListByTeam retrieves interventions of a team with optional filters
func (s *InterventionService) ListByTeam(teamID uuid.UUID, status *models.InterventionStatus, urgency *models.InterventionUrgency, page, pageSize int) (*InterventionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := repository.InterventionFilter{
		Status:  status,
		Urgency: urgency,
		Limit:   pageSize,
		Offset:  (page - 1) * pageSize,
	}
	interventions, total, err := s.interventions.GetByTeamID(teamID, filter)
	if err != nil {
		return nil, apperrors.NewStorageError("list interventions", err)
	}

	responses := make([]InterventionResponse, len(interventions))
	for i := range interventions {
		responses[i] = *s.toResponse(&interventions[i])
	}
	return &InterventionListResponse{
		Interventions: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Approve moves a requested intervention to approuvee
func (s *InterventionService) Approve(id, actorID uuid.UUID) (*InterventionResponse, error) {
	return s.applyTransition(id, actorID, models.StatusApprouvee, nil, "intervention_approved", nil, func(itv *models.Intervention, actor *models.User) {
		s.notifyTenant(itv, actorID, "intervention_approved", "Intervention approuvée",
			fmt.Sprintf("L'intervention %q a été approuvée", itv.Title))
		s.emailTenant(itv, EmailInterventionApproved, nil)
	})
}

// Reject moves a requested intervention to the terminal rejetee status
func (s *InterventionService) Reject(id, actorID uuid.UUID, reason string) (*InterventionResponse, error) {
	meta := map[string]interface{}{"reason": reason}
	return s.applyTransition(id, actorID, models.StatusRejetee, nil, "intervention_rejected", meta, func(itv *models.Intervention, actor *models.User) {
		s.notifyTenant(itv, actorID, "intervention_rejected", "Intervention refusée",
			fmt.Sprintf("L'intervention %q a été refusée: %s", itv.Title, reason))
		s.emailTenant(itv, EmailInterventionRejected, map[string]string{"reason": reason})
	})
}

// StartPlanning moves an approved intervention into the planning stage
func (s *InterventionService) StartPlanning(id, actorID uuid.UUID) (*InterventionResponse, error) {
	return s.applyTransition(id, actorID, models.StatusPlanification, nil, "planning_started", nil, func(itv *models.Intervention, actor *models.User) {
		s.notifyTenant(itv, actorID, "planning_started", "Planification en cours",
			fmt.Sprintf("La planification de l'intervention %q a démarré", itv.Title))
	})
}

// Start moves a scheduled intervention to en_cours. The same operation serves
// the reopen edge from cloturee_par_prestataire when a tenant contests.
func (s *InterventionService) Start(id, actorID uuid.UUID) (*InterventionResponse, error) {
	return s.applyTransition(id, actorID, models.StatusEnCours, nil, "work_started", nil, func(itv *models.Intervention, actor *models.User) {
		s.notifyTeam(itv, actorID, "work_started", "Travaux démarrés",
			fmt.Sprintf("Les travaux de l'intervention %q ont démarré", itv.Title),
			AudienceRoles(models.UserRoleGestionnaire))
	})
}

// CompleteByProvider marks the work as finished by the provider
func (s *InterventionService) CompleteByProvider(id, actorID uuid.UUID) (*InterventionResponse, error) {
	return s.applyTransition(id, actorID, models.StatusClotureeParPrestataire, nil, "completed_by_provider", nil, func(itv *models.Intervention, actor *models.User) {
		s.notifyTenant(itv, actorID, "completed_by_provider", "Travaux terminés",
			fmt.Sprintf("Les travaux de l'intervention %q sont terminés, merci de valider", itv.Title))
		s.emailTenant(itv, EmailInterventionCompleted, nil)
	})
}

// ValidateByTenant records the tenant's validation of the finished work
func (s *InterventionService) ValidateByTenant(id, actorID uuid.UUID) (*InterventionResponse, error) {
	return s.applyTransition(id, actorID, models.StatusClotureeParLocataire, nil, "validated_by_tenant", nil, func(itv *models.Intervention, actor *models.User) {
		s.notifyTeam(itv, actorID, "validated_by_tenant", "Intervention validée",
			fmt.Sprintf("Le locataire a validé l'intervention %q", itv.Title),
			AudienceRoles(models.UserRoleGestionnaire))
	})
}

// FinalizeByManager closes the intervention, optionally recording the final cost
func (s *InterventionService) FinalizeByManager(id, actorID uuid.UUID, finalCost *float64) (*InterventionResponse, error) {
	var fields map[string]interface{}
	var meta map[string]interface{}
	if finalCost != nil {
		if *finalCost < 0 {
			return nil, apperrors.NewValidationError("final_cost", "must not be negative")
		}
		fields = map[string]interface{}{"final_cost": *finalCost}
		meta = map[string]interface{}{"final_cost": *finalCost}
	}
	return s.applyTransition(id, actorID, models.StatusClotureeParGestionnaire, fields, "finalized_by_manager", meta, func(itv *models.Intervention, actor *models.User) {
		s.notifyTenant(itv, actorID, "finalized", "Intervention clôturée",
			fmt.Sprintf("L'intervention %q est clôturée", itv.Title))
	})
}

// Cancel moves the intervention to the terminal annulee status. Terminal
// statuses have no outbound edges, so cancelling an already closed or
// rejected intervention fails the legality check.
func (s *InterventionService) Cancel(id, actorID uuid.UUID, reason string) (*InterventionResponse, error) {
	meta := map[string]interface{}{"reason": reason}
	return s.applyTransition(id, actorID, models.StatusAnnulee, nil, "intervention_cancelled", meta, func(itv *models.Intervention, actor *models.User) {
		s.notifyTeam(itv, actorID, "intervention_cancelled", "Intervention annulée",
			fmt.Sprintf("L'intervention %q a été annulée: %s", itv.Title, reason),
			AudienceRoles(models.UserRoleGestionnaire))
	})
}

// Delete soft-deletes an intervention. Blocked while work is in progress and
// once a manager has closed it.
func (s *InterventionService) Delete(id, actorID uuid.UUID) error {
	intervention, err := s.getIntervention(id)
	if err != nil {
		return err
	}
	actor, err := s.getUser(actorID)
	if err != nil {
		return err
	}
	if !actor.Role.IsManager() {
		return apperrors.NewPermissionError("only managers can delete interventions")
	}
	if err := s.checkManagerTeam(intervention, actor); err != nil {
		return err
	}
	switch intervention.Status {
	case models.StatusEnCours, models.StatusClotureeParGestionnaire:
		return apperrors.NewValidationError("status", fmt.Sprintf("cannot delete an intervention in status %s", intervention.Status))
	}

	if err := s.interventions.SoftDelete(id); err != nil {
		return apperrors.NewStorageError("delete intervention", err)
	}

	s.recordActivity(id, actorID, "intervention_deleted", nil)
	return nil
}

// AssignUser links a user to the intervention in the given role. Duplicate
// (user, role) pairs are rejected; assigning a provider also provisions the
// provider-to-managers conversation thread.
func (s *InterventionService) AssignUser(id, actorID uuid.UUID, req *AssignUserRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}
	if !req.Role.IsValid() {
		return apperrors.NewValidationError("role", fmt.Sprintf("unknown assignment role %q", req.Role))
	}

	intervention, err := s.getIntervention(id)
	if err != nil {
		return err
	}
	actor, err := s.getUser(actorID)
	if err != nil {
		return err
	}
	if !actor.Role.IsManager() {
		return apperrors.NewPermissionError("only managers can assign users")
	}
	if err := s.checkManagerTeam(intervention, actor); err != nil {
		return err
	}

	assignee, err := s.getUser(req.UserID)
	if err != nil {
		return err
	}
	if req.Role == models.AssignmentRolePrestataire && assignee.Role != models.UserRolePrestataire {
		return apperrors.NewValidationError("user_id", "assignee does not hold the provider role")
	}

	exists, err := s.assignments.Exists(id, req.UserID, req.Role)
	if err != nil {
		return apperrors.NewStorageError("check assignment", err)
	}
	if exists {
		if req.Role == models.AssignmentRolePrestataire {
			return apperrors.ErrProviderAlreadyAssigned
		}
		return apperrors.ErrAssignmentExists
	}

	assignment := &models.InterventionAssignment{
		InterventionID: id,
		UserID:         req.UserID,
		Role:           req.Role,
		IsLead:         req.IsLead,
	}
	if err := s.assignments.Create(assignment); err != nil {
		return apperrors.NewStorageError("create assignment", err)
	}

	if req.Role == models.AssignmentRolePrestataire {
		s.effects.Go("provision provider thread", func() error {
			return s.conversations.Provision(id, models.ThreadTypeProviderToManagers, []uuid.UUID{req.UserID, actorID})
		})
	}
	s.recordActivity(id, actorID, "user_assigned", map[string]interface{}{
		"user_id": req.UserID,
		"role":    req.Role,
	})
	s.effects.Go("notify assignee", func() error {
		return s.notifier.Notify(NotificationEvent{
			Type:           "user_assigned",
			Title:          "Nouvelle affectation",
			Message:        fmt.Sprintf("Vous avez été affecté à l'intervention %q", intervention.Title),
			TeamID:         intervention.TeamID,
			InterventionID: &intervention.ID,
			ActorID:        actorID,
			Audience:       AudienceUsers(req.UserID),
		})
	})
	return nil
}

// UnassignUser removes the assignment for the given user and role
func (s *InterventionService) UnassignUser(id, actorID, userID uuid.UUID, role models.AssignmentRole) error {
	intervention, err := s.getIntervention(id)
	if err != nil {
		return err
	}
	actor, err := s.getUser(actorID)
	if err != nil {
		return err
	}
	if !actor.Role.IsManager() {
		return apperrors.NewPermissionError("only managers can unassign users")
	}
	if err := s.checkManagerTeam(intervention, actor); err != nil {
		return err
	}

	removed, err := s.assignments.Delete(id, userID, role)
	if err != nil {
		return apperrors.NewStorageError("delete assignment", err)
	}
	if removed == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	s.recordActivity(id, actorID, "user_unassigned", map[string]interface{}{
		"user_id": userID,
		"role":    role,
	})
	return nil
}

// RequestQuote assigns the provider, moves the intervention to
// demande_de_devis and creates a draft quote stub. The assignment commits
// before the status transition; a transition failure does not roll it back.
func (s *InterventionService) RequestQuote(id, actorID, providerID uuid.UUID) (*InterventionResponse, error) {
	intervention, err := s.getIntervention(id)
	if err != nil {
		return nil, err
	}
	actor, err := s.getUser(actorID)
	if err != nil {
		return nil, err
	}
	provider, err := s.getUser(providerID)
	if err != nil {
		return nil, err
	}
	if provider.Role != models.UserRolePrestataire {
		return nil, apperrors.NewValidationError("provider_id", "user does not hold the provider role")
	}

	if err := s.authorize(intervention, actor, models.StatusDemandeDeDevis); err != nil {
		return nil, err
	}

	exists, err := s.assignments.Exists(id, providerID, models.AssignmentRolePrestataire)
	if err != nil {
		return nil, apperrors.NewStorageError("check assignment", err)
	}
	if exists {
		return nil, apperrors.ErrProviderAlreadyAssigned
	}
	if err := s.assignments.Create(&models.InterventionAssignment{
		InterventionID: id,
		UserID:         providerID,
		Role:           models.AssignmentRolePrestataire,
	}); err != nil {
		return nil, apperrors.NewStorageError("create assignment", err)
	}

	s.effects.Go("provision provider thread", func() error {
		return s.conversations.Provision(id, models.ThreadTypeProviderToManagers, []uuid.UUID{providerID, actorID})
	})

	if err := s.commitTransition(intervention, models.StatusDemandeDeDevis, nil); err != nil {
		return nil, err
	}

	if err := s.quotes.Create(&models.Quote{
		InterventionID: id,
		ProviderID:     providerID,
		Status:         models.QuoteStatusDraft,
		Type:           models.QuoteTypeEstimation,
		Currency:       "EUR",
	}); err != nil {
		return nil, apperrors.NewStorageError("create quote stub", err)
	}

	s.recordActivity(id, actorID, "quote_requested", map[string]interface{}{
		"provider_id": providerID,
	})
	s.effects.Go("notify provider", func() error {
		return s.notifier.Notify(NotificationEvent{
			Type:           "quote_requested",
			Title:          "Demande de devis",
			Message:        fmt.Sprintf("Un devis est demandé pour l'intervention %q", intervention.Title),
			TeamID:         intervention.TeamID,
			InterventionID: &intervention.ID,
			ActorID:        actorID,
			Audience:       AudienceUsers(providerID),
		})
	})
	s.effects.Go("email provider", func() error {
		return s.emailer.Send(EmailEvent{
			Kind:           EmailQuoteRequested,
			Recipients:     []string{provider.Email},
			InterventionID: intervention.ID,
			Title:          intervention.Title,
		})
	})

	return s.toResponse(intervention), nil
}

// applyTransition runs the shared operation template: load, authorize,
// conditional status write, activity entry, then operation-specific effects.
func (s *InterventionService) applyTransition(
	id, actorID uuid.UUID,
	target models.InterventionStatus,
	fields map[string]interface{},
	action string,
	metadata map[string]interface{},
	sideEffects func(*models.Intervention, *models.User),
) (*InterventionResponse, error) {
	intervention, err := s.getIntervention(id)
	if err != nil {
		return nil, err
	}
	actor, err := s.getUser(actorID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(intervention, actor, target); err != nil {
		return nil, err
	}
	if err := s.commitTransition(intervention, target, fields); err != nil {
		return nil, err
	}

	s.recordActivity(id, actorID, action, metadata)
	if sideEffects != nil {
		sideEffects(intervention, actor)
	}
	return s.toResponse(intervention), nil
}

// authorize evaluates transition legality before actor eligibility: the
// legality check is pure, the eligibility checks may hit storage.
func (s *InterventionService) authorize(intervention *models.Intervention, actor *models.User, target models.InterventionStatus) error {
	if !workflow.CanTransition(intervention.Status, target) {
		return apperrors.NewValidationError("status",
			fmt.Sprintf("transition from %s to %s is not allowed", intervention.Status, target))
	}
	if !workflow.RoleAllowed(target, actor.Role) {
		return apperrors.NewPermissionError(
			fmt.Sprintf("role %s may not move an intervention to %s", actor.Role, target))
	}
	if actor.Role.IsManager() {
		if err := s.checkManagerTeam(intervention, actor); err != nil {
			return err
		}
	}
	if workflow.NeedsProviderAssignment(target, actor.Role) {
		assigned, err := s.assignments.Exists(intervention.ID, actor.ID, models.AssignmentRolePrestataire)
		if err != nil {
			return apperrors.NewStorageError("check provider assignment", err)
		}
		if !assigned {
			return apperrors.NewPermissionError("provider is not assigned to this intervention")
		}
	}
	if workflow.NeedsTenantOwnership(target, actor.Role) {
		if intervention.TenantID == nil || *intervention.TenantID != actor.ID {
			return apperrors.NewPermissionError("tenant is not the requester of this intervention")
		}
	}
	return nil
}

// commitTransition performs the guarded status write and mutates the loaded
// entity on success. Zero affected rows means the status moved concurrently.
func (s *InterventionService) commitTransition(intervention *models.Intervention, target models.InterventionStatus, fields map[string]interface{}) error {
	rows, err := s.interventions.UpdateStatusFrom(intervention.ID, intervention.Status, target, fields)
	if err != nil {
		return apperrors.NewStorageError("update intervention status", err)
	}
	if rows == 0 {
		return apperrors.NewValidationError("status", "intervention status changed concurrently")
	}
	intervention.Status = target
	return nil
}

func (s *InterventionService) checkManagerTeam(intervention *models.Intervention, actor *models.User) error {
	if actor.Role == models.UserRoleAdmin {
		return nil
	}
	if actor.TeamID == nil || *actor.TeamID != intervention.TeamID {
		return apperrors.NewPermissionError("manager does not belong to the intervention's team")
	}
	return nil
}

func (s *InterventionService) getIntervention(id uuid.UUID) (*models.Intervention, error) {
	intervention, err := s.interventions.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInterventionNotFound
		}
		return nil, apperrors.NewStorageError("get intervention", err)
	}
	return intervention, nil
}

func (s *InterventionService) getUser(id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError("get user", err)
	}
	return user, nil
}

func (s *InterventionService) recordActivity(interventionID, actorID uuid.UUID, action string, metadata map[string]interface{}) {
	s.effects.Go("activity log", func() error {
		return s.activity.Record(interventionID, actorID, action, metadata)
	})
}

func (s *InterventionService) notifyTeam(intervention *models.Intervention, actorID uuid.UUID, eventType, title, message string, audience Audience) {
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

func (s *InterventionService) notifyTenant(intervention *models.Intervention, actorID uuid.UUID, eventType, title, message string) {
	if intervention.TenantID == nil {
		return
	}
	s.notifyTeam(intervention, actorID, eventType, title, message, AudienceUsers(*intervention.TenantID))
}

func (s *InterventionService) emailTenant(intervention *models.Intervention, kind EmailKind, fields map[string]string) {
	if intervention.TenantID == nil {
		return
	}
	tenantID := *intervention.TenantID
	s.effects.Go("email "+string(kind), func() error {
		tenant, err := s.users.GetByID(tenantID)
		if err != nil {
			return err
		}
		return s.emailer.Send(EmailEvent{
			Kind:           kind,
			Recipients:     []string{tenant.Email},
			InterventionID: intervention.ID,
			Title:          intervention.Title,
			Fields:         fields,
		})
	})
}

func (s *InterventionService) threadParticipants(intervention *models.Intervention, actor *models.User) []uuid.UUID {
	participants := []uuid.UUID{actor.ID}
	if intervention.TenantID != nil && *intervention.TenantID != actor.ID {
		participants = append(participants, *intervention.TenantID)
	}
	return participants
}

func (s *InterventionService) toResponse(intervention *models.Intervention) *InterventionResponse {
	return &InterventionResponse{
		ID:             intervention.ID,
		TeamID:         intervention.TeamID,
		Title:          intervention.Title,
		Description:    intervention.Description,
		Status:         intervention.Status,
		Urgency:        intervention.Urgency,
		Type:           intervention.Type,
		TenantID:       intervention.TenantID,
		BuildingID:     intervention.BuildingID,
		LotID:          intervention.LotID,
		ScheduledDate:  intervention.ScheduledDate,
		SelectedSlotID: intervention.SelectedSlotID,
		EstimatedCost:  intervention.EstimatedCost,
		FinalCost:      intervention.FinalCost,
		CreatedAt:      intervention.CreatedAt,
		UpdatedAt:      intervention.UpdatedAt,
	}
}
