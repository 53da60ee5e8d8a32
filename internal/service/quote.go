package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// maxQuoteAmount is the ceiling on a single quote
	maxQuoteAmount = 1_000_000.0
	// lineItemEpsilon tolerates float drift between the amount and the
	// line-item sum
	lineItemEpsilon = 0.01
)

// QuoteService handles the draft, send, accept, reject and expire cycle of
// provider quotes.
type QuoteService struct {
	quotes        repository.QuoteRepositoryInterface
	interventions repository.InterventionRepositoryInterface
	assignments   repository.AssignmentRepositoryInterface
	users         repository.UserRepositoryInterface
	validator     *validator.Validate
	effects       *Dispatcher
	notifier      Notifier
	activity      ActivityRecorder
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quotes repository.QuoteRepositoryInterface,
	interventions repository.InterventionRepositoryInterface,
	assignments repository.AssignmentRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
	effects *Dispatcher,
	notifier Notifier,
	activity ActivityRecorder,
) *QuoteService {
	return &QuoteService{
		quotes:        quotes,
		interventions: interventions,
		assignments:   assignments,
		users:         users,
		validator:     validator,
		effects:       effects,
		notifier:      notifier,
		activity:      activity,
	}
}

// LineItemRequest is a single billed line in a quote creation request
type LineItemRequest struct {
	Description string  `json:"description" validate:"required,max=255"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	Total       float64 `json:"total" validate:"gte=0"`
}

// CreateQuoteRequest represents the request to create a quote draft
type CreateQuoteRequest struct {
	Amount     float64           `json:"amount" validate:"required,gt=0"`
	Currency   string            `json:"currency,omitempty" validate:"omitempty,len=3"`
	Type       models.QuoteType  `json:"type,omitempty"`
	ValidUntil *time.Time        `json:"valid_until,omitempty"`
	LineItems  []LineItemRequest `json:"line_items,omitempty" validate:"omitempty,dive"`
}

// RejectQuoteRequest represents the request to reject a sent quote
type RejectQuoteRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// QuoteResponse represents a quote in API responses
type QuoteResponse struct {
	ID              uuid.UUID          `json:"id"`
	InterventionID  uuid.UUID          `json:"intervention_id"`
	ProviderID      uuid.UUID          `json:"provider_id"`
	Amount          float64            `json:"amount"`
	Currency        string             `json:"currency"`
	Status          models.QuoteStatus `json:"status"`
	Type            models.QuoteType   `json:"type"`
	ValidUntil      *time.Time         `json:"valid_until,omitempty"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	LineItems       []LineItemResponse `json:"line_items,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// LineItemResponse represents a billed line in API responses
type LineItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
}

// CreateQuote creates a quote draft authored by the assigned provider. The
// amount must stay under the ceiling and, when line items are given, match
// their sum within a cent.
func (s *QuoteService) CreateQuote(interventionID, actorID uuid.UUID, req *CreateQuoteRequest) (*QuoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Amount > maxQuoteAmount {
		return nil, apperrors.NewValidationError("amount",
			fmt.Sprintf("amount exceeds the %.0f ceiling", maxQuoteAmount))
	}
	quoteType := req.Type
	if quoteType == "" {
		quoteType = models.QuoteTypeEstimation
	}
	switch quoteType {
	case models.QuoteTypeEstimation, models.QuoteTypeFinal:
	default:
		return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown quote type %q", quoteType))
	}
	if req.ValidUntil != nil && !req.ValidUntil.After(time.Now()) {
		return nil, apperrors.NewValidationError("valid_until", "must be in the future")
	}
	if len(req.LineItems) > 0 {
		var sum float64
		for i, item := range req.LineItems {
			expected := item.Quantity * item.UnitPrice
			if math.Abs(item.Total-expected) > lineItemEpsilon {
				return nil, apperrors.NewValidationError(fmt.Sprintf("line_items[%d].total", i),
					"total does not match quantity times unit price")
			}
			sum += item.Total
		}
		if math.Abs(sum-req.Amount) > lineItemEpsilon {
			return nil, apperrors.NewValidationError("amount",
				fmt.Sprintf("amount %.2f does not match line item sum %.2f", req.Amount, sum))
		}
	}

	intervention, err := s.getIntervention(interventionID)
	if err != nil {
		return nil, err
	}
	actor, err := s.getUser(actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.UserRolePrestataire {
		return nil, apperrors.NewPermissionError("only providers author quotes")
	}
	assigned, err := s.assignments.Exists(interventionID, actorID, models.AssignmentRolePrestataire)
	if err != nil {
		return nil, apperrors.NewStorageError("check provider assignment", err)
	}
	if !assigned {
		return nil, apperrors.NewPermissionError("provider is not assigned to this intervention")
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	quote := &models.Quote{
		InterventionID: interventionID,
		ProviderID:     actorID,
		Amount:         req.Amount,
		Currency:       currency,
		Status:         models.QuoteStatusDraft,
		Type:           quoteType,
		ValidUntil:     req.ValidUntil,
	}
	for _, item := range req.LineItems {
		quote.LineItems = append(quote.LineItems, models.QuoteLineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	if err := s.quotes.Create(quote); err != nil {
		return nil, apperrors.NewStorageError("create quote", err)
	}

	s.recordActivity(intervention.ID, actorID, "quote_created", map[string]interface{}{
		"quote_id": quote.ID,
		"amount":   quote.Amount,
	})
	return toQuoteResponse(quote), nil
}

// GetByIntervention returns every quote attached to an intervention
func (s *QuoteService) GetByIntervention(interventionID uuid.UUID) ([]QuoteResponse, error) {
	if _, err := s.getIntervention(interventionID); err != nil {
		return nil, err
	}
	quotes, err := s.quotes.GetByIntervention(interventionID)
	if err != nil {
		return nil, apperrors.NewStorageError("list quotes", err)
	}
	responses := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		responses[i] = *toQuoteResponse(&quotes[i])
	}
	return responses, nil
}

// SendQuote moves a draft to sent. Only the authoring provider may send, and
// the quote must carry a positive amount.
func (s *QuoteService) SendQuote(quoteID, actorID uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.getQuote(quoteID)
	if err != nil {
		return nil, err
	}
	intervention, err := s.getIntervention(quote.InterventionID)
	if err != nil {
		return nil, err
	}
	if quote.ProviderID != actorID {
		return nil, apperrors.NewPermissionError("only the authoring provider can send a quote")
	}
	if quote.Status != models.QuoteStatusDraft {
		return nil, apperrors.ErrQuoteNotDraft
	}
	if quote.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "quote amount must be set before sending")
	}

	rows, err := s.quotes.UpdateStatusFrom(quoteID, models.QuoteStatusDraft, models.QuoteStatusSent, nil)
	if err != nil {
		return nil, apperrors.NewStorageError("send quote", err)
	}
	if rows == 0 {
		return nil, apperrors.NewValidationError("status", "quote status changed concurrently")
	}
	quote.Status = models.QuoteStatusSent

	s.recordActivity(quote.InterventionID, actorID, "quote_sent", map[string]interface{}{
		"quote_id": quote.ID,
		"amount":   quote.Amount,
	})
	s.notifyManagers(quote, actorID, intervention.TeamID, "quote_sent", "Devis reçu",
		fmt.Sprintf("Un devis de %.2f %s a été soumis", quote.Amount, quote.Currency))
	return toQuoteResponse(quote), nil
}

// AcceptQuote moves a sent quote to accepted and pushes the amount onto the
// intervention as its estimated cost. At most one final quote may be accepted
// per intervention.
func (s *QuoteService) AcceptQuote(quoteID, actorID uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.getQuote(quoteID)
	if err != nil {
		return nil, err
	}
	intervention, err := s.getIntervention(quote.InterventionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkManager(intervention, actorID); err != nil {
		return nil, err
	}
	if quote.Status != models.QuoteStatusSent {
		return nil, apperrors.ErrQuoteNotSent
	}

	if quote.Type == models.QuoteTypeFinal {
		siblings, err := s.quotes.GetByIntervention(quote.InterventionID)
		if err != nil {
			return nil, apperrors.NewStorageError("list quotes", err)
		}
		for _, sibling := range siblings {
			if sibling.ID != quote.ID && sibling.Type == models.QuoteTypeFinal && sibling.Status == models.QuoteStatusAccepted {
				return nil, apperrors.ErrAcceptedFinalQuoteExists
			}
		}
	}

	rows, err := s.quotes.UpdateStatusFrom(quoteID, models.QuoteStatusSent, models.QuoteStatusAccepted, nil)
	if err != nil {
		return nil, apperrors.NewStorageError("accept quote", err)
	}
	if rows == 0 {
		return nil, apperrors.NewValidationError("status", "quote status changed concurrently")
	}
	quote.Status = models.QuoteStatusAccepted

	// Acceptance usually unblocks the waiting intervention. When the
	// intervention already left demande_de_devis only the cost is recorded.
	rows, err = s.interventions.UpdateStatusFrom(intervention.ID, models.StatusDemandeDeDevis, models.StatusPlanification, map[string]interface{}{
		"estimated_cost": quote.Amount,
	})
	if err != nil {
		return nil, apperrors.NewStorageError("update intervention status", err)
	}
	if rows > 0 {
		intervention.Status = models.StatusPlanification
	} else {
		// Targeted write: the loaded row is stale at this point and a full
		// save could undo a status transition that raced ahead of us.
		intervention.EstimatedCost = &quote.Amount
		s.effects.Go("record estimated cost", func() error {
			return s.interventions.RecordEstimatedCost(intervention.ID, quote.Amount)
		})
	}

	s.recordActivity(quote.InterventionID, actorID, "quote_accepted", map[string]interface{}{
		"quote_id": quote.ID,
		"amount":   quote.Amount,
	})
	s.notifyProvider(quote, actorID, intervention.TeamID, "quote_accepted", "Devis accepté",
		fmt.Sprintf("Votre devis de %.2f %s a été accepté", quote.Amount, quote.Currency))
	return toQuoteResponse(quote), nil
}

// RejectQuote moves a sent quote to rejected with a mandatory reason
func (s *QuoteService) RejectQuote(quoteID, actorID uuid.UUID, req *RejectQuoteRequest) (*QuoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrRejectionReason
	}

	quote, err := s.getQuote(quoteID)
	if err != nil {
		return nil, err
	}
	intervention, err := s.getIntervention(quote.InterventionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkManager(intervention, actorID); err != nil {
		return nil, err
	}
	if quote.Status != models.QuoteStatusSent {
		return nil, apperrors.ErrQuoteNotSent
	}

	rows, err := s.quotes.UpdateStatusFrom(quoteID, models.QuoteStatusSent, models.QuoteStatusRejected, map[string]interface{}{
		"rejection_reason": req.Reason,
	})
	if err != nil {
		return nil, apperrors.NewStorageError("reject quote", err)
	}
	if rows == 0 {
		return nil, apperrors.NewValidationError("status", "quote status changed concurrently")
	}
	quote.Status = models.QuoteStatusRejected
	quote.RejectionReason = req.Reason

	s.recordActivity(quote.InterventionID, actorID, "quote_rejected", map[string]interface{}{
		"quote_id": quote.ID,
		"reason":   req.Reason,
	})
	s.notifyProvider(quote, actorID, intervention.TeamID, "quote_rejected", "Devis refusé",
		fmt.Sprintf("Votre devis a été refusé: %s", req.Reason))
	return toQuoteResponse(quote), nil
}

// MarkExpiredQuotes sweeps a team's sent quotes whose validity date passed
// and moves them to expired. Returns how many quotes were expired.
func (s *QuoteService) MarkExpiredQuotes(teamID uuid.UUID, now time.Time) (int, error) {
	quotes, err := s.quotes.GetExpiredSent(teamID, now)
	if err != nil {
		return 0, apperrors.NewStorageError("list expired quotes", err)
	}

	expired := 0
	for i := range quotes {
		rows, err := s.quotes.UpdateStatusFrom(quotes[i].ID, models.QuoteStatusSent, models.QuoteStatusExpired, nil)
		if err != nil {
			return expired, apperrors.NewStorageError("expire quote", err)
		}
		// Zero rows means the quote was accepted or rejected between the
		// sweep query and this write. Skip it.
		if rows > 0 {
			expired++
		}
	}
	return expired, nil
}

func (s *QuoteService) checkManager(intervention *models.Intervention, actorID uuid.UUID) error {
	actor, err := s.getUser(actorID)
	if err != nil {
		return err
	}
	if !actor.Role.IsManager() {
		return apperrors.NewPermissionError("only managers decide on quotes")
	}
	if actor.Role == models.UserRoleAdmin {
		return nil
	}
	if actor.TeamID == nil || *actor.TeamID != intervention.TeamID {
		return apperrors.NewPermissionError("manager does not belong to the intervention's team")
	}
	return nil
}

func (s *QuoteService) notifyManagers(quote *models.Quote, actorID uuid.UUID, teamID uuid.UUID, eventType, title, message string) {
	s.effects.Go("notify "+eventType, func() error {
		return s.notifier.Notify(NotificationEvent{
			Type:           eventType,
			Title:          title,
			Message:        message,
			TeamID:         teamID,
			InterventionID: &quote.InterventionID,
			ActorID:        actorID,
			Audience:       AudienceRoles(models.UserRoleGestionnaire),
		})
	})
}

func (s *QuoteService) notifyProvider(quote *models.Quote, actorID uuid.UUID, teamID uuid.UUID, eventType, title, message string) {
	s.effects.Go("notify "+eventType, func() error {
		return s.notifier.Notify(NotificationEvent{
			Type:           eventType,
			Title:          title,
			Message:        message,
			TeamID:         teamID,
			InterventionID: &quote.InterventionID,
			ActorID:        actorID,
			Audience:       AudienceUsers(quote.ProviderID),
		})
	})
}

func (s *QuoteService) recordActivity(interventionID, actorID uuid.UUID, action string, metadata map[string]interface{}) {
	s.effects.Go("activity log", func() error {
		return s.activity.Record(interventionID, actorID, action, metadata)
	})
}

func (s *QuoteService) getQuote(id uuid.UUID) (*models.Quote, error) {
	quote, err := s.quotes.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuoteNotFound
		}
		return nil, apperrors.NewStorageError("get quote", err)
	}
	return quote, nil
}

func (s *QuoteService) getIntervention(id uuid.UUID) (*models.Intervention, error) {
	intervention, err := s.interventions.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInterventionNotFound
		}
		return nil, apperrors.NewStorageError("get intervention", err)
	}
	return intervention, nil
}

func (s *QuoteService) getUser(id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError("get user", err)
	}
	return user, nil
}

func toQuoteResponse(quote *models.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		ID:              quote.ID,
		InterventionID:  quote.InterventionID,
		ProviderID:      quote.ProviderID,
		Amount:          quote.Amount,
		Currency:        quote.Currency,
		Status:          quote.Status,
		Type:            quote.Type,
		ValidUntil:      quote.ValidUntil,
		RejectionReason: quote.RejectionReason,
		CreatedAt:       quote.CreatedAt,
		UpdatedAt:       quote.UpdatedAt,
	}
	for _, item := range quote.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	return resp
}
