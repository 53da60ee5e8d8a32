package handlers

import (
	"net/http"
	"time"

	"property-portal-backend/internal/auth"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuoteHandler handles HTTP requests for the quote subsystem
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// CreateQuote handles POST /interventions/:id/quotes
// @Summary Create a quote draft
// @Description Create a draft quote authored by the assigned provider
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Param quote body service.CreateQuoteRequest true "Quote data"
// @Success 201 {object} SuccessResponse "Quote created"
// @Failure 400 {object} ErrorResponse "Invalid amount or line items"
// @Failure 403 {object} ErrorResponse "Actor is not the assigned provider"
// @Security BearerAuth
// @Router /interventions/{id}/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	interventionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid intervention ID")
		return
	}
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	quote, err := h.quoteService.CreateQuote(interventionID, actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, quote)
}

// ListQuotes handles GET /interventions/:id/quotes
// @Summary List quotes of an intervention
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Success 200 {object} SuccessResponse "Quotes"
// @Failure 404 {object} ErrorResponse "Intervention not found"
// @Security BearerAuth
// @Router /interventions/{id}/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	interventionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid intervention ID")
		return
	}

	quotes, err := h.quoteService.GetByIntervention(interventionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, quotes)
}

// SendQuote handles POST /quotes/:id/send
// @Summary Send a draft quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 200 {object} SuccessResponse "Quote sent"
// @Failure 400 {object} ErrorResponse "Quote is not a draft"
// @Failure 403 {object} ErrorResponse "Only the authoring provider sends"
// @Security BearerAuth
// @Router /quotes/{id}/send [post]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid quote ID")
		return
	}
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	quote, err := h.quoteService.SendQuote(quoteID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, quote)
}

// AcceptQuote handles POST /quotes/:id/accept
// @Summary Accept a sent quote
// @Description Accept a quote and record its amount as the intervention's estimated cost
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 200 {object} SuccessResponse "Quote accepted"
// @Failure 400 {object} ErrorResponse "Quote is not sent"
// @Failure 403 {object} ErrorResponse "Only managers decide"
// @Failure 409 {object} ErrorResponse "An accepted final quote already exists"
// @Security BearerAuth
// @Router /quotes/{id}/accept [post]
func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid quote ID")
		return
	}
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	quote, err := h.quoteService.AcceptQuote(quoteID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, quote)
}

// RejectQuote handles POST /quotes/:id/reject
// @Summary Reject a sent quote
// @Description Reject a quote with a mandatory reason
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Param body body service.RejectQuoteRequest true "Rejection reason"
// @Success 200 {object} SuccessResponse "Quote rejected"
// @Failure 400 {object} ErrorResponse "Missing reason or quote not sent"
// @Failure 403 {object} ErrorResponse "Only managers decide"
// @Security BearerAuth
// @Router /quotes/{id}/reject [post]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid quote ID")
		return
	}
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.RejectQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	quote, err := h.quoteService.RejectQuote(quoteID, actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, quote)
}

// ExpireQuotes handles POST /quotes/expire
// @Summary Expire stale sent quotes
// @Description Move the caller team's sent quotes past their validity date to expired
// @Tags quotes
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse "Number of expired quotes"
// @Failure 400 {object} ErrorResponse "Caller has no team"
// @Security BearerAuth
// @Router /quotes/expire [post]
func (h *QuoteHandler) ExpireQuotes(c *gin.Context) {
	teamID, ok := auth.GetTeamID(c)
	if !ok {
		respondBadRequest(c, "caller has no team")
		return
	}

	expired, err := h.quoteService.MarkExpiredQuotes(teamID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"expired": expired})
}
