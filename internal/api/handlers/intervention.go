package handlers

import (
	"net/http"
	"strconv"

	"property-portal-backend/internal/auth"
	"property-portal-backend/internal/database/models"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InterventionHandler handles HTTP requests for intervention lifecycle operations
type InterventionHandler struct {
	interventionService *service.InterventionService
}

// NewInterventionHandler creates a new intervention handler
func NewInterventionHandler(interventionService *service.InterventionService) *InterventionHandler {
	return &InterventionHandler{
		interventionService: interventionService,
	}
}

// transitionRequest carries the optional fields of status transition endpoints
type transitionRequest struct {
	Reason    string   `json:"reason,omitempty"`
	FinalCost *float64 `json:"final_cost,omitempty"`
}

// requestQuoteRequest identifies the provider asked for a quote
type requestQuoteRequest struct {
	ProviderID uuid.UUID `json:"provider_id" binding:"required"`
}

// unassignRequest identifies the assignment to remove
type unassignRequest struct {
	UserID uuid.UUID             `json:"user_id" binding:"required"`
	Role   models.AssignmentRole `json:"role" binding:"required"`
}

// CreateIntervention handles POST /interventions
// @Summary Create a new intervention
// @Description Create an intervention request; tenants create in demande, managers in approuvee
// @Tags interventions
// @Accept json
// @Produce json
// @Param intervention body service.CreateInterventionRequest true "Intervention data"
// @Success 201 {object} SuccessResponse "Successfully created intervention"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role may not create interventions"
// @Security BearerAuth
// @Router /interventions [post]
func (h *InterventionHandler) CreateIntervention(c *gin.Context) {
	var req service.CreateInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	intervention, err := h.interventionService.RequestIntervention(&req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, intervention)
}

// GetIntervention handles GET /interventions/:id
// @Summary Get intervention by ID
// @Description Get a specific intervention by its UUID
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Success 200 {object} SuccessResponse "Successfully retrieved intervention"
// @Failure 400 {object} ErrorResponse "Invalid intervention ID"
// @Failure 404 {object} ErrorResponse "Intervention not found"
// @Security BearerAuth
// @Router /interventions/{id} [get]
func (h *InterventionHandler) GetIntervention(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid intervention ID")
		return
	}

	intervention, err := h.interventionService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, intervention)
}

// ListInterventions handles GET /interventions
// @Summary List interventions of the caller's team
// @Description Get the team's interventions with optional status and urgency filters
// @Tags interventions
// @Accept json
// @Produce json
// @Param status query string false "Status filter"
// @Param urgency query string false "Urgency filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} SuccessResponse "Successfully retrieved interventions"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /interventions [get]
func (h *InterventionHandler) ListInterventions(c *gin.Context) {
	teamID, ok := auth.GetTeamID(c)
	if !ok {
		respondBadRequest(c, "caller has no team")
		return
	}

	var status *models.InterventionStatus
	if s := c.Query("status"); s != "" {
		st := models.InterventionStatus(s)
		if !st.IsValid() {
			respondBadRequest(c, "unknown status "+s)
			return
		}
		status = &st
	}
	var urgency *models.InterventionUrgency
	if u := c.Query("urgency"); u != "" {
		ur := models.InterventionUrgency(u)
		if !ur.IsValid() {
			respondBadRequest(c, "unknown urgency "+u)
			return
		}
		urgency = &ur
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		respondBadRequest(c, "invalid page")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 {
		respondBadRequest(c, "invalid page_size")
		return
	}

	list, err := h.interventionService.ListByTeam(teamID, status, urgency, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// Approve handles POST /interventions/:id/approve
// @Summary Approve a requested intervention
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Success 200 {object} SuccessResponse "Intervention approved"
// @Failure 400 {object} ErrorResponse "Illegal transition"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /interventions/{id}/approve [post]
func (h *InterventionHandler) Approve(c *gin.Context) {
	h.transition(c, func(id, actorID uuid.UUID, _ *transitionRequest) (*service.InterventionResponse, error) {
		return h.interventionService.Approve(id, actorID)
	})
}

// Reject handles POST /interventions/:id/reject
// @Summary Reject a requested intervention
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Param body body transitionRequest false "Rejection reason"
// @Success 200 {object} SuccessResponse "Intervention rejected"
// @Failure 400 {object} ErrorResponse "Illegal transition"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /interventions/{id}/reject [post]
func (h *InterventionHandler) Reject(c *gin.Context) {
	h.transition(c, func(id, actorID uuid.UUID, req *transitionRequest) (*service.InterventionResponse, error) {
		return h.interventionService.Reject(id, actorID, req.Reason)
	})
}

// StartPlanning handles POST /interventions/:id/plan
// @Summary Move an approved intervention into planning
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Success 200 {object} SuccessResponse "Planning started"
// @Failure 400 {object} ErrorResponse "Illegal transition"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /interventions/{id}/plan [post]
func (h *InterventionHandler) StartPlanning(c *gin.Context) {
	h.transition(c, func(id, actorID uuid.UUID, _ *transitionRequest) (*service.InterventionResponse, error) {
		return h.interventionService.StartPlanning(id, actorID)
	})
}

// Start handles POST /interventions/:id/start
// @Summary Start the scheduled work
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Success 200 {object} SuccessResponse "Work started"
// @Failure 400 {object} ErrorResponse "Illegal transition"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /interventions/{id}/start [post]
func (h *InterventionHandler) Start(c *gin.Context) {
	h.transition(c, func(id, actorID uuid.UUID, _ *transitionRequest) (*service.InterventionResponse, error) {
		return h.interventionService.Start(id, actorID)
	})
}

// Complete handles POST /interventions/:id/complete
// @Summary Mark the work finished by the provider
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Success 200 {object} SuccessResponse "Work completed"
// @Failure 400 {object} ErrorResponse "Illegal transition"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /interventions/{id}/complete [post]
func (h *InterventionHandler) Complete(c *gin.Context) {
	h.transition(c, func(id, actorID uuid.UUID, _ *transitionRequest) (*service.InterventionResponse, error) {
		return h.interventionService.CompleteByProvider(id, actorID)
	})
}

// Validate handles POST /interventions/:id/validate
// @Summary Tenant validation of the finished work
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Success 200 {object} SuccessResponse "Work validated"
// @Failure 400 {object} ErrorResponse "Illegal transition"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /interventions/{id}/validate [post]
func (h *InterventionHandler) Validate(c *gin.Context) {
	h.transition(c, func(id, actorID uuid.UUID, _ *transitionRequest) (*service.InterventionResponse, error) {
		return h.interventionService.ValidateByTenant(id, actorID)
	})
}

// Finalize handles POST /interventions/:id/finalize
// @Summary Manager closure with optional final cost
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Param body body transitionRequest false "Final cost"
// @Success 200 {object} SuccessResponse "Intervention finalized"
// @Failure 400 {object} ErrorResponse "Illegal transition"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /interventions/{id}/finalize [post]
func (h *InterventionHandler) Finalize(c *gin.Context) {
	h.transition(c, func(id, actorID uuid.UUID, req *transitionRequest) (*service.InterventionResponse, error) {
		return h.interventionService.FinalizeByManager(id, actorID, req.FinalCost)
	})
}

// Cancel handles POST /interventions/:id/cancel
// @Summary Cancel an intervention
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Param body body transitionRequest false "Cancellation reason"
// @Success 200 {object} SuccessResponse "Intervention cancelled"
// @Failure 400 {object} ErrorResponse "Illegal transition"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /interventions/{id}/cancel [post]
func (h *InterventionHandler) Cancel(c *gin.Context) {
	h.transition(c, func(id, actorID uuid.UUID, req *transitionRequest) (*service.InterventionResponse, error) {
		return h.interventionService.Cancel(id, actorID, req.Reason)
	})
}

// DeleteIntervention handles DELETE /interventions/:id
// @Summary Soft-delete an intervention
// @Description Delete an intervention; blocked while work is in progress or after manager closure
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Success 200 {object} SuccessResponse "Intervention deleted"
// @Failure 400 {object} ErrorResponse "Status does not permit deletion"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 404 {object} ErrorResponse "Intervention not found"
// @Security BearerAuth
// @Router /interventions/{id} [delete]
func (h *InterventionHandler) DeleteIntervention(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid intervention ID")
		return
	}
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.interventionService.Delete(id, actorID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

// AssignUser handles POST /interventions/:id/assignments
// @Summary Assign a user to an intervention
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Param assignment body service.AssignUserRequest true "Assignment data"
// @Success 201 {object} SuccessResponse "User assigned"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Assignment already exists"
// @Security BearerAuth
// @Router /interventions/{id}/assignments [post]
func (h *InterventionHandler) AssignUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid intervention ID")
		return
	}
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.AssignUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.interventionService.AssignUser(id, actorID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"assigned": true})
}

// UnassignUser handles DELETE /interventions/:id/assignments
// @Summary Remove a user assignment
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Param assignment body unassignRequest true "Assignment to remove"
// @Success 200 {object} SuccessResponse "User unassigned"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /interventions/{id}/assignments [delete]
func (h *InterventionHandler) UnassignUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid intervention ID")
		return
	}
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req unassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.interventionService.UnassignUser(id, actorID, req.UserID, req.Role); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"unassigned": true})
}

// RequestQuote handles POST /interventions/:id/request-quote
// @Summary Ask a provider for a quote
// @Description Assign the provider and move the intervention to demande_de_devis
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Param body body requestQuoteRequest true "Provider"
// @Success 200 {object} SuccessResponse "Quote requested"
// @Failure 400 {object} ErrorResponse "Illegal transition"
// @Failure 409 {object} ErrorResponse "Provider already assigned"
// @Security BearerAuth
// @Router /interventions/{id}/request-quote [post]
func (h *InterventionHandler) RequestQuote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid intervention ID")
		return
	}
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req requestQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	intervention, err := h.interventionService.RequestQuote(id, actorID, req.ProviderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, intervention)
}

// transition is the shared shape of the status transition endpoints. The
// request body is optional; endpoints that need no payload ignore it.
func (h *InterventionHandler) transition(c *gin.Context, apply func(id, actorID uuid.UUID, req *transitionRequest) (*service.InterventionResponse, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid intervention ID")
		return
	}
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	req := &transitionRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(req); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
	}

	intervention, err := apply(id, actorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, intervention)
}
