package handlers

import (
	"net/http"

	"property-portal-backend/internal/auth"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TimeSlotHandler handles HTTP requests for the scheduling subsystem
type TimeSlotHandler struct {
	scheduleService *service.ScheduleService
}

// NewTimeSlotHandler creates a new time slot handler
func NewTimeSlotHandler(scheduleService *service.ScheduleService) *TimeSlotHandler {
	return &TimeSlotHandler{
		scheduleService: scheduleService,
	}
}

// ProposeSlots handles POST /interventions/:id/slots
// @Summary Propose candidate time slots
// @Description Propose a batch of appointment windows for a planning intervention
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Param slots body service.ProposeSlotsRequest true "Slot proposals"
// @Success 201 {object} SuccessResponse "Slots proposed"
// @Failure 400 {object} ErrorResponse "Invalid request body or intervention not planning"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /interventions/{id}/slots [post]
func (h *TimeSlotHandler) ProposeSlots(c *gin.Context) {
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

	var req service.ProposeSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	slots, err := h.scheduleService.ProposeSlots(interventionID, actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, slots)
}

// ListSlots handles GET /interventions/:id/slots
// @Summary List time slots of an intervention
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID (UUID)"
// @Success 200 {object} SuccessResponse "Slots with responses"
// @Failure 404 {object} ErrorResponse "Intervention not found"
// @Security BearerAuth
// @Router /interventions/{id}/slots [get]
func (h *TimeSlotHandler) ListSlots(c *gin.Context) {
	interventionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid intervention ID")
		return
	}

	slots, err := h.scheduleService.ListSlots(interventionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, slots)
}

// RespondToSlot handles POST /slots/:id/respond
// @Summary Record a response on a slot
// @Description Accept or reject a proposed slot; responding again overwrites the previous answer
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Slot ID (UUID)"
// @Param response body service.SlotResponseRequest true "Response"
// @Success 200 {object} SuccessResponse "Response recorded"
// @Failure 400 {object} ErrorResponse "Slot no longer accepts responses"
// @Failure 403 {object} ErrorResponse "Actor may not respond"
// @Security BearerAuth
// @Router /slots/{id}/respond [post]
func (h *TimeSlotHandler) RespondToSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid slot ID")
		return
	}
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.SlotResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.scheduleService.RecordResponse(slotID, actorID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"recorded": true})
}

// CanFinalize handles GET /slots/:id/can-finalize
// @Summary Check slot agreement
// @Description Report whether a slot gathered tenant and provider acceptance
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Slot ID (UUID)"
// @Success 200 {object} SuccessResponse "Agreement state"
// @Failure 404 {object} ErrorResponse "Slot not found"
// @Security BearerAuth
// @Router /slots/{id}/can-finalize [get]
func (h *TimeSlotHandler) CanFinalize(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid slot ID")
		return
	}

	check, err := h.scheduleService.CanFinalize(slotID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, check)
}

// ConfirmSchedule handles POST /slots/:id/confirm
// @Summary Confirm a slot and schedule the intervention
// @Description Select the slot and move the intervention from planification to planifiee
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Slot ID (UUID)"
// @Success 200 {object} SuccessResponse "Schedule confirmed"
// @Failure 400 {object} ErrorResponse "Slot or intervention status does not permit confirmation"
// @Failure 403 {object} ErrorResponse "Only managers confirm"
// @Security BearerAuth
// @Router /slots/{id}/confirm [post]
func (h *TimeSlotHandler) ConfirmSchedule(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid slot ID")
		return
	}
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	slot, err := h.scheduleService.ConfirmSchedule(slotID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, slot)
}
