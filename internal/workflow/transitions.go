package workflow

import (
	"property-portal-backend/internal/database/models"
)

// transitions is the static graph of legal status moves. It is built once at
// package init and never mutated at runtime.
var transitions = map[models.InterventionStatus][]models.InterventionStatus{
	models.StatusDemande:        {models.StatusRejetee, models.StatusApprouvee},
	models.StatusApprouvee:      {models.StatusDemandeDeDevis, models.StatusPlanification, models.StatusAnnulee},
	models.StatusDemandeDeDevis: {models.StatusPlanification, models.StatusAnnulee},
	models.StatusPlanification:  {models.StatusPlanifiee, models.StatusAnnulee},
	models.StatusPlanifiee:      {models.StatusEnCours, models.StatusAnnulee},
	models.StatusEnCours:        {models.StatusClotureeParPrestataire, models.StatusAnnulee},
	// reopen on tenant contest
	models.StatusClotureeParPrestataire: {models.StatusClotureeParLocataire, models.StatusEnCours},
	models.StatusClotureeParLocataire:   {models.StatusClotureeParGestionnaire},
	// terminal states
	models.StatusRejetee:                 {},
	models.StatusClotureeParGestionnaire: {},
	models.StatusAnnulee:                 {},
}

// CanTransition reports whether moving from one status to another is legal
func CanTransition(from, to models.InterventionStatus) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	for _, target := range allowed {
		if target == to {
			return true
		}
	}
	return false
}

// AllowedTargets returns the legal next statuses from the given status
func AllowedTargets(from models.InterventionStatus) []models.InterventionStatus {
	allowed, ok := transitions[from]
	if !ok {
		return nil
	}
	out := make([]models.InterventionStatus, len(allowed))
	copy(out, allowed)
	return out
}

// IsTerminal reports whether the status has no outbound edges
func IsTerminal(s models.InterventionStatus) bool {
	return len(transitions[s]) == 0 && s.IsValid()
}

// AllStatuses lists every lifecycle status, for exhaustive checks
func AllStatuses() []models.InterventionStatus {
	return []models.InterventionStatus{
		models.StatusDemande,
		models.StatusRejetee,
		models.StatusApprouvee,
		models.StatusDemandeDeDevis,
		models.StatusPlanification,
		models.StatusPlanifiee,
		models.StatusEnCours,
		models.StatusClotureeParPrestataire,
		models.StatusClotureeParLocataire,
		models.StatusClotureeParGestionnaire,
		models.StatusAnnulee,
	}
}
