package workflow

import (
	"property-portal-backend/internal/database/models"
)

// requiredRoles maps each target status to the global roles allowed to drive
// the intervention into it. Role checks are necessary but not sufficient:
// providers must additionally hold a prestataire assignment on the
// intervention, and tenants must be the intervention's requester.
var requiredRoles = map[models.InterventionStatus][]models.UserRole{
	models.StatusApprouvee:               {models.UserRoleGestionnaire, models.UserRoleAdmin},
	models.StatusRejetee:                 {models.UserRoleGestionnaire, models.UserRoleAdmin},
	models.StatusDemandeDeDevis:          {models.UserRoleGestionnaire, models.UserRoleAdmin},
	models.StatusPlanification:           {models.UserRoleGestionnaire, models.UserRoleAdmin},
	models.StatusClotureeParGestionnaire: {models.UserRoleGestionnaire, models.UserRoleAdmin},
	models.StatusPlanifiee:               {models.UserRoleGestionnaire, models.UserRoleAdmin, models.UserRolePrestataire},
	models.StatusEnCours:                 {models.UserRolePrestataire},
	models.StatusClotureeParPrestataire:  {models.UserRolePrestataire},
	models.StatusClotureeParLocataire:    {models.UserRoleLocataire},
	models.StatusAnnulee:                 {models.UserRoleGestionnaire, models.UserRoleAdmin, models.UserRolePrestataire, models.UserRoleLocataire},
}

// RoleAllowed reports whether the actor role may drive an intervention into
// the target status. Evaluated after transition legality, before assignment
// eligibility.
func RoleAllowed(target models.InterventionStatus, role models.UserRole) bool {
	allowed, ok := requiredRoles[target]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// NeedsProviderAssignment reports whether a provider actor must hold a
// prestataire assignment on the intervention for this transition.
// Provider-only targets always require it; planifiee and annulee require it
// only when the actor is acting in the provider role.
func NeedsProviderAssignment(target models.InterventionStatus, role models.UserRole) bool {
	if role != models.UserRolePrestataire {
		return false
	}
	switch target {
	case models.StatusEnCours, models.StatusClotureeParPrestataire,
		models.StatusPlanifiee, models.StatusAnnulee:
		return true
	}
	return false
}

// NeedsTenantOwnership reports whether a tenant actor must be the
// intervention's requesting tenant for this transition.
func NeedsTenantOwnership(target models.InterventionStatus, role models.UserRole) bool {
	if role != models.UserRoleLocataire {
		return false
	}
	switch target {
	case models.StatusClotureeParLocataire, models.StatusAnnulee:
		return true
	}
	return false
}

// RolesForTarget returns the permitted roles for a target status
func RolesForTarget(target models.InterventionStatus) []models.UserRole {
	allowed, ok := requiredRoles[target]
	if !ok {
		return nil
	}
	out := make([]models.UserRole, len(allowed))
	copy(out, allowed)
	return out
}
