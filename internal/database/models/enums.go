package models

// UserRole represents the global role a user holds on the platform
type UserRole string

const (
	UserRoleAdmin        UserRole = "admin"
	UserRoleGestionnaire UserRole = "gestionnaire"
	UserRolePrestataire  UserRole = "prestataire"
	UserRoleLocataire    UserRole = "locataire"
)

// AssignmentRole represents the role a user holds on a specific intervention
type AssignmentRole string

const (
	AssignmentRoleGestionnaire AssignmentRole = "gestionnaire"
	AssignmentRolePrestataire  AssignmentRole = "prestataire"
	AssignmentRoleSuperviseur  AssignmentRole = "superviseur"
)

// InterventionUrgency represents how urgent an intervention is
type InterventionUrgency string

const (
	UrgencyBasse   InterventionUrgency = "basse"
	UrgencyNormale InterventionUrgency = "normale"
	UrgencyHaute   InterventionUrgency = "haute"
	UrgencyUrgente InterventionUrgency = "urgente"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleGestionnaire, UserRolePrestataire, UserRoleLocataire:
		return true
	}
	return false
}

// IsManager reports whether the role carries manager authority
func (r UserRole) IsManager() bool {
	return r == UserRoleAdmin || r == UserRoleGestionnaire
}

// IsValid checks if the AssignmentRole is valid
func (r AssignmentRole) IsValid() bool {
	switch r {
	case AssignmentRoleGestionnaire, AssignmentRolePrestataire, AssignmentRoleSuperviseur:
		return true
	}
	return false
}

// IsValid checks if the InterventionUrgency is valid
func (u InterventionUrgency) IsValid() bool {
	switch u {
	case UrgencyBasse, UrgencyNormale, UrgencyHaute, UrgencyUrgente:
		return true
	}
	return false
}
