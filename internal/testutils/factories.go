package testutils

import (
	"time"

	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique name to satisfy the index across repeated factory calls
		Name:    "Agence " + id.String()[:8],
		Address: "12 rue de la Paix, Paris",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:    nil,
		FirstName: "Jean",
		LastName:  "Dupont",
		// Unique email to satisfy the index across repeated factory calls
		Email:    "jean.dupont+" + id.String()[:8] + "@test.fr",
		Phone:    "+33-6-12-34-56-78",
		Role:     models.UserRoleLocataire,
		IsActive: true,
	}
}

// WithTeam sets the team ID for the user
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithTeamAndRole sets both the team and the role
func (f *UserFactory) WithTeamAndRole(teamID uuid.UUID, role models.UserRole) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	user.Role = role
	return user
}

// BuildingFactory provides methods to create test Building data
type BuildingFactory struct{}

// NewBuildingFactory creates a new BuildingFactory
func NewBuildingFactory() *BuildingFactory {
	return &BuildingFactory{}
}

// Create creates a test Building with default values
func (f *BuildingFactory) Create(teamID uuid.UUID) *models.Building {
	return &models.Building{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:  teamID,
		Name:    "Résidence Les Lilas",
		Address: "3 avenue des Lilas",
		City:    "Lyon",
		ZipCode: "69003",
	}
}

// InterventionFactory provides methods to create test Intervention data
type InterventionFactory struct{}

// NewInterventionFactory creates a new InterventionFactory
func NewInterventionFactory() *InterventionFactory {
	return &InterventionFactory{}
}

// Create creates a test Intervention with default values
func (f *InterventionFactory) Create(teamID uuid.UUID) *models.Intervention {
	return &models.Intervention{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      teamID,
		Title:       "Fuite d'eau salle de bain",
		Description: "Fuite sous le lavabo",
		Status:      models.StatusDemande,
		Urgency:     models.UrgencyNormale,
		Type:        "plomberie",
	}
}

// WithStatus sets a custom status for the intervention
func (f *InterventionFactory) WithStatus(teamID uuid.UUID, status models.InterventionStatus) *models.Intervention {
	intervention := f.Create(teamID)
	intervention.Status = status
	return intervention
}

// WithTenant sets the tenant for the intervention
func (f *InterventionFactory) WithTenant(teamID, tenantID uuid.UUID) *models.Intervention {
	intervention := f.Create(teamID)
	intervention.TenantID = &tenantID
	return intervention
}

// AssignmentFactory provides methods to create test assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test assignment with default values
func (f *AssignmentFactory) Create(interventionID, userID uuid.UUID, role models.AssignmentRole) *models.InterventionAssignment {
	return &models.InterventionAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		InterventionID: interventionID,
		UserID:         userID,
		Role:           role,
	}
}

// TimeSlotFactory provides methods to create test TimeSlot data
type TimeSlotFactory struct{}

// NewTimeSlotFactory creates a new TimeSlotFactory
func NewTimeSlotFactory() *TimeSlotFactory {
	return &TimeSlotFactory{}
}

// Create creates a test TimeSlot with default values
func (f *TimeSlotFactory) Create(interventionID, proposedBy uuid.UUID) *models.TimeSlot {
	return &models.TimeSlot{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		InterventionID: interventionID,
		Date:           time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour),
		StartTime:      "09:00",
		EndTime:        "11:00",
		ProposedBy:     proposedBy,
		Status:         models.SlotStatusProposed,
	}
}

// WithWindow sets a custom window for the slot
func (f *TimeSlotFactory) WithWindow(interventionID, proposedBy uuid.UUID, date time.Time, start, end string) *models.TimeSlot {
	slot := f.Create(interventionID, proposedBy)
	slot.Date = date
	slot.StartTime = start
	slot.EndTime = end
	return slot
}

// QuoteFactory provides methods to create test Quote data
type QuoteFactory struct{}

// NewQuoteFactory creates a new QuoteFactory
func NewQuoteFactory() *QuoteFactory {
	return &QuoteFactory{}
}

// Create creates a test Quote with default values
func (f *QuoteFactory) Create(interventionID, providerID uuid.UUID) *models.Quote {
	return &models.Quote{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		InterventionID: interventionID,
		ProviderID:     providerID,
		Amount:         450.00,
		Currency:       "EUR",
		Status:         models.QuoteStatusDraft,
		Type:           models.QuoteTypeEstimation,
	}
}

// WithStatus sets a custom status for the quote
func (f *QuoteFactory) WithStatus(interventionID, providerID uuid.UUID, status models.QuoteStatus) *models.Quote {
	quote := f.Create(interventionID, providerID)
	quote.Status = status
	return quote
}

// WithValidity sets the validity date for the quote
func (f *QuoteFactory) WithValidity(interventionID, providerID uuid.UUID, validUntil time.Time) *models.Quote {
	quote := f.Create(interventionID, providerID)
	quote.ValidUntil = &validUntil
	return quote
}
