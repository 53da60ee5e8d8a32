package repository

import (
	"testing"

	"property-portal-backend/internal/database/models"
	"property-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// InterventionRepositoryTestSuite tests the InterventionRepository
type InterventionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *InterventionRepository

	teamFactory         *testutils.TeamFactory
	userFactory         *testutils.UserFactory
	interventionFactory *testutils.InterventionFactory
}

// SetupSuite runs before all tests in the suite
func (suite *InterventionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewInterventionRepository(suite.baseTestSuite.DB)
	suite.teamFactory = testutils.NewTeamFactory()
	suite.userFactory = testutils.NewUserFactory()
	suite.interventionFactory = testutils.NewInterventionFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *InterventionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *InterventionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *InterventionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *InterventionRepositoryTestSuite) createTeam() *models.Team {
	team := suite.teamFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	return team
}

func (suite *InterventionRepositoryTestSuite) createIntervention(teamID uuid.UUID, status models.InterventionStatus) *models.Intervention {
	intervention := suite.interventionFactory.WithStatus(teamID, status)
	suite.NoError(suite.baseTestSuite.DB.Create(intervention).Error)
	return intervention
}

func TestInterventionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InterventionRepositoryTestSuite))
}

// TestCreateAndGetByID tests round-tripping an intervention
func (suite *InterventionRepositoryTestSuite) TestCreateAndGetByID() {
	team := suite.createTeam()
	intervention := suite.interventionFactory.Create(team.ID)

	err := suite.repo.Create(intervention)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(intervention.ID)
	suite.NoError(err)
	suite.Equal(intervention.ID, retrieved.ID)
	suite.Equal(models.StatusDemande, retrieved.Status)
	suite.Equal("Fuite d'eau salle de bain", retrieved.Title)
}

// TestGetByIDNotFound tests retrieving a non-existent intervention
func (suite *InterventionRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestGetByTeamIDFilters tests team scoping and the status filter
func (suite *InterventionRepositoryTestSuite) TestGetByTeamIDFilters() {
	team := suite.createTeam()
	otherTeam := suite.createTeam()
	suite.createIntervention(team.ID, models.StatusDemande)
	suite.createIntervention(team.ID, models.StatusApprouvee)
	suite.createIntervention(otherTeam.ID, models.StatusDemande)

	all, total, err := suite.repo.GetByTeamID(team.ID, InterventionFilter{Limit: 10})
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(all, 2)

	status := models.StatusApprouvee
	filtered, total, err := suite.repo.GetByTeamID(team.ID, InterventionFilter{Status: &status, Limit: 10})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(filtered, 1)
	suite.Equal(models.StatusApprouvee, filtered[0].Status)
}

// TestUpdateStatusFrom tests the guarded transition write
func (suite *InterventionRepositoryTestSuite) TestUpdateStatusFrom() {
	team := suite.createTeam()
	intervention := suite.createIntervention(team.ID, models.StatusDemande)

	rows, err := suite.repo.UpdateStatusFrom(intervention.ID, models.StatusDemande, models.StatusApprouvee, nil)
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	retrieved, err := suite.repo.GetByID(intervention.ID)
	suite.NoError(err)
	suite.Equal(models.StatusApprouvee, retrieved.Status)
}

// TestUpdateStatusFromGuardMismatch tests that a stale expected status writes nothing
func (suite *InterventionRepositoryTestSuite) TestUpdateStatusFromGuardMismatch() {
	team := suite.createTeam()
	intervention := suite.createIntervention(team.ID, models.StatusApprouvee)

	// the caller loaded demande but the row has moved on
	rows, err := suite.repo.UpdateStatusFrom(intervention.ID, models.StatusDemande, models.StatusRejetee, nil)
	suite.NoError(err)
	suite.Equal(int64(0), rows)

	retrieved, err := suite.repo.GetByID(intervention.ID)
	suite.NoError(err)
	suite.Equal(models.StatusApprouvee, retrieved.Status)
}

// TestUpdateStatusFromWritesExtraFields tests that extra fields land in the same statement
func (suite *InterventionRepositoryTestSuite) TestUpdateStatusFromWritesExtraFields() {
	team := suite.createTeam()
	intervention := suite.createIntervention(team.ID, models.StatusClotureeParLocataire)

	rows, err := suite.repo.UpdateStatusFrom(intervention.ID, models.StatusClotureeParLocataire, models.StatusClotureeParGestionnaire, map[string]interface{}{
		"final_cost": 512.30,
	})
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	retrieved, err := suite.repo.GetByID(intervention.ID)
	suite.NoError(err)
	suite.Equal(models.StatusClotureeParGestionnaire, retrieved.Status)
	suite.NotNil(retrieved.FinalCost)
	suite.Equal(512.30, *retrieved.FinalCost)
}

// TestRecordEstimatedCost tests that only the cost column is written
func (suite *InterventionRepositoryTestSuite) TestRecordEstimatedCost() {
	team := suite.createTeam()
	intervention := suite.createIntervention(team.ID, models.StatusDemandeDeDevis)

	// the row moves on while the caller still holds the demande_de_devis copy
	rows, err := suite.repo.UpdateStatusFrom(intervention.ID, models.StatusDemandeDeDevis, models.StatusPlanification, nil)
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	err = suite.repo.RecordEstimatedCost(intervention.ID, 980.50)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(intervention.ID)
	suite.NoError(err)
	suite.NotNil(retrieved.EstimatedCost)
	suite.Equal(980.50, *retrieved.EstimatedCost)
	// the concurrent transition is not reverted
	suite.Equal(models.StatusPlanification, retrieved.Status)
}

// TestSoftDelete tests that a deleted intervention no longer resolves
func (suite *InterventionRepositoryTestSuite) TestSoftDelete() {
	team := suite.createTeam()
	intervention := suite.createIntervention(team.ID, models.StatusRejetee)

	err := suite.repo.SoftDelete(intervention.ID)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(intervention.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)

	// the row survives underneath for audit
	var count int64
	suite.NoError(suite.baseTestSuite.DB.Unscoped().
		Model(&models.Intervention{}).
		Where("id = ?", intervention.ID).
		Count(&count).Error)
	suite.Equal(int64(1), count)
}
