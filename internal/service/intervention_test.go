package service_test

import (
	"errors"
	"testing"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/mocks"
	"property-portal-backend/internal/repository"
	"property-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type InterventionServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	interventions *mocks.MockInterventionRepositoryInterface
	assignments   *mocks.MockAssignmentRepositoryInterface
	users         *mocks.MockUserRepositoryInterface
	quotes        *mocks.MockQuoteRepositoryInterface
	notifier      *mocks.MockNotifier
	emailer       *mocks.MockEmailer
	activity      *mocks.MockActivityRecorder
	conversations *mocks.MockConversationProvisioner
	service       *service.InterventionService

	teamID   uuid.UUID
	manager  *models.User
	tenant   *models.User
	provider *models.User
}

func (suite *InterventionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.interventions = mocks.NewMockInterventionRepositoryInterface(suite.ctrl)
	suite.assignments = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.quotes = mocks.NewMockQuoteRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)
	suite.emailer = mocks.NewMockEmailer(suite.ctrl)
	suite.activity = mocks.NewMockActivityRecorder(suite.ctrl)
	suite.conversations = mocks.NewMockConversationProvisioner(suite.ctrl)

	suite.service = service.NewInterventionService(
		suite.interventions,
		suite.assignments,
		suite.users,
		suite.quotes,
		validator.New(),
		service.NewDispatcher(),
		suite.notifier,
		suite.emailer,
		suite.activity,
		suite.conversations,
	)

	suite.teamID = uuid.New()
	suite.manager = suite.newUser(models.UserRoleGestionnaire, &suite.teamID)
	suite.tenant = suite.newUser(models.UserRoleLocataire, &suite.teamID)
	suite.provider = suite.newUser(models.UserRolePrestataire, &suite.teamID)

	// side effects are best-effort and irrelevant to most assertions
	suite.notifier.EXPECT().Notify(gomock.Any()).Return(nil).AnyTimes()
	suite.emailer.EXPECT().Send(gomock.Any()).Return(nil).AnyTimes()
	suite.activity.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	suite.conversations.EXPECT().Provision(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (suite *InterventionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InterventionServiceTestSuite) newUser(role models.UserRole, teamID *uuid.UUID) *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		TeamID:    teamID,
		FirstName: "Test",
		LastName:  string(role),
		Email:     string(role) + "+" + id.String()[:8] + "@test.fr",
		Role:      role,
		IsActive:  true,
	}
}

func (suite *InterventionServiceTestSuite) newIntervention(status models.InterventionStatus) *models.Intervention {
	return &models.Intervention{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    suite.teamID,
		Title:     "Fuite d'eau salle de bain",
		Status:    status,
		Urgency:   models.UrgencyNormale,
		TenantID:  &suite.tenant.ID,
	}
}

func (suite *InterventionServiceTestSuite) expectUser(user *models.User) {
	suite.users.EXPECT().GetByID(user.ID).Return(user, nil).AnyTimes()
}

func TestInterventionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InterventionServiceTestSuite))
}

// Creation

func (suite *InterventionServiceTestSuite) TestRequestIntervention_TenantStartsInDemande() {
	suite.expectUser(suite.tenant)
	suite.interventions.EXPECT().Create(gomock.Any()).DoAndReturn(func(itv *models.Intervention) error {
		itv.ID = uuid.New()
		return nil
	})

	resp, err := suite.service.RequestIntervention(&service.CreateInterventionRequest{
		Title:   "Fuite d'eau",
		Urgency: models.UrgencyHaute,
	}, suite.tenant.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusDemande, resp.Status)
	assert.NotNil(suite.T(), resp.TenantID)
	assert.Equal(suite.T(), suite.tenant.ID, *resp.TenantID)
	assert.Equal(suite.T(), suite.teamID, resp.TeamID)
}

func (suite *InterventionServiceTestSuite) TestRequestIntervention_ManagerStartsPreApproved() {
	suite.expectUser(suite.manager)
	suite.expectUser(suite.tenant)
	suite.interventions.EXPECT().Create(gomock.Any()).DoAndReturn(func(itv *models.Intervention) error {
		itv.ID = uuid.New()
		return nil
	})

	resp, err := suite.service.RequestIntervention(&service.CreateInterventionRequest{
		Title:    "Remplacement chaudière",
		Urgency:  models.UrgencyNormale,
		TenantID: &suite.tenant.ID,
	}, suite.manager.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusApprouvee, resp.Status)
	assert.Equal(suite.T(), suite.tenant.ID, *resp.TenantID)
}

func (suite *InterventionServiceTestSuite) TestRequestIntervention_ProviderDenied() {
	suite.expectUser(suite.provider)

	resp, err := suite.service.RequestIntervention(&service.CreateInterventionRequest{
		Title:   "Test",
		Urgency: models.UrgencyNormale,
	}, suite.provider.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *InterventionServiceTestSuite) TestRequestIntervention_UnknownUrgency() {
	resp, err := suite.service.RequestIntervention(&service.CreateInterventionRequest{
		Title:   "Test",
		Urgency: "catastrophique",
	}, suite.tenant.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *InterventionServiceTestSuite) TestRequestIntervention_MissingTitle() {
	resp, err := suite.service.RequestIntervention(&service.CreateInterventionRequest{
		Urgency: models.UrgencyNormale,
	}, suite.tenant.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// Reads

func (suite *InterventionServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.interventions.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetByID(id)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrInterventionNotFound))
}

func (suite *InterventionServiceTestSuite) TestListByTeam_DefaultsPagination() {
	suite.interventions.EXPECT().
		GetByTeamID(suite.teamID, repository.InterventionFilter{Limit: 20, Offset: 0}).
		Return([]models.Intervention{*suite.newIntervention(models.StatusDemande)}, int64(1), nil)

	resp, err := suite.service.ListByTeam(suite.teamID, nil, nil, 0, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Len(suite.T(), resp.Interventions, 1)
}

// Transitions

func (suite *InterventionServiceTestSuite) TestApprove_Succeeds() {
	itv := suite.newIntervention(models.StatusDemande)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.tenant)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusDemande, models.StatusApprouvee, nil).
		Return(int64(1), nil)

	resp, err := suite.service.Approve(itv.ID, suite.manager.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusApprouvee, resp.Status)
}

func (suite *InterventionServiceTestSuite) TestApprove_IllegalTransition() {
	itv := suite.newIntervention(models.StatusEnCours)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)

	resp, err := suite.service.Approve(itv.ID, suite.manager.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *InterventionServiceTestSuite) TestApprove_TenantRoleDenied() {
	itv := suite.newIntervention(models.StatusDemande)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.tenant)

	resp, err := suite.service.Approve(itv.ID, suite.tenant.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *InterventionServiceTestSuite) TestApprove_ManagerFromOtherTeamDenied() {
	otherTeam := uuid.New()
	outsider := suite.newUser(models.UserRoleGestionnaire, &otherTeam)
	itv := suite.newIntervention(models.StatusDemande)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(outsider)

	resp, err := suite.service.Approve(itv.ID, outsider.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *InterventionServiceTestSuite) TestApprove_AdminBypassesTeamScope() {
	admin := suite.newUser(models.UserRoleAdmin, nil)
	itv := suite.newIntervention(models.StatusDemande)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(admin)
	suite.expectUser(suite.tenant)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusDemande, models.StatusApprouvee, nil).
		Return(int64(1), nil)

	resp, err := suite.service.Approve(itv.ID, admin.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusApprouvee, resp.Status)
}

func (suite *InterventionServiceTestSuite) TestApprove_ConcurrentStatusChange() {
	itv := suite.newIntervention(models.StatusDemande)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusDemande, models.StatusApprouvee, nil).
		Return(int64(0), nil)

	resp, err := suite.service.Approve(itv.ID, suite.manager.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "changed concurrently")
}

func (suite *InterventionServiceTestSuite) TestStart_UnassignedProviderDenied() {
	itv := suite.newIntervention(models.StatusPlanifiee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.provider)
	suite.assignments.EXPECT().
		Exists(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(false, nil)

	resp, err := suite.service.Start(itv.ID, suite.provider.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *InterventionServiceTestSuite) TestStart_AssignedProviderSucceeds() {
	itv := suite.newIntervention(models.StatusPlanifiee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.provider)
	suite.assignments.EXPECT().
		Exists(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(true, nil)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusPlanifiee, models.StatusEnCours, nil).
		Return(int64(1), nil)

	resp, err := suite.service.Start(itv.ID, suite.provider.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusEnCours, resp.Status)
}

func (suite *InterventionServiceTestSuite) TestStart_ReopensContestedCompletion() {
	itv := suite.newIntervention(models.StatusClotureeParPrestataire)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.provider)
	suite.assignments.EXPECT().
		Exists(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(true, nil)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusClotureeParPrestataire, models.StatusEnCours, nil).
		Return(int64(1), nil)

	resp, err := suite.service.Start(itv.ID, suite.provider.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusEnCours, resp.Status)
}

func (suite *InterventionServiceTestSuite) TestValidateByTenant_NotRequesterDenied() {
	otherTenant := suite.newUser(models.UserRoleLocataire, &suite.teamID)
	itv := suite.newIntervention(models.StatusClotureeParPrestataire)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(otherTenant)

	resp, err := suite.service.ValidateByTenant(itv.ID, otherTenant.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *InterventionServiceTestSuite) TestValidateByTenant_RequesterSucceeds() {
	itv := suite.newIntervention(models.StatusClotureeParPrestataire)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.tenant)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusClotureeParPrestataire, models.StatusClotureeParLocataire, nil).
		Return(int64(1), nil)

	resp, err := suite.service.ValidateByTenant(itv.ID, suite.tenant.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusClotureeParLocataire, resp.Status)
}

func (suite *InterventionServiceTestSuite) TestFinalizeByManager_RecordsFinalCost() {
	itv := suite.newIntervention(models.StatusClotureeParLocataire)
	finalCost := 320.50
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.tenant)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusClotureeParLocataire, models.StatusClotureeParGestionnaire, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, from, to models.InterventionStatus, fields map[string]interface{}) (int64, error) {
			assert.Equal(suite.T(), finalCost, fields["final_cost"])
			return int64(1), nil
		})

	resp, err := suite.service.FinalizeByManager(itv.ID, suite.manager.ID, &finalCost)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusClotureeParGestionnaire, resp.Status)
}

func (suite *InterventionServiceTestSuite) TestFinalizeByManager_NegativeCostRejected() {
	cost := -10.0

	resp, err := suite.service.FinalizeByManager(uuid.New(), suite.manager.ID, &cost)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *InterventionServiceTestSuite) TestCancel_TerminalStatusRejected() {
	itv := suite.newIntervention(models.StatusAnnulee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)

	resp, err := suite.service.Cancel(itv.ID, suite.manager.ID, "doublon")

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *InterventionServiceTestSuite) TestCancel_TenantCancelsOwnRequest() {
	itv := suite.newIntervention(models.StatusApprouvee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.tenant)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusApprouvee, models.StatusAnnulee, nil).
		Return(int64(1), nil)

	resp, err := suite.service.Cancel(itv.ID, suite.tenant.ID, "plus nécessaire")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusAnnulee, resp.Status)
}

// Deletion

func (suite *InterventionServiceTestSuite) TestDelete_BlockedWhileInProgress() {
	for _, status := range []models.InterventionStatus{models.StatusEnCours, models.StatusClotureeParGestionnaire} {
		itv := suite.newIntervention(status)
		suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
		suite.expectUser(suite.manager)

		err := suite.service.Delete(itv.ID, suite.manager.ID)

		assert.True(suite.T(), apperrors.IsValidation(err), "status %s", status)
	}
}

func (suite *InterventionServiceTestSuite) TestDelete_NonManagerDenied() {
	itv := suite.newIntervention(models.StatusDemande)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.tenant)

	err := suite.service.Delete(itv.ID, suite.tenant.ID)

	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *InterventionServiceTestSuite) TestDelete_Succeeds() {
	itv := suite.newIntervention(models.StatusRejetee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.interventions.EXPECT().SoftDelete(itv.ID).Return(nil)

	err := suite.service.Delete(itv.ID, suite.manager.ID)

	assert.NoError(suite.T(), err)
}

// Assignments

func (suite *InterventionServiceTestSuite) TestAssignUser_Succeeds() {
	itv := suite.newIntervention(models.StatusApprouvee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.provider)
	suite.assignments.EXPECT().
		Exists(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(false, nil)
	suite.assignments.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.InterventionAssignment) error {
		assert.Equal(suite.T(), suite.provider.ID, a.UserID)
		assert.Equal(suite.T(), models.AssignmentRolePrestataire, a.Role)
		return nil
	})

	err := suite.service.AssignUser(itv.ID, suite.manager.ID, &service.AssignUserRequest{
		UserID: suite.provider.ID,
		Role:   models.AssignmentRolePrestataire,
	})

	assert.NoError(suite.T(), err)
}

func (suite *InterventionServiceTestSuite) TestAssignUser_DuplicateProvider() {
	itv := suite.newIntervention(models.StatusApprouvee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.provider)
	suite.assignments.EXPECT().
		Exists(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(true, nil)

	err := suite.service.AssignUser(itv.ID, suite.manager.ID, &service.AssignUserRequest{
		UserID: suite.provider.ID,
		Role:   models.AssignmentRolePrestataire,
	})

	assert.True(suite.T(), errors.Is(err, apperrors.ErrProviderAlreadyAssigned))
}

func (suite *InterventionServiceTestSuite) TestAssignUser_DuplicateSupervisor() {
	supervisor := suite.newUser(models.UserRoleGestionnaire, &suite.teamID)
	itv := suite.newIntervention(models.StatusApprouvee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(supervisor)
	suite.assignments.EXPECT().
		Exists(itv.ID, supervisor.ID, models.AssignmentRoleSuperviseur).
		Return(true, nil)

	err := suite.service.AssignUser(itv.ID, suite.manager.ID, &service.AssignUserRequest{
		UserID: supervisor.ID,
		Role:   models.AssignmentRoleSuperviseur,
	})

	assert.True(suite.T(), errors.Is(err, apperrors.ErrAssignmentExists))
}

func (suite *InterventionServiceTestSuite) TestAssignUser_AssigneeLacksProviderRole() {
	itv := suite.newIntervention(models.StatusApprouvee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.tenant)

	err := suite.service.AssignUser(itv.ID, suite.manager.ID, &service.AssignUserRequest{
		UserID: suite.tenant.ID,
		Role:   models.AssignmentRolePrestataire,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *InterventionServiceTestSuite) TestUnassignUser_NotAssigned() {
	itv := suite.newIntervention(models.StatusApprouvee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.assignments.EXPECT().
		Delete(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(int64(0), nil)

	err := suite.service.UnassignUser(itv.ID, suite.manager.ID, suite.provider.ID, models.AssignmentRolePrestataire)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrAssignmentNotFound))
}

// Quote requests

func (suite *InterventionServiceTestSuite) TestRequestQuote_Succeeds() {
	itv := suite.newIntervention(models.StatusApprouvee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.provider)
	suite.assignments.EXPECT().
		Exists(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(false, nil)
	suite.assignments.EXPECT().Create(gomock.Any()).Return(nil)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusApprouvee, models.StatusDemandeDeDevis, nil).
		Return(int64(1), nil)
	suite.quotes.EXPECT().Create(gomock.Any()).DoAndReturn(func(q *models.Quote) error {
		assert.Equal(suite.T(), models.QuoteStatusDraft, q.Status)
		assert.Equal(suite.T(), models.QuoteTypeEstimation, q.Type)
		assert.Equal(suite.T(), "EUR", q.Currency)
		assert.Equal(suite.T(), suite.provider.ID, q.ProviderID)
		return nil
	})

	resp, err := suite.service.RequestQuote(itv.ID, suite.manager.ID, suite.provider.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusDemandeDeDevis, resp.Status)
}

func (suite *InterventionServiceTestSuite) TestRequestQuote_ProviderAlreadyAssigned() {
	itv := suite.newIntervention(models.StatusApprouvee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.provider)
	suite.assignments.EXPECT().
		Exists(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(true, nil)

	resp, err := suite.service.RequestQuote(itv.ID, suite.manager.ID, suite.provider.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrProviderAlreadyAssigned))
}

func (suite *InterventionServiceTestSuite) TestRequestQuote_TargetNotAProvider() {
	itv := suite.newIntervention(models.StatusApprouvee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.tenant)

	resp, err := suite.service.RequestQuote(itv.ID, suite.manager.ID, suite.tenant.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *InterventionServiceTestSuite) TestRequestQuote_WrongStatus() {
	itv := suite.newIntervention(models.StatusDemande)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.provider)

	resp, err := suite.service.RequestQuote(itv.ID, suite.manager.ID, suite.provider.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}
