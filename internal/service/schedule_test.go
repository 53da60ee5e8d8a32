package service_test

import (
	"testing"
	"time"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/mocks"
	"property-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	slots         *mocks.MockTimeSlotRepositoryInterface
	interventions *mocks.MockInterventionRepositoryInterface
	assignments   *mocks.MockAssignmentRepositoryInterface
	users         *mocks.MockUserRepositoryInterface
	notifier      *mocks.MockNotifier
	emailer       *mocks.MockEmailer
	activity      *mocks.MockActivityRecorder

	teamID   uuid.UUID
	manager  *models.User
	tenant   *models.User
	provider *models.User
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.slots = mocks.NewMockTimeSlotRepositoryInterface(suite.ctrl)
	suite.interventions = mocks.NewMockInterventionRepositoryInterface(suite.ctrl)
	suite.assignments = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)
	suite.emailer = mocks.NewMockEmailer(suite.ctrl)
	suite.activity = mocks.NewMockActivityRecorder(suite.ctrl)

	suite.teamID = uuid.New()
	suite.manager = suite.newUser(models.UserRoleGestionnaire, &suite.teamID)
	suite.tenant = suite.newUser(models.UserRoleLocataire, &suite.teamID)
	suite.provider = suite.newUser(models.UserRolePrestataire, &suite.teamID)

	suite.notifier.EXPECT().Notify(gomock.Any()).Return(nil).AnyTimes()
	suite.emailer.EXPECT().Send(gomock.Any()).Return(nil).AnyTimes()
	suite.activity.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (suite *ScheduleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleServiceTestSuite) newService(opts service.ScheduleServiceOptions) *service.ScheduleService {
	return service.NewScheduleService(
		suite.slots,
		suite.interventions,
		suite.assignments,
		suite.users,
		validator.New(),
		service.NewDispatcher(),
		suite.notifier,
		suite.emailer,
		suite.activity,
		opts,
	)
}

func (suite *ScheduleServiceTestSuite) newUser(role models.UserRole, teamID *uuid.UUID) *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		TeamID:    teamID,
		Email:     string(role) + "+" + id.String()[:8] + "@test.fr",
		Role:      role,
		IsActive:  true,
	}
}

func (suite *ScheduleServiceTestSuite) newIntervention(status models.InterventionStatus) *models.Intervention {
	return &models.Intervention{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    suite.teamID,
		Title:     "Fuite d'eau salle de bain",
		Status:    status,
		Urgency:   models.UrgencyNormale,
		TenantID:  &suite.tenant.ID,
	}
}

func (suite *ScheduleServiceTestSuite) newSlot(interventionID uuid.UUID, status models.TimeSlotStatus) *models.TimeSlot {
	return &models.TimeSlot{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		InterventionID: interventionID,
		Date:           time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:00",
		EndTime:        "11:00",
		ProposedBy:     suite.manager.ID,
		Status:         status,
	}
}

func (suite *ScheduleServiceTestSuite) expectUser(user *models.User) {
	suite.users.EXPECT().GetByID(user.ID).Return(user, nil).AnyTimes()
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}

func proposal(date time.Time, start, end string) service.SlotProposal {
	return service.SlotProposal{Date: date, StartTime: start, EndTime: end}
}

// Proposals

func (suite *ScheduleServiceTestSuite) TestProposeSlots_ManagerSucceeds() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.slots.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(slots []*models.TimeSlot) error {
		assert.Len(suite.T(), slots, 2)
		for _, s := range slots {
			s.ID = uuid.New()
			assert.Equal(suite.T(), models.SlotStatusProposed, s.Status)
			assert.Equal(suite.T(), suite.manager.ID, s.ProposedBy)
		}
		return nil
	})

	resp, err := svc.ProposeSlots(itv.ID, suite.manager.ID, &service.ProposeSlotsRequest{
		Slots: []service.SlotProposal{
			proposal(date, "09:00", "11:00"),
			proposal(date, "14:00", "16:00"),
		},
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
}

func (suite *ScheduleServiceTestSuite) TestProposeSlots_OutsidePlanningRejected() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusApprouvee)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)

	resp, err := svc.ProposeSlots(itv.ID, suite.manager.ID, &service.ProposeSlotsRequest{
		Slots: []service.SlotProposal{proposal(time.Now(), "09:00", "11:00")},
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ScheduleServiceTestSuite) TestProposeSlots_UnassignedProviderDenied() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.provider)
	suite.assignments.EXPECT().
		Exists(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(false, nil)

	resp, err := svc.ProposeSlots(itv.ID, suite.provider.ID, &service.ProposeSlotsRequest{
		Slots: []service.SlotProposal{proposal(time.Now(), "09:00", "11:00")},
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *ScheduleServiceTestSuite) TestProposeSlots_TenantDenied() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.tenant)

	resp, err := svc.ProposeSlots(itv.ID, suite.tenant.ID, &service.ProposeSlotsRequest{
		Slots: []service.SlotProposal{proposal(time.Now(), "09:00", "11:00")},
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *ScheduleServiceTestSuite) TestProposeSlots_InvertedWindowRejected() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)

	resp, err := svc.ProposeSlots(itv.ID, suite.manager.ID, &service.ProposeSlotsRequest{
		Slots: []service.SlotProposal{proposal(time.Now(), "11:00", "09:00")},
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ScheduleServiceTestSuite) TestProposeSlots_MalformedTimeRejected() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)

	resp, err := svc.ProposeSlots(itv.ID, suite.manager.ID, &service.ProposeSlotsRequest{
		Slots: []service.SlotProposal{proposal(time.Now(), "9h30 ", "11:00")},
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ScheduleServiceTestSuite) TestProposeSlots_EmptyBatchRejected() {
	svc := suite.newService(service.ScheduleServiceOptions{})

	resp, err := svc.ProposeSlots(uuid.New(), suite.manager.ID, &service.ProposeSlotsRequest{})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// Responses

func (suite *ScheduleServiceTestSuite) TestRecordResponse_TenantAccepts() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	slot := suite.newSlot(itv.ID, models.SlotStatusProposed)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.tenant)
	suite.slots.EXPECT().UpsertResponse(gomock.Any()).DoAndReturn(func(r *models.SlotResponse) error {
		assert.Equal(suite.T(), slot.ID, r.SlotID)
		assert.Equal(suite.T(), suite.tenant.ID, r.UserID)
		assert.Equal(suite.T(), models.UserRoleLocataire, r.Role)
		assert.Equal(suite.T(), models.SlotResponseAccepted, r.Response)
		return nil
	})

	err := svc.RecordResponse(slot.ID, suite.tenant.ID, &service.SlotResponseRequest{
		Response: models.SlotResponseAccepted,
	})

	assert.NoError(suite.T(), err)
}

func (suite *ScheduleServiceTestSuite) TestRecordResponse_SettledSlotRejected() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	for _, status := range []models.TimeSlotStatus{models.SlotStatusSelected, models.SlotStatusCancelled} {
		slot := suite.newSlot(uuid.New(), status)
		suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)

		err := svc.RecordResponse(slot.ID, suite.tenant.ID, &service.SlotResponseRequest{
			Response: models.SlotResponseRejected,
		})

		assert.True(suite.T(), apperrors.IsValidation(err), "status %s", status)
	}
}

func (suite *ScheduleServiceTestSuite) TestRecordResponse_OtherTenantDenied() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	otherTenant := suite.newUser(models.UserRoleLocataire, &suite.teamID)
	itv := suite.newIntervention(models.StatusPlanification)
	slot := suite.newSlot(itv.ID, models.SlotStatusProposed)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(otherTenant)

	err := svc.RecordResponse(slot.ID, otherTenant.ID, &service.SlotResponseRequest{
		Response: models.SlotResponseAccepted,
	})

	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *ScheduleServiceTestSuite) TestRecordResponse_UnassignedProviderDenied() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	slot := suite.newSlot(itv.ID, models.SlotStatusProposed)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.provider)
	suite.assignments.EXPECT().
		Exists(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(false, nil)

	err := svc.RecordResponse(slot.ID, suite.provider.ID, &service.SlotResponseRequest{
		Response: models.SlotResponseAccepted,
	})

	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *ScheduleServiceTestSuite) TestRecordResponse_UnknownValueRejected() {
	svc := suite.newService(service.ScheduleServiceOptions{})

	err := svc.RecordResponse(uuid.New(), suite.tenant.ID, &service.SlotResponseRequest{
		Response: "peut-etre",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// Finalize check

func (suite *ScheduleServiceTestSuite) TestCanFinalize_Matrix() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	accepted := func(role models.UserRole) models.SlotResponse {
		return models.SlotResponse{Role: role, Response: models.SlotResponseAccepted}
	}
	rejected := func(role models.UserRole) models.SlotResponse {
		return models.SlotResponse{Role: role, Response: models.SlotResponseRejected}
	}

	tests := []struct {
		name      string
		responses []models.SlotResponse
		tenant    bool
		provider  bool
		ok        bool
	}{
		{"no responses", nil, false, false, false},
		{"tenant only", []models.SlotResponse{accepted(models.UserRoleLocataire)}, true, false, false},
		{"provider only", []models.SlotResponse{accepted(models.UserRolePrestataire)}, false, true, false},
		{"both accepted", []models.SlotResponse{accepted(models.UserRoleLocataire), accepted(models.UserRolePrestataire)}, true, true, true},
		{"tenant rejected", []models.SlotResponse{rejected(models.UserRoleLocataire), accepted(models.UserRolePrestataire)}, false, true, false},
		{"manager acceptance does not count", []models.SlotResponse{accepted(models.UserRoleGestionnaire)}, false, false, false},
	}

	for _, tt := range tests {
		slot := suite.newSlot(uuid.New(), models.SlotStatusProposed)
		slot.Responses = tt.responses
		suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)

		check, err := svc.CanFinalize(slot.ID)

		assert.NoError(suite.T(), err, tt.name)
		assert.Equal(suite.T(), tt.tenant, check.TenantAccepted, tt.name)
		assert.Equal(suite.T(), tt.provider, check.ProviderAccepted, tt.name)
		assert.Equal(suite.T(), tt.ok, check.CanFinalize, tt.name)
	}
}

// Confirmation

func (suite *ScheduleServiceTestSuite) TestConfirmSchedule_Succeeds() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	slot := suite.newSlot(itv.ID, models.SlotStatusProposed)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.tenant)
	suite.slots.EXPECT().SetStatus(slot.ID, models.SlotStatusSelected).Return(nil)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusPlanification, models.StatusPlanifiee, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, from, to models.InterventionStatus, fields map[string]interface{}) (int64, error) {
			assert.Equal(suite.T(), slot.ScheduledAt(), fields["scheduled_date"])
			assert.Equal(suite.T(), slot.ID, fields["selected_slot_id"])
			return int64(1), nil
		})

	resp, err := svc.ConfirmSchedule(slot.ID, suite.manager.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SlotStatusSelected, resp.Status)
}

func (suite *ScheduleServiceTestSuite) TestConfirmSchedule_AgreementNotRequired() {
	// responses are advisory, a manager may confirm a slot nobody accepted
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	slot := suite.newSlot(itv.ID, models.SlotStatusProposed)
	slot.Responses = []models.SlotResponse{{Role: models.UserRoleLocataire, Response: models.SlotResponseRejected}}
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.tenant)
	suite.slots.EXPECT().SetStatus(slot.ID, models.SlotStatusSelected).Return(nil)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusPlanification, models.StatusPlanifiee, gomock.Any()).
		Return(int64(1), nil)

	_, err := svc.ConfirmSchedule(slot.ID, suite.manager.ID)

	assert.NoError(suite.T(), err)
}

func (suite *ScheduleServiceTestSuite) TestConfirmSchedule_AssignedProviderSucceeds() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	slot := suite.newSlot(itv.ID, models.SlotStatusProposed)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.provider)
	suite.expectUser(suite.tenant)
	suite.assignments.EXPECT().
		Exists(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(true, nil)
	suite.slots.EXPECT().SetStatus(slot.ID, models.SlotStatusSelected).Return(nil)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusPlanification, models.StatusPlanifiee, gomock.Any()).
		Return(int64(1), nil)

	resp, err := svc.ConfirmSchedule(slot.ID, suite.provider.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SlotStatusSelected, resp.Status)
}

func (suite *ScheduleServiceTestSuite) TestConfirmSchedule_UnassignedProviderDenied() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	slot := suite.newSlot(itv.ID, models.SlotStatusProposed)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.provider)
	suite.assignments.EXPECT().
		Exists(itv.ID, suite.provider.ID, models.AssignmentRolePrestataire).
		Return(false, nil)

	resp, err := svc.ConfirmSchedule(slot.ID, suite.provider.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *ScheduleServiceTestSuite) TestConfirmSchedule_TenantDenied() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	slot := suite.newSlot(itv.ID, models.SlotStatusProposed)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.tenant)

	resp, err := svc.ConfirmSchedule(slot.ID, suite.tenant.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPermission(err))
}

func (suite *ScheduleServiceTestSuite) TestConfirmSchedule_CancelledSlotRejected() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	slot := suite.newSlot(uuid.New(), models.SlotStatusCancelled)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)

	resp, err := svc.ConfirmSchedule(slot.ID, suite.manager.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ScheduleServiceTestSuite) TestConfirmSchedule_AlreadyConfirmedRejected() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	slot := suite.newSlot(uuid.New(), models.SlotStatusSelected)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)

	resp, err := svc.ConfirmSchedule(slot.ID, suite.manager.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ScheduleServiceTestSuite) TestConfirmSchedule_ConcurrentStatusChange() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	slot := suite.newSlot(itv.ID, models.SlotStatusProposed)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.slots.EXPECT().SetStatus(slot.ID, models.SlotStatusSelected).Return(nil)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusPlanification, models.StatusPlanifiee, gomock.Any()).
		Return(int64(0), nil)

	resp, err := svc.ConfirmSchedule(slot.ID, suite.manager.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "changed concurrently")
}

func (suite *ScheduleServiceTestSuite) TestConfirmSchedule_AutoCancelSiblingsEnabled() {
	svc := suite.newService(service.ScheduleServiceOptions{AutoCancelSiblings: true})
	itv := suite.newIntervention(models.StatusPlanification)
	slot := suite.newSlot(itv.ID, models.SlotStatusProposed)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.tenant)
	suite.slots.EXPECT().SetStatus(slot.ID, models.SlotStatusSelected).Return(nil)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusPlanification, models.StatusPlanifiee, gomock.Any()).
		Return(int64(1), nil)
	suite.slots.EXPECT().CancelSiblings(itv.ID, slot.ID).Return(nil)

	_, err := svc.ConfirmSchedule(slot.ID, suite.manager.ID)

	assert.NoError(suite.T(), err)
}

func (suite *ScheduleServiceTestSuite) TestConfirmSchedule_SiblingsKeptByDefault() {
	svc := suite.newService(service.ScheduleServiceOptions{})
	itv := suite.newIntervention(models.StatusPlanification)
	slot := suite.newSlot(itv.ID, models.SlotStatusProposed)
	suite.slots.EXPECT().GetByID(slot.ID).Return(slot, nil)
	suite.interventions.EXPECT().GetByID(itv.ID).Return(itv, nil)
	suite.expectUser(suite.manager)
	suite.expectUser(suite.tenant)
	suite.slots.EXPECT().SetStatus(slot.ID, models.SlotStatusSelected).Return(nil)
	suite.interventions.EXPECT().
		UpdateStatusFrom(itv.ID, models.StatusPlanification, models.StatusPlanifiee, gomock.Any()).
		Return(int64(1), nil)
	// no CancelSiblings expectation: the controller fails the test if it runs

	_, err := svc.ConfirmSchedule(slot.ID, suite.manager.ID)

	assert.NoError(suite.T(), err)
}
