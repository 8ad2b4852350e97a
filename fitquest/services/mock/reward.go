package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/fitquest/fitquest-api/fitquest/database/models"
	services "github.com/fitquest/fitquest-api/fitquest/services"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockRewardService is a mock of RewardService interface.
type MockRewardService struct {
	ctrl     *gomock.Controller
	recorder *MockRewardServiceMockRecorder
	isgomock struct{}
}

// MockRewardServiceMockRecorder is the mock recorder for MockRewardService.
type MockRewardServiceMockRecorder struct {
	mock *MockRewardService
}

// NewMockRewardService creates a new mock instance.
func NewMockRewardService(ctrl *gomock.Controller) *MockRewardService {
	mock := &MockRewardService{ctrl: ctrl}
	mock.recorder = &MockRewardServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRewardService) EXPECT() *MockRewardServiceMockRecorder {
	return m.recorder
}

// Achievements mocks base method.
func (m *MockRewardService) Achievements(ctx context.Context, userID uuid.UUID) ([]*models.Achievement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Achievements", ctx, userID)
	ret0, _ := ret[0].([]*models.Achievement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Achievements indicates an expected call of Achievements.
func (mr *MockRewardServiceMockRecorder) Achievements(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Achievements", reflect.TypeOf((*MockRewardService)(nil).Achievements), ctx, userID)
}

// ClaimDaily mocks base method.
func (m *MockRewardService) ClaimDaily(ctx context.Context, userID uuid.UUID) (*services.DailyRewardResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimDaily", ctx, userID)
	ret0, _ := ret[0].(*services.DailyRewardResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClaimDaily indicates an expected call of ClaimDaily.
func (mr *MockRewardServiceMockRecorder) ClaimDaily(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimDaily", reflect.TypeOf((*MockRewardService)(nil).ClaimDaily), ctx, userID)
}

// DailyStatus mocks base method.
func (m *MockRewardService) DailyStatus(ctx context.Context, userID uuid.UUID) (*services.DailyRewardStatus, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DailyStatus", ctx, userID)
	ret0, _ := ret[0].(*services.DailyRewardStatus)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DailyStatus indicates an expected call of DailyStatus.
func (mr *MockRewardServiceMockRecorder) DailyStatus(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DailyStatus", reflect.TypeOf((*MockRewardService)(nil).DailyStatus), ctx, userID)
}
