package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/fitquest/fitquest-api/fitquest/database/models"
	services "github.com/fitquest/fitquest-api/fitquest/services"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockBattleService is a mock of BattleService interface.
type MockBattleService struct {
	ctrl     *gomock.Controller
	recorder *MockBattleServiceMockRecorder
	isgomock struct{}
}

// MockBattleServiceMockRecorder is the mock recorder for MockBattleService.
type MockBattleServiceMockRecorder struct {
	mock *MockBattleService
}

// NewMockBattleService creates a new mock instance.
func NewMockBattleService(ctrl *gomock.Controller) *MockBattleService {
	mock := &MockBattleService{ctrl: ctrl}
	mock.recorder = &MockBattleServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBattleService) EXPECT() *MockBattleServiceMockRecorder {
	return m.recorder
}

// Fight mocks base method.
func (m *MockBattleService) Fight(ctx context.Context, userID uuid.UUID, req services.BattleRequest) (*services.BattleResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Fight", ctx, userID, req)
	ret0, _ := ret[0].(*services.BattleResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Fight indicates an expected call of Fight.
func (mr *MockBattleServiceMockRecorder) Fight(ctx, userID, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Fight", reflect.TypeOf((*MockBattleService)(nil).Fight), ctx, userID, req)
}

// List mocks base method.
func (m *MockBattleService) List(ctx context.Context, userID uuid.UUID) ([]*models.Battle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, userID)
	ret0, _ := ret[0].([]*models.Battle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockBattleServiceMockRecorder) List(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockBattleService)(nil).List), ctx, userID)
}
