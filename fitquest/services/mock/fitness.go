package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/fitquest/fitquest-api/fitquest/database/models"
	services "github.com/fitquest/fitquest-api/fitquest/services"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockFitnessService is a mock of FitnessService interface.
type MockFitnessService struct {
	ctrl     *gomock.Controller
	recorder *MockFitnessServiceMockRecorder
	isgomock struct{}
}

// MockFitnessServiceMockRecorder is the mock recorder for MockFitnessService.
type MockFitnessServiceMockRecorder struct {
	mock *MockFitnessService
}

// NewMockFitnessService creates a new mock instance.
func NewMockFitnessService(ctrl *gomock.Controller) *MockFitnessService {
	mock := &MockFitnessService{ctrl: ctrl}
	mock.recorder = &MockFitnessServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFitnessService) EXPECT() *MockFitnessServiceMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockFitnessService) List(ctx context.Context, userID uuid.UUID) ([]*models.FitnessEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, userID)
	ret0, _ := ret[0].([]*models.FitnessEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockFitnessServiceMockRecorder) List(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockFitnessService)(nil).List), ctx, userID)
}

// Log mocks base method.
func (m *MockFitnessService) Log(ctx context.Context, userID uuid.UUID, input services.FitnessInput) (*services.FitnessLogResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Log", ctx, userID, input)
	ret0, _ := ret[0].(*services.FitnessLogResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Log indicates an expected call of Log.
func (mr *MockFitnessServiceMockRecorder) Log(ctx, userID, input any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Log", reflect.TypeOf((*MockFitnessService)(nil).Log), ctx, userID, input)
}
