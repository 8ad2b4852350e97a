package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/fitquest/fitquest-api/fitquest/database/models"
	services "github.com/fitquest/fitquest-api/fitquest/services"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockQuestService is a mock of QuestService interface.
type MockQuestService struct {
	ctrl     *gomock.Controller
	recorder *MockQuestServiceMockRecorder
	isgomock struct{}
}

// MockQuestServiceMockRecorder is the mock recorder for MockQuestService.
type MockQuestServiceMockRecorder struct {
	mock *MockQuestService
}

// NewMockQuestService creates a new mock instance.
func NewMockQuestService(ctrl *gomock.Controller) *MockQuestService {
	mock := &MockQuestService{ctrl: ctrl}
	mock.recorder = &MockQuestServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockQuestService) EXPECT() *MockQuestServiceMockRecorder {
	return m.recorder
}

// Complete mocks base method.
func (m *MockQuestService) Complete(ctx context.Context, userID uuid.UUID, questID uuid.UUID) (*services.QuestCompletion, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Complete", ctx, userID, questID)
	ret0, _ := ret[0].(*services.QuestCompletion)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Complete indicates an expected call of Complete.
func (mr *MockQuestServiceMockRecorder) Complete(ctx, userID, questID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Complete", reflect.TypeOf((*MockQuestService)(nil).Complete), ctx, userID, questID)
}

// List mocks base method.
func (m *MockQuestService) List(ctx context.Context, userID uuid.UUID) ([]*models.Quest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, userID)
	ret0, _ := ret[0].([]*models.Quest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockQuestServiceMockRecorder) List(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockQuestService)(nil).List), ctx, userID)
}
