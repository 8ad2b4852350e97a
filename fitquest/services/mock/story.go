package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/fitquest/fitquest-api/fitquest/database/models"
	services "github.com/fitquest/fitquest-api/fitquest/services"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockStoryService is a mock of StoryService interface.
type MockStoryService struct {
	ctrl     *gomock.Controller
	recorder *MockStoryServiceMockRecorder
	isgomock struct{}
}

// MockStoryServiceMockRecorder is the mock recorder for MockStoryService.
type MockStoryServiceMockRecorder struct {
	mock *MockStoryService
}

// NewMockStoryService creates a new mock instance.
func NewMockStoryService(ctrl *gomock.Controller) *MockStoryService {
	mock := &MockStoryService{ctrl: ctrl}
	mock.recorder = &MockStoryServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStoryService) EXPECT() *MockStoryServiceMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockStoryService) Get(ctx context.Context, userID uuid.UUID) (*models.StoryProgress, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, userID)
	ret0, _ := ret[0].(*models.StoryProgress)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockStoryServiceMockRecorder) Get(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockStoryService)(nil).Get), ctx, userID)
}

// Update mocks base method.
func (m *MockStoryService) Update(ctx context.Context, userID uuid.UUID, update services.StoryUpdate) (*models.StoryProgress, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, userID, update)
	ret0, _ := ret[0].(*models.StoryProgress)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockStoryServiceMockRecorder) Update(ctx, userID, update any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockStoryService)(nil).Update), ctx, userID, update)
}
