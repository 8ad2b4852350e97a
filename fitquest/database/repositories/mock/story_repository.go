package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/fitquest/fitquest-api/fitquest/database/models"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockStoryRepository is a mock of StoryRepository interface.
type MockStoryRepository struct {
	ctrl     *gomock.Controller
	recorder *MockStoryRepositoryMockRecorder
	isgomock struct{}
}

// MockStoryRepositoryMockRecorder is the mock recorder for MockStoryRepository.
type MockStoryRepositoryMockRecorder struct {
	mock *MockStoryRepository
}

// NewMockStoryRepository creates a new mock instance.
func NewMockStoryRepository(ctrl *gomock.Controller) *MockStoryRepository {
	mock := &MockStoryRepository{ctrl: ctrl}
	mock.recorder = &MockStoryRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStoryRepository) EXPECT() *MockStoryRepositoryMockRecorder {
	return m.recorder
}

// GetByUserID mocks base method.
func (m *MockStoryRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StoryProgress, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", ctx, userID)
	ret0, _ := ret[0].(*models.StoryProgress)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockStoryRepositoryMockRecorder) GetByUserID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockStoryRepository)(nil).GetByUserID), ctx, userID)
}

// Upsert mocks base method.
func (m *MockStoryRepository) Upsert(ctx context.Context, progress *models.StoryProgress) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, progress)
	ret0, _ := ret[0].(error)
	return ret0
}

// Upsert indicates an expected call of Upsert.
func (mr *MockStoryRepositoryMockRecorder) Upsert(ctx, progress any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockStoryRepository)(nil).Upsert), ctx, progress)
}
