package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/fitquest/fitquest-api/fitquest/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockLeaderboardRepository is a mock of LeaderboardRepository interface.
type MockLeaderboardRepository struct {
	ctrl     *gomock.Controller
	recorder *MockLeaderboardRepositoryMockRecorder
	isgomock struct{}
}

// MockLeaderboardRepositoryMockRecorder is the mock recorder for MockLeaderboardRepository.
type MockLeaderboardRepositoryMockRecorder struct {
	mock *MockLeaderboardRepository
}

// NewMockLeaderboardRepository creates a new mock instance.
func NewMockLeaderboardRepository(ctrl *gomock.Controller) *MockLeaderboardRepository {
	mock := &MockLeaderboardRepository{ctrl: ctrl}
	mock.recorder = &MockLeaderboardRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLeaderboardRepository) EXPECT() *MockLeaderboardRepositoryMockRecorder {
	return m.recorder
}

// Top mocks base method.
func (m *MockLeaderboardRepository) Top(ctx context.Context, since *time.Time, limit int) ([]*models.LeaderboardRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Top", ctx, since, limit)
	ret0, _ := ret[0].([]*models.LeaderboardRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Top indicates an expected call of Top.
func (mr *MockLeaderboardRepositoryMockRecorder) Top(ctx, since, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Top", reflect.TypeOf((*MockLeaderboardRepository)(nil).Top), ctx, since, limit)
}
