package mock

import (
	context "context"
	reflect "reflect"

	services "github.com/fitquest/fitquest-api/fitquest/services"
	gomock "go.uber.org/mock/gomock"
)

// MockLeaderboardCache is a mock of LeaderboardCache interface.
type MockLeaderboardCache struct {
	ctrl     *gomock.Controller
	recorder *MockLeaderboardCacheMockRecorder
	isgomock struct{}
}

// MockLeaderboardCacheMockRecorder is the mock recorder for MockLeaderboardCache.
type MockLeaderboardCacheMockRecorder struct {
	mock *MockLeaderboardCache
}

// NewMockLeaderboardCache creates a new mock instance.
func NewMockLeaderboardCache(ctrl *gomock.Controller) *MockLeaderboardCache {
	mock := &MockLeaderboardCache{ctrl: ctrl}
	mock.recorder = &MockLeaderboardCacheMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLeaderboardCache) EXPECT() *MockLeaderboardCacheMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockLeaderboardCache) Get(ctx context.Context, period string) ([]services.LeaderboardEntry, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, period)
	ret0, _ := ret[0].([]services.LeaderboardEntry)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Get indicates an expected call of Get.
func (mr *MockLeaderboardCacheMockRecorder) Get(ctx, period any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockLeaderboardCache)(nil).Get), ctx, period)
}

// Set mocks base method.
func (m *MockLeaderboardCache) Set(ctx context.Context, period string, entries []services.LeaderboardEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, period, entries)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *MockLeaderboardCacheMockRecorder) Set(ctx, period, entries any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockLeaderboardCache)(nil).Set), ctx, period, entries)
}

// MockLeaderboardService is a mock of LeaderboardService interface.
type MockLeaderboardService struct {
	ctrl     *gomock.Controller
	recorder *MockLeaderboardServiceMockRecorder
	isgomock struct{}
}

// MockLeaderboardServiceMockRecorder is the mock recorder for MockLeaderboardService.
type MockLeaderboardServiceMockRecorder struct {
	mock *MockLeaderboardService
}

// NewMockLeaderboardService creates a new mock instance.
func NewMockLeaderboardService(ctrl *gomock.Controller) *MockLeaderboardService {
	mock := &MockLeaderboardService{ctrl: ctrl}
	mock.recorder = &MockLeaderboardServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLeaderboardService) EXPECT() *MockLeaderboardServiceMockRecorder {
	return m.recorder
}

// Top mocks base method.
func (m *MockLeaderboardService) Top(ctx context.Context, period string, query string) ([]services.LeaderboardEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Top", ctx, period, query)
	ret0, _ := ret[0].([]services.LeaderboardEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Top indicates an expected call of Top.
func (mr *MockLeaderboardServiceMockRecorder) Top(ctx, period, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Top", reflect.TypeOf((*MockLeaderboardService)(nil).Top), ctx, period, query)
}
