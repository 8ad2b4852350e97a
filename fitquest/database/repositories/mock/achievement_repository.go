package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/fitquest/fitquest-api/fitquest/database/models"
	uuid "github.com/google/uuid"
	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"
)

// MockAchievementRepository is a mock of AchievementRepository interface.
type MockAchievementRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAchievementRepositoryMockRecorder
	isgomock struct{}
}

// MockAchievementRepositoryMockRecorder is the mock recorder for MockAchievementRepository.
type MockAchievementRepositoryMockRecorder struct {
	mock *MockAchievementRepository
}

// NewMockAchievementRepository creates a new mock instance.
func NewMockAchievementRepository(ctrl *gomock.Controller) *MockAchievementRepository {
	mock := &MockAchievementRepository{ctrl: ctrl}
	mock.recorder = &MockAchievementRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAchievementRepository) EXPECT() *MockAchievementRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockAchievementRepository) Create(ctx context.Context, db bun.IDB, achievement *models.Achievement) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, db, achievement)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAchievementRepositoryMockRecorder) Create(ctx, db, achievement any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAchievementRepository)(nil).Create), ctx, db, achievement)
}

// CreateDailyMarker mocks base method.
func (m *MockAchievementRepository) CreateDailyMarker(ctx context.Context, db bun.IDB, achievement *models.Achievement) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateDailyMarker", ctx, db, achievement)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateDailyMarker indicates an expected call of CreateDailyMarker.
func (mr *MockAchievementRepositoryMockRecorder) CreateDailyMarker(ctx, db, achievement any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateDailyMarker", reflect.TypeOf((*MockAchievementRepository)(nil).CreateDailyMarker), ctx, db, achievement)
}

// HasDailyMarker mocks base method.
func (m *MockAchievementRepository) HasDailyMarker(ctx context.Context, userID uuid.UUID, achievementType string, day time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasDailyMarker", ctx, userID, achievementType, day)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasDailyMarker indicates an expected call of HasDailyMarker.
func (mr *MockAchievementRepositoryMockRecorder) HasDailyMarker(ctx, userID, achievementType, day any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasDailyMarker", reflect.TypeOf((*MockAchievementRepository)(nil).HasDailyMarker), ctx, userID, achievementType, day)
}

// ListRecent mocks base method.
func (m *MockAchievementRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Achievement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRecent", ctx, userID, limit)
	ret0, _ := ret[0].([]*models.Achievement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRecent indicates an expected call of ListRecent.
func (mr *MockAchievementRepositoryMockRecorder) ListRecent(ctx, userID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecent", reflect.TypeOf((*MockAchievementRepository)(nil).ListRecent), ctx, userID, limit)
}
