package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/fitquest/fitquest-api/fitquest/database/models"
	uuid "github.com/google/uuid"
	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"
)

// MockBattleRepository is a mock of BattleRepository interface.
type MockBattleRepository struct {
	ctrl     *gomock.Controller
	recorder *MockBattleRepositoryMockRecorder
	isgomock struct{}
}

// MockBattleRepositoryMockRecorder is the mock recorder for MockBattleRepository.
type MockBattleRepositoryMockRecorder struct {
	mock *MockBattleRepository
}

// NewMockBattleRepository creates a new mock instance.
func NewMockBattleRepository(ctrl *gomock.Controller) *MockBattleRepository {
	mock := &MockBattleRepository{ctrl: ctrl}
	mock.recorder = &MockBattleRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBattleRepository) EXPECT() *MockBattleRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockBattleRepository) Create(ctx context.Context, db bun.IDB, battle *models.Battle) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, db, battle)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockBattleRepositoryMockRecorder) Create(ctx, db, battle any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockBattleRepository)(nil).Create), ctx, db, battle)
}

// ListRecent mocks base method.
func (m *MockBattleRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Battle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRecent", ctx, userID, limit)
	ret0, _ := ret[0].([]*models.Battle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRecent indicates an expected call of ListRecent.
func (mr *MockBattleRepositoryMockRecorder) ListRecent(ctx, userID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecent", reflect.TypeOf((*MockBattleRepository)(nil).ListRecent), ctx, userID, limit)
}
