package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/fitquest/fitquest-api/fitquest/database/models"
	uuid "github.com/google/uuid"
	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"
)

// MockQuestRepository is a mock of QuestRepository interface.
type MockQuestRepository struct {
	ctrl     *gomock.Controller
	recorder *MockQuestRepositoryMockRecorder
	isgomock struct{}
}

// MockQuestRepositoryMockRecorder is the mock recorder for MockQuestRepository.
type MockQuestRepositoryMockRecorder struct {
	mock *MockQuestRepository
}

// NewMockQuestRepository creates a new mock instance.
func NewMockQuestRepository(ctrl *gomock.Controller) *MockQuestRepository {
	mock := &MockQuestRepository{ctrl: ctrl}
	mock.recorder = &MockQuestRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockQuestRepository) EXPECT() *MockQuestRepositoryMockRecorder {
	return m.recorder
}

// AdvanceProgress mocks base method.
func (m *MockQuestRepository) AdvanceProgress(ctx context.Context, db bun.IDB, userID uuid.UUID, metric string, amount int) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdvanceProgress", ctx, db, userID, metric, amount)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdvanceProgress indicates an expected call of AdvanceProgress.
func (mr *MockQuestRepositoryMockRecorder) AdvanceProgress(ctx, db, userID, metric, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdvanceProgress", reflect.TypeOf((*MockQuestRepository)(nil).AdvanceProgress), ctx, db, userID, metric, amount)
}

// CreateBatch mocks base method.
func (m *MockQuestRepository) CreateBatch(ctx context.Context, db bun.IDB, quests []*models.Quest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBatch", ctx, db, quests)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBatch indicates an expected call of CreateBatch.
func (mr *MockQuestRepositoryMockRecorder) CreateBatch(ctx, db, quests any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBatch", reflect.TypeOf((*MockQuestRepository)(nil).CreateBatch), ctx, db, quests)
}

// GetForUpdate mocks base method.
func (m *MockQuestRepository) GetForUpdate(ctx context.Context, db bun.IDB, userID uuid.UUID, questID uuid.UUID) (*models.Quest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForUpdate", ctx, db, userID, questID)
	ret0, _ := ret[0].(*models.Quest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForUpdate indicates an expected call of GetForUpdate.
func (mr *MockQuestRepositoryMockRecorder) GetForUpdate(ctx, db, userID, questID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForUpdate", reflect.TypeOf((*MockQuestRepository)(nil).GetForUpdate), ctx, db, userID, questID)
}

// ListByUser mocks base method.
func (m *MockQuestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Quest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByUser", ctx, userID)
	ret0, _ := ret[0].([]*models.Quest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByUser indicates an expected call of ListByUser.
func (mr *MockQuestRepositoryMockRecorder) ListByUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByUser", reflect.TypeOf((*MockQuestRepository)(nil).ListByUser), ctx, userID)
}

// Update mocks base method.
func (m *MockQuestRepository) Update(ctx context.Context, db bun.IDB, quest *models.Quest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, db, quest)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockQuestRepositoryMockRecorder) Update(ctx, db, quest any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockQuestRepository)(nil).Update), ctx, db, quest)
}
