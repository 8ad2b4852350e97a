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

// MockFitnessRepository is a mock of FitnessRepository interface.
type MockFitnessRepository struct {
	ctrl     *gomock.Controller
	recorder *MockFitnessRepositoryMockRecorder
	isgomock struct{}
}

// MockFitnessRepositoryMockRecorder is the mock recorder for MockFitnessRepository.
type MockFitnessRepositoryMockRecorder struct {
	mock *MockFitnessRepository
}

// NewMockFitnessRepository creates a new mock instance.
func NewMockFitnessRepository(ctrl *gomock.Controller) *MockFitnessRepository {
	mock := &MockFitnessRepository{ctrl: ctrl}
	mock.recorder = &MockFitnessRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFitnessRepository) EXPECT() *MockFitnessRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockFitnessRepository) Create(ctx context.Context, db bun.IDB, entry *models.FitnessEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, db, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockFitnessRepositoryMockRecorder) Create(ctx, db, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockFitnessRepository)(nil).Create), ctx, db, entry)
}

// GetByDate mocks base method.
func (m *MockFitnessRepository) GetByDate(ctx context.Context, db bun.IDB, userID uuid.UUID, day time.Time) (*models.FitnessEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByDate", ctx, db, userID, day)
	ret0, _ := ret[0].(*models.FitnessEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByDate indicates an expected call of GetByDate.
func (mr *MockFitnessRepositoryMockRecorder) GetByDate(ctx, db, userID, day any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByDate", reflect.TypeOf((*MockFitnessRepository)(nil).GetByDate), ctx, db, userID, day)
}

// ListRecent mocks base method.
func (m *MockFitnessRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.FitnessEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRecent", ctx, userID, limit)
	ret0, _ := ret[0].([]*models.FitnessEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRecent indicates an expected call of ListRecent.
func (mr *MockFitnessRepositoryMockRecorder) ListRecent(ctx, userID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecent", reflect.TypeOf((*MockFitnessRepository)(nil).ListRecent), ctx, userID, limit)
}

// Update mocks base method.
func (m *MockFitnessRepository) Update(ctx context.Context, db bun.IDB, entry *models.FitnessEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, db, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockFitnessRepositoryMockRecorder) Update(ctx, db, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockFitnessRepository)(nil).Update), ctx, db, entry)
}
