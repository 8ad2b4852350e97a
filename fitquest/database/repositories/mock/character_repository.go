package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/fitquest/fitquest-api/fitquest/database/models"
	uuid "github.com/google/uuid"
	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"
)

// MockCharacterRepository is a mock of CharacterRepository interface.
type MockCharacterRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCharacterRepositoryMockRecorder
	isgomock struct{}
}

// MockCharacterRepositoryMockRecorder is the mock recorder for MockCharacterRepository.
type MockCharacterRepositoryMockRecorder struct {
	mock *MockCharacterRepository
}

// NewMockCharacterRepository creates a new mock instance.
func NewMockCharacterRepository(ctrl *gomock.Controller) *MockCharacterRepository {
	mock := &MockCharacterRepository{ctrl: ctrl}
	mock.recorder = &MockCharacterRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCharacterRepository) EXPECT() *MockCharacterRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockCharacterRepository) Create(ctx context.Context, db bun.IDB, character *models.Character) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, db, character)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockCharacterRepositoryMockRecorder) Create(ctx, db, character any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCharacterRepository)(nil).Create), ctx, db, character)
}

// GetByUserID mocks base method.
func (m *MockCharacterRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Character, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", ctx, userID)
	ret0, _ := ret[0].(*models.Character)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockCharacterRepositoryMockRecorder) GetByUserID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockCharacterRepository)(nil).GetByUserID), ctx, userID)
}

// GetByUserIDForUpdate mocks base method.
func (m *MockCharacterRepository) GetByUserIDForUpdate(ctx context.Context, db bun.IDB, userID uuid.UUID) (*models.Character, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserIDForUpdate", ctx, db, userID)
	ret0, _ := ret[0].(*models.Character)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserIDForUpdate indicates an expected call of GetByUserIDForUpdate.
func (mr *MockCharacterRepositoryMockRecorder) GetByUserIDForUpdate(ctx, db, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserIDForUpdate", reflect.TypeOf((*MockCharacterRepository)(nil).GetByUserIDForUpdate), ctx, db, userID)
}

// Update mocks base method.
func (m *MockCharacterRepository) Update(ctx context.Context, db bun.IDB, character *models.Character) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, db, character)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockCharacterRepositoryMockRecorder) Update(ctx, db, character any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockCharacterRepository)(nil).Update), ctx, db, character)
}
