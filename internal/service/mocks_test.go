package service

import (
	"context"
	"errors"
	"sync/atomic"

	"child-screening-be/internal/entity"
	"child-screening-be/internal/pkg/logger"
	"child-screening-be/internal/repository/contract"
	"child-screening-be/internal/repository/specification"
	"child-screening-be/internal/repository/unitofwork"
)

// Compile-time checks that the mocks satisfy their contracts.
var (
	_ contract.UserRepository      = (*MockUserRepository)(nil)
	_ contract.ScreeningRepository = (*MockScreeningRepository)(nil)
	_ contract.ResultRepository    = (*MockResultRepository)(nil)
	_ unitofwork.UnitOfWork        = (*MockUnitOfWork)(nil)
	_ unitofwork.RepositoryFactory = (*MockRepositoryFactory)(nil)
	_ logger.ILogger               = (*nopLogger)(nil)
)

type MockUserRepository struct {
	CreateFunc  func(ctx context.Context, user *entity.User) error
	FindOneFunc func(ctx context.Context, specs ...specification.Specification) (*entity.User, error)

	CreateCallCount  int32
	FindOneCallCount int32
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	atomic.AddInt32(&m.FindOneCallCount, 1)
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, specs...)
	}
	return nil, nil
}

type MockScreeningRepository struct {
	CreateChildProfileFunc  func(ctx context.Context, profile *entity.ChildProfile) error
	FindChildProfileFunc    func(ctx context.Context, specs ...specification.Specification) (*entity.ChildProfile, error)
	CreateQuestionnaireFunc func(ctx context.Context, response *entity.QuestionnaireResponse) error
	FindQuestionnaireFunc   func(ctx context.Context, specs ...specification.Specification) (*entity.QuestionnaireResponse, error)
}

func (m *MockScreeningRepository) CreateChildProfile(ctx context.Context, profile *entity.ChildProfile) error {
	if m.CreateChildProfileFunc != nil {
		return m.CreateChildProfileFunc(ctx, profile)
	}
	return nil
}

func (m *MockScreeningRepository) FindChildProfile(ctx context.Context, specs ...specification.Specification) (*entity.ChildProfile, error) {
	if m.FindChildProfileFunc != nil {
		return m.FindChildProfileFunc(ctx, specs...)
	}
	return nil, errors.New("FindChildProfileFunc not implemented in mock")
}

func (m *MockScreeningRepository) CreateQuestionnaire(ctx context.Context, response *entity.QuestionnaireResponse) error {
	if m.CreateQuestionnaireFunc != nil {
		return m.CreateQuestionnaireFunc(ctx, response)
	}
	return nil
}

func (m *MockScreeningRepository) FindQuestionnaire(ctx context.Context, specs ...specification.Specification) (*entity.QuestionnaireResponse, error) {
	if m.FindQuestionnaireFunc != nil {
		return m.FindQuestionnaireFunc(ctx, specs...)
	}
	return nil, errors.New("FindQuestionnaireFunc not implemented in mock")
}

type MockResultRepository struct {
	CreateFunc  func(ctx context.Context, result *entity.ScreeningResult) error
	FindOneFunc func(ctx context.Context, specs ...specification.Specification) (*entity.ScreeningResult, error)
}

func (m *MockResultRepository) Create(ctx context.Context, result *entity.ScreeningResult) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, result)
	}
	return nil
}

func (m *MockResultRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScreeningResult, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, specs...)
	}
	return nil, errors.New("FindOneFunc not implemented in mock")
}

// MockUnitOfWork hands out the mock repositories and counts
// transaction calls so tests can assert commit/rollback behavior.
type MockUnitOfWork struct {
	Users     *MockUserRepository
	Screening *MockScreeningRepository
	Results   *MockResultRepository

	BeginCallCount    int32
	CommitCallCount   int32
	RollbackCallCount int32

	BeginErr  error
	CommitErr error
}

func (u *MockUnitOfWork) Begin(ctx context.Context) error {
	atomic.AddInt32(&u.BeginCallCount, 1)
	return u.BeginErr
}

func (u *MockUnitOfWork) Commit() error {
	atomic.AddInt32(&u.CommitCallCount, 1)
	return u.CommitErr
}

func (u *MockUnitOfWork) Rollback() error {
	atomic.AddInt32(&u.RollbackCallCount, 1)
	return nil
}

func (u *MockUnitOfWork) UserRepository() contract.UserRepository {
	return u.Users
}

func (u *MockUnitOfWork) ScreeningRepository() contract.ScreeningRepository {
	return u.Screening
}

func (u *MockUnitOfWork) ResultRepository() contract.ResultRepository {
	return u.Results
}

type MockRepositoryFactory struct {
	Uow *MockUnitOfWork
}

func (f *MockRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.Uow
}

func newMockFactory() (*MockRepositoryFactory, *MockUnitOfWork) {
	uow := &MockUnitOfWork{
		Users:     &MockUserRepository{},
		Screening: &MockScreeningRepository{},
		Results:   &MockResultRepository{},
	}
	return &MockRepositoryFactory{Uow: uow}, uow
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
