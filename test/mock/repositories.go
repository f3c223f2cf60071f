// test/mock/repositories.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/grootan/ems/api/model"
)

// MockUserRepository is a mock implementation of dao.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.AppUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppUser), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.AppUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockDepartmentRepository is a mock implementation of dao.DepartmentRepository
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) Create(ctx context.Context, dept *model.Department) error {
	args := m.Called(ctx, dept)
	return args.Error(0)
}

func (m *MockDepartmentRepository) GetByID(ctx context.Context, deptID int64) (*model.Department, error) {
	args := m.Called(ctx, deptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *MockDepartmentRepository) List(ctx context.Context) ([]*model.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Update(ctx context.Context, dept *model.Department) error {
	args := m.Called(ctx, dept)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, deptID int64) error {
	args := m.Called(ctx, deptID)
	return args.Error(0)
}

func (m *MockDepartmentRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentRepository) CountEmployees(ctx context.Context, deptID int64) (int64, error) {
	args := m.Called(ctx, deptID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmployeeRepository is a mock implementation of dao.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) CreateWithAccount(ctx context.Context, emp *model.Employee, account *model.AppUser) error {
	args := m.Called(ctx, emp, account)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, empID int64) (*model.Employee, error) {
	args := m.Called(ctx, empID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Search(ctx context.Context, criteria model.EmployeeSearchCriteria) (*model.EmployeePage, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EmployeePage), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, emp *model.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, empID int64) error {
	args := m.Called(ctx, empID)
	return args.Error(0)
}

func (m *MockEmployeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}
