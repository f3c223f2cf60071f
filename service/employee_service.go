// service/employee_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/grootan/ems/api/audit"
	"github.com/grootan/ems/api/auth"
	"github.com/grootan/ems/api/cache"
	"github.com/grootan/ems/api/dao"
	ems_errors "github.com/grootan/ems/api/errors"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
	"github.com/grootan/ems/api/util"
	helper_util "github.com/grootan/ems/api/util/helper"
)

const initialPasswordLength = 12

// IEmployeeService defines the interface for employee operations
type IEmployeeService interface {
	CreateEmployee(ctx context.Context, req model.EmployeeCreateRequest, actor string) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, empID int64, req model.EmployeeUpdateRequest, actor string) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, empID int64, actor string) error
	GetEmployee(ctx context.Context, empID int64) (*model.Employee, error)
	SearchEmployees(ctx context.Context, criteria model.EmployeeSearchCriteria) (*model.EmployeePage, error)
}

// EmployeeService handles business logic for employee operations.
// Single-entity reads and searches are cached; every write evicts the
// affected id key and the whole search namespace, since a targeted key
// cannot be computed against arbitrary search predicates.
type EmployeeService struct {
	empDAO          dao.EmployeeRepository
	deptDAO         dao.DepartmentRepository
	validationUtil  *util.ValidationUtil
	cacheService    *cache.Service
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	auditSvc        audit.Service
}

var _ IEmployeeService = &EmployeeService{}

// NewEmployeeService creates a new instance of EmployeeService
func NewEmployeeService(empDAO dao.EmployeeRepository, deptDAO dao.DepartmentRepository, validationUtil *util.ValidationUtil, cacheService *cache.Service, notificationSvc *util.NotificationService, eventBus *util.EventBus, auditSvc audit.Service) *EmployeeService {
	service := &EmployeeService{
		empDAO:          empDAO,
		deptDAO:         deptDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		auditSvc:        auditSvc,
	}

	// Set up event subscriptions
	eventBus.Subscribe("employee.created", service.handleEmployeeCreated)
	eventBus.Subscribe("employee.updated", service.handleEmployeeChanged)
	eventBus.Subscribe("employee.deleted", service.handleEmployeeChanged)

	return service
}

func (s *EmployeeService) handleEmployeeCreated(ctx context.Context, event util.Event) error {
	emp := event.Payload.(model.Employee)

	if err := s.notificationSvc.NotifyEmployeeChange(ctx, "created", emp); err != nil {
		logger.Warn("Failed to send employee creation notification",
			zap.Error(err), zap.Int64("empID", emp.ID))
	}
	if err := s.notificationSvc.SendWelcomeEmail(ctx, emp.Email); err != nil {
		logger.Warn("Failed to send welcome email",
			zap.Error(err), zap.Int64("empID", emp.ID))
	}
	return nil
}

func (s *EmployeeService) handleEmployeeChanged(ctx context.Context, event util.Event) error {
	emp := event.Payload.(model.Employee)
	changeType := strings.TrimPrefix(event.Type, "employee.")

	if err := s.notificationSvc.NotifyEmployeeChange(ctx, changeType, emp); err != nil {
		logger.Warn("Failed to send employee change notification",
			zap.Error(err), zap.Int64("empID", emp.ID))
	}
	return nil
}

// CreateEmployee creates the employee record and provisions its linked
// account with a generated initial password, in one atomic unit. The
// plaintext password is returned once in the response and never stored.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req model.EmployeeCreateRequest, actor string) (*model.Employee, error) {
	if err := s.validationUtil.ValidateEmployeeCreate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ems_errors.ErrInvalidEmployeeData, err)
	}

	fullName := strings.TrimSpace(req.FullName)
	email := auth.NormalizeEmail(req.Email)
	role, err := model.ParseRole(strings.ToUpper(strings.TrimSpace(req.Role)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ems_errors.ErrInvalidEmployeeData, err)
	}

	status := model.StatusActive
	if strings.TrimSpace(req.Status) != "" {
		status, err = model.ParseEmployeeStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ems_errors.ErrInvalidEmployeeData, err)
		}
	}

	hireDate, err := helper_util.ParseDate(req.HireDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ems_errors.ErrInvalidEmployeeData, err)
	}

	if exists, err := s.empDAO.ExistsByEmail(ctx, email, 0); err != nil {
		logger.Error("Error checking employee email", zap.Error(err), zap.String("email", email))
		return nil, ems_errors.ErrDatabaseOperation
	} else if exists {
		logger.Warn("Attempted to create employee with duplicate email", zap.String("email", email))
		return nil, ems_errors.ErrEmployeeEmailExists
	}

	dept, err := s.deptDAO.GetByID(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, ems_errors.ErrDepartmentNotFound) {
			return nil, ems_errors.ErrDepartmentNotFound
		}
		logger.Error("Error retrieving department", zap.Error(err), zap.Int64("deptID", req.DepartmentID))
		return nil, ems_errors.ErrDatabaseOperation
	}

	password, err := util.GeneratePassword(initialPasswordLength)
	if err != nil {
		logger.Error("Failed to generate initial password", zap.Error(err))
		return nil, ems_errors.ErrInternalServer
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash initial password", zap.Error(err))
		return nil, ems_errors.ErrInternalServer
	}

	emp := &model.Employee{
		FullName:     fullName,
		Email:        email,
		HireDate:     hireDate,
		Status:       status,
		DepartmentID: dept.ID,
	}
	account := &model.AppUser{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Enabled:      true,
	}

	if err := s.empDAO.CreateWithAccount(ctx, emp, account); err != nil {
		logger.Error("Error creating employee", zap.Error(err), zap.String("actor", actor))
		return nil, ems_errors.ErrDatabaseOperation
	}

	s.cacheService.EvictEmployee(ctx, emp.ID)
	s.cacheService.EvictEmployeeSearches(ctx)

	s.recordAudit(ctx, actor, audit.ActionEmployeeCreate, emp.ID)
	s.eventBus.Publish(ctx, "employee.created", *emp)

	logger.Info("Employee created successfully",
		zap.Int64("empID", emp.ID),
		zap.String("actor", actor))

	emp.Department = dept
	emp.InitialPassword = password
	return emp, nil
}

// UpdateEmployee handles updates to an existing employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, empID int64, req model.EmployeeUpdateRequest, actor string) (*model.Employee, error) {
	if err := s.validationUtil.ValidateEmployeeUpdate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ems_errors.ErrInvalidEmployeeData, err)
	}

	emp, err := s.empDAO.GetByID(ctx, empID)
	if err != nil {
		if errors.Is(err, ems_errors.ErrEmployeeNotFound) {
			return nil, ems_errors.ErrEmployeeNotFound
		}
		logger.Error("Error retrieving employee", zap.Error(err), zap.Int64("empID", empID))
		return nil, ems_errors.ErrDatabaseOperation
	}

	email := auth.NormalizeEmail(req.Email)
	if exists, err := s.empDAO.ExistsByEmail(ctx, email, empID); err != nil {
		logger.Error("Error checking employee email", zap.Error(err), zap.String("email", email))
		return nil, ems_errors.ErrDatabaseOperation
	} else if exists {
		logger.Warn("Attempted to update employee with duplicate email",
			zap.Int64("empID", empID), zap.String("email", email))
		return nil, ems_errors.ErrEmployeeEmailExists
	}

	dept, err := s.deptDAO.GetByID(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, ems_errors.ErrDepartmentNotFound) {
			return nil, ems_errors.ErrDepartmentNotFound
		}
		logger.Error("Error retrieving department", zap.Error(err), zap.Int64("deptID", req.DepartmentID))
		return nil, ems_errors.ErrDatabaseOperation
	}

	hireDate, err := helper_util.ParseDate(req.HireDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ems_errors.ErrInvalidEmployeeData, err)
	}
	if strings.TrimSpace(req.Status) != "" {
		status, err := model.ParseEmployeeStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ems_errors.ErrInvalidEmployeeData, err)
		}
		emp.Status = status
	}

	emp.FullName = strings.TrimSpace(req.FullName)
	emp.Email = email
	emp.HireDate = hireDate
	emp.DepartmentID = dept.ID
	emp.Department = dept

	if err := s.empDAO.Update(ctx, emp); err != nil {
		if errors.Is(err, ems_errors.ErrEmployeeNotFound) {
			return nil, ems_errors.ErrEmployeeNotFound
		}
		logger.Error("Error updating employee", zap.Error(err), zap.Int64("empID", empID), zap.String("actor", actor))
		return nil, ems_errors.ErrDatabaseOperation
	}

	s.cacheService.EvictEmployee(ctx, empID)
	s.cacheService.EvictEmployeeSearches(ctx)

	s.recordAudit(ctx, actor, audit.ActionEmployeeUpdate, empID)
	s.eventBus.Publish(ctx, "employee.updated", *emp)

	logger.Info("Employee updated successfully", zap.Int64("empID", empID), zap.String("actor", actor))
	return emp, nil
}

// DeleteEmployee removes the employee and its linked account.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, empID int64, actor string) error {
	emp, err := s.empDAO.GetByID(ctx, empID)
	if err != nil {
		if errors.Is(err, ems_errors.ErrEmployeeNotFound) {
			return ems_errors.ErrEmployeeNotFound
		}
		logger.Error("Error retrieving employee", zap.Error(err), zap.Int64("empID", empID))
		return ems_errors.ErrDatabaseOperation
	}

	if err := s.empDAO.Delete(ctx, empID); err != nil {
		if errors.Is(err, ems_errors.ErrEmployeeNotFound) {
			return ems_errors.ErrEmployeeNotFound
		}
		logger.Error("Error deleting employee", zap.Error(err), zap.Int64("empID", empID), zap.String("actor", actor))
		return ems_errors.ErrDatabaseOperation
	}

	s.cacheService.EvictEmployee(ctx, empID)
	s.cacheService.EvictEmployeeSearches(ctx)

	s.recordAudit(ctx, actor, audit.ActionEmployeeDelete, empID)
	s.eventBus.Publish(ctx, "employee.deleted", *emp)

	logger.Info("Employee deleted successfully", zap.Int64("empID", empID), zap.String("actor", actor))
	return nil
}

// GetEmployee retrieves an employee by ID, serving from cache when
// possible. Not-found is never memoized, so a just-created employee is
// visible immediately.
func (s *EmployeeService) GetEmployee(ctx context.Context, empID int64) (*model.Employee, error) {
	if cached := s.cacheService.GetEmployee(ctx, empID); cached != nil {
		return cached, nil
	}

	emp, err := s.empDAO.GetByID(ctx, empID)
	if err != nil {
		if errors.Is(err, ems_errors.ErrEmployeeNotFound) {
			return nil, ems_errors.ErrEmployeeNotFound
		}
		logger.Error("Error retrieving employee", zap.Error(err), zap.Int64("empID", empID))
		return nil, ems_errors.ErrInternalServer
	}

	s.cacheService.SetEmployee(ctx, emp)
	return emp, nil
}

// SearchEmployees runs a filtered, paged search with read-through
// caching keyed on the canonical encoding of the full parameter set.
func (s *EmployeeService) SearchEmployees(ctx context.Context, criteria model.EmployeeSearchCriteria) (*model.EmployeePage, error) {
	if cached := s.cacheService.GetEmployeeSearch(ctx, criteria); cached != nil {
		return cached, nil
	}

	page, err := s.empDAO.Search(ctx, criteria)
	if err != nil {
		logger.Error("Error searching employees", zap.Error(err),
			zap.String("query", criteria.Query),
			zap.Int64("deptID", criteria.DepartmentID))
		return nil, ems_errors.ErrDatabaseOperation
	}

	s.cacheService.SetEmployeeSearch(ctx, criteria, page)
	return page, nil
}

func (s *EmployeeService) recordAudit(ctx context.Context, actor, action string, empID int64) {
	err := s.auditSvc.Record(ctx, audit.Entry{
		Actor:      actor,
		Action:     action,
		ResourceID: fmt.Sprintf("employee:%d", empID),
		Success:    true,
	})
	if err != nil {
		logger.Warn("Failed to record audit entry", zap.Error(err), zap.String("action", action))
	}
}
