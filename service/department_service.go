// service/department_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/grootan/ems/api/audit"
	"github.com/grootan/ems/api/cache"
	"github.com/grootan/ems/api/dao"
	ems_errors "github.com/grootan/ems/api/errors"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
	"github.com/grootan/ems/api/util"
)

// IDepartmentService defines the interface for department operations
type IDepartmentService interface {
	CreateDepartment(ctx context.Context, req model.DepartmentCreateRequest, actor string) (*model.Department, error)
	UpdateDepartment(ctx context.Context, deptID int64, req model.DepartmentUpdateRequest, actor string) (*model.Department, error)
	DeleteDepartment(ctx context.Context, deptID int64, actor string) error
	GetDepartment(ctx context.Context, deptID int64) (*model.Department, error)
	ListDepartments(ctx context.Context) ([]*model.Department, error)
}

// DepartmentService handles business logic for department operations.
// Reads go through the cache; writes commit to the system of record
// first and then invalidate, so a following read can never observe the
// pre-write payload.
type DepartmentService struct {
	deptDAO         dao.DepartmentRepository
	validationUtil  *util.ValidationUtil
	cacheService    *cache.Service
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	auditSvc        audit.Service
}

var _ IDepartmentService = &DepartmentService{}

// NewDepartmentService creates a new instance of DepartmentService
func NewDepartmentService(deptDAO dao.DepartmentRepository, validationUtil *util.ValidationUtil, cacheService *cache.Service, notificationSvc *util.NotificationService, eventBus *util.EventBus, auditSvc audit.Service) *DepartmentService {
	service := &DepartmentService{
		deptDAO:         deptDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		auditSvc:        auditSvc,
	}

	// Set up event subscriptions
	eventBus.Subscribe("department.created", service.handleDepartmentChanged)
	eventBus.Subscribe("department.updated", service.handleDepartmentChanged)
	eventBus.Subscribe("department.deleted", service.handleDepartmentChanged)

	return service
}

func (s *DepartmentService) handleDepartmentChanged(ctx context.Context, event util.Event) error {
	dept := event.Payload.(model.Department)
	changeType := strings.TrimPrefix(event.Type, "department.")

	if err := s.notificationSvc.NotifyDepartmentChange(ctx, changeType, dept); err != nil {
		logger.Warn("Failed to send department change notification",
			zap.Error(err), zap.Int64("deptID", dept.ID))
	}
	return nil
}

// CreateDepartment handles the creation of a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, req model.DepartmentCreateRequest, actor string) (*model.Department, error) {
	if err := s.validationUtil.ValidateDepartmentCreate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ems_errors.ErrInvalidDepartmentData, err)
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	name := strings.TrimSpace(req.Name)

	if exists, err := s.deptDAO.ExistsByCode(ctx, code); err != nil {
		logger.Error("Error checking department code", zap.Error(err), zap.String("code", code))
		return nil, ems_errors.ErrDatabaseOperation
	} else if exists {
		logger.Warn("Attempted to create duplicate department code", zap.String("code", code))
		return nil, ems_errors.ErrDepartmentCodeExists
	}
	if exists, err := s.deptDAO.ExistsByName(ctx, name, 0); err != nil {
		logger.Error("Error checking department name", zap.Error(err), zap.String("name", name))
		return nil, ems_errors.ErrDatabaseOperation
	} else if exists {
		logger.Warn("Attempted to create duplicate department name", zap.String("name", name))
		return nil, ems_errors.ErrDepartmentNameExists
	}

	dept := &model.Department{Code: code, Name: name}
	if err := s.deptDAO.Create(ctx, dept); err != nil {
		logger.Error("Error creating department", zap.Error(err), zap.String("actor", actor))
		return nil, ems_errors.ErrDatabaseOperation
	}

	// Invalidate after the commit: the list namespace cannot be narrowed.
	s.cacheService.EvictDepartment(ctx, dept.ID)
	s.cacheService.EvictDepartmentList(ctx)

	s.recordAudit(ctx, actor, audit.ActionDepartmentCreate, dept.ID)
	s.eventBus.Publish(ctx, "department.created", *dept)

	logger.Info("Department created successfully", zap.Int64("deptID", dept.ID), zap.String("actor", actor))
	return dept, nil
}

// UpdateDepartment renames an existing department; codes are immutable.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, deptID int64, req model.DepartmentUpdateRequest, actor string) (*model.Department, error) {
	if err := s.validationUtil.ValidateDepartmentUpdate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ems_errors.ErrInvalidDepartmentData, err)
	}

	dept, err := s.deptDAO.GetByID(ctx, deptID)
	if err != nil {
		if errors.Is(err, ems_errors.ErrDepartmentNotFound) {
			return nil, ems_errors.ErrDepartmentNotFound
		}
		logger.Error("Error retrieving existing department", zap.Error(err), zap.Int64("deptID", deptID))
		return nil, ems_errors.ErrDatabaseOperation
	}

	name := strings.TrimSpace(req.Name)
	if name != dept.Name {
		if exists, err := s.deptDAO.ExistsByName(ctx, name, deptID); err != nil {
			logger.Error("Error checking department name", zap.Error(err), zap.String("name", name))
			return nil, ems_errors.ErrDatabaseOperation
		} else if exists {
			logger.Warn("Attempted to rename department to existing name",
				zap.Int64("deptID", deptID), zap.String("name", name))
			return nil, ems_errors.ErrDepartmentNameExists
		}
	}

	dept.Name = name
	if err := s.deptDAO.Update(ctx, dept); err != nil {
		if errors.Is(err, ems_errors.ErrDepartmentNotFound) {
			return nil, ems_errors.ErrDepartmentNotFound
		}
		logger.Error("Error updating department", zap.Error(err), zap.Int64("deptID", deptID), zap.String("actor", actor))
		return nil, ems_errors.ErrDatabaseOperation
	}

	s.cacheService.EvictDepartment(ctx, deptID)
	s.cacheService.EvictDepartmentList(ctx)

	s.recordAudit(ctx, actor, audit.ActionDepartmentUpdate, deptID)
	s.eventBus.Publish(ctx, "department.updated", *dept)

	logger.Info("Department updated successfully", zap.Int64("deptID", deptID), zap.String("actor", actor))
	return dept, nil
}

// DeleteDepartment handles the deletion of a department
func (s *DepartmentService) DeleteDepartment(ctx context.Context, deptID int64, actor string) error {
	dept, err := s.deptDAO.GetByID(ctx, deptID)
	if err != nil {
		if errors.Is(err, ems_errors.ErrDepartmentNotFound) {
			return ems_errors.ErrDepartmentNotFound
		}
		logger.Error("Error retrieving department", zap.Error(err), zap.Int64("deptID", deptID))
		return ems_errors.ErrDatabaseOperation
	}

	count, err := s.deptDAO.CountEmployees(ctx, deptID)
	if err != nil {
		logger.Error("Error counting department employees", zap.Error(err), zap.Int64("deptID", deptID))
		return ems_errors.ErrDatabaseOperation
	}
	if count > 0 {
		logger.Warn("Cannot delete department with employees",
			zap.Int64("deptID", deptID), zap.Int64("employees", count))
		return ems_errors.ErrDepartmentHasEmployees
	}

	if err := s.deptDAO.Delete(ctx, deptID); err != nil {
		if errors.Is(err, ems_errors.ErrDepartmentNotFound) {
			return ems_errors.ErrDepartmentNotFound
		}
		logger.Error("Error deleting department", zap.Error(err), zap.Int64("deptID", deptID), zap.String("actor", actor))
		return ems_errors.ErrDatabaseOperation
	}

	s.cacheService.EvictDepartment(ctx, deptID)
	s.cacheService.EvictDepartmentList(ctx)

	s.recordAudit(ctx, actor, audit.ActionDepartmentDelete, deptID)
	s.eventBus.Publish(ctx, "department.deleted", *dept)

	logger.Info("Department deleted successfully", zap.Int64("deptID", deptID), zap.String("actor", actor))
	return nil
}

// GetDepartment retrieves a department by its ID, serving from cache
// when possible. Not-found is never memoized.
func (s *DepartmentService) GetDepartment(ctx context.Context, deptID int64) (*model.Department, error) {
	if cached := s.cacheService.GetDepartment(ctx, deptID); cached != nil {
		return cached, nil
	}

	dept, err := s.deptDAO.GetByID(ctx, deptID)
	if err != nil {
		if errors.Is(err, ems_errors.ErrDepartmentNotFound) {
			return nil, ems_errors.ErrDepartmentNotFound
		}
		logger.Error("Error retrieving department", zap.Error(err), zap.Int64("deptID", deptID))
		return nil, ems_errors.ErrInternalServer
	}

	s.cacheService.SetDepartment(ctx, dept)
	return dept, nil
}

// ListDepartments retrieves all departments sorted by name.
func (s *DepartmentService) ListDepartments(ctx context.Context) ([]*model.Department, error) {
	if cached := s.cacheService.GetDepartmentList(ctx); cached != nil {
		return cached, nil
	}

	depts, err := s.deptDAO.List(ctx)
	if err != nil {
		logger.Error("Error listing departments", zap.Error(err))
		return nil, ems_errors.ErrDatabaseOperation
	}

	s.cacheService.SetDepartmentList(ctx, depts)
	return depts, nil
}

func (s *DepartmentService) recordAudit(ctx context.Context, actor, action string, deptID int64) {
	err := s.auditSvc.Record(ctx, audit.Entry{
		Actor:      actor,
		Action:     action,
		ResourceID: fmt.Sprintf("department:%d", deptID),
		Success:    true,
	})
	if err != nil {
		logger.Warn("Failed to record audit entry", zap.Error(err), zap.String("action", action))
	}
}
