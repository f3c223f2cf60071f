// dao/department_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	ems_errors "github.com/grootan/ems/api/errors"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
)

// DepartmentRepository is the department system-of-record contract.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *model.Department) error
	GetByID(ctx context.Context, deptID int64) (*model.Department, error)
	List(ctx context.Context) ([]*model.Department, error)
	Update(ctx context.Context, dept *model.Department) error
	Delete(ctx context.Context, deptID int64) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	CountEmployees(ctx context.Context, deptID int64) (int64, error)
}

type DepartmentDAO struct {
	db *gorm.DB
}

var _ DepartmentRepository = &DepartmentDAO{}

func NewDepartmentDAO(db *gorm.DB) *DepartmentDAO {
	return &DepartmentDAO{db: db}
}

func (dao *DepartmentDAO) Create(ctx context.Context, dept *model.Department) error {
	start := time.Now()
	if err := dao.db.WithContext(ctx).Create(dept).Error; err != nil {
		return fmt.Errorf("failed to create department %q: %w", dept.Code, err)
	}
	logger.Debug("Department row created",
		zap.Int64("deptID", dept.ID),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *DepartmentDAO) GetByID(ctx context.Context, deptID int64) (*model.Department, error) {
	var dept model.Department
	err := dao.db.WithContext(ctx).First(&dept, deptID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ems_errors.ErrDepartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch department %d: %w", deptID, err)
	}
	return &dept, nil
}

func (dao *DepartmentDAO) List(ctx context.Context) ([]*model.Department, error) {
	var depts []*model.Department
	if err := dao.db.WithContext(ctx).Order("name asc").Find(&depts).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return depts, nil
}

func (dao *DepartmentDAO) Update(ctx context.Context, dept *model.Department) error {
	result := dao.db.WithContext(ctx).Model(&model.Department{}).
		Where("id = ?", dept.ID).
		Updates(map[string]interface{}{"name": dept.Name})
	if result.Error != nil {
		return fmt.Errorf("failed to update department %d: %w", dept.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ems_errors.ErrDepartmentNotFound
	}
	return nil
}

func (dao *DepartmentDAO) Delete(ctx context.Context, deptID int64) error {
	result := dao.db.WithContext(ctx).Delete(&model.Department{}, deptID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete department %d: %w", deptID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ems_errors.ErrDepartmentNotFound
	}
	return nil
}

func (dao *DepartmentDAO) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := dao.db.WithContext(ctx).Model(&model.Department{}).
		Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check department code %q: %w", code, err)
	}
	return count > 0, nil
}

func (dao *DepartmentDAO) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := dao.db.WithContext(ctx).Model(&model.Department{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check department name %q: %w", name, err)
	}
	return count > 0, nil
}

func (dao *DepartmentDAO) CountEmployees(ctx context.Context, deptID int64) (int64, error) {
	var count int64
	err := dao.db.WithContext(ctx).Model(&model.Employee{}).
		Where("department_id = ?", deptID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count employees of department %d: %w", deptID, err)
	}
	return count, nil
}
