// dao/employee_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	ems_errors "github.com/grootan/ems/api/errors"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
)

// EmployeeRepository is the employee system-of-record contract.
// CreateWithAccount commits the employee row and its linked account in
// one atomic unit.
type EmployeeRepository interface {
	CreateWithAccount(ctx context.Context, emp *model.Employee, account *model.AppUser) error
	GetByID(ctx context.Context, empID int64) (*model.Employee, error)
	Search(ctx context.Context, criteria model.EmployeeSearchCriteria) (*model.EmployeePage, error)
	Update(ctx context.Context, emp *model.Employee) error
	Delete(ctx context.Context, empID int64) error
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
}

type EmployeeDAO struct {
	db *gorm.DB
}

var _ EmployeeRepository = &EmployeeDAO{}

func NewEmployeeDAO(db *gorm.DB) *EmployeeDAO {
	return &EmployeeDAO{db: db}
}

func (dao *EmployeeDAO) CreateWithAccount(ctx context.Context, emp *model.Employee, account *model.AppUser) error {
	start := time.Now()
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(emp).Error; err != nil {
			return err
		}
		account.EmployeeID = &emp.ID
		return tx.Create(account).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create employee %q with account: %w", emp.Email, err)
	}
	logger.Debug("Employee and account rows created",
		zap.Int64("empID", emp.ID),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *EmployeeDAO) GetByID(ctx context.Context, empID int64) (*model.Employee, error) {
	var emp model.Employee
	err := dao.db.WithContext(ctx).Preload("Department").First(&emp, empID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ems_errors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee %d: %w", empID, err)
	}
	return &emp, nil
}

// Search applies the free-text name filter plus the optional department
// and status predicates, paged. Page numbering starts at 0.
func (dao *EmployeeDAO) Search(ctx context.Context, criteria model.EmployeeSearchCriteria) (*model.EmployeePage, error) {
	query := dao.db.WithContext(ctx).Model(&model.Employee{})

	if q := strings.TrimSpace(criteria.Query); q != "" {
		query = query.Where("lower(full_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if criteria.DepartmentID != 0 {
		query = query.Where("department_id = ?", criteria.DepartmentID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count employee search results: %w", err)
	}

	var items []*model.Employee
	err := query.Preload("Department").
		Order("full_name asc").
		Offset(criteria.Page * criteria.Size).
		Limit(criteria.Size).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}

	return &model.EmployeePage{
		Items:      items,
		Page:       criteria.Page,
		Size:       criteria.Size,
		TotalItems: total,
	}, nil
}

func (dao *EmployeeDAO) Update(ctx context.Context, emp *model.Employee) error {
	result := dao.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", emp.ID).
		Updates(map[string]interface{}{
			"full_name":     emp.FullName,
			"email":         emp.Email,
			"hire_date":     emp.HireDate,
			"status":        emp.Status,
			"department_id": emp.DepartmentID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update employee %d: %w", emp.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ems_errors.ErrEmployeeNotFound
	}
	return nil
}

// Delete removes the employee and any linked account in one atomic unit.
func (dao *EmployeeDAO) Delete(ctx context.Context, empID int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", empID).Delete(&model.AppUser{}).Error; err != nil {
			return fmt.Errorf("failed to delete linked account of employee %d: %w", empID, err)
		}
		result := tx.Delete(&model.Employee{}, empID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete employee %d: %w", empID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ems_errors.ErrEmployeeNotFound
		}
		return nil
	})
}

func (dao *EmployeeDAO) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := dao.db.WithContext(ctx).Model(&model.Employee{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check employee email %q: %w", email, err)
	}
	return count > 0, nil
}
