// api/service/services.go
package service

import (
	"gorm.io/gorm"

	"github.com/grootan/ems/api/audit"
	"github.com/grootan/ems/api/auth"
	"github.com/grootan/ems/api/cache"
	"github.com/grootan/ems/api/dao"
	"github.com/grootan/ems/api/util"
)

type Services struct {
	Auth IAuthService
	Dept IDepartmentService
	Emp  IEmployeeService
}

func InitializeServices(
	db *gorm.DB,
	tokens *auth.TokenService,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *cache.Service,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(db)
	departmentDAO := dao.NewDepartmentDAO(db)
	employeeDAO := dao.NewEmployeeDAO(db)

	verifier := auth.NewCredentialVerifier(userDAO)

	services := &Services{
		Auth: NewAuthService(verifier, tokens, auditService),
		Dept: NewDepartmentService(departmentDAO, validationUtil, cacheService, notificationSvc, eventBus, auditService),
		Emp:  NewEmployeeService(employeeDAO, departmentDAO, validationUtil, cacheService, notificationSvc, eventBus, auditService),
	}

	return services, nil
}
