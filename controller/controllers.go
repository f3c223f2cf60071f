// api/controller/controllers.go
package controller

import "github.com/grootan/ems/api/service"

type Controllers struct {
	Auth *AuthController
	Dept *DepartmentController
	Emp  *EmployeeController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Auth: NewAuthController(services.Auth),
		Dept: NewDepartmentController(services.Dept),
		Emp:  NewEmployeeController(services.Emp),
	}
}
