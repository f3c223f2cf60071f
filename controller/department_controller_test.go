// api/controller/department_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/grootan/ems/api/controller"
	ems_errors "github.com/grootan/ems/api/errors"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
	mock_service "github.com/grootan/ems/api/test/service_mock"
	"github.com/grootan/ems/api/util"
)

// bindPrincipal simulates the authentication middleware for handler tests.
func bindPrincipal(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		util.SetPrincipal(c, &model.Principal{Email: "actor@corp.example", Role: role, Enabled: true})
		c.Next()
	}
}

func TestDepartmentController(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDeptService := mock_service.NewMockIDepartmentService(ctrl)
	deptController := controller.NewDepartmentController(mockDeptService)
	router := setupRouter()
	router.Use(bindPrincipal(model.RoleAdmin))
	deptController.RegisterRoutes(router)

	t.Run("CreateDepartment_Success", func(t *testing.T) {
		mockDeptService.EXPECT().
			CreateDepartment(gomock.Any(), model.DepartmentCreateRequest{Code: "ENG", Name: "Engineering"}, "actor@corp.example").
			Return(&model.Department{ID: 7, Code: "ENG", Name: "Engineering"}, nil)

		body := strings.NewReader(`{"code":"ENG","name":"Engineering"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/departments", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var dept model.Department
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &dept))
		assert.Equal(t, int64(7), dept.ID)
	})

	t.Run("CreateDepartment_DuplicateCode", func(t *testing.T) {
		mockDeptService.EXPECT().
			CreateDepartment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, ems_errors.ErrDepartmentCodeExists)

		body := strings.NewReader(`{"code":"ENG","name":"Engineering Two"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/departments", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("CreateDepartment_ErrorEnvelope", func(t *testing.T) {
		mockDeptService.EXPECT().
			CreateDepartment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, ems_errors.ErrDepartmentCodeExists)

		body := strings.NewReader(`{"code":"ENG","name":"Engineering"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/departments", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		// The envelope carries a machine-readable code so a client can
		// tell the two 409 conflict causes apart without reading the
		// message text.
		var envelope map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, float64(http.StatusConflict), envelope["status"])
		assert.Equal(t, "department_code_exists", envelope["code"])
		assert.Equal(t, "/api/departments", envelope["path"])
		assert.NotEmpty(t, envelope["message"])
	})

	t.Run("CreateDepartment_MissingFields", func(t *testing.T) {
		body := strings.NewReader(`{"code":"ENG"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/departments", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateDepartment_Success", func(t *testing.T) {
		mockDeptService.EXPECT().
			UpdateDepartment(gomock.Any(), int64(7), model.DepartmentUpdateRequest{Name: "Platform"}, "actor@corp.example").
			Return(&model.Department{ID: 7, Code: "ENG", Name: "Platform"}, nil)

		body := strings.NewReader(`{"name":"Platform"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/departments/7", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UpdateDepartment_NotFound", func(t *testing.T) {
		mockDeptService.EXPECT().
			UpdateDepartment(gomock.Any(), int64(99), gomock.Any(), gomock.Any()).
			Return(nil, ems_errors.ErrDepartmentNotFound)

		body := strings.NewReader(`{"name":"Ghost"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/departments/99", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UpdateDepartment_BadID", func(t *testing.T) {
		body := strings.NewReader(`{"name":"Whatever"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/departments/abc", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DeleteDepartment_Success", func(t *testing.T) {
		mockDeptService.EXPECT().
			DeleteDepartment(gomock.Any(), int64(7), "actor@corp.example").
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/departments/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("DeleteDepartment_HasEmployees", func(t *testing.T) {
		mockDeptService.EXPECT().
			DeleteDepartment(gomock.Any(), int64(7), gomock.Any()).
			Return(ems_errors.ErrDepartmentHasEmployees)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/departments/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("GetDepartment_Success", func(t *testing.T) {
		mockDeptService.EXPECT().
			GetDepartment(gomock.Any(), int64(7)).
			Return(&model.Department{ID: 7, Code: "ENG", Name: "Engineering"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/departments/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetDepartment_NotFound", func(t *testing.T) {
		mockDeptService.EXPECT().
			GetDepartment(gomock.Any(), int64(99)).
			Return(nil, ems_errors.ErrDepartmentNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/departments/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListDepartments_Success", func(t *testing.T) {
		mockDeptService.EXPECT().
			ListDepartments(gomock.Any()).
			Return([]*model.Department{
				{ID: 1, Code: "ENG", Name: "Engineering"},
				{ID: 2, Code: "HR", Name: "Human Resources"},
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/departments", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var depts []*model.Department
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &depts))
		assert.Len(t, depts, 2)
	})
}
