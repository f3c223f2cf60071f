// service/department_service_test.go
package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/grootan/ems/api/audit"
	"github.com/grootan/ems/api/cache"
	ems_errors "github.com/grootan/ems/api/errors"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
	"github.com/grootan/ems/api/service"
	"github.com/grootan/ems/api/test/mock"
	"github.com/grootan/ems/api/util"
)

// failingStore simulates a cache backend outage.
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("connection refused")
}

func (failingStore) Delete(ctx context.Context, key string) error {
	return errors.New("connection refused")
}

func (failingStore) DeleteNamespace(ctx context.Context, namespace string) error {
	return errors.New("connection refused")
}

func newCacheService() *cache.Service {
	return cache.NewService(cache.NewMemoryStore(), cache.TTLConfig{
		Department:     6 * time.Hour,
		DepartmentList: 6 * time.Hour,
		Employee:       10 * time.Minute,
		EmployeeSearch: 6 * time.Hour,
	})
}

func newDepartmentService(repo *mock.MockDepartmentRepository, cacheSvc *cache.Service) *service.DepartmentService {
	return service.NewDepartmentService(
		repo,
		util.NewValidationUtil(),
		cacheSvc,
		util.NewNotificationService(),
		util.NewEventBus(),
		audit.NopService{},
	)
}

func TestDepartmentService_Create(t *testing.T) {
	logger.InitLogger(t.TempDir())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mock.MockDepartmentRepository)
		repo.On("ExistsByCode", ctx, "ENG").Return(false, nil)
		repo.On("ExistsByName", ctx, "Engineering", int64(0)).Return(false, nil)
		repo.On("Create", ctx, tmock.AnythingOfType("*model.Department")).
			Run(func(args tmock.Arguments) {
				args.Get(1).(*model.Department).ID = 7
			}).
			Return(nil)

		svc := newDepartmentService(repo, newCacheService())
		dept, err := svc.CreateDepartment(ctx, model.DepartmentCreateRequest{Code: " eng ", Name: " Engineering "}, "admin@corp.example")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), dept.ID)
		assert.Equal(t, "ENG", dept.Code)
		assert.Equal(t, "Engineering", dept.Name)
		repo.AssertExpectations(t)
	})

	t.Run("DuplicateCode", func(t *testing.T) {
		repo := new(mock.MockDepartmentRepository)
		repo.On("ExistsByCode", ctx, "ENG").Return(true, nil)

		svc := newDepartmentService(repo, newCacheService())
		_, err := svc.CreateDepartment(ctx, model.DepartmentCreateRequest{Code: "ENG", Name: "Engineering"}, "admin@corp.example")
		assert.ErrorIs(t, err, ems_errors.ErrDepartmentCodeExists)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		repo := new(mock.MockDepartmentRepository)
		repo.On("ExistsByCode", ctx, "ENG2").Return(false, nil)
		repo.On("ExistsByName", ctx, "Engineering", int64(0)).Return(true, nil)

		svc := newDepartmentService(repo, newCacheService())
		_, err := svc.CreateDepartment(ctx, model.DepartmentCreateRequest{Code: "ENG2", Name: "Engineering"}, "admin@corp.example")
		assert.ErrorIs(t, err, ems_errors.ErrDepartmentNameExists)
	})

	t.Run("InvalidData", func(t *testing.T) {
		repo := new(mock.MockDepartmentRepository)
		svc := newDepartmentService(repo, newCacheService())
		_, err := svc.CreateDepartment(ctx, model.DepartmentCreateRequest{Code: "", Name: "Engineering"}, "admin@corp.example")
		assert.ErrorIs(t, err, ems_errors.ErrInvalidDepartmentData)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("CreateEvictsStaleList", func(t *testing.T) {
		cacheSvc := newCacheService()
		cacheSvc.SetDepartmentList(ctx, []*model.Department{{ID: 1, Code: "OLD", Name: "Old Era"}})

		repo := new(mock.MockDepartmentRepository)
		repo.On("ExistsByCode", ctx, "ENG").Return(false, nil)
		repo.On("ExistsByName", ctx, "Engineering", int64(0)).Return(false, nil)
		repo.On("Create", ctx, tmock.AnythingOfType("*model.Department")).
			Run(func(args tmock.Arguments) {
				args.Get(1).(*model.Department).ID = 2
			}).
			Return(nil)
		repo.On("List", ctx).Return([]*model.Department{
			{ID: 1, Code: "OLD", Name: "Old Era"},
			{ID: 2, Code: "ENG", Name: "Engineering"},
		}, nil)

		svc := newDepartmentService(repo, cacheSvc)
		_, err := svc.CreateDepartment(ctx, model.DepartmentCreateRequest{Code: "ENG", Name: "Engineering"}, "admin@corp.example")
		assert.NoError(t, err)

		// The next list read reflects the new department, not the
		// cached pre-write snapshot.
		list, err := svc.ListDepartments(ctx)
		assert.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	logger.InitLogger(t.TempDir())
	ctx := context.Background()

	t.Run("WriteThenReadIsFresh", func(t *testing.T) {
		cacheSvc := newCacheService()
		cacheSvc.SetDepartment(ctx, &model.Department{ID: 7, Code: "ENG", Name: "Engineering"})

		repo := new(mock.MockDepartmentRepository)
		repo.On("GetByID", ctx, int64(7)).Return(&model.Department{ID: 7, Code: "ENG", Name: "Engineering"}, nil).Once()
		repo.On("ExistsByName", ctx, "Platform Engineering", int64(7)).Return(false, nil)
		repo.On("Update", ctx, tmock.AnythingOfType("*model.Department")).Return(nil)
		repo.On("GetByID", ctx, int64(7)).Return(&model.Department{ID: 7, Code: "ENG", Name: "Platform Engineering"}, nil).Once()

		svc := newDepartmentService(repo, cacheSvc)
		_, err := svc.UpdateDepartment(ctx, 7, model.DepartmentUpdateRequest{Name: "Platform Engineering"}, "hr@corp.example")
		assert.NoError(t, err)

		got, err := svc.GetDepartment(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "Platform Engineering", got.Name)
		repo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(mock.MockDepartmentRepository)
		repo.On("GetByID", ctx, int64(99)).Return(nil, ems_errors.ErrDepartmentNotFound)

		svc := newDepartmentService(repo, newCacheService())
		_, err := svc.UpdateDepartment(ctx, 99, model.DepartmentUpdateRequest{Name: "Ghost"}, "hr@corp.example")
		assert.ErrorIs(t, err, ems_errors.ErrDepartmentNotFound)
	})

	t.Run("RenameToTakenName", func(t *testing.T) {
		repo := new(mock.MockDepartmentRepository)
		repo.On("GetByID", ctx, int64(7)).Return(&model.Department{ID: 7, Code: "ENG", Name: "Engineering"}, nil)
		repo.On("ExistsByName", ctx, "Human Resources", int64(7)).Return(true, nil)

		svc := newDepartmentService(repo, newCacheService())
		_, err := svc.UpdateDepartment(ctx, 7, model.DepartmentUpdateRequest{Name: "Human Resources"}, "hr@corp.example")
		assert.ErrorIs(t, err, ems_errors.ErrDepartmentNameExists)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	logger.InitLogger(t.TempDir())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mock.MockDepartmentRepository)
		repo.On("GetByID", ctx, int64(7)).Return(&model.Department{ID: 7, Code: "ENG", Name: "Engineering"}, nil)
		repo.On("CountEmployees", ctx, int64(7)).Return(int64(0), nil)
		repo.On("Delete", ctx, int64(7)).Return(nil)

		svc := newDepartmentService(repo, newCacheService())
		assert.NoError(t, svc.DeleteDepartment(ctx, 7, "admin@corp.example"))
		repo.AssertExpectations(t)
	})

	t.Run("StillHasEmployees", func(t *testing.T) {
		repo := new(mock.MockDepartmentRepository)
		repo.On("GetByID", ctx, int64(7)).Return(&model.Department{ID: 7, Code: "ENG", Name: "Engineering"}, nil)
		repo.On("CountEmployees", ctx, int64(7)).Return(int64(4), nil)

		svc := newDepartmentService(repo, newCacheService())
		err := svc.DeleteDepartment(ctx, 7, "admin@corp.example")
		assert.ErrorIs(t, err, ems_errors.ErrDepartmentHasEmployees)
		repo.AssertNotCalled(t, "Delete")
	})
}

func TestDepartmentService_Get(t *testing.T) {
	logger.InitLogger(t.TempDir())
	ctx := context.Background()

	t.Run("SecondReadServedFromCache", func(t *testing.T) {
		repo := new(mock.MockDepartmentRepository)
		repo.On("GetByID", ctx, int64(7)).Return(&model.Department{ID: 7, Code: "ENG", Name: "Engineering"}, nil).Once()

		svc := newDepartmentService(repo, newCacheService())
		first, err := svc.GetDepartment(ctx, 7)
		assert.NoError(t, err)
		second, err := svc.GetDepartment(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, first.Name, second.Name)
		repo.AssertExpectations(t)
	})

	t.Run("NotFoundIsNeverCached", func(t *testing.T) {
		repo := new(mock.MockDepartmentRepository)
		repo.On("GetByID", ctx, int64(9)).Return(nil, ems_errors.ErrDepartmentNotFound).Once()
		repo.On("GetByID", ctx, int64(9)).Return(&model.Department{ID: 9, Code: "NEW", Name: "Newly Created"}, nil).Once()

		svc := newDepartmentService(repo, newCacheService())
		_, err := svc.GetDepartment(ctx, 9)
		assert.ErrorIs(t, err, ems_errors.ErrDepartmentNotFound)

		// Once the department exists, the earlier miss must not mask it.
		got, err := svc.GetDepartment(ctx, 9)
		assert.NoError(t, err)
		assert.Equal(t, "Newly Created", got.Name)
		repo.AssertExpectations(t)
	})

	t.Run("BrokenCacheFallsThrough", func(t *testing.T) {
		repo := new(mock.MockDepartmentRepository)
		repo.On("GetByID", ctx, int64(7)).Return(&model.Department{ID: 7, Code: "ENG", Name: "Engineering"}, nil).Twice()

		cacheSvc := cache.NewService(failingStore{}, cache.TTLConfig{})
		svc := newDepartmentService(repo, cacheSvc)

		for i := 0; i < 2; i++ {
			got, err := svc.GetDepartment(ctx, 7)
			assert.NoError(t, err)
			assert.Equal(t, "Engineering", got.Name)
		}
		repo.AssertExpectations(t)
	})
}
