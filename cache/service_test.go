// cache/service_test.go
package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/grootan/ems/api/cache"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
)

// brokenStore fails every operation, standing in for an unreachable
// Redis node.
type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (brokenStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("connection refused")
}

func (brokenStore) Delete(ctx context.Context, key string) error {
	return errors.New("connection refused")
}

func (brokenStore) DeleteNamespace(ctx context.Context, namespace string) error {
	return errors.New("connection refused")
}

func testTTLs() cache.TTLConfig {
	return cache.TTLConfig{
		Department:     6 * time.Hour,
		DepartmentList: 6 * time.Hour,
		Employee:       10 * time.Minute,
		EmployeeSearch: 6 * time.Hour,
	}
}

func TestService_DepartmentRoundTrip(t *testing.T) {
	logger.InitLogger(t.TempDir())
	ctx := context.Background()
	svc := cache.NewService(cache.NewMemoryStore(), testTTLs())

	assert.Nil(t, svc.GetDepartment(ctx, 7))

	svc.SetDepartment(ctx, &model.Department{ID: 7, Code: "ENG", Name: "Engineering"})

	got := svc.GetDepartment(ctx, 7)
	assert.NotNil(t, got)
	assert.Equal(t, "ENG", got.Code)
	assert.Equal(t, "Engineering", got.Name)

	svc.EvictDepartment(ctx, 7)
	assert.Nil(t, svc.GetDepartment(ctx, 7))
}

func TestService_DepartmentList(t *testing.T) {
	logger.InitLogger(t.TempDir())
	ctx := context.Background()
	svc := cache.NewService(cache.NewMemoryStore(), testTTLs())

	assert.Nil(t, svc.GetDepartmentList(ctx))

	svc.SetDepartmentList(ctx, []*model.Department{
		{ID: 1, Code: "ENG", Name: "Engineering"},
		{ID: 2, Code: "HR", Name: "Human Resources"},
	})

	list := svc.GetDepartmentList(ctx)
	assert.Len(t, list, 2)

	svc.EvictDepartmentList(ctx)
	assert.Nil(t, svc.GetDepartmentList(ctx))
}

func TestService_EmployeeSearchNamespaceEviction(t *testing.T) {
	logger.InitLogger(t.TempDir())
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc := cache.NewService(store, testTTLs())

	first := model.EmployeeSearchCriteria{Query: "smith", Page: 0, Size: 20}
	second := model.EmployeeSearchCriteria{DepartmentID: 3, Page: 1, Size: 50}

	svc.SetEmployeeSearch(ctx, first, &model.EmployeePage{TotalItems: 1})
	svc.SetEmployeeSearch(ctx, second, &model.EmployeePage{TotalItems: 9})
	svc.SetEmployee(ctx, &model.Employee{ID: 5, FullName: "Ada Smith"})

	assert.NotNil(t, svc.GetEmployeeSearch(ctx, first))
	assert.NotNil(t, svc.GetEmployeeSearch(ctx, second))

	// Any employee write clears every cached search, whatever its params.
	svc.EvictEmployeeSearches(ctx)
	assert.Nil(t, svc.GetEmployeeSearch(ctx, first))
	assert.Nil(t, svc.GetEmployeeSearch(ctx, second))

	// The byId namespace is evicted per key, not wholesale.
	assert.NotNil(t, svc.GetEmployee(ctx, 5))
}

func TestService_BrokenStoreDegrades(t *testing.T) {
	logger.InitLogger(t.TempDir())
	ctx := context.Background()
	svc := cache.NewService(brokenStore{}, testTTLs())

	// Reads report a miss, writes and evictions are no-ops; nothing
	// panics and nothing errors out to the caller.
	assert.Nil(t, svc.GetDepartment(ctx, 1))
	assert.Nil(t, svc.GetDepartmentList(ctx))
	assert.Nil(t, svc.GetEmployee(ctx, 1))
	assert.Nil(t, svc.GetEmployeeSearch(ctx, model.EmployeeSearchCriteria{Size: 20}))

	svc.SetDepartment(ctx, &model.Department{ID: 1})
	svc.SetEmployee(ctx, &model.Employee{ID: 1})
	svc.EvictDepartment(ctx, 1)
	svc.EvictDepartmentList(ctx)
	svc.EvictEmployee(ctx, 1)
	svc.EvictEmployeeSearches(ctx)
}

func TestService_UndecodableEntryIsAMiss(t *testing.T) {
	logger.InitLogger(t.TempDir())
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc := cache.NewService(store, testTTLs())

	assert.NoError(t, store.Set(ctx, "departmentById:9", []byte("not json"), 0))
	assert.Nil(t, svc.GetDepartment(ctx, 9))
}
