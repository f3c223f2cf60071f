// cache/service.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
)

// TTLConfig holds the per-namespace time-to-live values. TTLs are the
// fallback staleness bound for entries explicit invalidation cannot
// address, so the employee namespaces stay short.
type TTLConfig struct {
	Department     time.Duration
	DepartmentList time.Duration
	Employee       time.Duration
	EmployeeSearch time.Duration
}

// Service is the typed cache facade the business services go through.
// Every method degrades on store failure: reads report a miss, writes
// and evictions become no-ops, and the system of record stays the sole
// source of truth. Only not-found is never cached; absence must stay
// observable the instant an entity is created.
type Service struct {
	store Store
	ttls  TTLConfig
}

func NewService(store Store, ttls TTLConfig) *Service {
	return &Service{store: store, ttls: ttls}
}

func (s *Service) GetDepartment(ctx context.Context, deptID int64) *model.Department {
	var dept model.Department
	if !s.get(ctx, Key(NamespaceDepartmentByID, fmt.Sprintf("%d", deptID)), &dept) {
		return nil
	}
	return &dept
}

func (s *Service) SetDepartment(ctx context.Context, dept *model.Department) {
	s.set(ctx, Key(NamespaceDepartmentByID, fmt.Sprintf("%d", dept.ID)), dept, s.ttls.Department)
}

func (s *Service) EvictDepartment(ctx context.Context, deptID int64) {
	s.evict(ctx, Key(NamespaceDepartmentByID, fmt.Sprintf("%d", deptID)))
}

func (s *Service) GetDepartmentList(ctx context.Context) []*model.Department {
	var depts []*model.Department
	if !s.get(ctx, Key(NamespaceDepartmentList), &depts) {
		return nil
	}
	return depts
}

func (s *Service) SetDepartmentList(ctx context.Context, depts []*model.Department) {
	s.set(ctx, Key(NamespaceDepartmentList), depts, s.ttls.DepartmentList)
}

func (s *Service) EvictDepartmentList(ctx context.Context) {
	s.evictNamespace(ctx, NamespaceDepartmentList)
}

func (s *Service) GetEmployee(ctx context.Context, empID int64) *model.Employee {
	var emp model.Employee
	if !s.get(ctx, Key(NamespaceEmployeeByID, fmt.Sprintf("%d", empID)), &emp) {
		return nil
	}
	return &emp
}

func (s *Service) SetEmployee(ctx context.Context, emp *model.Employee) {
	s.set(ctx, Key(NamespaceEmployeeByID, fmt.Sprintf("%d", emp.ID)), emp, s.ttls.Employee)
}

func (s *Service) EvictEmployee(ctx context.Context, empID int64) {
	s.evict(ctx, Key(NamespaceEmployeeByID, fmt.Sprintf("%d", empID)))
}

func (s *Service) GetEmployeeSearch(ctx context.Context, criteria model.EmployeeSearchCriteria) *model.EmployeePage {
	var page model.EmployeePage
	if !s.get(ctx, SearchKey(criteria), &page) {
		return nil
	}
	return &page
}

func (s *Service) SetEmployeeSearch(ctx context.Context, criteria model.EmployeeSearchCriteria, page *model.EmployeePage) {
	s.set(ctx, SearchKey(criteria), page, s.ttls.EmployeeSearch)
}

// EvictEmployeeSearches drops the whole search namespace. A targeted
// key cannot be computed against arbitrary search predicates, so any
// employee write clears everything.
func (s *Service) EvictEmployeeSearches(ctx context.Context) {
	s.evictNamespace(ctx, NamespaceEmployeeSearch)
}

func (s *Service) get(ctx context.Context, key string, out interface{}) bool {
	data, err := s.store.Get(ctx, key)
	if errors.Is(err, ErrMiss) {
		return false
	}
	if err != nil {
		logger.Warn("Cache read failed, falling through to store", zap.Error(err), zap.String("key", key))
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Cache entry undecodable, treating as miss", zap.Error(err), zap.String("key", key))
		return false
	}
	return true
}

func (s *Service) set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to marshal cache value", zap.Error(err), zap.String("key", key))
		return
	}
	if err := s.store.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}
}

func (s *Service) evict(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		logger.Warn("Cache eviction failed, TTL is the staleness bound", zap.Error(err), zap.String("key", key))
	}
}

func (s *Service) evictNamespace(ctx context.Context, namespace string) {
	if err := s.store.DeleteNamespace(ctx, namespace); err != nil {
		logger.Warn("Namespace eviction failed, TTL is the staleness bound", zap.Error(err), zap.String("namespace", namespace))
	}
}
