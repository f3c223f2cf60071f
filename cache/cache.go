// cache/cache.go
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/grootan/ems/api/model"
)

// ErrMiss is returned by Store.Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache namespaces. Each namespace shares one TTL policy and one
// invalidation strategy: the byId namespaces are evicted per key, the
// list and search namespaces wholesale on any write to the entity type.
const (
	NamespaceDepartmentByID = "departmentById"
	NamespaceDepartmentList = "departments"
	NamespaceEmployeeByID   = "employeeById"
	NamespaceEmployeeSearch = "employeeSearch"
)

// placeholder keeps the key space bounded when a search parameter is
// absent; without it, "" and a missing value would collide differently
// across encoders.
const placeholder = "-"

// Store is the minimal contract any cache backend satisfies. Reads and
// writes to a single key must be linearizable; no cross-key atomicity
// is required.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// DeleteNamespace evicts every key in the namespace. Used for key
	// spaces that cannot be narrowed deterministically on a write.
	DeleteNamespace(ctx context.Context, namespace string) error
}

// Key builds a namespaced cache key.
func Key(namespace string, parts ...string) string {
	if len(parts) == 0 {
		return namespace + ":all"
	}
	return namespace + ":" + strings.Join(parts, "|")
}

// SearchKey canonically encodes the full employee search parameter set.
// Two searches with identical parameters always map to the same key.
func SearchKey(c model.EmployeeSearchCriteria) string {
	q := strings.ToLower(strings.TrimSpace(c.Query))
	if q == "" {
		q = placeholder
	}
	dept := placeholder
	if c.DepartmentID != 0 {
		dept = fmt.Sprintf("%d", c.DepartmentID)
	}
	st := placeholder
	if c.Status != "" {
		st = string(c.Status)
	}
	return Key(NamespaceEmployeeSearch,
		fmt.Sprintf("q=%s", q),
		fmt.Sprintf("dept=%s", dept),
		fmt.Sprintf("st=%s", st),
		fmt.Sprintf("p=%d", c.Page),
		fmt.Sprintf("s=%d", c.Size),
	)
}
