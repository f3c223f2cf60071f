// cache/cache_test.go
package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grootan/ems/api/cache"
	"github.com/grootan/ems/api/model"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "departments:all", cache.Key(cache.NamespaceDepartmentList))
	assert.Equal(t, "departmentById:7", cache.Key(cache.NamespaceDepartmentByID, "7"))
	assert.Equal(t, "employeeById:12", cache.Key(cache.NamespaceEmployeeByID, "12"))
}

func TestSearchKey_Canonical(t *testing.T) {
	base := model.EmployeeSearchCriteria{Query: "smith", DepartmentID: 3, Status: model.StatusActive, Page: 2, Size: 20}

	assert.Equal(t, "employeeSearch:q=smith|dept=3|st=ACTIVE|p=2|s=20", cache.SearchKey(base))

	// Identical parameters always map to the same key.
	assert.Equal(t, cache.SearchKey(base), cache.SearchKey(base))

	// Query text is trimmed and lowercased before keying.
	folded := base
	folded.Query = "  SMITH "
	assert.Equal(t, cache.SearchKey(base), cache.SearchKey(folded))
}

func TestSearchKey_EmptyParamsUsePlaceholder(t *testing.T) {
	criteria := model.EmployeeSearchCriteria{Page: 0, Size: 20}
	assert.Equal(t, "employeeSearch:q=-|dept=-|st=-|p=0|s=20", cache.SearchKey(criteria))
}

func TestSearchKey_DistinguishesEveryField(t *testing.T) {
	base := model.EmployeeSearchCriteria{Query: "smith", DepartmentID: 3, Status: model.StatusActive, Page: 0, Size: 20}

	variants := []model.EmployeeSearchCriteria{
		{Query: "jones", DepartmentID: 3, Status: model.StatusActive, Page: 0, Size: 20},
		{Query: "smith", DepartmentID: 4, Status: model.StatusActive, Page: 0, Size: 20},
		{Query: "smith", DepartmentID: 3, Status: model.StatusInactive, Page: 0, Size: 20},
		{Query: "smith", DepartmentID: 3, Status: model.StatusActive, Page: 1, Size: 20},
		{Query: "smith", DepartmentID: 3, Status: model.StatusActive, Page: 0, Size: 50},
	}
	for _, v := range variants {
		assert.NotEqual(t, cache.SearchKey(base), cache.SearchKey(v))
	}
}
