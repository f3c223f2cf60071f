// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// Actions recorded in the audit trail.
const (
	ActionLogin            = "auth.login"
	ActionDepartmentCreate = "department.create"
	ActionDepartmentUpdate = "department.update"
	ActionDepartmentDelete = "department.delete"
	ActionEmployeeCreate   = "employee.create"
	ActionEmployeeUpdate   = "employee.update"
	ActionEmployeeDelete   = "employee.delete"
)

type Entry struct {
	Timestamp     time.Time       `json:"timestamp"`
	Actor         string          `json:"actor"` // principal email, or the attempted login email
	Action        string          `json:"action"`
	ResourceID    string          `json:"resource_id,omitempty"`
	Success       bool            `json:"success"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}
