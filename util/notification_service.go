// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
)

type NotificationService struct {
	// A message queue client would live here in a larger deployment.
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyDepartmentChange(ctx context.Context, changeType string, dept model.Department) error {
	switch changeType {
	case "created", "updated", "deleted":
		logger.Info("NOTIFICATION: Department "+changeType,
			zap.Int64("deptID", dept.ID),
			zap.String("deptName", dept.Name))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyEmployeeChange(ctx context.Context, changeType string, emp model.Employee) error {
	switch changeType {
	case "created", "updated", "deleted":
		logger.Info("NOTIFICATION: Employee "+changeType,
			zap.Int64("empID", emp.ID),
			zap.String("email", emp.Email))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

// SendWelcomeEmail hands the generated initial credential to the new
// employee. Mock implementation; an SMTP or email-API client slots in
// here. The password itself is intentionally not logged.
func (n *NotificationService) SendWelcomeEmail(ctx context.Context, recipient string) error {
	logger.Info("Sending welcome email", zap.String("recipient", recipient))
	return nil
}
