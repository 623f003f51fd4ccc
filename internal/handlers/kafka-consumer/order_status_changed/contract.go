//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_changed_test
package order_status_changed

import (
	"context"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/factory/notification_text"
	"github.com/diegoamaro-sudo/levaali/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Notifier interface {
	Push(ctx context.Context, notification entities.PushNotification) error
}

type MessageFactory interface {
	ForStatus(status entities.OrderStatusType) (notification_text.Message, error)
}
