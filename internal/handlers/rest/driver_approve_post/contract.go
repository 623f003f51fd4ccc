//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_approve_post_test
package driver_approve_post

import (
	"context"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ApproveDriver(ctx context.Context, driverID string) (*entities.Account, error)
}
