//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=withdrawals_get_test
package withdrawals_get

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
	GetWithdrawals(ctx context.Context, driverID string) ([]entities.Withdrawal, error)
}
