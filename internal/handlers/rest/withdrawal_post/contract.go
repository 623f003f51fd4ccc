//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=withdrawal_post_test
package withdrawal_post

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
	RequestWithdrawal(ctx context.Context, driverID string) (*entities.Withdrawal, error)
}
