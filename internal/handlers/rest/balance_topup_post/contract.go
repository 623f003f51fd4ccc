//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=balance_topup_post_test
package balance_topup_post

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
	TopUpBalance(ctx context.Context, accountID string, amount float64) (*entities.Account, error)
}
