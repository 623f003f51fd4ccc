//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=accounts_get_test
package accounts_get

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
	GetAccounts(ctx context.Context) ([]entities.Account, error)
}
