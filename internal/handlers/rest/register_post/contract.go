//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=register_post_test
package register_post

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
	RegisterEstablishment(ctx context.Context, reg entities.EstablishmentRegistration) (*entities.Account, error)
	RegisterDriver(ctx context.Context, reg entities.DriverRegistration) (*entities.Account, error)
}
