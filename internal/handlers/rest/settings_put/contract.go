//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settings_put_test
package settings_put

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
	UpdateSettings(ctx context.Context, modify entities.SettingsModify) (*entities.Settings, error)
}
