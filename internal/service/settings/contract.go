//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settings_test
package settings

import (
	"context"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

type Repository interface {
	Get(ctx context.Context) (*entities.Settings, error)
	Update(ctx context.Context, settingsModify entities.SettingsModify) (*entities.Settings, error)
}
