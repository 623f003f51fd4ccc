//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=withdrawal_test
package withdrawal

import (
	"context"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, withdrawal entities.Withdrawal) (*entities.Withdrawal, error)
	GetAllByDriver(ctx context.Context, driverID string) ([]entities.Withdrawal, error)
}

type AccountService interface {
	GetAccount(ctx context.Context, id string) (*entities.Account, error)
	AdjustBalance(ctx context.Context, id string, delta float64) (*entities.Account, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context) (*entities.Settings, error)
}

type FeeFactory interface {
	CalculateFee(settings entities.Settings, at time.Time) float64
}

type PaymentGateway interface {
	Payout(ctx context.Context, payout entities.PaymentPayout) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
