//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/pkg/geodist"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)

	// Accept и UpdateStatus условные обновления: строка меняется только
	// если текущий статус совпадает с ожидаемым, иначе ErrOrderNotPending /
	// ErrStatusConflict. Так гонка двух курьеров решается в БД.
	Accept(ctx context.Context, orderID, driverID string, acceptedAt time.Time) (*entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatusType, at time.Time, reason string) (*entities.Order, error)
}

type AccountService interface {
	GetAccount(ctx context.Context, id string) (*entities.Account, error)
	AdjustBalance(ctx context.Context, id string, delta float64) (*entities.Account, error)
	IncrementCancellations(ctx context.Context, id string) error
}

type SettingsService interface {
	GetSettings(ctx context.Context) (*entities.Settings, error)
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (geodist.Point, error)
}

type QuoteFactory interface {
	CalculateQuote(distanceKm, pricePerKm, commissionPercentage float64, returnTrip bool) entities.OrderQuote
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, order *entities.Order) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
