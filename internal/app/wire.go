//go:build wireinject
// +build wireinject

package app

import (
	"context"

	geocodeGateway "github.com/diegoamaro-sudo/levaali/internal/gateway/geocode"
	"github.com/diegoamaro-sudo/levaali/internal/gateway/kafka/order_events"
	notifierGateway "github.com/diegoamaro-sudo/levaali/internal/gateway/notifier"
	paymentGateway "github.com/diegoamaro-sudo/levaali/internal/gateway/payment"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/kafka-consumer/order_status_changed"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/tasks/cancellations_reset"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/auth"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/config"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/factory/notification_text"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/factory/order_quote"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/factory/withdrawal_fee"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/kafka"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/middlewares/session"

	accountRepo "github.com/diegoamaro-sudo/levaali/internal/repository/account"
	orderRepo "github.com/diegoamaro-sudo/levaali/internal/repository/order"
	settingsRepo "github.com/diegoamaro-sudo/levaali/internal/repository/settings"
	withdrawalRepo "github.com/diegoamaro-sudo/levaali/internal/repository/withdrawal"
	accountService "github.com/diegoamaro-sudo/levaali/internal/service/account"
	orderService "github.com/diegoamaro-sudo/levaali/internal/service/order"
	settingsService "github.com/diegoamaro-sudo/levaali/internal/service/settings"
	withdrawalService "github.com/diegoamaro-sudo/levaali/internal/service/withdrawal"

	"github.com/diegoamaro-sudo/levaali/pkg/logger"
	"github.com/diegoamaro-sudo/levaali/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideResetInterval,

		provideAccountRepository,
		provideOrderRepository,
		provideWithdrawalRepository,
		provideSettingsRepository,

		providePasswordHasher,
		provideTokenIssuer,
		providePaymentGateway,
		provideGeocodeGateway,
		provideEventPublisher,
		order_quote.New,
		withdrawal_fee.New,

		provideServiceAccount,
		provideServiceOrder,
		provideServiceWithdrawal,
		provideServiceSettings,

		provideCancellationsResetTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAccount), new(*accountService.Account)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceWithdrawal), new(*withdrawalService.Withdrawal)),
		wire.Bind(new(ServiceSettings), new(*settingsService.Settings)),
		wire.Bind(new(session.TokenParser), new(*auth.JWTIssuer)),

		wire.Bind(new(accountService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(accountService.PasswordHasher), new(*auth.BcryptHasher)),
		wire.Bind(new(accountService.TokenIssuer), new(*auth.JWTIssuer)),
		wire.Bind(new(accountService.PaymentGateway), new(*paymentGateway.Gateway)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.AccountService), new(*accountService.Account)),
		wire.Bind(new(orderService.SettingsService), new(*settingsService.Settings)),
		wire.Bind(new(orderService.Geocoder), new(*geocodeGateway.Gateway)),
		wire.Bind(new(orderService.QuoteFactory), new(*order_quote.QuoteFactory)),
		wire.Bind(new(orderService.EventPublisher), new(*order_events.Publisher)),

		wire.Bind(new(withdrawalService.Repository), new(*withdrawalRepo.Repository)),
		wire.Bind(new(withdrawalService.AccountService), new(*accountService.Account)),
		wire.Bind(new(withdrawalService.SettingsService), new(*settingsService.Settings)),
		wire.Bind(new(withdrawalService.FeeFactory), new(*withdrawal_fee.FeeFactory)),
		wire.Bind(new(withdrawalService.PaymentGateway), new(*paymentGateway.Gateway)),

		wire.Bind(new(settingsService.Repository), new(*settingsRepo.Repository)),

		wire.Bind(new(accountService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(withdrawalService.TxManager), new(*tx.Manager)),

		wire.Bind(new(cancellations_reset.Service), new(*accountService.Account)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для воркера уведомлений (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	log logger.Logger,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideNotifierGateway,
		notification_text.New,
		provideStatusChangedHandler,

		wire.Bind(new(order_status_changed.Notifier), new(*notifierGateway.Gateway)),
		wire.Bind(new(order_status_changed.MessageFactory), new(*notification_text.MessageFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
