package app

import (
	"context"
	"net/http"
	"time"

	geocodeGateway "github.com/diegoamaro-sudo/levaali/internal/gateway/geocode"
	"github.com/diegoamaro-sudo/levaali/internal/gateway/kafka/order_events"
	notifierGateway "github.com/diegoamaro-sudo/levaali/internal/gateway/notifier"
	paymentGateway "github.com/diegoamaro-sudo/levaali/internal/gateway/payment"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/kafka-consumer/order_status_changed"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/account_get"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/accounts_get"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/balance_topup_post"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/driver_approve_post"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/login_post"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/order_accept_post"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/order_cancel_post"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/order_get"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/order_post"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/order_status_post"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/orders_get"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/register_post"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/settings_get"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/settings_put"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/withdrawal_post"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/withdrawals_get"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/tasks/cancellations_reset"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/auth"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/config"
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

	"github.com/diegoamaro-sudo/levaali/pkg/background"
	"github.com/diegoamaro-sudo/levaali/pkg/logger"
	"github.com/diegoamaro-sudo/levaali/pkg/querier"
	"github.com/diegoamaro-sudo/levaali/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type (
	ResetInterval time.Duration
)

type Application struct {
	ServiceAccount    ServiceAccount
	ServiceOrder      ServiceOrder
	ServiceWithdrawal ServiceWithdrawal
	ServiceSettings   ServiceSettings
	TokenParser       session.TokenParser
	BackgroundWorkers *background.Worker
}

type ServiceAccount interface {
	register_post.Service
	login_post.Service
	account_get.Service
	accounts_get.Service
	driver_approve_post.Service
	balance_topup_post.Service
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_get.Service
	order_accept_post.Service
	order_status_post.Service
	order_cancel_post.Service
}

type ServiceWithdrawal interface {
	withdrawal_post.Service
	withdrawals_get.Service
}

type ServiceSettings interface {
	settings_get.Service
	settings_put.Service
}

type KafkaWorkerApp struct {
	Handler *order_status_changed.Handler
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideWithdrawalRepository(querier *querier.Querier) *withdrawalRepo.Repository {
	return withdrawalRepo.New(querier)
}

func provideSettingsRepository(querier *querier.Querier) *settingsRepo.Repository {
	return settingsRepo.New(querier)
}

func providePasswordHasher() *auth.BcryptHasher {
	return auth.NewBcryptHasher(bcrypt.DefaultCost)
}

func provideTokenIssuer(cfg *config.Config) *auth.JWTIssuer {
	return auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func providePaymentGateway(cfg *config.Config) *paymentGateway.Gateway {
	client := &http.Client{Timeout: cfg.Payment.RequestTimeout}
	return paymentGateway.New(client, cfg.Payment.BaseURL)
}

func provideGeocodeGateway(cfg *config.Config) *geocodeGateway.Gateway {
	client := &http.Client{Timeout: cfg.Geocode.RequestTimeout}
	return geocodeGateway.New(client, cfg.Geocode.BaseURL)
}

func provideNotifierGateway(cfg *config.Config) *notifierGateway.Gateway {
	client := &http.Client{Timeout: cfg.Notifier.RequestTimeout}
	return notifierGateway.New(client, cfg.Notifier.BaseURL)
}

func provideEventPublisher(producer *kafka.Producer, cfg *config.Config) *order_events.Publisher {
	return order_events.New(producer, cfg.Kafka.Topic)
}

func provideServiceAccount(
	repository accountService.Repository,
	hasher accountService.PasswordHasher,
	tokenIssuer accountService.TokenIssuer,
	paymentGW accountService.PaymentGateway,
	txManager accountService.TxManager,
) *accountService.Account {
	return accountService.New(repository, hasher, tokenIssuer, paymentGW, txManager)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	accounts orderService.AccountService,
	settings orderService.SettingsService,
	geocoder orderService.Geocoder,
	quoteFactory orderService.QuoteFactory,
	events orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(log, repository, accounts, settings, geocoder, quoteFactory, events, txManager)
}

func provideServiceWithdrawal(
	repository withdrawalService.Repository,
	accounts withdrawalService.AccountService,
	settings withdrawalService.SettingsService,
	feeFactory withdrawalService.FeeFactory,
	paymentGW withdrawalService.PaymentGateway,
	txManager withdrawalService.TxManager,
) *withdrawalService.Withdrawal {
	return withdrawalService.New(repository, accounts, settings, feeFactory, paymentGW, txManager)
}

func provideServiceSettings(repository settingsService.Repository) *settingsService.Settings {
	return settingsService.New(repository)
}

func provideResetInterval(cfg *config.Config) ResetInterval {
	return ResetInterval(cfg.Tasks.CancellationsResetInterval)
}

func provideCancellationsResetTask(
	log logger.Logger,
	accounts cancellations_reset.Service,
	interval ResetInterval,
) *cancellations_reset.CancellationsReset {
	return cancellations_reset.NewCancellationsReset(log, accounts, time.Duration(interval))
}

func provideTaskList(
	cancellationsResetTask *cancellations_reset.CancellationsReset,
) []background.Task {
	return []background.Task{
		cancellationsResetTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideStatusChangedHandler(
	log logger.Logger,
	notifier order_status_changed.Notifier,
	messages order_status_changed.MessageFactory,
	cfg *config.Config,
) *order_status_changed.Handler {
	return order_status_changed.New(log, notifier, messages, cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout)
}
