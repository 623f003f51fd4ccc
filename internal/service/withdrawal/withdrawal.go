package withdrawal

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/google/uuid"
)

type Withdrawal struct {
	repository      Repository
	accountService  AccountService
	settingsService SettingsService
	feeFactory      FeeFactory
	paymentGateway  PaymentGateway
	txManager       TxManager
}

func New(
	repository Repository,
	accountService AccountService,
	settingsService SettingsService,
	feeFactory FeeFactory,
	paymentGateway PaymentGateway,
	txManager TxManager,
) *Withdrawal {
	return &Withdrawal{
		repository:      repository,
		accountService:  accountService,
		settingsService: settingsService,
		feeFactory:      feeFactory,
		paymentGateway:  paymentGateway,
		txManager:       txManager,
	}
}

// RequestWithdrawal выводит весь баланс курьера на его PIX-ключ.
// Вывод отклоняется если баланс минус комиссия не строго положителен.
func (s *Withdrawal) RequestWithdrawal(ctx context.Context, driverID string) (*entities.Withdrawal, error) {
	driver, err := s.accountService.GetAccount(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}
	if driver.Type != entities.AccountDriver {
		return nil, ErrNotDriver
	}
	if driver.PixKey == "" {
		return nil, ErrPixKeyNotSet
	}

	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	fee := s.feeFactory.CalculateFee(*settings, time.Now().UTC())
	netAmount := driver.Balance - fee
	if netAmount <= 0 {
		return nil, ErrInsufficientBalance
	}

	payout := entities.PaymentPayout{
		IdempotencyKey: uuid.NewString(),
		AccountID:      driver.ID,
		PixKey:         driver.PixKey,
		Amount:         netAmount,
	}

	var created *entities.Withdrawal
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.accountService.AdjustBalance(ctx, driver.ID, -driver.Balance); err != nil {
			return fmt.Errorf("debit balance: %w", err)
		}

		created, err = s.repository.Create(ctx, entities.Withdrawal{
			ID:        uuid.NewString(),
			DriverID:  driver.ID,
			Amount:    driver.Balance,
			Fee:       fee,
			NetAmount: netAmount,
			PixKey:    driver.PixKey,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create withdrawal: %w", err)
		}

		// выплата внутри транзакции: отказ шлюза откатывает дебет и запись
		if err := s.paymentGateway.Payout(ctx, payout); err != nil {
			return fmt.Errorf("payout: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Withdrawal) GetWithdrawals(ctx context.Context, driverID string) ([]entities.Withdrawal, error) {
	withdrawals, err := s.repository.GetAllByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals: %w", err)
	}
	return withdrawals, nil
}
