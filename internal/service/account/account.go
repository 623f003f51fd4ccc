package account

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/google/uuid"
)

// Минимальное пополнение баланса заведения.
const MinTopUpAmount = 15.00

type Account struct {
	repository     Repository
	hasher         PasswordHasher
	tokenIssuer    TokenIssuer
	paymentGateway PaymentGateway
	txManager      TxManager
}

func New(
	repository Repository,
	hasher PasswordHasher,
	tokenIssuer TokenIssuer,
	paymentGateway PaymentGateway,
	txManager TxManager,
) *Account {
	return &Account{
		repository:     repository,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		paymentGateway: paymentGateway,
		txManager:      txManager,
	}
}

// RegisterEstablishment создает аккаунт заведения. Заведения одобряются
// автоматически, в отличие от курьеров.
func (s *Account) RegisterEstablishment(ctx context.Context, reg entities.EstablishmentRegistration) (*entities.Account, error) {
	if reg.Name == "" || reg.EstablishmentName == "" || reg.CPFCNPJ == "" ||
		reg.Address == "" || reg.Neighborhood == "" || reg.City == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(reg.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(reg.Password) {
		return nil, ErrPasswordTooShort
	}
	if !isValidName(reg.Name) {
		return nil, ErrMissingRequiredFields
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repository.Create(ctx, entities.Account{
		ID:                uuid.NewString(),
		Type:              entities.AccountEstablishment,
		Email:             reg.Email,
		PasswordHash:      hash,
		Name:              reg.Name,
		EstablishmentName: reg.EstablishmentName,
		CPFCNPJ:           reg.CPFCNPJ,
		Address:           reg.Address,
		HouseNumber:       reg.HouseNumber,
		ReferencePoint:    reg.ReferencePoint,
		Neighborhood:      reg.Neighborhood,
		City:              reg.City,
		Approved:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create establishment account: %w", err)
	}

	return created, nil
}

// RegisterDriver создает аккаунт курьера. Аккаунт остается неодобренным
// до действия админа и не может принимать заказы.
func (s *Account) RegisterDriver(ctx context.Context, reg entities.DriverRegistration) (*entities.Account, error) {
	if reg.Name == "" || reg.CPF == "" || reg.DateOfBirth.IsZero() {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(reg.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(reg.Password) {
		return nil, ErrPasswordTooShort
	}
	if !isAdult(reg.DateOfBirth, time.Now().UTC()) {
		return nil, ErrUnderage
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repository.Create(ctx, entities.Account{
		ID:           uuid.NewString(),
		Type:         entities.AccountDriver,
		Email:        reg.Email,
		PasswordHash: hash,
		Name:         reg.Name,
		CPF:          reg.CPF,
		DateOfBirth:  reg.DateOfBirth,
		PixKey:       reg.PixKey,
		Approved:     false,
	})
	if err != nil {
		return nil, fmt.Errorf("create driver account: %w", err)
	}

	return created, nil
}

// Login проверяет пароль и выпускает сессионный токен.
// Несуществующий email и неверный пароль неразличимы для клиента.
func (s *Account) Login(ctx context.Context, accountType entities.AccountType, email, password string) (string, *entities.Account, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingRequiredFields
	}

	acc, err := s.repository.GetByEmail(ctx, accountType, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(acc.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(acc)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, acc, nil
}

func (s *Account) GetAccount(ctx context.Context, id string) (*entities.Account, error) {
	acc, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acc, nil
}

func (s *Account) GetAccounts(ctx context.Context) ([]entities.Account, error) {
	accounts, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// ApproveDriver включает аккаунт курьера. Только для админа,
// проверка прав лежит на транспортном слое.
func (s *Account) ApproveDriver(ctx context.Context, driverID string) (*entities.Account, error) {
	acc, err := s.repository.GetByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}
	if acc.Type != entities.AccountDriver {
		return nil, ErrNotDriver
	}

	approved := true
	updated, err := s.repository.Update(ctx, entities.AccountModify{
		ID:       &driverID,
		Approved: &approved,
	})
	if err != nil {
		return nil, fmt.Errorf("approve driver: %w", err)
	}

	return updated, nil
}

// TopUpBalance пополняет баланс заведения через платежный шлюз.
func (s *Account) TopUpBalance(ctx context.Context, accountID string, amount float64) (*entities.Account, error) {
	if amount < MinTopUpAmount {
		return nil, ErrAmountBelowMinimum
	}

	acc, err := s.repository.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if acc.Type != entities.AccountEstablishment {
		return nil, ErrNotEstablishment
	}

	charge := entities.PaymentCharge{
		IdempotencyKey: uuid.NewString(),
		AccountID:      accountID,
		Amount:         amount,
		Description:    "balance top-up",
	}

	var updated *entities.Account
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err = s.repository.AdjustBalance(ctx, accountID, amount)
		if err != nil {
			return fmt.Errorf("credit balance: %w", err)
		}

		// списание внутри транзакции: если шлюз откажет, кредит откатится
		if err := s.paymentGateway.Charge(ctx, charge); err != nil {
			return fmt.Errorf("charge payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// AdjustBalance прямая дельта баланса, используется сервисами заказов и выводов.
func (s *Account) AdjustBalance(ctx context.Context, id string, delta float64) (*entities.Account, error) {
	acc, err := s.repository.AdjustBalance(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("adjust balance: %w", err)
	}
	return acc, nil
}

func (s *Account) IncrementCancellations(ctx context.Context, id string) error {
	if err := s.repository.IncrementCancellations(ctx, id); err != nil {
		return fmt.Errorf("increment cancellations: %w", err)
	}
	return nil
}

// ResetDailyCancellations обнуляет дневные счетчики отмен у курьеров.
// Вызывается фоновой задачей.
func (s *Account) ResetDailyCancellations(ctx context.Context) (int64, error) {
	affected, err := s.repository.ResetDailyCancellations(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset daily cancellations: %w", err)
	}
	return affected, nil
}
