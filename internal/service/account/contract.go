//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, account entities.Account) (*entities.Account, error)
	GetByID(ctx context.Context, id string) (*entities.Account, error)
	GetByEmail(ctx context.Context, accountType entities.AccountType, email string) (*entities.Account, error)
	GetAll(ctx context.Context) ([]entities.Account, error)
	Update(ctx context.Context, accountModify entities.AccountModify) (*entities.Account, error)
	AdjustBalance(ctx context.Context, id string, delta float64) (*entities.Account, error)
	IncrementCancellations(ctx context.Context, id string) error
	ResetDailyCancellations(ctx context.Context) (int64, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(account *entities.Account) (string, error)
}

type PaymentGateway interface {
	Charge(ctx context.Context, charge entities.PaymentCharge) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
