package account

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/internal/repository"
	"github.com/diegoamaro-sudo/levaali/internal/service/account"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const accountColumns = `id, type, email, password_hash, name,
		establishment_name, cpf_cnpj, address, house_number, reference_point, neighborhood, city,
		cpf, date_of_birth, pix_key, cancellations_today,
		balance, approved, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, accountEntity entities.Account) (*entities.Account, error) {
	accountModel := FromDomain(&accountEntity)

	query := `
		INSERT INTO accounts (id, type, email, password_hash, name,
			establishment_name, cpf_cnpj, address, house_number, reference_point, neighborhood, city,
			cpf, date_of_birth, pix_key,
			balance, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + accountColumns

	var created AccountDB
	err := r.querier.QueryRow(
		ctx,
		query,
		accountModel.ID,
		accountModel.Type,
		accountModel.Email,
		accountModel.PasswordHash,
		accountModel.Name,
		accountModel.EstablishmentName,
		accountModel.CPFCNPJ,
		accountModel.Address,
		accountModel.HouseNumber,
		accountModel.ReferencePoint,
		accountModel.Neighborhood,
		accountModel.City,
		accountModel.CPF,
		accountModel.DateOfBirth,
		accountModel.PixKey,
		accountModel.Balance,
		accountModel.Approved,
	).Scan(scanDest(&created)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, account.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected account repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1`

	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanDest(&accountModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("unexpected account repository getbyid error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

func (r *Repository) GetByEmail(ctx context.Context, accountType entities.AccountType, email string) (*entities.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE type = $1 AND email = $2`

	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, accountType.String(), email).Scan(scanDest(&accountModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("unexpected account repository getbyemail error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository getall error: %w", err)
	}
	defer rows.Close()

	var accounts []AccountDB
	for rows.Next() {
		var accountModel AccountDB
		if err := rows.Scan(scanDest(&accountModel)...); err != nil {
			return nil, fmt.Errorf("unexpected account repository getall scan error: %w", err)
		}
		accounts = append(accounts, accountModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected account repository getall rows error: %w", err)
	}

	return ToDomainList(accounts), nil
}

func (r *Repository) Update(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)

	builder := qb.
		Update("accounts")

	// опциональные поля
	if accountModifyModel.Name != nil {
		builder = builder.Set("name", accountModifyModel.Name)
	}
	if accountModifyModel.PixKey != nil {
		builder = builder.Set("pix_key", accountModifyModel.PixKey)
	}
	if accountModifyModel.Approved != nil {
		builder = builder.Set("approved", accountModifyModel.Approved)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": accountModifyModel.ID}).
		Suffix("RETURNING " + accountColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	var accountModel AccountDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanDest(&accountModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

// AdjustBalance атомарно сдвигает баланс. Отрицательный итог отсекает
// check-ограничение в БД, которое мы превращаем в доменную ошибку.
func (r *Repository) AdjustBalance(ctx context.Context, id string, delta float64) (*entities.Account, error) {
	query := `
		UPDATE accounts
		SET balance = ROUND((balance + $2)::numeric, 2),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + accountColumns

	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, id, delta).Scan(scanDest(&accountModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, account.ErrInsufficientBalance
		}
		return nil, fmt.Errorf("unexpected account repository adjust balance error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

func (r *Repository) IncrementCancellations(ctx context.Context, id string) error {
	query := `
		UPDATE accounts
		SET cancellations_today = cancellations_today + 1,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected account repository increment cancellations error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

func (r *Repository) ResetDailyCancellations(ctx context.Context) (int64, error) {
	query := `
		UPDATE accounts
		SET cancellations_today = 0,
			updated_at = NOW()
		WHERE cancellations_today > 0
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected account repository reset cancellations error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanDest(a *AccountDB) []interface{} {
	return []interface{}{
		&a.ID,
		&a.Type,
		&a.Email,
		&a.PasswordHash,
		&a.Name,
		&a.EstablishmentName,
		&a.CPFCNPJ,
		&a.Address,
		&a.HouseNumber,
		&a.ReferencePoint,
		&a.Neighborhood,
		&a.City,
		&a.CPF,
		&a.DateOfBirth,
		&a.PixKey,
		&a.CancellationsToday,
		&a.Balance,
		&a.Approved,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
}
