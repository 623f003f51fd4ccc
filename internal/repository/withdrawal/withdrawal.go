package withdrawal

import (
	"context"
	"fmt"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, withdrawalEntity entities.Withdrawal) (*entities.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (id, driver_id, amount, fee, net_amount, pix_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, driver_id, amount, fee, net_amount, pix_key, created_at
	`

	var created WithdrawalDB
	err := r.querier.QueryRow(
		ctx,
		query,
		withdrawalEntity.ID,
		withdrawalEntity.DriverID,
		withdrawalEntity.Amount,
		withdrawalEntity.Fee,
		withdrawalEntity.NetAmount,
		withdrawalEntity.PixKey,
	).Scan(
		&created.ID,
		&created.DriverID,
		&created.Amount,
		&created.Fee,
		&created.NetAmount,
		&created.PixKey,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetAllByDriver(ctx context.Context, driverID string) ([]entities.Withdrawal, error) {
	query := `
		SELECT id, driver_id, amount, fee, net_amount, pix_key, created_at
		FROM withdrawals
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.querier.Query(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository getallbydriver error: %w", err)
	}
	defer rows.Close()

	var withdrawals []WithdrawalDB
	for rows.Next() {
		var withdrawalModel WithdrawalDB
		err := rows.Scan(
			&withdrawalModel.ID,
			&withdrawalModel.DriverID,
			&withdrawalModel.Amount,
			&withdrawalModel.Fee,
			&withdrawalModel.NetAmount,
			&withdrawalModel.PixKey,
			&withdrawalModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected withdrawal repository scan error: %w", err)
		}
		withdrawals = append(withdrawals, withdrawalModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository rows error: %w", err)
	}

	return ToDomainList(withdrawals), nil
}
