package settings

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const settingsColumns = `price_per_km, commission_percentage, cancellation_fee, withdrawal_fee,
		payment_day, withdrawal_fee_enabled, app_name, updated_at`

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

// Get читает единственную строку настроек, созданную миграцией.
func (r *Repository) Get(ctx context.Context) (*entities.Settings, error) {
	query := `SELECT ` + settingsColumns + `
		FROM app_settings
		WHERE singleton IS TRUE`

	var settingsModel SettingsDB
	err := r.querier.QueryRow(ctx, query).Scan(scanDest(&settingsModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository get error: %w", err)
	}

	return ToDomain(&settingsModel), nil
}

func (r *Repository) Update(ctx context.Context, settingsModify entities.SettingsModify) (*entities.Settings, error) {
	builder := qb.
		Update("app_settings")

	// опциональные поля
	if settingsModify.PricePerKm != nil {
		builder = builder.Set("price_per_km", settingsModify.PricePerKm)
	}
	if settingsModify.CommissionPercentage != nil {
		builder = builder.Set("commission_percentage", settingsModify.CommissionPercentage)
	}
	if settingsModify.CancellationFee != nil {
		builder = builder.Set("cancellation_fee", settingsModify.CancellationFee)
	}
	if settingsModify.WithdrawalFee != nil {
		builder = builder.Set("withdrawal_fee", settingsModify.WithdrawalFee)
	}
	if settingsModify.PaymentDay != nil {
		builder = builder.Set("payment_day", int(*settingsModify.PaymentDay))
	}
	if settingsModify.WithdrawalFeeEnabled != nil {
		builder = builder.Set("withdrawal_fee_enabled", settingsModify.WithdrawalFeeEnabled)
	}
	if settingsModify.AppName != nil {
		builder = builder.Set("app_name", settingsModify.AppName)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Expr("singleton IS TRUE")).
		Suffix("RETURNING " + settingsColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository update error: %w", err)
	}

	var settingsModel SettingsDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanDest(&settingsModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository update error: %w", err)
	}

	return ToDomain(&settingsModel), nil
}

func scanDest(s *SettingsDB) []interface{} {
	return []interface{}{
		&s.PricePerKm,
		&s.CommissionPercentage,
		&s.CancellationFee,
		&s.WithdrawalFee,
		&s.PaymentDay,
		&s.WithdrawalFeeEnabled,
		&s.AppName,
		&s.UpdatedAt,
	}
}
