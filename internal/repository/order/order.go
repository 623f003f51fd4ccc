package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/internal/service/order"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, establishment_id, driver_id,
		establishment_name, establishment_address, delivery_address, delivery_neighborhood, delivery_city,
		distance, base_price, return_trip, return_price, total_price, commission, driver_earnings,
		payment_method, cash_order_value, cash_customer_payment, cash_change,
		status, cancellation_reason,
		created_at, accepted_at, delivered_at, cancelled_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)

	query := `
		INSERT INTO orders (id, establishment_id,
			establishment_name, establishment_address, delivery_address, delivery_neighborhood, delivery_city,
			distance, base_price, return_trip, return_price, total_price, commission, driver_earnings,
			payment_method, cash_order_value, cash_customer_payment, cash_change,
			status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + orderColumns

	var created OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModel.ID,
		orderModel.EstablishmentID,
		orderModel.EstablishmentName,
		orderModel.EstablishmentAddress,
		orderModel.DeliveryAddress,
		orderModel.DeliveryNeighborhood,
		orderModel.DeliveryCity,
		orderModel.Distance,
		orderModel.BasePrice,
		orderModel.ReturnTrip,
		orderModel.ReturnPrice,
		orderModel.TotalPrice,
		orderModel.Commission,
		orderModel.DriverEarnings,
		orderModel.PaymentMethod,
		orderModel.CashOrderValue,
		orderModel.CashCustomerPayment,
		orderModel.CashChange,
		orderModel.Status,
	).Scan(scanDest(&created)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanDest(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders")

	// опциональные условия фильтра
	if filter.EstablishmentID != nil {
		builder = builder.Where(sq.Eq{"establishment_id": *filter.EstablishmentID})
	}
	if filter.DriverID != nil {
		builder = builder.Where(sq.Eq{"driver_id": *filter.DriverID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	builder = builder.OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	var orders []OrderDB
	for rows.Next() {
		var orderModel OrderDB
		if err := rows.Scan(scanDest(&orderModel)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository getall scan error: %w", err)
		}
		orders = append(orders, orderModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository getall rows error: %w", err)
	}

	return ToDomainList(orders), nil
}

// Accept назначает курьера на заказ. Условие status = 'pending' в WHERE
// гарантирует, что из двух конкурирующих курьеров заказ достанется одному.
func (r *Repository) Accept(ctx context.Context, orderID, driverID string, acceptedAt time.Time) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET driver_id = $2,
			status = $3,
			accepted_at = $4
		WHERE id = $1 AND status = $5
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderID,
		driverID,
		entities.OrderAccepted.String(),
		acceptedAt,
		entities.OrderPending.String(),
	).Scan(scanDest(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveMissedUpdate(ctx, orderID, order.ErrOrderNotPending)
		}
		return nil, fmt.Errorf("unexpected order repository accept error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// UpdateStatus переводит заказ из from в to тем же условным UPDATE,
// проставляя таймстемп терминального статуса и причину отмены.
func (r *Repository) UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatusType, at time.Time, reason string) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", to.String())

	switch to {
	case entities.OrderDelivered:
		builder = builder.Set("delivered_at", at)
	case entities.OrderCancelled:
		builder = builder.Set("cancelled_at", at)
		builder = builder.Set("cancellation_reason", reason)
	}

	builder = builder.
		Where(sq.Eq{"id": orderID, "status": from.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanDest(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveMissedUpdate(ctx, orderID, order.ErrStatusConflict)
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// resolveMissedUpdate различает отсутствие заказа и проигранную гонку
// статусов, когда условный UPDATE не затронул ни одной строки.
func (r *Repository) resolveMissedUpdate(ctx context.Context, orderID string, conflictErr error) error {
	query := `SELECT 1 FROM orders WHERE id = $1`

	var one int
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository lookup error: %w", err)
	}

	return conflictErr
}

func scanDest(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.EstablishmentID,
		&o.DriverID,
		&o.EstablishmentName,
		&o.EstablishmentAddress,
		&o.DeliveryAddress,
		&o.DeliveryNeighborhood,
		&o.DeliveryCity,
		&o.Distance,
		&o.BasePrice,
		&o.ReturnTrip,
		&o.ReturnPrice,
		&o.TotalPrice,
		&o.Commission,
		&o.DriverEarnings,
		&o.PaymentMethod,
		&o.CashOrderValue,
		&o.CashCustomerPayment,
		&o.CashChange,
		&o.Status,
		&o.CancellationReason,
		&o.CreatedAt,
		&o.AcceptedAt,
		&o.DeliveredAt,
		&o.CancelledAt,
	}
}
