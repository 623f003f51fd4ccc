package order

import (
	"database/sql"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:              o.ID,
		EstablishmentID: o.EstablishmentID,
		DriverID:        o.DriverID.String,

		EstablishmentName:    o.EstablishmentName,
		EstablishmentAddress: o.EstablishmentAddress,
		DeliveryAddress:      o.DeliveryAddress,
		DeliveryNeighborhood: o.DeliveryNeighborhood,
		DeliveryCity:         o.DeliveryCity,

		Distance:       o.Distance,
		BasePrice:      o.BasePrice,
		ReturnTrip:     o.ReturnTrip,
		ReturnPrice:    o.ReturnPrice,
		TotalPrice:     o.TotalPrice,
		Commission:     o.Commission,
		DriverEarnings: o.DriverEarnings,

		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),

		Status:             entities.OrderStatusType(o.Status),
		CancellationReason: o.CancellationReason.String,

		CreatedAt:   o.CreatedAt,
		AcceptedAt:  timePtr(o.AcceptedAt),
		DeliveredAt: timePtr(o.DeliveredAt),
		CancelledAt: timePtr(o.CancelledAt),
	}

	// детали наличных хранятся как три nullable-колонки, валидны только вместе
	if o.CashOrderValue.Valid {
		orderEntity.CashDetails = &entities.CashDetails{
			OrderValue:      o.CashOrderValue.Float64,
			CustomerPayment: o.CashCustomerPayment.Float64,
			Change:          o.CashChange.Float64,
		}
	}

	return orderEntity
}

func ToDomainList(orders []OrderDB) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for i := range orders {
		result = append(result, *ToDomain(&orders[i]))
	}
	return result
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}

	orderModel := &OrderDB{
		ID:              o.ID,
		EstablishmentID: o.EstablishmentID,
		DriverID:        nullString(o.DriverID),

		EstablishmentName:    o.EstablishmentName,
		EstablishmentAddress: o.EstablishmentAddress,
		DeliveryAddress:      o.DeliveryAddress,
		DeliveryNeighborhood: o.DeliveryNeighborhood,
		DeliveryCity:         o.DeliveryCity,

		Distance:       o.Distance,
		BasePrice:      o.BasePrice,
		ReturnTrip:     o.ReturnTrip,
		ReturnPrice:    o.ReturnPrice,
		TotalPrice:     o.TotalPrice,
		Commission:     o.Commission,
		DriverEarnings: o.DriverEarnings,

		PaymentMethod: o.PaymentMethod.String(),

		Status:             o.Status.String(),
		CancellationReason: nullString(o.CancellationReason),
	}

	if o.CashDetails != nil {
		orderModel.CashOrderValue = sql.NullFloat64{Float64: o.CashDetails.OrderValue, Valid: true}
		orderModel.CashCustomerPayment = sql.NullFloat64{Float64: o.CashDetails.CustomerPayment, Valid: true}
		orderModel.CashChange = sql.NullFloat64{Float64: o.CashDetails.Change, Valid: true}
	}

	return orderModel
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
