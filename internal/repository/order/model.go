package order

import (
	"database/sql"
	"time"
)

type OrderDB struct {
	ID              string
	EstablishmentID string
	DriverID        sql.NullString

	EstablishmentName    string
	EstablishmentAddress string
	DeliveryAddress      string
	DeliveryNeighborhood string
	DeliveryCity         string

	Distance       float64
	BasePrice      float64
	ReturnTrip     bool
	ReturnPrice    float64
	TotalPrice     float64
	Commission     float64
	DriverEarnings float64

	PaymentMethod string

	CashOrderValue      sql.NullFloat64
	CashCustomerPayment sql.NullFloat64
	CashChange          sql.NullFloat64

	Status             string
	CancellationReason sql.NullString

	CreatedAt   time.Time
	AcceptedAt  sql.NullTime
	DeliveredAt sql.NullTime
	CancelledAt sql.NullTime
}
