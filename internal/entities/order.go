package entities

import "time"

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAccepted  OrderStatusType = "accepted"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderInTransit OrderStatusType = "in_transit"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal сообщает, допускает ли статус дальнейшие переходы.
func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type PaymentMethod string

const (
	PaymentPaid        PaymentMethod = "paid"
	PaymentCash        PaymentMethod = "cash"
	PaymentCardMachine PaymentMethod = "card_machine"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// ReturnTripRequired true когда курьеру нужно вернуться в заведение:
// забрать наличные или вернуть терминал оплаты.
func (m PaymentMethod) ReturnTripRequired() bool {
	return m == PaymentCash || m == PaymentCardMachine
}

// CashDetails детали оплаты наличными, присутствуют только когда клиент
// попросил сдачу. Инвариант: Change == CustomerPayment - OrderValue >= 0.
type CashDetails struct {
	OrderValue      float64
	CustomerPayment float64
	Change          float64
}

type Order struct {
	ID              string
	EstablishmentID string
	DriverID        string // пустой до принятия заказа

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

	PaymentMethod PaymentMethod
	CashDetails   *CashDetails

	Status             OrderStatusType
	CancellationReason string

	CreatedAt   time.Time
	AcceptedAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// OrderRequest запрос заведения на новую доставку.
type OrderRequest struct {
	EstablishmentID      string
	DeliveryAddress      string
	DeliveryNeighborhood string
	DeliveryCity         string
	PaymentMethod        PaymentMethod
	CashDetails          *CashDetailsRequest
}

// CashDetailsRequest сдача вычисляется сервисом, клиенту не доверяем.
type CashDetailsRequest struct {
	OrderValue      float64
	CustomerPayment float64
}

type OrderFilter struct {
	EstablishmentID *string
	DriverID        *string
	Status          *OrderStatusType
}

// OrderQuote результат расчета стоимости до создания заказа.
// Инварианты: TotalPrice == BasePrice + ReturnPrice,
// Commission + DriverEarnings == TotalPrice.
type OrderQuote struct {
	Distance       float64
	BasePrice      float64
	ReturnPrice    float64
	TotalPrice     float64
	Commission     float64
	DriverEarnings float64
}
