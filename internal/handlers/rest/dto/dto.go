// Package dto описывает JSON-тела запросов и ответов REST API.
package dto

import "time"

// RegisterRequest размеченное объединение: поле Type выбирает набор
// обязательных полей, лишние поля другого типа игнорируются.
type RegisterRequest struct {
	Type     string `json:"type"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`

	// establishment
	EstablishmentName string `json:"establishment_name,omitempty"`
	CPFCNPJ           string `json:"cpf_cnpj,omitempty"`
	Address           string `json:"address,omitempty"`
	HouseNumber       string `json:"house_number,omitempty"`
	ReferencePoint    string `json:"reference_point,omitempty"`
	Neighborhood      string `json:"neighborhood,omitempty"`
	City              string `json:"city,omitempty"`

	// driver
	CPF         string `json:"cpf,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	PixKey      string `json:"pix_key,omitempty"`
}

type LoginRequest struct {
	Type     string `json:"type"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

type Account struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Email string `json:"email"`
	Name  string `json:"name"`

	EstablishmentName string `json:"establishment_name,omitempty"`
	CPFCNPJ           string `json:"cpf_cnpj,omitempty"`
	Address           string `json:"address,omitempty"`
	HouseNumber       string `json:"house_number,omitempty"`
	ReferencePoint    string `json:"reference_point,omitempty"`
	Neighborhood      string `json:"neighborhood,omitempty"`
	City              string `json:"city,omitempty"`

	CPF                string `json:"cpf,omitempty"`
	DateOfBirth        string `json:"date_of_birth,omitempty"`
	PixKey             string `json:"pix_key,omitempty"`
	CancellationsToday int64  `json:"cancellations_today"`

	Balance   float64   `json:"balance"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

type AccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

type TopUpRequest struct {
	Amount float64 `json:"amount"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

type CashDetailsRequest struct {
	OrderValue      float64 `json:"order_value"`
	CustomerPayment float64 `json:"customer_payment"`
}

type OrderCreateRequest struct {
	DeliveryAddress      string              `json:"delivery_address"`
	DeliveryNeighborhood string              `json:"delivery_neighborhood"`
	DeliveryCity         string              `json:"delivery_city"`
	PaymentMethod        string              `json:"payment_method"`
	CashDetails          *CashDetailsRequest `json:"cash_details,omitempty"`
}

type CashDetails struct {
	OrderValue      float64 `json:"order_value"`
	CustomerPayment float64 `json:"customer_payment"`
	Change          float64 `json:"change"`
}

type Order struct {
	ID              string `json:"id"`
	EstablishmentID string `json:"establishment_id"`
	DriverID        string `json:"driver_id,omitempty"`

	EstablishmentName    string `json:"establishment_name"`
	EstablishmentAddress string `json:"establishment_address"`
	DeliveryAddress      string `json:"delivery_address"`
	DeliveryNeighborhood string `json:"delivery_neighborhood"`
	DeliveryCity         string `json:"delivery_city"`

	Distance       float64 `json:"distance"`
	BasePrice      float64 `json:"base_price"`
	ReturnTrip     bool    `json:"return_trip"`
	ReturnPrice    float64 `json:"return_price"`
	TotalPrice     float64 `json:"total_price"`
	Commission     float64 `json:"commission"`
	DriverEarnings float64 `json:"driver_earnings"`

	PaymentMethod string       `json:"payment_method"`
	CashDetails   *CashDetails `json:"cash_details,omitempty"`

	Status             string `json:"status"`
	CancellationReason string `json:"cancellation_reason,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderCancelRequest struct {
	Reason string `json:"reason"`
}

type Withdrawal struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Fee       float64   `json:"fee"`
	NetAmount float64   `json:"net_amount"`
	PixKey    string    `json:"pix_key"`
	CreatedAt time.Time `json:"created_at"`
}

type WithdrawalsResponse struct {
	Withdrawals []Withdrawal `json:"withdrawals"`
}

type Settings struct {
	PricePerKm           float64 `json:"price_per_km"`
	CommissionPercentage float64 `json:"commission_percentage"`
	CancellationFee      float64 `json:"cancellation_fee"`
	WithdrawalFee        float64 `json:"withdrawal_fee"`
	PaymentDay           int     `json:"payment_day"`
	WithdrawalFeeEnabled bool    `json:"withdrawal_fee_enabled"`
	AppName              string  `json:"app_name"`
}

type SettingsUpdateRequest struct {
	PricePerKm           *float64 `json:"price_per_km,omitempty"`
	CommissionPercentage *float64 `json:"commission_percentage,omitempty"`
	CancellationFee      *float64 `json:"cancellation_fee,omitempty"`
	WithdrawalFee        *float64 `json:"withdrawal_fee,omitempty"`
	PaymentDay           *int     `json:"payment_day,omitempty"`
	WithdrawalFeeEnabled *bool    `json:"withdrawal_fee_enabled,omitempty"`
	AppName              *string  `json:"app_name,omitempty"`
}
