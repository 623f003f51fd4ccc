package entities

// PaymentCharge списание с платежного средства заведения (пополнение баланса).
// IdempotencyKey генерируется на каждый запрос, шлюз обязан дедуплицировать.
type PaymentCharge struct {
	IdempotencyKey string
	AccountID      string
	Amount         float64
	Description    string
}

// PaymentPayout выплата курьеру на PIX-ключ.
type PaymentPayout struct {
	IdempotencyKey string
	AccountID      string
	PixKey         string
	Amount         float64
}
