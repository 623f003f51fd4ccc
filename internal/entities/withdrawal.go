package entities

import "time"

// Withdrawal запись о выводе средств курьером на PIX-ключ.
type Withdrawal struct {
	ID        string
	DriverID  string
	Amount    float64 // сумма до комиссии
	Fee       float64
	NetAmount float64 // Amount - Fee, отправлено на PIX
	PixKey    string
	CreatedAt time.Time
}
