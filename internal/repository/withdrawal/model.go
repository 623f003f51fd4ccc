package withdrawal

import "time"

type WithdrawalDB struct {
	ID        string
	DriverID  string
	Amount    float64
	Fee       float64
	NetAmount float64
	PixKey    string
	CreatedAt time.Time
}
