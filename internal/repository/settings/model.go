package settings

import "time"

type SettingsDB struct {
	PricePerKm           float64
	CommissionPercentage float64
	CancellationFee      float64
	WithdrawalFee        float64
	PaymentDay           int
	WithdrawalFeeEnabled bool
	AppName              string
	UpdatedAt            time.Time
}
