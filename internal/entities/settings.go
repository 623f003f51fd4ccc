package entities

import "time"

// Settings глобальные настройки платформы, редактируются только админом.
type Settings struct {
	PricePerKm           float64
	CommissionPercentage float64
	CancellationFee      float64
	WithdrawalFee        float64
	PaymentDay           time.Weekday // день бесплатного вывода, 0-6
	WithdrawalFeeEnabled bool
	AppName              string
	UpdatedAt            time.Time
}

type SettingsModify struct {
	PricePerKm           *float64
	CommissionPercentage *float64
	CancellationFee      *float64
	WithdrawalFee        *float64
	PaymentDay           *time.Weekday
	WithdrawalFeeEnabled *bool
	AppName              *string
}
