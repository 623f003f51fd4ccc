package settings

import (
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

func ToDomain(s *SettingsDB) *entities.Settings {
	if s == nil {
		return nil
	}
	return &entities.Settings{
		PricePerKm:           s.PricePerKm,
		CommissionPercentage: s.CommissionPercentage,
		CancellationFee:      s.CancellationFee,
		WithdrawalFee:        s.WithdrawalFee,
		PaymentDay:           time.Weekday(s.PaymentDay),
		WithdrawalFeeEnabled: s.WithdrawalFeeEnabled,
		AppName:              s.AppName,
		UpdatedAt:            s.UpdatedAt,
	}
}
