package withdrawal_fee

import (
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

type FeeFactory struct{}

func New() *FeeFactory {
	return &FeeFactory{}
}

// CalculateFee возвращает комиссию за вывод средств на момент at.
// В настроенный день выплат вывод бесплатный.
func (f *FeeFactory) CalculateFee(settings entities.Settings, at time.Time) float64 {
	if !settings.WithdrawalFeeEnabled {
		return 0
	}
	if at.Weekday() == settings.PaymentDay {
		return 0
	}
	return settings.WithdrawalFee
}
