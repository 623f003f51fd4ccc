package order_quote

import (
	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

type QuoteFactory struct{}

func New() *QuoteFactory {
	return &QuoteFactory{}
}

// CalculateQuote считает стоимость доставки и раздел заработка.
// DriverEarnings выводится вычитанием, а не отдельным умножением,
// чтобы Commission + DriverEarnings сходились с TotalPrice без остатка.
// Округление до центов происходит только на границе хранения/отдачи.
func (f *QuoteFactory) CalculateQuote(
	distanceKm float64,
	pricePerKm float64,
	commissionPercentage float64,
	returnTrip bool,
) entities.OrderQuote {
	basePrice := distanceKm * pricePerKm

	returnPrice := 0.0
	if returnTrip {
		returnPrice = distanceKm * pricePerKm
	}

	totalPrice := basePrice + returnPrice
	commission := totalPrice * commissionPercentage / 100
	driverEarnings := totalPrice - commission

	return entities.OrderQuote{
		Distance:       distanceKm,
		BasePrice:      basePrice,
		ReturnPrice:    returnPrice,
		TotalPrice:     totalPrice,
		Commission:     commission,
		DriverEarnings: driverEarnings,
	}
}
