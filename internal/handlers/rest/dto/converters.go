package dto

import "github.com/diegoamaro-sudo/levaali/internal/entities"

const dateLayout = "2006-01-02"

func FromAccount(a *entities.Account) Account {
	accountDTO := Account{
		ID:    a.ID,
		Type:  a.Type.String(),
		Email: a.Email,
		Name:  a.Name,

		EstablishmentName: a.EstablishmentName,
		CPFCNPJ:           a.CPFCNPJ,
		Address:           a.Address,
		HouseNumber:       a.HouseNumber,
		ReferencePoint:    a.ReferencePoint,
		Neighborhood:      a.Neighborhood,
		City:              a.City,

		CPF:                a.CPF,
		PixKey:             a.PixKey,
		CancellationsToday: a.CancellationsToday,

		Balance:   a.Balance,
		Approved:  a.Approved,
		CreatedAt: a.CreatedAt,
	}

	if !a.DateOfBirth.IsZero() {
		accountDTO.DateOfBirth = a.DateOfBirth.Format(dateLayout)
	}

	return accountDTO
}

func FromAccountList(accounts []entities.Account) []Account {
	result := make([]Account, 0, len(accounts))
	for i := range accounts {
		result = append(result, FromAccount(&accounts[i]))
	}
	return result
}

func FromOrder(o *entities.Order) Order {
	orderDTO := Order{
		ID:              o.ID,
		EstablishmentID: o.EstablishmentID,
		DriverID:        o.DriverID,

		EstablishmentName:    o.EstablishmentName,
		EstablishmentAddress: o.EstablishmentAddress,
		DeliveryAddress:      o.DeliveryAddress,
		DeliveryNeighborhood: o.DeliveryNeighborhood,
		DeliveryCity:         o.DeliveryCity,

		Distance:       o.Distance,
		BasePrice:      o.BasePrice,
		ReturnTrip:     o.ReturnTrip,
		ReturnPrice:    o.ReturnPrice,
		TotalPrice:     o.TotalPrice,
		Commission:     o.Commission,
		DriverEarnings: o.DriverEarnings,

		PaymentMethod: o.PaymentMethod.String(),

		Status:             o.Status.String(),
		CancellationReason: o.CancellationReason,

		CreatedAt:   o.CreatedAt,
		AcceptedAt:  o.AcceptedAt,
		DeliveredAt: o.DeliveredAt,
		CancelledAt: o.CancelledAt,
	}

	if o.CashDetails != nil {
		orderDTO.CashDetails = &CashDetails{
			OrderValue:      o.CashDetails.OrderValue,
			CustomerPayment: o.CashDetails.CustomerPayment,
			Change:          o.CashDetails.Change,
		}
	}

	return orderDTO
}

func FromOrderList(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for i := range orders {
		result = append(result, FromOrder(&orders[i]))
	}
	return result
}

func FromWithdrawal(w *entities.Withdrawal) Withdrawal {
	return Withdrawal{
		ID:        w.ID,
		Amount:    w.Amount,
		Fee:       w.Fee,
		NetAmount: w.NetAmount,
		PixKey:    w.PixKey,
		CreatedAt: w.CreatedAt,
	}
}

func FromWithdrawalList(withdrawals []entities.Withdrawal) []Withdrawal {
	result := make([]Withdrawal, 0, len(withdrawals))
	for i := range withdrawals {
		result = append(result, FromWithdrawal(&withdrawals[i]))
	}
	return result
}

func FromSettings(s *entities.Settings) Settings {
	return Settings{
		PricePerKm:           s.PricePerKm,
		CommissionPercentage: s.CommissionPercentage,
		CancellationFee:      s.CancellationFee,
		WithdrawalFee:        s.WithdrawalFee,
		PaymentDay:           int(s.PaymentDay),
		WithdrawalFeeEnabled: s.WithdrawalFeeEnabled,
		AppName:              s.AppName,
	}
}
