package withdrawal

import "github.com/diegoamaro-sudo/levaali/internal/entities"

func ToDomain(w *WithdrawalDB) *entities.Withdrawal {
	if w == nil {
		return nil
	}
	return &entities.Withdrawal{
		ID:        w.ID,
		DriverID:  w.DriverID,
		Amount:    w.Amount,
		Fee:       w.Fee,
		NetAmount: w.NetAmount,
		PixKey:    w.PixKey,
		CreatedAt: w.CreatedAt,
	}
}

func ToDomainList(withdrawals []WithdrawalDB) []entities.Withdrawal {
	result := make([]entities.Withdrawal, 0, len(withdrawals))
	for i := range withdrawals {
		result = append(result, *ToDomain(&withdrawals[i]))
	}
	return result
}
