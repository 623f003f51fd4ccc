package account

import (
	"database/sql"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

func ToDomain(a *AccountDB) *entities.Account {
	if a == nil {
		return nil
	}
	return &entities.Account{
		ID:                 a.ID,
		Type:               entities.AccountType(a.Type),
		Email:              a.Email,
		PasswordHash:       a.PasswordHash,
		Name:               a.Name,
		EstablishmentName:  a.EstablishmentName.String,
		CPFCNPJ:            a.CPFCNPJ.String,
		Address:            a.Address.String,
		HouseNumber:        a.HouseNumber.String,
		ReferencePoint:     a.ReferencePoint.String,
		Neighborhood:       a.Neighborhood.String,
		City:               a.City.String,
		CPF:                a.CPF.String,
		DateOfBirth:        a.DateOfBirth.Time,
		PixKey:             a.PixKey.String,
		CancellationsToday: a.CancellationsToday,
		Balance:            a.Balance,
		Approved:           a.Approved,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func ToDomainList(accounts []AccountDB) []entities.Account {
	result := make([]entities.Account, 0, len(accounts))
	for i := range accounts {
		result = append(result, *ToDomain(&accounts[i]))
	}
	return result
}

func FromDomain(a *entities.Account) *AccountDB {
	if a == nil {
		return nil
	}
	return &AccountDB{
		ID:                 a.ID,
		Type:               a.Type.String(),
		Email:              a.Email,
		PasswordHash:       a.PasswordHash,
		Name:               a.Name,
		EstablishmentName:  nullString(a.EstablishmentName),
		CPFCNPJ:            nullString(a.CPFCNPJ),
		Address:            nullString(a.Address),
		HouseNumber:        nullString(a.HouseNumber),
		ReferencePoint:     nullString(a.ReferencePoint),
		Neighborhood:       nullString(a.Neighborhood),
		City:               nullString(a.City),
		CPF:                nullString(a.CPF),
		DateOfBirth:        nullTime(a.DateOfBirth),
		PixKey:             nullString(a.PixKey),
		CancellationsToday: a.CancellationsToday,
		Balance:            a.Balance,
		Approved:           a.Approved,
	}
}

func FromDomainModify(a *entities.AccountModify) *AccountModifyDB {
	if a == nil {
		return nil
	}
	return &AccountModifyDB{
		ID:       a.ID,
		Name:     a.Name,
		PixKey:   a.PixKey,
		Approved: a.Approved,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
