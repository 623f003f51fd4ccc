package account

import (
	"database/sql"
	"time"
)

type AccountDB struct {
	ID           string
	Type         string
	Email        string
	PasswordHash string
	Name         string

	EstablishmentName sql.NullString
	CPFCNPJ           sql.NullString
	Address           sql.NullString
	HouseNumber       sql.NullString
	ReferencePoint    sql.NullString
	Neighborhood      sql.NullString
	City              sql.NullString

	CPF                sql.NullString
	DateOfBirth        sql.NullTime
	PixKey             sql.NullString
	CancellationsToday int64

	Balance   float64
	Approved  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AccountModifyDB struct {
	ID       *string
	Name     *string
	PixKey   *string
	Approved *bool
}
