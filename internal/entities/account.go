package entities

import "time"

type AccountType string

const (
	AccountEstablishment AccountType = "establishment"
	AccountDriver        AccountType = "driver"
	AccountAdmin         AccountType = "admin"
)

func (t AccountType) String() string {
	return string(t)
}

// Account закрытое множество вариантов аккаунта: заведение, курьер, админ.
// Вариант определяется полем Type, неиспользуемые поля остаются пустыми.
type Account struct {
	ID           string
	Type         AccountType
	Email        string
	PasswordHash string
	Name         string

	// заведение
	EstablishmentName string
	CPFCNPJ           string
	Address           string
	HouseNumber       string
	ReferencePoint    string
	Neighborhood      string
	City              string

	// курьер
	CPF                string
	DateOfBirth        time.Time
	PixKey             string
	CancellationsToday int64

	Balance   float64
	Approved  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AccountModify struct {
	ID       *string
	Name     *string
	PixKey   *string
	Approved *bool
}

// EstablishmentRegistration типизированный payload регистрации заведения.
type EstablishmentRegistration struct {
	Email             string
	Password          string
	Name              string
	EstablishmentName string
	CPFCNPJ           string
	Address           string
	HouseNumber       string
	ReferencePoint    string
	Neighborhood      string
	City              string
}

// DriverRegistration типизированный payload регистрации курьера.
type DriverRegistration struct {
	Email       string
	Password    string
	Name        string
	CPF         string
	DateOfBirth time.Time
	PixKey      string
}
