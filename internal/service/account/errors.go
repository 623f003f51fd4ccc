package account

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrPasswordTooShort      = errors.New("password too short")
	ErrUnderage              = errors.New("driver must be at least 18 years old")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered for this account type")

	ErrNotDriver        = errors.New("account is not a driver")
	ErrNotEstablishment = errors.New("account is not an establishment")

	ErrAmountBelowMinimum  = errors.New("top-up amount below minimum")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAccountNotApproved  = errors.New("account is not approved")
)
