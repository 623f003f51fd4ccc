package settings

import "errors"

var (
	ErrMissingRequiredFields = errors.New("no fields to update")
	ErrInvalidPricePerKm     = errors.New("price per km must be positive")
	ErrInvalidCommission     = errors.New("commission percentage must be within 0-100")
	ErrInvalidFee            = errors.New("fee must not be negative")
	ErrInvalidPaymentDay     = errors.New("payment day must be a weekday 0-6")
	ErrInvalidAppName        = errors.New("app name must not be empty")
)
