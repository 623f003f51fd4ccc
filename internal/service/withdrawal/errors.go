package withdrawal

import "errors"

var (
	ErrNotDriver           = errors.New("account is not a driver")
	ErrPixKeyNotSet        = errors.New("pix key is not configured")
	ErrInsufficientBalance = errors.New("balance does not cover withdrawal fee")
)
