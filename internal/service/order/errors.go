package order

import "errors"

var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrMissingDeliveryAddress = errors.New("missing delivery address")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrCashDetailsNotAllowed  = errors.New("cash details allowed only for cash payment")
	ErrInvalidCashDetails     = errors.New("customer payment is less than order value")

	ErrOrderNotFound       = errors.New("order not found")
	ErrInsufficientBalance = errors.New("insufficient balance")

	ErrOrderNotPending     = errors.New("order is no longer pending")
	ErrStatusConflict      = errors.New("order status changed concurrently")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")

	ErrDriverNotApproved   = errors.New("driver is not approved")
	ErrNotOrderDriver      = errors.New("driver is not assigned to this order")
	ErrNotOrderParticipant = errors.New("account is not a participant of this order")
)
