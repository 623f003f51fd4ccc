package order

import (
	"strings"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidPaymentMethod(method entities.PaymentMethod) bool {
	switch method {
	case entities.PaymentPaid, entities.PaymentCash, entities.PaymentCardMachine:
		return true
	default:
		return false
	}
}

// allowedTransitions шаги курьера, строго вперед и без пропусков.
var allowedTransitions = map[entities.OrderStatusType]entities.OrderStatusType{
	entities.OrderAccepted:  entities.OrderPickedUp,
	entities.OrderPickedUp:  entities.OrderInTransit,
	entities.OrderInTransit: entities.OrderDelivered,
}

func isAllowedTransition(from, to entities.OrderStatusType) bool {
	next, ok := allowedTransitions[from]
	return ok && next == to
}

func isCancellable(status entities.OrderStatusType) bool {
	return status == entities.OrderPending || status == entities.OrderAccepted
}
