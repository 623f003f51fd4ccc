package notification_text

import (
	"fmt"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

// Message заголовок и текст push-уведомления.
type Message struct {
	Title string
	Body  string
}

type MessageFactory struct{}

func New() *MessageFactory {
	return &MessageFactory{}
}

var statusMessages = map[entities.OrderStatusType]Message{
	entities.OrderPending:   {Title: "Pedido enviado!", Body: "Procurando entregadores disponíveis..."},
	entities.OrderAccepted:  {Title: "Pedido aceito", Body: "Entregador a caminho"},
	entities.OrderPickedUp:  {Title: "Pedido coletado", Body: "O entregador coletou o pedido"},
	entities.OrderInTransit: {Title: "Em rota", Body: "Em rota para entrega"},
	entities.OrderDelivered: {Title: "Entregue", Body: "Pedido entregue com sucesso"},
	entities.OrderCancelled: {Title: "Cancelado", Body: "O pedido foi cancelado"},
}

// ForStatus возвращает текст уведомления для статуса заказа.
func (f *MessageFactory) ForStatus(status entities.OrderStatusType) (Message, error) {
	msg, ok := statusMessages[status]
	if !ok {
		return Message{}, fmt.Errorf("no notification text for status %q", status)
	}
	return msg, nil
}
