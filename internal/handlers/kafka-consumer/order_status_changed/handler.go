package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/pkg/logger"
)

type statusChangedEvent struct {
	OrderID         string `json:"order_id"`
	EstablishmentID string `json:"establishment_id"`
	DriverID        string `json:"driver_id"`
	Status          string `json:"status"`
}

type Handler struct {
	notifier                 Notifier
	messages                 MessageFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notifier Notifier, messages MessageFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notifier:                 notifier,
		messages:                 messages,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Уведомления best-effort: ошибка доставки логируется, offset все равно коммитится.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.changed processing")

	msg, err := h.messages.ForStatus(entities.OrderStatusType(event.Status))
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.status.changed handler unknown status for order")
		sess.MarkMessage(message, "")
		return false
	}

	recipients := []string{event.EstablishmentID}
	if event.DriverID != "" {
		recipients = append(recipients, event.DriverID)
	}

	for _, recipient := range recipients {
		notification := entities.PushNotification{
			AccountID: recipient,
			Title:     msg.Title,
			Body:      msg.Body,
		}

		err := h.notifier.Push(ctx, notification)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				msgLog.With(
					logger.NewField("error", err),
				).Warn("order.status.changed handler context cancelled, message will be reprocessed")
				return true
			}

			msgLog.With(
				logger.NewField("error", err),
				logger.NewField("recipient", recipient),
			).Warn("order.status.changed handler failed to push notification")
		}
	}

	msgLog.Info("order.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
