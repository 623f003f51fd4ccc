package cancellations_reset

import (
	"context"
	"time"

	"github.com/diegoamaro-sudo/levaali/pkg/logger"
)

type Service interface {
	ResetDailyCancellations(ctx context.Context) (int64, error)
}

// CancellationsReset обнуляет дневные счетчики отмен курьеров при смене даты.
// Тикает чаще раза в сутки, но сбрасывает только когда день сменился,
// поэтому рестарт сервиса посреди дня счетчики не трогает.
type CancellationsReset struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	lastDay  string
}

func NewCancellationsReset(log logger.Logger, service Service, interval time.Duration) *CancellationsReset {
	return &CancellationsReset{
		log:      log,
		service:  service,
		interval: interval,
		lastDay:  time.Now().Format("2006-01-02"),
	}
}

func (c *CancellationsReset) TTL() time.Duration {
	return c.interval
}

func (c *CancellationsReset) Do(ctx context.Context) error {
	today := time.Now().Format("2006-01-02")
	if today == c.lastDay {
		return nil
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	rowsAffected, err := c.service.ResetDailyCancellations(ctxWithTimeout)
	if err != nil {
		return err
	}

	c.lastDay = today
	if rowsAffected > 0 {
		c.log.With(
			logger.NewField("drivers", rowsAffected),
		).Info("cancellations reset")
	}

	return nil
}

func (c *CancellationsReset) Info() string {
	return "cancellations reset"
}
