// Package retrier общий контракт ретраев для внешних шлюзов.
package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// Config параметры экспоненциального backoff.
type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil ретраит любую ошибку, иначе только те, где функция вернула true
	ShouldRetry ShouldRetryFunc
}
