package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/internal/gateway/metrics"
	retrierconfig "github.com/diegoamaro-sudo/levaali/pkg/retrier"
	"github.com/diegoamaro-sudo/levaali/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "payment-gateway"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("payment gateway responded with status %d", e.code)
}

type Gateway struct {
	client  httpClient
	retrier retrier
	baseURL string
}

func New(client httpClient, baseURL string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
	}
}

type chargeRequest struct {
	AccountID   string  `json:"account_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type payoutRequest struct {
	AccountID string  `json:"account_id"`
	PixKey    string  `json:"pix_key"`
	Amount    float64 `json:"amount"`
}

// Charge списывает средства в пользу платформы. Ключ идемпотентности
// позволяет безопасно ретраить: повтор с тем же ключом не спишет дважды.
func (g *Gateway) Charge(ctx context.Context, charge entities.PaymentCharge) error {
	body := chargeRequest{
		AccountID:   charge.AccountID,
		Amount:      charge.Amount,
		Description: charge.Description,
	}

	err := g.executeWithMetrics(ctx, "Charge", func(ctx context.Context) error {
		return g.post(ctx, "/charges", charge.IdempotencyKey, body)
	})
	if err != nil {
		return fmt.Errorf("gateway payment, charge: %w", err)
	}

	return nil
}

func (g *Gateway) Payout(ctx context.Context, payout entities.PaymentPayout) error {
	body := payoutRequest{
		AccountID: payout.AccountID,
		PixKey:    payout.PixKey,
		Amount:    payout.Amount,
	}

	err := g.executeWithMetrics(ctx, "Payout", func(ctx context.Context) error {
		return g.post(ctx, "/payouts", payout.IdempotencyKey, body)
	})
	if err != nil {
		return fmt.Errorf("gateway payment, payout: %w", err)
	}

	return nil
}

func (g *Gateway) post(ctx context.Context, path, idempotencyKey string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return &statusError{code: resp.StatusCode}
	}

	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var httpErr *statusError
	if errors.As(err, &httpErr) {
		return httpErr.code == http.StatusTooManyRequests || httpErr.code >= http.StatusInternalServerError
	}

	// сетевые ошибки и таймауты ретраим всегда
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := resultCode(err)
	// Метрики Prometheus
	metrics.GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		metrics.GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func resultCode(err error) string {
	if err == nil {
		return "OK"
	}
	var httpErr *statusError
	if errors.As(err, &httpErr) {
		return strconv.Itoa(httpErr.code)
	}
	return "NETWORK"
}
