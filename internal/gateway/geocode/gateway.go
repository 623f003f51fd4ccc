package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/gateway/metrics"
	"github.com/diegoamaro-sudo/levaali/pkg/geodist"
	retrierconfig "github.com/diegoamaro-sudo/levaali/pkg/retrier"
	"github.com/diegoamaro-sudo/levaali/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "geocode-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrAddressNotFound = errors.New("address not found")

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("geocode service responded with status %d", e.code)
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

type geocodeResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (g *Gateway) Geocode(ctx context.Context, address string) (geodist.Point, error) {
	var point geodist.Point

	err := g.executeWithMetrics(ctx, "Geocode", func(ctx context.Context) error {
		resolved, err := g.resolve(ctx, address)
		if err != nil {
			return err
		}
		point = resolved
		return nil
	})
	if err != nil {
		var httpErr *statusError
		if errors.As(err, &httpErr) && httpErr.code == http.StatusNotFound {
			return geodist.Point{}, fmt.Errorf("gateway geocode, resolve %q: %w", address, ErrAddressNotFound)
		}
		return geodist.Point{}, fmt.Errorf("gateway geocode, resolve %q: %w", address, err)
	}

	return point, nil
}

func (g *Gateway) resolve(ctx context.Context, address string) (geodist.Point, error) {
	endpoint := g.baseURL + "/geocode?address=" + url.QueryEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return geodist.Point{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return geodist.Point{}, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return geodist.Point{}, &statusError{code: resp.StatusCode}
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return geodist.Point{}, fmt.Errorf("decode response: %w", err)
	}

	return geodist.Point{Lat: body.Lat, Lon: body.Lon}, nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var httpErr *statusError
	if errors.As(err, &httpErr) {
		return httpErr.code == http.StatusTooManyRequests || httpErr.code >= http.StatusInternalServerError
	}

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
