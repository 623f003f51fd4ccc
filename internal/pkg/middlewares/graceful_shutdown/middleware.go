package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware отклоняет новые запросы после начала shutdown.
// ongoingCtx отменяется только после Server.Shutdown, так что начатые
// запросы дорабатывают, а новые получают 503.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() {
				select {
				case <-ongoingCtx.Done():
					http.Error(w, "Service is shutting down", http.StatusServiceUnavailable)
					return
				default:
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
