package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает 503 во время shutdown, чтобы балансировщик перестал
// слать трафик до остановки listener-а.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := http.StatusNoContent
	if h.isShuttingDown.Load() {
		status = http.StatusServiceUnavailable
	}
	w.WriteHeader(status)
}
