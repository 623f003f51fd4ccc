package account_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/dto"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/middlewares/session"
	"github.com/diegoamaro-sudo/levaali/internal/service/account"
	"github.com/diegoamaro-sudo/levaali/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает профиль владельца токена.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := session.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	accountEntity, err := h.service.GetAccount(r.Context(), claims.Subject)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromAccount(accountEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
