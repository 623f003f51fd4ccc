package balance_topup_post

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := session.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var topUpDTO dto.TopUpRequest
	err := json.NewDecoder(r.Body).Decode(&topUpDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	accountEntity, err := h.service.TopUpBalance(r.Context(), claims.Subject, topUpDTO.Amount)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAmountBelowMinimum):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, account.ErrAccountNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, account.ErrNotEstablishment):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.BalanceResponse{
		Balance: accountEntity.Balance,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
