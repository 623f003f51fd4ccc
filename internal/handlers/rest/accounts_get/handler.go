package accounts_get

import (
	"encoding/json"
	"net/http"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/dto"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/middlewares/session"
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

// ServeHTTP отдает список всех аккаунтов, доступен только админу.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := session.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if claims.AccountType != entities.AccountAdmin.String() {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	accounts, err := h.service.GetAccounts(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.AccountsResponse{
		Accounts: dto.FromAccountList(accounts),
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
