package driver_approve_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/dto"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/middlewares/session"
	"github.com/diegoamaro-sudo/levaali/internal/service/account"
	"github.com/diegoamaro-sudo/levaali/pkg/logger"
	"github.com/gorilla/mux"
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

// ServeHTTP одобряет регистрацию курьера, доступен только админу.
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

	driverID := mux.Vars(r)["id"]
	if driverID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	accountEntity, err := h.service.ApproveDriver(r.Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, account.ErrNotDriver):
			w.WriteHeader(http.StatusBadRequest)
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
