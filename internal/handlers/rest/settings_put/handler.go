package settings_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/dto"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/middlewares/session"
	"github.com/diegoamaro-sudo/levaali/internal/service/settings"
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

// ServeHTTP частично обновляет настройки платформы, доступен только админу.
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

	var updateDTO dto.SettingsUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := entities.SettingsModify{
		PricePerKm:           updateDTO.PricePerKm,
		CommissionPercentage: updateDTO.CommissionPercentage,
		CancellationFee:      updateDTO.CancellationFee,
		WithdrawalFee:        updateDTO.WithdrawalFee,
		WithdrawalFeeEnabled: updateDTO.WithdrawalFeeEnabled,
		AppName:              updateDTO.AppName,
	}
	if updateDTO.PaymentDay != nil {
		paymentDay := time.Weekday(*updateDTO.PaymentDay)
		modify.PaymentDay = &paymentDay
	}

	settingsEntity, err := h.service.UpdateSettings(r.Context(), modify)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrMissingRequiredFields),
			errors.Is(err, settings.ErrInvalidPricePerKm),
			errors.Is(err, settings.ErrInvalidCommission),
			errors.Is(err, settings.ErrInvalidFee),
			errors.Is(err, settings.ErrInvalidPaymentDay),
			errors.Is(err, settings.ErrInvalidAppName):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromSettings(settingsEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
