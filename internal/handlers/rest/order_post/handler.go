package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/dto"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/middlewares/session"
	"github.com/diegoamaro-sudo/levaali/internal/service/order"
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

// ServeHTTP создает заказ от имени заведения-владельца токена.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := session.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if claims.AccountType != entities.AccountEstablishment.String() {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var orderCreateDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderRequest := entities.OrderRequest{
		EstablishmentID:      claims.Subject,
		DeliveryAddress:      orderCreateDTO.DeliveryAddress,
		DeliveryNeighborhood: orderCreateDTO.DeliveryNeighborhood,
		DeliveryCity:         orderCreateDTO.DeliveryCity,
		PaymentMethod:        entities.PaymentMethod(orderCreateDTO.PaymentMethod),
	}
	if orderCreateDTO.CashDetails != nil {
		orderRequest.CashDetails = &entities.CashDetailsRequest{
			OrderValue:      orderCreateDTO.CashDetails.OrderValue,
			CustomerPayment: orderCreateDTO.CashDetails.CustomerPayment,
		}
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderRequest)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrMissingDeliveryAddress),
			errors.Is(err, order.ErrInvalidPaymentMethod),
			errors.Is(err, order.ErrCashDetailsNotAllowed),
			errors.Is(err, order.ErrInvalidCashDetails):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrInsufficientBalance):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromOrder(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
