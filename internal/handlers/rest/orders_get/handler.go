package orders_get

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"
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

// ServeHTTP отдает заказы, видимые владельцу токена.
// Заведение видит свои заказы, курьер свои либо ленту pending
// (?available=true), админ все. Фильтр ?status сужает любую выборку.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := session.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var filter entities.OrderFilter

	switch claims.AccountType {
	case entities.AccountEstablishment.String():
		filter.EstablishmentID = pointer.ToString(claims.Subject)
	case entities.AccountDriver.String():
		if r.URL.Query().Get("available") == "true" {
			filter.Status = pointer.To(entities.OrderPending)
		} else {
			filter.DriverID = pointer.ToString(claims.Subject)
		}
	case entities.AccountAdmin.String():
		// без базового фильтра
	default:
		w.WriteHeader(http.StatusForbidden)
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = pointer.To(entities.OrderStatusType(status))
	}

	orders, err := h.service.GetOrders(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.OrdersResponse{
		Orders: dto.FromOrderList(orders),
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
