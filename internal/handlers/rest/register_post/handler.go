package register_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/internal/handlers/rest/dto"
	"github.com/diegoamaro-sudo/levaali/internal/service/account"
	"github.com/diegoamaro-sudo/levaali/pkg/logger"
)

const dateLayout = "2006-01-02"

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
	var registerDTO dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var accountEntity *entities.Account

	switch entities.AccountType(registerDTO.Type) {
	case entities.AccountEstablishment:
		reg := entities.EstablishmentRegistration{
			Email:             registerDTO.Email,
			Password:          registerDTO.Password,
			Name:              registerDTO.Name,
			EstablishmentName: registerDTO.EstablishmentName,
			CPFCNPJ:           registerDTO.CPFCNPJ,
			Address:           registerDTO.Address,
			HouseNumber:       registerDTO.HouseNumber,
			ReferencePoint:    registerDTO.ReferencePoint,
			Neighborhood:      registerDTO.Neighborhood,
			City:              registerDTO.City,
		}
		accountEntity, err = h.service.RegisterEstablishment(r.Context(), reg)

	case entities.AccountDriver:
		var dateOfBirth time.Time
		if registerDTO.DateOfBirth != "" {
			dateOfBirth, err = time.Parse(dateLayout, registerDTO.DateOfBirth)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}
		reg := entities.DriverRegistration{
			Email:       registerDTO.Email,
			Password:    registerDTO.Password,
			Name:        registerDTO.Name,
			CPF:         registerDTO.CPF,
			DateOfBirth: dateOfBirth,
			PixKey:      registerDTO.PixKey,
		}
		accountEntity, err = h.service.RegisterDriver(r.Context(), reg)

	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields),
			errors.Is(err, account.ErrInvalidEmail),
			errors.Is(err, account.ErrPasswordTooShort),
			errors.Is(err, account.ErrUnderage):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, account.ErrEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromAccount(accountEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
