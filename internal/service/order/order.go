package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
	"github.com/diegoamaro-sudo/levaali/pkg/geodist"
	"github.com/diegoamaro-sudo/levaali/pkg/logger"
	"github.com/google/uuid"
)

type Order struct {
	log             logger.Logger
	repository      Repository
	accountService  AccountService
	settingsService SettingsService
	geocoder        Geocoder
	quoteFactory    QuoteFactory
	events          EventPublisher
	txManager       TxManager
}

func New(
	log logger.Logger,
	repository Repository,
	accountService AccountService,
	settingsService SettingsService,
	geocoder Geocoder,
	quoteFactory QuoteFactory,
	events EventPublisher,
	txManager TxManager,
) *Order {
	return &Order{
		log:             log,
		repository:      repository,
		accountService:  accountService,
		settingsService: settingsService,
		geocoder:        geocoder,
		quoteFactory:    quoteFactory,
		events:          events,
		txManager:       txManager,
	}
}

// CreateOrder считает стоимость и создает заказ в статусе pending.
// Стоимость доставки резервируется с баланса заведения в той же транзакции.
func (s *Order) CreateOrder(ctx context.Context, req entities.OrderRequest) (*entities.Order, error) {
	if req.EstablishmentID == "" {
		return nil, ErrMissingRequiredFields
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, ErrMissingDeliveryAddress
	}
	if !isValidPaymentMethod(req.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	cashDetails, err := buildCashDetails(req)
	if err != nil {
		return nil, err
	}

	establishment, err := s.accountService.GetAccount(ctx, req.EstablishmentID)
	if err != nil {
		return nil, fmt.Errorf("get establishment: %w", err)
	}
	if establishment.Type != entities.AccountEstablishment {
		return nil, ErrNotOrderParticipant
	}

	// геокодинг и расчет до транзакции, внешние вызовы не держат соединение
	from, err := s.geocoder.Geocode(ctx, establishment.Address)
	if err != nil {
		return nil, fmt.Errorf("geocode establishment address: %w", err)
	}
	to, err := s.geocoder.Geocode(ctx, req.DeliveryAddress)
	if err != nil {
		return nil, fmt.Errorf("geocode delivery address: %w", err)
	}
	distance := geodist.Haversine(from, to)

	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	quote := s.quoteFactory.CalculateQuote(
		distance,
		settings.PricePerKm,
		settings.CommissionPercentage,
		req.PaymentMethod.ReturnTripRequired(),
	)

	newOrder := entities.Order{
		ID:                   uuid.NewString(),
		EstablishmentID:      establishment.ID,
		EstablishmentName:    establishment.EstablishmentName,
		EstablishmentAddress: establishment.Address,
		DeliveryAddress:      req.DeliveryAddress,
		DeliveryNeighborhood: req.DeliveryNeighborhood,
		DeliveryCity:         req.DeliveryCity,
		Distance:             quote.Distance,
		BasePrice:            quote.BasePrice,
		ReturnTrip:           req.PaymentMethod.ReturnTripRequired(),
		ReturnPrice:          quote.ReturnPrice,
		TotalPrice:           quote.TotalPrice,
		Commission:           quote.Commission,
		DriverEarnings:       quote.DriverEarnings,
		PaymentMethod:        req.PaymentMethod,
		CashDetails:          cashDetails,
		Status:               entities.OrderPending,
		CreatedAt:            time.Now().UTC(),
	}

	var created *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.accountService.GetAccount(ctx, establishment.ID)
		if err != nil {
			return fmt.Errorf("get establishment balance: %w", err)
		}
		if current.Balance < quote.TotalPrice {
			return ErrInsufficientBalance
		}

		if _, err := s.accountService.AdjustBalance(ctx, establishment.ID, -quote.TotalPrice); err != nil {
			return fmt.Errorf("reserve delivery price: %w", err)
		}

		created, err = s.repository.Create(ctx, newOrder)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, created)
	return created, nil
}

func (s *Order) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	ord, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return ord, nil
}

func (s *Order) GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// AcceptOrder назначает курьера на заказ. Переход pending -> accepted
// выполняется условным обновлением, победитель гонки ровно один.
func (s *Order) AcceptOrder(ctx context.Context, orderID, driverID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if driverID == "" {
		return nil, ErrMissingRequiredFields
	}

	driver, err := s.accountService.GetAccount(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}
	if driver.Type != entities.AccountDriver {
		return nil, ErrNotOrderParticipant
	}
	if !driver.Approved {
		return nil, ErrDriverNotApproved
	}

	accepted, err := s.repository.Accept(ctx, orderID, driverID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("accept order: %w", err)
	}

	s.publishStatusChanged(ctx, accepted)
	return accepted, nil
}

// AdvanceStatus продвигает заказ по шагам курьера. Доставка дополнительно
// зачисляет заработок курьеру в одной транзакции со сменой статуса.
func (s *Order) AdvanceStatus(ctx context.Context, orderID, driverID string, next entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	current, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if current.DriverID != driverID {
		return nil, ErrNotOrderDriver
	}
	if !isAllowedTransition(current.Status, next) {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()

	var updated *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err = s.repository.UpdateStatus(ctx, orderID, current.Status, next, now, "")
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		if next == entities.OrderDelivered {
			if _, err := s.accountService.AdjustBalance(ctx, driverID, updated.DriverEarnings); err != nil {
				return fmt.Errorf("credit driver earnings: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, updated)
	return updated, nil
}

// CancelOrder отменяет заказ из pending или accepted. Резерв возвращается
// заведению; отмена курьером после принятия стоит ему комиссии за отмену
// и увеличивает дневной счетчик.
func (s *Order) CancelOrder(ctx context.Context, orderID, actorID, reason string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	current, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !isCancellable(current.Status) {
		return nil, ErrOrderNotCancellable
	}

	cancelledByDriver := current.DriverID != "" && actorID == current.DriverID
	if actorID != current.EstablishmentID && !cancelledByDriver {
		return nil, ErrNotOrderParticipant
	}

	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	now := time.Now().UTC()

	var cancelled *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		cancelled, err = s.repository.UpdateStatus(ctx, orderID, current.Status, entities.OrderCancelled, now, reason)
		if err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}

		if _, err := s.accountService.AdjustBalance(ctx, current.EstablishmentID, current.TotalPrice); err != nil {
			return fmt.Errorf("refund establishment: %w", err)
		}

		if cancelledByDriver {
			if _, err := s.accountService.AdjustBalance(ctx, actorID, -settings.CancellationFee); err != nil {
				return fmt.Errorf("charge cancellation fee: %w", err)
			}
			if err := s.accountService.IncrementCancellations(ctx, actorID); err != nil {
				return fmt.Errorf("count cancellation: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, cancelled)
	return cancelled, nil
}

// publishStatusChanged события best-effort: заказ уже сохранен,
// сбой брокера не должен валить операцию.
func (s *Order) publishStatusChanged(ctx context.Context, ord *entities.Order) {
	if err := s.events.PublishStatusChanged(ctx, ord); err != nil {
		s.log.With(
			logger.NewField("order", ord.ID),
			logger.NewField("status", ord.Status.String()),
			logger.NewField("error", err),
		).Warn("failed to publish order.status.changed")
	}
}

func buildCashDetails(req entities.OrderRequest) (*entities.CashDetails, error) {
	if req.CashDetails == nil {
		return nil, nil
	}
	if req.PaymentMethod != entities.PaymentCash {
		return nil, ErrCashDetailsNotAllowed
	}

	change := req.CashDetails.CustomerPayment - req.CashDetails.OrderValue
	if change < 0 {
		return nil, ErrInvalidCashDetails
	}

	return &entities.CashDetails{
		OrderValue:      req.CashDetails.OrderValue,
		CustomerPayment: req.CashDetails.CustomerPayment,
		Change:          change,
	}, nil
}
