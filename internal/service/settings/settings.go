package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

type Settings struct {
	repository Repository
}

func New(repository Repository) *Settings {
	return &Settings{
		repository: repository,
	}
}

func (s *Settings) GetSettings(ctx context.Context) (*entities.Settings, error) {
	settings, err := s.repository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings частичное обновление, только для админа.
func (s *Settings) UpdateSettings(ctx context.Context, modify entities.SettingsModify) (*entities.Settings, error) {
	if modify.PricePerKm == nil &&
		modify.CommissionPercentage == nil &&
		modify.CancellationFee == nil &&
		modify.WithdrawalFee == nil &&
		modify.PaymentDay == nil &&
		modify.WithdrawalFeeEnabled == nil &&
		modify.AppName == nil {
		return nil, ErrMissingRequiredFields
	}

	if modify.PricePerKm != nil && *modify.PricePerKm <= 0 {
		return nil, ErrInvalidPricePerKm
	}
	if modify.CommissionPercentage != nil &&
		(*modify.CommissionPercentage < 0 || *modify.CommissionPercentage > 100) {
		return nil, ErrInvalidCommission
	}
	if modify.CancellationFee != nil && *modify.CancellationFee < 0 {
		return nil, ErrInvalidFee
	}
	if modify.WithdrawalFee != nil && *modify.WithdrawalFee < 0 {
		return nil, ErrInvalidFee
	}
	if modify.PaymentDay != nil &&
		(*modify.PaymentDay < time.Sunday || *modify.PaymentDay > time.Saturday) {
		return nil, ErrInvalidPaymentDay
	}
	if modify.AppName != nil && strings.TrimSpace(*modify.AppName) == "" {
		return nil, ErrInvalidAppName
	}

	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return updated, nil
}
