package service

import (
	"context"
	"math"

	"github.com/aidar/workday-backend/internal/domain"
)

// PaymentGateway creates payment intents with an external provider
type PaymentGateway interface {
	// CreateIntent registers an intent for the amount in minor units and
	// returns the provider's opaque client secret
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error)
}

// PaymentService handles the payment-intent flow
type PaymentService struct {
	gateway  PaymentGateway
	currency string
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(gateway PaymentGateway, currency string) *PaymentService {
	return &PaymentService{
		gateway:  gateway,
		currency: currency,
	}
}

// CreateIntent converts a price in major units to minor units and forwards
// it to the gateway
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", domain.ErrInvalidPrice
	}

	amount := int64(math.Round(price * 100))

	return s.gateway.CreateIntent(ctx, amount, s.currency)
}
