package payments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrPaymentDeclined = errors.New("payment declined")
	ErrProviderDown    = errors.New("payment provider unavailable")
)

// IntentProvider creates payment intents and returns the client secret the
// browser confirms the payment with.
type IntentProvider interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

// AmountInCents converts a major-unit price into the smallest currency unit.
func AmountInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

type StripeProvider struct {
	client *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	return NewStripeProviderWithBackends(secretKey, nil)
}

// NewStripeProviderWithBackends lets callers point the client at a different
// API backend.
func NewStripeProviderWithBackends(secretKey string, backends *stripe.Backends) *StripeProvider {
	sc := &client.API{}
	sc.Init(secretKey, backends)
	return &StripeProvider{client: sc}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	if amountCents <= 0 {
		return "", ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := p.client.PaymentIntents.New(params)
	if err != nil {
		return "", mapStripeError(err)
	}
	return pi.ClientSecret, nil
}

func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Type == stripe.ErrorTypeCard {
			return fmt.Errorf("%w: %s", ErrPaymentDeclined, stripeErr.Msg)
		}
		if stripeErr.HTTPStatusCode >= http.StatusInternalServerError {
			return ErrProviderDown
		}
	}
	return fmt.Errorf("stripe: %w", err)
}

// LocalProvider issues fake client secrets for development without a Stripe
// account.
type LocalProvider struct{}

func (LocalProvider) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	if amountCents <= 0 {
		return "", ErrInvalidAmount
	}
	id := "pi_local_" + uuid.NewString()
	return id + "_secret_" + uuid.NewString(), nil
}
