package stripepay

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// Client interface for Stripe operations
type Client interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

// client implements the Client interface
type client struct {
	apiKey string
}

// NewClient creates a new Stripe client
func NewClient(apiKey string) Client {
	stripe.Key = apiKey
	return &client{apiKey: apiKey}
}

// CreatePaymentIntent authorizes the given amount and returns the client-side
// confirmation secret.
func (c *client) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return pi.ClientSecret, nil
}
