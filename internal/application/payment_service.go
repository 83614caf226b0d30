package application

import (
	"context"
	"errors"
	"math"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
	"github.com/donorhive/donorhive-server/internal/infrastructure/stripepay"
)

// PaymentService authorizes payment intents and records completed payments.
// Records are append-only.
type PaymentService struct {
	Repo     repo.PaymentRepository
	Intents  stripepay.Client
	Currency string
}

func NewPaymentService(r repo.PaymentRepository, intents stripepay.Client, currency string) *PaymentService {
	return &PaymentService{Repo: r, Intents: intents, Currency: currency}
}

// CreateIntent authorizes the amount and returns the client-side confirmation
// secret. Price is in major units; Stripe wants cents.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if s.Intents == nil {
		return "", errors.New("payment processor not configured")
	}
	amount := int64(math.Round(price * 100))
	return s.Intents.CreatePaymentIntent(ctx, amount, s.Currency)
}

func (s *PaymentService) Record(ctx context.Context, p *entity.Payment) (repo.InsertResult, error) {
	return s.Repo.Insert(ctx, p)
}

func (s *PaymentService) List(ctx context.Context) ([]entity.Payment, error) {
	return s.Repo.List(ctx)
}
