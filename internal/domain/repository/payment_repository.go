package repository

import (
	"context"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
)

// PaymentRepository defines the store operations for payment records.
// Payments are append-only.
type PaymentRepository interface {
	Insert(ctx context.Context, p *entity.Payment) (InsertResult, error)
	List(ctx context.Context) ([]entity.Payment, error)
	// TotalFunding sums the price field across all records, coercing the
	// stored text to a number. Returns 0 when no payments exist.
	TotalFunding(ctx context.Context) (float64, error)
}
