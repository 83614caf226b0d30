package repository

import (
	"context"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
)

// DonationRequestRepository defines the store operations for donation-request
// documents.
type DonationRequestRepository interface {
	Insert(ctx context.Context, r *entity.DonationRequest) (InsertResult, error)
	// List returns all requests, optionally narrowed by status.
	List(ctx context.Context, status string) ([]entity.DonationRequest, error)
	ListByRequester(ctx context.Context, email, status string) ([]entity.DonationRequest, error)
	// FindByID returns ErrNotFound when no request matches.
	FindByID(ctx context.Context, id string) (*entity.DonationRequest, error)
	UpsertByID(ctx context.Context, id string, fields map[string]any) (UpdateResult, error)
	PatchByID(ctx context.Context, id string, fields map[string]any) (UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}
