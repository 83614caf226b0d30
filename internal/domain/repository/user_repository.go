package repository

import (
	"context"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
)

// DonorFilter narrows a donor search. Empty fields are ignored; set fields
// must all match (AND semantics).
type DonorFilter struct {
	BloodGroup string
	District   string
	Upazila    string
}

// UserRepository defines the store operations for user documents.
type UserRepository interface {
	Insert(ctx context.Context, u *entity.User) (InsertResult, error)
	// FindByEmail returns ErrNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// List returns all users, optionally narrowed by status.
	List(ctx context.Context, status string) ([]entity.User, error)
	SearchDonors(ctx context.Context, f DonorFilter) ([]entity.User, error)
	// UpsertByID replaces the given fields, creating the document if absent.
	UpsertByID(ctx context.Context, id string, fields map[string]any) (UpdateResult, error)
	// PatchByID merges the given fields into an existing document.
	PatchByID(ctx context.Context, id string, fields map[string]any) (UpdateResult, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}
