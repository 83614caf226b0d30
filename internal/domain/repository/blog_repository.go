package repository

import (
	"context"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
)

// BlogRepository defines the store operations for blog documents.
type BlogRepository interface {
	Insert(ctx context.Context, b *entity.Blog) (InsertResult, error)
	// List returns all posts, optionally narrowed by status.
	List(ctx context.Context, status string) ([]entity.Blog, error)
	// FindByID returns ErrNotFound when no post matches.
	FindByID(ctx context.Context, id string) (*entity.Blog, error)
	PatchByID(ctx context.Context, id string, fields map[string]any) (UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (DeleteResult, error)
}
