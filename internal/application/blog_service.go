package application

import (
	"context"
	"errors"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
)

// BlogService handles blog content. Workflow is a draft/published toggle.
type BlogService struct {
	Repo repo.BlogRepository
}

func NewBlogService(r repo.BlogRepository) *BlogService {
	return &BlogService{Repo: r}
}

func (s *BlogService) Create(ctx context.Context, b *entity.Blog) (repo.InsertResult, error) {
	if b.Status == "" {
		b.Status = entity.BlogDraft
	}
	return s.Repo.Insert(ctx, b)
}

func (s *BlogService) List(ctx context.Context, status string) ([]entity.Blog, error) {
	return s.Repo.List(ctx, status)
}

func (s *BlogService) Get(ctx context.Context, id string) (*entity.Blog, error) {
	b, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *BlogService) Patch(ctx context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	return s.Repo.PatchByID(ctx, id, fields)
}

func (s *BlogService) Delete(ctx context.Context, id string) (repo.DeleteResult, error) {
	return s.Repo.DeleteByID(ctx, id)
}
