package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
)

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, u *entity.User) (repo.InsertResult, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(repo.InsertResult), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, status string) ([]entity.User, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) SearchDonors(ctx context.Context, f repo.DonorFilter) ([]entity.User, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) UpsertByID(ctx context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(repo.UpdateResult), args.Error(1)
}

func (m *MockUserRepository) PatchByID(ctx context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(repo.UpdateResult), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockDonationRequestRepository
type MockDonationRequestRepository struct {
	mock.Mock
}

func (m *MockDonationRequestRepository) Insert(ctx context.Context, r *entity.DonationRequest) (repo.InsertResult, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(repo.InsertResult), args.Error(1)
}

func (m *MockDonationRequestRepository) List(ctx context.Context, status string) ([]entity.DonationRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]entity.DonationRequest), args.Error(1)
}

func (m *MockDonationRequestRepository) ListByRequester(ctx context.Context, email, status string) ([]entity.DonationRequest, error) {
	args := m.Called(ctx, email, status)
	return args.Get(0).([]entity.DonationRequest), args.Error(1)
}

func (m *MockDonationRequestRepository) FindByID(ctx context.Context, id string) (*entity.DonationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DonationRequest), args.Error(1)
}

func (m *MockDonationRequestRepository) UpsertByID(ctx context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(repo.UpdateResult), args.Error(1)
}

func (m *MockDonationRequestRepository) PatchByID(ctx context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(repo.UpdateResult), args.Error(1)
}

func (m *MockDonationRequestRepository) DeleteByID(ctx context.Context, id string) (repo.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repo.DeleteResult), args.Error(1)
}

func (m *MockDonationRequestRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Insert(ctx context.Context, b *entity.Blog) (repo.InsertResult, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(repo.InsertResult), args.Error(1)
}

func (m *MockBlogRepository) List(ctx context.Context, status string) ([]entity.Blog, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]entity.Blog), args.Error(1)
}

func (m *MockBlogRepository) FindByID(ctx context.Context, id string) (*entity.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogRepository) PatchByID(ctx context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(repo.UpdateResult), args.Error(1)
}

func (m *MockBlogRepository) DeleteByID(ctx context.Context, id string) (repo.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repo.DeleteResult), args.Error(1)
}

// MockPaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Insert(ctx context.Context, p *entity.Payment) (repo.InsertResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(repo.InsertResult), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context) ([]entity.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) TotalFunding(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}
