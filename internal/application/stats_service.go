package application

import (
	"context"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
)

// Statistics is the aggregate snapshot served by GET /statistics.
type Statistics struct {
	TotalDonors        int64   `json:"totalDonors"`
	TotalBloodRequests int64   `json:"totalBloodRequests"`
	TotalFunding       float64 `json:"totalFunding"`
}

// StatsService computes the three derived counts on each call; nothing is
// cached.
type StatsService struct {
	Users    repo.UserRepository
	Requests repo.DonationRequestRepository
	Payments repo.PaymentRepository
}

func NewStatsService(users repo.UserRepository, requests repo.DonationRequestRepository, payments repo.PaymentRepository) *StatsService {
	return &StatsService{Users: users, Requests: requests, Payments: payments}
}

func (s *StatsService) Overview(ctx context.Context) (Statistics, error) {
	donors, err := s.Users.CountByRole(ctx, entity.RoleDonor)
	if err != nil {
		return Statistics{}, err
	}
	requests, err := s.Requests.Count(ctx)
	if err != nil {
		return Statistics{}, err
	}
	funding, err := s.Payments.TotalFunding(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return Statistics{
		TotalDonors:        donors,
		TotalBloodRequests: requests,
		TotalFunding:       funding,
	}, nil
}
