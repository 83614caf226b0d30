package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
	"github.com/donorhive/donorhive-server/pkg/helpers"
	"github.com/donorhive/donorhive-server/pkg/mailer"
)

// DonationService handles the donation-request lifecycle. Creation is gated
// on the requester being an active user.
type DonationService struct {
	Requests repo.DonationRequestRepository
	Users    repo.UserRepository
	Mail     *helpers.RabbitPublisher
	Logger   *logrus.Logger
}

func NewDonationService(requests repo.DonationRequestRepository, users repo.UserRepository, mail *helpers.RabbitPublisher, logger *logrus.Logger) *DonationService {
	return &DonationService{Requests: requests, Users: users, Mail: mail, Logger: logger}
}

// Create persists the request after verifying the requester is active.
// Unknown or blocked requesters get ErrUserBlocked.
func (s *DonationService) Create(ctx context.Context, requesterEmail string, dr *entity.DonationRequest) (repo.InsertResult, error) {
	u, err := s.Users.FindByEmail(ctx, requesterEmail)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return repo.InsertResult{}, ErrUserBlocked
		}
		return repo.InsertResult{}, err
	}
	if u.Status != entity.StatusActive {
		return repo.InsertResult{}, ErrUserBlocked
	}
	if dr.Status == "" {
		dr.Status = entity.RequestPending
	}
	return s.Requests.Insert(ctx, dr)
}

func (s *DonationService) List(ctx context.Context, status string) ([]entity.DonationRequest, error) {
	return s.Requests.List(ctx, status)
}

func (s *DonationService) ListByRequester(ctx context.Context, email, status string) ([]entity.DonationRequest, error) {
	return s.Requests.ListByRequester(ctx, email, status)
}

func (s *DonationService) Get(ctx context.Context, id string) (*entity.DonationRequest, error) {
	dr, err := s.Requests.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dr, nil
}

// Replace upserts the request. The requester identity and status never travel
// through a replace; they change only via Create and the patch operations.
func (s *DonationService) Replace(ctx context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	delete(fields, "requesterEmail")
	delete(fields, "status")
	return s.Requests.UpsertByID(ctx, id, fields)
}

// Patch merges the given fields into an existing request.
func (s *DonationService) Patch(ctx context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	return s.Requests.PatchByID(ctx, id, fields)
}

// Fulfill sets the status and binds the donor identity, then notifies the
// requester by mail (best-effort).
func (s *DonationService) Fulfill(ctx context.Context, id, status, donorName, donorEmail string) (repo.UpdateResult, error) {
	dr, err := s.Requests.FindByID(ctx, id)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return repo.UpdateResult{}, err
	}
	res, err := s.Requests.PatchByID(ctx, id, map[string]any{
		"status":     status,
		"donorName":  donorName,
		"donorEmail": donorEmail,
	})
	if err != nil {
		return repo.UpdateResult{}, err
	}
	if dr != nil {
		s.notifyRequester(ctx, dr, status, donorName, donorEmail)
	}
	return res, nil
}

func (s *DonationService) Delete(ctx context.Context, id string) (repo.DeleteResult, error) {
	return s.Requests.DeleteByID(ctx, id)
}

func (s *DonationService) Count(ctx context.Context) (int64, error) {
	return s.Requests.Count(ctx)
}

func (s *DonationService) notifyRequester(ctx context.Context, dr *entity.DonationRequest, status, donorName, donorEmail string) {
	if s.Mail == nil || dr.RequesterEmail == "" {
		return
	}
	job := mailer.EmailJob{
		To:       dr.RequesterEmail,
		Template: mailer.TemplateRequestFulfilled,
		Data: map[string]any{
			"RequesterName": dr.RequesterName,
			"Status":        status,
			"DonorName":     donorName,
			"DonorEmail":    donorEmail,
		},
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("request_id", dr.ID.Hex()).Warn("fulfillment mail publish failed")
	}
}
