package handlers

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
)

// In-memory repositories backing the handler tests. They mirror the store
// semantics: upserts create missing documents, patches report zero matches.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User // keyed by hex id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (f *fakeUserRepo) Insert(_ context.Context, u *entity.User) (repo.InsertResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = primitive.NewObjectID()
	f.users[u.ID.Hex()] = *u
	return repo.InsertResult{InsertedID: u.ID.Hex()}, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context, status string) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.User{}
	for _, u := range f.users {
		if status == "" || u.Status == status {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) SearchDonors(_ context.Context, filter repo.DonorFilter) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.User{}
	for _, u := range f.users {
		if filter.BloodGroup != "" && u.BloodGroup != filter.BloodGroup {
			continue
		}
		if filter.District != "" && u.District != filter.District {
			continue
		}
		if filter.Upazila != "" && u.Upazila != filter.Upazila {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpsertByID(_ context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repo.UpdateResult{}, repo.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		u = entity.User{ID: oid}
		applyUserFields(&u, fields)
		f.users[id] = u
		return repo.UpdateResult{UpsertedID: id}, nil
	}
	applyUserFields(&u, fields)
	f.users[id] = u
	return repo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeUserRepo) PatchByID(_ context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repo.UpdateResult{}, repo.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repo.UpdateResult{}, nil
	}
	applyUserFields(&u, fields)
	f.users[id] = u
	return repo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func applyUserFields(u *entity.User, fields map[string]any) {
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "name":
			u.Name = s
		case "avatarUrl":
			u.AvatarURL = s
		case "bloodGroup":
			u.BloodGroup = s
		case "district":
			u.District = s
		case "upazila":
			u.Upazila = s
		case "role":
			u.Role = s
		case "status":
			u.Status = s
		}
	}
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[string]entity.DonationRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]entity.DonationRequest{}}
}

func (f *fakeRequestRepo) Insert(_ context.Context, r *entity.DonationRequest) (repo.InsertResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = primitive.NewObjectID()
	f.requests[r.ID.Hex()] = *r
	return repo.InsertResult{InsertedID: r.ID.Hex()}, nil
}

func (f *fakeRequestRepo) List(_ context.Context, status string) ([]entity.DonationRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.DonationRequest{}
	for _, r := range f.requests {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListByRequester(_ context.Context, email, status string) ([]entity.DonationRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.DonationRequest{}
	for _, r := range f.requests {
		if r.RequesterEmail != email {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRequestRepo) FindByID(_ context.Context, id string) (*entity.DonationRequest, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repo.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	out := r
	return &out, nil
}

func (f *fakeRequestRepo) UpsertByID(_ context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repo.UpdateResult{}, repo.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok {
		r = entity.DonationRequest{ID: oid}
		applyRequestFields(&r, fields)
		f.requests[id] = r
		return repo.UpdateResult{UpsertedID: id}, nil
	}
	applyRequestFields(&r, fields)
	f.requests[id] = r
	return repo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeRequestRepo) PatchByID(_ context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repo.UpdateResult{}, repo.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok {
		return repo.UpdateResult{}, nil
	}
	applyRequestFields(&r, fields)
	f.requests[id] = r
	return repo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeRequestRepo) DeleteByID(_ context.Context, id string) (repo.DeleteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repo.DeleteResult{}, repo.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.requests[id]; !ok {
		return repo.DeleteResult{}, nil
	}
	delete(f.requests, id)
	return repo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeRequestRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.requests)), nil
}

func applyRequestFields(r *entity.DonationRequest, fields map[string]any) {
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "requesterName":
			r.RequesterName = s
		case "requesterEmail":
			r.RequesterEmail = s
		case "recipientName":
			r.RecipientName = s
		case "bloodGroup":
			r.BloodGroup = s
		case "district":
			r.District = s
		case "upazila":
			r.Upazila = s
		case "hospital":
			r.Hospital = s
		case "address":
			r.Address = s
		case "donationDate":
			r.DonationDate = s
		case "donationTime":
			r.DonationTime = s
		case "message":
			r.Message = s
		case "status":
			r.Status = s
		case "donorName":
			r.DonorName = s
		case "donorEmail":
			r.DonorEmail = s
		}
	}
}

type fakeBlogRepo struct {
	mu    sync.Mutex
	blogs map[string]entity.Blog
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[string]entity.Blog{}}
}

func (f *fakeBlogRepo) Insert(_ context.Context, b *entity.Blog) (repo.InsertResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = primitive.NewObjectID()
	f.blogs[b.ID.Hex()] = *b
	return repo.InsertResult{InsertedID: b.ID.Hex()}, nil
}

func (f *fakeBlogRepo) List(_ context.Context, status string) ([]entity.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Blog{}
	for _, b := range f.blogs {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlogRepo) FindByID(_ context.Context, id string) (*entity.Blog, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repo.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.blogs[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	out := b
	return &out, nil
}

func (f *fakeBlogRepo) PatchByID(_ context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repo.UpdateResult{}, repo.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.blogs[id]
	if !ok {
		return repo.UpdateResult{}, nil
	}
	if s, ok := fields["status"].(string); ok {
		b.Status = s
	}
	if s, ok := fields["title"].(string); ok {
		b.Title = s
	}
	if s, ok := fields["content"].(string); ok {
		b.Content = s
	}
	f.blogs[id] = b
	return repo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeBlogRepo) DeleteByID(_ context.Context, id string) (repo.DeleteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repo.DeleteResult{}, repo.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[id]; !ok {
		return repo.DeleteResult{}, nil
	}
	delete(f.blogs, id)
	return repo.DeleteResult{DeletedCount: 1}, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (f *fakePaymentRepo) Insert(_ context.Context, p *entity.Payment) (repo.InsertResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.payments = append(f.payments, *p)
	return repo.InsertResult{InsertedID: p.ID.Hex()}, nil
}

func (f *fakePaymentRepo) List(_ context.Context) ([]entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Payment, len(f.payments))
	copy(out, f.payments)
	return out, nil
}

func (f *fakePaymentRepo) TotalFunding(_ context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total float64
	for _, p := range f.payments {
		v, err := strconv.ParseFloat(strings.TrimSpace(p.Price), 64)
		if err != nil {
			continue
		}
		total += v
	}
	return total, nil
}

var (
	_ repo.UserRepository            = (*fakeUserRepo)(nil)
	_ repo.DonationRequestRepository = (*fakeRequestRepo)(nil)
	_ repo.BlogRepository            = (*fakeBlogRepo)(nil)
	_ repo.PaymentRepository         = (*fakePaymentRepo)(nil)
)
