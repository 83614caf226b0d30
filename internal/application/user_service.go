package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
	repo "github.com/donorhive/donorhive-server/internal/domain/repository"
	"github.com/donorhive/donorhive-server/pkg/helpers"
	"github.com/donorhive/donorhive-server/pkg/mailer"
)

// UserService handles registration, donor search, and profile mutation.
// ES, Mail, and GCS are optional; side effects on them are best-effort and
// skipped when unconfigured.
type UserService struct {
	Repo          repo.UserRepository
	Logger        *logrus.Logger
	ES            *elasticsearch.Client
	ESDonorsIndex string
	Mail          *helpers.RabbitPublisher
	GCS           *storage.Client
	GCSBucket     string
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, mail *helpers.RabbitPublisher, gcs *storage.Client, gcsBucket string) *UserService {
	return &UserService{
		Repo:          r,
		Logger:        logger,
		ES:            es,
		ESDonorsIndex: esIndex,
		Mail:          mail,
		GCS:           gcs,
		GCSBucket:     gcsBucket,
	}
}

// Register inserts the user unless the email is already known. Registration
// is idempotent on email: an existing account returns ErrUserExists and the
// store gains no new document.
func (s *UserService) Register(ctx context.Context, u *entity.User) (repo.InsertResult, error) {
	existing, err := s.Repo.FindByEmail(ctx, u.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return repo.InsertResult{}, err
	}
	if existing != nil {
		return repo.InsertResult{}, ErrUserExists
	}
	if u.Role == "" {
		u.Role = entity.RoleDonor
	}
	if u.Status == "" {
		u.Status = entity.StatusActive
	}
	res, err := s.Repo.Insert(ctx, u)
	if err != nil {
		return repo.InsertResult{}, err
	}
	if oid, perr := primitive.ObjectIDFromHex(res.InsertedID); perr == nil {
		u.ID = oid
	}

	_ = s.indexDonor(ctx, u)
	s.publishWelcome(ctx, u)
	return res, nil
}

func (s *UserService) List(ctx context.Context, status string) ([]entity.User, error) {
	return s.Repo.List(ctx, status)
}

// SearchDonors applies the exact-match filters with AND semantics; empty
// fields are ignored.
func (s *UserService) SearchDonors(ctx context.Context, f repo.DonorFilter) ([]entity.User, error) {
	return s.Repo.SearchDonors(ctx, f)
}

// FindByEmail returns the matching users as a list of zero or one records.
func (s *UserService) FindByEmail(ctx context.Context, email string) ([]entity.User, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return []entity.User{}, nil
		}
		return nil, err
	}
	return []entity.User{*u}, nil
}

// RoleOf returns the stored role, defaulting to donor when unset.
func (s *UserService) RoleOf(ctx context.Context, email string) (string, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return u.RoleOrDefault(), nil
}

// Upsert replaces the given fields, creating the document if absent.
func (s *UserService) Upsert(ctx context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	res, err := s.Repo.UpsertByID(ctx, id, fields)
	if err != nil {
		return repo.UpdateResult{}, err
	}
	_ = s.indexFields(ctx, id, fields)
	return res, nil
}

// Patch merges the given fields into an existing document.
func (s *UserService) Patch(ctx context.Context, id string, fields map[string]any) (repo.UpdateResult, error) {
	return s.Repo.PatchByID(ctx, id, fields)
}

// UploadAvatar stores the image in GCS and patches the caller's avatar URL.
func (s *UserService) UploadAvatar(ctx context.Context, email string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", u.ID.Hex(), uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if _, err := s.Repo.PatchByID(ctx, u.ID.Hex(), map[string]any{"avatarUrl": url}); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) publishWelcome(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Name": u.Name, "Email": u.Email},
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome mail publish failed")
	}
}

func (s *UserService) indexDonor(ctx context.Context, u *entity.User) error {
	doc := map[string]any{
		"name":       u.Name,
		"email":      u.Email,
		"bloodGroup": u.BloodGroup,
		"district":   u.District,
		"upazila":    u.Upazila,
	}
	return s.indexFields(ctx, u.ID.Hex(), doc)
}

func (s *UserService) indexFields(ctx context.Context, id string, doc map[string]any) error {
	if s.ES == nil || s.ESDonorsIndex == "" {
		return nil
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESDonorsIndex, DocumentID: id, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("donor_id", id).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("donor_id", id).Warn("es index response error")
	}
	return nil
}

// SearchDonorsText performs a free-text multi_match over the donor index.
// Returns an empty result set when Elasticsearch is not configured.
func (s *UserService) SearchDonorsText(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESDonorsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "email", "district", "upazila"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESDonorsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
