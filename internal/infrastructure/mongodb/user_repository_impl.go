package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
	"github.com/donorhive/donorhive-server/internal/domain/repository"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(UsersCollection)}
}

func (r *UserRepository) Insert(ctx context.Context, u *entity.User) (repository.InsertResult, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return repository.InsertResult{}, err
	}
	return insertResult(res), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context, status string) ([]entity.User, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	users := []entity.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) SearchDonors(ctx context.Context, f repository.DonorFilter) ([]entity.User, error) {
	filter := bson.M{}
	if f.BloodGroup != "" {
		filter["bloodGroup"] = f.BloodGroup
	}
	if f.District != "" {
		filter["district"] = f.District
	}
	if f.Upazila != "" {
		filter["upazila"] = f.Upazila
	}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	donors := []entity.User{}
	if err := cur.All(ctx, &donors); err != nil {
		return nil, err
	}
	return donors, nil
}

func (r *UserRepository) UpsertByID(ctx context.Context, id string, fields map[string]any) (repository.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return updateResult(res), nil
}

func (r *UserRepository) PatchByID(ctx context.Context, id string, fields map[string]any) (repository.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return updateResult(res), nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"role": role})
}

var _ repository.UserRepository = (*UserRepository)(nil)
