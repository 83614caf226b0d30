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

type DonationRequestRepository struct {
	coll *mongo.Collection
}

func NewDonationRequestRepository(db *mongo.Database) *DonationRequestRepository {
	return &DonationRequestRepository{coll: db.Collection(RequestsCollection)}
}

func (r *DonationRequestRepository) Insert(ctx context.Context, dr *entity.DonationRequest) (repository.InsertResult, error) {
	if dr.CreatedAt.IsZero() {
		dr.CreatedAt = time.Now().UTC()
	}
	res, err := r.coll.InsertOne(ctx, dr)
	if err != nil {
		return repository.InsertResult{}, err
	}
	return insertResult(res), nil
}

func (r *DonationRequestRepository) List(ctx context.Context, status string) ([]entity.DonationRequest, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter)
}

func (r *DonationRequestRepository) ListByRequester(ctx context.Context, email, status string) ([]entity.DonationRequest, error) {
	filter := bson.M{"requesterEmail": email}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter)
}

func (r *DonationRequestRepository) find(ctx context.Context, filter bson.M) ([]entity.DonationRequest, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	requests := []entity.DonationRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *DonationRequestRepository) FindByID(ctx context.Context, id string) (*entity.DonationRequest, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	dr := &entity.DonationRequest{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(dr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return dr, nil
}

func (r *DonationRequestRepository) UpsertByID(ctx context.Context, id string, fields map[string]any) (repository.UpdateResult, error) {
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

func (r *DonationRequestRepository) PatchByID(ctx context.Context, id string, fields map[string]any) (repository.UpdateResult, error) {
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

// DeleteByID filters on the extracted id only.
func (r *DonationRequestRepository) DeleteByID(ctx context.Context, id string) (repository.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return repository.DeleteResult{}, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return repository.DeleteResult{}, err
	}
	return repository.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *DonationRequestRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

var _ repository.DonationRequestRepository = (*DonationRequestRepository)(nil)
