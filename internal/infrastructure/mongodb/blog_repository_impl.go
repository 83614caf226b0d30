package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
	"github.com/donorhive/donorhive-server/internal/domain/repository"
)

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(BlogsCollection)}
}

func (r *BlogRepository) Insert(ctx context.Context, b *entity.Blog) (repository.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return repository.InsertResult{}, err
	}
	return insertResult(res), nil
}

func (r *BlogRepository) List(ctx context.Context, status string) ([]entity.Blog, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	blogs := []entity.Blog{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*entity.Blog, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	b := &entity.Blog{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *BlogRepository) PatchByID(ctx context.Context, id string, fields map[string]any) (repository.UpdateResult, error) {
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

func (r *BlogRepository) DeleteByID(ctx context.Context, id string) (repository.DeleteResult, error) {
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

var _ repository.BlogRepository = (*BlogRepository)(nil)
