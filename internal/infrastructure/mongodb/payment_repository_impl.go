package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/donorhive/donorhive-server/internal/domain/entity"
	"github.com/donorhive/donorhive-server/internal/domain/repository"
)

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(PaymentsCollection)}
}

func (r *PaymentRepository) Insert(ctx context.Context, p *entity.Payment) (repository.InsertResult, error) {
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return repository.InsertResult{}, err
	}
	return insertResult(res), nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]entity.Payment, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	payments := []entity.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// TotalFunding coerces the stored price text to a double and sums it.
// Unparseable prices count as 0 rather than failing the aggregation.
func (r *PaymentRepository) TotalFunding(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{
				{Key: "$sum", Value: bson.D{
					{Key: "$convert", Value: bson.D{
						{Key: "input", Value: "$price"},
						{Key: "to", Value: "double"},
						{Key: "onError", Value: 0},
						{Key: "onNull", Value: 0},
					}},
				}},
			}},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var out []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)
