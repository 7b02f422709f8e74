package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dc-onecallaway/my-school-app/internal/model"
)

// ResultRepository 成绩数据访问接口
type ResultRepository interface {
	Create(ctx context.Context, result *model.Result) error
	GetByID(ctx context.Context, id string) (*model.Result, error)
	ListAll(ctx context.Context) ([]model.Result, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Result, error)
	Update(ctx context.Context, result *model.Result) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// resultRepo ResultRepository 的 MongoDB 实现
type resultRepo struct {
	col *mongo.Collection
}

// NewResultRepo 创建 ResultRepository 实例
func NewResultRepo(db *mongo.Database) ResultRepository {
	return &resultRepo{col: db.Collection("results")}
}

func (r *resultRepo) Create(ctx context.Context, result *model.Result) error {
	res, err := r.col.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid
	}
	return nil
}

func (r *resultRepo) GetByID(ctx context.Context, id string) (*model.Result, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var result model.Result
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepo) ListAll(ctx context.Context) ([]model.Result, error) {
	return r.list(ctx, bson.M{})
}

func (r *resultRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Result, error) {
	return r.list(ctx, bson.M{"studentId": studentID})
}

func (r *resultRepo) list(ctx context.Context, filter bson.M) ([]model.Result, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.Result
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepo) Update(ctx context.Context, result *model.Result) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": result.ID}, result)
	return err
}

func (r *resultRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *resultRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
