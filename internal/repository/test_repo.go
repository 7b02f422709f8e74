package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dc-onecallaway/my-school-app/internal/model"
)

// TestRepository 测验安排数据访问接口
type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	// List batch 为空时返回全部测验
	List(ctx context.Context, batch string) ([]model.Test, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// testRepo TestRepository 的 MongoDB 实现
type testRepo struct {
	col *mongo.Collection
}

// NewTestRepo 创建 TestRepository 实例
func NewTestRepo(db *mongo.Database) TestRepository {
	return &testRepo{col: db.Collection("tests")}
}

func (r *testRepo) Create(ctx context.Context, test *model.Test) error {
	res, err := r.col.InsertOne(ctx, test)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		test.ID = oid
	}
	return nil
}

func (r *testRepo) List(ctx context.Context, batch string) ([]model.Test, error) {
	filter := bson.M{}
	if batch != "" {
		filter["batch"] = batch
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tests []model.Test
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *testRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
