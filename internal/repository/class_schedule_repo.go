package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dc-onecallaway/my-school-app/internal/model"
)

// ClassScheduleRepository 课程安排数据访问接口
type ClassScheduleRepository interface {
	Create(ctx context.Context, class *model.ClassSchedule) error
	// List batch 为空时返回全部课程安排
	List(ctx context.Context, batch string) ([]model.ClassSchedule, error)
	Delete(ctx context.Context, id string) error
}

// classScheduleRepo ClassScheduleRepository 的 MongoDB 实现
type classScheduleRepo struct {
	col *mongo.Collection
}

// NewClassScheduleRepo 创建 ClassScheduleRepository 实例
func NewClassScheduleRepo(db *mongo.Database) ClassScheduleRepository {
	return &classScheduleRepo{col: db.Collection("class_schedules")}
}

func (r *classScheduleRepo) Create(ctx context.Context, class *model.ClassSchedule) error {
	res, err := r.col.InsertOne(ctx, class)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		class.ID = oid
	}
	return nil
}

func (r *classScheduleRepo) List(ctx context.Context, batch string) ([]model.ClassSchedule, error) {
	filter := bson.M{}
	if batch != "" {
		filter["batch"] = batch
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []model.ClassSchedule
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classScheduleRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
