package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dc-onecallaway/my-school-app/internal/model"
)

// TimetableRepository 课表数据访问接口
type TimetableRepository interface {
	// Upsert 按 batch 覆盖课表；不存在则新建
	Upsert(ctx context.Context, timetable *model.Timetable) error
	// GetByBatch 不存在返回 mongo.ErrNoDocuments
	GetByBatch(ctx context.Context, batch string) (*model.Timetable, error)
}

// timetableRepo TimetableRepository 的 MongoDB 实现
type timetableRepo struct {
	col *mongo.Collection
}

// NewTimetableRepo 创建 TimetableRepository 实例
func NewTimetableRepo(db *mongo.Database) TimetableRepository {
	return &timetableRepo{col: db.Collection("timetables")}
}

func (r *timetableRepo) Upsert(ctx context.Context, timetable *model.Timetable) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"batch": timetable.Batch},
		bson.M{"$set": bson.M{"imageUrl": timetable.ImageURL, "notes": timetable.Notes}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *timetableRepo) GetByBatch(ctx context.Context, batch string) (*model.Timetable, error) {
	var timetable model.Timetable
	if err := r.col.FindOne(ctx, bson.M{"batch": batch}).Decode(&timetable); err != nil {
		return nil, err
	}
	return &timetable, nil
}
