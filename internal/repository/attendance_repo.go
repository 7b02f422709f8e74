package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dc-onecallaway/my-school-app/internal/model"
)

// AttendanceRepository 考勤记录数据访问接口
type AttendanceRepository interface {
	// GetByBatchDate 读取 (batch, date) 对应的唯一记录；不存在返回 mongo.ErrNoDocuments
	GetByBatchDate(ctx context.Context, batch, date string) (*model.Attendance, error)
	// Upsert 整体覆盖 (batch, date) 的条目列表；不存在则新建（last-write-wins）
	Upsert(ctx context.Context, batch, date string, records []model.AttendanceEntry) error
	// ListByStudent 返回包含该学生条目的全部记录
	ListByStudent(ctx context.Context, studentID string) ([]model.Attendance, error)
}

// attendanceRepo AttendanceRepository 的 MongoDB 实现
type attendanceRepo struct {
	col *mongo.Collection
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *mongo.Database) AttendanceRepository {
	return &attendanceRepo{col: db.Collection("attendance")}
}

func (r *attendanceRepo) GetByBatchDate(ctx context.Context, batch, date string) (*model.Attendance, error) {
	var record model.Attendance
	err := r.col.FindOne(ctx, bson.M{"batch": batch, "date": date}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepo) Upsert(ctx context.Context, batch, date string, records []model.AttendanceEntry) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"batch": batch, "date": date},
		bson.M{"$set": bson.M{"records": records}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *attendanceRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Attendance, error) {
	cursor, err := r.col.Find(ctx, bson.M{"records.studentId": studentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []model.Attendance
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
