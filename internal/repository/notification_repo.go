package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dc-onecallaway/my-school-app/internal/model"
)

// notificationListLimit 通知列表单次返回上限
const notificationListLimit = 10

// NotificationRepository 站内通知数据访问接口
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	// ListForTargets 返回面向 ALL、指定班次或指定用户的最新通知（时间倒序，最多 10 条）
	ListForTargets(ctx context.Context, batch, username string) ([]model.Notification, error)
}

// notificationRepo NotificationRepository 的 MongoDB 实现
type notificationRepo struct {
	col *mongo.Collection
}

// NewNotificationRepo 创建 NotificationRepository 实例
func NewNotificationRepo(db *mongo.Database) NotificationRepository {
	return &notificationRepo{col: db.Collection("notifications")}
}

func (r *notificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	res, err := r.col.InsertOne(ctx, notification)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		notification.ID = oid
	}
	return nil
}

func (r *notificationRepo) ListForTargets(ctx context.Context, batch, username string) ([]model.Notification, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"target": model.TargetAll},
		bson.M{"target": batch},
		bson.M{"target": username},
	}}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(notificationListLimit)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
