package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dc-onecallaway/my-school-app/internal/model"
)

// AnnouncementRepository 通告数据访问接口
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	// List batch 为空时返回全部；否则返回面向 ALL 或该班次的通告（时间倒序）
	List(ctx context.Context, batch string) ([]model.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// announcementRepo AnnouncementRepository 的 MongoDB 实现
type announcementRepo struct {
	col *mongo.Collection
}

// NewAnnouncementRepo 创建 AnnouncementRepository 实例
func NewAnnouncementRepo(db *mongo.Database) AnnouncementRepository {
	return &announcementRepo{col: db.Collection("announcements")}
}

func (r *announcementRepo) Create(ctx context.Context, announcement *model.Announcement) error {
	res, err := r.col.InsertOne(ctx, announcement)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		announcement.ID = oid
	}
	return nil
}

func (r *announcementRepo) List(ctx context.Context, batch string) ([]model.Announcement, error) {
	filter := bson.M{}
	if batch != "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"targetBatch": model.TargetAll},
			bson.M{"targetBatch": batch},
		}}
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var announcements []model.Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
