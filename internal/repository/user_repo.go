package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dc-onecallaway/my-school-app/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// GetByIdentifier 按 username 或 email 查找（登录用）
	GetByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	// ListStudents batch 为空时返回全部学生，名册顺序为存储返回顺序
	ListStudents(ctx context.Context, batch string) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	// DeleteCascade 在单个事务内删除学生及其衍生数据：
	// 成绩按 username 清除、考勤条目从全部记录中摘除、最后删除用户本身
	DeleteCascade(ctx context.Context, user *model.User) error
	DistinctBatches(ctx context.Context) ([]string, error)
	CountByBatch(ctx context.Context, batch string) (int64, error)
	CountStudents(ctx context.Context) (int64, error)
}

// userRepo UserRepository 的 MongoDB 实现
type userRepo struct {
	db *mongo.Database
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *mongo.Database) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) users() *mongo.Collection { return r.db.Collection("users") }

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	res, err := r.users().InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var user model.User
	if err := r.users().FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.users().FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.users().FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": identifier},
		bson.M{"email": identifier},
	}}
	var user model.User
	if err := r.users().FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ListStudents(ctx context.Context, batch string) ([]model.User, error) {
	filter := bson.M{"role": model.RoleStudent}
	if batch != "" {
		filter["batch"] = batch
	}

	cursor, err := r.users().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []model.User
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	_, err := r.users().ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	return err
}

func (r *userRepo) DeleteCascade(ctx context.Context, user *model.User) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		// 1. 清除该学生的全部成绩
		if _, err := r.db.Collection("results").DeleteMany(sc,
			bson.M{"studentId": user.Username}); err != nil {
			return nil, err
		}

		// 2. 从所有考勤记录中摘除该学生的条目
		if _, err := r.db.Collection("attendance").UpdateMany(sc,
			bson.M{},
			bson.M{"$pull": bson.M{"records": bson.M{"studentId": user.Username}}}); err != nil {
			return nil, err
		}

		// 3. 删除用户本身
		if _, err := r.users().DeleteOne(sc, bson.M{"_id": user.ID}); err != nil {
			return nil, err
		}

		return nil, nil
	})
	return err
}

func (r *userRepo) DistinctBatches(ctx context.Context) ([]string, error) {
	values, err := r.users().Distinct(ctx, "batch", bson.M{"role": model.RoleStudent})
	if err != nil {
		return nil, err
	}

	batches := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			batches = append(batches, s)
		}
	}
	return batches, nil
}

func (r *userRepo) CountByBatch(ctx context.Context, batch string) (int64, error) {
	return r.users().CountDocuments(ctx, bson.M{"role": model.RoleStudent, "batch": batch})
}

func (r *userRepo) CountStudents(ctx context.Context) (int64, error) {
	return r.users().CountDocuments(ctx, bson.M{"role": model.RoleStudent})
}
