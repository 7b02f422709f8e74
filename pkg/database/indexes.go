package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes 启动时创建各集合索引
// CreateMany 幂等：已存在的同名索引不会重复创建
func EnsureIndexes(db *mongo.Database, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// users: username 唯一；email 稀疏唯一（允许缺省）
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "role", Value: 1}, {Key: "batch", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("创建 users 索引失败: %w", err)
	}

	// attendance: (batch, date) 唯一 — 每班次每天至多一条考勤记录
	_, err = db.Collection("attendance").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "batch", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "records.studentId", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("创建 attendance 索引失败: %w", err)
	}

	// timetables: batch 唯一 — 每班次一张课表
	_, err = db.Collection("timetables").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "batch", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("创建 timetables 索引失败: %w", err)
	}

	// results: 按学生查询成绩
	_, err = db.Collection("results").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "studentId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("创建 results 索引失败: %w", err)
	}

	// notifications: 按目标与时间查询
	_, err = db.Collection("notifications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "target", Value: 1}, {Key: "date", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("创建 notifications 索引失败: %w", err)
	}

	logger.Info("MongoDB 索引初始化完成")
	return nil
}
