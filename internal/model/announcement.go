package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TargetAll 通告/通知面向全部班次的目标值
const TargetAll = "ALL"

// Announcement 通告文档 — 集合 announcements
// targetBatch 为 "ALL" 或具体班次标签
type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title"         json:"title"`
	Message     string             `bson:"message"       json:"message"`
	TargetBatch string             `bson:"targetBatch"   json:"target_batch"`
	Date        time.Time          `bson:"date"          json:"date"`
}
