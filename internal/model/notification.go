package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification 站内通知文档 — 集合 notifications
// target 为 "ALL"、班次标签或具体 username
type Notification struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Target  string             `bson:"target"        json:"target"`
	Message string             `bson:"message"       json:"message"`
	Type    string             `bson:"type"          json:"type"` // "info" | "success"
	Date    time.Time          `bson:"date"          json:"date"`
}
