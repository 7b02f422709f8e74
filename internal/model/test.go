package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Test 测验安排文档 — 集合 tests
type Test struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Batch   string             `bson:"batch"         json:"batch"`
	Subject string             `bson:"subject"       json:"subject"`
	Topic   string             `bson:"topic"         json:"topic"`
	Date    string             `bson:"date"          json:"date"`
	Time    string             `bson:"time"          json:"time"`
}
