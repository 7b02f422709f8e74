package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Timetable 课表分发文档 — 集合 timetables
// 每班次一张，以 batch 为键做整体覆盖更新
type Timetable struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Batch    string             `bson:"batch"         json:"batch"`
	ImageURL string             `bson:"imageUrl"      json:"image_url"`
	Notes    string             `bson:"notes"         json:"notes"`
}
