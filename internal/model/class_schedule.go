package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// ClassSchedule 班次课程安排文档 — 集合 class_schedules
type ClassSchedule struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Batch   string             `bson:"batch"         json:"batch"`
	Day     string             `bson:"day"           json:"day"`  // "Monday" … "Sunday"
	Time    string             `bson:"time"          json:"time"` // "HH:MM" 24小时制
	Subject string             `bson:"subject"       json:"subject"`
	Teacher string             `bson:"teacher"       json:"teacher"`
}
