package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Result 成绩文档 — 集合 results
type Result struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID     string             `bson:"studentId"     json:"student_id"` // 学生 username
	Subject       string             `bson:"subject"       json:"subject"`
	MarksObtained float64            `bson:"marksObtained" json:"marks_obtained"`
	TotalMarks    float64            `bson:"totalMarks"    json:"total_marks"`
	ExamType      string             `bson:"examType"      json:"exam_type"`
	Date          time.Time          `bson:"date"          json:"date"`
}
