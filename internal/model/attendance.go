package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// 考勤状态取值
// 报表分类时仅精确等于 StatusPresent 计入出勤，其余一律计入缺勤
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Attendance 考勤记录文档 — 集合 attendance
// 以 (batch, date) 为键，每班次每天至多一条；date 为 "YYYY-MM-DD" 字符串
type Attendance struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Batch   string             `bson:"batch"         json:"batch"`
	Date    string             `bson:"date"          json:"date"`
	Records []AttendanceEntry  `bson:"records"       json:"records"`
}

// AttendanceEntry 单个学生的考勤条目
// studentId 存的是学生 username；同一记录内可能出现重复条目，查找时首个匹配生效
type AttendanceEntry struct {
	StudentID string `bson:"studentId" json:"student_id"`
	Status    string `bson:"status"    json:"status"`
}

// FindStatus 返回首个匹配 studentID 的状态（区分大小写精确匹配）
func (a *Attendance) FindStatus(studentID string) (string, bool) {
	for _, r := range a.Records {
		if r.StudentID == studentID {
			return r.Status, true
		}
	}
	return "", false
}
