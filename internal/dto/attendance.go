package dto

// ── 考勤模块 DTO ──

// FetchAttendanceRequest 考勤日视图请求
type FetchAttendanceRequest struct {
	Batch string `json:"batch" binding:"required"`
	Date  string `json:"date"  binding:"required"`
}

// DayViewEntry 对账后的单个学生视图条目
type DayViewEntry struct {
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Status    string `json:"status"`
}

// DayViewResponse 考勤日视图响应
// 回显请求的 batch/date，调用方必须以响应自带的键为准，避免乱序完成时
// 把旧班次的名册展示在新日期标签下
type DayViewResponse struct {
	Batch   string         `json:"batch"`
	Date    string         `json:"date"`
	Entries []DayViewEntry `json:"entries"`
}

// CommitAttendanceRequest 考勤提交请求
// records 需覆盖完整名册；不足的条目会从持久化记录中静默丢失
type CommitAttendanceRequest struct {
	Batch   string        `json:"batch"   binding:"required"`
	Date    string        `json:"date"    binding:"required"`
	Records []CommitEntry `json:"records" binding:"required,dive"`
}

// CommitEntry 提交的单个学生状态
type CommitEntry struct {
	StudentID string `json:"student_id" binding:"required"`
	Status    string `json:"status"     binding:"required"`
}

// AttendanceReport 出勤/缺勤名单报表
type AttendanceReport struct {
	Batch   string   `json:"batch"`
	Date    string   `json:"date"`
	Present []string `json:"present"`
	Absent  []string `json:"absent"`
}

// StudentAttendanceEntry 学生个人考勤历史条目
type StudentAttendanceEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// StudentAttendanceResponse 学生个人考勤历史 + 出勤率
type StudentAttendanceResponse struct {
	StudentID  string                   `json:"student_id"`
	Entries    []StudentAttendanceEntry `json:"entries"`
	Percentage int                      `json:"percentage"` // 四舍五入的出勤百分比
}
