package dto

// ── 测验与课程安排 DTO ──

// CreateTestRequest 安排测验请求
type CreateTestRequest struct {
	Batch   string `json:"batch"   binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Topic   string `json:"topic"`
	Date    string `json:"date"    binding:"required"`
	Time    string `json:"time"`
}

// CreateClassRequest 安排课程请求
type CreateClassRequest struct {
	Batch   string `json:"batch"   binding:"required"`
	Day     string `json:"day"     binding:"required"`
	Time    string `json:"time"    binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Teacher string `json:"teacher"`
}
