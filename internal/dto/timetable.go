package dto

// ── 课表模块 DTO ──

// UpsertTimetableRequest 发布/覆盖班次课表请求
type UpsertTimetableRequest struct {
	Batch    string `json:"batch"     binding:"required"`
	ImageURL string `json:"image_url" binding:"required"`
	Notes    string `json:"notes"`
}
