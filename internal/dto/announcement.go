package dto

// ── 通告模块 DTO ──

// CreateAnnouncementRequest 发布通告请求
// target_batch 为 "ALL" 或具体班次标签
type CreateAnnouncementRequest struct {
	Title       string `json:"title"        binding:"required"`
	Message     string `json:"message"      binding:"required"`
	TargetBatch string `json:"target_batch" binding:"required"`
}
