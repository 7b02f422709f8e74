package dto

// ── 统计模块 DTO ──

// StatsResponse 管理端仪表盘汇总计数
type StatsResponse struct {
	StudentCount int64 `json:"student_count"`
	ResultCount  int64 `json:"result_count"`
	TestCount    int64 `json:"test_count"`
}
