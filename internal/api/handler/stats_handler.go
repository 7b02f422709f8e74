package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dc-onecallaway/my-school-app/internal/service"
	"github.com/dc-onecallaway/my-school-app/pkg/response"
)

// StatsHandler 管理端仪表盘统计 HTTP 处理器
type StatsHandler struct {
	statsSvc service.StatsService
}

// NewStatsHandler 创建 StatsHandler
func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// Summary 汇总计数（学生数/成绩数/测验数）
// GET /api/v1/stats
func (h *StatsHandler) Summary(c *gin.Context) {
	stats, err := h.statsSvc.Summary(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, stats)
}
