package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/service"
	"github.com/dc-onecallaway/my-school-app/pkg/response"
)

// TimetableHandler 课表分发 HTTP 处理器
type TimetableHandler struct {
	timetableSvc service.TimetableService
}

// NewTimetableHandler 创建 TimetableHandler
func NewTimetableHandler(timetableSvc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// Upsert 发布/覆盖班次课表（管理员）
// POST /api/v1/timetable
func (h *TimetableHandler) Upsert(c *gin.Context) {
	var req dto.UpsertTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.timetableSvc.Upsert(c.Request.Context(), &req); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// GetByBatch 查询班次课表；学生只能查本班次
// GET /api/v1/timetable/:batch
func (h *TimetableHandler) GetByBatch(c *gin.Context) {
	batch := c.Param("batch")

	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	if role != model.RoleAdmin && batch != GetBatch(c) {
		response.Forbidden(c, 10003, "无权限访问")
		return
	}

	timetable, err := h.timetableSvc.GetByBatch(c.Request.Context(), batch)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, timetable)
}
