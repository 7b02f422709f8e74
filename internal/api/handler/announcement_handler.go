package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/service"
	"github.com/dc-onecallaway/my-school-app/pkg/response"
)

// AnnouncementHandler 通告模块 HTTP 处理器
type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
}

// NewAnnouncementHandler 创建 AnnouncementHandler
func NewAnnouncementHandler(announcementSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc}
}

// Create 发布通告（管理员）
// POST /api/v1/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	announcement, err := h.announcementSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, announcement)
}

// List 通告列表；学生视角限定为 ALL + 本班次
// GET /api/v1/announcements?batch=
func (h *AnnouncementHandler) List(c *gin.Context) {
	batch := c.Query("batch")

	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	if role != model.RoleAdmin {
		batch = GetBatch(c)
	}

	announcements, err := h.announcementSvc.List(c.Request.Context(), batch)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, announcements)
}

// Delete 删除通告（管理员）
// DELETE /api/v1/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.announcementSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
