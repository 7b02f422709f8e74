package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/service"
	"github.com/dc-onecallaway/my-school-app/pkg/response"
)

// ClassHandler 课程安排 HTTP 处理器
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler 创建 ClassHandler
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// Create 安排课程（管理员）
// POST /api/v1/classes
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	class, err := h.classSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, class)
}

// List 课程列表；学生视角限定为本班次
// GET /api/v1/classes?batch=
func (h *ClassHandler) List(c *gin.Context) {
	batch := c.Query("batch")

	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	if role != model.RoleAdmin {
		batch = GetBatch(c)
	}

	classes, err := h.classSvc.List(c.Request.Context(), batch)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, classes)
}

// Delete 删除课程（管理员）
// DELETE /api/v1/classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	if err := h.classSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
