package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/service"
	"github.com/dc-onecallaway/my-school-app/pkg/response"
)

// ResultHandler 成绩模块 HTTP 处理器
type ResultHandler struct {
	resultSvc service.ResultService
}

// NewResultHandler 创建 ResultHandler
func NewResultHandler(resultSvc service.ResultService) *ResultHandler {
	return &ResultHandler{resultSvc: resultSvc}
}

// Create 录入成绩（管理员）
// POST /api/v1/results
func (h *ResultHandler) Create(c *gin.Context) {
	var req dto.CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.resultSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListAll 全部成绩（管理员）
// GET /api/v1/results
func (h *ResultHandler) ListAll(c *gin.Context) {
	results, err := h.resultSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, results)
}

// GetByID 成绩详情
// GET /api/v1/results/:id
func (h *ResultHandler) GetByID(c *gin.Context) {
	result, err := h.resultSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			response.NotFound(c, 40001, "成绩不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListByStudent 某学生的全部成绩
// GET /api/v1/results/student/:studentId
func (h *ResultHandler) ListByStudent(c *gin.Context) {
	studentID := c.Param("studentId")

	// 学生只能查看自己的成绩
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	if role != model.RoleAdmin {
		username, ok := MustGetUsername(c)
		if !ok {
			return
		}
		if username != studentID {
			response.Forbidden(c, 10003, "无权限访问")
			return
		}
	}

	results, err := h.resultSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, results)
}

// Update 修改成绩（管理员）
// PUT /api/v1/results/:id
func (h *ResultHandler) Update(c *gin.Context) {
	var req dto.UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.resultSvc.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			response.NotFound(c, 40001, "成绩不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Delete 删除成绩（管理员）
// DELETE /api/v1/results/:id
func (h *ResultHandler) Delete(c *gin.Context) {
	if err := h.resultSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
