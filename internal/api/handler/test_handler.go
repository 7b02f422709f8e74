package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/service"
	"github.com/dc-onecallaway/my-school-app/pkg/response"
)

// TestHandler 测验安排 HTTP 处理器
type TestHandler struct {
	testSvc service.TestService
}

// NewTestHandler 创建 TestHandler
func NewTestHandler(testSvc service.TestService) *TestHandler {
	return &TestHandler{testSvc: testSvc}
}

// Create 安排测验（管理员）
// POST /api/v1/tests
func (h *TestHandler) Create(c *gin.Context) {
	var req dto.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	test, err := h.testSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, test)
}

// List 测验列表；学生视角限定为本班次
// GET /api/v1/tests?batch=
func (h *TestHandler) List(c *gin.Context) {
	batch := c.Query("batch")

	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	if role != model.RoleAdmin {
		batch = GetBatch(c)
	}

	tests, err := h.testSvc.List(c.Request.Context(), batch)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, tests)
}

// Delete 删除测验（管理员）
// DELETE /api/v1/tests/:id
func (h *TestHandler) Delete(c *gin.Context) {
	if err := h.testSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
