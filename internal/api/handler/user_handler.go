package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/service"
	"github.com/dc-onecallaway/my-school-app/pkg/response"
)

// UserHandler 学生目录 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListStudents 学生列表
// GET /api/v1/students?batch=
func (h *UserHandler) ListStudents(c *gin.Context) {
	students, err := h.userSvc.ListStudents(c.Request.Context(), c.Query("batch"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, students)
}

// GetStudent 学生详情
// GET /api/v1/students/:id
func (h *UserHandler) GetStudent(c *gin.Context) {
	student, err := h.userSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, student)
}

// CreateStudent 学生注册（管理员）
// POST /api/v1/students
func (h *UserHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	student, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameExists):
			response.BadRequest(c, 20002, "学号已存在")
		case errors.Is(err, service.ErrEmailExists):
			response.BadRequest(c, 20003, "邮箱已存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, student)
}

// UpdateStudent 更新学生资料（管理员）
// PUT /api/v1/students/:id
func (h *UserHandler) UpdateStudent(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// DeleteStudent 删除学生（级联清除成绩与考勤条目）
// DELETE /api/v1/students/:id
func (h *UserHandler) DeleteStudent(c *gin.Context) {
	if err := h.userSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ListBatches 班次汇总（名称 + 学生数）
// GET /api/v1/batches
func (h *UserHandler) ListBatches(c *gin.Context) {
	batches, err := h.userSvc.ListBatches(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, batches)
}
