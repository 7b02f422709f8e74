package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/service"
	apperrors "github.com/dc-onecallaway/my-school-app/pkg/errors"
	"github.com/dc-onecallaway/my-school-app/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// FetchDayView 考勤日视图（名册 + 已存记录合并）
// POST /api/v1/attendance/fetch
func (h *AttendanceHandler) FetchDayView(c *gin.Context) {
	var req dto.FetchAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	view, err := h.attendanceSvc.BuildDayView(c.Request.Context(), req.Batch, req.Date)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, view)
}

// Commit 提交考勤（整体覆盖当日记录）
// POST /api/v1/attendance
func (h *AttendanceHandler) Commit(c *gin.Context) {
	var req dto.CommitAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.attendanceSvc.CommitDayView(c.Request.Context(), &req); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// Report 出勤/缺勤名单报表
// GET /api/v1/attendance/report?batch=&date=
func (h *AttendanceHandler) Report(c *gin.Context) {
	report, err := h.attendanceSvc.BuildReport(c.Request.Context(), c.Query("batch"), c.Query("date"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, report)
}

// StudentHistory 学生个人考勤历史
// GET /api/v1/attendance/students/:studentId
func (h *AttendanceHandler) StudentHistory(c *gin.Context) {
	studentID := c.Param("studentId")

	// 学生只能查看自己的历史
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

	history, err := h.attendanceSvc.StudentHistory(c.Request.Context(), studentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, history)
}

func (h *AttendanceHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		response.BadRequest(c, 10001, apperrors.ErrValidation.Error())
	case errors.Is(err, apperrors.ErrEmptyRoster):
		response.NotFound(c, 30001, apperrors.ErrEmptyRoster.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, 30002, apperrors.ErrNotFound.Error())
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		response.ServiceUnavailable(c)
	default:
		response.InternalError(c)
	}
}
