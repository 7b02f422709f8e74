package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/service"
	apperrors "github.com/dc-onecallaway/my-school-app/pkg/errors"
	"github.com/dc-onecallaway/my-school-app/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportAttendanceReport 导出考勤报表 (.xlsx)
// GET /api/v1/export/attendance?batch=xxx&date=YYYY-MM-DD
func (h *ExportHandler) ExportAttendanceReport(c *gin.Context) {
	batch := c.Query("batch")
	date := c.Query("date")
	if batch == "" || date == "" {
		response.BadRequest(c, 10001, "batch 和 date 不能为空")
		return
	}

	buf, filename, err := h.exportSvc.AttendanceReportXLSX(c.Request.Context(), batch, date)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportClassScheduleICS 导出课程安排 (.ics)；学生只能导出本班次
// GET /api/v1/classes/ics?batch=xxx
func (h *ExportHandler) ExportClassScheduleICS(c *gin.Context) {
	batch := c.Query("batch")

	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	if role != model.RoleAdmin {
		batch = GetBatch(c)
	}
	if batch == "" {
		response.BadRequest(c, 10001, "batch 不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ClassScheduleICS(c.Request.Context(), batch)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		response.BadRequest(c, 10001, apperrors.ErrValidation.Error())
	case errors.Is(err, apperrors.ErrEmptyRoster):
		response.NotFound(c, 30001, apperrors.ErrEmptyRoster.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, 30002, apperrors.ErrNotFound.Error())
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		response.ServiceUnavailable(c)
	case errors.Is(err, service.ErrExportNoClasses):
		response.NotFound(c, 16101, "该班次暂无课程安排")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
