package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dc-onecallaway/my-school-app/internal/service"
	"github.com/dc-onecallaway/my-school-app/pkg/response"
)

// NotificationHandler 站内通知 HTTP 处理器
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler 创建 NotificationHandler
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// List 当前用户可见的最新通知（面向 ALL、本班次或本人）
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	username, ok := MustGetUsername(c)
	if !ok {
		return
	}

	notifications, err := h.notificationSvc.List(c.Request.Context(), GetBatch(c), username)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, notifications)
}
