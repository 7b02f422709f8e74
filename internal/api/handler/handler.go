package handler

import "github.com/dc-onecallaway/my-school-app/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Attendance   *AttendanceHandler
	Result       *ResultHandler
	Announcement *AnnouncementHandler
	Test         *TestHandler
	Class        *ClassHandler
	Timetable    *TimetableHandler
	Notification *NotificationHandler
	Stats        *StatsHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Attendance:   NewAttendanceHandler(svc.Attendance),
		Result:       NewResultHandler(svc.Result),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Test:         NewTestHandler(svc.Test),
		Class:        NewClassHandler(svc.Class),
		Timetable:    NewTimetableHandler(svc.Timetable),
		Notification: NewNotificationHandler(svc.Notification),
		Stats:        NewStatsHandler(svc.Stats),
		Export:       NewExportHandler(svc.Export),
	}
}
