package service

import (
	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/config"
	"github.com/dc-onecallaway/my-school-app/internal/repository"
	"github.com/dc-onecallaway/my-school-app/pkg/jwt"
	"github.com/dc-onecallaway/my-school-app/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	User         UserService
	Attendance   AttendanceService
	Result       ResultService
	Announcement AnnouncementService
	Test         TestService
	Class        ClassService
	Timetable    TimetableService
	Notification NotificationService
	Stats        StatsService
	Export       ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	attendanceSvc := NewAttendanceService(repo, logger)
	classSvc := NewClassService(repo, logger)

	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:         NewUserService(repo, logger),
		Attendance:   attendanceSvc,
		Result:       NewResultService(repo, logger),
		Announcement: NewAnnouncementService(repo, logger),
		Test:         NewTestService(repo, logger),
		Class:        classSvc,
		Timetable:    NewTimetableService(repo, logger),
		Notification: NewNotificationService(repo),
		Stats:        NewStatsService(repo, logger),
		Export:       NewExportService(attendanceSvc, classSvc, logger),
	}
}
