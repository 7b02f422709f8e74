package repository

import "go.mongodb.org/mongo-driver/mongo"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User          UserRepository
	Attendance    AttendanceRepository
	Result        ResultRepository
	Announcement  AnnouncementRepository
	Test          TestRepository
	ClassSchedule ClassScheduleRepository
	Timetable     TimetableRepository
	Notification  NotificationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		User:          NewUserRepo(db),
		Attendance:    NewAttendanceRepo(db),
		Result:        NewResultRepo(db),
		Announcement:  NewAnnouncementRepo(db),
		Test:          NewTestRepo(db),
		ClassSchedule: NewClassScheduleRepo(db),
		Timetable:     NewTimetableRepo(db),
		Notification:  NewNotificationRepo(db),
	}
}
