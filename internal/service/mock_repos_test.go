package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/repository"
)

// 手写内存 mock，行为与 mongo 实现对齐：
// 未命中统一返回 mongo.ErrNoDocuments，err 字段可注入存储故障

// ── users ──

type mockUserRepo struct {
	users      []*model.User
	err        error
	attendance *mockAttendanceRepo // DeleteCascade 摘除考勤条目用
	results    *mockResultRepo     // DeleteCascade 清除成绩用
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users = append(m.users, user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) GetByIdentifier(_ context.Context, identifier string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Username == identifier || (u.Email != "" && u.Email == identifier) {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) ListStudents(_ context.Context, batch string) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var students []model.User
	for _, u := range m.users {
		if u.Role != model.RoleStudent {
			continue
		}
		if batch != "" && u.Batch != batch {
			continue
		}
		students = append(students, *u)
	}
	return students, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if m.err != nil {
		return m.err
	}
	for i, u := range m.users {
		if u.ID == user.ID {
			m.users[i] = user
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (m *mockUserRepo) DeleteCascade(_ context.Context, user *model.User) error {
	if m.err != nil {
		return m.err
	}
	if m.results != nil {
		kept := m.results.results[:0]
		for _, r := range m.results.results {
			if r.StudentID != user.Username {
				kept = append(kept, r)
			}
		}
		m.results.results = kept
	}
	if m.attendance != nil {
		for _, record := range m.attendance.records {
			kept := record.Records[:0]
			for _, entry := range record.Records {
				if entry.StudentID != user.Username {
					kept = append(kept, entry)
				}
			}
			record.Records = kept
		}
	}
	for i, u := range m.users {
		if u.ID == user.ID {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (m *mockUserRepo) DistinctBatches(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	seen := make(map[string]bool)
	var batches []string
	for _, u := range m.users {
		if u.Role == model.RoleStudent && u.Batch != "" && !seen[u.Batch] {
			seen[u.Batch] = true
			batches = append(batches, u.Batch)
		}
	}
	return batches, nil
}

func (m *mockUserRepo) CountByBatch(_ context.Context, batch string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var count int64
	for _, u := range m.users {
		if u.Role == model.RoleStudent && u.Batch == batch {
			count++
		}
	}
	return count, nil
}

func (m *mockUserRepo) CountStudents(_ context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var count int64
	for _, u := range m.users {
		if u.Role == model.RoleStudent {
			count++
		}
	}
	return count, nil
}

// ── attendance ──

type mockAttendanceRepo struct {
	records map[string]*model.Attendance // key: batch|date
	err     error
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.Attendance)}
}

func attendanceKey(batch, date string) string { return batch + "|" + date }

func (m *mockAttendanceRepo) GetByBatchDate(_ context.Context, batch, date string) (*model.Attendance, error) {
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[attendanceKey(batch, date)]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return record, nil
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, batch, date string, records []model.AttendanceEntry) error {
	if m.err != nil {
		return m.err
	}
	m.records[attendanceKey(batch, date)] = &model.Attendance{
		Batch:   batch,
		Date:    date,
		Records: records,
	}
	return nil
}

func (m *mockAttendanceRepo) ListByStudent(_ context.Context, studentID string) ([]model.Attendance, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []model.Attendance
	for _, record := range m.records {
		if _, ok := record.FindStatus(studentID); ok {
			result = append(result, *record)
		}
	}
	return result, nil
}

// ── results ──

type mockResultRepo struct {
	results []*model.Result
	err     error
}

func (m *mockResultRepo) Create(_ context.Context, result *model.Result) error {
	if m.err != nil {
		return m.err
	}
	if result.ID.IsZero() {
		result.ID = primitive.NewObjectID()
	}
	m.results = append(m.results, result)
	return nil
}

func (m *mockResultRepo) GetByID(_ context.Context, id string) (*model.Result, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.results {
		if r.ID.Hex() == id {
			return r, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockResultRepo) ListAll(_ context.Context) ([]model.Result, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.Result, 0, len(m.results))
	for _, r := range m.results {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockResultRepo) ListByStudent(_ context.Context, studentID string) ([]model.Result, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Result
	for _, r := range m.results {
		if r.StudentID == studentID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockResultRepo) Update(_ context.Context, result *model.Result) error {
	if m.err != nil {
		return m.err
	}
	for i, r := range m.results {
		if r.ID == result.ID {
			m.results[i] = result
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (m *mockResultRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for i, r := range m.results {
		if r.ID.Hex() == id {
			m.results = append(m.results[:i], m.results[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (m *mockResultRepo) Count(_ context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.results)), nil
}

// ── announcements ──

type mockAnnouncementRepo struct {
	announcements []*model.Announcement
	err           error
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	if m.err != nil {
		return m.err
	}
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	m.announcements = append(m.announcements, a)
	return nil
}

func (m *mockAnnouncementRepo) List(_ context.Context, batch string) ([]model.Announcement, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Announcement
	for _, a := range m.announcements {
		if batch == "" || a.TargetBatch == model.TargetAll || a.TargetBatch == batch {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for i, a := range m.announcements {
		if a.ID.Hex() == id {
			m.announcements = append(m.announcements[:i], m.announcements[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// ── tests ──

type mockTestRepo struct {
	tests []*model.Test
	err   error
}

func (m *mockTestRepo) Create(_ context.Context, t *model.Test) error {
	if m.err != nil {
		return m.err
	}
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	m.tests = append(m.tests, t)
	return nil
}

func (m *mockTestRepo) List(_ context.Context, batch string) ([]model.Test, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Test
	for _, t := range m.tests {
		if batch == "" || t.Batch == batch {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTestRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for i, t := range m.tests {
		if t.ID.Hex() == id {
			m.tests = append(m.tests[:i], m.tests[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (m *mockTestRepo) Count(_ context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.tests)), nil
}

// ── class schedules ──

type mockClassScheduleRepo struct {
	classes []*model.ClassSchedule
	err     error
}

func (m *mockClassScheduleRepo) Create(_ context.Context, c *model.ClassSchedule) error {
	if m.err != nil {
		return m.err
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	m.classes = append(m.classes, c)
	return nil
}

func (m *mockClassScheduleRepo) List(_ context.Context, batch string) ([]model.ClassSchedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.ClassSchedule
	for _, c := range m.classes {
		if batch == "" || c.Batch == batch {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockClassScheduleRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for i, c := range m.classes {
		if c.ID.Hex() == id {
			m.classes = append(m.classes[:i], m.classes[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// ── timetables ──

type mockTimetableRepo struct {
	timetables map[string]*model.Timetable
	err        error
}

func newMockTimetableRepo() *mockTimetableRepo {
	return &mockTimetableRepo{timetables: make(map[string]*model.Timetable)}
}

func (m *mockTimetableRepo) Upsert(_ context.Context, t *model.Timetable) error {
	if m.err != nil {
		return m.err
	}
	m.timetables[t.Batch] = t
	return nil
}

func (m *mockTimetableRepo) GetByBatch(_ context.Context, batch string) (*model.Timetable, error) {
	if m.err != nil {
		return nil, m.err
	}
	t, ok := m.timetables[batch]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return t, nil
}

// ── notifications ──

type mockNotificationRepo struct {
	notifications []*model.Notification
	err           error
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	if m.err != nil {
		return m.err
	}
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *mockNotificationRepo) ListForTargets(_ context.Context, batch, username string) ([]model.Notification, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Notification
	for _, n := range m.notifications {
		if n.Target == model.TargetAll || n.Target == batch || n.Target == username {
			out = append(out, *n)
		}
	}
	return out, nil
}

// ── 测试装配 ──

type testRepos struct {
	user          *mockUserRepo
	attendance    *mockAttendanceRepo
	result        *mockResultRepo
	announcement  *mockAnnouncementRepo
	test          *mockTestRepo
	classSchedule *mockClassScheduleRepo
	timetable     *mockTimetableRepo
	notification  *mockNotificationRepo
}

func newTestRepos() (*testRepos, *repository.Repository) {
	mocks := &testRepos{
		user:          &mockUserRepo{},
		attendance:    newMockAttendanceRepo(),
		result:        &mockResultRepo{},
		announcement:  &mockAnnouncementRepo{},
		test:          &mockTestRepo{},
		classSchedule: &mockClassScheduleRepo{},
		timetable:     newMockTimetableRepo(),
		notification:  &mockNotificationRepo{},
	}
	mocks.user.attendance = mocks.attendance
	mocks.user.results = mocks.result

	repo := &repository.Repository{
		User:          mocks.user,
		Attendance:    mocks.attendance,
		Result:        mocks.result,
		Announcement:  mocks.announcement,
		Test:          mocks.test,
		ClassSchedule: mocks.classSchedule,
		Timetable:     mocks.timetable,
		Notification:  mocks.notification,
	}
	return mocks, repo
}

// seedStudents 生成 n 个学生：s1..sn / 学生一..学生n
func seedStudents(repo *mockUserRepo, batch string, n int) {
	for i := 1; i <= n; i++ {
		repo.users = append(repo.users, &model.User{
			ID:       primitive.NewObjectID(),
			Username: fmt.Sprintf("s%d", i),
			Password: "123456",
			Role:     model.RoleStudent,
			Name:     fmt.Sprintf("学生%d", i),
			Batch:    batch,
			Joined:   time.Now(),
		})
	}
}
