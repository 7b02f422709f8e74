package service

import (
	"context"
	"errors"
	"math"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/repository"
	apperrors "github.com/dc-onecallaway/my-school-app/pkg/errors"
)

// AttendanceService 考勤对账与报表业务接口
//
// 对账（BuildDayView）与报表（BuildReport）对"记录不存在"的处理刻意不同：
//   - 对账视角：无记录 = 尚未点名，名册全员默认 Present
//   - 报表视角：无记录 = 没有可报的事实，返回 ErrNotFound，绝不静默给出空报表
type AttendanceService interface {
	// BuildDayView 名册与已存记录的读取时合并，纯读操作
	BuildDayView(ctx context.Context, batch, date string) (*dto.DayViewResponse, error)
	// CommitDayView 整体覆盖 (batch, date) 的条目集（last-write-wins）
	CommitDayView(ctx context.Context, req *dto.CommitAttendanceRequest) error
	// BuildReport 将已存记录转换为出勤/缺勤名单
	BuildReport(ctx context.Context, batch, date string) (*dto.AttendanceReport, error)
	// StudentHistory 学生个人考勤历史与出勤率
	StudentHistory(ctx context.Context, studentID string) (*dto.StudentAttendanceResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

func (s *attendanceService) BuildDayView(ctx context.Context, batch, date string) (*dto.DayViewResponse, error) {
	if batch == "" || date == "" {
		return nil, apperrors.ErrValidation
	}

	// 1. 取名册（保持存储返回顺序，调用方不得假设按字母序）
	roster, err := s.repo.User.ListStudents(ctx, batch)
	if err != nil {
		s.logger.Error("查询班次名册失败", zap.String("batch", batch), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable
	}
	if len(roster) == 0 {
		return nil, apperrors.ErrEmptyRoster
	}

	// 2. 取当日记录；不存在不是错误，而是"尚无点名决定"
	record, err := s.repo.Attendance.GetByBatchDate(ctx, batch, date)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("查询考勤记录失败",
			zap.String("batch", batch), zap.String("date", date), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable
	}

	// 3. 逐学生合并：有已存条目用其状态（首个匹配生效），否则默认 Present
	entries := make([]dto.DayViewEntry, 0, len(roster))
	for _, student := range roster {
		status := model.StatusPresent
		if record != nil {
			if saved, ok := record.FindStatus(student.Username); ok {
				status = saved
			}
		}
		entries = append(entries, dto.DayViewEntry{
			Name:      student.Name,
			StudentID: student.Username,
			Status:    status,
		})
	}

	// 响应回显请求键：乱序完成的旧请求不会污染新视图
	return &dto.DayViewResponse{Batch: batch, Date: date, Entries: entries}, nil
}

func (s *attendanceService) CommitDayView(ctx context.Context, req *dto.CommitAttendanceRequest) error {
	if req.Batch == "" || req.Date == "" {
		return apperrors.ErrValidation
	}

	records := make([]model.AttendanceEntry, 0, len(req.Records))
	for _, r := range req.Records {
		records = append(records, model.AttendanceEntry{
			StudentID: r.StudentID,
			Status:    r.Status,
		})
	}

	if err := s.repo.Attendance.Upsert(ctx, req.Batch, req.Date, records); err != nil {
		s.logger.Error("保存考勤记录失败",
			zap.String("batch", req.Batch), zap.String("date", req.Date), zap.Error(err))
		return apperrors.ErrStoreUnavailable
	}
	return nil
}

func (s *attendanceService) BuildReport(ctx context.Context, batch, date string) (*dto.AttendanceReport, error) {
	if batch == "" || date == "" {
		return nil, apperrors.ErrValidation
	}

	// 1. 名册用于解析姓名
	roster, err := s.repo.User.ListStudents(ctx, batch)
	if err != nil {
		s.logger.Error("查询班次名册失败", zap.String("batch", batch), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable
	}
	if len(roster) == 0 {
		return nil, apperrors.ErrEmptyRoster
	}

	nameMap := make(map[string]string, len(roster))
	for _, student := range roster {
		nameMap[student.Username] = student.Name
	}

	// 2. 报表要求存在一次明确的点名保存
	record, err := s.repo.Attendance.GetByBatchDate(ctx, batch, date)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		s.logger.Error("查询考勤记录失败",
			zap.String("batch", batch), zap.String("date", date), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable
	}

	// 3. 按已存条目分类：仅精确等于 Present 计入出勤，其余（含未知状态）一律缺勤；
	//    学生已被移出班次时回退显示原始 studentId
	report := &dto.AttendanceReport{
		Batch:   batch,
		Date:    date,
		Present: []string{},
		Absent:  []string{},
	}
	for _, entry := range record.Records {
		displayName := entry.StudentID
		if name, ok := nameMap[entry.StudentID]; ok {
			displayName = name
		}
		if entry.Status == model.StatusPresent {
			report.Present = append(report.Present, displayName)
		} else {
			report.Absent = append(report.Absent, displayName)
		}
	}

	return report, nil
}

func (s *attendanceService) StudentHistory(ctx context.Context, studentID string) (*dto.StudentAttendanceResponse, error) {
	if studentID == "" {
		return nil, apperrors.ErrValidation
	}

	records, err := s.repo.Attendance.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询学生考勤历史失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable
	}

	entries := make([]dto.StudentAttendanceEntry, 0, len(records))
	presentCount := 0
	for _, record := range records {
		status, ok := record.FindStatus(studentID)
		if !ok {
			continue
		}
		if status == model.StatusPresent {
			presentCount++
		}
		entries = append(entries, dto.StudentAttendanceEntry{
			Date:   record.Date,
			Status: status,
		})
	}

	percentage := 0
	if len(entries) > 0 {
		percentage = int(math.Round(float64(presentCount) / float64(len(entries)) * 100))
	}

	return &dto.StudentAttendanceResponse{
		StudentID:  studentID,
		Entries:    entries,
		Percentage: percentage,
	}, nil
}
