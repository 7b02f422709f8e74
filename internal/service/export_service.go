package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	ErrExportNoClasses    = errors.New("该班次暂无课程安排")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// classDurationDefault 课程时长未知时按 1 小时生成日历事件
const classDurationDefault = time.Hour

// ExportService 导出业务接口
//
// 设计说明：
//   - 考勤报表导出为 Excel (.xlsx)，复用 AttendanceService 的报表分类逻辑
//   - 课程安排导出为 iCalendar (.ics) 订阅文件，按周重复事件生成
//   - 均以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// AttendanceReportXLSX 导出某班次某日的出勤/缺勤名单
	AttendanceReportXLSX(ctx context.Context, batch, date string) (*bytes.Buffer, string, error)
	// ClassScheduleICS 导出某班次的每周课程安排
	ClassScheduleICS(ctx context.Context, batch string) (*bytes.Buffer, string, error)
}

type exportService struct {
	attendanceSvc AttendanceService
	classSvc      ClassService
	logger        *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(attendanceSvc AttendanceService, classSvc ClassService, logger *zap.Logger) ExportService {
	return &exportService{
		attendanceSvc: attendanceSvc,
		classSvc:      classSvc,
		logger:        logger,
	}
}

// ═══════════════════════════════════════════════════════════
// AttendanceReportXLSX — 考勤报表导出为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 标题行：班次 + 日期
//   - A 列出勤名单、B 列缺勤名单，各列首行为计数表头

func (s *exportService) AttendanceReportXLSX(ctx context.Context, batch, date string) (*bytes.Buffer, string, error) {
	report, err := s.attendanceSvc.BuildReport(ctx, batch, date)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "考勤报表"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "B", 24)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — %s 考勤报表", report.Batch, report.Date))
	f.MergeCell(sheetName, "A1", "B1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("出勤 (%d)", len(report.Present)))
	f.SetCellValue(sheetName, "B2", fmt.Sprintf("缺勤 (%d)", len(report.Absent)))
	f.SetCellStyle(sheetName, "A2", "B2", headerStyle)

	// 数据列
	for i, name := range report.Present {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+3), name)
	}
	for i, name := range report.Absent {
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+3), name)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("考勤报表_%s_%s.xlsx", report.Batch, report.Date)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ClassScheduleICS — 课程安排导出为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每条课程安排生成一个按周重复 (RRULE:FREQ=WEEKLY) 的事件，
// DTSTART 取自当前日期起最近一次该星期几 + 课程时间

var icsWeekdays = map[string]struct {
	weekday time.Weekday
	byDay   string
}{
	"Monday":    {time.Monday, "MO"},
	"Tuesday":   {time.Tuesday, "TU"},
	"Wednesday": {time.Wednesday, "WE"},
	"Thursday":  {time.Thursday, "TH"},
	"Friday":    {time.Friday, "FR"},
	"Saturday":  {time.Saturday, "SA"},
	"Sunday":    {time.Sunday, "SU"},
}

func (s *exportService) ClassScheduleICS(ctx context.Context, batch string) (*bytes.Buffer, string, error) {
	classes, err := s.classSvc.List(ctx, batch)
	if err != nil {
		s.logger.Error("查询课程安排失败", zap.String("batch", batch), zap.Error(err))
		return nil, "", err
	}
	if len(classes) == 0 {
		return nil, "", ErrExportNoClasses
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//my-school-app//class-schedule//EN")

	now := time.Now()
	for _, class := range classes {
		day, ok := icsWeekdays[class.Day]
		if !ok {
			// 非法星期字符串跳过，不中断整个导出
			s.logger.Warn("跳过无法识别的课程安排",
				zap.String("batch", batch), zap.String("day", class.Day))
			continue
		}

		start := nextWeekdayAt(now, day.weekday, class.Time)

		event := cal.AddEvent(uuid.New().String() + "@my-school-app")
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(classDurationDefault))
		event.SetSummary(fmt.Sprintf("%s (%s)", class.Subject, class.Batch))
		if class.Teacher != "" {
			event.SetDescription("授课教师: " + class.Teacher)
		}
		event.AddRrule("FREQ=WEEKLY;BYDAY=" + day.byDay)
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("课程表_%s.ics", batch)
	return buf, filename, nil
}

// nextWeekdayAt 从 from 起最近一次 weekday 的 hhmm（"15:04"）时刻；解析失败取 00:00
func nextWeekdayAt(from time.Time, weekday time.Weekday, hhmm string) time.Time {
	hour, minute := 0, 0
	if parts := strings.SplitN(hhmm, ":", 2); len(parts) == 2 {
		if h, err := strconv.Atoi(parts[0]); err == nil {
			hour = h
		}
		if m, err := strconv.Atoi(parts[1]); err == nil {
			minute = m
		}
	}

	daysAhead := (int(weekday) - int(from.Weekday()) + 7) % 7
	day := from.AddDate(0, 0, daysAhead)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, from.Location())
}
