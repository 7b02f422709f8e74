package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	apperrors "github.com/dc-onecallaway/my-school-app/pkg/errors"
	"github.com/dc-onecallaway/my-school-app/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
	currentResult *dto.UserResponse
	currentErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.currentResult, m.currentErr
}

// ── Mock AttendanceService ──

type mockAttendanceService struct {
	viewResult    *dto.DayViewResponse
	viewErr       error
	commitErr     error
	reportResult  *dto.AttendanceReport
	reportErr     error
	historyResult *dto.StudentAttendanceResponse
	historyErr    error
}

func (m *mockAttendanceService) BuildDayView(_ context.Context, _, _ string) (*dto.DayViewResponse, error) {
	return m.viewResult, m.viewErr
}
func (m *mockAttendanceService) CommitDayView(_ context.Context, _ *dto.CommitAttendanceRequest) error {
	return m.commitErr
}
func (m *mockAttendanceService) BuildReport(_ context.Context, _, _ string) (*dto.AttendanceReport, error) {
	return m.reportResult, m.reportErr
}
func (m *mockAttendanceService) StudentHistory(_ context.Context, _ string) (*dto.StudentAttendanceResponse, error) {
	return m.historyResult, m.historyErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) AttendanceReportXLSX(_ context.Context, _, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ClassScheduleICS(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Helpers
// ═══════════════════════════════════════════════════════════

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) *response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应解析失败: %v\n%s", err, w.Body.String())
	}
	return &resp
}

// injectClaims 模拟 JWTAuth 中间件注入的上下文
func injectClaims(userID, username, role, batch string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("username", username)
		c.Set("role", role)
		c.Set("batch", batch)
		c.Set("jti", "test-jti")
		c.Set("token_expires_at", time.Now().Add(time.Hour))
		c.Next()
	}
}

// ═══════════════════════════════════════════════════════════
// AuthHandler
// ═══════════════════════════════════════════════════════════

func TestLoginHandler_Success(t *testing.T) {
	svc := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         dto.UserResponse{Username: "admin", Role: model.RoleAdmin},
		},
	}
	r := gin.New()
	r.POST("/login", NewAuthHandler(svc).Login)

	w := performJSON(r, http.MethodPost, "/login", dto.LoginRequest{
		Identifier: "admin", Password: "admin123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200, 实际 %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("期望业务码 0, 实际 %d", resp.Code)
	}
}

func TestLoginHandler_MissingBody(t *testing.T) {
	r := gin.New()
	r.POST("/login", NewAuthHandler(&mockAuthService{}).Login)

	w := performJSON(r, http.MethodPost, "/login", map[string]string{"identifier": "admin"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("缺少密码期望 400, 实际 %d", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Code != 10001 {
		t.Errorf("期望业务码 10001, 实际 %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// AttendanceHandler
// ═══════════════════════════════════════════════════════════

func TestFetchDayViewHandler(t *testing.T) {
	svc := &mockAttendanceService{
		viewResult: &dto.DayViewResponse{
			Batch: "Batch-A",
			Date:  "2026-03-02",
			Entries: []dto.DayViewEntry{
				{Name: "Alice", StudentID: "alice", Status: model.StatusPresent},
			},
		},
	}
	r := gin.New()
	r.POST("/attendance/fetch", NewAttendanceHandler(svc).FetchDayView)

	w := performJSON(r, http.MethodPost, "/attendance/fetch", dto.FetchAttendanceRequest{
		Batch: "Batch-A", Date: "2026-03-02",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200, 实际 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"batch":"Batch-A"`) {
		t.Errorf("响应应回显请求键: %s", w.Body.String())
	}
}

func TestAttendanceHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"名册为空", apperrors.ErrEmptyRoster, http.StatusNotFound, 30001},
		{"记录不存在", apperrors.ErrNotFound, http.StatusNotFound, 30002},
		{"参数缺失", apperrors.ErrValidation, http.StatusBadRequest, 10001},
		{"存储不可用", apperrors.ErrStoreUnavailable, http.StatusServiceUnavailable, 50001},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockAttendanceService{reportErr: tc.err}
			r := gin.New()
			r.GET("/attendance/report", NewAttendanceHandler(svc).Report)

			w := performJSON(r, http.MethodGet, "/attendance/report?batch=B&date=D", nil)

			if w.Code != tc.wantStatus {
				t.Errorf("期望 HTTP %d, 实际 %d", tc.wantStatus, w.Code)
			}
			if resp := decodeResponse(t, w); resp.Code != tc.wantCode {
				t.Errorf("期望业务码 %d, 实际 %d", tc.wantCode, resp.Code)
			}
		})
	}
}

func TestStudentHistoryHandler_ForbidsOtherStudents(t *testing.T) {
	svc := &mockAttendanceService{
		historyResult: &dto.StudentAttendanceResponse{StudentID: "alice"},
	}
	r := gin.New()
	r.GET("/attendance/students/:studentId",
		injectClaims("uid1", "bob", model.RoleStudent, "Batch-A"),
		NewAttendanceHandler(svc).StudentHistory)

	w := performJSON(r, http.MethodGet, "/attendance/students/alice", nil)

	if w.Code != http.StatusForbidden {
		t.Errorf("学生越权查看他人历史期望 403, 实际 %d", w.Code)
	}
}

func TestStudentHistoryHandler_AdminCanViewAny(t *testing.T) {
	svc := &mockAttendanceService{
		historyResult: &dto.StudentAttendanceResponse{StudentID: "alice", Percentage: 80},
	}
	r := gin.New()
	r.GET("/attendance/students/:studentId",
		injectClaims("uid1", "admin", model.RoleAdmin, ""),
		NewAttendanceHandler(svc).StudentHistory)

	w := performJSON(r, http.MethodGet, "/attendance/students/alice", nil)

	if w.Code != http.StatusOK {
		t.Errorf("管理员查看任意学生历史期望 200, 实际 %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler
// ═══════════════════════════════════════════════════════════

func TestExportAttendanceHandler_Headers(t *testing.T) {
	svc := &mockExportService{
		buf:      bytes.NewBufferString("xlsx-bytes"),
		filename: "report.xlsx",
	}
	r := gin.New()
	r.GET("/export/attendance", NewExportHandler(svc).ExportAttendanceReport)

	w := performJSON(r, http.MethodGet, "/export/attendance?batch=B&date=2026-03-02", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200, 实际 %d", w.Code)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "report.xlsx") {
		t.Errorf("下载响应头应携带文件名, 实际 %s", disposition)
	}
	if got := w.Header().Get("Content-Type"); got != xlsxContentType {
		t.Errorf("Content-Type 不符: %s", got)
	}
}

func TestExportAttendanceHandler_MissingParams(t *testing.T) {
	r := gin.New()
	r.GET("/export/attendance", NewExportHandler(&mockExportService{}).ExportAttendanceReport)

	w := performJSON(r, http.MethodGet, "/export/attendance?batch=B", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少 date 期望 400, 实际 %d", w.Code)
	}
}

func TestExportICSHandler_StudentScopedToOwnBatch(t *testing.T) {
	svc := &mockExportService{
		buf:      bytes.NewBufferString("BEGIN:VCALENDAR"),
		filename: "课程表_Batch-A.ics",
	}
	r := gin.New()
	r.GET("/classes/ics",
		injectClaims("uid1", "alice", model.RoleStudent, "Batch-A"),
		NewExportHandler(svc).ExportClassScheduleICS)

	// 学生请求他人班次时以自身班次为准，不报 403
	w := performJSON(r, http.MethodGet, "/classes/ics?batch=Batch-B", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200, 实际 %d", w.Code)
	}
}
