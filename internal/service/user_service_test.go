package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
)

func newUserTestService() (*testRepos, UserService) {
	mocks, repo := newTestRepos()
	return mocks, NewUserService(repo, zap.NewNop())
}

func TestCreateStudent_Success(t *testing.T) {
	mocks, svc := newUserTestService()

	user, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Username: "stu001",
		Password: "pass001",
		Name:     "张三",
		Batch:    "Batch-A",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.Role != model.RoleStudent {
		t.Errorf("新建用户角色应为 student, 实际 %s", user.Role)
	}
	if user.ID.IsZero() {
		t.Error("创建后应回填 ID")
	}
	if len(mocks.user.users) != 1 {
		t.Errorf("期望 1 个用户入库, 实际 %d", len(mocks.user.users))
	}
}

func TestCreateStudent_DuplicateUsername(t *testing.T) {
	mocks, svc := newUserTestService()
	seedStudents(mocks.user, "Batch-A", 1)

	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Username: "s1",
		Password: "x",
		Batch:    "Batch-B",
	})
	if !errors.Is(err, ErrUsernameExists) {
		t.Errorf("期望 ErrUsernameExists, 实际 %v", err)
	}
}

func TestCreateStudent_DuplicateEmail(t *testing.T) {
	mocks, svc := newUserTestService()
	mocks.user.users = append(mocks.user.users, &model.User{
		Username: "exists", Email: "dup@example.com", Role: model.RoleStudent,
	})

	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Username: "fresh",
		Email:    "dup@example.com",
		Password: "x",
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("期望 ErrEmailExists, 实际 %v", err)
	}
}

func TestUpdateStudent_KeepsPasswordWhenEmpty(t *testing.T) {
	mocks, svc := newUserTestService()
	seedStudents(mocks.user, "Batch-A", 1)
	id := mocks.user.users[0].ID.Hex()

	err := svc.Update(context.Background(), id, &dto.UpdateStudentRequest{
		Name:  "改名后",
		Batch: "Batch-B",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	updated := mocks.user.users[0]
	if updated.Password != "123456" {
		t.Errorf("未提交新密码时应保留原密码, 实际 %s", updated.Password)
	}
	if updated.Name != "改名后" || updated.Batch != "Batch-B" {
		t.Errorf("资料未按请求更新: %+v", updated)
	}
}

func TestUpdateStudent_NotFound(t *testing.T) {
	_, svc := newUserTestService()

	err := svc.Update(context.Background(), "64b000000000000000000000", &dto.UpdateStudentRequest{})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound, 实际 %v", err)
	}
}

func TestDeleteStudent_Cascades(t *testing.T) {
	mocks, svc := newUserTestService()
	seedStudents(mocks.user, "Batch-A", 2)
	ctx := context.Background()

	// s1 留有成绩与考勤条目
	mocks.result.Create(ctx, &model.Result{StudentID: "s1", Subject: "数学"})
	mocks.result.Create(ctx, &model.Result{StudentID: "s2", Subject: "数学"})
	mocks.attendance.Upsert(ctx, "Batch-A", "2026-03-02", []model.AttendanceEntry{
		{StudentID: "s1", Status: model.StatusPresent},
		{StudentID: "s2", Status: model.StatusAbsent},
	})

	if err := svc.Delete(ctx, mocks.user.users[0].ID.Hex()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// 用户、成绩、考勤条目三处同时清除；他人数据不受影响
	if len(mocks.user.users) != 1 || mocks.user.users[0].Username != "s2" {
		t.Errorf("期望仅剩 s2, 实际 %+v", mocks.user.users)
	}
	if len(mocks.result.results) != 1 || mocks.result.results[0].StudentID != "s2" {
		t.Errorf("s1 的成绩应被级联清除, 实际 %+v", mocks.result.results)
	}
	record, _ := mocks.attendance.GetByBatchDate(ctx, "Batch-A", "2026-03-02")
	if len(record.Records) != 1 || record.Records[0].StudentID != "s2" {
		t.Errorf("s1 的考勤条目应被摘除, 实际 %+v", record.Records)
	}
}

func TestDeleteStudent_NotFound(t *testing.T) {
	_, svc := newUserTestService()

	err := svc.Delete(context.Background(), "64b000000000000000000000")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound, 实际 %v", err)
	}
}

func TestListBatches_Counts(t *testing.T) {
	mocks, svc := newUserTestService()
	seedStudents(mocks.user, "Batch-A", 2)
	seedStudents(mocks.user, "Batch-B", 1)

	batches, err := svc.ListBatches(context.Background())
	if err != nil {
		t.Fatalf("ListBatches() error = %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("期望 2 个班次, 实际 %d", len(batches))
	}
	counts := make(map[string]int64)
	for _, b := range batches {
		counts[b.Name] = b.Count
	}
	if counts["Batch-A"] != 2 || counts["Batch-B"] != 1 {
		t.Errorf("班次学生数不符: %v", counts)
	}
}
