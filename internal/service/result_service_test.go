package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
)

func newResultTestService() (*testRepos, ResultService) {
	mocks, repo := newTestRepos()
	return mocks, NewResultService(repo, zap.NewNop())
}

func TestIsPass(t *testing.T) {
	cases := []struct {
		name     string
		obtained float64
		total    float64
		want     bool
	}{
		{"恰好及格线", 33, 100, true},
		{"及格线之下", 32.9, 100, false},
		{"满分", 100, 100, true},
		{"零分", 0, 100, false},
		{"总分非法", 50, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &model.Result{MarksObtained: tc.obtained, TotalMarks: tc.total}
			if got := IsPass(r); got != tc.want {
				t.Errorf("IsPass(%v/%v) = %v, 期望 %v", tc.obtained, tc.total, got, tc.want)
			}
		})
	}
}

func TestCreateResult(t *testing.T) {
	mocks, svc := newResultTestService()

	result, err := svc.Create(context.Background(), &dto.CreateResultRequest{
		StudentID:     "s1",
		Subject:       "数学",
		MarksObtained: 85,
		TotalMarks:    100,
		ExamType:      "期中",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if result.ID.IsZero() {
		t.Error("创建后应回填 ID")
	}
	if result.Date.IsZero() {
		t.Error("创建时应写入录入时间")
	}
	if len(mocks.result.results) != 1 {
		t.Errorf("期望 1 条成绩入库, 实际 %d", len(mocks.result.results))
	}
}

func TestUpdateResult_NotFound(t *testing.T) {
	_, svc := newResultTestService()

	err := svc.Update(context.Background(), "64b000000000000000000000", &dto.UpdateResultRequest{})
	if !errors.Is(err, ErrResultNotFound) {
		t.Errorf("期望 ErrResultNotFound, 实际 %v", err)
	}
}

func TestUpdateResult_PartialFields(t *testing.T) {
	mocks, svc := newResultTestService()
	ctx := context.Background()
	mocks.result.Create(ctx, &model.Result{
		StudentID: "s1", Subject: "数学", MarksObtained: 60, TotalMarks: 100, ExamType: "期中",
	})
	id := mocks.result.results[0].ID.Hex()

	err := svc.Update(ctx, id, &dto.UpdateResultRequest{MarksObtained: 72})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	updated := mocks.result.results[0]
	if updated.MarksObtained != 72 {
		t.Errorf("得分应更新为 72, 实际 %v", updated.MarksObtained)
	}
	// 未提交的字段保持原值
	if updated.Subject != "数学" || updated.TotalMarks != 100 || updated.ExamType != "期中" {
		t.Errorf("未提交字段不应被清空: %+v", updated)
	}
}

func TestListResultsByStudent(t *testing.T) {
	mocks, svc := newResultTestService()
	ctx := context.Background()
	mocks.result.Create(ctx, &model.Result{StudentID: "s1", Subject: "数学"})
	mocks.result.Create(ctx, &model.Result{StudentID: "s2", Subject: "数学"})
	mocks.result.Create(ctx, &model.Result{StudentID: "s1", Subject: "英语"})

	results, err := svc.ListByStudent(ctx, "s1")
	if err != nil {
		t.Fatalf("ListByStudent() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("期望 2 条成绩, 实际 %d", len(results))
	}
}
