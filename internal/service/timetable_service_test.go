package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
)

func newTimetableTestService() (*testRepos, TimetableService) {
	mocks, repo := newTestRepos()
	return mocks, NewTimetableService(repo, zap.NewNop())
}

func TestTimetable_UpsertOverwrites(t *testing.T) {
	mocks, svc := newTimetableTestService()
	ctx := context.Background()

	if err := svc.Upsert(ctx, &dto.UpsertTimetableRequest{
		Batch: "Batch-A", ImageURL: "https://cdn.example.com/v1.png",
	}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := svc.Upsert(ctx, &dto.UpsertTimetableRequest{
		Batch: "Batch-A", ImageURL: "https://cdn.example.com/v2.png", Notes: "三月新课表",
	}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := svc.GetByBatch(ctx, "Batch-A")
	if err != nil {
		t.Fatalf("GetByBatch() error = %v", err)
	}
	if got.ImageURL != "https://cdn.example.com/v2.png" || got.Notes != "三月新课表" {
		t.Errorf("课表应被整体覆盖, 实际 %+v", got)
	}
	if len(mocks.timetable.timetables) != 1 {
		t.Errorf("每班次应只有一张课表, 实际 %d", len(mocks.timetable.timetables))
	}
}

func TestTimetable_MissingReturnsEmptyDoc(t *testing.T) {
	_, svc := newTimetableTestService()

	got, err := svc.GetByBatch(context.Background(), "Batch-X")
	if err != nil {
		t.Fatalf("未发布课表不应报错: %v", err)
	}
	if got.Batch != "Batch-X" || got.ImageURL != "" {
		t.Errorf("期望空课表文档, 实际 %+v", got)
	}
}
