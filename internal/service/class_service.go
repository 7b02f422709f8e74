package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/repository"
)

// ClassService 课程安排业务接口
type ClassService interface {
	// Create 安排课程并向目标班次投递一条站内通知
	Create(ctx context.Context, req *dto.CreateClassRequest) (*model.ClassSchedule, error)
	List(ctx context.Context, batch string) ([]model.ClassSchedule, error)
	Delete(ctx context.Context, id string) error
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService 创建 ClassService 实例
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) Create(ctx context.Context, req *dto.CreateClassRequest) (*model.ClassSchedule, error) {
	class := &model.ClassSchedule{
		Batch:   req.Batch,
		Day:     req.Day,
		Time:    req.Time,
		Subject: req.Subject,
		Teacher: req.Teacher,
	}

	if err := s.repo.ClassSchedule.Create(ctx, class); err != nil {
		s.logger.Error("安排课程失败", zap.String("batch", req.Batch), zap.Error(err))
		return nil, err
	}

	notification := &model.Notification{
		Target:  req.Batch,
		Message: "🗓️ Class: " + req.Subject,
		Type:    "success",
		Date:    time.Now(),
	}
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.logger.Warn("投递课程通知失败", zap.String("batch", req.Batch), zap.Error(err))
	}

	return class, nil
}

func (s *classService) List(ctx context.Context, batch string) ([]model.ClassSchedule, error) {
	return s.repo.ClassSchedule.List(ctx, batch)
}

func (s *classService) Delete(ctx context.Context, id string) error {
	return s.repo.ClassSchedule.Delete(ctx, id)
}
