package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/repository"
)

// AnnouncementService 通告业务接口
type AnnouncementService interface {
	// Create 发布通告并向目标班次投递一条站内通知
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*model.Announcement, error)
	// List batch 为空时返回全部；否则返回 ALL + 该班次的通告
	List(ctx context.Context, batch string) ([]model.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService 创建 AnnouncementService 实例
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

func (s *announcementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*model.Announcement, error) {
	announcement := &model.Announcement{
		Title:       req.Title,
		Message:     req.Message,
		TargetBatch: req.TargetBatch,
		Date:        time.Now(),
	}

	if err := s.repo.Announcement.Create(ctx, announcement); err != nil {
		s.logger.Error("发布通告失败", zap.String("title", req.Title), zap.Error(err))
		return nil, err
	}

	// 配套站内通知；通知投递失败不影响通告本身
	notification := &model.Notification{
		Target:  req.TargetBatch,
		Message: "📢 " + req.Title,
		Type:    "info",
		Date:    time.Now(),
	}
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.logger.Warn("投递通告通知失败", zap.String("title", req.Title), zap.Error(err))
	}

	return announcement, nil
}

func (s *announcementService) List(ctx context.Context, batch string) ([]model.Announcement, error) {
	return s.repo.Announcement.List(ctx, batch)
}

func (s *announcementService) Delete(ctx context.Context, id string) error {
	return s.repo.Announcement.Delete(ctx, id)
}
