package service

import (
	"context"

	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/repository"
)

// NotificationService 站内通知业务接口
type NotificationService interface {
	// List 返回面向 ALL、指定班次或指定用户的最新通知
	List(ctx context.Context, batch, username string) ([]model.Notification, error)
}

type notificationService struct {
	repo *repository.Repository
}

// NewNotificationService 创建 NotificationService 实例
func NewNotificationService(repo *repository.Repository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, batch, username string) ([]model.Notification, error) {
	return s.repo.Notification.ListForTargets(ctx, batch, username)
}
