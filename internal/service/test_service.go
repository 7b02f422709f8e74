package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/repository"
)

// TestService 测验安排业务接口
type TestService interface {
	Create(ctx context.Context, req *dto.CreateTestRequest) (*model.Test, error)
	List(ctx context.Context, batch string) ([]model.Test, error)
	Delete(ctx context.Context, id string) error
}

type testService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTestService 创建 TestService 实例
func NewTestService(repo *repository.Repository, logger *zap.Logger) TestService {
	return &testService{repo: repo, logger: logger}
}

func (s *testService) Create(ctx context.Context, req *dto.CreateTestRequest) (*model.Test, error) {
	test := &model.Test{
		Batch:   req.Batch,
		Subject: req.Subject,
		Topic:   req.Topic,
		Date:    req.Date,
		Time:    req.Time,
	}

	if err := s.repo.Test.Create(ctx, test); err != nil {
		s.logger.Error("安排测验失败", zap.String("batch", req.Batch), zap.Error(err))
		return nil, err
	}
	return test, nil
}

func (s *testService) List(ctx context.Context, batch string) ([]model.Test, error) {
	return s.repo.Test.List(ctx, batch)
}

func (s *testService) Delete(ctx context.Context, id string) error {
	return s.repo.Test.Delete(ctx, id)
}
