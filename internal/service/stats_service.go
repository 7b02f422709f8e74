package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/repository"
)

// StatsService 管理端仪表盘统计接口
type StatsService interface {
	Summary(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatsService 创建 StatsService 实例
func NewStatsService(repo *repository.Repository, logger *zap.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

func (s *statsService) Summary(ctx context.Context) (*dto.StatsResponse, error) {
	studentCount, err := s.repo.User.CountStudents(ctx)
	if err != nil {
		s.logger.Error("统计学生数失败", zap.Error(err))
		return nil, err
	}

	resultCount, err := s.repo.Result.Count(ctx)
	if err != nil {
		s.logger.Error("统计成绩数失败", zap.Error(err))
		return nil, err
	}

	testCount, err := s.repo.Test.Count(ctx)
	if err != nil {
		s.logger.Error("统计测验数失败", zap.Error(err))
		return nil, err
	}

	return &dto.StatsResponse{
		StudentCount: studentCount,
		ResultCount:  resultCount,
		TestCount:    testCount,
	}, nil
}
