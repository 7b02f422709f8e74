package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/repository"
)

// TimetableService 课表分发业务接口
type TimetableService interface {
	// Upsert 按班次整体覆盖课表
	Upsert(ctx context.Context, req *dto.UpsertTimetableRequest) error
	// GetByBatch 课表未发布时返回空文档而非错误（与前端"无课表"展示对应）
	GetByBatch(ctx context.Context, batch string) (*model.Timetable, error)
}

type timetableService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimetableService 创建 TimetableService 实例
func NewTimetableService(repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{repo: repo, logger: logger}
}

func (s *timetableService) Upsert(ctx context.Context, req *dto.UpsertTimetableRequest) error {
	timetable := &model.Timetable{
		Batch:    req.Batch,
		ImageURL: req.ImageURL,
		Notes:    req.Notes,
	}

	if err := s.repo.Timetable.Upsert(ctx, timetable); err != nil {
		s.logger.Error("发布课表失败", zap.String("batch", req.Batch), zap.Error(err))
		return err
	}
	return nil
}

func (s *timetableService) GetByBatch(ctx context.Context, batch string) (*model.Timetable, error) {
	timetable, err := s.repo.Timetable.GetByBatch(ctx, batch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &model.Timetable{Batch: batch}, nil
		}
		s.logger.Error("查询课表失败", zap.String("batch", batch), zap.Error(err))
		return nil, err
	}
	return timetable, nil
}
