package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/internal/dto"
	"github.com/dc-onecallaway/my-school-app/internal/model"
	"github.com/dc-onecallaway/my-school-app/internal/repository"
)

var ErrResultNotFound = errors.New("成绩不存在")

// passThreshold 及格线：得分率 >= 33%
const passThreshold = 0.33

// ResultService 成绩业务接口
type ResultService interface {
	Create(ctx context.Context, req *dto.CreateResultRequest) (*model.Result, error)
	GetByID(ctx context.Context, id string) (*model.Result, error)
	ListAll(ctx context.Context) ([]model.Result, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Result, error)
	Update(ctx context.Context, id string, req *dto.UpdateResultRequest) error
	Delete(ctx context.Context, id string) error
}

type resultService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewResultService 创建 ResultService 实例
func NewResultService(repo *repository.Repository, logger *zap.Logger) ResultService {
	return &resultService{repo: repo, logger: logger}
}

// IsPass 判断单条成绩是否及格
func IsPass(result *model.Result) bool {
	if result.TotalMarks <= 0 {
		return false
	}
	return result.MarksObtained/result.TotalMarks >= passThreshold
}

func (s *resultService) Create(ctx context.Context, req *dto.CreateResultRequest) (*model.Result, error) {
	result := &model.Result{
		StudentID:     req.StudentID,
		Subject:       req.Subject,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
		ExamType:      req.ExamType,
		Date:          time.Now(),
	}

	if err := s.repo.Result.Create(ctx, result); err != nil {
		s.logger.Error("录入成绩失败", zap.String("student_id", req.StudentID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *resultService) GetByID(ctx context.Context, id string) (*model.Result, error) {
	result, err := s.repo.Result.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrResultNotFound
		}
		s.logger.Error("查询成绩失败", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *resultService) ListAll(ctx context.Context) ([]model.Result, error) {
	return s.repo.Result.ListAll(ctx)
}

func (s *resultService) ListByStudent(ctx context.Context, studentID string) ([]model.Result, error) {
	return s.repo.Result.ListByStudent(ctx, studentID)
}

func (s *resultService) Update(ctx context.Context, id string, req *dto.UpdateResultRequest) error {
	result, err := s.repo.Result.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrResultNotFound
		}
		s.logger.Error("查询成绩失败", zap.Error(err))
		return err
	}

	if req.Subject != "" {
		result.Subject = req.Subject
	}
	if req.TotalMarks > 0 {
		result.TotalMarks = req.TotalMarks
	}
	if req.ExamType != "" {
		result.ExamType = req.ExamType
	}
	result.MarksObtained = req.MarksObtained

	return s.repo.Result.Update(ctx, result)
}

func (s *resultService) Delete(ctx context.Context, id string) error {
	return s.repo.Result.Delete(ctx, id)
}
