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

var (
	ErrUsernameExists = errors.New("学号已存在")
	ErrEmailExists    = errors.New("邮箱已存在")
)

// UserService 学生目录业务接口
type UserService interface {
	// ListStudents batch 为空时返回全部学生
	ListStudents(ctx context.Context, batch string) ([]model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*model.User, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) error
	// Delete 级联删除学生的成绩与考勤条目（单事务，任一步失败则整体回滚）
	Delete(ctx context.Context, id string) error
	// ListBatches 班次标签去重 + 各班学生数
	ListBatches(ctx context.Context) ([]dto.BatchResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) ListStudents(ctx context.Context, batch string) ([]model.User, error) {
	return s.repo.User.ListStudents(ctx, batch)
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*model.User, error) {
	// 1. username 唯一性
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. email 唯一性（可选字段）
	if req.Email != "" {
		if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
			return nil, ErrEmailExists
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Error("查询用户失败", zap.Error(err))
			return nil, err
		}
	}

	user := &model.User{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password, // 明文保存（与登录比较逻辑对应）
		Role:          model.RoleStudent,
		Name:          req.Name,
		Batch:         req.Batch,
		ParentName:    req.ParentName,
		School:        req.School,
		Address:       req.Address,
		Phone:         req.Phone,
		AdmissionDate: req.AdmissionDate,
		Joined:        time.Now(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建学生失败", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	s.logger.Info("学生注册成功",
		zap.String("username", user.Username), zap.String("batch", user.Batch))
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) error {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return err
	}

	user.Email = req.Email
	user.Name = req.Name
	user.Batch = req.Batch
	user.ParentName = req.ParentName
	user.School = req.School
	user.Address = req.Address
	user.Phone = req.Phone
	user.AdmissionDate = req.AdmissionDate
	// 未提交新密码时保留原密码
	if req.Password != "" {
		user.Password = req.Password
	}

	return s.repo.User.Update(ctx, user)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return err
	}

	if err := s.repo.User.DeleteCascade(ctx, user); err != nil {
		s.logger.Error("级联删除学生失败",
			zap.String("username", user.Username), zap.Error(err))
		return err
	}

	s.logger.Info("学生已删除", zap.String("username", user.Username))
	return nil
}

func (s *userService) ListBatches(ctx context.Context) ([]dto.BatchResponse, error) {
	names, err := s.repo.User.DistinctBatches(ctx)
	if err != nil {
		s.logger.Error("查询班次列表失败", zap.Error(err))
		return nil, err
	}

	batches := make([]dto.BatchResponse, 0, len(names))
	for _, name := range names {
		count, err := s.repo.User.CountByBatch(ctx, name)
		if err != nil {
			s.logger.Error("统计班次学生数失败", zap.String("batch", name), zap.Error(err))
			return nil, err
		}
		batches = append(batches, dto.BatchResponse{Name: name, Count: count})
	}
	return batches, nil
}
