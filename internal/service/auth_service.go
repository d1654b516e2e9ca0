package service

import (
	"context"
	"time"

	"child-screening-be/internal/dto"
	"child-screening-be/internal/entity"
	"child-screening-be/internal/pkg/apperror"
	"child-screening-be/internal/pkg/logger"
	"child-screening-be/internal/repository/specification"
	"child-screening-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	// Mismatch fails before any storage access.
	if req.Password != req.ConfirmPassword {
		return nil, apperror.Validation("passwords do not match")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.Storage("failed to look up user", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		// The unique index on email also trips here when two
		// registrations race the FindOne check.
		return nil, apperror.Conflict("user already exists")
	}

	s.log.Info("auth", "user registered", map[string]interface{}{
		"user_id": user.Id,
	})

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.Storage("failed to look up user", err)
	}
	if user == nil {
		// Same answer as a wrong password; do not leak which one it was.
		return nil, apperror.Auth("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("auth", "failed login attempt", map[string]interface{}{
			"user_id": user.Id,
		})
		return nil, apperror.Auth("invalid email or password")
	}

	return user, nil
}
