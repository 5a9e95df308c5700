package usecase

import (
	"context"
	"time"

	"product-reviews/internal/data/entity"
	"product-reviews/internal/data/repository"
	"product-reviews/internal/dto/request"
	"product-reviews/internal/dto/response"
	"product-reviews/pkg/apperrors"
	"product-reviews/pkg/database"
	"product-reviews/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return apperrors.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return apperrors.Internal(err)
	}

	// 3. Create user entity
	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	// 4. Save user. The email uniqueness check lives in the database
	// constraint, so two concurrent registrations cannot both succeed.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Conflict("email already exists")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return apperrors.Internal(err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperrors.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, apperrors.Internal(err)
	}

	// 3. Unknown email and wrong password produce the same response,
	// so callers cannot probe which emails are registered.
	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login password mismatch", zap.Int64("user_id", user.ID))
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))

	return &response.LoginResponse{UserID: user.ID}, nil
}
