package services

import (
	"errors"

	"caseshare_backend/internal/auth"
	"caseshare_backend/internal/logger"
	"caseshare_backend/internal/models"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/internal/services/dto"
	"caseshare_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrAlreadyExists(errors.New("email already registered"))
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Country:      req.Country,
		Title:        req.Title,
		Phone:        req.Phone,
		Age:          req.Age,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID)
	return buildUserResponse(user), nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("failed login attempt", "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user logged in", "user_id", user.ID)
	return &dto.TokenResponse{AccessToken: token}, nil
}
