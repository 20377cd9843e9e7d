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

type UserService interface {
	List() ([]*dto.UserResponse, error)
	GetByID(id string) (*dto.UserResponse, error)
	Update(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	ChangePassword(userID string, req *dto.ChangePasswordRequest) error
	Delete(userID string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List() ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, buildUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *userService) GetByID(id string) (*dto.UserResponse, error) {
	user, err := s.findUser(id)
	if err != nil {
		return nil, err
	}
	return buildUserResponse(user), nil
}

func (s *userService) Update(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.Title != nil {
		user.Title = *req.Title
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Age != nil {
		user.Age = *req.Age
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

func (s *userService) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}

	if !auth.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperrors.NewForbiddenError("Old password is incorrect")
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("password changed", "user_id", userID)
	return nil
}

func (s *userService) Delete(userID string) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}

	// FK constraints cascade the user's posts, comments, likes, media,
	// messages and notifications.
	if err := s.userRepo.Delete(user); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("user deleted", "user_id", userID)
	return nil
}

func (s *userService) findUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func buildUserResponse(u *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Country:   u.Country,
		Title:     u.Title,
		Phone:     u.Phone,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}
