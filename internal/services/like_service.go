package services

import (
	"errors"
	"fmt"

	"caseshare_backend/internal/logger"
	"caseshare_backend/internal/models"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/pkg/apperrors"
)

type LikeService interface {
	// Like records a like and notifies the post owner. Liking an
	// already-liked post is a no-op success.
	Like(userID, postID string) error
	Unlike(userID, postID string) error
	Count(postID string) (int64, error)
}

type likeService struct {
	likeRepo      repositories.LikeRepository
	postRepo      repositories.PostRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
}

func NewLikeService(
	likeRepo repositories.LikeRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) LikeService {
	return &likeService{
		likeRepo:      likeRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

func (s *likeService) Like(userID, postID string) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if _, err := s.likeRepo.FindByUserAndPost(userID, postID); err == nil {
		return nil // already liked
	} else if !errors.Is(err, repositories.ErrLikeNotFound) {
		return apperrors.InternalError(err)
	}

	like := &models.Like{UserID: userID, PostID: postID}
	if err := s.likeRepo.Create(like); err != nil {
		return apperrors.InternalError(err)
	}

	s.notifyPostOwner(post, userID)
	return nil
}

func (s *likeService) Unlike(userID, postID string) error {
	like, err := s.likeRepo.FindByUserAndPost(userID, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrLikeNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.likeRepo.Delete(like); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *likeService) Count(postID string) (int64, error) {
	count, err := s.likeRepo.CountByPost(postID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *likeService) notifyPostOwner(post *models.Post, likerID string) {
	if post.UserID == likerID {
		return
	}

	message := "Someone liked your post"
	if liker, err := s.userRepo.FindByID(likerID); err == nil {
		message = fmt.Sprintf("%s %s liked your post", liker.FirstName, liker.LastName)
	}

	if _, err := s.notifications.Create(post.UserID, message, "/posts/"+post.ID); err != nil {
		logger.Warn("failed to notify post owner about like",
			"post_id", post.ID,
			"owner_id", post.UserID,
			"error", err.Error(),
		)
	}
}
