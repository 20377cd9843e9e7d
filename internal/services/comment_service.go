package services

import (
	"errors"
	"fmt"

	"caseshare_backend/internal/logger"
	"caseshare_backend/internal/models"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/internal/services/dto"
	"caseshare_backend/pkg/apperrors"
)

type CommentService interface {
	ListByPost(postID string, offset int) ([]*dto.CommentResponse, error)
	Get(id string) (*dto.CommentResponse, error)
	Create(userID, postID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Update(userID, commentID string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	Delete(userID, commentID string) error
}

type commentService struct {
	commentRepo   repositories.CommentRepository
	postRepo      repositories.PostRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) CommentService {
	return &commentService{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

func (s *commentService) ListByPost(postID string, offset int) ([]*dto.CommentResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	comments, err := s.commentRepo.FindByPost(postID, offset, defaultPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, buildCommentResponse(&comments[i]))
	}
	return responses, nil
}

func (s *commentService) Get(id string) (*dto.CommentResponse, error) {
	comment, err := s.findComment(id)
	if err != nil {
		return nil, err
	}
	return buildCommentResponse(comment), nil
}

func (s *commentService) Create(userID, postID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	comment := &models.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: req.Content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyPostOwner(post, userID)
	return buildCommentResponse(comment), nil
}

func (s *commentService) Update(userID, commentID string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.findComment(commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, apperrors.NewForbiddenError("You do not own this comment")
	}

	comment.Content = req.Content
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildCommentResponse(comment), nil
}

func (s *commentService) Delete(userID, commentID string) error {
	comment, err := s.findComment(commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return apperrors.NewForbiddenError("You do not own this comment")
	}

	if err := s.commentRepo.Delete(comment); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// notifyPostOwner pushes a notification to the post owner unless they
// commented on their own post. Best effort: a failed push never fails
// the comment itself.
func (s *commentService) notifyPostOwner(post *models.Post, commenterID string) {
	if post.UserID == commenterID {
		return
	}

	message := "Someone commented on your post"
	if commenter, err := s.userRepo.FindByID(commenterID); err == nil {
		message = fmt.Sprintf("%s %s commented on your post", commenter.FirstName, commenter.LastName)
	}

	if _, err := s.notifications.Create(post.UserID, message, "/posts/"+post.ID); err != nil {
		logger.Warn("failed to notify post owner about comment",
			"post_id", post.ID,
			"owner_id", post.UserID,
			"error", err.Error(),
		)
	}
}

func (s *commentService) findComment(id string) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return comment, nil
}

func buildCommentResponse(c *models.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		PostID:    c.PostID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
