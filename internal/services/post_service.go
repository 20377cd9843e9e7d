package services

import (
	"errors"

	"caseshare_backend/internal/models"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/internal/services/dto"
	"caseshare_backend/pkg/apperrors"
)

const defaultPageSize = 20

type PostService interface {
	List(offset int) ([]*dto.PostResponse, error)
	ListByUser(userID string, offset int) ([]*dto.PostResponse, error)
	Get(id string) (*dto.PostResponse, error)
	Create(userID string, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	Update(userID, postID string, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	Delete(userID, postID string) error
}

type postService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) List(offset int) ([]*dto.PostResponse, error) {
	posts, err := s.postRepo.FindAll(offset, defaultPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildPostResponses(posts), nil
}

func (s *postService) ListByUser(userID string, offset int) ([]*dto.PostResponse, error) {
	posts, err := s.postRepo.FindByUser(userID, offset, defaultPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildPostResponses(posts), nil
}

func (s *postService) Get(id string) (*dto.PostResponse, error) {
	post, err := s.findPost(id)
	if err != nil {
		return nil, err
	}
	return buildPostResponse(post), nil
}

func (s *postService) Create(userID string, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	post := &models.Post{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildPostResponse(post), nil
}

func (s *postService) Update(userID, postID string, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.findPost(postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, apperrors.NewForbiddenError("You do not own this post")
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildPostResponse(post), nil
}

func (s *postService) Delete(userID, postID string) error {
	post, err := s.findPost(postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return apperrors.NewForbiddenError("You do not own this post")
	}

	if err := s.postRepo.Delete(post); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *postService) findPost(id string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func buildPostResponse(p *models.Post) *dto.PostResponse {
	return &dto.PostResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func buildPostResponses(posts []models.Post) []*dto.PostResponse {
	responses := make([]*dto.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, buildPostResponse(&posts[i]))
	}
	return responses
}
