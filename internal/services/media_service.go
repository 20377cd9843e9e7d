package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"caseshare_backend/internal/logger"
	"caseshare_backend/internal/models"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/internal/services/dto"
	"caseshare_backend/internal/storage"
	"caseshare_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type MediaService interface {
	Upload(ctx context.Context, userID, postID, filename, contentType string, reader io.Reader) (*dto.MediaResponse, error)
	ListByPost(postID string) ([]*dto.MediaResponse, error)
	Delete(ctx context.Context, userID, mediaID string) error
}

type mediaService struct {
	mediaRepo    repositories.MediaRepository
	postRepo     repositories.PostRepository
	store        storage.Storage
	allowedTypes map[string]models.MediaKind
}

func NewMediaService(
	mediaRepo repositories.MediaRepository,
	postRepo repositories.PostRepository,
	store storage.Storage,
	allowedTypes []string,
) MediaService {
	kinds := make(map[string]models.MediaKind, len(allowedTypes))
	for _, ct := range allowedTypes {
		switch {
		case strings.HasPrefix(ct, "image/"):
			kinds[ct] = models.MediaKindImage
		case strings.HasPrefix(ct, "video/"):
			kinds[ct] = models.MediaKindVideo
		default:
			kinds[ct] = models.MediaKindDocument
		}
	}
	return &mediaService{
		mediaRepo:    mediaRepo,
		postRepo:     postRepo,
		store:        store,
		allowedTypes: kinds,
	}
}

func (s *mediaService) Upload(ctx context.Context, userID, postID, filename, contentType string, reader io.Reader) (*dto.MediaResponse, error) {
	kind, ok := s.allowedTypes[contentType]
	if !ok {
		return nil, apperrors.NewBadRequestError("Unsupported content type: " + contentType)
	}

	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if post.UserID != userID {
		return nil, apperrors.NewForbiddenError("You do not own this post")
	}

	// Stored under a generated name so hostile filenames never reach
	// the filesystem.
	storedPath := fmt.Sprintf("%s/%s%s", postID, uuid.NewString(), filepath.Ext(filename))
	if err := s.store.Save(ctx, storedPath, reader); err != nil {
		return nil, apperrors.InternalError(err)
	}

	media := &models.Media{
		UserID:   userID,
		PostID:   postID,
		Kind:     kind,
		Filename: filepath.Base(filename),
		Filepath: storedPath,
		URL:      s.store.URL(storedPath),
	}
	if err := s.mediaRepo.Create(media); err != nil {
		// Keep the store consistent with the database.
		if cleanupErr := s.store.Delete(ctx, storedPath); cleanupErr != nil {
			logger.Warn("failed to clean up orphaned upload", "path", storedPath, "error", cleanupErr.Error())
		}
		return nil, apperrors.InternalError(err)
	}

	return buildMediaResponse(media), nil
}

func (s *mediaService) ListByPost(postID string) ([]*dto.MediaResponse, error) {
	media, err := s.mediaRepo.FindByPost(postID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.MediaResponse, 0, len(media))
	for i := range media {
		responses = append(responses, buildMediaResponse(&media[i]))
	}
	return responses, nil
}

func (s *mediaService) Delete(ctx context.Context, userID, mediaID string) error {
	media, err := s.mediaRepo.FindByID(mediaID)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if media.UserID != userID {
		return apperrors.NewForbiddenError("You do not own this attachment")
	}

	if err := s.mediaRepo.Delete(media); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.store.Delete(ctx, media.Filepath); err != nil {
		logger.Warn("failed to delete stored file", "path", media.Filepath, "error", err.Error())
	}
	return nil
}

func buildMediaResponse(m *models.Media) *dto.MediaResponse {
	return &dto.MediaResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		Kind:      string(m.Kind),
		Filename:  m.Filename,
		URL:       m.URL,
		CreatedAt: m.CreatedAt,
	}
}
