package repositories

import (
	"errors"

	"caseshare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMediaNotFound = errors.New("media not found")

type MediaRepository interface {
	Create(media *models.Media) error
	FindByID(id string) (*models.Media, error)
	FindByPost(postID string) ([]models.Media, error)
	Delete(media *models.Media) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(media *models.Media) error {
	return r.db.Create(media).Error
}

func (r *mediaRepository) FindByID(id string) (*models.Media, error) {
	var media models.Media
	err := r.db.First(&media, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) FindByPost(postID string) ([]models.Media, error) {
	var media []models.Media
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&media).Error
	return media, err
}

func (r *mediaRepository) Delete(media *models.Media) error {
	return r.db.Delete(media).Error
}
