package repositories

import (
	"errors"

	"caseshare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrLikeNotFound = errors.New("like not found")

type LikeRepository interface {
	Create(like *models.Like) error
	FindByUserAndPost(userID, postID string) (*models.Like, error)
	FindByPost(postID string) ([]models.Like, error)
	CountByPost(postID string) (int64, error)
	Delete(like *models.Like) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepository) FindByUserAndPost(userID, postID string) (*models.Like, error) {
	var like models.Like
	err := r.db.First(&like, "user_id = ? AND post_id = ?", userID, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLikeNotFound
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) FindByPost(postID string) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&likes).Error
	return likes, err
}

func (r *likeRepository) CountByPost(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *likeRepository) Delete(like *models.Like) error {
	return r.db.Delete(like).Error
}
