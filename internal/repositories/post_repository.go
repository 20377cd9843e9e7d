package repositories

import (
	"errors"

	"caseshare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id string) (*models.Post, error)
	FindAll(offset, limit int) ([]models.Post, error)
	FindByUser(userID string, offset, limit int) ([]models.Post, error)
	Update(post *models.Post) error
	Delete(post *models.Post) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindAll(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *postRepository) FindByUser(userID string, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(post *models.Post) error {
	return r.db.Delete(post).Error
}
