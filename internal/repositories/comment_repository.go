package repositories

import (
	"errors"

	"caseshare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id string) (*models.Comment, error)
	FindByPost(postID string, offset, limit int) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(comment *models.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByID(id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindByPost(postID string, offset, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).
		Order("created_at ASC").Offset(offset).Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(comment *models.Comment) error {
	return r.db.Delete(comment).Error
}
