package repository

import (
	"context"

	"quill/internal/models"
	"quill/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListActiveByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	CountActiveByPost(ctx context.Context, postID uint) (int64, error)
}

// commentRepository implements CommentRepository
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("create", "comments")()
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListActiveByPost returns the visible comments of a post, oldest first.
func (r *commentRepository) ListActiveByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	defer observability.TrackQuery("list_active_by_post", "comments")()

	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND active = ?", postID, true).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) CountActiveByPost(ctx context.Context, postID uint) (int64, error) {
	defer observability.TrackQuery("count_active_by_post", "comments")()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ? AND active = ?", postID, true).
		Count(&count).Error
	return count, err
}
