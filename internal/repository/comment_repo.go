package repository

import (
	"context"
	"errors"

	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"gorm.io/gorm"
)

// CommentRepository comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByNews(ctx context.Context, newsID string) ([]*domain.Comment, error)
	// DeleteOwn removes a comment only when it belongs to the given user
	DeleteOwn(ctx context.Context, commentID, userID string) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByNews(ctx context.Context, newsID string) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.WithContext(ctx).
		Where("news_id = ?", newsID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrCommentNotFound
	}
	return comments, err
}

func (r *commentRepository) DeleteOwn(ctx context.Context, commentID, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", commentID, userID).
		Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrCommentNotFound
	}
	return nil
}
