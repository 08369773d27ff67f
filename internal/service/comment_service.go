package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/repository"
)

// CommentService business logic for news comments
type CommentService interface {
	AddComment(ctx context.Context, req *domain.CreateCommentRequest, userID string) (*domain.Comment, error)
	ListComments(ctx context.Context, newsID string) ([]*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID string) error
}

type commentService struct {
	comments repository.CommentRepository
	news     repository.ContentStore[*domain.News]
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repository.CommentRepository, news repository.ContentStore[*domain.News]) CommentService {
	return &commentService{comments: comments, news: news}
}

func (s *commentService) AddComment(ctx context.Context, req *domain.CreateCommentRequest, userID string) (*domain.Comment, error) {
	// The referenced article must exist
	if _, err := s.news.FindByID(ctx, req.NewsID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:     uuid.NewString(),
		NewsID: req.NewsID,
		UserID: userID,
		Text:   req.Text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context, newsID string) ([]*domain.Comment, error) {
	return s.comments.ListByNews(ctx, newsID)
}

// DeleteComment removes a comment; only the comment's author may delete it
func (s *commentService) DeleteComment(ctx context.Context, commentID, userID string) error {
	return s.comments.DeleteOwn(ctx, commentID, userID)
}
