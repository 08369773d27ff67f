package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
)

type fakeCommentRepo struct {
	items map[string]*domain.Comment
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.items[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) ListByNews(_ context.Context, newsID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.items {
		if c.NewsID == newsID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) DeleteOwn(_ context.Context, commentID, userID string) error {
	c, ok := r.items[commentID]
	if !ok || c.UserID != userID {
		return common.ErrCommentNotFound
	}
	delete(r.items, commentID)
	return nil
}

func TestAddCommentRequiresExistingArticle(t *testing.T) {
	news := newFakeNewsStore()
	repo := &fakeCommentRepo{items: map[string]*domain.Comment{}}
	svc := NewCommentService(repo, news)

	_, err := svc.AddComment(context.Background(), &domain.CreateCommentRequest{NewsID: "missing", Text: "hi"}, "user-1")
	assert.ErrorIs(t, err, common.ErrContentNotFound)

	news.items["n1"] = &domain.News{ID: "n1", Title: "t"}
	comment, err := svc.AddComment(context.Background(), &domain.CreateCommentRequest{NewsID: "n1", Text: "hi"}, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "user-1", comment.UserID)

	comments, err := svc.ListComments(context.Background(), "n1")
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestDeleteCommentOnlyByAuthor(t *testing.T) {
	news := newFakeNewsStore()
	news.items["n1"] = &domain.News{ID: "n1"}
	repo := &fakeCommentRepo{items: map[string]*domain.Comment{}}
	svc := NewCommentService(repo, news)

	comment, err := svc.AddComment(context.Background(), &domain.CreateCommentRequest{NewsID: "n1", Text: "hi"}, "user-1")
	require.NoError(t, err)

	err = svc.DeleteComment(context.Background(), comment.ID, "someone-else")
	assert.ErrorIs(t, err, common.ErrCommentNotFound)

	err = svc.DeleteComment(context.Background(), comment.ID, "user-1")
	assert.NoError(t, err)
}
