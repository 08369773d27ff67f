package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
)

type fakePhotoStore struct {
	items map[string]*domain.Photo
}

func (s *fakePhotoStore) FindByID(_ context.Context, id string) (*domain.Photo, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, common.ErrContentNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *fakePhotoStore) Create(_ context.Context, entity *domain.Photo) error {
	clone := *entity
	s.items[entity.ID] = &clone
	return nil
}

func (s *fakePhotoStore) Save(_ context.Context, entity *domain.Photo) error {
	clone := *entity
	s.items[entity.ID] = &clone
	return nil
}

func (s *fakePhotoStore) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return common.ErrContentNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *fakePhotoStore) List(_ context.Context, _ ...any) ([]*domain.Photo, error) {
	var out []*domain.Photo
	for _, p := range s.items {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (s *fakePhotoStore) Latest(ctx context.Context, _ int) ([]*domain.Photo, error) {
	return s.List(ctx)
}

func (s *fakePhotoStore) SearchByTitle(_ context.Context, query string) ([]*domain.Photo, error) {
	var out []*domain.Photo
	for _, p := range s.items {
		if strings.Contains(p.Title, query) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *fakePhotoStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func newPhotoService() (PhotoService, *fakePhotoStore) {
	store := &fakePhotoStore{items: map[string]*domain.Photo{}}
	return NewPhotoService(store), store
}

func TestCreatePhotoStatusByRole(t *testing.T) {
	svc, _ := newPhotoService()

	photo, err := svc.CreatePhoto(context.Background(), &domain.Photo{Title: "t", PhotoImage: "u"}, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, photo.Status)

	photo, err = svc.CreatePhoto(context.Background(), &domain.Photo{Title: "t", PhotoImage: "u"}, reporter)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, photo.Status)
	assert.Equal(t, reporter.ID, photo.CreatedBy)
}

func TestApprovePhoto(t *testing.T) {
	svc, _ := newPhotoService()
	photo, err := svc.CreatePhoto(context.Background(), &domain.Photo{Title: "t", PhotoImage: "u"}, reporter)
	require.NoError(t, err)

	_, err = svc.ApprovePhoto(context.Background(), photo.ID, moderator)
	assert.ErrorIs(t, err, common.ErrForbidden)

	approved, err := svc.ApprovePhoto(context.Background(), photo.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)
	assert.Equal(t, admin.ID, approved.ApprovedBy)

	// Photos reject a second approval outright
	_, err = svc.ApprovePhoto(context.Background(), photo.ID, admin)
	assert.ErrorIs(t, err, common.ErrConflict)

	_, err = svc.ApprovePhoto(context.Background(), "missing", admin)
	assert.ErrorIs(t, err, common.ErrContentNotFound)
}

func TestDeletePhoto(t *testing.T) {
	svc, store := newPhotoService()
	photo, err := svc.CreatePhoto(context.Background(), &domain.Photo{Title: "t", PhotoImage: "u"}, admin)
	require.NoError(t, err)

	require.NoError(t, svc.DeletePhoto(context.Background(), photo.ID))
	assert.Empty(t, store.items)
	assert.ErrorIs(t, svc.DeletePhoto(context.Background(), photo.ID), common.ErrContentNotFound)
}
