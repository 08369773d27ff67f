package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
)

type fakeAnnouncementRepo struct {
	items map[string]*domain.Announcement
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) error {
	clone := *a
	r.items[a.ID] = &clone
	return nil
}

func (r *fakeAnnouncementRepo) FindByID(_ context.Context, id string) (*domain.Announcement, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAnnouncementRepo) List(_ context.Context) ([]*domain.Announcement, error) {
	var out []*domain.Announcement
	for _, a := range r.items {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeAnnouncementRepo) Save(_ context.Context, a *domain.Announcement) error {
	clone := *a
	r.items[a.ID] = &clone
	return nil
}

func (r *fakeAnnouncementRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func newAnnouncementService() AnnouncementService {
	return NewAnnouncementService(&fakeAnnouncementRepo{items: map[string]*domain.Announcement{}})
}

func TestAnnouncementCRUD(t *testing.T) {
	svc := newAnnouncementService()

	created, err := svc.CreateAnnouncement(context.Background(), &domain.CreateAnnouncementRequest{
		Title:       "maintenance window",
		Description: "service will be down on sunday",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Nil(t, created.LastUpdated)

	got, err := svc.GetAnnouncement(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "maintenance window", got.Title)

	all, err := svc.ListAnnouncements(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeleteAnnouncement(context.Background(), created.ID))
	_, err = svc.GetAnnouncement(context.Background(), created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateAnnouncementIsPartial(t *testing.T) {
	svc := newAnnouncementService()
	created, err := svc.CreateAnnouncement(context.Background(), &domain.CreateAnnouncementRequest{
		Title:       "old title",
		Description: "old description",
	})
	require.NoError(t, err)

	title := "new title"
	updated, err := svc.UpdateAnnouncement(context.Background(), created.ID, &domain.UpdateAnnouncementRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "old description", updated.Description, "absent fields untouched")
	assert.NotNil(t, updated.LastUpdated)

	_, err = svc.UpdateAnnouncement(context.Background(), "missing", &domain.UpdateAnnouncementRequest{Title: &title})
	assert.ErrorIs(t, err, common.ErrNotFound)
}
