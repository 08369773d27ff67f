package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
)

// In-memory fakes. The store clones on every read and write so the
// engine's in-place mutations cannot leak into stored state, which is
// what makes the snapshot assertions meaningful.

type fakeNewsStore struct {
	items map[string]*domain.News
}

func newFakeNewsStore() *fakeNewsStore {
	return &fakeNewsStore{items: map[string]*domain.News{}}
}

func cloneNews(n *domain.News) *domain.News {
	raw, _ := json.Marshal(n)
	out := &domain.News{}
	_ = json.Unmarshal(raw, out)
	return out
}

func (s *fakeNewsStore) FindByID(_ context.Context, id string) (*domain.News, error) {
	n, ok := s.items[id]
	if !ok {
		return nil, common.ErrContentNotFound
	}
	return cloneNews(n), nil
}

func (s *fakeNewsStore) Create(_ context.Context, entity *domain.News) error {
	s.items[entity.ID] = cloneNews(entity)
	return nil
}

func (s *fakeNewsStore) Save(_ context.Context, entity *domain.News) error {
	s.items[entity.ID] = cloneNews(entity)
	return nil
}

func (s *fakeNewsStore) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return common.ErrContentNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *fakeNewsStore) List(_ context.Context, _ ...any) ([]*domain.News, error) {
	out := make([]*domain.News, 0, len(s.items))
	for _, n := range s.items {
		out = append(out, cloneNews(n))
	}
	return out, nil
}

func (s *fakeNewsStore) Latest(ctx context.Context, limit int) ([]*domain.News, error) {
	out, _ := s.List(ctx)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeNewsStore) SearchByTitle(_ context.Context, query string) ([]*domain.News, error) {
	var out []*domain.News
	for _, n := range s.items {
		if strings.Contains(n.Title, query) {
			out = append(out, cloneNews(n))
		}
	}
	return out, nil
}

func (s *fakeNewsStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

type fakeLedger struct {
	rows   []*domain.ContentVersion
	nextID uint64
}

func (l *fakeLedger) Count(_ context.Context, entityID string) (int64, error) {
	var count int64
	for _, r := range l.rows {
		if r.EntityID == entityID {
			count++
		}
	}
	return count, nil
}

func (l *fakeLedger) Append(_ context.Context, version *domain.ContentVersion) error {
	for _, r := range l.rows {
		if r.EntityID == version.EntityID && r.VersionNumber == version.VersionNumber {
			return common.ErrVersionConflict
		}
	}
	l.nextID++
	row := *version
	row.ID = l.nextID
	l.rows = append(l.rows, &row)
	return nil
}

func (l *fakeLedger) Find(_ context.Context, entityID string, versionNumber uint) (*domain.ContentVersion, error) {
	for _, r := range l.rows {
		if r.EntityID == entityID && r.VersionNumber == versionNumber {
			row := *r
			return &row, nil
		}
	}
	return nil, common.ErrVersionNotFound
}

func (l *fakeLedger) list(entityID string) []*domain.ContentVersion {
	var out []*domain.ContentVersion
	for _, r := range l.rows {
		if r.EntityID == entityID {
			row := *r
			out = append(out, &row)
		}
	}
	return out
}

func (l *fakeLedger) ListAsc(_ context.Context, entityID string) ([]*domain.ContentVersion, error) {
	out := l.list(entityID)
	sort.Slice(out, func(i, j int) bool { return out[i].VersionNumber < out[j].VersionNumber })
	return out, nil
}

func (l *fakeLedger) ListDesc(_ context.Context, entityID string) ([]*domain.ContentVersion, error) {
	out := l.list(entityID)
	sort.Slice(out, func(i, j int) bool { return out[i].VersionNumber > out[j].VersionNumber })
	return out, nil
}

func (l *fakeLedger) UpdateNumber(_ context.Context, id uint64, versionNumber uint) error {
	for _, r := range l.rows {
		if r.ID == id {
			r.VersionNumber = versionNumber
			return nil
		}
	}
	return common.ErrVersionNotFound
}

func (l *fakeLedger) Delete(_ context.Context, entityID string, versionNumber uint) error {
	for i, r := range l.rows {
		if r.EntityID == entityID && r.VersionNumber == versionNumber {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrVersionNotFound
}

type fakeCategories struct {
	ids map[string]bool
}

func (c *fakeCategories) Create(_ context.Context, category *domain.Category) error {
	c.ids[category.ID] = true
	return nil
}

func (c *fakeCategories) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if !c.ids[id] {
		return nil, common.ErrCategoryNotFound
	}
	return &domain.Category{ID: id}, nil
}

func (c *fakeCategories) Exists(_ context.Context, id string) (bool, error) {
	return c.ids[id], nil
}

func (c *fakeCategories) List(_ context.Context) ([]*domain.Category, error) { return nil, nil }

func (c *fakeCategories) Delete(_ context.Context, id string) error {
	delete(c.ids, id)
	return nil
}

var (
	admin     = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	moderator = domain.Actor{ID: "mod-1", Role: domain.RoleModerator}
	reporter  = domain.Actor{ID: "user-1", Role: domain.RoleUser}
	stranger  = domain.Actor{ID: "user-2", Role: domain.RoleUser}
)

func newTestEngine() (*ContentService[*domain.News], *fakeNewsStore, *fakeLedger) {
	store := newFakeNewsStore()
	ledger := &fakeLedger{}
	cats := &fakeCategories{ids: map[string]bool{"cat-1": true}}
	svc := NewContentService(domain.KindNews, store, ledger, cats,
		func() *domain.News { return &domain.News{} })
	return svc, store, ledger
}

func createArticle(t *testing.T, svc *ContentService[*domain.News], actor domain.Actor, title string) *domain.News {
	t.Helper()
	category := "cat-1"
	article, err := svc.Create(context.Background(), &domain.News{Title: title, CategoryID: category}, actor, &category)
	require.NoError(t, err)
	return article
}

func editTitle(t *testing.T, svc *ContentService[*domain.News], actor domain.Actor, id, title string) *domain.News {
	t.Helper()
	updated, err := svc.ApplyEdit(context.Background(), id, actor, &domain.UpdateNewsRequest{Title: &title})
	require.NoError(t, err)
	return updated
}

func TestCreateStatusByRole(t *testing.T) {
	tests := []struct {
		name  string
		actor domain.Actor
		want  domain.Status
	}{
		{"admin content goes live", admin, domain.StatusApproved},
		{"moderator content awaits approval", moderator, domain.StatusPending},
		{"user content awaits approval", reporter, domain.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, ledger := newTestEngine()
			article := createArticle(t, svc, tt.actor, "title")

			assert.NotEmpty(t, article.ID)
			assert.Equal(t, tt.want, article.Status)
			assert.Equal(t, tt.actor.ID, article.CreatedBy)

			// Creation never writes a version record
			count, err := ledger.Count(context.Background(), article.ID)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc, store, _ := newTestEngine()
	category := "no-such-category"

	_, err := svc.Create(context.Background(), &domain.News{Title: "t", CategoryID: category}, admin, &category)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Empty(t, store.items)
}

func TestEditSnapshotsPreEditState(t *testing.T) {
	svc, _, ledger := newTestEngine()
	article := createArticle(t, svc, admin, "first draft")

	updated := editTitle(t, svc, reporter, article.ID, "second draft")
	assert.Equal(t, "second draft", updated.Title)
	assert.NotNil(t, updated.LastUpdated)

	versions, err := svc.GetHistory(context.Background(), article.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, uint(1), versions[0].VersionNumber)
	assert.Equal(t, reporter.ID, versions[0].UpdatedBy)

	var snapshot domain.News
	require.NoError(t, json.Unmarshal(versions[0].Snapshot, &snapshot))
	assert.Equal(t, "first draft", snapshot.Title, "snapshot holds the pre-edit state")
	assert.Equal(t, domain.StatusApproved, snapshot.Status)

	// The same ledger write happens even when the patch changes nothing
	_, err = svc.ApplyEdit(context.Background(), article.ID, reporter, &domain.UpdateNewsRequest{})
	require.NoError(t, err)
	count, err := ledger.Count(context.Background(), article.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestEditResetsApproval(t *testing.T) {
	svc, _, _ := newTestEngine()
	article := createArticle(t, svc, admin, "title")
	require.Equal(t, domain.StatusApproved, article.Status)

	// A non-admin edit demotes approved content back to pending
	updated := editTitle(t, svc, reporter, article.ID, "edited")
	assert.Equal(t, domain.StatusPending, updated.Status)

	// An admin edit approves regardless of prior state
	updated = editTitle(t, svc, admin, article.ID, "edited again")
	assert.Equal(t, domain.StatusApproved, updated.Status)
}

func TestEditAuthorization(t *testing.T) {
	svc, _, ledger := newTestEngine()
	article := createArticle(t, svc, reporter, "title")

	title := "hijacked"
	_, err := svc.ApplyEdit(context.Background(), article.ID, stranger, &domain.UpdateNewsRequest{Title: &title})
	assert.ErrorIs(t, err, common.ErrForbidden)

	// A rejected edit must not have written a snapshot
	count, err := ledger.Count(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Owner and moderator are both allowed
	editTitle(t, svc, reporter, article.ID, "by owner")
	editTitle(t, svc, moderator, article.ID, "by moderator")
}

func TestEditRejectsUnknownCategoryBeforeSnapshot(t *testing.T) {
	svc, _, ledger := newTestEngine()
	article := createArticle(t, svc, admin, "title")

	category := "no-such-category"
	_, err := svc.ApplyEdit(context.Background(), article.ID, admin, &domain.UpdateNewsRequest{Category: &category})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	count, err := ledger.Count(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Zero(t, count, "validation failures must not leave orphan snapshots")
}

func TestVersionNumbersStayDense(t *testing.T) {
	svc, _, _ := newTestEngine()
	article := createArticle(t, svc, admin, "v0")

	for _, title := range []string{"v1", "v2", "v3"} {
		editTitle(t, svc, admin, article.ID, title)
	}

	versions, err := svc.GetHistory(context.Background(), article.ID)
	require.NoError(t, err)
	require.Len(t, versions, 3)
	// History is newest-first
	for i, v := range versions {
		assert.Equal(t, uint(3-i), v.VersionNumber)
	}
}

func TestRevertRestoresPreviousSnapshot(t *testing.T) {
	svc, _, _ := newTestEngine()
	article := createArticle(t, svc, admin, "one")
	editTitle(t, svc, admin, article.ID, "two")   // snapshot 1 holds "one"
	editTitle(t, svc, admin, article.ID, "three") // snapshot 2 holds "two"

	restored, err := svc.RevertToPreviousVersion(context.Background(), article.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "one", restored.Title)
	assert.Equal(t, article.ID, restored.ID)

	// The undone version record is discarded
	versions, err := svc.GetHistory(context.Background(), article.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, uint(1), versions[0].VersionNumber)

	current, err := svc.Get(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, "one", current.Title)
}

func TestRevertWithoutPreviousVersion(t *testing.T) {
	svc, _, _ := newTestEngine()
	article := createArticle(t, svc, admin, "one")
	editTitle(t, svc, admin, article.ID, "two")

	// Version 1 has nothing below it to restore
	_, err := svc.RevertToPreviousVersion(context.Background(), article.ID, 1)
	assert.ErrorIs(t, err, common.ErrVersionNotFound)

	_, err = svc.RevertToPreviousVersion(context.Background(), article.ID, 0)
	assert.ErrorIs(t, err, common.ErrVersionNotFound)
}

func TestDeleteVersionRenumbers(t *testing.T) {
	svc, _, _ := newTestEngine()
	article := createArticle(t, svc, admin, "v0")
	for _, title := range []string{"v1", "v2", "v3"} {
		editTitle(t, svc, admin, article.ID, title)
	}

	require.NoError(t, svc.DeleteVersion(context.Background(), article.ID, 2))

	versions, err := svc.GetHistory(context.Background(), article.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, uint(2), versions[0].VersionNumber)
	assert.Equal(t, uint(1), versions[1].VersionNumber)

	// The record that was number 3 now answers to number 2
	var snapshot domain.News
	require.NoError(t, json.Unmarshal(versions[0].Snapshot, &snapshot))
	assert.Equal(t, "v2", snapshot.Title)

	err = svc.DeleteVersion(context.Background(), article.ID, 99)
	assert.ErrorIs(t, err, common.ErrVersionNotFound)
}

// staleLedger under-reports the version count, the way a second writer
// sees it after losing a count-then-append race.
type staleLedger struct {
	*fakeLedger
}

func (l *staleLedger) Count(ctx context.Context, entityID string) (int64, error) {
	count, err := l.fakeLedger.Count(ctx, entityID)
	if count > 0 {
		count--
	}
	return count, err
}

func TestEditSurfacesVersionNumberCollision(t *testing.T) {
	store := newFakeNewsStore()
	ledger := &staleLedger{fakeLedger: &fakeLedger{}}
	cats := &fakeCategories{ids: map[string]bool{"cat-1": true}}
	svc := NewContentService[*domain.News](domain.KindNews, store, ledger, cats,
		func() *domain.News { return &domain.News{} })

	article := createArticle(t, svc, admin, "one")
	editTitle(t, svc, admin, article.ID, "two")

	// The stale count makes the second edit compute an already-taken
	// version number; the ledger's uniqueness check must turn that into
	// a retryable conflict instead of corrupting the numbering.
	title := "three"
	_, err := svc.ApplyEdit(context.Background(), article.ID, admin, &domain.UpdateNewsRequest{Title: &title})
	assert.ErrorIs(t, err, common.ErrVersionConflict)

	versions, err := svc.GetHistory(context.Background(), article.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, uint(1), versions[0].VersionNumber)
}

func TestApprove(t *testing.T) {
	svc, _, _ := newTestEngine()
	article := createArticle(t, svc, reporter, "title")
	require.Equal(t, domain.StatusPending, article.Status)

	_, err := svc.Approve(context.Background(), article.ID, moderator)
	assert.ErrorIs(t, err, common.ErrForbidden)

	approved, err := svc.Approve(context.Background(), article.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)
	assert.Equal(t, admin.ID, approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)

	// Approving again is a no-op, not an error
	again, err := svc.Approve(context.Background(), article.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, again.Status)
}

func TestHistorySurvivesEntityDeletion(t *testing.T) {
	svc, _, _ := newTestEngine()
	article := createArticle(t, svc, admin, "one")
	editTitle(t, svc, admin, article.ID, "two")

	require.NoError(t, svc.Delete(context.Background(), article.ID))

	_, err := svc.Get(context.Background(), article.ID)
	assert.ErrorIs(t, err, common.ErrContentNotFound)

	versions, err := svc.GetHistory(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Len(t, versions, 1)
}

func TestMagazineEngineWithoutCategories(t *testing.T) {
	ledger := &fakeLedger{}
	store := &fakeMagazineStore{items: map[string]*domain.Magazine{}}
	svc := NewContentService[*domain.Magazine](domain.KindMagazine, store, ledger, nil,
		func() *domain.Magazine { return &domain.Magazine{} })

	issue, err := svc.Create(context.Background(), &domain.Magazine{Title: "June issue"}, reporter, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, issue.Status)

	title := "July issue"
	updated, err := svc.ApplyEdit(context.Background(), issue.ID, reporter, &domain.UpdateMagazineRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "July issue", updated.Title)
}

type fakeMagazineStore struct {
	items map[string]*domain.Magazine
}

func cloneMagazine(m *domain.Magazine) *domain.Magazine {
	raw, _ := json.Marshal(m)
	out := &domain.Magazine{}
	_ = json.Unmarshal(raw, out)
	return out
}

func (s *fakeMagazineStore) FindByID(_ context.Context, id string) (*domain.Magazine, error) {
	m, ok := s.items[id]
	if !ok {
		return nil, common.ErrContentNotFound
	}
	return cloneMagazine(m), nil
}

func (s *fakeMagazineStore) Create(_ context.Context, entity *domain.Magazine) error {
	s.items[entity.ID] = cloneMagazine(entity)
	return nil
}

func (s *fakeMagazineStore) Save(_ context.Context, entity *domain.Magazine) error {
	s.items[entity.ID] = cloneMagazine(entity)
	return nil
}

func (s *fakeMagazineStore) Delete(_ context.Context, id string) error {
	delete(s.items, id)
	return nil
}

func (s *fakeMagazineStore) List(_ context.Context, _ ...any) ([]*domain.Magazine, error) {
	var out []*domain.Magazine
	for _, m := range s.items {
		out = append(out, cloneMagazine(m))
	}
	return out, nil
}

func (s *fakeMagazineStore) Latest(ctx context.Context, limit int) ([]*domain.Magazine, error) {
	return s.List(ctx)
}

func (s *fakeMagazineStore) SearchByTitle(_ context.Context, query string) ([]*domain.Magazine, error) {
	var out []*domain.Magazine
	for _, m := range s.items {
		if strings.Contains(m.Title, query) {
			out = append(out, cloneMagazine(m))
		}
	}
	return out, nil
}

func (s *fakeMagazineStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}
