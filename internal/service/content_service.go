package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/repository"
)

// Patch a partial update to one content entity. Only fields present in
// the original request are applied; classification tags must already be
// canonicalized before the patch reaches the engine.
type Patch[E domain.Content] interface {
	Apply(entity E)
	CategoryRef() *string
}

// ContentService the moderation/versioning engine, generic across the
// five content kinds. Every mutating edit snapshots the pre-edit state
// into the kind's version ledger; edits recompute the moderation status
// from the acting role; reverts restore the previous snapshot and
// discard the undone version.
type ContentService[E domain.Content] struct {
	kind       domain.Kind
	store      repository.ContentStore[E]
	ledger     repository.VersionLedger
	categories repository.CategoryRepository
	newFn      func() E
	locks      keyedMutex
}

// NewContentService creates the engine for one content kind.
// categories may be nil for kinds without a category reference.
func NewContentService[E domain.Content](
	kind domain.Kind,
	store repository.ContentStore[E],
	ledger repository.VersionLedger,
	categories repository.CategoryRepository,
	newFn func() E,
) *ContentService[E] {
	return &ContentService[E]{
		kind:       kind,
		store:      store,
		ledger:     ledger,
		categories: categories,
		newFn:      newFn,
	}
}

// Kind returns the content kind this engine serves
func (s *ContentService[E]) Kind() domain.Kind { return s.kind }

// Create persists a new entity. Initial status is approved for admin
// creators and pending for everyone else. Creation never writes a
// version record; the ledger only captures pre-edit states.
func (s *ContentService[E]) Create(ctx context.Context, entity E, actor domain.Actor, categoryRef *string) (E, error) {
	var zero E

	if err := s.checkCategory(ctx, categoryRef); err != nil {
		return zero, err
	}

	entity.SetID(uuid.NewString())
	entity.SetCreatedBy(actor.ID)
	entity.SetStatus(domain.StatusFor(actor))

	if err := s.store.Create(ctx, entity); err != nil {
		return zero, err
	}
	return entity, nil
}

// Get loads one entity by id
func (s *ContentService[E]) Get(ctx context.Context, id string) (E, error) {
	return s.store.FindByID(ctx, id)
}

// List returns entities newest-first with an optional filter condition
func (s *ContentService[E]) List(ctx context.Context, conds ...any) ([]E, error) {
	return s.store.List(ctx, conds...)
}

// Latest returns the newest entities up to limit
func (s *ContentService[E]) Latest(ctx context.Context, limit int) ([]E, error) {
	return s.store.Latest(ctx, limit)
}

// Search returns entities whose title matches the query
func (s *ContentService[E]) Search(ctx context.Context, query string) ([]E, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", common.ErrInvalidInput)
	}
	return s.store.SearchByTitle(ctx, query)
}

// Count returns the total number of entities of this kind
func (s *ContentService[E]) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// Delete removes an entity. The version ledger is intentionally left in
// place so history survives entity deletion.
func (s *ContentService[E]) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// ApplyEdit performs the snapshot-then-mutate sequence:
// authorize, snapshot the pre-edit state at version count+1, apply the
// partial patch, recompute moderation status from the acting role, save.
// The whole sequence runs under a per-entity lock; the ledger's unique
// index turns any remaining version-number race into ErrVersionConflict.
func (s *ContentService[E]) ApplyEdit(ctx context.Context, id string, actor domain.Actor, patch Patch[E]) (E, error) {
	var zero E

	unlock := s.locks.lock(id)
	defer unlock()

	entity, err := s.store.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}

	if !actor.CanModerate() && actor.ID != entity.GetCreatedBy() {
		return zero, common.ErrForbidden
	}

	if err := s.checkCategory(ctx, patch.CategoryRef()); err != nil {
		return zero, err
	}

	// Snapshot is unconditional once authorization and validation pass,
	// even if the patch turns out to be a no-op.
	now := time.Now()
	if err := s.snapshot(ctx, entity, actor, now); err != nil {
		return zero, err
	}

	patch.Apply(entity)
	entity.SetStatus(domain.StatusFor(actor))
	entity.Touch(now)

	if err := s.store.Save(ctx, entity); err != nil {
		// The snapshot is already written; we accept the orphan record
		// rather than attempting a compensating delete.
		return zero, err
	}
	return entity, nil
}

func (s *ContentService[E]) snapshot(ctx context.Context, entity E, actor domain.Actor, now time.Time) error {
	count, err := s.ledger.Count(ctx, entity.GetID())
	if err != nil {
		return err
	}
	raw, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	return s.ledger.Append(ctx, &domain.ContentVersion{
		EntityID:      entity.GetID(),
		VersionNumber: uint(count) + 1,
		Snapshot:      raw,
		UpdatedBy:     actor.ID,
		UpdatedAt:     now,
	})
}

// Approve explicitly approves an entity. Admin only. Approving an
// already-approved entity is an idempotent no-op.
func (s *ContentService[E]) Approve(ctx context.Context, id string, actor domain.Actor) (E, error) {
	var zero E

	if actor.Role != domain.RoleAdmin {
		return zero, common.ErrForbidden
	}

	entity, err := s.store.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}

	if entity.GetStatus() == domain.StatusApproved {
		return entity, nil
	}

	entity.MarkApproved(actor.ID, time.Now())
	if err := s.store.Save(ctx, entity); err != nil {
		return zero, err
	}
	return entity, nil
}

// GetHistory returns all version snapshots for an entity, latest first
func (s *ContentService[E]) GetHistory(ctx context.Context, id string) ([]*domain.ContentVersion, error) {
	return s.ledger.ListDesc(ctx, id)
}

// RevertToPreviousVersion undoes the edit recorded as currentVersion:
// the entity document is overwritten with the snapshot at
// currentVersion-1 (a raw replace, not a merge) and the record at
// currentVersion is deleted. Fails with ErrVersionNotFound when no
// previous snapshot exists, which covers currentVersion <= 1.
func (s *ContentService[E]) RevertToPreviousVersion(ctx context.Context, id string, currentVersion uint) (E, error) {
	var zero E

	unlock := s.locks.lock(id)
	defer unlock()

	if currentVersion <= 1 {
		return zero, common.ErrVersionNotFound
	}
	target, err := s.ledger.Find(ctx, id, currentVersion-1)
	if err != nil {
		return zero, err
	}

	restored := s.newFn()
	if err := json.Unmarshal(target.Snapshot, restored); err != nil {
		return zero, fmt.Errorf("decode snapshot: %w", err)
	}
	restored.SetID(id)

	if err := s.store.Save(ctx, restored); err != nil {
		return zero, err
	}

	// Not atomic with the restore above; a failure here leaves the
	// entity restored with the stale version record still present.
	if err := s.ledger.Delete(ctx, id, currentVersion); err != nil {
		return zero, err
	}
	return restored, nil
}

// DeleteVersion removes one snapshot and renumbers the remaining
// records so version numbers stay dense 1..N. Renumbering walks the
// survivors in ascending order; numbers only ever move down, so the
// rewrites cannot collide with the unique index.
func (s *ContentService[E]) DeleteVersion(ctx context.Context, id string, versionNumber uint) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.ledger.Delete(ctx, id, versionNumber); err != nil {
		return err
	}

	remaining, err := s.ledger.ListAsc(ctx, id)
	if err != nil {
		return err
	}
	for i, v := range remaining {
		want := uint(i + 1)
		if v.VersionNumber == want {
			continue
		}
		if err := s.ledger.UpdateNumber(ctx, v.ID, want); err != nil {
			return err
		}
	}
	return nil
}

func (s *ContentService[E]) checkCategory(ctx context.Context, ref *string) error {
	if ref == nil || s.categories == nil {
		return nil
	}
	if *ref == "" {
		return fmt.Errorf("%w: category is required", common.ErrInvalidInput)
	}
	exists, err := s.categories.Exists(ctx, *ref)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: invalid category ID", common.ErrInvalidInput)
	}
	return nil
}
