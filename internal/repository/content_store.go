package repository

import (
	"context"
	"errors"

	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"gorm.io/gorm"
)

// ContentStore generic data access for one versionable content kind.
// E is instantiated with a pointer entity type (*domain.News, ...).
type ContentStore[E domain.Content] interface {
	FindByID(ctx context.Context, id string) (E, error)
	Create(ctx context.Context, entity E) error
	// Save writes the full entity row, zero values included. It serves
	// both the ordinary persist-after-patch path and the raw replace
	// used by revert, where fields absent from an old snapshot must be
	// dropped rather than merged.
	Save(ctx context.Context, entity E) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, conds ...any) ([]E, error)
	Latest(ctx context.Context, limit int) ([]E, error)
	SearchByTitle(ctx context.Context, query string) ([]E, error)
	Count(ctx context.Context) (int64, error)
}

type gormContentStore[E domain.Content] struct {
	db    *gorm.DB
	newFn func() E
}

// NewContentStore creates a GORM-backed ContentStore for one kind.
// newFn allocates a fresh zero entity (used for lookups and restores).
func NewContentStore[E domain.Content](db *gorm.DB, newFn func() E) ContentStore[E] {
	return &gormContentStore[E]{db: db, newFn: newFn}
}

func (s *gormContentStore[E]) FindByID(ctx context.Context, id string) (E, error) {
	entity := s.newFn()
	err := s.db.WithContext(ctx).Where("id = ?", id).First(entity).Error
	if err != nil {
		var zero E
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, common.ErrContentNotFound
		}
		return zero, err
	}
	return entity, nil
}

func (s *gormContentStore[E]) Create(ctx context.Context, entity E) error {
	return s.db.WithContext(ctx).Create(entity).Error
}

func (s *gormContentStore[E]) Save(ctx context.Context, entity E) error {
	return s.db.WithContext(ctx).Save(entity).Error
}

func (s *gormContentStore[E]) Delete(ctx context.Context, id string) error {
	entity := s.newFn()
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrContentNotFound
	}
	return nil
}

// List returns entities newest-first, optionally filtered by a
// query/args condition pair (e.g. "news_type = ?", "statenews").
func (s *gormContentStore[E]) List(ctx context.Context, conds ...any) ([]E, error) {
	var entities []E
	tx := s.db.WithContext(ctx).Order("created_time DESC")
	if len(conds) > 0 {
		tx = tx.Where(conds[0], conds[1:]...)
	}
	err := tx.Find(&entities).Error
	return entities, err
}

func (s *gormContentStore[E]) Latest(ctx context.Context, limit int) ([]E, error) {
	var entities []E
	err := s.db.WithContext(ctx).
		Order("created_time DESC").
		Limit(limit).
		Find(&entities).Error
	return entities, err
}

func (s *gormContentStore[E]) SearchByTitle(ctx context.Context, query string) ([]E, error) {
	var entities []E
	err := s.db.WithContext(ctx).
		Where("title LIKE ?", "%"+query+"%").
		Order("created_time DESC").
		Find(&entities).Error
	return entities, err
}

func (s *gormContentStore[E]) Count(ctx context.Context) (int64, error) {
	var count int64
	entity := s.newFn()
	err := s.db.WithContext(ctx).Model(entity).Count(&count).Error
	return count, err
}
