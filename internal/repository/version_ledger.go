package repository

import (
	"context"
	"errors"

	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"gorm.io/gorm"
)

// VersionLedger append-only snapshot storage for one content kind.
// Rows are keyed (entity_id, version_number) with a unique index, so a
// concurrent count-then-append race surfaces as ErrVersionConflict
// instead of silently corrupting the numbering.
type VersionLedger interface {
	Count(ctx context.Context, entityID string) (int64, error)
	Append(ctx context.Context, version *domain.ContentVersion) error
	Find(ctx context.Context, entityID string, versionNumber uint) (*domain.ContentVersion, error)
	ListAsc(ctx context.Context, entityID string) ([]*domain.ContentVersion, error)
	ListDesc(ctx context.Context, entityID string) ([]*domain.ContentVersion, error)
	UpdateNumber(ctx context.Context, id uint64, versionNumber uint) error
	Delete(ctx context.Context, entityID string, versionNumber uint) error
}

type gormVersionLedger struct {
	db    *gorm.DB
	table string
}

// NewVersionLedger creates a GORM-backed ledger over the given table
func NewVersionLedger(db *gorm.DB, kind domain.Kind) VersionLedger {
	return &gormVersionLedger{db: db, table: kind.VersionTable()}
}

func (l *gormVersionLedger) Count(ctx context.Context, entityID string) (int64, error) {
	var count int64
	err := l.db.WithContext(ctx).Table(l.table).
		Where("entity_id = ?", entityID).
		Count(&count).Error
	return count, err
}

func (l *gormVersionLedger) Append(ctx context.Context, version *domain.ContentVersion) error {
	err := l.db.WithContext(ctx).Table(l.table).Create(version).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrVersionConflict
	}
	return err
}

func (l *gormVersionLedger) Find(ctx context.Context, entityID string, versionNumber uint) (*domain.ContentVersion, error) {
	var version domain.ContentVersion
	err := l.db.WithContext(ctx).Table(l.table).
		Where("entity_id = ? AND version_number = ?", entityID, versionNumber).
		First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrVersionNotFound
		}
		return nil, err
	}
	return &version, nil
}

func (l *gormVersionLedger) ListAsc(ctx context.Context, entityID string) ([]*domain.ContentVersion, error) {
	var versions []*domain.ContentVersion
	err := l.db.WithContext(ctx).Table(l.table).
		Where("entity_id = ?", entityID).
		Order("version_number ASC").
		Find(&versions).Error
	return versions, err
}

func (l *gormVersionLedger) ListDesc(ctx context.Context, entityID string) ([]*domain.ContentVersion, error) {
	var versions []*domain.ContentVersion
	err := l.db.WithContext(ctx).Table(l.table).
		Where("entity_id = ?", entityID).
		Order("version_number DESC").
		Find(&versions).Error
	return versions, err
}

func (l *gormVersionLedger) UpdateNumber(ctx context.Context, id uint64, versionNumber uint) error {
	return l.db.WithContext(ctx).Table(l.table).
		Where("id = ?", id).
		Update("version_number", versionNumber).Error
}

func (l *gormVersionLedger) Delete(ctx context.Context, entityID string, versionNumber uint) error {
	res := l.db.WithContext(ctx).Table(l.table).
		Where("entity_id = ? AND version_number = ?", entityID, versionNumber).
		Delete(&domain.ContentVersion{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrVersionNotFound
	}
	return nil
}
