package repository

import (
	"context"
	"errors"

	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"gorm.io/gorm"
)

// AnnouncementRepository announcement data access
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	FindByID(ctx context.Context, id string) (*domain.Announcement, error)
	List(ctx context.Context) ([]*domain.Announcement, error)
	Save(ctx context.Context, announcement *domain.Announcement) error
	Delete(ctx context.Context, id string) error
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) FindByID(ctx context.Context, id string) (*domain.Announcement, error) {
	var announcement domain.Announcement
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&announcement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepository) List(ctx context.Context) ([]*domain.Announcement, error) {
	var announcements []*domain.Announcement
	err := r.db.WithContext(ctx).Order("created_time DESC").Find(&announcements).Error
	return announcements, err
}

func (r *announcementRepository) Save(ctx context.Context, announcement *domain.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Announcement{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}
