package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/repository"
)

// PhotoService business logic for gallery photos. Photos share the
// role-based moderation lifecycle of article content but keep no
// version history, so they bypass the versioning engine entirely.
type PhotoService interface {
	CreatePhoto(ctx context.Context, photo *domain.Photo, actor domain.Actor) (*domain.Photo, error)
	ApprovePhoto(ctx context.Context, id string, actor domain.Actor) (*domain.Photo, error)
	GetPhoto(ctx context.Context, id string) (*domain.Photo, error)
	ListPhotos(ctx context.Context) ([]*domain.Photo, error)
	DeletePhoto(ctx context.Context, id string) error
}

type photoService struct {
	store repository.ContentStore[*domain.Photo]
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(store repository.ContentStore[*domain.Photo]) PhotoService {
	return &photoService{store: store}
}

func (s *photoService) CreatePhoto(ctx context.Context, photo *domain.Photo, actor domain.Actor) (*domain.Photo, error) {
	photo.SetID(uuid.NewString())
	photo.SetCreatedBy(actor.ID)
	photo.SetStatus(domain.StatusFor(actor))

	if err := s.store.Create(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// ApprovePhoto approves a pending photo. Unlike versioned content,
// approving an already-approved photo is a Conflict, not a no-op.
func (s *photoService) ApprovePhoto(ctx context.Context, id string, actor domain.Actor) (*domain.Photo, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, common.ErrForbidden
	}

	photo, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if photo.GetStatus() == domain.StatusApproved {
		return nil, common.ErrConflict
	}

	photo.MarkApproved(actor.ID, time.Now())
	photo.Touch(time.Now())
	if err := s.store.Save(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *photoService) GetPhoto(ctx context.Context, id string) (*domain.Photo, error) {
	return s.store.FindByID(ctx, id)
}

func (s *photoService) ListPhotos(ctx context.Context) ([]*domain.Photo, error) {
	return s.store.List(ctx)
}

func (s *photoService) DeletePhoto(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
