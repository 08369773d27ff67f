package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/repository"
)

// AnnouncementService business logic for site-wide announcements
type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, req *domain.CreateAnnouncementRequest) (*domain.Announcement, error)
	GetAnnouncement(ctx context.Context, id string) (*domain.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id string, req *domain.UpdateAnnouncementRequest) (*domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}

type announcementService struct {
	repo repository.AnnouncementRepository
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{repo: repo}
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, req *domain.CreateAnnouncementRequest) (*domain.Announcement, error) {
	announcement := &domain.Announcement{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *announcementService) GetAnnouncement(ctx context.Context, id string) (*domain.Announcement, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *announcementService) ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error) {
	return s.repo.List(ctx)
}

func (s *announcementService) UpdateAnnouncement(ctx context.Context, id string, req *domain.UpdateAnnouncementRequest) (*domain.Announcement, error) {
	announcement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(announcement)
	now := time.Now()
	announcement.LastUpdated = &now

	if err := s.repo.Save(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *announcementService) DeleteAnnouncement(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
