package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/repository"
)

// CategoryService business logic for content categories
type CategoryService interface {
	CreateCategory(ctx context.Context, req *domain.CreateCategoryRequest, actor domain.Actor) (*domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	DeleteCategory(ctx context.Context, id string, actor domain.Actor) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *domain.CreateCategoryRequest, actor domain.Actor) (*domain.Category, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, common.ErrForbidden
	}

	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return common.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
