package service

import (
	"context"

	"addis-kitchen/internal/domain"
)

// MenuService is the read path over the catalog. The catalog itself is
// owned elsewhere; this service only lists and resolves items, with a
// short-lived cache in front of the listing.
type MenuService struct {
	repo  MenuRepository
	cache MenuCache
}

func NewMenuService(repo MenuRepository, cache MenuCache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetMenu(ctx); ok {
			return items, nil
		}
	}

	items, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetMenu(ctx, items)
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

var _ MenuServiceInterface = (*MenuService)(nil)
