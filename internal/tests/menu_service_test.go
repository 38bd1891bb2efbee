package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"addis-kitchen/internal/domain"
	"addis-kitchen/internal/mocks"
	"addis-kitchen/internal/service"
)

func TestMenuListUsesCacheWhenWarm(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)

	cached := []domain.MenuItem{{ID: "doro", Name: "Doro Wot"}}
	cache.On("GetMenu", mock.Anything).Return(cached, true).Once()

	svc := service.NewMenuService(repo, cache)

	items, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, cached, items)
	// The repository is never queried on a cache hit.
}

func TestMenuListFallsThroughOnMiss(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)

	fresh := []domain.MenuItem{{ID: "doro", Name: "Doro Wot"}}
	cache.On("GetMenu", mock.Anything).Return(nil, false).Once()
	repo.On("ListAvailable", mock.Anything).Return(fresh, nil).Once()
	cache.On("SetMenu", mock.Anything, fresh).Return(nil).Once()

	svc := service.NewMenuService(repo, cache)

	items, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, fresh, items)
}

func TestMenuListWithoutCache(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	repo.On("ListAvailable", mock.Anything).Return([]domain.MenuItem{}, nil).Once()

	svc := service.NewMenuService(repo, nil)

	_, err := svc.List(context.Background())
	assert.NoError(t, err)
}

func TestMenuListRepositoryError(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	repo.On("ListAvailable", mock.Anything).Return(nil, assert.AnError).Once()

	svc := service.NewMenuService(repo, nil)

	items, err := svc.List(context.Background())
	assert.Error(t, err)
	assert.Nil(t, items)
}
