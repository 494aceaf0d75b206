package service

import (
	"SwapMarket/internal/apperr"
	"SwapMarket/internal/model"
	"SwapMarket/internal/repo"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func newItemSvc() (*ItemService, *mockItemRepo) {
	m := new(mockItemRepo)
	return NewItemService(m, zap.NewNop().Sugar()), m
}

func TestItemService_Create_AppliesDefaults(t *testing.T) {
	svc, m := newItemSvc()
	m.On("Create", mock.Anything, mock.AnythingOfType("*model.Item")).Return(nil).Once()

	it, err := svc.Create(context.Background(), 7, CreateItemInput{
		Title: "Denim jacket", Description: "blue", ImageURL: "https://img/1.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryOther, it.Category)
	assert.Equal(t, model.ConditionUsed, it.Condition)
	assert.Equal(t, int64(7), it.UserID)
	assert.NotEmpty(t, it.ID)
	m.AssertExpectations(t)
}

func TestItemService_Create_Validation(t *testing.T) {
	cases := map[string]CreateItemInput{
		"no title":       {Description: "d", ImageURL: "u"},
		"no description": {Title: "t", ImageURL: "u"},
		"no image":       {Title: "t", Description: "d"},
		"blank title":    {Title: "   ", Description: "d", ImageURL: "u"},
		"bad category":   {Title: "t", Description: "d", ImageURL: "u", Category: "hats"},
		"bad condition":  {Title: "t", Description: "d", ImageURL: "u", Condition: "mint"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			svc, m := newItemSvc()
			_, err := svc.Create(context.Background(), 1, in)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestItemService_Create_LikeNewAlias(t *testing.T) {
	svc, m := newItemSvc()
	m.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	it, err := svc.Create(context.Background(), 1, CreateItemInput{
		Title: "t", Description: "d", ImageURL: "u", Category: "Footwear", Condition: "like new",
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFootwear, it.Category)
	assert.Equal(t, model.ConditionLikeNew, it.Condition)
}

func TestItemService_Get_NotFound(t *testing.T) {
	svc, m := newItemSvc()
	m.On("GetByID", mock.Anything, "nope").Return(nil, apperr.ErrNotFound).Once()

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()
	existing := &model.Item{ID: "i1", UserID: 1, Title: "old", Description: "d", ImageURL: "u",
		Category: model.CategoryTops, Condition: model.ConditionUsed}

	t.Run("forbidden for non-owner", func(t *testing.T) {
		svc, m := newItemSvc()
		m.On("GetByID", mock.Anything, "i1").Return(existing, nil).Once()

		_, err := svc.Update(ctx, "i1", 3, model.ItemPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, apperr.ErrForbidden)
		m.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newItemSvc()
		m.On("GetByID", mock.Anything, "i1").Return(nil, apperr.ErrNotFound).Once()

		_, err := svc.Update(ctx, "i1", 1, model.ItemPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("only supplied fields", func(t *testing.T) {
		svc, m := newItemSvc()
		m.On("GetByID", mock.Anything, "i1").Return(existing, nil).Once()
		m.On("Update", mock.Anything, "i1", int64(1), map[string]any{"title": "new"}).
			Return(&model.Item{ID: "i1", UserID: 1, Title: "new", Description: "d"}, nil).Once()

		got, err := svc.Update(ctx, "i1", 1, model.ItemPatch{Title: strPtr("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", got.Title)
		assert.Equal(t, "d", got.Description)
		m.AssertExpectations(t)
	})

	t.Run("supplied strings are trimmed", func(t *testing.T) {
		svc, m := newItemSvc()
		m.On("GetByID", mock.Anything, "i1").Return(existing, nil).Once()
		m.On("Update", mock.Anything, "i1", int64(1), map[string]any{"title": "new", "image_url": "https://img/n.jpg"}).
			Return(&model.Item{ID: "i1", UserID: 1, Title: "new", ImageURL: "https://img/n.jpg"}, nil).Once()

		_, err := svc.Update(ctx, "i1", 1, model.ItemPatch{Title: strPtr("  new "), ImageURL: strPtr(" https://img/n.jpg\n")})
		require.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("explicit empty title rejected", func(t *testing.T) {
		svc, m := newItemSvc()
		m.On("GetByID", mock.Anything, "i1").Return(existing, nil).Once()

		_, err := svc.Update(ctx, "i1", 1, model.ItemPatch{Title: strPtr("")})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		svc, m := newItemSvc()
		m.On("GetByID", mock.Anything, "i1").Return(existing, nil).Once()

		got, err := svc.Update(ctx, "i1", 1, model.ItemPatch{})
		require.NoError(t, err)
		assert.Equal(t, "old", got.Title)
		m.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()
	existing := &model.Item{ID: "i1", UserID: 1}

	t.Run("forbidden", func(t *testing.T) {
		svc, m := newItemSvc()
		m.On("GetByID", mock.Anything, "i1").Return(existing, nil).Once()
		assert.ErrorIs(t, svc.Delete(ctx, "i1", 2), apperr.ErrForbidden)
		m.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner", func(t *testing.T) {
		svc, m := newItemSvc()
		m.On("GetByID", mock.Anything, "i1").Return(existing, nil).Once()
		m.On("Delete", mock.Anything, "i1", int64(1)).Return(nil).Once()
		assert.NoError(t, svc.Delete(ctx, "i1", 1))
		m.AssertExpectations(t)
	})
}

func TestItemService_List(t *testing.T) {
	ctx := context.Background()
	items := []model.Item{
		{ID: "1", Title: "Red wool scarf", User: &model.User{ID: 1, Name: "Ann", Email: "ann@example.com"}},
		{ID: "2", Title: "Leather boots", User: &model.User{ID: 2, Name: "Bob", Email: "bob@example.com"}},
	}

	t.Run("owner identity attached", func(t *testing.T) {
		svc, m := newItemSvc()
		m.On("ListAll", mock.Anything, repo.ItemFilter{}).Return(items, nil).Once()

		got, err := svc.List(ctx, ListQuery{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		if assert.NotNil(t, got[0].Owner) {
			assert.Equal(t, "Ann", got[0].Owner.Name)
			assert.Equal(t, "ann@example.com", got[0].Owner.Email)
		}
	})

	t.Run("fuzzy query", func(t *testing.T) {
		svc, m := newItemSvc()
		m.On("ListAll", mock.Anything, repo.ItemFilter{Category: model.CategoryFootwear}).Return(items, nil).Once()

		got, err := svc.List(ctx, ListQuery{Category: "footwear", Query: "boots"})
		require.NoError(t, err)
		if assert.Len(t, got, 1) {
			assert.Equal(t, "2", got[0].ID)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, _ := newItemSvc()
		_, err := svc.List(ctx, ListQuery{Category: "hats"})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("repo error", func(t *testing.T) {
		svc, m := newItemSvc()
		m.On("ListAll", mock.Anything, repo.ItemFilter{}).Return(nil, errors.New("db down")).Once()
		_, err := svc.List(ctx, ListQuery{})
		assert.Error(t, err)
	})
}
