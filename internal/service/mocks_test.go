package service

import (
	"SwapMarket/internal/model"
	"SwapMarket/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.ItemRepository
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) ListAll(ctx context.Context, f repo.ItemFilter) ([]model.Item, error) {
	args := m.Called(ctx, f)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) ListByOwner(ctx context.Context, userID int64) ([]model.Item, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, id string, ownerID int64, updates map[string]any) (*model.Item, error) {
	args := m.Called(ctx, id, ownerID, updates)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Delete(ctx context.Context, id string, ownerID int64) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

// мок для repo.SwapRepository
type mockSwapRepo struct{ mock.Mock }

func (m *mockSwapRepo) Create(ctx context.Context, s *model.Swap) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSwapRepo) GetByID(ctx context.Context, id string) (*model.Swap, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Swap); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSwapRepo) ListForUser(ctx context.Context, userID int64) ([]model.Swap, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Swap); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSwapRepo) UpdateStatus(ctx context.Context, id string, from, to model.SwapStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *mockSwapRepo) Delete(ctx context.Context, id string, requesterID int64) error {
	return m.Called(ctx, id, requesterID).Error(0)
}

var _ repo.SwapRepository = (*mockSwapRepo)(nil)
