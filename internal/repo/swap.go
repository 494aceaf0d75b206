package repo

import (
	"SwapMarket/internal/apperr"
	"SwapMarket/internal/model"
	"context"

	"gorm.io/gorm"
)

// SwapRepository определяет контракт доступа к Swap.
type SwapRepository interface {
	Create(ctx context.Context, s *model.Swap) error
	// GetByID возвращает обмен с подгруженными вещами и инициатором.
	GetByID(ctx context.Context, id string) (*model.Swap, error)
	// ListForUser возвращает обмены, где userID инициатор или владелец запрошенной вещи.
	ListForUser(ctx context.Context, userID int64) ([]model.Swap, error)
	// UpdateStatus атомарно переводит статус from -> to.
	// changed=false, если обмен уже не в статусе from.
	UpdateStatus(ctx context.Context, id string, from, to model.SwapStatus) (changed bool, err error)
	// Delete удаляет обмен, созданный requesterID.
	Delete(ctx context.Context, id string, requesterID int64) error
}

type swapRepo struct {
	db *gorm.DB
}

// NewSwapRepository создаёт реализацию репозитория для Swap.
func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepo{db: db}
}

func (r *swapRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("OfferedItem").
		Preload("RequestedItem").
		Preload("Requester")
}

func (r *swapRepo) Create(ctx context.Context, s *model.Swap) error {
	return r.db.WithContext(ctx).Omit("Requester", "OfferedItem", "RequestedItem").Create(s).Error
}

func (r *swapRepo) GetByID(ctx context.Context, id string) (*model.Swap, error) {
	if !validID(id) {
		return nil, apperr.ErrNotFound
	}
	var s model.Swap
	if err := r.withRelations(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *swapRepo) ListForUser(ctx context.Context, userID int64) ([]model.Swap, error) {
	var swaps []model.Swap
	err := r.withRelations(ctx).
		Select("swaps.*").
		Joins("JOIN items AS ri ON ri.id = swaps.requested_item_id").
		Where("swaps.requester_id = ? OR ri.user_id = ?", userID, userID).
		Order("swaps.created_at DESC").
		Find(&swaps).Error
	if err != nil {
		return nil, err
	}
	return swaps, nil
}

func (r *swapRepo) UpdateStatus(ctx context.Context, id string, from, to model.SwapStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Swap{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *swapRepo) Delete(ctx context.Context, id string, requesterID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND requester_id = ?", id, requesterID).
		Delete(&model.Swap{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
