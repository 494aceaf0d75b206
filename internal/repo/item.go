package repo

import (
	"SwapMarket/internal/apperr"
	"SwapMarket/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemFilter ограничивает выборку всех вещей. Пустые поля не фильтруют.
type ItemFilter struct {
	Category model.Category
}

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
type ItemRepository interface {
	Create(ctx context.Context, it *model.Item) error
	// GetByID возвращает вещь или apperr.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Item, error)
	// ListAll возвращает все вещи с подгруженным владельцем, новые первыми.
	ListAll(ctx context.Context, f ItemFilter) ([]model.Item, error)
	ListByOwner(ctx context.Context, userID int64) ([]model.Item, error)
	// Update применяет колонки к вещи, только если она принадлежит ownerID.
	Update(ctx context.Context, id string, ownerID int64, updates map[string]any) (*model.Item, error)
	// Delete удаляет вещь владельца вместе с обменами, которые на неё ссылаются.
	Delete(ctx context.Context, id string, ownerID int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	if !validID(id) {
		return nil, apperr.ErrNotFound
	}
	var it model.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error; err != nil {
		return nil, notFound(err)
	}
	return &it, nil
}

func (r *itemRepo) ListAll(ctx context.Context, f ItemFilter) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Preload("User")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	var items []model.Item
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) ListByOwner(ctx context.Context, userID int64) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) Update(ctx context.Context, id string, ownerID int64, updates map[string]any) (*model.Item, error) {
	if len(updates) > 0 {
		tx := r.db.WithContext(ctx).
			Model(&model.Item{}).
			Where("id = ? AND user_id = ?", id, ownerID).
			Updates(updates)
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, apperr.ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *itemRepo) Delete(ctx context.Context, id string, ownerID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// обмены удаляем явно: в SQLite внешние ключи могут быть выключены
		if err := tx.Where("offered_item_id = ? OR requested_item_id = ?", id, id).
			Delete(&model.Swap{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Item{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// откатывает и удаление обменов
			return apperr.ErrNotFound
		}
		return nil
	})
}
