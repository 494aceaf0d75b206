package service

import (
	"SwapMarket/internal/apperr"
	"SwapMarket/internal/model"
	"SwapMarket/internal/repo"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"
)

// ItemService инкапсулирует бизнес-логику работы с вещами.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, logger: logger}
}

// CreateItemInput поля новой вещи. Пустые Category и Condition получают значения по умолчанию.
type CreateItemInput struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	Condition   string
}

// ListQuery параметры выдачи всех вещей.
type ListQuery struct {
	Category string
	Query    string // нечёткий поиск по названию
}

// Create создаёт вещь от имени owner.
func (s *ItemService) Create(ctx context.Context, owner int64, in CreateItemInput) (*model.Item, error) {
	it := &model.Item{
		ID:          uuid.NewString(),
		UserID:      owner,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Category:    model.CategoryOther,
		Condition:   model.ConditionUsed,
	}
	if it.Title == "" || it.Description == "" || it.ImageURL == "" {
		return nil, fmt.Errorf("title, description and imageUrl are required: %w", apperr.ErrValidation)
	}
	if in.Category != "" {
		it.Category = model.ParseCategory(in.Category)
		if !it.Category.Valid() {
			return nil, fmt.Errorf("unknown category %q: %w", in.Category, apperr.ErrValidation)
		}
	}
	if in.Condition != "" {
		it.Condition = model.ParseCondition(in.Condition)
		if !it.Condition.Valid() {
			return nil, fmt.Errorf("unknown condition %q: %w", in.Condition, apperr.ErrValidation)
		}
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	s.logger.Infow("item created", "item_id", it.ID, "user_id", owner)
	return it, nil
}

// List возвращает все вещи с данными владельца.
// При заданном Query результат упорядочен по релевантности.
func (s *ItemService) List(ctx context.Context, q ListQuery) ([]model.Item, error) {
	var f repo.ItemFilter
	if q.Category != "" {
		f.Category = model.ParseCategory(q.Category)
		if !f.Category.Valid() {
			return nil, fmt.Errorf("unknown category %q: %w", q.Category, apperr.ErrValidation)
		}
	}

	items, err := s.repo.ListAll(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Owner = items[i].User.Identity()
	}

	query := strings.TrimSpace(q.Query)
	if query == "" {
		return items, nil
	}
	matches := fuzzy.FindFrom(query, itemTitles(items))
	found := make([]model.Item, 0, len(matches))
	for _, m := range matches {
		found = append(found, items[m.Index])
	}
	return found, nil
}

// Get возвращает вещь по id.
func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// ListMine возвращает вещи пользователя.
func (s *ItemService) ListMine(ctx context.Context, owner int64) ([]model.Item, error) {
	return s.repo.ListByOwner(ctx, owner)
}

// Update частично обновляет вещь. Менять может только владелец.
func (s *ItemService) Update(ctx context.Context, id string, actor int64, patch model.ItemPatch) (*model.Item, error) {
	it, err := s.owned(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return it, nil
	}
	updated, err := s.repo.Update(ctx, id, actor, patch.Columns())
	if err != nil {
		return nil, err
	}
	s.logger.Infow("item updated", "item_id", id, "user_id", actor)
	return updated, nil
}

// Delete удаляет вещь владельца.
func (s *ItemService) Delete(ctx context.Context, id string, actor int64) error {
	if _, err := s.owned(ctx, id, actor); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Infow("item deleted", "item_id", id, "user_id", actor)
	return nil
}

func (s *ItemService) owned(ctx context.Context, id string, actor int64) (*model.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it.UserID != actor {
		return nil, fmt.Errorf("item %s belongs to another user: %w", id, apperr.ErrForbidden)
	}
	return it, nil
}

// validatePatch: переданное поле не может сделать вещь невалидной.
func validatePatch(p model.ItemPatch) error {
	for name, v := range map[string]*string{"title": p.Title, "description": p.Description, "imageUrl": p.ImageURL} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return fmt.Errorf("%s cannot be empty: %w", name, apperr.ErrValidation)
		}
	}
	if p.Category != nil && !p.Category.Valid() {
		return fmt.Errorf("unknown category %q: %w", *p.Category, apperr.ErrValidation)
	}
	if p.Condition != nil && !p.Condition.Valid() {
		return fmt.Errorf("unknown condition %q: %w", *p.Condition, apperr.ErrValidation)
	}
	return nil
}

type itemTitles []model.Item

func (t itemTitles) String(i int) string { return t[i].Title }
func (t itemTitles) Len() int            { return len(t) }
