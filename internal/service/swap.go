package service

import (
	"SwapMarket/internal/apperr"
	"SwapMarket/internal/model"
	"SwapMarket/internal/repo"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SwapService — авторизация и переходы статусов обмена поверх хранилищ.
type SwapService struct {
	swaps  repo.SwapRepository
	items  repo.ItemRepository
	logger *zap.SugaredLogger
}

func NewSwapService(swaps repo.SwapRepository, items repo.ItemRepository, logger *zap.SugaredLogger) *SwapService {
	return &SwapService{swaps: swaps, items: items, logger: logger}
}

// Request создаёт обмен в статусе pending.
// Инициатор обязан владеть offered-вещью, requested-вещь должна быть чужой.
func (s *SwapService) Request(ctx context.Context, requester int64, offeredID, requestedID string) (*model.Swap, error) {
	if offeredID == "" || requestedID == "" {
		return nil, fmt.Errorf("offeredItemId and requestedItemId are required: %w", apperr.ErrValidation)
	}
	offered, err := s.items.GetByID(ctx, offeredID)
	if err != nil {
		return nil, fmt.Errorf("offered item: %w", err)
	}
	requested, err := s.items.GetByID(ctx, requestedID)
	if err != nil {
		return nil, fmt.Errorf("requested item: %w", err)
	}
	if offered.UserID != requester {
		return nil, fmt.Errorf("offered item is not yours: %w", apperr.ErrForbidden)
	}
	if requested.UserID == requester {
		return nil, fmt.Errorf("cannot request your own item: %w", apperr.ErrValidation)
	}

	sw := &model.Swap{
		ID:              uuid.NewString(),
		RequesterID:     requester,
		OfferedItemID:   offered.ID,
		RequestedItemID: requested.ID,
		Status:          model.SwapPending,
	}
	if err := s.swaps.Create(ctx, sw); err != nil {
		return nil, err
	}
	s.logger.Infow("swap requested", "swap_id", sw.ID, "requester", requester,
		"offered", offered.ID, "requested", requested.ID)
	return sw, nil
}

// ListForUser возвращает обмены пользователя (как инициатора и как получателя), новые первыми.
func (s *SwapService) ListForUser(ctx context.Context, user int64) ([]model.Swap, error) {
	list, err := s.swaps.ListForUser(ctx, user)
	if err != nil {
		return nil, err
	}
	for i := range list {
		enrich(&list[i])
	}
	return list, nil
}

// Get возвращает обмен любому аутентифицированному пользователю.
func (s *SwapService) Get(ctx context.Context, id string, actor int64) (*model.Swap, error) {
	sw, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enrich(sw)
	return sw, nil
}

// Accept принимает обмен. Доступно только владельцу запрошенной вещи.
func (s *SwapService) Accept(ctx context.Context, id string, actor int64) (*model.Swap, error) {
	return s.transition(ctx, id, actor, model.SwapAccepted)
}

// Reject отклоняет обмен. Доступно только владельцу запрошенной вещи.
func (s *SwapService) Reject(ctx context.Context, id string, actor int64) (*model.Swap, error) {
	return s.transition(ctx, id, actor, model.SwapRejected)
}

// Delete удаляет обмен. Доступно только инициатору.
func (s *SwapService) Delete(ctx context.Context, id string, actor int64) error {
	sw, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sw.RequesterID != actor {
		return fmt.Errorf("only the requester may delete swap %s: %w", id, apperr.ErrForbidden)
	}
	if err := s.swaps.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Infow("swap deleted", "swap_id", id, "user_id", actor)
	return nil
}

// transition переводит pending -> to одним условным UPDATE.
// Статусы accepted и rejected конечные: повторный переход даёт apperr.ErrConflict.
func (s *SwapService) transition(ctx context.Context, id string, actor int64, to model.SwapStatus) (*model.Swap, error) {
	sw, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sw.RequestedItem == nil {
		return nil, fmt.Errorf("requested item of swap %s: %w", id, apperr.ErrNotFound)
	}
	if sw.ReceiverID() != actor {
		return nil, fmt.Errorf("only the owner of the requested item may %s: %w", verb(to), apperr.ErrForbidden)
	}

	changed, err := s.swaps.UpdateStatus(ctx, id, model.SwapPending, to)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, fmt.Errorf("swap %s is not pending: %w", id, apperr.ErrConflict)
	}
	s.logger.Infow("swap status changed", "swap_id", id, "status", to, "user_id", actor)

	updated, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enrich(updated)
	return updated, nil
}

func enrich(sw *model.Swap) {
	sw.RequesterInfo = sw.Requester.Identity()
}

func verb(to model.SwapStatus) string {
	if to == model.SwapAccepted {
		return "accept"
	}
	return "reject"
}
