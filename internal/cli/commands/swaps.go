package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"SwapMarket/internal/config"
	"SwapMarket/internal/model"
)

type swapsCmd struct{}

func (swapsCmd) Name() string        { return "swaps" }
func (swapsCmd) Description() string { return "Мои обмены: отправленные и полученные" }
func (swapsCmd) Usage() string       { return "swaps" }

func (swapsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []model.Swap
	if err := call(ctx, cfg, http.MethodGet, "/api/swaps", nil, http.StatusOK, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет обменов")
		return nil
	}
	for _, sw := range list {
		printSwapLine(Out, sw)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

type swapGetCmd struct{}

func (swapGetCmd) Name() string        { return "swap-get" }
func (swapGetCmd) Description() string { return "Показать обмен по id" }
func (swapGetCmd) Usage() string       { return "swap-get <id>" }

func (swapGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	var sw model.Swap
	if err := call(ctx, cfg, http.MethodGet, "/api/swaps/"+url.PathEscape(args[0]), nil, http.StatusOK, &sw); err != nil {
		return err
	}
	printSwap(Out, sw)
	return nil
}

type swapRequestBody struct {
	OfferedItemID   string `json:"offeredItemId"`
	RequestedItemID string `json:"requestedItemId"`
}

type swapRequestCmd struct{}

func (swapRequestCmd) Name() string        { return "swap-request" }
func (swapRequestCmd) Description() string { return "Предложить свою вещь в обмен на чужую" }
func (swapRequestCmd) Usage() string       { return "swap-request <offeredItemId> <requestedItemId>" }

func (swapRequestCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 || args[0] == "" || args[1] == "" {
		return ErrUsage
	}
	var sw model.Swap
	body := swapRequestBody{OfferedItemID: args[0], RequestedItemID: args[1]}
	if err := call(ctx, cfg, http.MethodPost, "/api/swaps", body, http.StatusCreated, &sw); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Swap requested: %s (%s)\n", sw.ID, sw.Status)
	return nil
}

// swapActionCmd accept и reject отличаются только действием в URL.
type swapActionCmd struct {
	action string
}

func (c swapActionCmd) Name() string { return "swap-" + c.action }
func (c swapActionCmd) Description() string {
	if c.action == "accept" {
		return "Принять обмен (владелец запрошенной вещи)"
	}
	return "Отклонить обмен (владелец запрошенной вещи)"
}
func (c swapActionCmd) Usage() string { return c.Name() + " <id>" }

func (c swapActionCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	var sw model.Swap
	path := "/api/swaps/" + url.PathEscape(args[0]) + "/" + c.action
	if err := call(ctx, cfg, http.MethodPut, path, nil, http.StatusOK, &sw); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Swap %s: %s\n", sw.ID, sw.Status)
	return nil
}

type swapDeleteCmd struct{}

func (swapDeleteCmd) Name() string        { return "swap-delete" }
func (swapDeleteCmd) Description() string { return "Отозвать свою заявку на обмен" }
func (swapDeleteCmd) Usage() string       { return "swap-delete <id>" }

func (swapDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	if err := call(ctx, cfg, http.MethodDelete, "/api/swaps/"+url.PathEscape(args[0]), nil, http.StatusOK, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted: %s\n", args[0])
	return nil
}

func init() {
	RegisterCmd(swapsCmd{})
	RegisterCmd(swapGetCmd{})
	RegisterCmd(swapRequestCmd{})
	RegisterCmd(swapActionCmd{action: "accept"})
	RegisterCmd(swapActionCmd{action: "reject"})
	RegisterCmd(swapDeleteCmd{})
}
