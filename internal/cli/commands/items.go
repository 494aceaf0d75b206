package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"SwapMarket/internal/config"
	"SwapMarket/internal/model"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "Показать все вещи (фильтр по категории, поиск)" }
func (itemsCmd) Usage() string       { return "items [--category <c>] [--q <text>]" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.String("category", "", "категория")
	query := fs.String("q", "", "нечёткий поиск по названию")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	q := url.Values{}
	if *category != "" {
		q.Set("category", *category)
	}
	if *query != "" {
		q.Set("q", *query)
	}
	path := "/api/items"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var items []model.Item
	if err := callAnon(ctx, cfg, http.MethodGet, path, http.StatusOK, &items); err != nil {
		return err
	}
	printItems(Out, items)
	return nil
}

type myItemsCmd struct{}

func (myItemsCmd) Name() string        { return "my-items" }
func (myItemsCmd) Description() string { return "Показать мои вещи" }
func (myItemsCmd) Usage() string       { return "my-items" }

func (myItemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var items []model.Item
	if err := call(ctx, cfg, http.MethodGet, "/api/items/my", nil, http.StatusOK, &items); err != nil {
		return err
	}
	printItems(Out, items)
	return nil
}

type itemGetCmd struct{}

func (itemGetCmd) Name() string        { return "item-get" }
func (itemGetCmd) Description() string { return "Показать вещь по id" }
func (itemGetCmd) Usage() string       { return "item-get <id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	var it model.Item
	if err := callAnon(ctx, cfg, http.MethodGet, "/api/items/"+url.PathEscape(args[0]), http.StatusOK, &it); err != nil {
		return err
	}
	printItem(Out, it)
	return nil
}

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string        { return "item-delete" }
func (itemDeleteCmd) Description() string { return "Удалить свою вещь (вместе с заявками на неё)" }
func (itemDeleteCmd) Usage() string       { return "item-delete <id>" }

func (itemDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	if err := call(ctx, cfg, http.MethodDelete, "/api/items/"+url.PathEscape(args[0]), nil, http.StatusOK, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted: %s\n", args[0])
	return nil
}

func init() {
	RegisterCmd(itemsCmd{})
	RegisterCmd(myItemsCmd{})
	RegisterCmd(itemGetCmd{})
	RegisterCmd(itemDeleteCmd{})
}
