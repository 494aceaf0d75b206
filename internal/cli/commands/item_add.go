package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"

	"SwapMarket/internal/config"
	"SwapMarket/internal/model"
)

type itemAddRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category,omitempty"`
	Condition   string `json:"condition,omitempty"`
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Выставить вещь на обмен"
}
func (itemAddCmd) Usage() string {
	return "item-add [--category <c>] [--condition <c>] <title> <description> <imageUrl>"
}

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("item-add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.String("category", "", "tops|bottoms|outerwear|footwear|accessories|other")
	condition := fs.String("condition", "", "new|like-new|used|worn")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) != 3 {
		return ErrUsage
	}

	req := itemAddRequest{
		Title:       rest[0],
		Description: rest[1],
		ImageURL:    rest[2],
		Category:    *category,
		Condition:   *condition,
	}
	var it model.Item
	if err := call(ctx, cfg, http.MethodPost, "/api/items", req, http.StatusCreated, &it); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printItem(Out, it)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
