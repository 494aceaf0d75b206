package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"SwapMarket/internal/config"
	"SwapMarket/internal/model"
)

// editableFields поля, которые можно менять через item-edit.
var editableFields = map[string]bool{
	"title":       true,
	"description": true,
	"imageUrl":    true,
	"category":    true,
	"condition":   true,
}

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "item-edit" }
func (itemEditCmd) Description() string {
	return "Изменить поля вещи: title|description|imageUrl|category|condition"
}
func (itemEditCmd) Usage() string {
	return "item-edit <id> <field>=<value> [<field>=<value> ...]"
}

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || args[0] == "" {
		return ErrUsage
	}
	// передаём только указанные поля: сервер не трогает остальные
	patch := make(map[string]string, len(args)-1)
	for _, kv := range args[1:] {
		field, value, ok := strings.Cut(kv, "=")
		if !ok || !editableFields[field] {
			return ErrUsage
		}
		patch[field] = value
	}

	var it model.Item
	if err := call(ctx, cfg, http.MethodPut, "/api/items/"+url.PathEscape(args[0]), patch, http.StatusOK, &it); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	printItem(Out, it)
	return nil
}

func init() { RegisterCmd(itemEditCmd{}) }
