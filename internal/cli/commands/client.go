package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"SwapMarket/internal/cli/api"
	"SwapMarket/internal/cli/repo"
	fsrepo "SwapMarket/internal/cli/repo/fs"
	"SwapMarket/internal/config"
)

// ErrNotLoggedIn — нет сохранённого токена или сервер его не принял.
var ErrNotLoggedIn = errors.New("not logged in, run login or register first")

// authStore хранилище токена по пути из конфига.
func authStore(cfg *config.Config) repo.AuthStore {
	return fsrepo.AuthFSStore{TokenPath: cfg.TokenFile}
}

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// call выполняет запрос от имени сохранённого пользователя.
// Ответ со статусом want разбирается в out, если out не nil.
func call(ctx context.Context, cfg *config.Config, method, path string, payload any, want int, out any) error {
	token, err := authStore(cfg).Load()
	if err != nil {
		return ErrNotLoggedIn
	}
	return do(ctx, cfg, method, path, payload, token, want, out)
}

// callAnon то же без токена, для публичных маршрутов.
func callAnon(ctx context.Context, cfg *config.Config, method, path string, want int, out any) error {
	return do(ctx, cfg, method, path, nil, "", want, out)
}

func do(ctx context.Context, cfg *config.Config, method, path string, payload any, token string, want int, out any) error {
	resp, body, err := api.DoJSON(ctx, method, endpoint(cfg, path), payload, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != want {
		apiErr := api.ErrorFromResponse(resp, body)
		if resp.StatusCode == http.StatusUnauthorized && token != "" {
			return fmt.Errorf("%w: %s", ErrNotLoggedIn, apiErr.Message)
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
