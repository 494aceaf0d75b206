package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"SwapMarket/internal/cli/api"
	"SwapMarket/internal/config"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and log in" }
func (registerCmd) Usage() string       { return "register <name> <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	req := RegisterRequest{Name: args[0], Email: args[1], Password: args[2]}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/api/users/register"), req, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		if err := saveSession(cfg, resp, req.Email); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Registered as %s\n", req.Email)
		return nil
	case http.StatusConflict:
		return errors.New("email already in use")
	default:
		return api.ErrorFromResponse(resp, body)
	}
}

func init() { RegisterCmd(registerCmd{}) }
