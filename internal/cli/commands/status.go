package commands

import (
	"context"
	"fmt"
	"net/http"

	"SwapMarket/internal/config"
	"SwapMarket/internal/model"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the logged in user" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var u model.User
	if err := call(ctx, cfg, http.MethodGet, "/api/users/profile", nil, http.StatusOK, &u); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s <%s> (id %d)\n", u.Name, u.Email, u.ID)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
