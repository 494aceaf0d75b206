package commands

import (
	"SwapMarket/internal/cli/api"
	"SwapMarket/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// Exit codes of swapcli.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitNoLogin  = 3
	exitConflict = 4
)

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code:
// 2 for usage errors, 3 when a session is required, 4 when the server reports a conflict
// (e.g. the swap is already accepted or the email is taken).
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	// If user passed global --help after flags parsing, show global usage
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, FormatGlobalUsage())
			return exitOK
		}
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" { // swapcli help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return exitOK
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return exitOK
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	return report(name, c, c.Run(ctx, cfg, args[1:]))
}

// report печатает результат команды и выбирает код выхода.
func report(name string, c Command, err error) int {
	var apiErr *api.Error
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitUsage
	case errors.Is(err, ErrNotLoggedIn):
		fmt.Fprintf(Out, "%s error: %v\nRun: swapcli login <email> <password>\n", name, err)
		return exitNoLogin
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict:
		fmt.Fprintf(Out, "%s error: %s\n", name, apiErr.Message)
		return exitConflict
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return exitFailure
	}
}
