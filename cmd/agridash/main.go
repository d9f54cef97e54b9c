package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"sasyak-admin/internal/apiclient"
	"sasyak-admin/internal/config"
	"sasyak-admin/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit, returning the exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	// config + logger
	cfg := config.Load()
	l := logger.New(cfg.Env, errOut)

	a, err := newApp(ctx, cfg, l, out)
	if err != nil {
		fmt.Fprintf(errOut, "agridash: %v\n", err)
		return 1
	}
	defer a.close()

	if err := a.dispatch(ctx, args, in); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		var rerr *apiclient.RemoteError
		if errors.As(err, &rerr) {
			fmt.Fprintf(errOut, "agridash: %s\n", rerr.Describe())
		} else {
			fmt.Fprintf(errOut, "agridash: %v\n", err)
		}
		return 1
	}
	return 0
}
