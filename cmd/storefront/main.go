package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(stdout)
		return 0
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return exitUsage
	}

	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Output:  stderr,
	})

	a, err := newApp(ctx, cfg, log, stdout)
	if err != nil {
		log.Error("startup failed", slog.Any("err", err))
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	defer a.Close()

	if err := cmd.run(ctx, a, args[1:]); err != nil {
		log.Debug("command failed", slog.String("command", args[0]), slog.Any("err", err))
		fmt.Fprintln(stderr, err)
		return exitCode(err)
	}
	return 0
}
