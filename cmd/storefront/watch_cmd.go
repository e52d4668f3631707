package main

import (
	"context"
	"fmt"
	"log/slog"

	authapp "github.com/dwikikusuma/storefront/internal/auth/app"
	"github.com/dwikikusuma/storefront/internal/auth/domain"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
)

// cmdWatch runs the liveness monitor until interrupted or until the account
// disappears.
func cmdWatch(ctx context.Context, a *app, args []string) error {
	if err := parse(newFlags("watch"), args); err != nil {
		return err
	}
	user := a.session.Current()
	if !user.Complete() {
		return authapp.ErrNotAuthenticated
	}

	ctx, cancel := shutdown.WithSignals(ctx, a.log)
	defer cancel()

	mon := authapp.NewMonitor(a.session, a.cfg.LivenessInterval, a.log)
	mon.OnForcedLogout = func(domain.User) { cancel() }
	if err := mon.Start(ctx); err != nil {
		return err
	}
	defer mon.Stop()

	a.log.Info("watching session",
		slog.String("user_id", user.ID),
		slog.Duration("interval", a.cfg.LivenessInterval),
	)
	fmt.Fprintf(a.out, "Watching session for %s. Press Ctrl+C to stop.\n", user.Username)

	<-ctx.Done()
	if !a.session.IsAuthenticated() {
		return authapp.ErrAccountGone
	}
	return nil
}
